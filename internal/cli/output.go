// Package cli provides structured output helpers.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// WriteOutput writes v as JSON, or as one JSON value per line for slices
// when --jsonl is set.
func WriteOutput(out io.Writer, v any) error {
	if IsJSONLOutput() {
		value := reflect.ValueOf(v)
		if value.Kind() == reflect.Slice {
			encoder := json.NewEncoder(out)
			for i := 0; i < value.Len(); i++ {
				if err := encoder.Encode(value.Index(i).Interface()); err != nil {
					return fmt.Errorf("failed to encode output: %w", err)
				}
			}
			return nil
		}
		return json.NewEncoder(out).Encode(v)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
