package tours

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinTours returns the built-in tours bundled with Showcase.
func LoadBuiltinTours() ([]*Tour, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin tours: %w", err)
	}

	tours := make([]*Tour, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin tour %s: %w", entry.Name(), err)
		}
		tour, err := ParseTour(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin tour %s: %w", entry.Name(), err)
		}
		tour.Source = "builtin"
		tours = append(tours, tour)
	}

	sort.Slice(tours, func(i, j int) bool {
		return tours[i].Name < tours[j].Name
	})

	return tours, nil
}
