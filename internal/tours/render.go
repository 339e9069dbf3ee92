package tours

import (
	"fmt"
	"strings"
	"text/template"
)

// RenderTour returns the tour steps with captions rendered against vars.
func RenderTour(tour *Tour, vars map[string]string) ([]TourStep, error) {
	if tour == nil {
		return nil, fmt.Errorf("tour is required")
	}

	data := make(map[string]string, len(vars))
	for key, value := range vars {
		data[key] = value
	}

	for _, variable := range tour.Variables {
		value := strings.TrimSpace(data[variable.Name])
		if value == "" {
			if variable.Default != "" {
				data[variable.Name] = variable.Default
				continue
			}
			if variable.Required {
				return nil, fmt.Errorf("missing required variable %q", variable.Name)
			}
		}
	}

	steps := make([]TourStep, 0, len(tour.Steps))
	for i, step := range tour.Steps {
		text, err := renderText(tour.Name, step.Message, data)
		if err != nil {
			return nil, fmt.Errorf("render tour %q step %d: %w", tour.Name, i+1, err)
		}
		step.Message = text
		steps = append(steps, step)
	}

	return steps, nil
}

func renderText(name, content string, data map[string]string) (string, error) {
	if !strings.Contains(content, "{{") {
		return content, nil
	}

	parsed, err := template.New(name).
		Funcs(template.FuncMap{"default": defaultValue}).
		Option("missingkey=zero").
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", name, err)
	}

	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}

	return out.String(), nil
}

func defaultValue(def string, value any) string {
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	default:
		text := strings.TrimSpace(fmt.Sprint(v))
		if text == "" {
			return def
		}
		return text
	}
}
