package tours

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTour reads a single tour from disk.
func LoadTour(path string) (*Tour, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("tour path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tour %s: %w", path, err)
	}

	tour, err := ParseTour(data)
	if err != nil {
		return nil, fmt.Errorf("parse tour %s: %w", path, err)
	}
	tour.Source = path
	return tour, nil
}

// LoadToursFromDir loads all tours from a directory.
func LoadToursFromDir(dir string) ([]*Tour, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Tour{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Tour{}, nil
		}
		return nil, fmt.Errorf("read tours dir %s: %w", dir, err)
	}

	tours := make([]*Tour, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		tour, err := LoadTour(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}

	sort.Slice(tours, func(i, j int) bool {
		return tours[i].Name < tours[j].Name
	})

	return tours, nil
}

// ParseTour decodes and normalizes a tour definition.
func ParseTour(data []byte) (*Tour, error) {
	var tour Tour
	if err := yaml.Unmarshal(data, &tour); err != nil {
		return nil, err
	}

	tour.Name = strings.TrimSpace(tour.Name)
	if tour.Name == "" {
		return nil, fmt.Errorf("tour name is required")
	}
	tour.Description = strings.TrimSpace(tour.Description)
	tour.Document = strings.TrimRight(tour.Document, "\n")

	switch SurfaceKind(strings.ToLower(strings.TrimSpace(string(tour.Surface)))) {
	case "", SurfacePage:
		tour.Surface = SurfacePage
	case SurfaceSection:
		tour.Surface = SurfaceSection
	default:
		return nil, fmt.Errorf("unknown surface %q", tour.Surface)
	}

	if len(tour.Steps) == 0 {
		return nil, fmt.Errorf("tour steps are required")
	}

	seen := make(map[string]struct{})
	for i := range tour.Variables {
		name := strings.TrimSpace(tour.Variables[i].Name)
		if name == "" {
			return nil, fmt.Errorf("tour variable name is required")
		}
		if _, exists := seen[name]; exists {
			return nil, fmt.Errorf("duplicate tour variable %q", name)
		}
		seen[name] = struct{}{}
		tour.Variables[i].Name = name
	}

	lines := DocumentLines(tour.Document)
	for i := range tour.Steps {
		if err := normalizeStep(&tour.Steps[i], lines); err != nil {
			return nil, fmt.Errorf("tour step %d: %w", i+1, err)
		}
	}

	return &tour, nil
}

func normalizeStep(step *TourStep, lines []string) error {
	step.Anchor = AnchorType(strings.ToLower(strings.TrimSpace(string(step.Anchor))))
	step.Message = strings.TrimSpace(step.Message)
	step.Match = strings.TrimSpace(step.Match)

	if step.Col < 0 {
		return fmt.Errorf("col must not be negative")
	}

	switch step.Anchor {
	case AnchorScreen:
		if step.Row < 0 {
			return fmt.Errorf("row must not be negative")
		}

	case AnchorContent:
		if step.Match != "" {
			line := findLine(lines, step.Match)
			if line == 0 {
				return fmt.Errorf("no document line matches %q", step.Match)
			}
			if step.Line != 0 && step.Line != line {
				return fmt.Errorf("line and match disagree")
			}
			step.Line = line
		}
		if step.Line < 1 {
			return fmt.Errorf("content line is required")
		}
		if step.Line > len(lines) {
			return fmt.Errorf("line %d is past the end of the document (%d lines)", step.Line, len(lines))
		}

	default:
		return fmt.Errorf("unknown anchor %q", step.Anchor)
	}

	return nil
}

// DocumentLines splits a tour document into display lines.
func DocumentLines(document string) []string {
	if document == "" {
		return nil
	}
	return strings.Split(document, "\n")
}

func findLine(lines []string, match string) int {
	for i, line := range lines {
		if strings.Contains(line, match) {
			return i + 1
		}
	}
	return 0
}
