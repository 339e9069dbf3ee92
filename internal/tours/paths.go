package tours

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrTourNotFound is returned when no search path defines the requested tour.
var ErrTourNotFound = errors.New("tour not found")

// TourSearchPaths returns tour search directories in precedence order.
func TourSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".showcase", "tours"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "showcase", "tours"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "showcase", "tours"))
	return paths
}

// LoadToursFromSearchPaths loads tours from search paths with first-hit precedence.
func LoadToursFromSearchPaths(projectDir string) ([]*Tour, error) {
	return loadFromPaths(TourSearchPaths(projectDir))
}

func loadFromPaths(paths []string) ([]*Tour, error) {
	seen := make(map[string]*Tour)
	order := make([]string, 0)

	for _, path := range paths {
		tours, err := LoadToursFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, tour := range tours {
			if _, exists := seen[tour.Name]; exists {
				continue
			}
			seen[tour.Name] = tour
			order = append(order, tour.Name)
		}
	}

	builtins, err := LoadBuiltinTours()
	if err != nil {
		return nil, err
	}
	for _, tour := range builtins {
		if _, exists := seen[tour.Name]; exists {
			continue
		}
		seen[tour.Name] = tour
		order = append(order, tour.Name)
	}

	resolved := make([]*Tour, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}

// Find returns the named tour from the search paths.
func Find(projectDir, name string) (*Tour, error) {
	all, err := LoadToursFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, tour := range all {
		if tour.Name == name {
			return tour, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTourNotFound, name)
}
