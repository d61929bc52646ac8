package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a catalog from a JSON file. Used when operators override the
// embedded seed catalog with CATALOG_PATH.
func LoadFile(path string) ([]Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var schemes []Scheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	if err := Validate(schemes); err != nil {
		return nil, fmt.Errorf("validate catalog file %s: %w", path, err)
	}

	return schemes, nil
}

// Validate checks the structural invariants a loaded catalog must satisfy
// before it can be swapped in.
func Validate(schemes []Scheme) error {
	seen := make(map[string]bool, len(schemes))
	for i, scheme := range schemes {
		if scheme.ID == "" {
			return fmt.Errorf("scheme at index %d has no ID", i)
		}
		if seen[scheme.ID] {
			return fmt.Errorf("duplicate scheme ID %q", scheme.ID)
		}
		seen[scheme.ID] = true

		if scheme.Category == "" {
			return fmt.Errorf("scheme %q has no category", scheme.ID)
		}
		if scheme.Name.Resolve(DefaultLanguage) == "" {
			return fmt.Errorf("scheme %q has no %s name", scheme.ID, DefaultLanguage)
		}
		if spec := scheme.Eligibility; spec.MinAge != nil && spec.MaxAge != nil && *spec.MinAge > *spec.MaxAge {
			return fmt.Errorf("scheme %q has inverted age range [%d,%d]", scheme.ID, *spec.MinAge, *spec.MaxAge)
		}
	}
	return nil
}
