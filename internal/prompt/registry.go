package prompt

import (
	"fmt"
	"strings"
)

// NewRegistry validates specs and freezes them in declaration order.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{
		specs: make([]Spec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}

	for i, s := range specs {
		switch {
		case strings.TrimSpace(s.Name) == "":
			return nil, fmt.Errorf("prompt %d: %w", i, ErrEmptyName)
		case s.Name == DefaultDestination:
			return nil, fmt.Errorf("prompt %q: %w", s.Name, ErrReservedName)
		}
		if _, ok := r.index[s.Name]; ok {
			return nil, fmt.Errorf("prompt %q: %w", s.Name, ErrDuplicateName)
		}
		if err := ValidateTemplate(s.Template); err != nil {
			return nil, fmt.Errorf("prompt %q: %w", s.Name, err)
		}

		r.index[s.Name] = len(r.specs)
		r.specs = append(r.specs, s)
	}

	return r, nil
}

// All returns a copy of the specs in declaration order.
func (r *Registry) All() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

func (r *Registry) Len() int {
	return len(r.specs)
}

// Has reports whether name is registered. Matching is exact.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

func (r *Registry) Get(name string) (Spec, bool) {
	i, ok := r.index[name]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// DestinationsBlock renders one "name: description" line per spec.
func (r *Registry) DestinationsBlock() string {
	lines := make([]string, len(r.specs))
	for i, s := range r.specs {
		lines[i] = s.Name + ": " + s.Description
	}
	return strings.Join(lines, "\n")
}
