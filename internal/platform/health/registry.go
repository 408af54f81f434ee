package health

import "fmt"

// Registry is the fixed, ordered set of probes built at startup. It has no
// mutating methods, so it is safe to share across requests.
type Registry struct {
	probes []Probe
}

func NewRegistry(probes ...Probe) (*Registry, error) {
	seen := make(map[string]struct{}, len(probes))
	ordered := make([]Probe, 0, len(probes))

	for i, p := range probes {
		if p == nil {
			return nil, fmt.Errorf("probe at position %d: %w", i, ErrNilProbe)
		}
		name := p.Name()
		if name == "" {
			return nil, fmt.Errorf("probe at position %d: %w", i, ErrEmptyProbeName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateProbe)
		}
		seen[name] = struct{}{}
		ordered = append(ordered, p)
	}

	return &Registry{probes: ordered}, nil
}

// All returns the probes in registration order. The slice is a copy.
func (r *Registry) All() []Probe {
	out := make([]Probe, len(r.probes))
	copy(out, r.probes)
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.probes))
	for i, p := range r.probes {
		names[i] = p.Name()
	}
	return names
}

func (r *Registry) Len() int {
	return len(r.probes)
}
