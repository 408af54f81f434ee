package health

import "errors"

var (
	ErrNoProbes       = errors.New("no health probes registered")
	ErrNilProbe       = errors.New("health probe is nil")
	ErrEmptyProbeName = errors.New("health probe name cannot be empty")
	ErrDuplicateProbe = errors.New("health probe already registered")
	ErrInvalidTimeout = errors.New("probe timeout must be positive")
)
