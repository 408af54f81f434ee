package health

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusOK        = "ok"
	StatusReady     = "ready"
	StatusNotReady  = "not ready"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type LivenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string              `json:"status"`
	Checks    OrderedChecks[bool] `json:"checks"`
	Timestamp time.Time           `json:"timestamp"`
}

type DetailedResponse struct {
	Status    string                     `json:"status"`
	Checks    OrderedChecks[CheckDetail] `json:"checks"`
	Timestamp time.Time                  `json:"timestamp"`
	Uptime    float64                    `json:"uptime"`
	Version   string                     `json:"version"`
}

type CheckDetail struct {
	Healthy   bool           `json:"healthy"`
	Message   string         `json:"message"`
	Info      map[string]any `json:"info,omitempty"`
	LatencyMs float64        `json:"latencyMs"`
}

type CheckEntry[T any] struct {
	Name  string
	Value T
}

// OrderedChecks is a JSON object whose keys keep their insertion order.
type OrderedChecks[T any] []CheckEntry[T]

func (c OrderedChecks[T]) Get(name string) (T, bool) {
	for _, e := range c {
		if e.Name == name {
			return e.Value, true
		}
	}
	var zero T
	return zero, false
}

func (c OrderedChecks[T]) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

func (c OrderedChecks[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("check %q: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *OrderedChecks[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("checks: expected object, got %v", tok)
	}

	entries := OrderedChecks[T]{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("checks: expected key, got %v", tok)
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("check %q: %w", name, err)
		}
		entries = append(entries, CheckEntry[T]{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = entries
	return nil
}
