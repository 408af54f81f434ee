// Package process exposes the process start time captured once at init.
package process

import "time"

var startedAt = time.Now()

func StartedAt() time.Time {
	return startedAt
}

// Uptime uses the monotonic clock reading carried by startedAt, so it never
// goes backwards when the wall clock is adjusted.
func Uptime() time.Duration {
	return time.Since(startedAt)
}
