package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartedAt_Stable(t *testing.T) {
	first := StartedAt()
	second := StartedAt()

	assert.Equal(t, first, second)
	assert.False(t, first.After(time.Now()))
}

func TestUptime_MonotonicNonDecreasing(t *testing.T) {
	previous := Uptime()
	assert.GreaterOrEqual(t, previous, time.Duration(0))

	for i := 0; i < 5; i++ {
		time.Sleep(2 * time.Millisecond)
		current := Uptime()
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
}

func TestUptime_TracksElapsedTime(t *testing.T) {
	before := Uptime()
	time.Sleep(50 * time.Millisecond)
	after := Uptime()

	assert.GreaterOrEqual(t, after-before, 50*time.Millisecond)
}
