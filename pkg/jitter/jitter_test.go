package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_Range(t *testing.T) {
	base := time.Second

	for i := 0; i < 100; i++ {
		got := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
}

func TestDuration_ZeroJitter(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}

func TestExponentialBackoff(t *testing.T) {
	base := 2 * time.Second
	max := 30 * time.Second

	tests := []struct {
		attempt int
		floor   time.Duration
	}{
		{attempt: 0, floor: 2 * time.Second},
		{attempt: 1, floor: 4 * time.Second},
		{attempt: 3, floor: 16 * time.Second},
		{attempt: 10, floor: max},
	}

	for _, tt := range tests {
		got := ExponentialBackoff(base, max, tt.attempt, DefaultJitter)
		assert.GreaterOrEqual(t, got, tt.floor)
		assert.LessOrEqual(t, got, max+max/2)
	}
}
