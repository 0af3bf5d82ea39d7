package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.Equal(t, 100*time.Millisecond, fs.Interval())
	assert.True(t, fs.ShouldStep(), "first call fires")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(60 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(50 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A long stall only yields a bounded burst.
	clock = clock.Add(5 * time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	assert.LessOrEqual(t, fired, 2)
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/15, fs.Interval())
}
