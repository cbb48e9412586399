package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockTracksSystemTime(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	got := clock.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestMockClock(t *testing.T) {
	base := time.Date(2025, 6, 29, 8, 0, 0, 0, time.UTC)
	clock := NewMockClock(base)

	assert.Equal(t, base, clock.Now())

	clock.Advance(250 * time.Millisecond)
	assert.Equal(t, base.Add(250*time.Millisecond), clock.Now())

	later := base.Add(time.Hour)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}
