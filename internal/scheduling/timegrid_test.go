package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestIsQuantized(t *testing.T) {
	assert.True(t, IsQuantized(at(9, 0)))
	assert.True(t, IsQuantized(at(9, 45)))
	assert.False(t, IsQuantized(at(9, 10)))
	assert.False(t, IsQuantized(at(9, 15).Add(time.Second)))
	assert.False(t, IsQuantized(at(9, 15).Add(time.Millisecond)))
}

func TestCeilToQuantum(t *testing.T) {
	assert.Equal(t, at(9, 0), CeilToQuantum(at(9, 0)))
	assert.Equal(t, at(9, 15), CeilToQuantum(at(9, 10)))
	assert.Equal(t, at(9, 30), CeilToQuantum(at(9, 15).Add(30*time.Second)))
	assert.Equal(t, at(10, 0), CeilToQuantum(at(9, 50)))
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: at(10, 0), End: at(10, 30)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "inside", other: Interval{Start: at(10, 10), End: at(10, 20)}, want: true},
		{name: "covers", other: Interval{Start: at(9, 0), End: at(11, 0)}, want: true},
		{name: "overlaps start", other: Interval{Start: at(9, 45), End: at(10, 15)}, want: true},
		{name: "overlaps end", other: Interval{Start: at(10, 15), End: at(10, 45)}, want: true},
		{name: "touches before", other: Interval{Start: at(9, 30), End: at(10, 0)}, want: false},
		{name: "touches after", other: Interval{Start: at(10, 30), End: at(11, 0)}, want: false},
		{name: "disjoint", other: Interval{Start: at(12, 0), End: at(13, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_ExpandContains(t *testing.T) {
	i := NewInterval(at(10, 0), 30*time.Minute)
	assert.Equal(t, 30*time.Minute, i.Duration())

	expanded := i.Expand(15 * time.Minute)
	assert.Equal(t, Interval{Start: at(9, 45), End: at(10, 45)}, expanded)

	assert.True(t, expanded.Contains(i))
	assert.True(t, i.Contains(i))
	assert.False(t, i.Contains(expanded))
}
