package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "date only",
			input: "2024-03-01",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "datetime keeps time of day",
			input: "2024-03-01T10:30:00",
			want:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2024-03-01T10:30:00Z",
			want:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseISODate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2024-13-40", "01/02/2024"} {
		_, err := ParseISODate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 3, 1, 15, 42, 7, 123, time.UTC)
	got := Midnight(in)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	// Already-midnight input is a fixed point.
	assert.Equal(t, got, Midnight(got))
}

func TestDayView_IsCompleted(t *testing.T) {
	view := DayView{Completed: []string{"abc123", "abc123", "def456"}}

	assert.True(t, view.IsCompleted("abc123"))
	assert.True(t, view.IsCompleted("def456"))
	assert.False(t, view.IsCompleted("missing"))
}
