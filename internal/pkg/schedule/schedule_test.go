package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emreo/coursereg/internal/app/models"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"9:00 AM", 540},
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"12:30 AM", 30},
		{"1:00 PM", 780},
		{"11:59 PM", 1439},
		{"09:00", 540},
		{"00:00", 0},
		{"23:59", 1439},
		{"14:30", 870},
		{"2:00 pm", 840}, // case-insensitive suffix
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	for _, in := range []string{
		"", "9", "25:00", "10:60", "13:00 PM", "0:30 AM", "9:00 XM", "abc", "9:xx",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeOfDay(in)
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}
}

func TestOverlapHalfOpen(t *testing.T) {
	// 09:00-10:00 vs 09:30-10:30 overlap
	assert.True(t, Overlap(540, 600, 570, 630))
	// Touching endpoints do not overlap
	assert.False(t, Overlap(540, 600, 600, 660))
	assert.False(t, Overlap(600, 660, 540, 600))
	// Containment
	assert.True(t, Overlap(540, 720, 600, 630))
	// Identical
	assert.True(t, Overlap(540, 600, 540, 600))
	// Disjoint
	assert.False(t, Overlap(540, 600, 720, 780))
}

func TestConflicts(t *testing.T) {
	mwf := models.Schedule{
		Days:      []models.Weekday{models.Monday, models.Wednesday, models.Friday},
		StartTime: "9:00 AM",
		EndTime:   "10:00 AM",
	}

	tests := []struct {
		name  string
		other models.Schedule
		want  bool
	}{
		{
			name: "shared day overlapping time",
			other: models.Schedule{
				Days:      []models.Weekday{models.Monday},
				StartTime: "9:30 AM",
				EndTime:   "10:30 AM",
			},
			want: true,
		},
		{
			name: "disjoint days with identical times",
			other: models.Schedule{
				Days:      []models.Weekday{models.Tuesday, models.Thursday},
				StartTime: "9:00 AM",
				EndTime:   "10:00 AM",
			},
			want: false,
		},
		{
			name: "shared day back to back",
			other: models.Schedule{
				Days:      []models.Weekday{models.Monday},
				StartTime: "10:00 AM",
				EndTime:   "11:00 AM",
			},
			want: false,
		},
		{
			name: "mixed 12h and 24h representations",
			other: models.Schedule{
				Days:      []models.Weekday{models.Friday},
				StartTime: "09:30",
				EndTime:   "10:30",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Conflicts(mwf, tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Conflict detection is symmetric
			rev, err := Conflicts(tt.other, mwf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rev)
		})
	}
}

func TestConflictsBadTime(t *testing.T) {
	a := models.Schedule{Days: []models.Weekday{models.Monday}, StartTime: "9:00 AM", EndTime: "10:00 AM"}
	b := models.Schedule{Days: []models.Weekday{models.Monday}, StartTime: "whenever", EndTime: "10:00 AM"}

	_, err := Conflicts(a, b)
	assert.ErrorIs(t, err, ErrInvalidTime)
}
