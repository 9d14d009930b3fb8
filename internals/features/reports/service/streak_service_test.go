package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeStreaks(t *testing.T) {
	tests := []struct {
		name        string
		dates       []string
		today       string
		wantLongest int
		wantCurrent int
	}{
		{
			name:        "empty",
			dates:       nil,
			today:       "2024-01-05",
			wantLongest: 0,
			wantCurrent: 0,
		},
		{
			name:        "gap breaks run, current counts recent day",
			dates:       []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"},
			today:       "2024-01-05",
			wantLongest: 3,
			wantCurrent: 1,
		},
		{
			name:        "yesterday keeps the streak alive",
			dates:       []string{"2024-01-02", "2024-01-03", "2024-01-04"},
			today:       "2024-01-05",
			wantLongest: 3,
			wantCurrent: 3,
		},
		{
			name:        "stale run zeroes the current streak",
			dates:       []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			today:       "2024-01-10",
			wantLongest: 3,
			wantCurrent: 0,
		},
		{
			name:        "duplicate timestamps on one day count once",
			dates:       []string{"2024-01-01", "2024-01-01", "2024-01-02"},
			today:       "2024-01-02",
			wantLongest: 2,
			wantCurrent: 2,
		},
		{
			name:        "unsorted input",
			dates:       []string{"2024-01-03", "2024-01-01", "2024-01-02"},
			today:       "2024-01-03",
			wantLongest: 3,
			wantCurrent: 3,
		},
		{
			name:        "single day today",
			dates:       []string{"2024-06-10"},
			today:       "2024-06-10",
			wantLongest: 1,
			wantCurrent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, 0, len(tt.dates))
			for _, d := range tt.dates {
				dates = append(dates, day(d))
			}
			longest, current := ComputeStreaks(dates, day(tt.today))
			assert.Equal(t, tt.wantLongest, longest, "longest")
			assert.Equal(t, tt.wantCurrent, current, "current")
		})
	}
}

func TestComputeStreaksLongestRunNotLast(t *testing.T) {
	dates := []time.Time{
		day("2024-01-01"), day("2024-01-02"), day("2024-01-03"), day("2024-01-04"),
		day("2024-01-10"), day("2024-01-11"),
	}
	longest, current := ComputeStreaks(dates, day("2024-01-11"))
	assert.Equal(t, 4, longest)
	assert.Equal(t, 2, current)
}
