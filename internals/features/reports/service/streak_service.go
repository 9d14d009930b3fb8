package service

import (
	"sort"
	"time"
)

// ComputeStreaks reduces a set of attendance timestamps to calendar-day
// streaks. Timestamps on the same day count once. The current streak is the
// run ending on the most recent day, and only counts if that day is today
// or yesterday relative to the reference time.
func ComputeStreaks(dates []time.Time, today time.Time) (longest, current int) {
	if len(dates) == 0 {
		return 0, 0
	}

	seen := map[time.Time]struct{}{}
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncateDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 0
	for i, day := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	ref := truncateDay(today)
	last := days[len(days)-1]
	if last.Equal(ref) || last.Equal(ref.AddDate(0, 0, -1)) {
		current = run
	}
	return longest, current
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
