package helper

import "time"

// DateRange widens [start, end] to inclusive day boundaries:
// start-of-day on start, end-of-day on end.
func DateRange(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())
	return s, e
}

// CurrentMonthRange returns the first and last instants of the current month.
func CurrentMonthRange() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// TodayRange returns the inclusive boundaries of the current calendar day.
func TodayRange() (time.Time, time.Time) {
	return DateRange(time.Now(), time.Now())
}

// ParseDateRangeQuery parses the startDate/endDate filter pair. Both must
// be present for the filter to apply; each accepts ISO-8601 (date or
// datetime) strings.
func ParseDateRangeQuery(startStr, endStr string) (start, end time.Time, ok bool) {
	if startStr == "" || endStr == "" {
		return
	}
	s, err1 := ParseISODate(startStr)
	e, err2 := ParseISODate(endStr)
	if err1 != nil || err2 != nil {
		return
	}
	start, end = DateRange(s, e)
	ok = true
	return
}

// ParseISODate accepts either a full RFC3339 timestamp or a bare
// YYYY-MM-DD date.
func ParseISODate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
