package analytics

import "time"

// MonthStart returns midnight on the first day of the given month in loc.
func MonthStart(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// MonthCells lays out a month as calendar grid cells, Sunday-first. Each
// cell holds a day number, or 0 for the leading and trailing blanks that
// pad the grid to whole weeks. The result length is always a multiple of 7.
func MonthCells(monthStart time.Time) []int {
	firstWeekday := int(monthStart.Weekday())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	cells := make([]int, 0, 42)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, 0)
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, day)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, 0)
	}
	return cells
}

// CountByMonthDay buckets timestamps falling inside monthStart's month by
// day of month. Timestamps outside the month are ignored.
func CountByMonthDay(times []time.Time, monthStart time.Time) map[int]int {
	next := monthStart.AddDate(0, 1, 0)
	counts := make(map[int]int)
	for _, t := range times {
		local := t.In(monthStart.Location())
		if local.Before(monthStart) || !local.Before(next) {
			continue
		}
		counts[local.Day()]++
	}
	return counts
}
