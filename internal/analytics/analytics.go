// Package analytics computes completion statistics from raw completion
// timestamps. All functions are pure: the reference time is an explicit
// parameter so day boundaries are deterministic under test.
package analytics

import "time"

// streakScanDays caps the backward streak scan.
const streakScanDays = 365

// Bucket is one day of the weekly completion histogram.
type Bucket struct {
	Day   time.Time
	Count int
}

// StartOfDay truncates t to midnight in t's own location. A "day" is the
// half-open interval [00:00:00, 24:00:00) of local time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey maps a timestamp to its containing day, formatted YYYY-MM-DD in
// the timestamp's location.
func DateKey(t time.Time) string {
	return StartOfDay(t).Format("2006-01-02")
}

// WeeklyHistogram buckets completions into the seven days [now-6 .. now]
// inclusive. Completions outside the window are ignored. Timestamps are
// interpreted in now's location.
func WeeklyHistogram(completions []time.Time, now time.Time) [7]Bucket {
	var buckets [7]Bucket
	weekStart := StartOfDay(now).AddDate(0, 0, -6)
	index := make(map[string]int, 7)
	for i := range buckets {
		day := weekStart.AddDate(0, 0, i)
		buckets[i].Day = day
		index[DateKey(day)] = i
	}

	for _, c := range completions {
		if i, ok := index[DateKey(c.In(now.Location()))]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// CompletedThisWeek counts completions inside the weekly histogram window.
// It always equals the sum of the histogram buckets.
func CompletedThisWeek(completions []time.Time, now time.Time) int {
	total := 0
	for _, b := range WeeklyHistogram(completions, now) {
		total += b.Count
	}
	return total
}

// Streak counts consecutive days ending today with at least one completion.
// The scan walks backward from today and stops at the first empty day, so a
// day without completions ends the streak there — including today, which
// yields 0. The scan is capped at a year.
func Streak(completions []time.Time, now time.Time) int {
	days := make(map[string]bool, len(completions))
	for _, c := range completions {
		days[DateKey(c.In(now.Location()))] = true
	}

	streak := 0
	today := StartOfDay(now)
	for i := 0; i < streakScanDays; i++ {
		if !days[DateKey(today.AddDate(0, 0, -i))] {
			break
		}
		streak++
	}
	return streak
}
