package payroll

import (
	"strconv"
	"strings"
	"time"
)

// Weekday indices follow the stored convention: 0=Monday .. 6=Sunday.

// defaultWorkDays is Monday through Saturday, Sunday off.
func defaultWorkDays() map[int]struct{} {
	return map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
}

// parseWorkDays turns a stored work-days spec ("0,1,2,3,4,5") into the set
// of scheduled weekday indices. A missing, empty or unparseable spec falls
// back to the Mon-Sat default; this is never an error.
func parseWorkDays(spec string) map[int]struct{} {
	if strings.TrimSpace(spec) == "" {
		return defaultWorkDays()
	}

	days := make(map[int]struct{})
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			return defaultWorkDays()
		}
		days[d] = struct{}{}
	}
	if len(days) == 0 {
		return defaultWorkDays()
	}

	return days
}

// weekdayIndex converts time.Weekday (Sunday=0) to the stored convention
// (Monday=0).
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// countScheduledDays counts the calendar days in [start, end] (inclusive)
// whose weekday is in the scheduled set. Ranges run a month at most, so a
// day-by-day walk is fine. start after end yields 0.
func countScheduledDays(start, end time.Time, workDays map[int]struct{}) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := workDays[weekdayIndex(d.Weekday())]; ok {
			count++
		}
	}
	return count
}

// truncateToDay strips the clock from a timestamp, keeping its location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// currentWeek returns the Monday-Sunday calendar week containing ref.
func currentWeek(ref time.Time) (time.Time, time.Time) {
	day := truncateToDay(ref)
	start := day.AddDate(0, 0, -weekdayIndex(day.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// currentMonth returns the first and last day of the month containing ref.
func currentMonth(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, -1)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
