package reservation

import (
	"sort"
	"time"
)

const timeLayout = "15:04"

// Weekday returns the weekday index of date with Monday as 0 and Sunday as 6.
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// MonthRange returns the first day of the month and the first day of the next.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// WorkingWeekdays returns the distinct weekdays of days in ascending order.
func WorkingWeekdays(days []time.Time) []int {
	seen := make(map[int]struct{}, 7)
	out := make([]int, 0, 7)
	for _, d := range days {
		wd := Weekday(d)
		if _, ok := seen[wd]; ok {
			continue
		}
		seen[wd] = struct{}{}
		out = append(out, wd)
	}
	sort.Ints(out)
	return out
}

// NormalizeTime parses a time of day such as "9:00" or "09:00" and returns
// it as HH:MM.
func NormalizeTime(s string) (string, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(timeLayout), nil
}

// SortTimes orders HH:MM strings chronologically.
func SortTimes(times []string) []string {
	out := append([]string(nil), times...)
	sort.Strings(out)
	return out
}

// ContainsTime reports whether hm is one of times.
func ContainsTime(times []string, hm string) bool {
	for _, t := range times {
		if t == hm {
			return true
		}
	}
	return false
}

// Slots is the bookable grid for one doctor and date.
type Slots struct {
	Offered []string `json:"working_times"`
	Taken   []string `json:"expired_times"`
}
