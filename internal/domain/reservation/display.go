package reservation

import (
	"fmt"
	"time"
)

var weekdayAbbr = [7]string{"월", "화", "수", "목", "금", "토", "일"}

// WeekdayAbbr returns the Korean abbreviation for date's weekday.
func WeekdayAbbr(date time.Time) string {
	return weekdayAbbr[Weekday(date)]
}

// FormatReservationTime renders a reservation as "2022.06.08(수) 오후 1:00".
// Hours from 13 on are shown as afternoon; everything earlier, including
// noon, keeps its hour under the morning label.
func FormatReservationTime(date time.Time, hm string) string {
	day := fmt.Sprintf("%s(%s)", date.Format("2006.01.02"), WeekdayAbbr(date))

	t, err := time.Parse(timeLayout, hm)
	if err != nil {
		return day + " " + hm
	}

	label, hour := "오전", t.Hour()
	if hour >= 13 {
		label, hour = "오후", hour-12
	}
	return fmt.Sprintf("%s %s %d:%02d", day, label, hour, t.Minute())
}
