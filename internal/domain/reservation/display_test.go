package reservation

import (
	"testing"
	"time"
)

func TestFormatReservationTime(t *testing.T) {
	wed := time.Date(2022, 6, 8, 0, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"13:00": "2022.06.08(수) 오후 1:00",
		"09:30": "2022.06.08(수) 오전 9:30",
		"12:00": "2022.06.08(수) 오전 12:00",
		"23:15": "2022.06.08(수) 오후 11:15",
		"00:00": "2022.06.08(수) 오전 0:00",
	}

	for hm, want := range cases {
		if got := FormatReservationTime(wed, hm); got != want {
			t.Errorf("FormatReservationTime(%s) = %q, want %q", hm, got, want)
		}
	}
}

func TestWeekdayAbbr(t *testing.T) {
	sun := time.Date(2022, 6, 12, 0, 0, 0, 0, time.UTC)
	if got := WeekdayAbbr(sun); got != "일" {
		t.Errorf("got %q, want 일", got)
	}
}
