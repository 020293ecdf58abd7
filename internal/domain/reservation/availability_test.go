package reservation

import (
	"reflect"
	"testing"
	"time"
)

func TestWeekday_MondayIsZero(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 5},
		{time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), 6},
	}

	for _, c := range cases {
		if got := Weekday(c.date); got != c.want {
			t.Errorf("Weekday(%s) = %d, want %d", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestMonthRange_December(t *testing.T) {
	from, to := MonthRange(2023, time.December)

	if !from.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %s", from)
	}
	if !to.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end %s", to)
	}
}

func TestWorkingWeekdays(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC), // Fri
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), // Mon
		time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), // Fri
		time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), // Mon
	}

	if got, want := WorkingWeekdays(days), []int{0, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := WorkingWeekdays(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestNormalizeTime(t *testing.T) {
	valid := map[string]string{
		"09:00": "09:00",
		"9:00":  "09:00",
		"13:30": "13:30",
		"00:00": "00:00",
	}
	for in, want := range valid {
		got, err := NormalizeTime(in)
		if err != nil {
			t.Errorf("NormalizeTime(%q) returned error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "25:00", "12:60", "noon", "12"} {
		if _, err := NormalizeTime(in); err == nil {
			t.Errorf("NormalizeTime(%q) expected error", in)
		}
	}
}

func TestSortTimes_DoesNotMutateInput(t *testing.T) {
	in := []string{"14:00", "09:00", "11:30"}
	got := SortTimes(in)

	if want := []string{"09:00", "11:30", "14:00"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if in[0] != "14:00" {
		t.Error("input slice was reordered")
	}
}
