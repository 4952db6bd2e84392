package timecalc_test

import (
	"math"
	"testing"

	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
)

func TestCalculateHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"09:00", "17:30", 8.5},
		{"09:15", "09:35", 0.33},
		{"09:00", "09:50", 0.83},
		{"08:00", "08:01", 0.02},
		{"22:00", "06:00", 8},
		{"23:30", "00:15", 0.75},
		{"09:00", "09:00", 0},
		{"00:00", "23:59", 23.98},
		{"09:00:00", "10:30:00", 1.5},
		{"9:00", "10:00", 1},
		{"", "09:00", 0},
		{"09:00", "", 0},
		{"", "", 0},
		{"24:00", "09:00", 0},
		{"09:60", "10:00", 0},
		{"nine", "10:00", 0},
		{"09:00", "10", 0},
		{"09:0", "10:00", 0},
		{"09:+5", "10:00", 0},
		{"+9:00", "10:00", 0},
		{"-0:00", "01:00", 0},
		{"09:00:-1", "10:00", 0},
		{" 9:00", "10:00", 1},
	}
	for _, tt := range tests {
		got := timecalc.CalculateHours(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("CalculateHours(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestCalculateHoursOvernightMatchesForwardDifference(t *testing.T) {
	// For every end < start the result equals end-start+24h.
	for sh := 0; sh < 24; sh += 5 {
		for eh := 0; eh < sh; eh += 3 {
			start := clock(sh, 30)
			end := clock(eh, 0)
			want := math.Round((float64(eh*60-(sh*60+30))/60+24)*100) / 100
			if got := timecalc.CalculateHours(start, end); got != want {
				t.Errorf("CalculateHours(%q, %q) = %v, want %v", start, end, got, want)
			}
		}
	}
}

func clock(h, m int) string {
	const digits = "0123456789"
	return string([]byte{digits[h/10], digits[h%10], ':', digits[m/10], digits[m%10]})
}

func TestValidClock(t *testing.T) {
	if !timecalc.ValidClock("07:45") {
		t.Error("ValidClock(07:45) = false, want true")
	}
	for _, s := range []string{"7.45", "+9:00", "09:+5", "-0:00"} {
		if timecalc.ValidClock(s) {
			t.Errorf("ValidClock(%q) = true, want false", s)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25", 25},
		{"25.50", 25.5},
		{"25,50", 25.5},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		if got := timecalc.ParseRate(tt.in); got != tt.want {
			t.Errorf("ParseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoerce(t *testing.T) {
	if got := timecalc.Coerce(math.NaN()); got != 0 {
		t.Errorf("Coerce(NaN) = %v, want 0", got)
	}
	if got := timecalc.Coerce(math.Inf(-1)); got != 0 {
		t.Errorf("Coerce(-Inf) = %v, want 0", got)
	}
	if got := timecalc.Coerce(3.5); got != 3.5 {
		t.Errorf("Coerce(3.5) = %v, want 3.5", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.005, 1.01},
		{2.345, 2.35},
		{16.25, 16.25},
		{-1.005, -1.01},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := timecalc.Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
		short string
	}{
		{1, "January", "Jan"},
		{9, "September", "Sep"},
		{12, "December", "Dec"},
		{0, "", ""},
		{13, "", ""},
	}
	for _, tt := range tests {
		if got := timecalc.MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
		if got := timecalc.ShortMonthName(tt.month); got != tt.short {
			t.Errorf("ShortMonthName(%d) = %q, want %q", tt.month, got, tt.short)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2026, 1, 31},
		{2026, 2, 28},
		{2024, 2, 29},
		{2026, 4, 30},
		{2026, 12, 31},
	}
	for _, tt := range tests {
		if got := timecalc.DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0m"},
		{0.75, "45m"},
		{1, "1h 0m"},
		{7.5, "7h 30m"},
		{8.33, "8h 20m"},
		{-2, "0m"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
