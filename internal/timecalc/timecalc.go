package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// CalculateHours returns the hours elapsed between two "HH:MM" times of day,
// rounded to two decimals. An end before the start is treated as a shift
// crossing midnight. Empty or malformed input yields 0; equal times yield 0,
// so a 24 hour shift cannot be expressed.
func CalculateHours(startTime, endTime string) float64 {
	if startTime == "" || endTime == "" {
		return 0
	}
	start, ok := parseClock(startTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(endTime)
	if !ok {
		return 0
	}

	diff := end - start
	if diff < 0 {
		diff += minutesPerDay
	}
	return Round2(float64(diff) / 60)
}

// parseClock converts "HH:MM" (optionally "HH:MM:SS", seconds ignored) to
// minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	for _, part := range parts {
		if !isDigits(part) {
			return 0, false
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 || len(parts[0]) > 2 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, false
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, false
		}
	}
	return h*60 + m, true
}

// isDigits reports whether s is non-empty and only ASCII digits.
// strconv.Atoi alone would let a sign through.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidClock reports whether s is a time of day CalculateHours understands.
func ValidClock(s string) bool {
	_, ok := parseClock(s)
	return ok
}

// ParseRate parses a user-entered hourly rate. A decimal comma is accepted.
// Empty, unparsable, non-finite or negative input yields 0.
func ParseRate(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return Coerce(f)
}

// Coerce maps NaN and ±Inf to 0 so they never reach a sum.
func Coerce(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Round2 rounds f to two decimals, halves away from zero.
func Round2(f float64) float64 {
	return decimal.NewFromFloat(Coerce(f)).Round(2).InexactFloat64()
}

// MonthName returns the English name of month (1-12), or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// ShortMonthName returns the three-letter abbreviation of month.
func ShortMonthName(month int) string {
	name := MonthName(month)
	if len(name) < 3 {
		return name
	}
	return name[:3]
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatHours formats decimal hours as a human-readable string like "7h 30m" or "45m".
func FormatHours(hours float64) string {
	total := int64(math.Round(Coerce(hours) * 60))
	if total < 0 {
		total = 0
	}
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
