package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Period identifies one month of one year.
type Period struct {
	Year  int
	Month int
}

// Key returns the storage key for p, e.g. "2026-03".
func (p Period) Key() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

func (p Period) String() string {
	return p.Key()
}

// Valid reports whether p names a real calendar month.
func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= 1 && p.Month <= 12
}

// ParsePeriodKey parses a "year-month" key. Both "2026-03" and "2026-3" are
// accepted.
func ParsePeriodKey(key string) (Period, error) {
	y, m, ok := strings.Cut(strings.TrimSpace(key), "-")
	if !ok {
		return Period{}, fmt.Errorf("invalid period key %q, expected YEAR-MONTH", key)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return Period{}, fmt.Errorf("invalid year in period key %q: %w", key, err)
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month in period key %q: %w", key, err)
	}
	p := Period{Year: year, Month: month}
	if !p.Valid() {
		return Period{}, fmt.Errorf("period key %q out of range", key)
	}
	return p, nil
}
