package summary

import (
	"sort"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
)

// Progress returns how much of the target m has reached (capped at 100) and
// the hours still missing (never negative).
func Progress(m model.MonthlySummary) (percent, remaining float64) {
	if m.TargetHours <= 0 {
		return 0, 0
	}
	percent = m.TotalHours / m.TargetHours * 100
	if percent > 100 {
		percent = 100
	}
	remaining = m.TargetHours - m.TotalHours
	if remaining < 0 {
		remaining = 0
	}
	return percent, remaining
}

// AveragePerDay returns hours and income per worked day.
func AveragePerDay(m model.MonthlySummary) (hours, income float64) {
	if m.DaysWorked == 0 {
		return 0, 0
	}
	d := float64(m.DaysWorked)
	return m.TotalHours / d, m.TotalIncome / d
}

// Band classifies a progress percentage.
type Band struct {
	Name  string
	Color string
}

var bands = []struct {
	below float64
	band  Band
}{
	{25, Band{"red", "#ff6b6b"}},
	{50, Band{"orange", "#ffa06b"}},
	{75, Band{"yellow", "#ffd56b"}},
	{100, Band{"light-green", "#66d98b"}},
}

// ProgressBand returns the band for percent.
func ProgressBand(percent float64) Band {
	for _, b := range bands {
		if percent < b.below {
			return b.band
		}
	}
	return Band{"green", "#2ecc71"}
}

// SortedMonths returns a copy of y.Months ordered by month number.
func SortedMonths(y model.YearlySummary) []model.MonthlySummary {
	out := make([]model.MonthlySummary, len(y.Months))
	copy(out, y.Months)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopEarningMonth returns the first month with the highest income.
func TopEarningMonth(y model.YearlySummary) (model.MonthlySummary, bool) {
	return topBy(y.Months, func(m model.MonthlySummary) float64 { return m.TotalIncome })
}

// TopHoursMonth returns the first month with the most hours.
func TopHoursMonth(y model.YearlySummary) (model.MonthlySummary, bool) {
	return topBy(y.Months, func(m model.MonthlySummary) float64 { return m.TotalHours })
}

func topBy(months []model.MonthlySummary, value func(model.MonthlySummary) float64) (model.MonthlySummary, bool) {
	if len(months) == 0 {
		return model.MonthlySummary{}, false
	}
	best := months[0]
	for _, m := range months[1:] {
		if value(m) > value(best) {
			best = m
		}
	}
	return best, true
}

// AvailableYears extracts the distinct years from period keys, newest first.
// Keys that do not parse are skipped.
func AvailableYears(keys []string) []int {
	seen := map[int]bool{}
	var years []int
	for _, k := range keys {
		p, err := model.ParsePeriodKey(k)
		if err != nil {
			continue
		}
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
