// Package summary derives monthly and yearly income summaries from the
// daily work log. Every function is pure: the same input always yields the
// same output and no input is modified.
package summary

import (
	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
)

// TargetHours is the monthly goal used as the progress denominator.
const TargetHours = 60.0

// Monthly aggregates a month's entries. Only entries with positive hours
// count; the average rate is weighted by hours over entries that also carry
// a positive rate.
func Monthly(entries []model.DailyEntry, month, year int) model.MonthlySummary {
	var (
		totalHours, totalIncome float64
		rateHours, weighted     float64
		daysWorked              int
	)
	for _, e := range entries {
		hours := timecalc.Coerce(e.TotalHours)
		if hours <= 0 {
			continue
		}
		daysWorked++
		totalHours += hours
		totalIncome += timecalc.Coerce(e.Income)

		if rate := timecalc.Coerce(e.HourlyRate); rate > 0 {
			weighted += rate * hours
			rateHours += hours
		}
	}

	var averageRate float64
	if rateHours > 0 {
		averageRate = weighted / rateHours
	}

	return model.MonthlySummary{
		Month:       month,
		Year:        year,
		TotalHours:  totalHours,
		TotalIncome: totalIncome,
		AverageRate: averageRate,
		DaysWorked:  daysWorked,
		TargetHours: TargetHours,
		Entries:     entries,
	}
}

// Yearly aggregates monthly summaries that the caller has already filtered
// to one year. The year is taken from the first month; fallbackYear is used
// only when months is empty. Months are kept in the order given.
func Yearly(months []model.MonthlySummary, fallbackYear int) model.YearlySummary {
	if len(months) == 0 {
		return model.YearlySummary{
			Year:   fallbackYear,
			Months: []model.MonthlySummary{},
		}
	}

	y := model.YearlySummary{
		Year:   months[0].Year,
		Months: months,
	}
	var weighted float64
	for _, m := range months {
		hours := timecalc.Coerce(m.TotalHours)
		y.TotalHours += hours
		y.TotalIncome += timecalc.Coerce(m.TotalIncome)
		y.TotalDaysWorked += m.DaysWorked
		weighted += timecalc.Coerce(m.AverageRate) * hours
	}
	if y.TotalHours > 0 {
		y.AverageRate = weighted / y.TotalHours
	}
	return y
}
