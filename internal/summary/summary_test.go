package summary_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/summary"
)

func entry(day int, hours, rate float64) model.DailyEntry {
	return model.DailyEntry{Day: day, TotalHours: hours, HourlyRate: rate, Income: hours * rate}
}

func TestMonthly(t *testing.T) {
	entries := []model.DailyEntry{
		entry(1, 5, 20),
		entry(2, 0, 50),
		entry(3, 3, 10),
	}
	got := summary.Monthly(entries, 3, 2026)

	if got.Month != 3 || got.Year != 2026 {
		t.Errorf("period = %d/%d, want 3/2026", got.Month, got.Year)
	}
	if got.TotalHours != 8 {
		t.Errorf("TotalHours = %v, want 8", got.TotalHours)
	}
	if got.TotalIncome != 130 {
		t.Errorf("TotalIncome = %v, want 130", got.TotalIncome)
	}
	if got.DaysWorked != 2 {
		t.Errorf("DaysWorked = %d, want 2", got.DaysWorked)
	}
	if got.AverageRate != 16.25 {
		t.Errorf("AverageRate = %v, want 16.25", got.AverageRate)
	}
	if got.TargetHours != 60 {
		t.Errorf("TargetHours = %v, want 60", got.TargetHours)
	}
	if len(got.Entries) != 3 {
		t.Errorf("Entries = %d, want 3", len(got.Entries))
	}
}

func TestMonthlyAllZero(t *testing.T) {
	entries := make([]model.DailyEntry, 31)
	for i := range entries {
		entries[i].Day = i + 1
		entries[i].HourlyRate = 30
	}
	got := summary.Monthly(entries, 1, 2026)
	if got.TotalHours != 0 || got.TotalIncome != 0 || got.DaysWorked != 0 || got.AverageRate != 0 {
		t.Errorf("Monthly(all zero) = %+v, want zero totals", got)
	}
}

func TestMonthlyHoursWithoutRate(t *testing.T) {
	// Days without a rate count towards hours and days but not the average.
	entries := []model.DailyEntry{
		entry(1, 4, 0),
		entry(2, 2, 30),
	}
	got := summary.Monthly(entries, 5, 2026)
	if got.TotalHours != 6 {
		t.Errorf("TotalHours = %v, want 6", got.TotalHours)
	}
	if got.DaysWorked != 2 {
		t.Errorf("DaysWorked = %d, want 2", got.DaysWorked)
	}
	if got.AverageRate != 30 {
		t.Errorf("AverageRate = %v, want 30", got.AverageRate)
	}
	if got.TotalIncome != 60 {
		t.Errorf("TotalIncome = %v, want 60", got.TotalIncome)
	}
}

func TestMonthlyCoercesNonFinite(t *testing.T) {
	entries := []model.DailyEntry{
		{Day: 1, TotalHours: 2, HourlyRate: math.NaN(), Income: math.NaN()},
		{Day: 2, TotalHours: math.Inf(1), HourlyRate: 10, Income: 10},
		entry(3, 1, 10),
	}
	got := summary.Monthly(entries, 6, 2026)
	if got.TotalHours != 3 {
		t.Errorf("TotalHours = %v, want 3", got.TotalHours)
	}
	if got.TotalIncome != 10 {
		t.Errorf("TotalIncome = %v, want 10", got.TotalIncome)
	}
	if got.DaysWorked != 2 {
		t.Errorf("DaysWorked = %d, want 2", got.DaysWorked)
	}
	if got.AverageRate != 10 {
		t.Errorf("AverageRate = %v, want 10", got.AverageRate)
	}
}

func TestMonthlyIdempotent(t *testing.T) {
	entries := []model.DailyEntry{entry(1, 7.5, 22), entry(4, 3.25, 40), entry(9, 0, 0)}
	first := summary.Monthly(entries, 2, 2026)
	second := summary.Monthly(entries, 2, 2026)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Monthly not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestYearly(t *testing.T) {
	months := []model.MonthlySummary{
		{Month: 1, Year: 2026, TotalHours: 10, TotalIncome: 200, AverageRate: 20, DaysWorked: 2},
		{Month: 2, Year: 2026, TotalHours: 30, TotalIncome: 300, AverageRate: 10, DaysWorked: 5},
	}
	got := summary.Yearly(months, 1999)

	if got.Year != 2026 {
		t.Errorf("Year = %d, want 2026", got.Year)
	}
	if got.TotalHours != 40 {
		t.Errorf("TotalHours = %v, want 40", got.TotalHours)
	}
	if got.TotalIncome != 500 {
		t.Errorf("TotalIncome = %v, want 500", got.TotalIncome)
	}
	if got.TotalDaysWorked != 7 {
		t.Errorf("TotalDaysWorked = %d, want 7", got.TotalDaysWorked)
	}
	if got.AverageRate != 12.5 {
		t.Errorf("AverageRate = %v, want 12.5", got.AverageRate)
	}
	if len(got.Months) != 2 {
		t.Errorf("Months = %d, want 2", len(got.Months))
	}
}

func TestYearlyEmpty(t *testing.T) {
	got := summary.Yearly(nil, 2025)
	if got.Year != 2025 {
		t.Errorf("Year = %d, want 2025", got.Year)
	}
	if got.Months == nil || len(got.Months) != 0 {
		t.Errorf("Months = %v, want empty non-nil slice", got.Months)
	}
	if got.TotalHours != 0 || got.TotalIncome != 0 || got.AverageRate != 0 || got.TotalDaysWorked != 0 {
		t.Errorf("Yearly(empty) = %+v, want zero totals", got)
	}
}

func TestYearlyZeroHours(t *testing.T) {
	months := []model.MonthlySummary{{Month: 4, Year: 2026, AverageRate: 50}}
	got := summary.Yearly(months, 0)
	if got.AverageRate != 0 {
		t.Errorf("AverageRate = %v, want 0", got.AverageRate)
	}
}

func TestYearlyComposesMonthly(t *testing.T) {
	jan := summary.Monthly([]model.DailyEntry{entry(1, 4, 20), entry(2, 6, 20)}, 1, 2026)
	feb := summary.Monthly([]model.DailyEntry{entry(1, 10, 10), entry(2, 20, 10)}, 2, 2026)
	y := summary.Yearly([]model.MonthlySummary{feb, jan}, 0)

	if y.TotalHours != 40 {
		t.Errorf("TotalHours = %v, want 40", y.TotalHours)
	}
	if y.AverageRate != 12.5 {
		t.Errorf("AverageRate = %v, want 12.5", y.AverageRate)
	}
	if y.Months[0].Month != 2 {
		t.Errorf("Yearly reordered months: first = %d, want 2", y.Months[0].Month)
	}
}
