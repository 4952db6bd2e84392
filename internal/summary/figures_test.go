package summary_test

import (
	"reflect"
	"testing"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/summary"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		hours, target    float64
		percent, remains float64
	}{
		{0, 60, 0, 60},
		{30, 60, 50, 30},
		{60, 60, 100, 0},
		{90, 60, 100, 0},
		{10, 0, 0, 0},
	}
	for _, tt := range tests {
		m := model.MonthlySummary{TotalHours: tt.hours, TargetHours: tt.target}
		p, r := summary.Progress(m)
		if p != tt.percent || r != tt.remains {
			t.Errorf("Progress(%v/%v) = (%v, %v), want (%v, %v)", tt.hours, tt.target, p, r, tt.percent, tt.remains)
		}
	}
}

func TestAveragePerDay(t *testing.T) {
	h, i := summary.AveragePerDay(model.MonthlySummary{TotalHours: 12, TotalIncome: 300, DaysWorked: 3})
	if h != 4 || i != 100 {
		t.Errorf("AveragePerDay = (%v, %v), want (4, 100)", h, i)
	}
	h, i = summary.AveragePerDay(model.MonthlySummary{})
	if h != 0 || i != 0 {
		t.Errorf("AveragePerDay(empty) = (%v, %v), want (0, 0)", h, i)
	}
}

func TestProgressBand(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "red"},
		{24.9, "red"},
		{25, "orange"},
		{49, "orange"},
		{50, "yellow"},
		{75, "light-green"},
		{99.9, "light-green"},
		{100, "green"},
		{140, "green"},
	}
	for _, tt := range tests {
		if got := summary.ProgressBand(tt.percent).Name; got != tt.want {
			t.Errorf("ProgressBand(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestSortedMonths(t *testing.T) {
	y := model.YearlySummary{Months: []model.MonthlySummary{{Month: 11}, {Month: 2}, {Month: 7}}}
	got := summary.SortedMonths(y)
	var order []int
	for _, m := range got {
		order = append(order, m.Month)
	}
	if !reflect.DeepEqual(order, []int{2, 7, 11}) {
		t.Errorf("SortedMonths = %v, want [2 7 11]", order)
	}
	if y.Months[0].Month != 11 {
		t.Error("SortedMonths modified its input")
	}
}

func TestTopMonths(t *testing.T) {
	y := model.YearlySummary{Months: []model.MonthlySummary{
		{Month: 1, TotalHours: 40, TotalIncome: 800},
		{Month: 2, TotalHours: 55, TotalIncome: 700},
		{Month: 3, TotalHours: 55, TotalIncome: 800},
	}}
	top, ok := summary.TopEarningMonth(y)
	if !ok || top.Month != 1 {
		t.Errorf("TopEarningMonth = %d (ok=%v), want 1", top.Month, ok)
	}
	top, ok = summary.TopHoursMonth(y)
	if !ok || top.Month != 2 {
		t.Errorf("TopHoursMonth = %d (ok=%v), want 2", top.Month, ok)
	}
	if _, ok := summary.TopHoursMonth(model.YearlySummary{}); ok {
		t.Error("TopHoursMonth(empty) ok = true, want false")
	}
}

func TestAvailableYears(t *testing.T) {
	keys := []string{"2024-11", "2026-1", "2025-03", "2026-02", "garbage", "2024-13"}
	got := summary.AvailableYears(keys)
	want := []int{2026, 2025, 2024}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableYears = %v, want %v", got, want)
	}
	if got := summary.AvailableYears(nil); len(got) != 0 {
		t.Errorf("AvailableYears(nil) = %v, want empty", got)
	}
}
