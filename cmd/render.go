package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/summary"
	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
)

const rule = "--------------------------------------------"

// money formats an amount with thousands separators and two decimals.
func money(currency string, v float64) string {
	return currency + humanize.FormatFloat("#,###.##", v)
}

func hours(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// progressBar renders percent (0-100) as a fixed-width bar.
func progressBar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// visibleEntries returns the rows worth printing: rows with any input, or
// every calendar day of p when all is set.
func visibleEntries(entries []model.DailyEntry, p model.Period, all bool) []model.DailyEntry {
	days := timecalc.DaysInMonth(p.Year, p.Month)
	var out []model.DailyEntry
	for _, e := range entries {
		if all {
			if e.Day <= days {
				out = append(out, e)
			}
			continue
		}
		if !e.IsEmpty() || e.TotalHours > 0 {
			out = append(out, e)
		}
	}
	return out
}

// printEntries prints the work log table.
func printEntries(w io.Writer, entries []model.DailyEntry, currency string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	fmt.Fprintf(w, "%-4s %-5s %-5s %7s %10s %12s  %s\n",
		"Day", "Start", "End", "Hours", "Rate", "Income", "Project")
	for _, e := range entries {
		rate := ""
		if e.HourlyRate > 0 {
			rate = money(currency, e.HourlyRate)
		}
		project := e.Project
		if e.Notes != "" {
			if project != "" {
				project += "  "
			}
			project += "(" + e.Notes + ")"
		}
		fmt.Fprintf(w, "%-4d %-5s %-5s %7.2f %10s %12s  %s\n",
			e.Day, e.StartTime, e.EndTime, e.TotalHours, rate, money(currency, e.Income), project)
	}
}

// printMonthly prints a monthly summary block.
func printMonthly(w io.Writer, m model.MonthlySummary, name, currency string) {
	title := fmt.Sprintf("%s %d", timecalc.MonthName(m.Month), m.Year)
	if name != "" {
		title += " – " + name
	}
	percent, remaining := summary.Progress(m)
	perDayHours, perDayIncome := summary.AveragePerDay(m)

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-20s%s (%s)\n", "Total hours", hours(m.TotalHours), timecalc.FormatHours(m.TotalHours))
	fmt.Fprintf(w, "%-20s%s\n", "Target hours", hours(m.TargetHours))
	fmt.Fprintf(w, "%-20s%s\n", "Remaining hours", hours(remaining))
	fmt.Fprintf(w, "%-20s%s\n", "Total income", money(currency, m.TotalIncome))
	fmt.Fprintf(w, "%-20s%s\n", "Avg hourly rate", money(currency, m.AverageRate))
	fmt.Fprintf(w, "%-20s%d\n", "Days worked", m.DaysWorked)
	fmt.Fprintf(w, "%-20s%s\n", "Avg hours/day", hours(perDayHours))
	fmt.Fprintf(w, "%-20s%s\n", "Avg income/day", money(currency, perDayIncome))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s %.1f%% of target (%s)\n", progressBar(percent, 30), percent, summary.ProgressBand(percent).Name)
}

// printYearOverview prints yearly totals, the top months and an hours chart.
func printYearOverview(w io.Writer, y model.YearlySummary, currency string) {
	fmt.Fprintf(w, "%d Annual Summary\n", y.Year)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-20s%s\n", "Total hours", hours(y.TotalHours))
	fmt.Fprintf(w, "%-20s%s\n", "Total income", money(currency, y.TotalIncome))
	fmt.Fprintf(w, "%-20s%s\n", "Average rate", money(currency, y.AverageRate))
	fmt.Fprintf(w, "%-20s%d\n", "Days worked", y.TotalDaysWorked)
	fmt.Fprintln(w, rule)

	if len(y.Months) == 0 {
		fmt.Fprintln(w, "No months recorded.")
		return
	}
	if top, ok := summary.TopEarningMonth(y); ok {
		fmt.Fprintf(w, "%-20s%s (%s)\n", "Top earning month", timecalc.MonthName(top.Month), money(currency, top.TotalIncome))
	}
	if top, ok := summary.TopHoursMonth(y); ok {
		fmt.Fprintf(w, "%-20s%s (%s h)\n", "Most hours", timecalc.MonthName(top.Month), hours(top.TotalHours))
	}
	fmt.Fprintln(w)

	const chartWidth = 30
	sorted := summary.SortedMonths(y)
	maxHours := 1.0
	for _, m := range sorted {
		maxHours = math.Max(maxHours, m.TotalHours)
	}
	for _, m := range sorted {
		n := int(math.Round(m.TotalHours / maxHours * chartWidth))
		percent, _ := summary.Progress(m)
		fmt.Fprintf(w, "%-4s %-*s %6.0f  %s\n",
			timecalc.ShortMonthName(m.Month), chartWidth, strings.Repeat("#", n), m.TotalHours,
			summary.ProgressBand(percent).Name)
	}
}

// printYearMonths prints one card per month.
func printYearMonths(w io.Writer, y model.YearlySummary, currency string) {
	fmt.Fprintf(w, "%d Monthly Breakdown\n", y.Year)
	if len(y.Months) == 0 {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, "No months recorded.")
		return
	}
	for _, m := range summary.SortedMonths(y) {
		percent, _ := summary.Progress(m)
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%s %s\n", timecalc.MonthName(m.Month), progressBar(percent, 20))
		fmt.Fprintf(w, "  %-16s%s\n", "Hours", hours(m.TotalHours))
		fmt.Fprintf(w, "  %-16s%s\n", "Income", money(currency, m.TotalIncome))
		fmt.Fprintf(w, "  %-16s%s\n", "Avg rate", money(currency, m.AverageRate))
		fmt.Fprintf(w, "  %-16s%d\n", "Days worked", m.DaysWorked)
		fmt.Fprintf(w, "  %-16s%s\n", "Target hours", hours(m.TargetHours))
		fmt.Fprintf(w, "  %-16s%.1f%%\n", "Completion", percent)
	}
}
