package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/summary"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active month to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml, md")
}

func runExport(cmd *cobra.Command, args []string) error {
	user, err := activeUser(time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	period := user.Period()

	s := openStore()
	defer s.Close()
	entries := loadMonth(context.Background(), s, period)

	w := cmd.OutOrStdout()
	worked := visibleEntries(entries, period, false)
	m := summary.Monthly(entries, period.Month, period.Year)
	m.Entries = worked

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(m)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding YAML:", err)
			os.Exit(2)
		}
		fmt.Fprint(w, string(data))
	case "md":
		printEntries(w, worked, appCfg.Currency)
		fmt.Fprintln(w)
		printMonthly(w, m, user.Name, appCfg.Currency)
	default: // csv
		printCSV(w, worked)
	}

	return nil
}

func printCSV(w io.Writer, entries []model.DailyEntry) {
	fmt.Fprintln(w, "day,start_time,end_time,total_hours,hourly_rate,income,project,notes")
	for _, e := range entries {
		fmt.Fprintf(w, "%d,%s,%s,%s,%s,%s,%s,%s\n",
			e.Day,
			csvEscape(e.StartTime),
			csvEscape(e.EndTime),
			formatNumber(e.TotalHours),
			formatNumber(e.HourlyRate),
			formatNumber(e.Income),
			csvEscape(e.Project),
			csvEscape(e.Notes),
		)
	}
}

// formatNumber renders a float without thousands separators or trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// csvEscape quotes a field that holds a separator, quote or line break,
// doubling any embedded quotes.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
