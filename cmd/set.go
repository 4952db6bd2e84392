package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
	"github.com/Tiliavir/work-hours-tracker/internal/worklog"
)

var (
	setStart   string
	setEnd     string
	setRate    string
	setProject string
	setNotes   string
)

var setCmd = &cobra.Command{
	Use:   "set <day>",
	Short: "Record start, end, rate, project or notes for a day",
	Long: `Set one or more fields of a day in the active month. Hours and income
are recomputed from start, end and rate. An end time before the start time
counts as a shift crossing midnight. Pass an empty value to clear a field.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setStart, "start", "", "Start time (HH:MM)")
	setCmd.Flags().StringVar(&setEnd, "end", "", "End time (HH:MM)")
	setCmd.Flags().StringVar(&setRate, "rate", "", "Hourly rate")
	setCmd.Flags().StringVar(&setProject, "project", "", "Project name")
	setCmd.Flags().StringVar(&setNotes, "notes", "", "Additional notes")
}

func runSet(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid day %q: %v\n", args[0], err)
		os.Exit(1)
	}

	// Only flags given on the command line are applied, so "" clears a field.
	updates := []struct {
		flag, field, value string
	}{
		{"start", worklog.FieldStart, setStart},
		{"end", worklog.FieldEnd, setEnd},
		{"rate", worklog.FieldRate, setRate},
		{"project", worklog.FieldProject, setProject},
		{"notes", worklog.FieldNotes, setNotes},
	}
	changed := 0
	for _, u := range updates {
		if cmd.Flags().Changed(u.flag) {
			changed++
		}
	}
	if changed == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to set: pass at least one of --start, --end, --rate, --project, --notes.")
		os.Exit(1)
	}

	user, err := activeUser(time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	period := user.Period()

	ctx := context.Background()
	s := openStore()
	defer s.Close()

	entries := loadMonth(ctx, s, period)
	for _, u := range updates {
		if !cmd.Flags().Changed(u.flag) {
			continue
		}
		if (u.field == worklog.FieldStart || u.field == worklog.FieldEnd) && u.value != "" && !timecalc.ValidClock(u.value) {
			logger.WithField(u.flag, u.value).Warn("not a valid HH:MM time, hours will count as 0")
		}
		entries, err = worklog.Update(entries, day, u.field, u.value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := s.Save(ctx, period, entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d, %d\n", timecalc.MonthName(period.Month), day, period.Year)
	printEntries(cmd.OutOrStdout(), entries[day-1:day], appCfg.Currency)
	return nil
}
