package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/storage"
	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
	"github.com/Tiliavir/work-hours-tracker/internal/worklog"
)

var clearCmd = &cobra.Command{
	Use:   "clear <day>",
	Short: "Remove everything recorded for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid day %q: %v\n", args[0], err)
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

	if err := clearDay(ctx, s, period, day); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, worklog.ErrDayOutOfRange) {
			os.Exit(1)
		}
		os.Exit(2)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s %d, %d.\n", timecalc.MonthName(period.Month), day, period.Year)
	return nil
}

// clearDay resets one row of p. A month left without any input is removed
// from the store rather than kept as 31 blank rows.
func clearDay(ctx context.Context, s storage.Store, p model.Period, day int) error {
	entries, err := worklog.Clear(loadMonth(ctx, s, p), day)
	if err != nil {
		return err
	}
	if worklog.Blank(entries) {
		logger.WithField("period", p.Key()).Debug("month is blank, deleting")
		return s.Delete(ctx, p)
	}
	return s.Save(ctx, p, entries)
}
