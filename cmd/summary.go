package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the monthly summary of the active month",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	user, err := activeUser(time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	period := user.Period()

	s := openStore()
	defer s.Close()
	entries := loadMonth(context.Background(), s, period)

	m := summary.Monthly(entries, period.Month, period.Year)
	printMonthly(cmd.OutOrStdout(), m, user.Name, appCfg.Currency)
	return nil
}
