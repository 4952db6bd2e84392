package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/timecalc"
)

var showAll bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the work log of the active month",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showAll, "all", false, "Show every calendar day, including empty ones")
}

func runShow(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintf(w, "%s %d\n", timecalc.MonthName(period.Month), period.Year)
	fmt.Fprintln(w, rule)
	printEntries(w, visibleEntries(entries, period, showAll), appCfg.Currency)
	return nil
}
