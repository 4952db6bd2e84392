package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/storage"
	"github.com/Tiliavir/work-hours-tracker/internal/summary"
	"github.com/Tiliavir/work-hours-tracker/internal/worklog"
)

const (
	viewOverview = "overview"
	viewMonths   = "months"
)

var yearView string

var yearCmd = &cobra.Command{
	Use:   "year",
	Short: "Show the yearly summary of the active year",
	Args:  cobra.NoArgs,
	RunE:  runYear,
}

func init() {
	yearCmd.Flags().StringVar(&yearView, "view", viewOverview, "View: overview, months")
}

func runYear(cmd *cobra.Command, args []string) error {
	if yearView != viewOverview && yearView != viewMonths {
		fmt.Fprintf(os.Stderr, "invalid --view %q: must be %q or %q\n", yearView, viewOverview, viewMonths)
		os.Exit(1)
	}

	now := time.Now()
	user, err := activeUser(now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := openStore()
	defer s.Close()

	y, err := yearlySummary(context.Background(), s, user.Year)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	w := cmd.OutOrStdout()
	switch yearView {
	case viewMonths:
		printYearMonths(w, y, appCfg.Currency)
	default:
		printYearOverview(w, y, appCfg.Currency)
	}
	return nil
}

// yearlySummary rebuilds every stored month of year and rolls them up.
func yearlySummary(ctx context.Context, s storage.Store, year int) (model.YearlySummary, error) {
	data, order, err := storage.LoadYear(ctx, s, year)
	if err != nil {
		return model.YearlySummary{}, err
	}

	months := make([]model.MonthlySummary, 0, len(order))
	for _, p := range order {
		months = append(months, summary.Monthly(worklog.Normalize(data[p]), p.Month, p.Year))
	}
	logger.WithFields(logrus.Fields{
		"year":   year,
		"months": len(months),
	}).Debug("built yearly summary")
	return summary.Yearly(months, year), nil
}
