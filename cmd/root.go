package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/config"
	"github.com/Tiliavir/work-hours-tracker/internal/logging"
	"github.com/Tiliavir/work-hours-tracker/internal/model"
	"github.com/Tiliavir/work-hours-tracker/internal/storage"
	"github.com/Tiliavir/work-hours-tracker/internal/worklog"
)

var (
	flagMonth   int
	flagYear    int
	flagVerbose bool

	baseDir string
	appCfg  config.Config
	logger  = logging.Default()
)

var rootCmd = &cobra.Command{
	Use:   "wht",
	Short: "Work Hours Tracker – monthly hours and income from a daily work log",
	Long: `wht keeps one row per calendar day (start, end, hourly rate, project,
notes) and derives hours, income, and monthly and yearly summaries.
Data is stored per month in ~/.wht/ (override with WHT_HOME).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagMonth, "month", 0, "Month 1-12 (default: current month)")
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "Year (default: current year)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(yearCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads .env, the config file and the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	dir, err := config.BaseDir()
	if err != nil {
		return err
	}
	baseDir = dir

	cfg, err := config.Load(baseDir)
	if err != nil {
		return err
	}
	appCfg = cfg

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	logger = logging.New(os.Stderr, level)
	logger.WithFields(logrus.Fields{
		"base":    baseDir,
		"backend": cfg.Storage.Backend,
	}).Debug("configuration loaded")
	return nil
}

// activeUser returns the selected month and year, defaulting to now.
func activeUser(now time.Time) (model.UserInfo, error) {
	u := model.UserInfo{Name: appCfg.Name, Month: flagMonth, Year: flagYear}
	if u.Month == 0 {
		u.Month = int(now.Month())
	}
	if u.Year == 0 {
		u.Year = now.Year()
	}
	if !u.Period().Valid() {
		return u, fmt.Errorf("invalid period: month %d, year %d", u.Month, u.Year)
	}
	return u, nil
}

// openStore opens the configured work log store, exiting on failure.
func openStore() storage.Store {
	s, err := storage.Open(baseDir, appCfg.Storage, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return s
}

// loadMonth returns the full 31-row work log for p, empty if nothing is stored.
func loadMonth(ctx context.Context, s storage.Store, p model.Period) []model.DailyEntry {
	entries, ok, err := s.Load(ctx, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !ok {
		logger.WithField("period", p.Key()).Debug("no stored work log, starting empty")
		return worklog.NewMonth()
	}
	return worklog.Normalize(entries)
}
