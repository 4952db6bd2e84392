package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/work-hours-tracker/internal/summary"
)

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years that have recorded work, newest first",
	Args:  cobra.NoArgs,
	RunE:  runYears,
}

func runYears(cmd *cobra.Command, args []string) error {
	s := openStore()
	defer s.Close()

	keys, err := s.Keys(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	years := summary.AvailableYears(keys)
	w := cmd.OutOrStdout()
	if len(years) == 0 {
		fmt.Fprintln(w, "No work recorded yet.")
		return nil
	}
	for _, y := range years {
		fmt.Fprintln(w, y)
	}
	return nil
}
