package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhecker/ta-office/office"
)

var (
	runsCmd = &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List recorded runs, or replay one run's transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runsRun,
	}
)

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runsRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		runs, err := singletons.Database.Runs()
		if err != nil {
			return err
		}

		for _, run := range runs {
			fmt.Println(run)
		}
		return nil
	}

	records, err := singletons.Database.Events(args[0])
	if err != nil {
		return err
	}

	for _, rec := range records {
		line := fmt.Sprintf("%6d  %s  %s", rec.Seq, rec.Time.Format("15:04:05.000"), rec.Kind)
		if rec.Student != 0 {
			line += fmt.Sprintf("  student=%d", rec.Student)
		}
		if rec.Kind == office.EventSeatTaken.String() || rec.Kind == office.EventSummoned.String() {
			line += fmt.Sprintf("  occupied=%d", rec.Occupied)
		}
		if len(rec.Duration) != 0 {
			line += fmt.Sprintf("  duration=%s", rec.Duration)
		}
		if len(rec.Error) != 0 {
			line += fmt.Sprintf("  error=%q", rec.Error)
		}
		fmt.Println(line)
	}
	return nil
}
