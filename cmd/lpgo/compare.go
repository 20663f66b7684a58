package main

import (
	"fmt"
	"os"

	"github.com/lifeplan/lpgo/internal/output"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	var targetMonth string

	cmd := &cobra.Command{
		Use:   "compare [scenario-a] [scenario-b]",
		Short: "Diff two scenarios' projections and stress in neutral language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadScenario(args[0])
			if err != nil {
				return fmt.Errorf("scenario A: %w", err)
			}
			b, err := loadScenario(args[1])
			if err != nil {
				return fmt.Errorf("scenario B: %w", err)
			}
			runner, err := newRunner(commandVerbose(cmd))
			if err != nil {
				return err
			}
			format, err := commandFormat(cmd)
			if err != nil {
				return err
			}

			// Default to the final projected month when no target is given.
			target := targetMonth
			if target == "" {
				series := runner.Project(a)
				if len(series) > 0 {
					target = series[len(series)-1].Month
				}
			}

			diff := runner.Diff(a, b, target)
			switch format {
			case output.FormatJSON:
				s, err := output.JSON(diff)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
			case output.FormatCSV:
				fmt.Fprint(os.Stdout, output.DiffCSV(diff))
			default:
				fmt.Fprint(os.Stdout, output.DiffTable(diff))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&targetMonth, "target-month", "", `comparison month label, e.g. "2055-06"`)
	return cmd
}
