package main

import (
	"fmt"
	"os"

	"github.com/lifeplan/lpgo/internal/config"
	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/output"
	"github.com/spf13/cobra"
)

// loadScenario parses and validates the scenario file named by the first
// argument.
func loadScenario(path string) (*domain.Scenario, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func commandFormat(cmd *cobra.Command) (output.Format, error) {
	name, _ := cmd.Flags().GetString("format")
	return output.ParseFormat(name)
}

func commandVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func projectCmd() *cobra.Command {
	var chart bool
	var months int

	cmd := &cobra.Command{
		Use:   "project [scenario-file]",
		Short: "Project monthly income, expenses and net worth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			runner, err := newRunner(commandVerbose(cmd))
			if err != nil {
				return err
			}
			if months > 0 {
				runner.Defaults.Months = months
			}
			format, err := commandFormat(cmd)
			if err != nil {
				return err
			}

			projections := runner.Project(scenario)
			switch format {
			case output.FormatCSV:
				fmt.Fprint(os.Stdout, output.ProjectionCSV(projections))
			case output.FormatJSON:
				s, err := output.JSON(projections)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
			default:
				fmt.Fprint(os.Stdout, output.ProjectionTable(projections))
				if chart {
					fmt.Fprintln(os.Stdout)
					fmt.Fprintln(os.Stdout, output.NetWorthChart(projections))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "plot net worth after the table")
	cmd.Flags().IntVar(&months, "months", 0, "projection horizon in months (default 960)")
	return cmd
}

func stressCmd() *cobra.Command {
	var chart bool
	var months int

	cmd := &cobra.Command{
		Use:   "stress [scenario-file]",
		Short: "Score monthly psychosocial stress from phases and cashflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			runner, err := newRunner(commandVerbose(cmd))
			if err != nil {
				return err
			}
			if months > 0 {
				runner.Defaults.Months = months
			}
			format, err := commandFormat(cmd)
			if err != nil {
				return err
			}

			scores := runner.Stress(scenario)
			switch format {
			case output.FormatCSV:
				fmt.Fprint(os.Stdout, output.StressCSV(scores))
			case output.FormatJSON:
				s, err := output.JSON(scores)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
			default:
				fmt.Fprint(os.Stdout, output.StressTable(scores))
				if chart {
					fmt.Fprintln(os.Stdout)
					fmt.Fprintln(os.Stdout, output.StressChart(scores))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "plot composite stress after the table")
	cmd.Flags().IntVar(&months, "months", 0, "scoring horizon in months (default 960)")
	return cmd
}
