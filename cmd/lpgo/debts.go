package main

import (
	"fmt"
	"os"

	"github.com/lifeplan/lpgo/internal/output"
	"github.com/spf13/cobra"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts [scenario-file]",
		Short: "Simulate debt payoff schedules under the configured strategies",
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
			format, err := commandFormat(cmd)
			if err != nil {
				return err
			}

			result := runner.Debts(scenario)
			if format == output.FormatJSON {
				s, err := output.JSON(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
				return nil
			}
			fmt.Fprint(os.Stdout, output.DebtTable(result))
			return nil
		},
	}
	return cmd
}

func savingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savings [scenario-file]",
		Short: "Project savings goals and retirement readiness",
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
			format, err := commandFormat(cmd)
			if err != nil {
				return err
			}

			result := runner.Savings(scenario)
			if format == output.FormatJSON {
				s, err := output.JSON(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
				return nil
			}
			fmt.Fprint(os.Stdout, output.SavingsTable(result))
			return nil
		},
	}
	return cmd
}
