package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifeplan/lpgo/internal/output"
	"github.com/lifeplan/lpgo/internal/template"
	"github.com/lifeplan/lpgo/internal/tui"
	"github.com/spf13/cobra"
)

func timelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline [scenario-file]",
		Short: "Browse the phase timeline interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			model := tui.NewModel(scenario.Phases, scenario.StartDate)
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("timeline viewer failed: %w", err)
			}
			return nil
		},
	}
	return cmd
}

func templatesCmd() *cobra.Command {
	var expand string
	var startStr string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List built-in life templates or expand one into phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := template.BuiltIn()

			if expand == "" {
				for _, name := range registry.List() {
					t, _ := registry.Get(name)
					fmt.Fprintf(os.Stdout, "%-20s %s\n", name, t.Description)
				}
				return nil
			}

			start := time.Now()
			if startStr != "" {
				parsed, err := time.Parse("2006-01-02", startStr)
				if err != nil {
					return fmt.Errorf("invalid --start date %q: %w", startStr, err)
				}
				start = parsed
			}

			phases, err := registry.Expand(expand, start)
			if err != nil {
				return err
			}
			s, err := output.JSON(phases)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, s)
			return nil
		},
	}

	cmd.Flags().StringVar(&expand, "expand", "", "template name to expand into phases")
	cmd.Flags().StringVar(&startStr, "start", "", "anchor date for expansion (2006-01-02)")
	return cmd
}
