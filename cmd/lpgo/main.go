package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lifeplan/lpgo/internal/config"
	"github.com/lifeplan/lpgo/internal/run"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements run.Logger using the standard log package.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lpgo",
	Short: "Life planning calculator CLI",
	Long:  "Projects finances, stress, longevity and debt payoff across a modeled life timeline",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "lpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.String())
			}
		},
	}
}

// newRunner builds a runner from environment-overridable defaults, enabling
// verbose logging when requested.
func newRunner(verbose bool) (*run.Runner, error) {
	defaults, err := config.LoadDefaults()
	if err != nil {
		return nil, err
	}
	runner := run.NewRunner(defaults)
	if verbose {
		runner.SetLogger(simpleCLILogger{})
	}
	return runner, nil
}

func main() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().String("format", "table", "output format: table, csv, json")

	rootCmd.AddCommand(
		versionCmd(),
		projectCmd(),
		stressCmd(),
		debtsCmd(),
		savingsCmd(),
		longevityCmd(),
		compareCmd(),
		timelineCmd(),
		templatesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
