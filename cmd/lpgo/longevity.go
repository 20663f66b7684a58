package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/longevity"
	"github.com/lifeplan/lpgo/internal/output"
	"github.com/spf13/cobra"
)

func longevityCmd() *cobra.Command {
	var age float64
	var sexName string
	var maxAge int

	cmd := &cobra.Command{
		Use:   "longevity [scenario-file]",
		Short: "Derive survival, life expectancy and care-need curves",
		Long: "Derives actuarial curves from the scenario's birth date and sex, " +
			"or from --age and --sex when no scenario file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			currentAge := age
			sex := domain.SexMale

			if sexName != "" {
				parsed, err := domain.ParseSex(sexName)
				if err != nil {
					return err
				}
				sex = parsed
			}

			if len(args) == 1 {
				scenario, err := loadScenario(args[0])
				if err != nil {
					return err
				}
				if scenario.BirthDate == nil || scenario.Sex == nil {
					return fmt.Errorf("scenario %s has no birthDate/sex; pass --age and --sex instead", scenario.Name)
				}
				currentAge = time.Since(*scenario.BirthDate).Hours() / 24 / 365.25
				sex = *scenario.Sex
			} else if currentAge <= 0 {
				return fmt.Errorf("either a scenario file or --age is required")
			}

			format, err := commandFormat(cmd)
			if err != nil {
				return err
			}

			summary := longevity.Summarize(currentAge, sex, maxAge)
			care := longevity.ExpectedCareCosts(currentAge, sex)

			if format == output.FormatJSON {
				s, err := output.JSON(struct {
					Summary longevity.Summary        `json:"summary"`
					Care    longevity.CareCostResult `json:"care"`
				}{summary, care})
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
				return nil
			}
			fmt.Fprint(os.Stdout, output.LongevityTable(summary, care))
			return nil
		},
	}

	cmd.Flags().Float64Var(&age, "age", 0, "current age (years, may be fractional)")
	cmd.Flags().StringVar(&sexName, "sex", "", "mortality table: male or female")
	cmd.Flags().IntVar(&maxAge, "max-age", longevity.DefaultMaxAge, "survival curve upper bound")
	return cmd
}
