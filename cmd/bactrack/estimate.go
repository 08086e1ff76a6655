package main

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/bactrack/internal/bac"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	sex      string
	weight   float64
	current  float64
	drinks   float64
	elapsed  time.Duration
	useDrink bool
}

func newEstimateCmd() *cobra.Command {
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print BAC figures for a body without touching the store",
		Example: `  bactrack estimate --sex male --weight 84.1 --bac 0.07
  bactrack estimate --sex female --weight 60 --drinks 3 --elapsed 2h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.useDrink = cmd.Flags().Changed("drinks")
			return runEstimate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.sex, "sex", "", "male or female")
	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "body weight in kilograms")
	cmd.Flags().Float64Var(&opts.current, "bac", 0, "current BAC")
	cmd.Flags().Float64Var(&opts.drinks, "drinks", 0, "standard drinks consumed, estimates BAC instead of using --bac")
	cmd.Flags().DurationVar(&opts.elapsed, "elapsed", 0, "time since the first drink")
	_ = cmd.MarkFlagRequired("sex")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func runEstimate(cmd *cobra.Command, opts *estimateOptions) error {
	sex, err := models.ParseSex(opts.sex)
	if err != nil {
		return err
	}
	profile := &models.Profile{Sex: sex, WeightKg: opts.weight}
	if err := profile.Validate(); err != nil {
		return err
	}

	increase, err := bac.IncreasePerStandardDrink(sex, opts.weight)
	if err != nil {
		return err
	}
	perDrink, err := bac.SecondsToMetabolizeStandardDrink(sex, opts.weight)
	if err != nil {
		return err
	}

	current := opts.current
	if opts.useDrink {
		current, err = bac.Estimate(profile, opts.drinks, opts.elapsed)
		if err != nil {
			return err
		}
	} else if err := models.ValidateBAC(current); err != nil {
		return err
	}

	wait, err := bac.TimeUntilCanDrive(profile, current)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "increase per standard drink: %.4f\n", increase)
	fmt.Fprintf(out, "time to metabolize one drink: %s\n", time.Duration(perDrink*float64(time.Second)).Round(time.Second))
	fmt.Fprintf(out, "current BAC: %.4f\n", current)
	fmt.Fprintf(out, "time until under %.2f: %s\n", bac.LegalDriveLimit, wait.Round(time.Second))
	return nil
}
