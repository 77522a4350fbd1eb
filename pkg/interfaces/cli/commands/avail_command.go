package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"github.com/vsinha/airinv/pkg/application/services/distribution"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/sample"
	"github.com/vsinha/airinv/pkg/interfaces/cli/output"
)

func availCommand() *cli.Command {
	return &cli.Command{
		Name:  "avail",
		Usage: "Calculate fare-option availabilities",
		Description: "Without --segment, the sample travel solutions are priced. " +
			"Fare options are written CLASS-CLASS@FARE, one class list per segment.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "technique",
				Aliases: []string{"t"},
				Value:   entities.TechniqueNone.String(),
				Usage:   "Partnership technique (" + techniqueChoices() + ")",
			},
			&cli.StringSliceFlag{
				Name:    "segment",
				Aliases: []string{"s"},
				Usage:   "Segment key AIRLINE;FLIGHT,YYYY-MM-DD;BOARD,OFF, repeated in travel order",
			},
			&cli.StringSliceFlag{
				Name:    "fare-option",
				Aliases: []string{"o"},
				Usage:   "Fare option CLASS-CLASS@FARE, repeatable",
			},
			&cli.IntFlag{
				Name:  "parallelism",
				Value: 4,
				Usage: "Travel solutions calculated at the same time",
			},
		},
		Action: runAvail,
	}
}

func runAvail(c *cli.Context) error {
	technique, err := entities.ParsePartnershipTechnique(c.String("technique"))
	if err != nil {
		return err
	}

	solutions, err := travelSolutionsFromFlags(c.StringSlice("segment"), c.StringSlice("fare-option"))
	if err != nil {
		return err
	}

	e, err := newEngine(c)
	if err != nil {
		return err
	}

	service := distribution.NewService(e.manager, e.logger)
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if err := service.CalculateAvailabilities(ctx, solutions, technique, c.Int("parallelism")); err != nil {
		return fmt.Errorf("availability calculation failed: %w", err)
	}

	return output.WriteAvailability(c.App.Writer, e.format, technique, solutions)
}

// travelSolutionsFromFlags builds one travel solution from the flags, or
// returns the sample ones when no segment is given
func travelSolutionsFromFlags(segments, fareOptions []string) ([]*entities.TravelSolution, error) {
	if len(segments) == 0 {
		if len(fareOptions) > 0 {
			return nil, fmt.Errorf("--fare-option needs at least one --segment")
		}
		return sample.BuildTravelSolutions()
	}
	if len(fareOptions) == 0 {
		return nil, fmt.Errorf("at least one --fare-option is required with --segment")
	}

	options := make([]entities.FareOption, len(fareOptions))
	for i, raw := range fareOptions {
		fo, err := ParseFareOption(raw)
		if err != nil {
			return nil, err
		}
		options[i] = fo
	}

	ts, err := entities.NewTravelSolution(segments, options)
	if err != nil {
		return nil, err
	}
	return []*entities.TravelSolution{ts}, nil
}

// ParseFareOption parses "Y-M@500": the class lists of each segment, then the fare
func ParseFareOption(raw string) (entities.FareOption, error) {
	classes, fare, found := strings.Cut(strings.TrimSpace(raw), "@")
	if !found {
		return entities.FareOption{}, fmt.Errorf("fare option %q must be CLASS-CLASS@FARE", raw)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fare))
	if err != nil {
		return entities.FareOption{}, fmt.Errorf("fare option %q: invalid fare: %w", raw, err)
	}
	if amount.IsNegative() {
		return entities.FareOption{}, fmt.Errorf("fare option %q: fare cannot be negative", raw)
	}

	classPath := strings.Split(classes, "-")
	for _, classList := range classPath {
		if strings.TrimSpace(classList) == "" {
			return entities.FareOption{}, fmt.Errorf("fare option %q has an empty class list", raw)
		}
	}

	return entities.FareOption{ClassPath: classPath, Fare: amount}, nil
}

func techniqueChoices() string {
	techniques := entities.AllPartnershipTechniques()
	names := make([]string, len(techniques))
	for i, t := range techniques {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
