package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/vsinha/airinv/pkg/application/services/distribution"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/interfaces/cli/output"
)

func sellCommand() *cli.Command {
	return &cli.Command{
		Name:  "sell",
		Usage: "Book a party on a fare option, then print the resulting availability",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "segment",
				Aliases:  []string{"s"},
				Usage:    "Segment key, repeated in travel order",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "fare-option",
				Aliases:  []string{"o"},
				Usage:    "Fare option CLASS-CLASS@FARE",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "party-size",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "Number of seats",
			},
		},
		Action: runSell,
	}
}

func runSell(c *cli.Context) error {
	solutions, err := travelSolutionsFromFlags(c.StringSlice("segment"), []string{c.String("fare-option")})
	if err != nil {
		return err
	}
	ts := solutions[0]
	if err := ts.ChooseFareOption(0); err != nil {
		return err
	}

	partySize := c.Int("party-size")
	if partySize <= 0 {
		return fmt.Errorf("party size must be positive, got %d", partySize)
	}

	e, err := newEngine(c)
	if err != nil {
		return err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	service := distribution.NewService(e.manager, e.logger)
	booking, err := service.Sell(ctx, ts, entities.NbOfSeats(partySize))
	if err != nil {
		return err
	}

	fo, err := ts.ChosenFareOption()
	if err != nil {
		return err
	}
	if err := output.WriteBooking(c.App.Writer, e.format, booking.ID.String(), fo, booking.PartySize); err != nil {
		return err
	}

	if e.format == output.FormatJSON {
		return nil
	}
	if err := service.CalculateAvailabilities(ctx, solutions, entities.TechniqueNone, 1); err != nil {
		return err
	}
	return output.WriteAvailability(c.App.Writer, e.format, entities.TechniqueNone, solutions)
}
