package commands

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/vsinha/airinv/pkg/application/services/scheduling"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/events"
	"github.com/vsinha/airinv/pkg/interfaces/cli/output"
)

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Seed the snapshot and revenue management events of a period",
		Description: "With --dispatch, the events are then played in time order: " +
			"snapshots log the leg cabins, RM events reset the flight date's bid prices.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "start",
				Value: "2011-01-01",
				Usage: "First day of the period (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "end",
				Value: "2011-01-15",
				Usage: "Day after the period (YYYY-MM-DD)",
			},
			&cli.BoolFlag{
				Name:  "dispatch",
				Usage: "Play the seeded events through their handlers",
			},
		},
		Action: runEvents,
	}
}

func runEvents(c *cli.Context) error {
	start, err := time.Parse(entities.DateLayout, c.String("start"))
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(entities.DateLayout, c.String("end"))
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}

	e, err := newEngine(c)
	if err != nil {
		return err
	}

	queue := events.NewQueue()
	if _, err := scheduling.InitSnapshotEvents(queue, e.config.DefaultAirlineCode, start, end); err != nil {
		return err
	}

	inventories, err := e.repo.GetAllInventories()
	if err != nil {
		return err
	}
	for _, inv := range inventories {
		rmEvents := scheduling.InitRMEvents(inv, e.config.DCPs, start, end)
		if err := scheduling.AddRMEventsToEventQueue(queue, rmEvents); err != nil {
			return err
		}
	}

	queued := queue.Events()
	if c.Bool("dispatch") {
		queue.Subscribe([]string{events.RMEventType}, scheduling.NewRMHandler(e.manager, e.logger))
		queue.Subscribe([]string{events.SnapshotEventType}, scheduling.NewSnapshotHandler(e.repo, e.logger))

		dispatched, err := queue.Dispatch(c.Context)
		if err != nil {
			return err
		}
		e.logger.Info("events dispatched", "count", dispatched)
	}

	status := map[string]events.ProgressStatus{
		events.SnapshotEventType: queue.Status(events.SnapshotEventType),
		events.RMEventType:       queue.Status(events.RMEventType),
	}
	return output.WriteEvents(c.App.Writer, e.format, queued, status)
}
