// Package scheduling seeds the event queue with the snapshot and revenue
// management events of a simulation period.
package scheduling

import (
	"fmt"
	"time"

	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/events"
)

// rmEventTimeOfDay is when, on a data collection day, the optimisation runs
const rmEventTimeOfDay = 10 * time.Second

// InitSnapshotEvents queues one snapshot event per day at midnight, from
// the start date (inclusive) to the end date (exclusive), and sets the
// planned snapshot count. Times of day are ignored.
// It returns the number of events queued.
func InitSnapshotEvents(queue *events.Queue, airline string, start, end time.Time) (int, error) {
	start, end = midnight(start), midnight(end)
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s",
			end.Format(entities.DateLayout), start.Format(entities.DateLayout))
	}

	count := 0
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		snapshot := events.Snapshot{Airline: airline, Time: day}
		if _, err := queue.AddEvent(events.NewEvent(events.SnapshotEventType, airline, snapshot, day)); err != nil {
			return count, err
		}
		count++
	}

	queue.AddStatus(events.SnapshotEventType, count)
	return count, nil
}

// InitRMEvents lists the optimisation events of every flight date of the
// inventory: one per data collection point, at 00:00:10 that many days
// before departure, kept when it falls between midnight of the start date
// and midnight of the end date.
func InitRMEvents(inv *entities.Inventory, dcps []int, start, end time.Time) []events.Event {
	start, end = midnight(start), midnight(end)

	var result []events.Event
	for _, fd := range inv.FlightDates {
		departure := midnight(fd.DepartureDate).Add(rmEventTimeOfDay)
		for _, dcp := range dcps {
			at := departure.AddDate(0, 0, -dcp)
			if at.Before(start) || at.After(end) {
				continue
			}
			notification := events.OptimisationNotification{
				Airline:       string(inv.Airline),
				FlightDateKey: fd.Key(),
				DCP:           dcp,
				Time:          at,
			}
			result = append(result, events.NewEvent(events.RMEventType, string(inv.Airline), notification, at))
		}
	}
	return result
}

// AddRMEventsToEventQueue queues the optimisation events and adds them to
// the planned RM count
func AddRMEventsToEventQueue(queue *events.Queue, rmEvents []events.Event) error {
	for _, event := range rmEvents {
		if _, err := queue.AddEvent(event); err != nil {
			return err
		}
	}
	queue.UpdateStatus(events.RMEventType, len(rmEvents))
	return nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
