package scheduling

import (
	"fmt"
	"log/slog"

	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/domain/repositories"
	"github.com/vsinha/airinv/pkg/infrastructure/events"
)

// BidPriceResetter puts default bid prices back on a flight date
type BidPriceResetter interface {
	ResetFlightDateBidPrices(airline entities.AirlineCode, flightDateKey string) error
}

// RMHandler plays optimisation notifications: the bid-price vectors of the
// notified flight date are rebuilt from the default bid price.
type RMHandler struct {
	resetter BidPriceResetter
	logger   *slog.Logger
}

// NewRMHandler creates an RMHandler. A nil logger means slog.Default().
func NewRMHandler(resetter BidPriceResetter, logger *slog.Logger) *RMHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RMHandler{resetter: resetter, logger: logger}
}

func (h *RMHandler) CanHandle(eventType string) bool {
	return eventType == events.RMEventType
}

func (h *RMHandler) Handle(event events.Event) error {
	notification, ok := event.Data().(events.OptimisationNotification)
	if !ok {
		return fmt.Errorf("rm event %s carries %T", event.ID(), event.Data())
	}

	if err := h.resetter.ResetFlightDateBidPrices(entities.AirlineCode(notification.Airline), notification.FlightDateKey); err != nil {
		return err
	}
	h.logger.Info("flight date optimised",
		"airline", notification.Airline,
		"flight_date", notification.FlightDateKey,
		"dcp", notification.DCP,
		"time", notification.Time)
	return nil
}

// SnapshotHandler logs the leg-cabin state of every inventory of the
// repository, partner images included
type SnapshotHandler struct {
	repo   repositories.InventoryRepository
	logger *slog.Logger
}

// NewSnapshotHandler creates a SnapshotHandler. A nil logger means slog.Default().
func NewSnapshotHandler(repo repositories.InventoryRepository, logger *slog.Logger) *SnapshotHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotHandler{repo: repo, logger: logger}
}

func (h *SnapshotHandler) CanHandle(eventType string) bool {
	return eventType == events.SnapshotEventType
}

func (h *SnapshotHandler) Handle(event events.Event) error {
	snapshot, ok := event.Data().(events.Snapshot)
	if !ok {
		return fmt.Errorf("snapshot event %s carries %T", event.ID(), event.Data())
	}

	inventories, err := h.repo.GetAllInventories()
	if err != nil {
		return fmt.Errorf("failed to list inventories: %w", err)
	}
	for _, inv := range inventories {
		h.logInventory(snapshot, inv)
	}
	return nil
}

func (h *SnapshotHandler) logInventory(snapshot events.Snapshot, inv *entities.Inventory) {
	for _, fd := range inv.FlightDates {
		for _, leg := range fd.Legs {
			for _, cabin := range leg.Cabins {
				h.logger.Info("leg cabin snapshot",
					"snapshot_time", snapshot.Time,
					"airline", inv.Airline,
					"flight_date", fd.Key(),
					"leg_cabin", cabin.FullerKey(),
					"capacity", int64(cabin.PhysicalCapacity),
					"sold", int64(cabin.SoldSeats),
					"availability_pool", int64(cabin.AvailabilityPool),
					"bid_price", cabin.CurrentBidPrice.String())
			}
		}
	}
	for _, partner := range inv.Partners {
		h.logInventory(snapshot, partner)
	}
}
