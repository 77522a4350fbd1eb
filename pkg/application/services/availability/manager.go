// Package availability is the entry point of the seat-availability engine:
// it resolves the segments of a travel solution, dispatches to the
// availability model of the partnership technique and bridges bookings to
// the inventory.
package availability

import (
	"fmt"
	"log/slog"

	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
	"github.com/vsinha/airinv/pkg/domain/repositories"
	"github.com/vsinha/airinv/pkg/domain/services"
	"github.com/vsinha/airinv/pkg/infrastructure/config"
)

// Manager calculates availabilities and applies bookings over the
// inventories of a repository. It holds no lock: callers serving concurrent
// requests serialize per airline.
type Manager struct {
	repo         repositories.InventoryRepository
	config       config.Engine
	modelOptions services.ModelOptions
	logger       *slog.Logger
}

// NewManager creates a manager. A nil logger means slog.Default().
func NewManager(repo repositories.InventoryRepository, cfg config.Engine, logger *slog.Logger) (*Manager, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	policy, err := services.TotalYieldPolicyByName(cfg.TotalYield)
	if err != nil {
		return nil, err
	}

	return &Manager{
		repo:   repo,
		config: cfg,
		modelOptions: services.ModelOptions{
			YieldCoefficient: cfg.YieldCoefficient,
			TotalYield:       policy,
			Logger:           logger,
		},
		logger: logger,
	}, nil
}

// Config returns the engine configuration
func (m *Manager) Config() config.Engine {
	return m.config
}

// CalculateAvailability fills the availability of every fare option of the
// travel solution. Each segment is looked up in the inventory of its
// airline, then the model of the technique runs once over the whole solution.
// Holders of a previous calculation are dropped first.
func (m *Manager) CalculateAvailability(ts *entities.TravelSolution, technique entities.PartnershipTechnique) error {
	model, err := services.ModelFor(technique, m.modelOptions)
	if err != nil {
		return err
	}

	ts.ResetHolders()
	for _, segmentKey := range ts.SegmentPath {
		inv, err := m.inventoryFor(segmentKey)
		if err != nil {
			return err
		}

		if technique == entities.TechniqueNone {
			err = services.LookupClassAvailabilities(inv, segmentKey, ts)
		} else {
			err = services.LookupYieldsAndBidPrices(inv, segmentKey, ts)
		}
		if err != nil {
			return fmt.Errorf("failed to look up segment %s: %w", segmentKey, err)
		}
	}

	if err := model.Calculate(ts); err != nil {
		return fmt.Errorf("%s availability calculation failed: %w", model.Name(), err)
	}
	return nil
}

// SetDefaultBidPriceVectors initializes the bid-price vectors of every
// inventory of the repository, partner images included
func (m *Manager) SetDefaultBidPriceVectors() error {
	inventories, err := m.repo.GetAllInventories()
	if err != nil {
		return fmt.Errorf("failed to list inventories: %w", err)
	}

	for _, inv := range inventories {
		count := services.SetDefaultBidPriceVectors(inv, m.config.DefaultBidPrice)
		m.logger.Info("default bid-price vectors set",
			"airline", inv.Airline,
			"leg_cabins", count,
			"bid_price", m.config.DefaultBidPrice.String())
	}
	return nil
}

// ResetFlightDateBidPrices puts the default bid-price vectors back on the
// leg cabins of one flight date of an airline
func (m *Manager) ResetFlightDateBidPrices(airline entities.AirlineCode, flightDateKey string) error {
	inv, err := m.repo.GetInventory(airline)
	if err != nil {
		return err
	}

	fd, ok := inv.FlightDateByKey(flightDateKey)
	if !ok {
		return domainerrors.NewInvariantError(domainerrors.CodeFlightDateNotFound,
			"flight date %s not found in inventory %s", flightDateKey, airline)
	}

	count := services.SetFlightDateDefaultBidPriceVectors(fd, m.config.DefaultBidPrice)
	m.logger.Debug("flight date bid-price vectors reset",
		"airline", airline, "flight_date", flightDateKey, "leg_cabins", count)
	return nil
}

// CreateDirectAccesses links segments to their routing legs in every inventory
func (m *Manager) CreateDirectAccesses() error {
	inventories, err := m.repo.GetAllInventories()
	if err != nil {
		return fmt.Errorf("failed to list inventories: %w", err)
	}

	for _, inv := range inventories {
		if err := services.CreateDirectAccesses(inv); err != nil {
			return fmt.Errorf("failed to link routing of %s: %w", inv.Airline, err)
		}
	}
	return nil
}

// Sell books partySize seats of a class on a segment. It reports whether
// the booking was applied; the reason of a failure is logged.
func (m *Manager) Sell(segmentKey string, classCode entities.ClassCode, partySize entities.NbOfSeats) bool {
	inv, err := m.inventoryFor(segmentKey)
	if err == nil {
		err = services.SellSeats(inv, segmentKey, classCode, partySize)
	}
	if err != nil {
		m.logger.Warn("sell failed",
			"segment", segmentKey, "class", classCode, "party_size", int64(partySize), "error", err)
		return false
	}

	m.logger.Debug("seats sold", "segment", segmentKey, "class", classCode, "party_size", int64(partySize))
	return true
}

// Cancel undoes a booking of partySize seats of a class on a segment
func (m *Manager) Cancel(segmentKey string, classCode entities.ClassCode, partySize entities.NbOfSeats) bool {
	inv, err := m.inventoryFor(segmentKey)
	if err == nil {
		err = services.CancelSeats(inv, segmentKey, classCode, partySize)
	}
	if err != nil {
		m.logger.Warn("cancel failed",
			"segment", segmentKey, "class", classCode, "party_size", int64(partySize), "error", err)
		return false
	}

	m.logger.Debug("seats cancelled", "segment", segmentKey, "class", classCode, "party_size", int64(partySize))
	return true
}

func (m *Manager) inventoryFor(segmentKey string) (*entities.Inventory, error) {
	key, err := entities.ParseSegmentKey(segmentKey)
	if err != nil {
		return nil, &domainerrors.InvariantError{Code: domainerrors.CodeInvalidKey, Message: err.Error()}
	}
	return m.repo.GetInventory(key.InventoryKey())
}
