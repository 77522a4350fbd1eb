// Package distribution is the reservation-facing layer over the
// availability engine. It serializes the work on each airline inventory.
package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vsinha/airinv/pkg/application/services/availability"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"golang.org/x/sync/errgroup"
)

// ErrSaleRejected is returned when the inventory refuses a booking
var ErrSaleRejected = errors.New("sale rejected by inventory")

// ErrCancellationRejected is returned when the inventory refuses a cancellation
var ErrCancellationRejected = errors.New("cancellation rejected by inventory")

// Booking records a sale so it can be cancelled later
type Booking struct {
	ID          uuid.UUID
	SegmentPath []string
	ClassCodes  []entities.ClassCode
	PartySize   entities.NbOfSeats
}

// Cancellation returns the cancellation undoing the whole booking
func (b *Booking) Cancellation() (*entities.Cancellation, error) {
	return entities.NewCancellation(b.SegmentPath, b.ClassCodes, b.PartySize)
}

// Service calculates availabilities and books travel solutions
type Service struct {
	manager *availability.Manager
	logger  *slog.Logger

	locksMutex sync.Mutex
	locks      map[entities.AirlineCode]*sync.Mutex
}

// NewService creates a distribution service. A nil logger means slog.Default().
func NewService(manager *availability.Manager, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		manager: manager,
		logger:  logger,
		locks:   make(map[entities.AirlineCode]*sync.Mutex),
	}
}

// CalculateAvailabilities fills the fare-option availabilities of every
// travel solution. Solutions are calculated concurrently, at most
// parallelism at a time (no limit when parallelism <= 0), each holding the
// locks of its airlines. The first failure cancels the remaining work.
func (s *Service) CalculateAvailabilities(ctx context.Context, solutions []*entities.TravelSolution, technique entities.PartnershipTechnique, parallelism int) error {
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, ts := range solutions {
		i, ts := i, ts // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			unlock, err := s.lockAirlines(ts.SegmentPath)
			if err != nil {
				return fmt.Errorf("travel solution %d: %w", i, err)
			}
			defer unlock()

			if err := s.manager.CalculateAvailability(ts, technique); err != nil {
				return fmt.Errorf("travel solution %d (%s): %w", i, ts.DescribeSegmentPath(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Sell books partySize seats of the chosen fare option on every segment of
// the travel solution. A segment refusing the sale rolls the others back.
func (s *Service) Sell(ctx context.Context, ts *entities.TravelSolution, partySize entities.NbOfSeats) (*Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fo, err := ts.ChosenFareOption()
	if err != nil {
		return nil, err
	}

	classCodes := make([]entities.ClassCode, len(fo.ClassPath))
	for i, classList := range fo.ClassPath {
		code, err := entities.FirstClassCode(classList)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		classCodes[i] = code
	}

	unlock, err := s.lockAirlines(ts.SegmentPath)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for i, segmentKey := range ts.SegmentPath {
		if s.manager.Sell(segmentKey, classCodes[i], partySize) {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if !s.manager.Cancel(ts.SegmentPath[j], classCodes[j], partySize) {
				s.logger.Error("rollback of partial sale failed",
					"segment", ts.SegmentPath[j], "class", classCodes[j], "party_size", int64(partySize))
			}
		}
		return nil, fmt.Errorf("%w: %s class %s", ErrSaleRejected, segmentKey, classCodes[i])
	}

	booking := &Booking{
		ID:          uuid.New(),
		SegmentPath: append([]string(nil), ts.SegmentPath...),
		ClassCodes:  classCodes,
		PartySize:   partySize,
	}
	s.logger.Info("travel solution sold",
		"booking_id", booking.ID.String(),
		"fare_option", fo.Describe(),
		"segment_path", ts.DescribeSegmentPath(),
		"party_size", int64(partySize))
	return booking, nil
}

// PlayCancellation cancels every (segment, class) pair of the cancellation.
// All pairs are attempted; the first refusal is reported.
func (s *Service) PlayCancellation(ctx context.Context, c *entities.Cancellation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancellationRejected, err)
	}

	unlock, err := s.lockAirlines(c.SegmentPath)
	if err != nil {
		return err
	}
	defer unlock()

	var firstErr error
	for i, segmentKey := range c.SegmentPath {
		if s.manager.Cancel(segmentKey, c.ClassCodes[i], c.PartySize) {
			continue
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("%w: %s class %s", ErrCancellationRejected, segmentKey, c.ClassCodes[i])
		}
	}

	if firstErr != nil {
		return firstErr
	}
	s.logger.Info("cancellation played", "cancellation", c.Describe())
	return nil
}

// lockAirlines takes the locks of every airline of a segment path in a fixed
// order and returns the function releasing them
func (s *Service) lockAirlines(segmentPath []string) (func(), error) {
	seen := make(map[entities.AirlineCode]bool)
	var airlines []entities.AirlineCode
	for _, segmentKey := range segmentPath {
		key, err := entities.ParseSegmentKey(segmentKey)
		if err != nil {
			return nil, err
		}
		if !seen[key.Airline] {
			seen[key.Airline] = true
			airlines = append(airlines, key.Airline)
		}
	}
	sort.Slice(airlines, func(i, j int) bool { return airlines[i] < airlines[j] })

	locks := make([]*sync.Mutex, len(airlines))
	s.locksMutex.Lock()
	for i, airline := range airlines {
		lock, ok := s.locks[airline]
		if !ok {
			lock = &sync.Mutex{}
			s.locks[airline] = lock
		}
		locks[i] = lock
	}
	s.locksMutex.Unlock()

	for _, lock := range locks {
		lock.Lock()
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}, nil
}
