package services

import (
	"errors"
	"fmt"

	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
)

// ErrInsufficientAvailability is returned when a sale asks for more seats
// than the class has left
var ErrInsufficientAvailability = errors.New("insufficient class availability")

// SellSeats books partySize seats of a class on the operating segment of the key.
// The class, its segment cabin and every routing leg cabin are updated together.
func SellSeats(inv *entities.Inventory, segmentKey string, classCode entities.ClassCode, partySize entities.NbOfSeats) error {
	if partySize <= 0 {
		return fmt.Errorf("party size must be positive, got %d", partySize)
	}

	cabin, class, err := resolveClass(inv, segmentKey, classCode)
	if err != nil {
		return err
	}
	if entities.Availability(partySize) > class.SegmentAvailability {
		return fmt.Errorf("%w: %d seats of class %s on %s, %d left",
			ErrInsufficientAvailability, partySize, classCode, segmentKey, class.SegmentAvailability)
	}

	applyBooking(cabin, class, partySize)
	return nil
}

// CancelSeats undoes the booking of partySize seats of a class
func CancelSeats(inv *entities.Inventory, segmentKey string, classCode entities.ClassCode, partySize entities.NbOfSeats) error {
	if partySize <= 0 {
		return fmt.Errorf("party size must be positive, got %d", partySize)
	}

	cabin, class, err := resolveClass(inv, segmentKey, classCode)
	if err != nil {
		return err
	}
	if class.NbOfBookings < partySize {
		return fmt.Errorf("cannot cancel %d seats of class %s on %s: only %d booked",
			partySize, classCode, segmentKey, class.NbOfBookings)
	}

	applyBooking(cabin, class, -partySize)
	return nil
}

func resolveClass(inv *entities.Inventory, segmentKey string, classCode entities.ClassCode) (*entities.SegmentCabin, *entities.BookingClass, error) {
	segment, err := ResolveSegment(inv, segmentKey)
	if err != nil {
		return nil, nil, err
	}

	cabin, class, ok := segment.Class(classCode)
	if !ok {
		return nil, nil, &domainerrors.InvariantError{
			Code:      domainerrors.CodeClassNotFound,
			Message:   "booking class not found on segment",
			ClassCode: string(classCode),
			Context:   segmentKey,
		}
	}
	return cabin, class, nil
}

// applyBooking moves n seats (negative for a cancellation)
func applyBooking(cabin *entities.SegmentCabin, class *entities.BookingClass, n entities.NbOfSeats) {
	class.NbOfBookings += n
	class.SegmentAvailability -= entities.Availability(n)
	cabin.CommittedSpace += n
	for _, legCabin := range cabin.LegCabins {
		legCabin.SoldSeats += n
		legCabin.AvailabilityPool -= n
	}
}
