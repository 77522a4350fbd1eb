package services

import (
	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
)

// CreateDirectAccesses links every operating segment date of the inventory,
// and of its partner images, to the legs it is routed over, and every segment
// cabin to the leg cabins of the same code. Marketing-only segments are left
// alone: they reach the seats through their operating segment.
// Existing links are rebuilt, so the call can be repeated after the schedule changes.
func CreateDirectAccesses(inv *entities.Inventory) error {
	for _, fd := range inv.FlightDates {
		resetRouting(fd)
	}
	for _, fd := range inv.FlightDates {
		for _, segment := range fd.Segments {
			if segment.OperatingSegment != nil {
				continue
			}
			if err := linkSegment(fd, segment); err != nil {
				return err
			}
		}
	}

	for _, partner := range inv.Partners {
		if err := CreateDirectAccesses(partner); err != nil {
			return err
		}
	}
	return nil
}

func resetRouting(fd *entities.FlightDate) {
	for _, leg := range fd.Legs {
		leg.Segments = nil
		for _, cabin := range leg.Cabins {
			cabin.SegmentCabins = nil
		}
	}
	for _, segment := range fd.Segments {
		segment.Legs = nil
		for _, cabin := range segment.Cabins {
			cabin.LegCabins = nil
		}
	}
}

func linkSegment(fd *entities.FlightDate, segment *entities.SegmentDate) error {
	routing, err := routingLegs(fd, segment)
	if err != nil {
		return err
	}

	for _, leg := range routing {
		segment.Legs = append(segment.Legs, leg)
		leg.Segments = append(leg.Segments, segment)
	}

	for _, segmentCabin := range segment.Cabins {
		for _, leg := range routing {
			legCabin, ok := leg.Cabin(segmentCabin.Code)
			if !ok {
				return domainerrors.NewInvariantError(domainerrors.CodeBrokenRouting,
					"flight %s: leg %s-%s has no cabin %s for segment %s-%s",
					fd.Key(), leg.BoardingPoint, leg.OffPoint, segmentCabin.Code,
					segment.BoardingPoint, segment.OffPoint)
			}
			segmentCabin.LegCabins = append(segmentCabin.LegCabins, legCabin)
			legCabin.SegmentCabins = append(legCabin.SegmentCabins, segmentCabin)
		}
	}
	return nil
}

// routingLegs walks the legs from the boarding point to the off point of the segment
func routingLegs(fd *entities.FlightDate, segment *entities.SegmentDate) ([]*entities.LegDate, error) {
	var routing []*entities.LegDate
	current := segment.BoardingPoint

	for len(routing) < entities.MaximalNumberOfLegsInFlight {
		leg, ok := fd.Leg(current)
		if !ok {
			return nil, domainerrors.NewInvariantError(domainerrors.CodeBrokenRouting,
				"flight %s: no leg boarding at %s for segment %s-%s",
				fd.Key(), current, segment.BoardingPoint, segment.OffPoint)
		}
		routing = append(routing, leg)
		if leg.OffPoint == segment.OffPoint {
			return routing, nil
		}
		current = leg.OffPoint
	}

	return nil, domainerrors.NewInvariantError(domainerrors.CodeBrokenRouting,
		"flight %s: segment %s-%s crosses more than %d legs",
		fd.Key(), segment.BoardingPoint, segment.OffPoint, entities.MaximalNumberOfLegsInFlight)
}
