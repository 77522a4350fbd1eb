package services

import (
	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
)

// ResolveSegment finds the segment date of a segment key in an inventory,
// following a marketing-only segment to its operating segment.
func ResolveSegment(inv *entities.Inventory, segmentKey string) (*entities.SegmentDate, error) {
	key, err := entities.ParseSegmentKey(segmentKey)
	if err != nil {
		return nil, &domainerrors.InvariantError{
			Code:    domainerrors.CodeInvalidKey,
			Message: err.Error(),
		}
	}

	segment, ok := inv.SegmentDate(key)
	if !ok {
		return nil, domainerrors.NewInvariantError(domainerrors.CodeSegmentNotFound,
			"segment %s not found in inventory %s", segmentKey, inv.Airline)
	}
	return segment.Operating(), nil
}

// LookupClassAvailabilities appends to the travel solution the
// class -> availability map of the segment (plain AU path).
func LookupClassAvailabilities(inv *entities.Inventory, segmentKey string, ts *entities.TravelSolution) error {
	segment, err := ResolveSegment(inv, segmentKey)
	if err != nil {
		return err
	}

	classAvailabilities := make(entities.ClassAvailabilityMap)
	for _, cabin := range segment.Cabins {
		for _, bc := range cabin.Classes {
			classAvailabilities[bc.Code] = bc.SegmentAvailability
		}
	}

	ts.ClassAvailabilityMapHolder = append(ts.ClassAvailabilityMapHolder, classAvailabilities)
	return nil
}

// LookupYieldsAndBidPrices appends to the travel solution the class -> yield
// and class -> bid-price vector maps of the segment. The vectors are those of
// the first routing leg cabin of each segment cabin and are not copied; the
// bid-price search needs them sorted.
func LookupYieldsAndBidPrices(inv *entities.Inventory, segmentKey string, ts *entities.TravelSolution) error {
	segment, err := ResolveSegment(inv, segmentKey)
	if err != nil {
		return err
	}

	classYields := make(entities.ClassYieldMap)
	classBpvs := make(entities.ClassBpvMap)
	for _, cabin := range segment.Cabins {
		if len(cabin.LegCabins) == 0 {
			return domainerrors.NewInvariantError(domainerrors.CodeNilBidPriceVector,
				"segment cabin %s of %s has no routing leg cabin", cabin.Code, segmentKey)
		}
		bpv := &cabin.LegCabins[0].BidPriceVector
		if !bpv.IsNonDecreasing() {
			return domainerrors.NewInvariantError(domainerrors.CodeUnsortedBidPrices,
				"bid prices of cabin %s of %s decrease with seat depletion: %s", cabin.Code, segmentKey, bpv)
		}

		for _, bc := range cabin.Classes {
			classYields[bc.Code] = bc.Yield
			classBpvs[bc.Code] = bpv
		}
	}

	ts.ClassYieldMapHolder = append(ts.ClassYieldMapHolder, classYields)
	ts.ClassBpvMapHolder = append(ts.ClassBpvMapHolder, classBpvs)
	return nil
}
