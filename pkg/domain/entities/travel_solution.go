package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ClassAvailabilityMap maps class codes to the class availability of one segment
type ClassAvailabilityMap map[ClassCode]Availability

// ClassYieldMap maps class codes to their yield on one segment
type ClassYieldMap map[ClassCode]decimal.Decimal

// ClassBpvMap maps class codes to the bid-price vector of the leg cabin they
// are sold from. The vectors belong to the inventory; the map only points at them.
type ClassBpvMap map[ClassCode]*BidPriceVector

// FareOption is one priced class combination of a travel solution.
// ClassPath holds one class list per segment; its first character is the
// class code used for availability.
type FareOption struct {
	ClassPath    []string
	Fare         decimal.Decimal
	Availability Availability
}

// Describe returns a one-line description of the fare option
func (fo *FareOption) Describe() string {
	return fmt.Sprintf("%s, %s, %d", strings.Join(fo.ClassPath, "-"), fo.Fare.String(), fo.Availability)
}

// FirstClassCode extracts the class code of a class-path entry
func FirstClassCode(classList string) (ClassCode, error) {
	if classList == "" {
		return "", fmt.Errorf("class list cannot be empty")
	}
	return ClassCode(classList[:1]), nil
}

// TravelSolution is an itinerary (segment path) with its candidate fare options.
// The holders are filled by the segment availability lookup, one entry per
// segment in segment-path order.
type TravelSolution struct {
	SegmentPath []string
	FareOptions []FareOption

	ClassAvailabilityMapHolder []ClassAvailabilityMap
	ClassYieldMapHolder        []ClassYieldMap
	ClassBpvMapHolder          []ClassBpvMap

	chosenFareOption int
}

// NewTravelSolution creates a validated TravelSolution
func NewTravelSolution(segmentPath []string, fareOptions []FareOption) (*TravelSolution, error) {
	if len(segmentPath) == 0 {
		return nil, fmt.Errorf("segment path cannot be empty")
	}
	for i, fo := range fareOptions {
		if len(fo.ClassPath) != len(segmentPath) {
			return nil, fmt.Errorf("fare option %d has %d class lists for %d segments",
				i, len(fo.ClassPath), len(segmentPath))
		}
	}
	return &TravelSolution{
		SegmentPath:      segmentPath,
		FareOptions:      fareOptions,
		chosenFareOption: -1,
	}, nil
}

// ResetHolders drops the per-segment maps of a previous lookup
func (ts *TravelSolution) ResetHolders() {
	ts.ClassAvailabilityMapHolder = nil
	ts.ClassYieldMapHolder = nil
	ts.ClassBpvMapHolder = nil
}

// ChooseFareOption marks the fare option selected by the customer
func (ts *TravelSolution) ChooseFareOption(index int) error {
	if index < 0 || index >= len(ts.FareOptions) {
		return fmt.Errorf("fare option index %d out of range [0,%d)", index, len(ts.FareOptions))
	}
	ts.chosenFareOption = index
	return nil
}

// ChosenFareOption returns the fare option selected by the customer
func (ts *TravelSolution) ChosenFareOption() (*FareOption, error) {
	if ts.chosenFareOption < 0 || ts.chosenFareOption >= len(ts.FareOptions) {
		return nil, fmt.Errorf("no fare option has been chosen")
	}
	return &ts.FareOptions[ts.chosenFareOption], nil
}

// DescribeSegmentPath returns the segment keys joined by ';'
func (ts *TravelSolution) DescribeSegmentPath() string {
	var sb strings.Builder
	for _, key := range ts.SegmentPath {
		sb.WriteString(key)
		sb.WriteString(";")
	}
	return sb.String()
}

// Describe returns the segment path and every fare option
func (ts *TravelSolution) Describe() string {
	var sb strings.Builder
	sb.WriteString(ts.DescribeSegmentPath())
	sb.WriteString(" ---")
	for i := range ts.FareOptions {
		sb.WriteString(" [")
		sb.WriteString(ts.FareOptions[i].Describe())
		sb.WriteString("]")
	}
	return sb.String()
}
