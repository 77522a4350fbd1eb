package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NbOfSeats counts seats (capacity, bookings, party sizes)
type NbOfSeats int64

// MaximalNumberOfLegsInFlight bounds the leg walk of a segment routing
const MaximalNumberOfLegsInFlight = 7

// BookingClass holds the counters of one booking class of a segment cabin
type BookingClass struct {
	Code                ClassCode
	Yield               decimal.Decimal
	NbOfBookings        NbOfSeats
	SegmentAvailability Availability
}

// NewBookingClass creates a validated BookingClass
func NewBookingClass(code ClassCode, yield decimal.Decimal, availability Availability) (*BookingClass, error) {
	if code == "" {
		return nil, fmt.Errorf("class code cannot be empty")
	}
	if yield.IsNegative() {
		return nil, fmt.Errorf("yield cannot be negative, got %s", yield)
	}
	if availability < 0 {
		return nil, fmt.Errorf("availability cannot be negative, got %d", availability)
	}
	return &BookingClass{
		Code:                code,
		Yield:               yield,
		SegmentAvailability: availability,
	}, nil
}

// LegCabin is the cabin-level view of one flight leg. It owns the bid-price vector.
type LegCabin struct {
	Code             CabinCode
	PhysicalCapacity NbOfSeats
	SoldSeats        NbOfSeats
	AvailabilityPool NbOfSeats
	BidPriceVector   BidPriceVector
	PreviousBidPrice decimal.Decimal
	CurrentBidPrice  decimal.Decimal

	// Segment cabins crossing this leg cabin, filled by the routing linkage
	SegmentCabins []*SegmentCabin

	leg *LegDate
}

// NewLegCabin creates a validated LegCabin with an empty bid-price vector
func NewLegCabin(code CabinCode, capacity NbOfSeats) (*LegCabin, error) {
	if code == "" {
		return nil, fmt.Errorf("cabin code cannot be empty")
	}
	if capacity < 0 {
		return nil, fmt.Errorf("physical capacity cannot be negative, got %d", capacity)
	}
	return &LegCabin{
		Code:             code,
		PhysicalCapacity: capacity,
		AvailabilityPool: capacity,
	}, nil
}

// EmptyBidPriceVector drops every bid price of the cabin
func (c *LegCabin) EmptyBidPriceVector() {
	c.BidPriceVector = c.BidPriceVector[:0]
}

// LegDate returns the leg the cabin belongs to
func (c *LegCabin) LegDate() *LegDate {
	return c.leg
}

// FullerKey distinguishes leg cabins of the same code along a routing
func (c *LegCabin) FullerKey() string {
	if c.leg == nil {
		return string(c.Code)
	}
	return fmt.Sprintf("%s;%s", c.leg.BoardingPoint, c.Code)
}

// LegDate is one flight leg of a flight date
type LegDate struct {
	BoardingPoint AirportCode
	OffPoint      AirportCode
	Cabins        []*LegCabin

	// Segment dates routed over this leg, filled by the routing linkage
	Segments []*SegmentDate

	flightDate *FlightDate
}

// AddCabin attaches a leg cabin to the leg
func (l *LegDate) AddCabin(cabin *LegCabin) {
	cabin.leg = l
	l.Cabins = append(l.Cabins, cabin)
}

// Cabin returns the leg cabin with the given code
func (l *LegDate) Cabin(code CabinCode) (*LegCabin, bool) {
	for _, c := range l.Cabins {
		if c.Code == code {
			return c, true
		}
	}
	return nil, false
}

// SegmentCabin is the cabin-level view of a segment date
type SegmentCabin struct {
	Code           CabinCode
	Classes        []*BookingClass
	CommittedSpace NbOfSeats

	// Routing leg cabins in boarding order, filled by the routing linkage
	LegCabins []*LegCabin

	segment *SegmentDate
}

// AddClass attaches a booking class to the segment cabin
func (c *SegmentCabin) AddClass(class *BookingClass) {
	c.Classes = append(c.Classes, class)
}

// Class returns the booking class with the given code
func (c *SegmentCabin) Class(code ClassCode) (*BookingClass, bool) {
	for _, bc := range c.Classes {
		if bc.Code == code {
			return bc, true
		}
	}
	return nil, false
}

// FullerKey distinguishes segment cabins of the same code crossing a leg
func (c *SegmentCabin) FullerKey() string {
	if c.segment == nil {
		return string(c.Code)
	}
	return fmt.Sprintf("%s,%s;%s", c.segment.BoardingPoint, c.segment.OffPoint, c.Code)
}

// SegmentDate is an origin-destination segment of a flight date
type SegmentDate struct {
	BoardingPoint AirportCode
	OffPoint      AirportCode
	Cabins        []*SegmentCabin

	// Set when the segment is only marketed by the owning carrier
	OperatingSegment *SegmentDate

	// Routing legs in boarding order, filled by the routing linkage
	Legs []*LegDate

	flightDate *FlightDate
}

// AddCabin attaches a segment cabin to the segment
func (s *SegmentDate) AddCabin(cabin *SegmentCabin) {
	cabin.segment = s
	s.Cabins = append(s.Cabins, cabin)
}

// FlightDate returns the flight date owning the segment
func (s *SegmentDate) FlightDate() *FlightDate {
	return s.flightDate
}

// Operating returns the segment carrying the seats: the operating segment
// for a marketing-only segment, the segment itself otherwise.
func (s *SegmentDate) Operating() *SegmentDate {
	if s.OperatingSegment != nil {
		return s.OperatingSegment
	}
	return s
}

// Class looks a booking class up across the cabins of the segment
func (s *SegmentDate) Class(code ClassCode) (*SegmentCabin, *BookingClass, bool) {
	for _, cabin := range s.Cabins {
		if bc, ok := cabin.Class(code); ok {
			return cabin, bc, true
		}
	}
	return nil, nil, false
}

// FlightDate is one departure of a flight
type FlightDate struct {
	FlightNumber  FlightNumber
	DepartureDate time.Time
	Legs          []*LegDate
	Segments      []*SegmentDate

	inventory *Inventory
}

// NewFlightDate creates a validated FlightDate
func NewFlightDate(number FlightNumber, departureDate time.Time) (*FlightDate, error) {
	if number <= 0 {
		return nil, fmt.Errorf("flight number must be positive, got %d", number)
	}
	if departureDate.IsZero() {
		return nil, fmt.Errorf("departure date cannot be empty")
	}
	return &FlightDate{FlightNumber: number, DepartureDate: departureDate}, nil
}

// Key returns "FLIGHT,DATE"
func (f *FlightDate) Key() string {
	return FlightDateKey(f.FlightNumber, f.DepartureDate)
}

// Inventory returns the inventory owning the flight date
func (f *FlightDate) Inventory() *Inventory {
	return f.inventory
}

// AddLeg attaches a leg date to the flight date
func (f *FlightDate) AddLeg(leg *LegDate) {
	leg.flightDate = f
	f.Legs = append(f.Legs, leg)
}

// AddSegment attaches a segment date to the flight date
func (f *FlightDate) AddSegment(segment *SegmentDate) {
	segment.flightDate = f
	f.Segments = append(f.Segments, segment)
}

// Leg returns the leg boarding at the given airport
func (f *FlightDate) Leg(boardingPoint AirportCode) (*LegDate, bool) {
	for _, l := range f.Legs {
		if l.BoardingPoint == boardingPoint {
			return l, true
		}
	}
	return nil, false
}

// Segment returns the segment between the given airports
func (f *FlightDate) Segment(boardingPoint, offPoint AirportCode) (*SegmentDate, bool) {
	for _, s := range f.Segments {
		if s.BoardingPoint == boardingPoint && s.OffPoint == offPoint {
			return s, true
		}
	}
	return nil, false
}

// Inventory is the flight inventory of one airline. Partner inventories are
// images of other carriers' inventories held by this airline.
type Inventory struct {
	Airline     AirlineCode
	FlightDates []*FlightDate
	Partners    []*Inventory
}

// NewInventory creates a validated Inventory
func NewInventory(airline AirlineCode) (*Inventory, error) {
	if airline == "" {
		return nil, fmt.Errorf("airline code cannot be empty")
	}
	return &Inventory{Airline: airline}, nil
}

// AddFlightDate attaches a flight date to the inventory
func (i *Inventory) AddFlightDate(fd *FlightDate) {
	fd.inventory = i
	i.FlightDates = append(i.FlightDates, fd)
}

// AddPartner nests a partner inventory image
func (i *Inventory) AddPartner(partner *Inventory) {
	i.Partners = append(i.Partners, partner)
}

// Partner returns the partner image for the given airline
func (i *Inventory) Partner(airline AirlineCode) (*Inventory, bool) {
	for _, p := range i.Partners {
		if p.Airline == airline {
			return p, true
		}
	}
	return nil, false
}

// FlightDate returns the flight date with the given number and departure date
func (i *Inventory) FlightDate(number FlightNumber, departureDate time.Time) (*FlightDate, bool) {
	for _, fd := range i.FlightDates {
		if fd.FlightNumber == number && fd.DepartureDate.Equal(departureDate) {
			return fd, true
		}
	}
	return nil, false
}

// FlightDateByKey returns the flight date whose key is "FLIGHT,DATE"
func (i *Inventory) FlightDateByKey(key string) (*FlightDate, bool) {
	for _, fd := range i.FlightDates {
		if fd.Key() == key {
			return fd, true
		}
	}
	return nil, false
}

// SegmentDate resolves a parsed segment key within this inventory
func (i *Inventory) SegmentDate(key SegmentKey) (*SegmentDate, bool) {
	fd, ok := i.FlightDate(key.FlightNumber, key.DepartureDate)
	if !ok {
		return nil, false
	}
	return fd.Segment(key.BoardingPoint, key.OffPoint)
}

// LegCabins lists every leg cabin of the inventory's own flight dates
func (i *Inventory) LegCabins() []*LegCabin {
	var cabins []*LegCabin
	for _, fd := range i.FlightDates {
		for _, leg := range fd.Legs {
			cabins = append(cabins, leg.Cabins...)
		}
	}
	return cabins
}
