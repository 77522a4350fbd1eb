package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AirlineCode identifies a carrier and therefore its inventory
type AirlineCode string

// FlightNumber is the numeric part of a flight designator
type FlightNumber int

// AirportCode is an IATA airport code
type AirportCode string

// CabinCode identifies a cabin (e.g. "Y", "J") within a leg or segment
type CabinCode string

// ClassCode identifies a booking class (e.g. "Y", "M") within a cabin
type ClassCode string

// DateLayout is the date format used inside flight-date and segment keys
const DateLayout = "2006-01-02"

// SegmentKey is the parsed form of a segment-date key such as
// "SV;5,2010-03-11;KBP,JFK".
type SegmentKey struct {
	Airline       AirlineCode
	FlightNumber  FlightNumber
	DepartureDate time.Time
	BoardingPoint AirportCode
	OffPoint      AirportCode
}

// ParseSegmentKey parses "AIRLINE;FLIGHT,DATE;BOARD,OFF"
func ParseSegmentKey(key string) (SegmentKey, error) {
	parts := strings.Split(key, ";")
	if len(parts) != 3 {
		return SegmentKey{}, fmt.Errorf("segment key %q must have 3 ';'-separated parts, got %d", key, len(parts))
	}

	airline := strings.TrimSpace(parts[0])
	if airline == "" {
		return SegmentKey{}, fmt.Errorf("segment key %q has an empty airline code", key)
	}

	flightNumber, departureDate, err := parseFlightDateKey(parts[1])
	if err != nil {
		return SegmentKey{}, fmt.Errorf("segment key %q: %w", key, err)
	}

	points := strings.Split(parts[2], ",")
	if len(points) != 2 || points[0] == "" || points[1] == "" {
		return SegmentKey{}, fmt.Errorf("segment key %q must end with BOARD,OFF", key)
	}

	return SegmentKey{
		Airline:       AirlineCode(airline),
		FlightNumber:  flightNumber,
		DepartureDate: departureDate,
		BoardingPoint: AirportCode(strings.TrimSpace(points[0])),
		OffPoint:      AirportCode(strings.TrimSpace(points[1])),
	}, nil
}

func parseFlightDateKey(s string) (FlightNumber, time.Time, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return 0, time.Time{}, fmt.Errorf("flight-date part %q must be FLIGHT,DATE", s)
	}
	number, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid flight number %q: %w", fields[0], err)
	}
	if number <= 0 {
		return 0, time.Time{}, fmt.Errorf("flight number must be positive, got %d", number)
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid departure date %q: %w", fields[1], err)
	}
	return FlightNumber(number), date, nil
}

// InventoryKey returns the key of the inventory owning the segment
func (k SegmentKey) InventoryKey() AirlineCode {
	return k.Airline
}

// FlightDateKey returns the "FLIGHT,DATE" part of the key
func (k SegmentKey) FlightDateKey() string {
	return FlightDateKey(k.FlightNumber, k.DepartureDate)
}

func (k SegmentKey) String() string {
	return fmt.Sprintf("%s;%s;%s,%s", k.Airline, k.FlightDateKey(), k.BoardingPoint, k.OffPoint)
}

// FlightDateKey formats the key of a flight date
func FlightDateKey(number FlightNumber, departureDate time.Time) string {
	return fmt.Sprintf("%d,%s", number, departureDate.Format(DateLayout))
}
