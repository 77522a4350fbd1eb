// Package sample builds a small but complete airline inventory used by the
// CLI, the example program and the tests.
//
// BA operates BA9 LHR-BKK-SYD (two legs, three segments, cabins J and Y) and
// markets BA1084 CDG-SFO, operated by AF084. AF owns AF084, and BA holds an
// image of it as a partner inventory.
package sample

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/repositories/memory"
)

// Sample keys
const (
	BA9LHRBKK    = "BA;9,2011-06-10;LHR,BKK"
	BA9BKKSYD    = "BA;9,2011-06-10;BKK,SYD"
	BA9LHRSYD    = "BA;9,2011-06-10;LHR,SYD"
	BA1084CDGSFO = "BA;1084,2011-03-20;CDG,SFO"
	AF084CDGSFO  = "AF;84,2011-03-20;CDG,SFO"
)

// Cabin capacities of the sample flights
const (
	BA9BusinessCapacity = 12
	BA9EconomyCapacity  = 30
	AF084Capacity       = 20
)

var (
	BA9Date   = time.Date(2011, time.June, 10, 0, 0, 0, 0, time.UTC)
	AF084Date = time.Date(2011, time.March, 20, 0, 0, 0, 0, time.UTC)
)

type classSpec struct {
	code         entities.ClassCode
	yield        float64
	availability entities.Availability
}

type cabinSpec struct {
	code    entities.CabinCode
	classes []classSpec
}

var (
	ba9Cabins = map[string][]cabinSpec{
		"LHR-BKK": {
			{code: "J", classes: []classSpec{{"J", 2400, 6}, {"C", 1800, 4}}},
			{code: "Y", classes: []classSpec{{"Y", 900, 12}, {"M", 600, 8}, {"Q", 350, 5}}},
		},
		"BKK-SYD": {
			{code: "J", classes: []classSpec{{"J", 2100, 6}, {"C", 1500, 4}}},
			{code: "Y", classes: []classSpec{{"Y", 800, 12}, {"M", 500, 8}, {"Q", 300, 5}}},
		},
		"LHR-SYD": {
			{code: "J", classes: []classSpec{{"J", 3800, 4}, {"C", 2900, 2}}},
			{code: "Y", classes: []classSpec{{"Y", 1500, 10}, {"M", 950, 6}, {"Q", 550, 3}}},
		},
	}
	af084Cabins = []cabinSpec{
		{code: "Y", classes: []classSpec{{"Y", 700, 10}, {"M", 450, 6}}},
	}
)

// BuildInventories returns the BA and AF inventories, not yet linked by
// routing and without bid-price vectors.
func BuildInventories() ([]*entities.Inventory, error) {
	af, err := buildAF084("AF")
	if err != nil {
		return nil, fmt.Errorf("failed to build AF inventory: %w", err)
	}

	afImage, err := buildAF084("AF")
	if err != nil {
		return nil, fmt.Errorf("failed to build AF partner image: %w", err)
	}

	ba, err := buildBA(afImage)
	if err != nil {
		return nil, fmt.Errorf("failed to build BA inventory: %w", err)
	}

	return []*entities.Inventory{ba, af}, nil
}

// BuildRepository loads the sample inventories into an in-memory repository
func BuildRepository() (*memory.InventoryRepository, error) {
	inventories, err := BuildInventories()
	if err != nil {
		return nil, err
	}

	repo := memory.NewInventoryRepository()
	if err := repo.LoadInventories(inventories); err != nil {
		return nil, fmt.Errorf("failed to load sample inventories: %w", err)
	}
	return repo, nil
}

func buildBA(afImage *entities.Inventory) (*entities.Inventory, error) {
	ba, err := entities.NewInventory("BA")
	if err != nil {
		return nil, err
	}

	fd, err := entities.NewFlightDate(9, BA9Date)
	if err != nil {
		return nil, err
	}
	ba.AddFlightDate(fd)

	for _, leg := range [][2]entities.AirportCode{{"LHR", "BKK"}, {"BKK", "SYD"}} {
		legDate, err := buildLeg(leg[0], leg[1], map[entities.CabinCode]entities.NbOfSeats{
			"J": BA9BusinessCapacity,
			"Y": BA9EconomyCapacity,
		})
		if err != nil {
			return nil, err
		}
		fd.AddLeg(legDate)
	}

	for _, od := range [][2]entities.AirportCode{{"LHR", "BKK"}, {"BKK", "SYD"}, {"LHR", "SYD"}} {
		segment, err := buildSegment(od[0], od[1], ba9Cabins[string(od[0])+"-"+string(od[1])])
		if err != nil {
			return nil, err
		}
		fd.AddSegment(segment)
	}

	// BA1084 is a marketing flight: its segment carries no seats of its own
	marketing, err := entities.NewFlightDate(1084, AF084Date)
	if err != nil {
		return nil, err
	}
	ba.AddFlightDate(marketing)

	marketingSegment, err := buildSegment("CDG", "SFO", af084Cabins)
	if err != nil {
		return nil, err
	}
	operating, ok := afImage.SegmentDate(entities.SegmentKey{
		FlightNumber:  84,
		DepartureDate: AF084Date,
		BoardingPoint: "CDG",
		OffPoint:      "SFO",
	})
	if !ok {
		return nil, fmt.Errorf("AF partner image has no AF084 CDG-SFO segment")
	}
	marketingSegment.OperatingSegment = operating
	marketing.AddSegment(marketingSegment)

	ba.AddPartner(afImage)
	return ba, nil
}

func buildAF084(airline entities.AirlineCode) (*entities.Inventory, error) {
	inv, err := entities.NewInventory(airline)
	if err != nil {
		return nil, err
	}

	fd, err := entities.NewFlightDate(84, AF084Date)
	if err != nil {
		return nil, err
	}
	inv.AddFlightDate(fd)

	leg, err := buildLeg("CDG", "SFO", map[entities.CabinCode]entities.NbOfSeats{"Y": AF084Capacity})
	if err != nil {
		return nil, err
	}
	fd.AddLeg(leg)

	segment, err := buildSegment("CDG", "SFO", af084Cabins)
	if err != nil {
		return nil, err
	}
	fd.AddSegment(segment)
	return inv, nil
}

func buildLeg(board, off entities.AirportCode, capacities map[entities.CabinCode]entities.NbOfSeats) (*entities.LegDate, error) {
	leg := &entities.LegDate{BoardingPoint: board, OffPoint: off}
	for _, code := range []entities.CabinCode{"J", "Y"} {
		capacity, ok := capacities[code]
		if !ok {
			continue
		}
		cabin, err := entities.NewLegCabin(code, capacity)
		if err != nil {
			return nil, fmt.Errorf("leg %s-%s: %w", board, off, err)
		}
		leg.AddCabin(cabin)
	}
	return leg, nil
}

func buildSegment(board, off entities.AirportCode, cabins []cabinSpec) (*entities.SegmentDate, error) {
	segment := &entities.SegmentDate{BoardingPoint: board, OffPoint: off}
	for _, spec := range cabins {
		cabin := &entities.SegmentCabin{Code: spec.code}
		for _, cs := range spec.classes {
			class, err := entities.NewBookingClass(cs.code, decimal.NewFromFloat(cs.yield), cs.availability)
			if err != nil {
				return nil, fmt.Errorf("segment %s-%s: %w", board, off, err)
			}
			cabin.AddClass(class)
		}
		segment.AddCabin(cabin)
	}
	return segment, nil
}
