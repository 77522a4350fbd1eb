package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBookingClass_Validation(t *testing.T) {
	validClass, err := NewBookingClass("Y", decimal.NewFromInt(400), 10)
	if err != nil {
		t.Fatalf("Expected valid class creation to succeed: %v", err)
	}
	if validClass.SegmentAvailability != 10 {
		t.Errorf("Expected availability 10, got %d", validClass.SegmentAvailability)
	}

	testCases := []struct {
		name         string
		code         ClassCode
		yield        decimal.Decimal
		availability Availability
		expectError  string
	}{
		{"empty class code", "", decimal.NewFromInt(400), 10, "class code cannot be empty"},
		{"negative yield", "Y", decimal.NewFromInt(-1), 10, "yield cannot be negative, got -1"},
		{"negative availability", "Y", decimal.NewFromInt(400), -5, "availability cannot be negative, got -5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBookingClass(tc.code, tc.yield, tc.availability)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestLegCabin_Validation(t *testing.T) {
	cabin, err := NewLegCabin("Y", 150)
	if err != nil {
		t.Fatalf("Expected valid cabin creation to succeed: %v", err)
	}
	if cabin.AvailabilityPool != 150 {
		t.Errorf("Expected availability pool 150, got %d", cabin.AvailabilityPool)
	}

	if _, err := NewLegCabin("", 10); err == nil || err.Error() != "cabin code cannot be empty" {
		t.Errorf("Expected empty cabin code error, got %v", err)
	}
	if _, err := NewLegCabin("Y", -1); err == nil || err.Error() != "physical capacity cannot be negative, got -1" {
		t.Errorf("Expected negative capacity error, got %v", err)
	}
}

func TestInventory_SegmentDateLookup(t *testing.T) {
	departure := time.Date(2011, 6, 10, 0, 0, 0, 0, time.UTC)

	inv, err := NewInventory("BA")
	if err != nil {
		t.Fatalf("Failed to create inventory: %v", err)
	}
	fd, err := NewFlightDate(9, departure)
	if err != nil {
		t.Fatalf("Failed to create flight date: %v", err)
	}
	inv.AddFlightDate(fd)

	leg := &LegDate{BoardingPoint: "LHR", OffPoint: "BKK"}
	cabin, _ := NewLegCabin("Y", 100)
	leg.AddCabin(cabin)
	fd.AddLeg(leg)

	segment := &SegmentDate{BoardingPoint: "LHR", OffPoint: "BKK"}
	fd.AddSegment(segment)

	key, err := ParseSegmentKey("BA;9,2011-06-10;LHR,BKK")
	if err != nil {
		t.Fatalf("Failed to parse key: %v", err)
	}

	found, ok := inv.SegmentDate(key)
	if !ok {
		t.Fatal("Expected segment date to be found")
	}
	if found != segment {
		t.Error("Expected the registered segment date")
	}
	if found.FlightDate().Inventory() != inv {
		t.Error("Expected parent links up to the inventory")
	}
	if cabin.FullerKey() != "LHR;Y" {
		t.Errorf("Expected fuller key LHR;Y, got %s", cabin.FullerKey())
	}

	missing, _ := ParseSegmentKey("BA;9,2011-06-11;LHR,BKK")
	if _, ok := inv.SegmentDate(missing); ok {
		t.Error("Expected no segment date for another departure date")
	}

	if got := len(inv.LegCabins()); got != 1 {
		t.Errorf("Expected 1 leg cabin, got %d", got)
	}
}

func TestBidPriceVector_Last(t *testing.T) {
	bpv := NewBidPriceVector(100, 150, 200)
	last, ok := bpv.Last()
	if !ok || !last.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Expected last bid price 200, got %s (ok=%v)", last, ok)
	}
	if !bpv.IsNonDecreasing() {
		t.Error("Expected vector to be non-decreasing")
	}

	var empty BidPriceVector
	if _, ok := empty.Last(); ok {
		t.Error("Expected no last bid price for an empty vector")
	}
	if NewBidPriceVector(3, 1).IsNonDecreasing() {
		t.Error("Expected [3,1] to be reported as decreasing")
	}
}
