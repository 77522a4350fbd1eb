package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/events"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidateFormat checks an output format name
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// FareOptionResult is the JSON view of a fare option
type FareOptionResult struct {
	ClassPath    []string `json:"class_path"`
	Fare         string   `json:"fare"`
	Availability int64    `json:"availability"`
}

// TravelSolutionResult is the JSON view of a travel solution
type TravelSolutionResult struct {
	SegmentPath []string           `json:"segment_path"`
	Technique   string             `json:"technique"`
	FareOptions []FareOptionResult `json:"fare_options"`
}

// LegCabinResult is the JSON view of a leg cabin
type LegCabinResult struct {
	Airline          string `json:"airline"`
	FlightDate       string `json:"flight_date"`
	Leg              string `json:"leg"`
	Cabin            string `json:"cabin"`
	Capacity         int64  `json:"capacity"`
	Sold             int64  `json:"sold"`
	AvailabilityPool int64  `json:"availability_pool"`
	BidPrices        int    `json:"bid_prices"`
	CurrentBidPrice  string `json:"current_bid_price"`
}

// EventResult is the JSON view of a queued event
type EventResult struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Airline   string      `json:"airline"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// WriteAvailability prints the fare-option availabilities of travel solutions
func WriteAvailability(w io.Writer, format string, technique entities.PartnershipTechnique, solutions []*entities.TravelSolution) error {
	results := make([]TravelSolutionResult, len(solutions))
	for i, ts := range solutions {
		result := TravelSolutionResult{
			SegmentPath: ts.SegmentPath,
			Technique:   technique.String(),
			FareOptions: make([]FareOptionResult, len(ts.FareOptions)),
		}
		for j, fo := range ts.FareOptions {
			result.FareOptions[j] = FareOptionResult{
				ClassPath:    fo.ClassPath,
				Fare:         fo.Fare.String(),
				Availability: int64(fo.Availability),
			}
		}
		results[i] = result
	}

	if format == FormatJSON {
		return writeJSON(w, results)
	}

	fmt.Fprintf(w, "📊 Availability (%s)\n", technique)
	fmt.Fprintf(w, "======================\n\n")
	for _, result := range results {
		fmt.Fprintf(w, "✈️  %s\n", strings.Join(result.SegmentPath, " + "))
		fmt.Fprintf(w, "%-20s %-10s %-12s\n", "Class Path", "Fare", "Availability")
		fmt.Fprintf(w, "%-20s %-10s %-12s\n", "--------------------", "----------", "------------")
		for _, fo := range result.FareOptions {
			fmt.Fprintf(w, "%-20s %-10s %-12s\n",
				strings.Join(fo.ClassPath, "-"), fo.Fare, formatAvailability(fo.Availability))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteLegCabins prints the leg cabins of inventories, partner images included
func WriteLegCabins(w io.Writer, format string, inventories []*entities.Inventory) error {
	var results []LegCabinResult
	for _, inv := range inventories {
		results = appendLegCabins(results, inv)
	}

	if format == FormatJSON {
		return writeJSON(w, results)
	}

	fmt.Fprintf(w, "💺 Leg Cabins\n")
	fmt.Fprintf(w, "=============\n\n")
	fmt.Fprintf(w, "%-8s %-16s %-10s %-6s %-9s %-6s %-6s %-12s\n",
		"Airline", "Flight Date", "Leg", "Cabin", "Capacity", "Sold", "BPV", "Bid Price")
	fmt.Fprintf(w, "%-8s %-16s %-10s %-6s %-9s %-6s %-6s %-12s\n",
		"--------", "----------------", "----------", "------", "---------", "------", "------", "------------")
	for _, r := range results {
		fmt.Fprintf(w, "%-8s %-16s %-10s %-6s %-9d %-6d %-6d %-12s\n",
			r.Airline, r.FlightDate, r.Leg, r.Cabin, r.Capacity, r.Sold, r.BidPrices, r.CurrentBidPrice)
	}
	return nil
}

func appendLegCabins(results []LegCabinResult, inv *entities.Inventory) []LegCabinResult {
	for _, fd := range inv.FlightDates {
		for _, leg := range fd.Legs {
			for _, cabin := range leg.Cabins {
				results = append(results, LegCabinResult{
					Airline:          string(inv.Airline),
					FlightDate:       fd.Key(),
					Leg:              fmt.Sprintf("%s-%s", leg.BoardingPoint, leg.OffPoint),
					Cabin:            string(cabin.Code),
					Capacity:         int64(cabin.PhysicalCapacity),
					Sold:             int64(cabin.SoldSeats),
					AvailabilityPool: int64(cabin.AvailabilityPool),
					BidPrices:        len(cabin.BidPriceVector),
					CurrentBidPrice:  cabin.CurrentBidPrice.String(),
				})
			}
		}
	}
	for _, partner := range inv.Partners {
		results = appendLegCabins(results, partner)
	}
	return results
}

// WriteEvents prints queued events and the planned count per type
func WriteEvents(w io.Writer, format string, queued []events.Event, status map[string]events.ProgressStatus) error {
	results := make([]EventResult, len(queued))
	for i, e := range queued {
		results[i] = EventResult{
			ID:        e.ID().String(),
			Type:      e.Type(),
			Airline:   e.StreamID(),
			Timestamp: e.Timestamp(),
			Data:      e.Data(),
		}
	}

	if format == FormatJSON {
		return writeJSON(w, struct {
			Events []EventResult                    `json:"events"`
			Status map[string]events.ProgressStatus `json:"status"`
		}{results, status})
	}

	fmt.Fprintf(w, "🗓️  Event Queue\n")
	fmt.Fprintf(w, "==============\n\n")
	eventTypes := make([]string, 0, len(status))
	for eventType := range status {
		eventTypes = append(eventTypes, eventType)
	}
	sort.Strings(eventTypes)
	for _, eventType := range eventTypes {
		fmt.Fprintf(w, "%-10s planned: %d, processed: %d\n",
			eventType, status[eventType].Planned, status[eventType].Processed)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-30s %-10s %-8s %-s\n", "Timestamp", "Type", "Airline", "Detail")
	fmt.Fprintf(w, "%-30s %-10s %-8s %-s\n", "------------------------------", "----------", "--------", "------")
	for _, r := range results {
		fmt.Fprintf(w, "%-30s %-10s %-8s %s\n",
			r.Timestamp.Format(time.RFC3339Nano), r.Type, r.Airline, describeEventData(r.Data))
	}
	return nil
}

// WriteBooking prints the reference of a sale
func WriteBooking(w io.Writer, format string, id string, fo *entities.FareOption, partySize entities.NbOfSeats) error {
	if format == FormatJSON {
		return writeJSON(w, struct {
			ID        string   `json:"id"`
			ClassPath []string `json:"class_path"`
			Fare      string   `json:"fare"`
			PartySize int64    `json:"party_size"`
		}{id, fo.ClassPath, fo.Fare.String(), int64(partySize)})
	}

	fmt.Fprintf(w, "✅ Booking %s: %d x %s at %s\n", id, partySize, strings.Join(fo.ClassPath, "-"), fo.Fare)
	return nil
}

func describeEventData(data interface{}) string {
	switch d := data.(type) {
	case events.OptimisationNotification:
		return fmt.Sprintf("%s DCP %d", d.FlightDateKey, d.DCP)
	case events.Snapshot:
		return "snapshot"
	default:
		return ""
	}
}

func formatAvailability(avl int64) string {
	if avl == int64(entities.MaxAvailability) {
		return "unbounded"
	}
	return fmt.Sprintf("%d", avl)
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
