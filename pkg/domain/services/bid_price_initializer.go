package services

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/airinv/pkg/domain/entities"
)

// SetDefaultBidPriceVectors rebuilds the bid-price vector of every leg cabin
// of the inventory and of its partner images: one entry per seat of physical
// capacity, all equal to defaultBidPrice. The previous and current bid prices
// are set to the last entry (zero for a cabin without capacity).
// It returns the number of leg cabins initialized.
func SetDefaultBidPriceVectors(inv *entities.Inventory, defaultBidPrice decimal.Decimal) int {
	count := 0
	for _, cabin := range inv.LegCabins() {
		setDefaultBidPriceVector(cabin, defaultBidPrice)
		count++
	}
	for _, partner := range inv.Partners {
		count += SetDefaultBidPriceVectors(partner, defaultBidPrice)
	}
	return count
}

// SetFlightDateDefaultBidPriceVectors rebuilds the default bid-price vectors
// of the leg cabins of one flight date and returns how many were set
func SetFlightDateDefaultBidPriceVectors(fd *entities.FlightDate, defaultBidPrice decimal.Decimal) int {
	count := 0
	for _, leg := range fd.Legs {
		for _, cabin := range leg.Cabins {
			setDefaultBidPriceVector(cabin, defaultBidPrice)
			count++
		}
	}
	return count
}

func setDefaultBidPriceVector(cabin *entities.LegCabin, defaultBidPrice decimal.Decimal) {
	cabin.EmptyBidPriceVector()
	for seat := entities.NbOfSeats(0); seat < cabin.PhysicalCapacity; seat++ {
		cabin.BidPriceVector = append(cabin.BidPriceVector, defaultBidPrice)
	}

	last, ok := cabin.BidPriceVector.Last()
	if !ok {
		last = decimal.Zero
	}
	cabin.PreviousBidPrice = last
	cabin.CurrentBidPrice = last
}
