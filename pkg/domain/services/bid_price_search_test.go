package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vsinha/airinv/pkg/domain/entities"
)

func TestSeatsAtYield(t *testing.T) {
	tests := []struct {
		name     string
		bpv      entities.BidPriceVector
		yield    float64
		expected entities.Availability
	}{
		{"empty vector", nil, 100, 0},
		{"yield below every bid price", entities.NewBidPriceVector(100, 150, 200), 50, 0},
		{"yield between bid prices", entities.NewBidPriceVector(100, 150, 200), 120, 1},
		{"yield equal to a bid price is covered", entities.NewBidPriceVector(100, 150, 200), 150, 2},
		{"yield above every bid price", entities.NewBidPriceVector(100, 150, 200), 250, 3},
		{"second leg of the two-segment scenario", entities.NewBidPriceVector(80, 120), 90, 1},
		{"flat default vector", entities.NewBidPriceVector(400, 400, 400, 400), 400, 4},
		{"flat default vector above yield", entities.NewBidPriceVector(400, 400, 400, 400), 399.99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeatsAtYield(tt.bpv, decimal.NewFromFloat(tt.yield))
			assert.Equal(t, tt.expected, got)
		})
	}
}

// reverseUpperBound counts, on the reversed vector, the trailing elements not
// greater than the yield: the reversed-vector reading of the same search.
func reverseUpperBound(bpv entities.BidPriceVector, yield decimal.Decimal) entities.Availability {
	reversed := make(entities.BidPriceVector, len(bpv))
	for i, bp := range bpv {
		reversed[len(bpv)-1-i] = bp
	}
	var n entities.Availability
	for i := len(reversed) - 1; i >= 0 && !reversed[i].GreaterThan(yield); i-- {
		n++
	}
	return n
}

func TestSeatsAtYield_MatchesReversedVectorReading(t *testing.T) {
	vectors := []entities.BidPriceVector{
		entities.NewBidPriceVector(),
		entities.NewBidPriceVector(10),
		entities.NewBidPriceVector(100, 150, 200),
		entities.NewBidPriceVector(80, 80, 120, 120, 300),
	}
	for _, bpv := range vectors {
		for y := 0; y <= 350; y += 5 {
			yield := decimal.NewFromInt(int64(y))
			assert.Equal(t, reverseUpperBound(bpv, yield), SeatsAtYield(bpv, yield),
				"vector %s, yield %d", bpv, y)
		}
	}
}

func TestSeatsAtYield_Properties(t *testing.T) {
	bpv := entities.NewBidPriceVector(50, 75, 75, 110, 200, 260)

	previous := entities.Availability(0)
	for y := 0; y <= 300; y += 10 {
		got := SeatsAtYield(bpv, decimal.NewFromInt(int64(y)))
		assert.GreaterOrEqual(t, got, entities.Availability(0))
		assert.LessOrEqual(t, got, entities.Availability(len(bpv)))
		assert.GreaterOrEqual(t, got, previous, "count must not shrink as the yield grows (y=%d)", y)
		previous = got
	}

	// Lowering any bid price (down to its predecessor, keeping the order)
	// never removes a sellable seat
	yield := decimal.NewFromInt(100)
	base := SeatsAtYield(bpv, yield)
	for i := range bpv {
		lowered := make(entities.BidPriceVector, len(bpv))
		copy(lowered, bpv)
		if i == 0 {
			lowered[i] = decimal.Zero
		} else {
			lowered[i] = lowered[i-1]
		}
		assert.GreaterOrEqual(t, SeatsAtYield(lowered, yield), base, "lowering index %d", i)
	}
}
