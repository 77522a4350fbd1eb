package entities

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxBidPrice stands for an infinite bid price: a cabin with no seat left
// cannot be sold whatever the yield.
var MaxBidPrice = decimal.NewFromFloat(math.MaxFloat64)

// BidPriceVector holds one bid price per remaining seat of a leg cabin,
// non-decreasing with seat depletion. Index 0 is the marginal value of the
// first seat sold from empty, the last index the value of the last seat left.
type BidPriceVector []decimal.Decimal

// Last returns the bid price of the last remaining seat
func (v BidPriceVector) Last() (decimal.Decimal, bool) {
	if len(v) == 0 {
		return decimal.Zero, false
	}
	return v[len(v)-1], true
}

// IsNonDecreasing reports whether the vector is sorted by seat depletion
func (v BidPriceVector) IsNonDecreasing() bool {
	for i := 1; i < len(v); i++ {
		if v[i].LessThan(v[i-1]) {
			return false
		}
	}
	return true
}

func (v BidPriceVector) String() string {
	values := make([]string, len(v))
	for i, bp := range v {
		values[i] = bp.String()
	}
	return "[" + strings.Join(values, ",") + "]"
}

// NewBidPriceVector builds a vector from float values
func NewBidPriceVector(values ...float64) BidPriceVector {
	bpv := make(BidPriceVector, len(values))
	for i, v := range values {
		bpv[i] = decimal.NewFromFloat(v)
	}
	return bpv
}
