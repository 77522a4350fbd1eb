package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vsinha/airinv/pkg/domain/entities"
)

// SeatsAtYield returns the number of seats of a leg cabin sellable at the
// given yield: the seats whose bid price the yield covers.
//
// The vector is non-decreasing, so this is an upper-bound search: the offset
// of the first bid price strictly greater than the yield. Reading the reversed
// (non-increasing) vector from its far end gives the same count.
func SeatsAtYield(bpv entities.BidPriceVector, yield decimal.Decimal) entities.Availability {
	n := sort.Search(len(bpv), func(i int) bool {
		return bpv[i].GreaterThan(yield)
	})
	return entities.Availability(n)
}
