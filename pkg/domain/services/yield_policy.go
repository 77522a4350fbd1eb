package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vsinha/airinv/pkg/domain/entities"
)

// Total-yield policy names, as used in configuration
const (
	TotalYieldFare          = "fare"
	TotalYieldSegmentYields = "segment-yields"
)

// TotalYieldPolicy values a multi-segment fare option for the aggregate
// bid-price admission test of the IBP models
type TotalYieldPolicy interface {
	Name() string
	TotalYield(fo *entities.FareOption, segmentYields []decimal.Decimal) decimal.Decimal
}

// FareAsTotalYield takes the fare of the fare option as its total yield.
// This is a provisional simplification until prorated yields are available.
type FareAsTotalYield struct{}

func (FareAsTotalYield) Name() string { return TotalYieldFare }

func (FareAsTotalYield) TotalYield(fo *entities.FareOption, _ []decimal.Decimal) decimal.Decimal {
	return fo.Fare
}

// SummedSegmentYield sums the class yields of every segment
type SummedSegmentYield struct{}

func (SummedSegmentYield) Name() string { return TotalYieldSegmentYields }

func (SummedSegmentYield) TotalYield(_ *entities.FareOption, segmentYields []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, y := range segmentYields {
		total = total.Add(y)
	}
	return total
}

// TotalYieldPolicyByName returns the policy registered under name
func TotalYieldPolicyByName(name string) (TotalYieldPolicy, error) {
	switch name {
	case "", TotalYieldFare:
		return FareAsTotalYield{}, nil
	case TotalYieldSegmentYields:
		return SummedSegmentYield{}, nil
	default:
		return nil, fmt.Errorf("unknown total-yield policy %q", name)
	}
}
