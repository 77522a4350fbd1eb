package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
)

// AvailabilityModel computes the availability of every fare option of a
// travel solution from the per-segment maps filled by the segment lookup
type AvailabilityModel interface {
	Name() string
	Calculate(ts *entities.TravelSolution) error
}

// ModelOptions tunes the bid-price based models
type ModelOptions struct {
	// YieldCoefficient prorates the total yield of multi-carrier itineraries
	YieldCoefficient decimal.Decimal
	TotalYield       TotalYieldPolicy
	Logger           *slog.Logger
}

// DefaultModelOptions returns a coefficient of 1 and the fare as total yield
func DefaultModelOptions() ModelOptions {
	return ModelOptions{
		YieldCoefficient: decimal.NewFromInt(1),
		TotalYield:       FareAsTotalYield{},
		Logger:           slog.Default(),
	}
}

// ModelFor returns the availability model of a partnership technique
func ModelFor(technique entities.PartnershipTechnique, opts ModelOptions) (AvailabilityModel, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.TotalYield == nil {
		opts.TotalYield = FareAsTotalYield{}
	}

	switch technique {
	case entities.TechniqueNone:
		return &AUModel{logger: opts.Logger}, nil
	case entities.TechniqueRAEDA, entities.TechniqueRAEYP:
		return &RAEModel{logger: opts.Logger}, nil
	case entities.TechniqueIBPDA, entities.TechniqueIBPYP:
		return &IBPModel{opts: opts, protective: true}, nil
	case entities.TechniqueIBPYPU, entities.TechniqueRMC, entities.TechniqueARMC:
		return &IBPModel{opts: opts}, nil
	default:
		return nil, domainerrors.NewInvariantError(domainerrors.CodeUnknownTechnique,
			"no availability model for partnership technique %d", int(technique))
	}
}

// AUModel takes, for each fare option, the minimum class availability
// across the segments
type AUModel struct {
	logger *slog.Logger
}

func (m *AUModel) Name() string { return "AU" }

func (m *AUModel) Calculate(ts *entities.TravelSolution) error {
	holder := ts.ClassAvailabilityMapHolder

	for i := range ts.FareOptions {
		fo := &ts.FareOptions[i]
		if len(fo.ClassPath) != len(holder) {
			return pathMismatch(ts, fo, "class-availability", len(holder))
		}

		avl := entities.MaxAvailability
		for seg, classList := range fo.ClassPath {
			code, err := classCodeOf(ts, classList, seg)
			if err != nil {
				return err
			}

			classAvl, ok := holder[seg][code]
			if !ok {
				m.logger.Debug("no availability has been set up for the class",
					"class", code, "travel_solution", ts.Describe())
				return domainerrors.NewClassNotFoundError("class-availability", string(code), seg, ts.Describe())
			}
			avl = entities.MinAvailability(avl, classAvl)
		}
		if avl < 0 {
			avl = 0
		}

		fo.Availability = avl
		logFareOption(m.logger, ts, fo)
	}
	return nil
}

// RAEModel runs the bid-price search on every segment and keeps the
// binding (smallest) result
type RAEModel struct {
	logger *slog.Logger
}

func (m *RAEModel) Name() string { return "RAE" }

func (m *RAEModel) Calculate(ts *entities.TravelSolution) error {
	for i := range ts.FareOptions {
		fo := &ts.FareOptions[i]
		quotes, err := quoteSegments(m.logger, ts, fo)
		if err != nil {
			return err
		}

		fo.Availability = segmentAvailability(quotes)
		logFareOption(m.logger, ts, fo)
	}
	return nil
}

// IBPModel adds to the RAE search an aggregate test on multi-segment fare
// options: the weighted total yield must cover the total bid price. The
// protective variant raises the total bid price to N times the largest
// segment bid price (maximin, equal 1/N proration between partners).
type IBPModel struct {
	opts       ModelOptions
	protective bool
}

func (m *IBPModel) Name() string {
	if m.protective {
		return "ProtectiveIBP"
	}
	return "IBP"
}

func (m *IBPModel) Calculate(ts *entities.TravelSolution) error {
	logger := m.opts.Logger

	for i := range ts.FareOptions {
		fo := &ts.FareOptions[i]
		quotes, err := quoteSegments(logger, ts, fo)
		if err != nil {
			return err
		}

		avl := segmentAvailability(quotes)
		totals := AggregateBidPrices(quotes)
		totalBidPrice := totals.Total
		if m.protective {
			totalBidPrice = totals.Protective(len(quotes))
		}

		if len(quotes) > 1 {
			yields := make([]decimal.Decimal, len(quotes))
			for s, q := range quotes {
				yields[s] = q.Yield
			}
			weightedYield := m.opts.YieldCoefficient.Mul(m.opts.TotalYield.TotalYield(fo, yields))

			var admitted entities.Availability
			if weightedYield.GreaterThanOrEqual(totalBidPrice) {
				admitted = 1
			}
			if avl > 0 {
				avl = admitted * avl
			} else {
				avl = admitted
			}

			logger.Debug("multi-segment bid price control",
				"class_path", strings.Join(fo.ClassPath, "-"),
				"yield", weightedYield.String(),
				"bid_price", totalBidPrice.String(),
				"segment_path", ts.DescribeSegmentPath())
		}

		fo.Availability = avl
		logFareOption(logger, ts, fo)
	}
	return nil
}

// SegmentQuote is what one segment contributes to a fare option: the class
// sold, its yield and the bid-price vector of the leg cabin it draws from
type SegmentQuote struct {
	Class          entities.ClassCode
	Yield          decimal.Decimal
	BidPriceVector entities.BidPriceVector
}

// BidPriceTotals aggregates the last-seat bid prices of the segments
type BidPriceTotals struct {
	Total decimal.Decimal
	Max   decimal.Decimal
	// Unsellable is set when a segment has no seat left; Total is then MaxBidPrice
	Unsellable bool
}

// AggregateBidPrices sums and maximizes the last-seat bid price of each segment
func AggregateBidPrices(quotes []SegmentQuote) BidPriceTotals {
	totals := BidPriceTotals{Total: decimal.Zero, Max: decimal.Zero}
	for _, q := range quotes {
		last, ok := q.BidPriceVector.Last()
		if !ok {
			totals.Unsellable = true
			continue
		}
		totals.Total = totals.Total.Add(last)
		if last.GreaterThan(totals.Max) {
			totals.Max = last
		}
	}
	if totals.Unsellable {
		totals.Total = entities.MaxBidPrice
	}
	return totals
}

// Protective returns max(Total, Max * segments)
func (b BidPriceTotals) Protective(segments int) decimal.Decimal {
	return decimal.Max(b.Total, b.Max.Mul(decimal.NewFromInt(int64(segments))))
}

// segmentAvailability starts from the full remaining capacity of the first
// segment and keeps the minimum of the bid-price searches while it is positive
func segmentAvailability(quotes []SegmentQuote) entities.Availability {
	var avl entities.Availability
	for i, q := range quotes {
		if i == 0 {
			avl = entities.Availability(len(q.BidPriceVector))
		}
		if avl > 0 {
			avl = entities.MinAvailability(avl, SeatsAtYield(q.BidPriceVector, q.Yield))
		}
	}
	return avl
}

func quoteSegments(logger *slog.Logger, ts *entities.TravelSolution, fo *entities.FareOption) ([]SegmentQuote, error) {
	if len(fo.ClassPath) != len(ts.ClassYieldMapHolder) {
		return nil, pathMismatch(ts, fo, "class-yield", len(ts.ClassYieldMapHolder))
	}
	if len(fo.ClassPath) != len(ts.ClassBpvMapHolder) {
		return nil, pathMismatch(ts, fo, "class-bid-price-vector", len(ts.ClassBpvMapHolder))
	}

	quotes := make([]SegmentQuote, len(fo.ClassPath))
	for seg, classList := range fo.ClassPath {
		code, err := classCodeOf(ts, classList, seg)
		if err != nil {
			return nil, err
		}

		yield, ok := ts.ClassYieldMapHolder[seg][code]
		if !ok {
			logger.Debug("no yield has been set up for the class",
				"class", code, "travel_solution", ts.Describe())
			return nil, domainerrors.NewClassNotFoundError("class-yield", string(code), seg, ts.Describe())
		}

		bpv, ok := ts.ClassBpvMapHolder[seg][code]
		if !ok {
			logger.Debug("no bid-price vector has been set up for the class",
				"class", code, "travel_solution", ts.Describe())
			return nil, domainerrors.NewClassNotFoundError("class-bid-price-vector", string(code), seg, ts.Describe())
		}
		if bpv == nil {
			return nil, &domainerrors.InvariantError{
				Code:      domainerrors.CodeNilBidPriceVector,
				Message:   fmt.Sprintf("nil bid-price vector for segment %d", seg),
				ClassCode: string(code),
				Context:   ts.Describe(),
			}
		}

		quotes[seg] = SegmentQuote{Class: code, Yield: yield, BidPriceVector: *bpv}
	}
	return quotes, nil
}

func classCodeOf(ts *entities.TravelSolution, classList string, seg int) (entities.ClassCode, error) {
	code, err := entities.FirstClassCode(classList)
	if err != nil {
		return "", &domainerrors.InvariantError{
			Code:    domainerrors.CodeClassNotFound,
			Message: fmt.Sprintf("segment %d: %v", seg, err),
			Context: ts.Describe(),
		}
	}
	return code, nil
}

func pathMismatch(ts *entities.TravelSolution, fo *entities.FareOption, holder string, holderLen int) error {
	return &domainerrors.InvariantError{
		Code: domainerrors.CodePathLengthMismatch,
		Message: fmt.Sprintf("class path %s has %d entries, %s holder has %d",
			strings.Join(fo.ClassPath, "-"), len(fo.ClassPath), holder, holderLen),
		Context: ts.Describe(),
	}
}

func logFareOption(logger *slog.Logger, ts *entities.TravelSolution, fo *entities.FareOption) {
	logger.Debug("fare option availability",
		"fare_option", fo.Describe(),
		"availability", int64(fo.Availability),
		"segment_path", ts.DescribeSegmentPath())
}
