// Package config holds the tunable constants of the availability engine:
// placeholder pricing, proration and seeding defaults. Each can be
// overridden from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Environment keys
const (
	EnvDefaultBidPrice  = "AIRINV_DEFAULT_BID_PRICE"
	EnvYieldCoefficient = "AIRINV_YIELD_COEFFICIENT"
	EnvDefaultAirline   = "AIRINV_DEFAULT_AIRLINE"
	EnvTotalYieldPolicy = "AIRINV_TOTAL_YIELD_POLICY"
	EnvDCPs             = "AIRINV_DCPS"
)

// Defaults
const (
	DefaultBidPrice         = 400
	DefaultYieldCoefficient = 1.0
	DefaultAirlineCode      = "XX"
	DefaultTotalYieldPolicy = "fare"
)

// DefaultDCPs are the data collection points, in days before departure, at
// which revenue management re-optimizes a flight date
var DefaultDCPs = []int{63, 56, 49, 42, 35, 31, 28, 24, 21, 17, 14, 10, 7, 5, 3, 1}

// Engine is the engine configuration
type Engine struct {
	// DefaultBidPrice fills every seat of the default bid-price vectors
	DefaultBidPrice decimal.Decimal
	// YieldCoefficient weights the total yield in the IBP admission test
	YieldCoefficient decimal.Decimal
	// DefaultAirlineCode tags the snapshot events
	DefaultAirlineCode string
	DCPs               []int
	// TotalYield names the total-yield policy of the IBP models
	TotalYield string
}

// Default returns the built-in configuration
func Default() Engine {
	dcps := make([]int, len(DefaultDCPs))
	copy(dcps, DefaultDCPs)
	return Engine{
		DefaultBidPrice:    decimal.NewFromInt(DefaultBidPrice),
		YieldCoefficient:   decimal.NewFromFloat(DefaultYieldCoefficient),
		DefaultAirlineCode: DefaultAirlineCode,
		DCPs:               dcps,
		TotalYield:         DefaultTotalYieldPolicy,
	}
}

// FromEnv returns the default configuration overridden by the variables
// lookup finds. Pass os.LookupEnv in production.
func FromEnv(lookup func(string) (string, bool)) (Engine, error) {
	cfg := Default()

	if v, ok := lookup(EnvDefaultBidPrice); ok {
		f, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			return Engine{}, fmt.Errorf("invalid %s: %w", EnvDefaultBidPrice, err)
		}
		cfg.DefaultBidPrice = decimal.NewFromFloat(f)
	}
	if v, ok := lookup(EnvYieldCoefficient); ok {
		f, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			return Engine{}, fmt.Errorf("invalid %s: %w", EnvYieldCoefficient, err)
		}
		cfg.YieldCoefficient = decimal.NewFromFloat(f)
	}
	if v, ok := lookup(EnvDefaultAirline); ok && strings.TrimSpace(v) != "" {
		cfg.DefaultAirlineCode = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTotalYieldPolicy); ok && strings.TrimSpace(v) != "" {
		cfg.TotalYield = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDCPs); ok && strings.TrimSpace(v) != "" {
		fields := strings.Split(v, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		dcps, err := cast.ToIntSliceE(fields)
		if err != nil {
			return Engine{}, fmt.Errorf("invalid %s: %w", EnvDCPs, err)
		}
		cfg.DCPs = dcps
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration values
func (e Engine) Validate() error {
	if e.DefaultBidPrice.IsNegative() {
		return fmt.Errorf("default bid price cannot be negative, got %s", e.DefaultBidPrice)
	}
	if !e.YieldCoefficient.IsPositive() {
		return fmt.Errorf("yield coefficient must be positive, got %s", e.YieldCoefficient)
	}
	if e.DefaultAirlineCode == "" {
		return fmt.Errorf("default airline code cannot be empty")
	}
	for _, dcp := range e.DCPs {
		if dcp < 0 {
			return fmt.Errorf("data collection point cannot be negative, got %d", dcp)
		}
	}
	return nil
}
