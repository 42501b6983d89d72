// Package calculator divides a shift's pooled tips among floor and bar staff.
//
// The pipeline is a chain of pure stages:
//
//	ParseRoster -> CalculatePools -> AllocateFloor -> DistributeBar -> Assemble
//
// Nothing is retained between calls, so Calculate is safe to call
// concurrently and returns identical results for identical inputs.
//
// Money is carried as decimal.Decimal with full precision and finalized to
// cents (half away from zero) only where a payout is produced.
package calculator

import (
	"errors"
	"math"
	"strconv"
)

// AllocationConfig holds the per-shift staffing switches and point values.
type AllocationConfig struct {
	NumBussers               int
	HeadBusserPointValue     float64
	StandardBusserPointValue float64
	NumBartenders            int
	BarbackWorking           bool
	SumExpoWithBussers       bool

	// Separator splits name and points in adjusted roster tokens: ':' or '='.
	// Zero means '='.
	Separator rune
}

// DefaultAllocationConfig returns the house defaults: no bussers, one
// bartender, no barback.
func DefaultAllocationConfig() AllocationConfig {
	return AllocationConfig{
		HeadBusserPointValue:     DefaultHeadBusserPointValue,
		StandardBusserPointValue: DefaultStandardBusserPointValue,
		NumBartenders:            1,
		Separator:                '=',
	}
}

func (c AllocationConfig) separator() rune {
	if c.Separator == 0 {
		return '='
	}
	return c.Separator
}

func validSeparator(sep rune) bool {
	return sep == ':' || sep == '='
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the preconditions of the pipeline. All failures are
// joined into a single error; each wraps ErrInvalidConfig.
func Validate(fin ShiftFinancials, cfg AllocationConfig) error {
	return errors.Join(validate(fin, cfg)...)
}

func validate(fin ShiftFinancials, cfg AllocationConfig) []error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &InvalidConfigError{Field: field, Reason: reason})
	}

	if cfg.NumBartenders < 1 {
		bad("numBartenders", "must be at least 1, got "+strconv.Itoa(cfg.NumBartenders))
	}
	if cfg.NumBussers < 0 {
		bad("numBussers", "must not be negative, got "+strconv.Itoa(cfg.NumBussers))
	}
	if sep := cfg.separator(); !validSeparator(sep) {
		bad("separator", "must be ':' or '=', got "+strconv.QuoteRune(sep))
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"headBusserPointValue", cfg.HeadBusserPointValue},
		{"standardBusserPointValue", cfg.StandardBusserPointValue},
		{"serverNonCashTips", fin.ServerNonCashTips},
		{"barNonCashTips", fin.BarNonCashTips},
		{"beverageSales", fin.BeverageSales},
		{"wineSales", fin.WineSales},
		{"foodCost", fin.FoodCost},
	} {
		switch {
		case !isFinite(f.v):
			bad(f.name, "must be a finite number")
		case f.v < 0:
			bad(f.name, "must not be negative")
		}
	}

	return errs
}

// Calculate validates the inputs, parses the roster and runs the
// allocation pipeline. Config and roster errors are reported together and
// no partial result is returned; once validation passes the pipeline
// cannot fail.
func Calculate(fin ShiftFinancials, in RosterInput, cfg AllocationConfig) (*AllocationResult, error) {
	errs := validate(fin, cfg)

	var roster []StaffEntry
	if validSeparator(cfg.separator()) && isFinite(cfg.HeadBusserPointValue) {
		var err error
		roster, err = ParseRoster(in, cfg)
		errs = append(errs, flatten(err)...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	pools := CalculatePools(fin)
	floor := AllocateFloor(pools, roster, cfg)
	bar := DistributeBar(pools.BarPoolPostExpo, cfg.BarbackWorking, cfg.NumBartenders)
	return Assemble(fin, pools, roster, floor, bar), nil
}

// flatten lifts the members of a joined error so the caller sees one
// error per offending field or token.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
