package models

import (
	"github.com/mmynk/tipout/internal/calculator"
)

// ShiftSheet is one shift's inputs to the tipout calculation.
type ShiftSheet struct {
	// Name labels the sheet, e.g. "Friday dinner". Optional.
	Name string `yaml:"name" json:"name,omitempty"`

	Financials Financials `yaml:"financials" json:"financials"`
	Roster     Roster     `yaml:"roster" json:"roster"`
	Staffing   Staffing   `yaml:"staffing" json:"staffing"`
}

// Financials are the POS totals for the shift. All amounts are pre-tax.
type Financials struct {
	ServerNonCashTips float64 `yaml:"server_non_cash_tips" json:"server_non_cash_tips"`
	BarNonCashTips    float64 `yaml:"bar_non_cash_tips" json:"bar_non_cash_tips"`
	BeverageSales     float64 `yaml:"beverage_sales" json:"beverage_sales"`
	WineSales         float64 `yaml:"wine_sales" json:"wine_sales"`
	FoodCost          float64 `yaml:"food_cost" json:"food_cost"`
}

// Roster is the raw staff text, one string per channel.
type Roster struct {
	// Servers is a comma or newline separated list of names at 2 points.
	Servers string `yaml:"servers" json:"servers,omitempty"`

	// Adjusted lists name=points (or name:points) pairs.
	Adjusted string `yaml:"adjusted" json:"adjusted,omitempty"`

	// HeadBussers is a list of names at the head busser point value.
	HeadBussers string `yaml:"head_bussers" json:"head_bussers,omitempty"`

	// Separator is ":" or "="; empty means the configured default.
	Separator string `yaml:"separator" json:"separator,omitempty"`
}

// Staffing holds the counts and switches for the shift. A zero
// NumBartenders means the base config's count.
type Staffing struct {
	NumBussers         int  `yaml:"bussers" json:"bussers"`
	NumBartenders      int  `yaml:"bartenders" json:"bartenders"`
	BarbackWorking     bool `yaml:"barback" json:"barback"`
	SumExpoWithBussers bool `yaml:"expo_with_bussers" json:"expo_with_bussers"`

	// HeadBusserPoints and StandardBusserPoints override the house point
	// values when non-zero.
	HeadBusserPoints     float64 `yaml:"head_busser_points" json:"head_busser_points,omitempty"`
	StandardBusserPoints float64 `yaml:"standard_busser_points" json:"standard_busser_points,omitempty"`
}

// EngineInputs converts the sheet into calculator inputs, starting from
// base for anything the sheet leaves unset.
func (s ShiftSheet) EngineInputs(base calculator.AllocationConfig) (calculator.ShiftFinancials, calculator.RosterInput, calculator.AllocationConfig) {
	fin := calculator.ShiftFinancials{
		ServerNonCashTips: s.Financials.ServerNonCashTips,
		BarNonCashTips:    s.Financials.BarNonCashTips,
		BeverageSales:     s.Financials.BeverageSales,
		WineSales:         s.Financials.WineSales,
		FoodCost:          s.Financials.FoodCost,
	}

	in := calculator.RosterInput{
		Servers:     s.Roster.Servers,
		Adjusted:    s.Roster.Adjusted,
		HeadBussers: s.Roster.HeadBussers,
	}

	cfg := base
	cfg.NumBussers = s.Staffing.NumBussers
	if s.Staffing.NumBartenders != 0 {
		cfg.NumBartenders = s.Staffing.NumBartenders
	}
	cfg.BarbackWorking = s.Staffing.BarbackWorking
	cfg.SumExpoWithBussers = s.Staffing.SumExpoWithBussers
	if s.Staffing.HeadBusserPoints != 0 {
		cfg.HeadBusserPointValue = s.Staffing.HeadBusserPoints
	}
	if s.Staffing.StandardBusserPoints != 0 {
		cfg.StandardBusserPointValue = s.Staffing.StandardBusserPoints
	}
	if r := []rune(s.Roster.Separator); len(r) == 1 {
		cfg.Separator = r[0]
	} else if len(r) > 1 {
		// Multi-character separators fail validation.
		cfg.Separator = -1
	}

	return fin, in, cfg
}
