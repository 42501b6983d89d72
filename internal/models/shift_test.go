package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tipout/internal/calculator"
)

const sheetYAML = `
name: Friday dinner
financials:
  server_non_cash_tips: 2187.00
  bar_non_cash_tips: 820.96
  beverage_sales: 2300.85
  wine_sales: 1475.00
  food_cost: 1148.75
roster:
  adjusted: "Bryan=2, Riley=2, Saige=2, Roxy=1.5"
  head_bussers: |
    Hal
    Ira
staffing:
  bussers: 3
  barback: true
`

func TestShiftSheet_YAML(t *testing.T) {
	var sheet ShiftSheet
	if err := yaml.Unmarshal([]byte(sheetYAML), &sheet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	assert.Equal(t, "Friday dinner", sheet.Name)
	assert.Equal(t, 2187.00, sheet.Financials.ServerNonCashTips)
	assert.Equal(t, 1148.75, sheet.Financials.FoodCost)
	assert.Equal(t, "Hal\nIra\n", sheet.Roster.HeadBussers)
	assert.Equal(t, 3, sheet.Staffing.NumBussers)
	assert.True(t, sheet.Staffing.BarbackWorking)
}

func TestShiftSheet_EngineInputs(t *testing.T) {
	base := calculator.DefaultAllocationConfig()

	tests := []struct {
		name  string
		sheet ShiftSheet
		check func(t *testing.T, cfg calculator.AllocationConfig)
	}{
		{
			name:  "unset values keep base",
			sheet: ShiftSheet{},
			check: func(t *testing.T, cfg calculator.AllocationConfig) {
				assert.Equal(t, base, cfg)
			},
		},
		{
			name: "overrides applied",
			sheet: ShiftSheet{
				Roster: Roster{Separator: ":"},
				Staffing: Staffing{
					NumBussers:           2,
					NumBartenders:        3,
					BarbackWorking:       true,
					SumExpoWithBussers:   true,
					HeadBusserPoints:     0.7,
					StandardBusserPoints: 0.5,
				},
			},
			check: func(t *testing.T, cfg calculator.AllocationConfig) {
				assert.Equal(t, 2, cfg.NumBussers)
				assert.Equal(t, 3, cfg.NumBartenders)
				assert.True(t, cfg.BarbackWorking)
				assert.True(t, cfg.SumExpoWithBussers)
				assert.Equal(t, 0.7, cfg.HeadBusserPointValue)
				assert.Equal(t, 0.5, cfg.StandardBusserPointValue)
				assert.Equal(t, ':', cfg.Separator)
			},
		},
		{
			name:  "multi-character separator is rejected downstream",
			sheet: ShiftSheet{Roster: Roster{Separator: "=>"}},
			check: func(t *testing.T, cfg calculator.AllocationConfig) {
				err := calculator.Validate(calculator.ShiftFinancials{}, cfg)
				assert.ErrorIs(t, err, calculator.ErrInvalidConfig)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, cfg := tt.sheet.EngineInputs(base)
			tt.check(t, cfg)
		})
	}
}

func TestShiftSheet_EngineInputsCalculate(t *testing.T) {
	var sheet ShiftSheet
	if err := yaml.Unmarshal([]byte(sheetYAML), &sheet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	fin, in, cfg := sheet.EngineInputs(calculator.DefaultAllocationConfig())
	res, err := calculator.Calculate(fin, in, cfg)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	assert.Equal(t, "1872.74", res.Summary.SplitTotal.StringFixed(2))
	assert.Len(t, res.Rows, 4+2+1+3)
}
