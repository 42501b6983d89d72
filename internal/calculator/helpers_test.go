package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// scenarioA is a busy dinner shift with a hand-checked payout sheet.
var scenarioA = ShiftFinancials{
	ServerNonCashTips: 2187.00,
	BeverageSales:     2300.85,
	WineSales:         1475.00,
	BarNonCashTips:    820.96,
	FoodCost:          1148.75,
}

func scenarioAConfig() AllocationConfig {
	cfg := DefaultAllocationConfig()
	cfg.NumBussers = 3
	return cfg
}

const scenarioARoster = "Bryan=2, Riley=2, Saige=2, Roxy=1.5"
