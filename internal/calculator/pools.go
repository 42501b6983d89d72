package calculator

import "github.com/shopspring/decimal"

// House rules. These are fixed by the restaurant and are not configurable
// per shift.
const (
	// HouseFeeRate is deducted from all non-cash tips before pooling.
	HouseFeeRate = 0.025

	// BeverageTipoutRate and WineTipoutRate are the bar's draw on server sales.
	BeverageTipoutRate = 0.10
	WineTipoutRate     = 0.02

	// ExpoFoodRate is the expo's share of total food cost, paid out of the bar pool.
	ExpoFoodRate = 0.03

	// BarbackRate is the barback's share of the post-expo bar pool.
	BarbackRate = 0.20

	// ServerPoints is the weight of a server listed by name only.
	ServerPoints = 2.0

	DefaultHeadBusserPointValue     = 0.65
	DefaultStandardBusserPointValue = 0.6
)

// moneyPlaces is the number of decimal places money is finalized to.
const moneyPlaces = 2

var (
	houseFee       = decimal.NewFromFloat(HouseFeeRate)
	beverageTipout = decimal.NewFromFloat(BeverageTipoutRate)
	wineTipout     = decimal.NewFromFloat(WineTipoutRate)
	expoRate       = decimal.NewFromFloat(ExpoFoodRate)
	barbackRate    = decimal.NewFromFloat(BarbackRate)
	one            = decimal.NewFromInt(1)
)

// ShiftFinancials are the shift totals entered by the manager. All amounts
// are pre-tax and exclude hourly wages.
type ShiftFinancials struct {
	ServerNonCashTips float64
	BarNonCashTips    float64
	BeverageSales     float64
	WineSales         float64
	FoodCost          float64
}

// Pools holds the floor and bar pools derived from ShiftFinancials.
//
// SplitTotal keeps full precision because it is divided by total points.
// ExpoFinal and BarPoolPostExpo are finalized to cents.
type Pools struct {
	NetServerTips        decimal.Decimal
	NetBarTips           decimal.Decimal
	BarTipoutFromServers decimal.Decimal
	SplitTotal           decimal.Decimal
	BarPoolPreExpo       decimal.Decimal
	BarPoolPostExpo      decimal.Decimal
	ExpoFinal            decimal.Decimal
}

// roundMoney finalizes a monetary amount to cents, rounding half away
// from zero. Every finalized amount in the pipeline goes through here.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// CalculatePools applies the house deductions and tip-outs. Pools may go
// negative when tip-outs exceed tips; that is passed through unchanged.
func CalculatePools(fin ShiftFinancials) Pools {
	net := one.Sub(houseFee)

	netServer := decimal.NewFromFloat(fin.ServerNonCashTips).Mul(net)
	netBar := decimal.NewFromFloat(fin.BarNonCashTips).Mul(net)

	tipout := decimal.NewFromFloat(fin.BeverageSales).Mul(beverageTipout).
		Add(decimal.NewFromFloat(fin.WineSales).Mul(wineTipout))

	expo := roundMoney(decimal.NewFromFloat(fin.FoodCost).Mul(expoRate))
	preExpo := netBar.Add(tipout)

	return Pools{
		NetServerTips:        netServer,
		NetBarTips:           netBar,
		BarTipoutFromServers: tipout,
		SplitTotal:           netServer.Sub(tipout),
		BarPoolPreExpo:       preExpo,
		BarPoolPostExpo:      roundMoney(preExpo.Sub(expo)),
		ExpoFinal:            expo,
	}
}
