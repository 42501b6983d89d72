package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PoolKind tags which pool a result row is paid from.
type PoolKind string

const (
	PoolFloor PoolKind = "floor"
	PoolExpo  PoolKind = "expo"
	PoolBar   PoolKind = "bar"
	// PoolShare marks a per-person breakdown of an aggregate row. Its
	// amount is already counted in that row.
	PoolShare PoolKind = "share"
)

// Row is one labeled payout line.
type Row struct {
	Role        string
	PersonLabel string
	Amount      decimal.Decimal
	BasisNote   string
	Pool        PoolKind
}

// Summary carries the figures shown next to the result table for checking
// the math by hand.
type Summary struct {
	PointValue      decimal.Decimal
	TotalPoints     decimal.Decimal
	SplitTotal      decimal.Decimal
	BarPoolPostExpo decimal.Decimal
}

// Verification compares what was paid out against each pool.
type Verification struct {
	FloorPaid decimal.Decimal
	// FloorGap is SplitTotal - FloorPaid; non-zero only by rounding.
	FloorGap decimal.Decimal
	BarPaid  decimal.Decimal
	BarGap   decimal.Decimal
}

// AllocationResult is the full output of one calculation.
type AllocationResult struct {
	Rows         []Row
	Roster       []StaffEntry
	Summary      Summary
	Pools        Pools
	Bussers      BusserLine
	Bar          BarAllocation
	Verification Verification
	// Warnings are presentation-level notices; they never indicate failure.
	Warnings []string
}

const (
	WarnNoStaff            = "no staff configured: total points is zero"
	WarnNegativeSplitTotal = "split total is negative: bar tip-out exceeds net server tips"
	WarnNegativeBarPool    = "bar pool is negative after expo"
)

// Assemble orders the finalized payouts into rows: servers in roster
// order, head bussers, the busser aggregate, expo, barback, solo bar, then
// the per-bartender share when the bar is split. Pooled expo is paid in the
// busser row and gets no row of its own. Amounts are copied as-is.
func Assemble(fin ShiftFinancials, pools Pools, roster []StaffEntry, floor FloorAllocation, bar BarAllocation) *AllocationResult {
	res := &AllocationResult{
		Summary: Summary{
			PointValue:      floor.PointValue,
			TotalPoints:     floor.TotalPoints,
			SplitTotal:      pools.SplitTotal,
			BarPoolPostExpo: pools.BarPoolPostExpo,
		},
		Roster:  roster,
		Pools:   pools,
		Bussers: floor.Bussers,
		Bar:     bar,
	}

	perPoint := fmt.Sprintf("@ %s/pt", money(floor.PointValue))

	// Servers first, then head bussers, each keeping roster order.
	for _, wantHead := range []bool{false, true} {
		for i, e := range roster {
			if (e.Category == HeadBusser) != wantHead {
				continue
			}
			res.Rows = append(res.Rows, Row{
				Role:        roleFor(e.Category),
				PersonLabel: e.Name,
				Amount:      floor.Payouts[i],
				BasisNote:   fmt.Sprintf("%s pts %s", e.Points, perPoint),
				Pool:        PoolFloor,
			})
		}
	}

	b := floor.Bussers
	expoNote := fmt.Sprintf("%s%% of %s food cost", pct(expoRate), money(decimal.NewFromFloat(fin.FoodCost)))
	if b.Count > 0 {
		note := fmt.Sprintf("%d × %s pts %s", b.Count, b.PointsEach, perPoint)
		if b.IncludesExpo {
			note += fmt.Sprintf(", plus expo %s (%s)", money(pools.ExpoFinal), expoNote)
		}
		note += fmt.Sprintf("; %s each, %s total", money(b.Each), money(b.Total))
		res.Rows = append(res.Rows, Row{
			Role:        roleFor(StandardBusser),
			PersonLabel: plural(b.Count, "busser"),
			Amount:      b.Total,
			BasisNote:   note,
			Pool:        PoolFloor,
		})
	}

	// Pooled expo is paid through the busser row above.
	if !b.IncludesExpo {
		res.Rows = append(res.Rows, Row{
			Role:        "Expo",
			PersonLabel: "Expo",
			Amount:      pools.ExpoFinal,
			BasisNote:   expoNote,
			Pool:        PoolExpo,
		})
	}

	barback := Row{
		Role:        "Barback",
		PersonLabel: "Barback",
		Amount:      bar.BarbackFinal,
		BasisNote:   "not working",
		Pool:        PoolBar,
	}
	if bar.BarbackWorking {
		barback.BasisNote = fmt.Sprintf("%s%% of %s bar pool", pct(barbackRate), money(pools.BarPoolPostExpo))
	}
	res.Rows = append(res.Rows, barback)

	res.Rows = append(res.Rows, Row{
		Role:        "Bartender",
		PersonLabel: "Solo bar",
		Amount:      bar.SoloBarFinal,
		BasisNote:   "bar pool after barback",
		Pool:        PoolBar,
	})
	if bar.Bartenders > 1 {
		res.Rows = append(res.Rows, Row{
			Role:        "Bartender",
			PersonLabel: fmt.Sprintf("Each of %d bartenders", bar.Bartenders),
			Amount:      bar.BartenderEach,
			BasisNote:   fmt.Sprintf("%s split %d ways", money(bar.SoloBarFinal), bar.Bartenders),
			Pool:        PoolShare,
		})
	}

	res.Verification = verify(res.Rows, pools, b)
	res.Warnings = warnings(floor, pools)
	return res
}

// verify sums the floor and bar rows. A busser row that carries pooled
// expo is counted against the floor pool without the expo.
func verify(rows []Row, pools Pools, bussers BusserLine) Verification {
	var v Verification
	for _, r := range rows {
		switch r.Pool {
		case PoolFloor:
			v.FloorPaid = v.FloorPaid.Add(r.Amount)
		case PoolBar:
			v.BarPaid = v.BarPaid.Add(r.Amount)
		}
	}
	if bussers.Count > 0 && bussers.IncludesExpo {
		v.FloorPaid = v.FloorPaid.Sub(pools.ExpoFinal)
	}
	v.FloorGap = pools.SplitTotal.Sub(v.FloorPaid)
	v.BarGap = pools.BarPoolPostExpo.Sub(v.BarPaid)
	return v
}

func warnings(floor FloorAllocation, pools Pools) []string {
	var w []string
	if floor.TotalPoints.IsZero() {
		w = append(w, WarnNoStaff)
	}
	if pools.SplitTotal.IsNegative() {
		w = append(w, WarnNegativeSplitTotal)
	}
	if pools.BarPoolPostExpo.IsNegative() {
		w = append(w, WarnNegativeBarPool)
	}
	return w
}

func roleFor(c Category) string {
	switch c {
	case HeadBusser:
		return "Head Busser"
	case StandardBusser:
		return "Busser"
	default:
		return "Server"
	}
}

func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(moneyPlaces)
	}
	return "$" + d.StringFixed(moneyPlaces)
}

func pct(rate decimal.Decimal) string {
	return rate.Shift(2).String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
