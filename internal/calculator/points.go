package calculator

import "github.com/shopspring/decimal"

// BusserLine is the single aggregated ledger line for unnamed standard
// bussers.
//
// FloorShare is round(Points * pointValue) and is the only figure that
// counts against the floor pool. Total adds the expo when it is pooled with
// the bussers. Each is always Total divided by Count, rounded, so the
// per-person figure is derived from the aggregate and never the other way
// round.
type BusserLine struct {
	Count        int
	PointsEach   decimal.Decimal
	Points       decimal.Decimal
	FloorShare   decimal.Decimal
	Total        decimal.Decimal
	Each         decimal.Decimal
	IncludesExpo bool
}

// FloorAllocation is the output of the point allocator.
type FloorAllocation struct {
	TotalPoints decimal.Decimal
	PointValue  decimal.Decimal
	// Payouts is index-aligned with the roster.
	Payouts []decimal.Decimal
	Bussers BusserLine
}

// TotalPoints sums the roster weights and the aggregate standard busser
// weight.
func TotalPoints(roster []StaffEntry, cfg AllocationConfig) decimal.Decimal {
	total := busserPoints(cfg)
	for _, e := range roster {
		total = total.Add(e.Points)
	}
	return total
}

func busserPoints(cfg AllocationConfig) decimal.Decimal {
	return decimal.NewFromInt(int64(cfg.NumBussers)).Mul(decimal.NewFromFloat(cfg.StandardBusserPointValue))
}

// PointValue is the floor pool per point. It is not rounded. Zero total
// points yields zero.
func PointValue(splitTotal, totalPoints decimal.Decimal) decimal.Decimal {
	if totalPoints.IsZero() {
		return decimal.Zero
	}
	return splitTotal.Div(totalPoints)
}

// Payout finalizes points at the given point value to cents.
func Payout(points, pointValue decimal.Decimal) decimal.Decimal {
	return roundMoney(points.Mul(pointValue))
}

// AllocateFloor splits the floor pool across the roster and the standard
// bussers. When SumExpoWithBussers is set and there is at least one busser,
// the expo is folded into the busser total.
func AllocateFloor(pools Pools, roster []StaffEntry, cfg AllocationConfig) FloorAllocation {
	total := TotalPoints(roster, cfg)
	pv := PointValue(pools.SplitTotal, total)

	payouts := make([]decimal.Decimal, len(roster))
	for i, e := range roster {
		payouts[i] = Payout(e.Points, pv)
	}

	pts := busserPoints(cfg)
	share := Payout(pts, pv)
	line := BusserLine{
		Count:      cfg.NumBussers,
		PointsEach: decimal.NewFromFloat(cfg.StandardBusserPointValue),
		Points:     pts,
		FloorShare: share,
		Total:      share,
		Each:       decimal.Zero,
	}
	if cfg.NumBussers > 0 {
		if cfg.SumExpoWithBussers {
			line.Total = share.Add(pools.ExpoFinal)
			line.IncludesExpo = true
		}
		line.Each = roundMoney(line.Total.Div(decimal.NewFromInt(int64(cfg.NumBussers))))
	}

	return FloorAllocation{
		TotalPoints: total,
		PointValue:  pv,
		Payouts:     payouts,
		Bussers:     line,
	}
}
