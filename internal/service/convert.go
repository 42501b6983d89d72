package service

import (
	"github.com/mmynk/tipout/internal/calculator"
)

func toCalculateResponse(res *calculator.AllocationResult) *CalculateResponse {
	rows := make([]*Row, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = &Row{
			Role:        r.Role,
			PersonLabel: r.PersonLabel,
			Amount:      r.Amount.InexactFloat64(),
			BasisNote:   r.BasisNote,
			Pool:        string(r.Pool),
		}
	}

	return &CalculateResponse{
		Rows:   rows,
		Roster: toStaffEntries(res.Roster),
		Summary: &Summary{
			PointValue:      res.Summary.PointValue.InexactFloat64(),
			TotalPoints:     res.Summary.TotalPoints.InexactFloat64(),
			SplitTotal:      res.Summary.SplitTotal.InexactFloat64(),
			BarPoolPostExpo: res.Summary.BarPoolPostExpo.InexactFloat64(),
		},
		Pools: &Pools{
			NetServerTips:        res.Pools.NetServerTips.InexactFloat64(),
			NetBarTips:           res.Pools.NetBarTips.InexactFloat64(),
			BarTipoutFromServers: res.Pools.BarTipoutFromServers.InexactFloat64(),
			BarPoolPreExpo:       res.Pools.BarPoolPreExpo.InexactFloat64(),
			ExpoFinal:            res.Pools.ExpoFinal.InexactFloat64(),
		},
		Bussers: &Bussers{
			Count:        res.Bussers.Count,
			FloorShare:   res.Bussers.FloorShare.InexactFloat64(),
			Total:        res.Bussers.Total.InexactFloat64(),
			Each:         res.Bussers.Each.InexactFloat64(),
			IncludesExpo: res.Bussers.IncludesExpo,
		},
		Bar: &Bar{
			BarbackFinal:  res.Bar.BarbackFinal.InexactFloat64(),
			SoloBarFinal:  res.Bar.SoloBarFinal.InexactFloat64(),
			BartenderEach: res.Bar.BartenderEach.InexactFloat64(),
			Bartenders:    res.Bar.Bartenders,
		},
		Verification: &Verification{
			FloorPaid: res.Verification.FloorPaid.InexactFloat64(),
			FloorGap:  res.Verification.FloorGap.InexactFloat64(),
			BarPaid:   res.Verification.BarPaid.InexactFloat64(),
			BarGap:    res.Verification.BarGap.InexactFloat64(),
		},
		Warnings: res.Warnings,
	}
}

func toStaffEntries(entries []calculator.StaffEntry) []*StaffEntry {
	out := make([]*StaffEntry, len(entries))
	for i, e := range entries {
		out[i] = &StaffEntry{
			Name:     e.Name,
			Points:   e.Points.InexactFloat64(),
			Category: e.Category.String(),
		}
	}
	return out
}
