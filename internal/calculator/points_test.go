package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPoints(t *testing.T) {
	roster, err := ParseRoster(RosterInput{Adjusted: scenarioARoster}, scenarioAConfig())
	require.NoError(t, err)

	assertMoney(t, "9.3", TotalPoints(roster, scenarioAConfig()))
	assertMoney(t, "7.5", TotalPoints(roster, DefaultAllocationConfig()))
	assertMoney(t, "0", TotalPoints(nil, DefaultAllocationConfig()))
}

func TestPointValue(t *testing.T) {
	pv := PointValue(dec("1872.74"), dec("9.3"))
	assertMoney(t, "201.37", pv.Round(2))
	assert.False(t, pv.Equal(pv.Round(2)), "point value must keep full precision")

	assert.True(t, PointValue(dec("1872.74"), decimal.Zero).IsZero())
	assert.True(t, PointValue(dec("-50"), decimal.Zero).IsZero())
}

func TestAllocateFloor(t *testing.T) {
	cfg := scenarioAConfig()
	roster, err := ParseRoster(RosterInput{Adjusted: scenarioARoster}, cfg)
	require.NoError(t, err)

	got := AllocateFloor(CalculatePools(scenarioA), roster, cfg)

	assertMoney(t, "9.3", got.TotalPoints)
	require.Len(t, got.Payouts, 4)
	for i, want := range []string{"402.74", "402.74", "402.74", "302.05"} {
		assertMoney(t, want, got.Payouts[i], roster[i].Name)
	}

	b := got.Bussers
	assert.Equal(t, 3, b.Count)
	assertMoney(t, "1.8", b.Points)
	assertMoney(t, "362.47", b.FloorShare)
	assertMoney(t, "362.47", b.Total)
	assertMoney(t, "120.82", b.Each)
	assert.False(t, b.IncludesExpo)
}

func TestAllocateFloor_ZeroPoints(t *testing.T) {
	got := AllocateFloor(CalculatePools(scenarioA), nil, DefaultAllocationConfig())

	assert.True(t, got.TotalPoints.IsZero())
	assert.True(t, got.PointValue.IsZero())
	assert.Empty(t, got.Payouts)
	assert.True(t, got.Bussers.FloorShare.IsZero())
	assert.True(t, got.Bussers.Each.IsZero())
}

func TestAllocateFloor_ZeroWeightRoster(t *testing.T) {
	cfg := DefaultAllocationConfig()
	roster, err := ParseRoster(RosterInput{Adjusted: "A=0, B=0"}, cfg)
	require.NoError(t, err)

	got := AllocateFloor(CalculatePools(scenarioA), roster, cfg)
	assert.True(t, got.PointValue.IsZero())
	for _, p := range got.Payouts {
		assert.True(t, p.IsZero())
	}
}

func TestAllocateFloor_ExpoWithBussers(t *testing.T) {
	tests := []struct {
		name         string
		numBussers   int
		includesExpo bool
		total        string
		each         string
	}{
		{name: "folded into three bussers", numBussers: 3, includesExpo: true, total: "396.93", each: "132.31"},
		{name: "no bussers keeps expo standalone", numBussers: 0, includesExpo: false, total: "0", each: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAllocationConfig()
			cfg.NumBussers = tt.numBussers
			cfg.SumExpoWithBussers = true
			roster, err := ParseRoster(RosterInput{Adjusted: scenarioARoster}, cfg)
			require.NoError(t, err)

			b := AllocateFloor(CalculatePools(scenarioA), roster, cfg).Bussers
			assert.Equal(t, tt.includesExpo, b.IncludesExpo)
			assertMoney(t, tt.total, b.Total)
			assertMoney(t, tt.each, b.Each)
		})
	}
}

// Per-person busser pay is derived from the aggregate, so Each*Count is
// within half a cent per busser of Total.
func TestAllocateFloor_BusserAggregateConsistency(t *testing.T) {
	for n := 1; n <= 9; n++ {
		cfg := DefaultAllocationConfig()
		cfg.NumBussers = n
		roster, err := ParseRoster(RosterInput{Servers: "A, B, C"}, cfg)
		require.NoError(t, err)

		b := AllocateFloor(CalculatePools(scenarioA), roster, cfg).Bussers
		assertMoney(t, b.Total.Div(decimal.NewFromInt(int64(n))).Round(2).String(), b.Each)

		gap := b.Each.Mul(decimal.NewFromInt(int64(n))).Sub(b.Total).Abs()
		assert.True(t, gap.LessThanOrEqual(dec("0.005").Mul(decimal.NewFromInt(int64(n)))), "n=%d gap=%s", n, gap)
	}
}
