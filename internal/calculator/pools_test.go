package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePools(t *testing.T) {
	tests := []struct {
		name        string
		fin         ShiftFinancials
		netServer   string
		tipout      string
		splitTotal  string
		expo        string
		barPreExpo  string
		barPostExpo string
	}{
		{
			name:        "default shift sheet",
			fin:         scenarioA,
			netServer:   "2132.325",
			tipout:      "259.585",
			splitTotal:  "1872.74",
			expo:        "34.46",
			barPreExpo:  "1060.021",
			barPostExpo: "1025.56",
		},
		{
			name:        "all zero",
			fin:         ShiftFinancials{},
			netServer:   "0",
			tipout:      "0",
			splitTotal:  "0",
			expo:        "0",
			barPreExpo:  "0",
			barPostExpo: "0",
		},
		{
			name:        "tip-out larger than tips goes negative",
			fin:         ShiftFinancials{ServerNonCashTips: 100, BeverageSales: 2000, FoodCost: 1000},
			netServer:   "97.5",
			tipout:      "200",
			splitTotal:  "-102.5",
			expo:        "30",
			barPreExpo:  "200",
			barPostExpo: "170",
		},
		{
			name:        "expo rounds half away from zero",
			fin:         ShiftFinancials{FoodCost: 0.5},
			netServer:   "0",
			tipout:      "0",
			splitTotal:  "0",
			expo:        "0.02",
			barPreExpo:  "0",
			barPostExpo: "-0.02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CalculatePools(tt.fin)
			assertMoney(t, tt.netServer, p.NetServerTips, "net server tips")
			assertMoney(t, tt.tipout, p.BarTipoutFromServers, "bar tip-out")
			assertMoney(t, tt.splitTotal, p.SplitTotal, "split total")
			assertMoney(t, tt.expo, p.ExpoFinal, "expo")
			assertMoney(t, tt.barPreExpo, p.BarPoolPreExpo, "bar pool pre expo")
			assertMoney(t, tt.barPostExpo, p.BarPoolPostExpo, "bar pool post expo")
		})
	}
}

func TestHouseRates(t *testing.T) {
	assert.Equal(t, 0.025, HouseFeeRate)
	assert.Equal(t, 0.10, BeverageTipoutRate)
	assert.Equal(t, 0.02, WineTipoutRate)
	assert.Equal(t, 0.03, ExpoFoodRate)
	assert.Equal(t, 0.20, BarbackRate)
	assert.Equal(t, 2.0, ServerPoints)
}
