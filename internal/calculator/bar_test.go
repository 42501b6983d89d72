package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeBar(t *testing.T) {
	tests := []struct {
		name        string
		pool        string
		barback     bool
		bartenders  int
		wantBarback string
		wantSolo    string
		wantEach    string
	}{
		{name: "barback and two bartenders", pool: "500.00", barback: true, bartenders: 2, wantBarback: "100", wantSolo: "400", wantEach: "200"},
		{name: "no barback", pool: "1025.56", barback: false, bartenders: 1, wantBarback: "0", wantSolo: "1025.56", wantEach: "1025.56"},
		{name: "barback share rounds", pool: "1025.56", barback: true, bartenders: 1, wantBarback: "205.11", wantSolo: "820.45", wantEach: "820.45"},
		{name: "uneven bartender split", pool: "100.00", barback: false, bartenders: 3, wantBarback: "0", wantSolo: "100", wantEach: "33.33"},
		{name: "negative pool passes through", pool: "-50.00", barback: true, bartenders: 2, wantBarback: "-10", wantSolo: "-40", wantEach: "-20"},
		{name: "zero bartenders leaves solo unsplit", pool: "80.00", barback: false, bartenders: 0, wantBarback: "0", wantSolo: "80", wantEach: "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeBar(dec(tt.pool), tt.barback, tt.bartenders)
			assertMoney(t, tt.wantBarback, got.BarbackFinal, "barback")
			assertMoney(t, tt.wantSolo, got.SoloBarFinal, "solo bar")
			assertMoney(t, tt.wantEach, got.BartenderEach, "bartender each")
		})
	}
}

func TestDistributeBar_Reconciles(t *testing.T) {
	pools := []string{"0", "0.01", "0.03", "1.99", "33.33", "1025.56", "99999.99", "-12.34"}
	for _, p := range pools {
		for _, barback := range []bool{false, true} {
			got := DistributeBar(dec(p), barback, 2)
			assert.True(t, got.BarbackFinal.Add(got.SoloBarFinal).Equal(dec(p)),
				"pool %s barback %v: %s + %s", p, barback, got.BarbackFinal, got.SoloBarFinal)
		}
	}
}
