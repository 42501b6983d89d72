package calculator

import "github.com/shopspring/decimal"

// BarAllocation is the split of the post-expo bar pool.
type BarAllocation struct {
	BarbackWorking bool
	Bartenders     int
	BarbackFinal   decimal.Decimal
	// SoloBarFinal is what remains for the bartenders before splitting.
	SoloBarFinal  decimal.Decimal
	BartenderEach decimal.Decimal
}

// DistributeBar takes the barback share first and leaves the remainder to
// the bartenders, so BarbackFinal + SoloBarFinal equals a cent-finalized
// pool exactly.
func DistributeBar(barPoolPostExpo decimal.Decimal, barbackWorking bool, numBartenders int) BarAllocation {
	barback := decimal.Zero
	if barbackWorking {
		barback = roundMoney(barPoolPostExpo.Mul(barbackRate))
	}
	solo := roundMoney(barPoolPostExpo.Sub(barback))

	each := solo
	if numBartenders > 0 {
		each = roundMoney(solo.Div(decimal.NewFromInt(int64(numBartenders))))
	}

	return BarAllocation{
		BarbackWorking: barbackWorking,
		Bartenders:     numBartenders,
		BarbackFinal:   barback,
		SoloBarFinal:   solo,
		BartenderEach:  each,
	}
}
