package services

import "github.com/shopspring/decimal"

// billTotals computes subtotal, tax and total for a set of priced lines.
// All arithmetic stays in decimal; rounding to two places happens once,
// here, never mid-calculation.
func billTotals(lines []pricedLine, taxRate float64) (subtotal, tax, total float64) {
	sub := sumLines(lines)
	rate := decimal.NewFromFloat(taxRate)
	subR := sub.Round(2)
	taxR := sub.Mul(rate).Round(2)
	totalR := subR.Add(taxR)

	subtotal, _ = subR.Float64()
	tax, _ = taxR.Float64()
	total, _ = totalR.Float64()
	return subtotal, tax, total
}

type pricedLine struct {
	unitPrice float64
	quantity  int
}

func sumLines(lines []pricedLine) decimal.Decimal {
	sub := decimal.Zero
	for _, l := range lines {
		sub = sub.Add(decimal.NewFromFloat(l.unitPrice).Mul(decimal.NewFromInt(int64(l.quantity))))
	}
	return sub
}

// lineSum is the rounded subtotal of a set of lines with no tax applied.
func lineSum(lines []pricedLine) float64 {
	f, _ := sumLines(lines).Round(2).Float64()
	return f
}

func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
