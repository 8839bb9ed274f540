package domain

import "github.com/shopspring/decimal"

// Breakdown is the financial split of a single sale.
type Breakdown struct {
	Commission    decimal.Decimal `json:"commission"`
	NetTotal      decimal.Decimal `json:"total"`
	Participation decimal.Decimal `json:"participation"`
	TotalVendor   decimal.Decimal `json:"totalVendor"`
	TotalBank     decimal.Decimal `json:"totalBank"`
}

// Calculate splits a sale between vendor and bank.
//
// Percentages are not validated: negative or oversized values propagate into the
// derived amounts. TotalVendor + TotalBank always equals NetTotal + Commission,
// which is amount - prize.
func Calculate(amount, prize, commissionPct, partPct decimal.Decimal) Breakdown {
	commission := percentOf(amount, commissionPct)
	net := amount.Sub(prize).Sub(commission)
	participation := percentOf(net, partPct)

	return Breakdown{
		Commission:    commission,
		NetTotal:      net,
		Participation: participation,
		TotalVendor:   commission.Add(participation),
		TotalBank:     net.Sub(participation),
	}
}

// percentOf is exact: dividing by 100 is a decimal shift.
func percentOf(value, pct decimal.Decimal) decimal.Decimal {
	return value.Mul(pct).Shift(-2)
}
