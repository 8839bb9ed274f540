package domain

import "github.com/shopspring/decimal"

// AgencyBreakdown is the per-agency drill-down of a settlement row. It does not
// affect the row's totals.
type AgencyBreakdown struct {
	AgencyName string          `json:"agencyName"`
	Amount     decimal.Decimal `json:"amount"`
	TotalBank  decimal.Decimal `json:"totalBank"`
}

// SettlementRow consolidates one seller's sales and approved payments in one currency
// for a week.
type SettlementRow struct {
	SellerID           string            `json:"sellerId"`
	SellerName         string            `json:"sellerName"`
	Currency           string            `json:"currency"`
	TotalSales         decimal.Decimal   `json:"totalSales"`
	TotalPrize         decimal.Decimal   `json:"totalPrize"`
	TotalCommission    decimal.Decimal   `json:"totalCommission"`
	TotalNet           decimal.Decimal   `json:"totalNet"`
	TotalParticipation decimal.Decimal   `json:"totalParticipation"`
	TotalVendor        decimal.Decimal   `json:"totalVendor"`
	TotalBank          decimal.Decimal   `json:"totalBank"`
	TotalPaid          decimal.Decimal   `json:"totalPaid"`
	Balance            decimal.Decimal   `json:"balance"`
	AgencyBreakdown    []AgencyBreakdown `json:"agencyBreakdown"`
	Ticket             *WeeklyTicket     `json:"ticket,omitempty"`
}

// WeeklyClosingReport is the weekly closing screen: one row per seller and currency
// plus the tickets already generated for the week.
type WeeklyClosingReport struct {
	Week      WeekPeriod      `json:"week"`
	WeekLabel string          `json:"weekLabel"`
	Rows      []SettlementRow `json:"rows"`
	Tickets   []WeeklyTicket  `json:"tickets"`
}

// SalesReportRow groups a week's sales by seller, product and currency.
type SalesReportRow struct {
	SellerID     string     `json:"sellerId"`
	SellerName   string     `json:"sellerName"`
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	CurrencyID   string     `json:"currencyId"`
	CurrencyName string     `json:"currencyName"`
	Totals       SaleTotals `json:"totals"`
}

// SalesKPIs splits sales and bank utility between dollar and bolívar currencies.
type SalesKPIs struct {
	SalesUSD   decimal.Decimal `json:"salesUsd"`
	SalesBs    decimal.Decimal `json:"salesBs"`
	UtilityUSD decimal.Decimal `json:"utilityUsd"`
	UtilityBs  decimal.Decimal `json:"utilityBs"`
}

// SalesReport is the weekly sales liquidation view.
type SalesReport struct {
	Week        WeekPeriod            `json:"week"`
	WeekLabel   string                `json:"weekLabel"`
	Rows        []SalesReportRow      `json:"rows"`
	GrandTotals map[string]SaleTotals `json:"grandTotals"`
	KPIs        SalesKPIs             `json:"kpis"`
}

// WeekSummary is a seller's sales for one week.
type WeekSummary struct {
	WeekID string     `json:"weekId"`
	Count  int        `json:"count"`
	Totals SaleTotals `json:"totals"`
}

// VendorStatement is the vendor's account: this week's numbers, payments and debt.
type VendorStatement struct {
	SellerID        string           `json:"sellerId"`
	CurrentWeek     WeekSummary      `json:"currentWeek"`
	PreviousWeek    WeekSummary      `json:"previousWeek"`
	GrowthPct       *decimal.Decimal `json:"growthPct,omitempty"`
	AverageTicket   decimal.Decimal  `json:"averageTicket"`
	TotalPaid       decimal.Decimal  `json:"totalPaid"`
	TotalPending    decimal.Decimal  `json:"totalPending"`
	OpenTicketsBank decimal.Decimal  `json:"openTicketsBank"`
	Debt            decimal.Decimal  `json:"debt"`
	PendingWeeks    []WeeklyTicket   `json:"pendingWeeks"`
	Tickets         []WeeklyTicket   `json:"tickets"`
	Payments        []Payment        `json:"payments"`
}
