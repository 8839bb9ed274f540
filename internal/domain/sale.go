package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a recorded wager. The derived fields are computed once, when the sale is
// created, and never recomputed: later changes to a seller's commission terms do not
// alter historical sales.
type Sale struct {
	ID            string          `json:"id"`
	SellerID      string          `json:"sellerId"`
	SellerName    string          `json:"sellerName"`
	AgencyID      string          `json:"agencyId,omitempty"`
	AgencyName    string          `json:"agencyName,omitempty"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	CurrencyID    string          `json:"currencyId"`
	CurrencyName  string          `json:"currencyName"`
	Amount        decimal.Decimal `json:"amount"`
	Prize         decimal.Decimal `json:"prize"`
	Commission    decimal.Decimal `json:"commission"`
	Total         decimal.Decimal `json:"total"`
	Participation decimal.Decimal `json:"participation"`
	TotalVendor   decimal.Decimal `json:"totalVendor"`
	TotalBank     decimal.Decimal `json:"totalBank"`
	Date          string          `json:"date"`
	WeekID        string          `json:"weekId"`
	RegisteredAt  time.Time       `json:"registeredAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SaleInput is the sales-entry form. Date is YYYY-MM-DD.
type SaleInput struct {
	SellerID   string          `json:"sellerId"`
	AgencyID   string          `json:"agencyId,omitempty"`
	ProductID  string          `json:"productId"`
	CurrencyID string          `json:"currencyId"`
	Amount     decimal.Decimal `json:"amount"`
	Prize      decimal.Decimal `json:"prize"`
	Date       string          `json:"date,omitempty"`
	WeekID     string          `json:"weekId,omitempty"`
}

// NewSale resolves the product, currency and agency of in against the seller's catalog
// and freezes the settlement breakdown into the returned sale.
func (s *Seller) NewSale(id string, in SaleInput, registeredAt time.Time) (Sale, error) {
	product, currency, err := s.FindCurrency(in.ProductID, in.CurrencyID)
	if err != nil {
		return Sale{}, err
	}

	var agency Agency
	if in.AgencyID != "" {
		if agency, err = s.Agency(in.AgencyID); err != nil {
			return Sale{}, err
		}
	}

	b := Calculate(in.Amount, in.Prize, currency.CommissionPct, currency.PartPct)
	return Sale{
		ID:            id,
		SellerID:      s.ID,
		SellerName:    s.Name,
		AgencyID:      agency.ID,
		AgencyName:    agency.Name,
		ProductID:     product.ID,
		ProductName:   product.Name,
		CurrencyID:    currency.ID,
		CurrencyName:  currency.Name,
		Amount:        in.Amount,
		Prize:         in.Prize,
		Commission:    b.Commission,
		Total:         b.NetTotal,
		Participation: b.Participation,
		TotalVendor:   b.TotalVendor,
		TotalBank:     b.TotalBank,
		Date:          in.Date,
		WeekID:        in.WeekID,
		RegisteredAt:  registeredAt,
		CreatedAt:     registeredAt,
	}, nil
}

// SaleTotals sums the monetary fields of a set of sales.
type SaleTotals struct {
	Amount        decimal.Decimal `json:"amount"`
	Prize         decimal.Decimal `json:"prize"`
	Commission    decimal.Decimal `json:"commission"`
	Total         decimal.Decimal `json:"total"`
	Participation decimal.Decimal `json:"participation"`
	TotalVendor   decimal.Decimal `json:"totalVendor"`
	TotalBank     decimal.Decimal `json:"totalBank"`
}

// Add accumulates a sale into the totals.
func (t *SaleTotals) Add(s Sale) {
	t.Amount = t.Amount.Add(s.Amount)
	t.Prize = t.Prize.Add(s.Prize)
	t.Commission = t.Commission.Add(s.Commission)
	t.Total = t.Total.Add(s.Total)
	t.Participation = t.Participation.Add(s.Participation)
	t.TotalVendor = t.TotalVendor.Add(s.TotalVendor)
	t.TotalBank = t.TotalBank.Add(s.TotalBank)
}

// Merge accumulates other totals.
func (t *SaleTotals) Merge(o SaleTotals) {
	t.Amount = t.Amount.Add(o.Amount)
	t.Prize = t.Prize.Add(o.Prize)
	t.Commission = t.Commission.Add(o.Commission)
	t.Total = t.Total.Add(o.Total)
	t.Participation = t.Participation.Add(o.Participation)
	t.TotalVendor = t.TotalVendor.Add(o.TotalVendor)
	t.TotalBank = t.TotalBank.Add(o.TotalBank)
}
