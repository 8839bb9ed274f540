package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus is the settlement state of a weekly ticket. No state is terminal.
type TicketStatus string

const (
	TicketOpen    TicketStatus = "open"
	TicketPending TicketStatus = "pending"
	TicketSettled TicketStatus = "settled"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketPending, TicketSettled:
		return true
	}
	return false
}

// DefaultStatus is settled when nothing is owed, pending otherwise.
func DefaultStatus(balance decimal.Decimal) TicketStatus {
	if balance.LessThanOrEqual(decimal.Zero) {
		return TicketSettled
	}
	return TicketPending
}

// TicketKey identifies the single ticket allowed per seller, week and currency.
type TicketKey struct {
	SellerID string `json:"sellerId"`
	WeekID   string `json:"weekId"`
	Currency string `json:"currency"`
}

// WeeklyTicket is the settlement snapshot of one seller, week and currency.
type WeeklyTicket struct {
	ID                 string          `json:"id"`
	SellerID           string          `json:"sellerId"`
	SellerName         string          `json:"sellerName"`
	WeekID             string          `json:"weekId"`
	WeekLabel          string          `json:"weekLabel"`
	TotalSales         decimal.Decimal `json:"totalSales"`
	TotalPrize         decimal.Decimal `json:"totalPrize"`
	TotalCommission    decimal.Decimal `json:"totalCommission"`
	TotalNet           decimal.Decimal `json:"totalNet"`
	TotalParticipation decimal.Decimal `json:"totalParticipation"`
	TotalVendor        decimal.Decimal `json:"totalVendor"`
	TotalBank          decimal.Decimal `json:"totalBank"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	Balance            decimal.Decimal `json:"balance"`
	Currency           string          `json:"currency"`
	Status             TicketStatus    `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// Key returns the uniqueness key of the ticket.
func (t WeeklyTicket) Key() TicketKey {
	return TicketKey{SellerID: t.SellerID, WeekID: t.WeekID, Currency: t.Currency}
}
