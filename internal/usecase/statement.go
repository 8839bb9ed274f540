package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"lyberate-settlement/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// StatementUseCase builds the vendor's account statement.
type StatementUseCase struct {
	sales    SaleRepository
	payments PaymentRepository
	tickets  *TicketManager
}

// NewStatementUseCase creates a new instance of the usecase.
func NewStatementUseCase(sales SaleRepository, payments PaymentRepository, tickets *TicketManager) *StatementUseCase {
	return &StatementUseCase{sales: sales, payments: payments, tickets: tickets}
}

// VendorStatement summarizes the seller's current and previous week, the payments the
// vendor reported and what is still owed on unsettled tickets.
func (uc *StatementUseCase) VendorStatement(ctx context.Context, sellerID, vendorID string) (*domain.VendorStatement, error) {
	sales, err := uc.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get sales: %w", err)
	}

	st := &domain.VendorStatement{
		SellerID:     sellerID,
		CurrentWeek:  summarizeWeek(sales, sellerID, domain.WeekID(0)),
		PreviousWeek: summarizeWeek(sales, sellerID, domain.WeekID(1)),
		PendingWeeks: make([]domain.WeeklyTicket, 0),
		Payments:     make([]domain.Payment, 0),
	}

	prev := st.PreviousWeek.Totals.Amount
	if prev.IsPositive() {
		growth := st.CurrentWeek.Totals.Amount.Sub(prev).Div(prev).Mul(hundred)
		st.GrowthPct = &growth
	}
	if st.CurrentWeek.Count > 0 {
		st.AverageTicket = st.CurrentWeek.Totals.Amount.Div(decimal.NewFromInt(int64(st.CurrentWeek.Count)))
	}

	if vendorID != "" {
		payments, err := uc.payments.ListPayments(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get payments: %w", err)
		}
		for _, p := range payments {
			if p.VendorID != vendorID {
				continue
			}
			st.Payments = append(st.Payments, p)
			switch p.Status {
			case domain.PaymentApproved:
				st.TotalPaid = st.TotalPaid.Add(p.Amount)
			case domain.PaymentPending:
				st.TotalPending = st.TotalPending.Add(p.Amount)
			}
		}
	}

	st.Tickets, err = uc.tickets.TicketsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	for _, t := range st.Tickets {
		if t.Status == domain.TicketSettled {
			continue
		}
		st.PendingWeeks = append(st.PendingWeeks, t)
		st.OpenTicketsBank = st.OpenTicketsBank.Add(t.TotalBank)
	}

	owed := st.OpenTicketsBank
	if owed.IsZero() {
		owed = st.CurrentWeek.Totals.TotalBank
	}
	st.Debt = decimal.Max(decimal.Zero, owed.Sub(st.TotalPaid))
	return st, nil
}

func summarizeWeek(sales []domain.Sale, sellerID, weekID string) domain.WeekSummary {
	summary := domain.WeekSummary{WeekID: weekID}
	for _, s := range sales {
		if s.SellerID == sellerID && s.WeekID == weekID {
			summary.Count++
			summary.Totals.Add(s)
		}
	}
	return summary
}
