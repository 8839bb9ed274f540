package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"lyberate-settlement/internal/domain"
)

// ClosingUseCase builds the weekly closing report.
type ClosingUseCase struct {
	sales    SaleRepository
	payments PaymentRepository
	tickets  TicketRepository
	now      Clock
	logger   zerolog.Logger
}

// NewClosingUseCase creates a new instance of the usecase.
func NewClosingUseCase(sales SaleRepository, payments PaymentRepository, tickets TicketRepository, now Clock, logger zerolog.Logger) *ClosingUseCase {
	return &ClosingUseCase{
		sales:    sales,
		payments: payments,
		tickets:  tickets,
		now:      now,
		logger:   logger.With().Str("component", "closing").Logger(),
	}
}

// Weeks lists the selectable periods, current week first.
func (uc *ClosingUseCase) Weeks(count int) []domain.WeekPeriod {
	return domain.RecentWeeks(uc.now(), count)
}

// Aggregate loads the week's sales and payments and consolidates them per seller and currency.
func (uc *ClosingUseCase) Aggregate(ctx context.Context, weekID string) (domain.WeekPeriod, []domain.SettlementRow, error) {
	week, err := domain.WeekByID(weekID, uc.now())
	if err != nil {
		return domain.WeekPeriod{}, nil, err
	}

	sales, err := uc.sales.ListSales(ctx)
	if err != nil {
		return domain.WeekPeriod{}, nil, fmt.Errorf("could not get sales: %w", err)
	}

	payments, err := uc.payments.ListPayments(ctx)
	if err != nil {
		return domain.WeekPeriod{}, nil, fmt.Errorf("could not get payments: %w", err)
	}

	return week, AggregateWeek(weekID, sales, payments), nil
}

// WeeklyClosing returns the consolidated rows of a week with the tickets already generated.
func (uc *ClosingUseCase) WeeklyClosing(ctx context.Context, weekID string) (*domain.WeeklyClosingReport, error) {
	week, rows, err := uc.Aggregate(ctx, weekID)
	if err != nil {
		return nil, err
	}

	all, err := uc.tickets.ListWeeklyTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get weekly tickets: %w", err)
	}

	weekTickets := make([]domain.WeeklyTicket, 0)
	byKey := make(map[domain.TicketKey]domain.WeeklyTicket)
	for _, t := range all {
		if t.WeekID != weekID {
			continue
		}
		weekTickets = append(weekTickets, t)
		byKey[t.Key()] = t
	}

	for i := range rows {
		key := domain.TicketKey{SellerID: rows[i].SellerID, WeekID: weekID, Currency: rows[i].Currency}
		if t, ok := byKey[key]; ok {
			rows[i].Ticket = &t
		}
	}

	uc.logger.Debug().
		Str("week_id", weekID).
		Int("rows", len(rows)).
		Int("tickets", len(weekTickets)).
		Msg("weekly closing built")

	return &domain.WeeklyClosingReport{
		Week:      week,
		WeekLabel: week.Label(),
		Rows:      rows,
		Tickets:   weekTickets,
	}, nil
}

// AggregateWeek consolidates the sales and approved payments of a week into one row per
// seller and currency. Sellers without sales in the week get no row. The result depends
// only on its arguments.
func AggregateWeek(weekID string, sales []domain.Sale, payments []domain.Payment) []domain.SettlementRow {
	weekSales := filterSalesByWeek(sales, weekID)
	approved := filterApprovedPaymentsByWeek(payments, weekID)

	type groupKey string
	rows := make(map[groupKey]*domain.SettlementRow)
	var order []groupKey

	for _, sale := range weekSales {
		key := groupKey(buildGroupKey(sale.SellerID, sale.CurrencyName))
		row, ok := rows[key]
		if !ok {
			row = &domain.SettlementRow{
				SellerID:        sale.SellerID,
				SellerName:      sale.SellerName,
				Currency:        sale.CurrencyName,
				AgencyBreakdown: make([]domain.AgencyBreakdown, 0),
			}
			rows[key] = row
			order = append(order, key)
		}
		addSaleToRow(row, sale)
	}

	result := make([]domain.SettlementRow, 0, len(order))
	for _, key := range order {
		row := rows[key]
		row.TotalPaid = sumPayments(matchPaymentsToSellerIgnoringCurrency(approved, row.SellerID))
		row.Balance = row.TotalBank.Sub(row.TotalPaid)
		result = append(result, *row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.SellerName != b.SellerName {
			return a.SellerName < b.SellerName
		}
		if a.Currency != b.Currency {
			return a.Currency < b.Currency
		}
		return a.SellerID < b.SellerID
	})
	return result
}

func addSaleToRow(row *domain.SettlementRow, sale domain.Sale) {
	row.TotalSales = row.TotalSales.Add(sale.Amount)
	row.TotalPrize = row.TotalPrize.Add(sale.Prize)
	row.TotalCommission = row.TotalCommission.Add(sale.Commission)
	row.TotalNet = row.TotalNet.Add(sale.Total)
	row.TotalParticipation = row.TotalParticipation.Add(sale.Participation)
	row.TotalVendor = row.TotalVendor.Add(sale.TotalVendor)
	row.TotalBank = row.TotalBank.Add(sale.TotalBank)

	if sale.AgencyName == "" {
		return
	}
	for i := range row.AgencyBreakdown {
		ag := &row.AgencyBreakdown[i]
		if ag.AgencyName == sale.AgencyName {
			ag.Amount = ag.Amount.Add(sale.Amount)
			ag.TotalBank = ag.TotalBank.Add(sale.TotalBank)
			return
		}
	}
	row.AgencyBreakdown = append(row.AgencyBreakdown, domain.AgencyBreakdown{
		AgencyName: sale.AgencyName,
		Amount:     sale.Amount,
		TotalBank:  sale.TotalBank,
	})
}

// matchPaymentsToSellerIgnoringCurrency selects the payments credited to a settlement row.
// Payments are matched by seller only, so a payment in any currency counts against
// every currency row of that seller.
func matchPaymentsToSellerIgnoringCurrency(payments []domain.Payment, sellerID string) []domain.Payment {
	var matched []domain.Payment
	for _, p := range payments {
		if p.SellerID == sellerID {
			matched = append(matched, p)
		}
	}
	return matched
}

func sumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

func buildGroupKey(sellerID, currency string) string {
	return sellerID + "|" + currency
}

func filterSalesByWeek(sales []domain.Sale, weekID string) []domain.Sale {
	var filtered []domain.Sale
	for _, s := range sales {
		if s.WeekID == weekID {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func filterApprovedPaymentsByWeek(payments []domain.Payment, weekID string) []domain.Payment {
	var filtered []domain.Payment
	for _, p := range payments {
		if p.WeekID == weekID && p.Status == domain.PaymentApproved {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
