package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lyberate-settlement/internal/domain"
)

// SalesUseCase records sales and builds the weekly sales liquidation.
type SalesUseCase struct {
	sales   SaleRepository
	sellers SellerRepository
	now     Clock
	newID   IDGenerator
	logger  zerolog.Logger
}

// NewSalesUseCase creates a new instance of the usecase.
func NewSalesUseCase(sales SaleRepository, sellers SellerRepository, now Clock, newID IDGenerator, logger zerolog.Logger) *SalesUseCase {
	return &SalesUseCase{
		sales:   sales,
		sellers: sellers,
		now:     now,
		newID:   newID,
		logger:  logger.With().Str("component", "sales").Logger(),
	}
}

// RecordSale computes the sale's breakdown from the seller's current terms and stores it.
// The date defaults to today and the week to the one containing the date.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in domain.SaleInput) (*domain.Sale, error) {
	if in.SellerID == "" || in.ProductID == "" || in.CurrencyID == "" {
		return nil, fmt.Errorf("%w: seller, product and currency are required", domain.ErrInvalidInput)
	}

	now := uc.now()
	if in.Date == "" {
		in.Date = now.Format(time.DateOnly)
	}
	day, err := time.ParseInLocation(time.DateOnly, in.Date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse date '%s'", domain.ErrInvalidInput, in.Date)
	}
	if in.WeekID == "" {
		in.WeekID = domain.WeekOf(day, now).ID
	} else if _, err := domain.ParseWeekIndex(in.WeekID); err != nil {
		return nil, err
	}

	seller, err := uc.sellers.GetSeller(ctx, in.SellerID)
	if err != nil {
		return nil, fmt.Errorf("could not get seller %s: %w", in.SellerID, err)
	}

	sale, err := seller.NewSale(uc.newID(), in, now)
	if err != nil {
		return nil, err
	}

	if err := uc.sales.AddSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("could not save sale: %w", err)
	}

	uc.logger.Info().
		Str("sale_id", sale.ID).
		Str("seller_id", sale.SellerID).
		Str("week_id", sale.WeekID).
		Str("currency", sale.CurrencyName).
		Str("amount", sale.Amount.String()).
		Msg("sale recorded")
	return &sale, nil
}

// SalesReport groups a week's sales by seller, product and currency, with grand totals
// per currency name.
func (uc *SalesUseCase) SalesReport(ctx context.Context, weekID string) (*domain.SalesReport, error) {
	week, err := domain.WeekByID(weekID, uc.now())
	if err != nil {
		return nil, err
	}

	sales, err := uc.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get sales: %w", err)
	}

	rows := groupSalesByProduct(filterSalesByWeek(sales, weekID))

	grand := make(map[string]domain.SaleTotals)
	for _, r := range rows {
		t := grand[r.CurrencyName]
		t.Merge(r.Totals)
		grand[r.CurrencyName] = t
	}

	return &domain.SalesReport{
		Week:        week,
		WeekLabel:   week.Label(),
		Rows:        rows,
		GrandTotals: grand,
		KPIs:        salesKPIs(grand),
	}, nil
}

func groupSalesByProduct(sales []domain.Sale) []domain.SalesReportRow {
	index := make(map[string]int)
	rows := make([]domain.SalesReportRow, 0)
	for _, s := range sales {
		key := s.SellerID + "-" + s.ProductID + "-" + s.CurrencyID
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, domain.SalesReportRow{
				SellerID:     s.SellerID,
				SellerName:   s.SellerName,
				ProductID:    s.ProductID,
				ProductName:  s.ProductName,
				CurrencyID:   s.CurrencyID,
				CurrencyName: s.CurrencyName,
			})
		}
		rows[i].Totals.Add(s)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SellerName != rows[j].SellerName {
			return rows[i].SellerName < rows[j].SellerName
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows
}

// salesKPIs treats currencies named after dollars as USD and everything else as bolívares.
func salesKPIs(grand map[string]domain.SaleTotals) domain.SalesKPIs {
	var k domain.SalesKPIs
	for currency, t := range grand {
		name := strings.ToLower(currency)
		if strings.Contains(name, "usd") || strings.Contains(name, "dolar") {
			k.SalesUSD = k.SalesUSD.Add(t.Amount)
			k.UtilityUSD = k.UtilityUSD.Add(t.TotalBank)
		} else {
			k.SalesBs = k.SalesBs.Add(t.Amount)
			k.UtilityBs = k.UtilityBs.Add(t.TotalBank)
		}
	}
	return k
}
