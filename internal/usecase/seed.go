package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"lyberate-settlement/internal/domain"
)

// Seed installs the demo sellers and an approved payment when the store has no sellers.
// It reports whether anything was written.
func Seed(ctx context.Context, sellers SellerRepository, payments PaymentRepository, now Clock) (bool, error) {
	existing, err := sellers.ListSellers(ctx)
	if err != nil {
		return false, fmt.Errorf("could not get sellers: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, s := range seedSellers() {
		if err := sellers.AddSeller(ctx, s); err != nil {
			return false, fmt.Errorf("could not seed seller %s: %w", s.ID, err)
		}
	}

	t := now()
	week := domain.RecentWeeks(t, 1)[0]
	payment := domain.Payment{
		ID:         "pay-001",
		VendorID:   "u-003",
		VendorName: "Jhon Doe",
		AgencyName: "Agencia Centro",
		SellerID:   "v1",
		Week:       week.Label(),
		WeekID:     week.ID,
		Amount:     decimal.NewFromInt(850),
		Currency:   "USD",
		Bank:       "Banesco",
		Method:     domain.MethodTransfer,
		Reference:  "REF-20240201-001",
		Date:       week.Start.Format(time.DateOnly),
		Status:     domain.PaymentApproved,
		CreatedAt:  t,
		UpdatedAt:  t,
	}
	if err := payments.AddPayment(ctx, payment); err != nil {
		return false, fmt.Errorf("could not seed payment: %w", err)
	}
	return true, nil
}

func seedSellers() []domain.Seller {
	pct := decimal.NewFromInt
	return []domain.Seller{
		{
			ID:        "v1",
			Name:      "Jhon Doe",
			IDNumber:  "V-12345678",
			Phone:     "0414-0000000",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Agencies:  []domain.Agency{{ID: "a1", Name: "Agencia Centro"}},
			Products: []domain.Product{{
				ID:   "p1",
				Name: "PARLEY BETM3",
				Currencies: []domain.CurrencyConfig{
					{ID: "c1", Name: "USD", CommissionPct: pct(10), PartPct: pct(25)},
					{ID: "c2", Name: "Bolívares", CommissionPct: pct(10), PartPct: pct(40)},
				},
			}},
		},
		{
			ID:        "v2",
			Name:      "EL YUCA",
			IDNumber:  "V-87654321",
			Phone:     "0412-1111111",
			CreatedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			Agencies:  []domain.Agency{{ID: "a2", Name: "Agencia Yuca"}},
			Products: []domain.Product{{
				ID:   "p2",
				Name: "ANIMALITOS",
				Currencies: []domain.CurrencyConfig{
					{ID: "c3", Name: "USD", CommissionPct: pct(15), PartPct: pct(20)},
					{ID: "c4", Name: "Bolívares", CommissionPct: pct(15), PartPct: pct(35)},
				},
			}},
		},
	}
}
