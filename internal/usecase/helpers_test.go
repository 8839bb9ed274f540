package usecase_test

import (
	"fmt"
	"lyberate-settlement/internal/domain"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	caracas  = time.FixedZone("VET", -4*3600)
	// Thursday of week-0, which runs from Monday 12 to Sunday 18 October.
	fixedNow = time.Date(2026, 10, 15, 10, 30, 0, 0, caracas)
	nopLog   = zerolog.Nop()
)

func clock() time.Time { return fixedNow }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

type saleFixture struct {
	id, sellerID, sellerName, currency, agency, weekID string
	amount, prize, commissionPct, partPct              string
}

func makeSale(s saleFixture) domain.Sale {
	b := domain.Calculate(dec(s.amount), dec(s.prize), dec(s.commissionPct), dec(s.partPct))
	return domain.Sale{
		ID:            s.id,
		SellerID:      s.sellerID,
		SellerName:    s.sellerName,
		AgencyName:    s.agency,
		ProductID:     "p1",
		ProductName:   "PARLEY BETM3",
		CurrencyID:    "c-" + s.currency,
		CurrencyName:  s.currency,
		Amount:        dec(s.amount),
		Prize:         dec(s.prize),
		Commission:    b.Commission,
		Total:         b.NetTotal,
		Participation: b.Participation,
		TotalVendor:   b.TotalVendor,
		TotalBank:     b.TotalBank,
		WeekID:        s.weekID,
		RegisteredAt:  fixedNow,
		CreatedAt:     fixedNow,
	}
}

func approvedPayment(id, sellerID, weekID, amount string) domain.Payment {
	return domain.Payment{
		ID:       id,
		SellerID: sellerID,
		WeekID:   weekID,
		Amount:   dec(amount),
		Currency: "USD",
		Status:   domain.PaymentApproved,
	}
}

func testSeller() domain.Seller {
	return domain.Seller{
		ID:       "v1",
		Name:     "Jhon Doe",
		Agencies: []domain.Agency{{ID: "a1", Name: "Agencia Centro"}},
		Products: []domain.Product{{
			ID:   "p1",
			Name: "PARLEY BETM3",
			Currencies: []domain.CurrencyConfig{
				{ID: "c1", Name: "USD", CommissionPct: dec("10"), PartPct: dec("25")},
				{ID: "c2", Name: "Bolívares", CommissionPct: dec("10"), PartPct: dec("40")},
			},
		}},
	}
}
