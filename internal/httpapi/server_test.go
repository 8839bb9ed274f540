package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyberate-settlement/internal/app"
	"lyberate-settlement/internal/domain"
	"lyberate-settlement/internal/gateway"
	"lyberate-settlement/internal/httpapi"
	"lyberate-settlement/internal/usecase"
)

var fixedNow = time.Date(2026, 10, 15, 10, 30, 0, 0, time.FixedZone("VET", -4*60*60))

func clock() time.Time { return fixedNow }

func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := gateway.NewKVRepository(gateway.NewMemoryStore(), zerolog.Nop())
	_, err := usecase.Seed(context.Background(), repo, repo, clock)
	require.NoError(t, err)

	a := app.New(repo, clock, sequentialIDs(), 4, zerolog.Nop())
	return httpapi.NewRouter(a, httpapi.Options{AllowedOrigins: []string{"http://localhost:5173"}}, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListWeeks(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantCount int
	}{
		{name: "default count", path: "/api/weeks", wantCode: http.StatusOK, wantCount: 4},
		{name: "explicit count", path: "/api/weeks?count=2", wantCode: http.StatusOK, wantCount: 2},
		{name: "zero count", path: "/api/weeks?count=0", wantCode: http.StatusBadRequest},
		{name: "largest count", path: "/api/weeks?count=104", wantCode: http.StatusOK, wantCount: 104},
		{name: "count above two years", path: "/api/weeks?count=105", wantCode: http.StatusBadRequest},
		{name: "huge count", path: "/api/weeks?count=2000000000", wantCode: http.StatusBadRequest},
		{name: "not a number", path: "/api/weeks?count=many", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}

			weeks := decode[[]map[string]any](t, rec)
			require.Len(t, weeks, tt.wantCount)
			assert.Equal(t, "week-0", weeks[0]["id"])
			assert.Equal(t, "Lun 12 oct — Dom 18 oct", weeks[0]["label"])
		})
	}
}

func TestWeeklySettlementFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/sales", domain.SaleInput{
		SellerID:   "v1",
		AgencyID:   "a1",
		ProductID:  "p1",
		CurrencyID: "c1",
		Amount:     decimal.NewFromInt(1500),
		Prize:      decimal.NewFromInt(200),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sale := decode[domain.Sale](t, rec)
	assertDecimal(t, "862.5", sale.TotalBank, "totalBank")
	assert.Equal(t, "week-0", sale.WeekID)

	rec = do(t, h, http.MethodGet, "/api/weeks/week-0/closing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	closing := decode[domain.WeeklyClosingReport](t, rec)
	require.Len(t, closing.Rows, 1)
	row := closing.Rows[0]
	assert.Equal(t, "Jhon Doe", row.SellerName)
	assertDecimal(t, "850", row.TotalPaid, "totalPaid")
	assertDecimal(t, "12.5", row.Balance, "balance")
	assert.Nil(t, row.Ticket)

	rec = do(t, h, http.MethodPost, "/api/weeks/week-0/tickets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tickets := decode[[]domain.WeeklyTicket](t, rec)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.TicketPending, tickets[0].Status)

	rec = do(t, h, http.MethodPost, "/api/tickets/"+tickets[0].ID+"/settle", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/weeks/week-0/tickets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tickets = decode[[]domain.WeeklyTicket](t, rec)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.TicketSettled, tickets[0].Status)

	rec = do(t, h, http.MethodPost, "/api/weeks/week-0/tickets/v1/USD", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	regenerated := decode[domain.WeeklyTicket](t, rec)
	assert.Equal(t, tickets[0].ID, regenerated.ID)
	assert.Equal(t, domain.TicketPending, regenerated.Status)

	rec = do(t, h, http.MethodPut, "/api/tickets/"+regenerated.ID+"/status", map[string]string{"status": "open"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/weeks/week-0/sales-report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[domain.SalesReport](t, rec)
	require.Len(t, report.Rows, 1)
	assertDecimal(t, "1500", report.KPIs.SalesUSD, "salesUsd")

	rec = do(t, h, http.MethodGet, "/api/sellers/v1/statement?vendorId=u-003", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	statement := decode[domain.VendorStatement](t, rec)
	assertDecimal(t, "850", statement.TotalPaid, "totalPaid")
	assert.Equal(t, 1, statement.CurrentWeek.Count)
}

func TestBackdatedSaleAndPaymentCloseTogether(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/sales", domain.SaleInput{
		SellerID:   "v1",
		ProductID:  "p1",
		CurrencyID: "c1",
		Amount:     decimal.NewFromInt(1500),
		Prize:      decimal.NewFromInt(200),
		Date:       "2026-10-07",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "week-1", decode[domain.Sale](t, rec).WeekID)

	rec = do(t, h, http.MethodPost, "/api/payments", domain.PaymentInput{
		VendorID:  "u-003",
		SellerID:  "v1",
		Amount:    decimal.NewFromInt(300),
		Bank:      "Banesco",
		Reference: "REF-OLD",
		Date:      "2026-10-07",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	payment := decode[domain.Payment](t, rec)
	assert.Equal(t, "week-1", payment.WeekID)

	rec = do(t, h, http.MethodPost, "/api/payments/"+payment.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/weeks/week-1/closing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	closing := decode[domain.WeeklyClosingReport](t, rec)
	require.Len(t, closing.Rows, 1)
	assertDecimal(t, "300", closing.Rows[0].TotalPaid, "totalPaid")
	assertDecimal(t, "562.5", closing.Rows[0].Balance, "balance")
}

func TestPaymentsEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/payments", domain.PaymentInput{
		VendorID:   "u-003",
		VendorName: "Jhon Doe",
		SellerID:   "v1",
		Amount:     decimal.NewFromInt(100),
		Bank:       "Mercantil",
		Method:     domain.MethodMobile,
		Reference:  "REF-77",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	payment := decode[domain.Payment](t, rec)
	assert.Equal(t, domain.PaymentPending, payment.Status)

	rec = do(t, h, http.MethodGet, "/api/payments?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decode[[]domain.Payment](t, rec)
	require.Len(t, pending, 1)
	assert.Equal(t, payment.ID, pending[0].ID)

	rec = do(t, h, http.MethodGet, "/api/payments?vendorId=u-003", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Payment](t, rec), 2)

	rec = do(t, h, http.MethodPost, "/api/payments/"+payment.ID+"/reject", map[string]string{"note": "referencia duplicada"})
	require.Equal(t, http.StatusOK, rec.Code)
	rejected := decode[domain.Payment](t, rec)
	assert.Equal(t, domain.PaymentRejected, rejected.Status)
	assert.Equal(t, "referencia duplicada", rejected.AdminNote)

	rec = do(t, h, http.MethodPost, "/api/payments/"+payment.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaymentApproved, decode[domain.Payment](t, rec).Status)

	rec = do(t, h, http.MethodGet, "/api/payments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Payment](t, rec), 2)
}

func TestSellerEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/sellers", domain.SellerInput{Name: "Maria Pérez", Agencies: []string{"Agencia Sur"}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	seller := decode[domain.Seller](t, rec)

	rec = do(t, h, http.MethodGet, "/api/sellers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Seller](t, rec), 3)

	rec = do(t, h, http.MethodPost, "/api/sellers/"+seller.ID+"/agencies", map[string]string{"name": "Agencia Este"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[domain.Seller](t, rec).Agencies, 2)

	rec = do(t, h, http.MethodPost, "/api/sellers/"+seller.ID+"/products", domain.ProductInput{Name: "LOTO"})
	require.Equal(t, http.StatusOK, rec.Code)
	seller = decode[domain.Seller](t, rec)
	require.Len(t, seller.Products, 1)
	productID := seller.Products[0].ID

	rec = do(t, h, http.MethodPost, "/api/sellers/"+seller.ID+"/products/"+productID+"/currencies",
		domain.CurrencyInput{Name: "USD", CommissionPct: decimal.NewFromInt(10), PartPct: decimal.NewFromInt(20)})
	require.Equal(t, http.StatusOK, rec.Code)
	seller = decode[domain.Seller](t, rec)
	require.Len(t, seller.Products[0].Currencies, 1)
	currencyID := seller.Products[0].Currencies[0].ID

	rec = do(t, h, http.MethodPost, "/api/sellers/"+seller.ID+"/products/"+productID+"/currencies", domain.CurrencyInput{Name: "usd"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/sellers/"+seller.ID+"/products/"+productID+"/currencies/"+currencyID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[domain.Seller](t, rec).Products[0].Currencies)

	rec = do(t, h, http.MethodDelete, "/api/sellers/"+seller.ID+"/products/"+productID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[domain.Seller](t, rec).Products)

	rec = do(t, h, http.MethodGet, "/api/sellers/"+seller.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Maria Pérez", decode[domain.Seller](t, rec).Name)
}

func TestErrorStatuses(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
	}{
		{name: "unknown seller", method: http.MethodGet, path: "/api/sellers/v9", wantCode: http.StatusNotFound},
		{name: "unknown payment", method: http.MethodPost, path: "/api/payments/missing/approve", wantCode: http.StatusNotFound},
		{name: "malformed week id", method: http.MethodGet, path: "/api/weeks/current/closing", wantCode: http.StatusBadRequest},
		{name: "no sales for ticket", method: http.MethodPost, path: "/api/weeks/week-0/tickets/v2/USD", wantCode: http.StatusNotFound},
		{name: "malformed body", method: http.MethodPost, path: "/api/sales", body: "{", wantCode: http.StatusBadRequest},
		{name: "sale without product", method: http.MethodPost, path: "/api/sales", body: domain.SaleInput{SellerID: "v1", CurrencyID: "c1", Amount: decimal.NewFromInt(1)}, wantCode: http.StatusBadRequest},
		{name: "invalid ticket status", method: http.MethodPut, path: "/api/tickets/t1/status", body: map[string]string{"status": "closed"}, wantCode: http.StatusBadRequest},
		{name: "unknown ticket status change is ignored", method: http.MethodPut, path: "/api/tickets/t1/status", body: map[string]string{"status": "settled"}, wantCode: http.StatusNoContent},
		{name: "agency without name", method: http.MethodPost, path: "/api/sellers/v1/agencies", body: map[string]string{}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode >= http.StatusBadRequest {
				assert.Contains(t, decode[map[string]string](t, rec), "error")
			}
		})
	}
}

type unavailableStore struct{}

func (unavailableStore) Get(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("%w: connection refused", domain.ErrStorage)
}

func (unavailableStore) Update(context.Context, string, func([]byte) ([]byte, error)) error {
	return fmt.Errorf("%w: connection refused", domain.ErrStorage)
}

func TestStorageUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := gateway.NewKVRepository(unavailableStore{}, zerolog.Nop())
	h := httpapi.NewRouter(app.New(repo, clock, sequentialIDs(), 4, zerolog.Nop()), httpapi.Options{}, zerolog.Nop())

	for _, path := range []string{"/api/sellers", "/api/weeks/week-0/closing", "/api/payments"} {
		rec := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}
