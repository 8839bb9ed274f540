package usecase_test

import (
	"context"
	"lyberate-settlement/internal/domain"
	"lyberate-settlement/internal/usecase"
	mock_usecase "lyberate-settlement/internal/usecase/mocks"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementUseCase_VendorStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	week0, week1 := domain.WeekID(0), domain.WeekID(1)
	sales := []domain.Sale{
		makeSale(saleFixture{id: "s1", sellerID: "v1", sellerName: "Jhon Doe", currency: "USD", weekID: week0, amount: "1000", prize: "0", commissionPct: "10", partPct: "25"}),
		makeSale(saleFixture{id: "s2", sellerID: "v1", sellerName: "Jhon Doe", currency: "USD", weekID: week0, amount: "500", prize: "0", commissionPct: "10", partPct: "25"}),
		makeSale(saleFixture{id: "s3", sellerID: "v1", sellerName: "Jhon Doe", currency: "USD", weekID: week1, amount: "1000", prize: "0", commissionPct: "10", partPct: "25"}),
		makeSale(saleFixture{id: "s4", sellerID: "v2", sellerName: "EL YUCA", currency: "USD", weekID: week0, amount: "7000", prize: "0", commissionPct: "10", partPct: "25"}),
	}
	payments := []domain.Payment{
		{ID: "p1", VendorID: "u-1", Amount: dec("300"), Status: domain.PaymentApproved},
		{ID: "p2", VendorID: "u-1", Amount: dec("100"), Status: domain.PaymentPending},
		{ID: "p3", VendorID: "u-1", Amount: dec("900"), Status: domain.PaymentRejected},
		{ID: "p4", VendorID: "u-2", Amount: dec("5000"), Status: domain.PaymentApproved},
	}

	tests := []struct {
		name         string
		tickets      []domain.WeeklyTicket
		wantDebt     string
		wantOpenBank string
		wantPending  int
	}{
		{
			name: "debt from unsettled tickets",
			tickets: []domain.WeeklyTicket{
				{ID: "t0", SellerID: "v1", WeekID: week0, TotalBank: dec("1012.5"), Status: domain.TicketSettled},
				{ID: "t1", SellerID: "v1", WeekID: week1, TotalBank: dec("500"), Status: domain.TicketPending},
			},
			wantDebt:     "200",
			wantOpenBank: "500",
			wantPending:  1,
		},
		{
			name:         "debt from the current week when no ticket is open",
			wantDebt:     "712.5",
			wantOpenBank: "0",
		},
		{
			name: "debt never goes negative",
			tickets: []domain.WeeklyTicket{
				{ID: "t1", SellerID: "v1", WeekID: week1, TotalBank: dec("100"), Status: domain.TicketOpen},
			},
			wantDebt:     "0",
			wantOpenBank: "100",
			wantPending:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSales := mock_usecase.NewMockSaleRepository(ctrl)
			mPayments := mock_usecase.NewMockPaymentRepository(ctrl)
			mTickets := mock_usecase.NewMockTicketRepository(ctrl)
			mSales.EXPECT().ListSales(gomock.Any()).Return(sales, nil)
			mPayments.EXPECT().ListPayments(gomock.Any()).Return(payments, nil)
			mTickets.EXPECT().ListWeeklyTickets(gomock.Any()).Return(tt.tickets, nil)

			manager := usecase.NewTicketManager(mTickets, nil, clock, sequentialIDs("ticket"), nopLog)
			uc := usecase.NewStatementUseCase(mSales, mPayments, manager)
			got, err := uc.VendorStatement(context.Background(), "v1", "u-1")

			require.NoError(t, err)
			assert.Equal(t, 2, got.CurrentWeek.Count)
			assert.Equal(t, 1, got.PreviousWeek.Count)
			assertDecimal(t, "1500", got.CurrentWeek.Totals.Amount, "currentWeek")
			require.NotNil(t, got.GrowthPct)
			assertDecimal(t, "50", *got.GrowthPct, "growthPct")
			assertDecimal(t, "750", got.AverageTicket, "averageTicket")
			assertDecimal(t, "300", got.TotalPaid, "totalPaid")
			assertDecimal(t, "100", got.TotalPending, "totalPending")
			assert.Len(t, got.Payments, 3)
			assertDecimal(t, tt.wantOpenBank, got.OpenTicketsBank, "openTicketsBank")
			assertDecimal(t, tt.wantDebt, got.Debt, "debt")
			assert.Len(t, got.PendingWeeks, tt.wantPending)
		})
	}
}

func TestStatementUseCase_VendorStatement_NoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mSales := mock_usecase.NewMockSaleRepository(ctrl)
	mTickets := mock_usecase.NewMockTicketRepository(ctrl)
	mSales.EXPECT().ListSales(gomock.Any()).Return(nil, nil)
	mTickets.EXPECT().ListWeeklyTickets(gomock.Any()).Return(nil, nil)

	manager := usecase.NewTicketManager(mTickets, nil, clock, sequentialIDs("ticket"), nopLog)
	uc := usecase.NewStatementUseCase(mSales, mock_usecase.NewMockPaymentRepository(ctrl), manager)
	got, err := uc.VendorStatement(context.Background(), "v1", "")

	require.NoError(t, err)
	assert.Nil(t, got.GrowthPct)
	assert.True(t, got.AverageTicket.IsZero())
	assert.True(t, got.Debt.IsZero())
	assert.NotNil(t, got.PendingWeeks)
	assert.NotNil(t, got.Payments)
}
