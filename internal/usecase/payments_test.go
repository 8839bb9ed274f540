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

func TestPaymentsUseCase_SubmitPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := domain.PaymentInput{
		VendorID:   "u-003",
		VendorName: "Jhon Doe",
		SellerID:   "v1",
		Amount:     dec("850"),
		Bank:       "Banesco",
		Reference:  "REF-1",
	}

	tests := []struct {
		name       string
		mutate     func(in *domain.PaymentInput)
		wantMethod domain.PaymentMethod
		wantDate   string
		wantWeekID string
		wantWeek   string
		wantErr    error
	}{
		{name: "defaults method, currency and date", mutate: func(*domain.PaymentInput) {}, wantMethod: domain.MethodTransfer},
		{name: "keeps explicit method", mutate: func(in *domain.PaymentInput) { in.Method = domain.MethodZelle }, wantMethod: domain.MethodZelle},
		{
			name:       "dated in an earlier week",
			mutate:     func(in *domain.PaymentInput) { in.Date = "2026-10-07" },
			wantMethod: domain.MethodTransfer,
			wantDate:   "2026-10-07",
			wantWeekID: "week-1",
			wantWeek:   "Lun 05 oct — Dom 11 oct",
		},
		{name: "unparseable date", mutate: func(in *domain.PaymentInput) { in.Date = "07/10/2026" }, wantErr: domain.ErrInvalidInput},
		{name: "unknown method", mutate: func(in *domain.PaymentInput) { in.Method = "Cheque" }, wantErr: domain.ErrInvalidInput},
		{name: "zero amount", mutate: func(in *domain.PaymentInput) { in.Amount = dec("0") }, wantErr: domain.ErrInvalidInput},
		{name: "missing reference", mutate: func(in *domain.PaymentInput) { in.Reference = "" }, wantErr: domain.ErrInvalidInput},
		{name: "missing seller", mutate: func(in *domain.PaymentInput) { in.SellerID = "" }, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mPayments := mock_usecase.NewMockPaymentRepository(ctrl)
			in := valid
			tt.mutate(&in)

			if tt.wantErr == nil {
				mPayments.EXPECT().AddPayment(gomock.Any(), gomock.Any()).Return(nil)
			}

			uc := usecase.NewPaymentsUseCase(mPayments, clock, sequentialIDs("pay"), nopLog)
			got, err := uc.SubmitPayment(context.Background(), in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pay-1", got.ID)
			assert.Equal(t, domain.PaymentPending, got.Status)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, "USD", got.Currency)
			wantDate, wantWeekID, wantWeek := "2026-10-15", "week-0", "Lun 12 oct — Dom 18 oct"
			if tt.wantWeekID != "" {
				wantDate, wantWeekID, wantWeek = tt.wantDate, tt.wantWeekID, tt.wantWeek
			}
			assert.Equal(t, wantDate, got.Date)
			assert.Equal(t, wantWeekID, got.WeekID)
			assert.Equal(t, wantWeek, got.Week)
			assert.True(t, got.CreatedAt.Equal(fixedNow))
		})
	}
}

func TestPaymentsUseCase_Review(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mPayments := mock_usecase.NewMockPaymentRepository(ctrl)
	uc := usecase.NewPaymentsUseCase(mPayments, clock, sequentialIDs("pay"), nopLog)

	t.Run("approve", func(t *testing.T) {
		mPayments.EXPECT().
			UpdatePaymentStatus(gomock.Any(), "pay-1", domain.PaymentApproved, "", fixedNow).
			Return(&domain.Payment{ID: "pay-1", Status: domain.PaymentApproved}, nil)

		got, err := uc.ApprovePayment(context.Background(), "pay-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentApproved, got.Status)
	})

	t.Run("reject with note", func(t *testing.T) {
		mPayments.EXPECT().
			UpdatePaymentStatus(gomock.Any(), "pay-1", domain.PaymentRejected, "referencia duplicada", fixedNow).
			Return(&domain.Payment{ID: "pay-1", Status: domain.PaymentRejected, AdminNote: "referencia duplicada"}, nil)

		got, err := uc.RejectPayment(context.Background(), "pay-1", "referencia duplicada")
		require.NoError(t, err)
		assert.Equal(t, "referencia duplicada", got.AdminNote)
	})

	t.Run("unknown payment", func(t *testing.T) {
		mPayments.EXPECT().
			UpdatePaymentStatus(gomock.Any(), "missing", domain.PaymentApproved, "", fixedNow).
			Return(nil, domain.ErrNotFound)

		_, err := uc.ApprovePayment(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPaymentsUseCase_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	all := []domain.Payment{
		{ID: "p3", VendorID: "u-1", Status: domain.PaymentPending},
		{ID: "p2", VendorID: "u-2", Status: domain.PaymentApproved},
		{ID: "p1", VendorID: "u-1", Status: domain.PaymentRejected},
	}
	mPayments := mock_usecase.NewMockPaymentRepository(ctrl)
	mPayments.EXPECT().ListPayments(gomock.Any()).Return(all, nil).Times(3)

	uc := usecase.NewPaymentsUseCase(mPayments, clock, sequentialIDs("pay"), nopLog)

	pending, err := uc.PendingPayments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Payment{all[0]}, pending)

	byVendor, err := uc.PaymentsByVendor(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Payment{all[0], all[2]}, byVendor)

	everything, err := uc.Payments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, everything)
}
