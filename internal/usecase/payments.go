package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"lyberate-settlement/internal/domain"
)

// PaymentsUseCase handles vendor payment reports and their approval.
type PaymentsUseCase struct {
	payments PaymentRepository
	now      Clock
	newID    IDGenerator
	logger   zerolog.Logger
}

// NewPaymentsUseCase creates a new instance of the usecase.
func NewPaymentsUseCase(payments PaymentRepository, now Clock, newID IDGenerator, logger zerolog.Logger) *PaymentsUseCase {
	return &PaymentsUseCase{
		payments: payments,
		now:      now,
		newID:    newID,
		logger:   logger.With().Str("component", "payments").Logger(),
	}
}

// SubmitPayment stores a pending payment against the week of its date, or the current
// week when no date is given.
func (uc *PaymentsUseCase) SubmitPayment(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error) {
	if in.SellerID == "" || in.VendorID == "" {
		return nil, fmt.Errorf("%w: seller and vendor are required", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() || in.Bank == "" || in.Reference == "" {
		return nil, fmt.Errorf("%w: amount, bank and reference are required", domain.ErrInvalidInput)
	}
	if in.Method == "" {
		in.Method = domain.MethodTransfer
	}
	if !in.Method.Valid() {
		return nil, fmt.Errorf("%w: payment method %q", domain.ErrInvalidInput, in.Method)
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}

	now := uc.now()
	week := domain.RecentWeeks(now, 1)[0]
	if in.Date == "" {
		in.Date = now.Format(time.DateOnly)
	} else {
		day, err := time.ParseInLocation(time.DateOnly, in.Date, now.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: could not parse date '%s'", domain.ErrInvalidInput, in.Date)
		}
		week = domain.WeekOf(day, now)
	}

	payment := domain.Payment{
		ID:               uc.newID(),
		VendorID:         in.VendorID,
		VendorName:       in.VendorName,
		AgencyName:       in.AgencyName,
		SellerID:         in.SellerID,
		Week:             week.Label(),
		WeekID:           week.ID,
		Amount:           in.Amount,
		Currency:         in.Currency,
		Bank:             in.Bank,
		Method:           in.Method,
		Reference:        in.Reference,
		Date:             in.Date,
		Status:           domain.PaymentPending,
		ProofImageBase64: in.ProofImageBase64,
		ProofMimeType:    in.ProofMimeType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.payments.AddPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("could not save payment: %w", err)
	}

	uc.logger.Info().
		Str("payment_id", payment.ID).
		Str("seller_id", payment.SellerID).
		Str("week_id", payment.WeekID).
		Str("amount", payment.Amount.String()).
		Msg("payment submitted")
	return &payment, nil
}

// ApprovePayment makes the payment count toward settlement.
func (uc *PaymentsUseCase) ApprovePayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.review(ctx, id, domain.PaymentApproved, "")
}

// RejectPayment records the admin's reason for rejecting the payment.
func (uc *PaymentsUseCase) RejectPayment(ctx context.Context, id, note string) (*domain.Payment, error) {
	return uc.review(ctx, id, domain.PaymentRejected, note)
}

func (uc *PaymentsUseCase) review(ctx context.Context, id string, status domain.PaymentStatus, note string) (*domain.Payment, error) {
	payment, err := uc.payments.UpdatePaymentStatus(ctx, id, status, note, uc.now())
	if err != nil {
		return nil, fmt.Errorf("could not update payment %s: %w", id, err)
	}
	uc.logger.Info().Str("payment_id", id).Str("status", string(status)).Msg("payment reviewed")
	return payment, nil
}

// PendingPayments is the admin's review queue.
func (uc *PaymentsUseCase) PendingPayments(ctx context.Context) ([]domain.Payment, error) {
	return uc.filter(ctx, func(p domain.Payment) bool { return p.Status == domain.PaymentPending })
}

// PaymentsByVendor lists every payment a vendor reported.
func (uc *PaymentsUseCase) PaymentsByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error) {
	return uc.filter(ctx, func(p domain.Payment) bool { return p.VendorID == vendorID })
}

// Payments lists all payments, newest first.
func (uc *PaymentsUseCase) Payments(ctx context.Context) ([]domain.Payment, error) {
	return uc.filter(ctx, func(domain.Payment) bool { return true })
}

func (uc *PaymentsUseCase) filter(ctx context.Context, keep func(domain.Payment) bool) ([]domain.Payment, error) {
	all, err := uc.payments.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get payments: %w", err)
	}
	filtered := make([]domain.Payment, 0)
	for _, p := range all {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
