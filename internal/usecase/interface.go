package usecase

import (
	"context"
	"time"

	"lyberate-settlement/internal/domain"
)

// The usecase layer depends on these interfaces, not on a concrete store.
// Lookup misses are reported as domain.ErrNotFound and persistence failures wrap
// domain.ErrStorage.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go

// SaleRepository stores immutable sales.
type SaleRepository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	AddSale(ctx context.Context, sale domain.Sale) error
}

// PaymentRepository stores vendor payments, newest first.
type PaymentRepository interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	AddPayment(ctx context.Context, payment domain.Payment) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, note string, updatedAt time.Time) (*domain.Payment, error)
}

// SellerRepository stores sellers and their commission catalog.
type SellerRepository interface {
	ListSellers(ctx context.Context) ([]domain.Seller, error)
	GetSeller(ctx context.Context, id string) (*domain.Seller, error)
	AddSeller(ctx context.Context, seller domain.Seller) error
	// UpdateSeller applies mutate to the stored seller atomically. If mutate fails
	// nothing is written.
	UpdateSeller(ctx context.Context, id string, mutate func(seller *domain.Seller) error) (*domain.Seller, error)
}

// TicketRepository stores weekly tickets, at most one per domain.TicketKey.
type TicketRepository interface {
	ListWeeklyTickets(ctx context.Context) ([]domain.WeeklyTicket, error)
	GetWeeklyTicket(ctx context.Context, key domain.TicketKey) (*domain.WeeklyTicket, error)
	// PutWeeklyTicket stores the ticket, replacing any ticket with the same key.
	PutWeeklyTicket(ctx context.Context, ticket domain.WeeklyTicket) error
	// UpsertWeeklyTicket reads the ticket stored under key (nil when absent), stores
	// the result of build in its place and returns it, as one atomic step.
	UpsertWeeklyTicket(ctx context.Context, key domain.TicketKey, build func(existing *domain.WeeklyTicket) domain.WeeklyTicket) (*domain.WeeklyTicket, error)
	SetWeeklyTicketStatus(ctx context.Context, id string, status domain.TicketStatus, updatedAt time.Time) error
}
