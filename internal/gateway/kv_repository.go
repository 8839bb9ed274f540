package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"lyberate-settlement/internal/domain"
)

// Storage keys of the JSON collections.
const (
	KeySales         = "lyberate_sales"
	KeyPayments      = "lyberate_payments"
	KeySellers       = "lyberate_sellers"
	KeyWeeklyTickets = "lyberate_weekly_tickets"
)

// KVRepository keeps every collection as a JSON array in a KeyValueStore.
type KVRepository struct {
	store  KeyValueStore
	logger zerolog.Logger
}

// NewKVRepository creates a repository over store.
func NewKVRepository(store KeyValueStore, logger zerolog.Logger) *KVRepository {
	return &KVRepository{
		store:  store,
		logger: logger.With().Str("component", "kv_repository").Logger(),
	}
}

func loadList[T any](ctx context.Context, store KeyValueStore, key string) ([]T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeList[T](key, data)
}

func decodeList[T any](key string, data []byte) ([]T, error) {
	items := make([]T, 0)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: could not decode %s: %w", domain.ErrStorage, key, err)
	}
	return items, nil
}

// updateList decodes the collection, lets mutate change it and writes it back in one
// atomic store update.
func updateList[T any](ctx context.Context, store KeyValueStore, key string, mutate func([]T) ([]T, error)) error {
	return store.Update(ctx, key, func(current []byte) ([]byte, error) {
		items, err := decodeList[T](key, current)
		if err != nil {
			return nil, err
		}
		items, err = mutate(items)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("%w: could not encode %s: %w", domain.ErrStorage, key, err)
		}
		return data, nil
	})
}

// ListSales returns every recorded sale.
func (r *KVRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return loadList[domain.Sale](ctx, r.store, KeySales)
}

// AddSale appends a sale.
func (r *KVRepository) AddSale(ctx context.Context, sale domain.Sale) error {
	return updateList(ctx, r.store, KeySales, func(sales []domain.Sale) ([]domain.Sale, error) {
		return append(sales, sale), nil
	})
}

// ListPayments returns payments newest first.
func (r *KVRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return loadList[domain.Payment](ctx, r.store, KeyPayments)
}

// GetPayment finds a payment by id.
func (r *KVRepository) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	payments, err := r.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, fmt.Errorf("payment %s: %w", id, domain.ErrNotFound)
}

// AddPayment prepends a payment.
func (r *KVRepository) AddPayment(ctx context.Context, payment domain.Payment) error {
	return updateList(ctx, r.store, KeyPayments, func(payments []domain.Payment) ([]domain.Payment, error) {
		return append([]domain.Payment{payment}, payments...), nil
	})
}

// UpdatePaymentStatus changes the approval state of a payment. A non-empty note replaces
// the admin note.
func (r *KVRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, note string, updatedAt time.Time) (*domain.Payment, error) {
	var updated domain.Payment
	err := updateList(ctx, r.store, KeyPayments, func(payments []domain.Payment) ([]domain.Payment, error) {
		for i := range payments {
			if payments[i].ID != id {
				continue
			}
			payments[i].Status = status
			if note != "" {
				payments[i].AdminNote = note
			}
			payments[i].UpdatedAt = updatedAt
			updated = payments[i]
			return payments, nil
		}
		return nil, fmt.Errorf("payment %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListSellers returns every seller.
func (r *KVRepository) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	return loadList[domain.Seller](ctx, r.store, KeySellers)
}

// GetSeller finds a seller by id.
func (r *KVRepository) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	sellers, err := r.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sellers {
		if sellers[i].ID == id {
			return &sellers[i], nil
		}
	}
	return nil, fmt.Errorf("seller %s: %w", id, domain.ErrNotFound)
}

// AddSeller appends a seller.
func (r *KVRepository) AddSeller(ctx context.Context, seller domain.Seller) error {
	return updateList(ctx, r.store, KeySellers, func(sellers []domain.Seller) ([]domain.Seller, error) {
		return append(sellers, seller), nil
	})
}

// UpdateSeller applies mutate to the stored seller. Nothing is written when mutate fails.
func (r *KVRepository) UpdateSeller(ctx context.Context, id string, mutate func(*domain.Seller) error) (*domain.Seller, error) {
	var updated domain.Seller
	err := updateList(ctx, r.store, KeySellers, func(sellers []domain.Seller) ([]domain.Seller, error) {
		for i := range sellers {
			if sellers[i].ID != id {
				continue
			}
			if err := mutate(&sellers[i]); err != nil {
				return nil, err
			}
			updated = sellers[i]
			return sellers, nil
		}
		return nil, fmt.Errorf("seller %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListWeeklyTickets returns every ticket.
func (r *KVRepository) ListWeeklyTickets(ctx context.Context) ([]domain.WeeklyTicket, error) {
	return loadList[domain.WeeklyTicket](ctx, r.store, KeyWeeklyTickets)
}

// GetWeeklyTicket finds the ticket of a seller, week and currency.
func (r *KVRepository) GetWeeklyTicket(ctx context.Context, key domain.TicketKey) (*domain.WeeklyTicket, error) {
	tickets, err := r.ListWeeklyTickets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].Key() == key {
			return &tickets[i], nil
		}
	}
	return nil, fmt.Errorf("ticket %s/%s/%s: %w", key.SellerID, key.WeekID, key.Currency, domain.ErrNotFound)
}

// PutWeeklyTicket replaces the ticket with the same key, or appends it.
func (r *KVRepository) PutWeeklyTicket(ctx context.Context, ticket domain.WeeklyTicket) error {
	_, err := r.UpsertWeeklyTicket(ctx, ticket.Key(), func(*domain.WeeklyTicket) domain.WeeklyTicket {
		return ticket
	})
	return err
}

// UpsertWeeklyTicket builds the ticket for key from the existing one, if any, and stores it
// in place. The whole step is one store update, so concurrent upserts of a key never
// produce two tickets.
func (r *KVRepository) UpsertWeeklyTicket(ctx context.Context, key domain.TicketKey, build func(existing *domain.WeeklyTicket) domain.WeeklyTicket) (*domain.WeeklyTicket, error) {
	var saved domain.WeeklyTicket
	err := updateList(ctx, r.store, KeyWeeklyTickets, func(tickets []domain.WeeklyTicket) ([]domain.WeeklyTicket, error) {
		for i := range tickets {
			if tickets[i].Key() == key {
				existing := tickets[i]
				saved = build(&existing)
				tickets[i] = saved
				return tickets, nil
			}
		}
		saved = build(nil)
		return append(tickets, saved), nil
	})
	if err != nil {
		return nil, err
	}
	r.logger.Debug().Str("ticket_id", saved.ID).Str("week_id", key.WeekID).Msg("ticket stored")
	return &saved, nil
}

// SetWeeklyTicketStatus overwrites the status of the ticket with id.
func (r *KVRepository) SetWeeklyTicketStatus(ctx context.Context, id string, status domain.TicketStatus, updatedAt time.Time) error {
	return updateList(ctx, r.store, KeyWeeklyTickets, func(tickets []domain.WeeklyTicket) ([]domain.WeeklyTicket, error) {
		for i := range tickets {
			if tickets[i].ID == id {
				tickets[i].Status = status
				tickets[i].UpdatedAt = updatedAt
				return tickets, nil
			}
		}
		return nil, fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	})
}
