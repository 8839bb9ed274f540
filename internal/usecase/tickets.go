package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"lyberate-settlement/internal/domain"
)

// TicketInput carries the freshly aggregated values of a ticket. An empty Status is
// resolved with domain.DefaultStatus.
type TicketInput struct {
	Week   domain.WeekPeriod
	Row    domain.SettlementRow
	Status domain.TicketStatus
}

// TicketManager keeps one weekly ticket per seller, week and currency.
type TicketManager struct {
	tickets TicketRepository
	closing *ClosingUseCase
	now     Clock
	newID   IDGenerator
	logger  zerolog.Logger
}

// NewTicketManager creates a new instance of the manager.
func NewTicketManager(tickets TicketRepository, closing *ClosingUseCase, now Clock, newID IDGenerator, logger zerolog.Logger) *TicketManager {
	return &TicketManager{
		tickets: tickets,
		closing: closing,
		now:     now,
		newID:   newID,
		logger:  logger.With().Str("component", "tickets").Logger(),
	}
}

// UpsertTicket creates the ticket for the row's key or fully overwrites the existing one,
// keeping its id and creation time.
func (m *TicketManager) UpsertTicket(ctx context.Context, in TicketInput) (*domain.WeeklyTicket, error) {
	status := in.Status
	if status == "" {
		status = domain.DefaultStatus(in.Row.Balance)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: ticket status %q", domain.ErrInvalidInput, status)
	}

	key := domain.TicketKey{SellerID: in.Row.SellerID, WeekID: in.Week.ID, Currency: in.Row.Currency}
	now := m.now()
	created := false

	ticket, err := m.tickets.UpsertWeeklyTicket(ctx, key, func(existing *domain.WeeklyTicket) domain.WeeklyTicket {
		t := ticketFromRow(in.Week, in.Row, status)
		t.UpdatedAt = now
		created = existing == nil
		if created {
			t.ID = m.newID()
			t.CreatedAt = now
			return t
		}
		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt
		if now.Before(existing.UpdatedAt) {
			t.UpdatedAt = existing.UpdatedAt
		}
		return t
	})
	if err != nil {
		return nil, fmt.Errorf("could not upsert weekly ticket: %w", err)
	}

	m.logger.Info().
		Str("ticket_id", ticket.ID).
		Str("seller_id", key.SellerID).
		Str("week_id", key.WeekID).
		Str("currency", key.Currency).
		Str("status", string(ticket.Status)).
		Bool("created", created).
		Msg("weekly ticket saved")
	return ticket, nil
}

// GenerateTicket aggregates the week and upserts the ticket of one seller and currency.
func (m *TicketManager) GenerateTicket(ctx context.Context, weekID, sellerID, currency string) (*domain.WeeklyTicket, error) {
	week, rows, err := m.closing.Aggregate(ctx, weekID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.SellerID == sellerID && row.Currency == currency {
			return m.UpsertTicket(ctx, TicketInput{Week: week, Row: row})
		}
	}
	return nil, fmt.Errorf("no sales for seller %s in %s during %s: %w", sellerID, currency, weekID, domain.ErrNotFound)
}

// GenerateWeekTickets upserts a ticket for every row of the week.
func (m *TicketManager) GenerateWeekTickets(ctx context.Context, weekID string) ([]domain.WeeklyTicket, error) {
	week, rows, err := m.closing.Aggregate(ctx, weekID)
	if err != nil {
		return nil, err
	}
	tickets := make([]domain.WeeklyTicket, 0, len(rows))
	for _, row := range rows {
		t, err := m.UpsertTicket(ctx, TicketInput{Week: week, Row: row})
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, nil
}

// SetStatus overwrites a ticket's status regardless of its balance. Unknown ids are ignored.
func (m *TicketManager) SetStatus(ctx context.Context, ticketID string, status domain.TicketStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: ticket status %q", domain.ErrInvalidInput, status)
	}
	err := m.tickets.SetWeeklyTicketStatus(ctx, ticketID, status, m.now())
	if errors.Is(err, domain.ErrNotFound) {
		m.logger.Warn().Str("ticket_id", ticketID).Msg("status change for unknown ticket ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not set ticket status: %w", err)
	}
	m.logger.Info().Str("ticket_id", ticketID).Str("status", string(status)).Msg("ticket status changed")
	return nil
}

// Liquidate marks a ticket settled.
func (m *TicketManager) Liquidate(ctx context.Context, ticketID string) error {
	return m.SetStatus(ctx, ticketID, domain.TicketSettled)
}

// TicketsByWeek lists the tickets generated for a week.
func (m *TicketManager) TicketsByWeek(ctx context.Context, weekID string) ([]domain.WeeklyTicket, error) {
	return m.filter(ctx, func(t domain.WeeklyTicket) bool { return t.WeekID == weekID })
}

// TicketsBySeller lists a seller's tickets, most recent week first.
func (m *TicketManager) TicketsBySeller(ctx context.Context, sellerID string) ([]domain.WeeklyTicket, error) {
	tickets, err := m.filter(ctx, func(t domain.WeeklyTicket) bool { return t.SellerID == sellerID })
	if err != nil {
		return nil, err
	}
	sortTicketsByWeek(tickets)
	return tickets, nil
}

func (m *TicketManager) filter(ctx context.Context, keep func(domain.WeeklyTicket) bool) ([]domain.WeeklyTicket, error) {
	all, err := m.tickets.ListWeeklyTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get weekly tickets: %w", err)
	}
	filtered := make([]domain.WeeklyTicket, 0)
	for _, t := range all {
		if keep(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func ticketFromRow(week domain.WeekPeriod, row domain.SettlementRow, status domain.TicketStatus) domain.WeeklyTicket {
	return domain.WeeklyTicket{
		SellerID:           row.SellerID,
		SellerName:         row.SellerName,
		WeekID:             week.ID,
		WeekLabel:          week.Label(),
		TotalSales:         row.TotalSales,
		TotalPrize:         row.TotalPrize,
		TotalCommission:    row.TotalCommission,
		TotalNet:           row.TotalNet,
		TotalParticipation: row.TotalParticipation,
		TotalVendor:        row.TotalVendor,
		TotalBank:          row.TotalBank,
		TotalPaid:          row.TotalPaid,
		Balance:            row.Balance,
		Currency:           row.Currency,
		Status:             status,
	}
}

// sortTicketsByWeek orders by week index, week-0 first. Malformed ids sort last.
func sortTicketsByWeek(tickets []domain.WeeklyTicket) {
	index := func(id string) int {
		n, err := domain.ParseWeekIndex(id)
		if err != nil {
			return math.MaxInt
		}
		return n
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		return index(tickets[i].WeekID) < index(tickets[j].WeekID)
	})
}
