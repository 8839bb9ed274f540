// Package app wires the use cases over a repository.
package app

import (
	"github.com/rs/zerolog"

	"lyberate-settlement/internal/usecase"
)

// App holds every use case of a settlement deployment.
type App struct {
	Closing   *usecase.ClosingUseCase
	Tickets   *usecase.TicketManager
	Sales     *usecase.SalesUseCase
	Payments  *usecase.PaymentsUseCase
	Catalog   *usecase.CatalogUseCase
	Statement *usecase.StatementUseCase
	WeekCount int
}

// New builds the use cases sharing store, clock and id generator.
func New(store usecase.Store, now usecase.Clock, newID usecase.IDGenerator, weekCount int, logger zerolog.Logger) *App {
	closing := usecase.NewClosingUseCase(store, store, store, now, logger)
	tickets := usecase.NewTicketManager(store, closing, now, newID, logger)
	return &App{
		Closing:   closing,
		Tickets:   tickets,
		Sales:     usecase.NewSalesUseCase(store, store, now, newID, logger),
		Payments:  usecase.NewPaymentsUseCase(store, now, newID, logger),
		Catalog:   usecase.NewCatalogUseCase(store, now, newID, logger),
		Statement: usecase.NewStatementUseCase(store, store, tickets),
		WeekCount: weekCount,
	}
}
