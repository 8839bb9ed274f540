package usecase

import (
	"time"

	"github.com/google/uuid"
)

// Store bundles every repository a settlement deployment needs.
type Store interface {
	SaleRepository
	PaymentRepository
	SellerRepository
	TicketRepository
}

// Clock returns the current time in the business time zone.
type Clock func() time.Time

// IDGenerator returns a fresh record id.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}
