package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the approval state of a collection.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// PaymentMethod is how the vendor remitted the money.
type PaymentMethod string

const (
	MethodTransfer PaymentMethod = "Transferencia"
	MethodZelle    PaymentMethod = "Zelle"
	MethodMobile   PaymentMethod = "Pago Móvil"
	MethodCash     PaymentMethod = "Efectivo"
	MethodOther    PaymentMethod = "Otro"
)

// Valid reports whether m is one of the accepted methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodTransfer, MethodZelle, MethodMobile, MethodCash, MethodOther:
		return true
	}
	return false
}

// Payment is money remitted by a vendor toward the bank's share, pending admin approval.
// Only approved payments count toward settlement.
type Payment struct {
	ID               string          `json:"id"`
	VendorID         string          `json:"vendorId"`
	VendorName       string          `json:"vendorName"`
	AgencyName       string          `json:"agencyName,omitempty"`
	SellerID         string          `json:"sellerId"`
	Week             string          `json:"week"`
	WeekID           string          `json:"weekId"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Bank             string          `json:"bank"`
	Method           PaymentMethod   `json:"method"`
	Reference        string          `json:"reference"`
	Date             string          `json:"date"`
	Status           PaymentStatus   `json:"status"`
	ProofImageBase64 string          `json:"proofImageBase64,omitempty"`
	ProofMimeType    string          `json:"proofMimeType,omitempty"`
	AdminNote        string          `json:"adminNote,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// PaymentInput is the vendor's payment report form.
type PaymentInput struct {
	VendorID         string          `json:"vendorId"`
	VendorName       string          `json:"vendorName"`
	AgencyName       string          `json:"agencyName,omitempty"`
	SellerID         string          `json:"sellerId"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Bank             string          `json:"bank"`
	Method           PaymentMethod   `json:"method"`
	Reference        string          `json:"reference"`
	Date             string          `json:"date,omitempty"`
	ProofImageBase64 string          `json:"proofImageBase64,omitempty"`
	ProofMimeType    string          `json:"proofMimeType,omitempty"`
}
