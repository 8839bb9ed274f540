package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyConfig holds the commission terms of a product in one currency.
type CurrencyConfig struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CommissionPct decimal.Decimal `json:"commissionPct"`
	PartPct       decimal.Decimal `json:"partPct"`
}

// Product is a game type sold by a seller.
type Product struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Currencies []CurrencyConfig `json:"currencies"`
}

// AddCurrency appends a configuration unless the currency name is already present.
func (p *Product) AddCurrency(cfg CurrencyConfig) error {
	for _, c := range p.Currencies {
		if strings.EqualFold(c.Name, cfg.Name) {
			return fmt.Errorf("%w: %s on %s", ErrDuplicateCurrency, cfg.Name, p.Name)
		}
	}
	p.Currencies = append(p.Currencies, cfg)
	return nil
}

// RemoveCurrency drops a configuration by id.
func (p *Product) RemoveCurrency(currencyID string) error {
	for i, c := range p.Currencies {
		if c.ID == currencyID {
			p.Currencies = append(p.Currencies[:i], p.Currencies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("currency %s: %w", currencyID, ErrNotFound)
}

// Agency is an optional branch of a seller. It is only used for drill-down.
type Agency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Seller is the commercial agent operating under the house.
type Seller struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IDNumber  string    `json:"idNumber,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Agencies  []Agency  `json:"agencies"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product returns a pointer into the seller's catalog.
func (s *Seller) Product(productID string) (*Product, error) {
	for i := range s.Products {
		if s.Products[i].ID == productID {
			return &s.Products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s of seller %s: %w", productID, s.ID, ErrNotFound)
}

// FindCurrency resolves the commission terms for a product and currency.
func (s *Seller) FindCurrency(productID, currencyID string) (Product, CurrencyConfig, error) {
	product, err := s.Product(productID)
	if err != nil {
		return Product{}, CurrencyConfig{}, err
	}
	for _, c := range product.Currencies {
		if c.ID == currencyID {
			return *product, c, nil
		}
	}
	return Product{}, CurrencyConfig{}, fmt.Errorf("currency %s of product %s: %w", currencyID, productID, ErrNotFound)
}

// Agency looks up an agency by id.
func (s *Seller) Agency(agencyID string) (Agency, error) {
	for _, a := range s.Agencies {
		if a.ID == agencyID {
			return a, nil
		}
	}
	return Agency{}, fmt.Errorf("agency %s of seller %s: %w", agencyID, s.ID, ErrNotFound)
}

// RemoveProduct drops a product by id.
func (s *Seller) RemoveProduct(productID string) error {
	for i, p := range s.Products {
		if p.ID == productID {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s of seller %s: %w", productID, s.ID, ErrNotFound)
}

// CurrencyInput describes a currency configuration to be created.
type CurrencyInput struct {
	Name          string          `json:"name"`
	CommissionPct decimal.Decimal `json:"commissionPct"`
	PartPct       decimal.Decimal `json:"partPct"`
}

// ProductInput describes a product to be created.
type ProductInput struct {
	Name       string          `json:"name"`
	Currencies []CurrencyInput `json:"currencies"`
}

// SellerInput is the registration form of a seller.
type SellerInput struct {
	Name     string         `json:"name"`
	IDNumber string         `json:"idNumber"`
	Phone    string         `json:"phone"`
	Agencies []string       `json:"agencies"`
	Products []ProductInput `json:"products"`
}
