package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"lyberate-settlement/internal/domain"
)

// CatalogUseCase manages sellers, their agencies and their commission terms.
// Sellers are never deleted.
type CatalogUseCase struct {
	sellers SellerRepository
	now     Clock
	newID   IDGenerator
	logger  zerolog.Logger
}

// NewCatalogUseCase creates a new instance of the usecase.
func NewCatalogUseCase(sellers SellerRepository, now Clock, newID IDGenerator, logger zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		sellers: sellers,
		now:     now,
		newID:   newID,
		logger:  logger.With().Str("component", "catalog").Logger(),
	}
}

// RegisterSeller creates a seller with its agencies, products and currency terms.
func (uc *CatalogUseCase) RegisterSeller(ctx context.Context, in domain.SellerInput) (*domain.Seller, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: seller name is required", domain.ErrInvalidInput)
	}

	seller := domain.Seller{
		ID:        uc.newID(),
		Name:      name,
		IDNumber:  in.IDNumber,
		Phone:     in.Phone,
		Agencies:  make([]domain.Agency, 0, len(in.Agencies)),
		Products:  make([]domain.Product, 0, len(in.Products)),
		CreatedAt: uc.now(),
	}
	for _, a := range in.Agencies {
		if a = strings.TrimSpace(a); a != "" {
			seller.Agencies = append(seller.Agencies, domain.Agency{ID: uc.newID(), Name: a})
		}
	}
	for _, p := range in.Products {
		product, err := uc.newProduct(p)
		if err != nil {
			return nil, err
		}
		seller.Products = append(seller.Products, product)
	}

	if err := uc.sellers.AddSeller(ctx, seller); err != nil {
		return nil, fmt.Errorf("could not save seller: %w", err)
	}
	uc.logger.Info().Str("seller_id", seller.ID).Str("name", seller.Name).Msg("seller registered")
	return &seller, nil
}

// ListSellers returns every seller.
func (uc *CatalogUseCase) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	sellers, err := uc.sellers.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get sellers: %w", err)
	}
	return sellers, nil
}

// GetSeller returns one seller.
func (uc *CatalogUseCase) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	seller, err := uc.sellers.GetSeller(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get seller %s: %w", id, err)
	}
	return seller, nil
}

// AddAgency attaches a new agency to a seller.
func (uc *CatalogUseCase) AddAgency(ctx context.Context, sellerID, name string) (*domain.Seller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: agency name is required", domain.ErrInvalidInput)
	}
	return uc.update(ctx, sellerID, func(s *domain.Seller) error {
		s.Agencies = append(s.Agencies, domain.Agency{ID: uc.newID(), Name: name})
		return nil
	})
}

// AddProduct adds a product, optionally with currency terms, to a seller.
func (uc *CatalogUseCase) AddProduct(ctx context.Context, sellerID string, in domain.ProductInput) (*domain.Seller, error) {
	product, err := uc.newProduct(in)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, sellerID, func(s *domain.Seller) error {
		s.Products = append(s.Products, product)
		return nil
	})
}

// RemoveProduct drops a product from a seller's catalog. Recorded sales are unaffected.
func (uc *CatalogUseCase) RemoveProduct(ctx context.Context, sellerID, productID string) (*domain.Seller, error) {
	return uc.update(ctx, sellerID, func(s *domain.Seller) error {
		return s.RemoveProduct(productID)
	})
}

// AddCurrency adds commission terms for a currency not yet configured on the product.
func (uc *CatalogUseCase) AddCurrency(ctx context.Context, sellerID, productID string, in domain.CurrencyInput) (*domain.Seller, error) {
	cfg, err := uc.newCurrency(in)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, sellerID, func(s *domain.Seller) error {
		product, err := s.Product(productID)
		if err != nil {
			return err
		}
		return product.AddCurrency(cfg)
	})
}

// RemoveCurrency drops a currency configuration from a product.
func (uc *CatalogUseCase) RemoveCurrency(ctx context.Context, sellerID, productID, currencyID string) (*domain.Seller, error) {
	return uc.update(ctx, sellerID, func(s *domain.Seller) error {
		product, err := s.Product(productID)
		if err != nil {
			return err
		}
		return product.RemoveCurrency(currencyID)
	})
}

func (uc *CatalogUseCase) update(ctx context.Context, sellerID string, mutate func(*domain.Seller) error) (*domain.Seller, error) {
	seller, err := uc.sellers.UpdateSeller(ctx, sellerID, mutate)
	if err != nil {
		return nil, fmt.Errorf("could not update seller %s: %w", sellerID, err)
	}
	uc.logger.Info().Str("seller_id", sellerID).Msg("seller catalog updated")
	return seller, nil
}

func (uc *CatalogUseCase) newProduct(in domain.ProductInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	product := domain.Product{ID: uc.newID(), Name: name, Currencies: make([]domain.CurrencyConfig, 0, len(in.Currencies))}
	for _, c := range in.Currencies {
		cfg, err := uc.newCurrency(c)
		if err != nil {
			return domain.Product{}, err
		}
		if err := product.AddCurrency(cfg); err != nil {
			return domain.Product{}, err
		}
	}
	return product, nil
}

func (uc *CatalogUseCase) newCurrency(in domain.CurrencyInput) (domain.CurrencyConfig, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.CurrencyConfig{}, fmt.Errorf("%w: currency name is required", domain.ErrInvalidInput)
	}
	return domain.CurrencyConfig{
		ID:            uc.newID(),
		Name:          name,
		CommissionPct: in.CommissionPct,
		PartPct:       in.PartPct,
	}, nil
}
