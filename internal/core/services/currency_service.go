package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	portsrepo "github.com/SarrafLink/exchange_locator_app/internal/core/ports/repositories"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
)

// CurrencyService provides read access to currency data. The search core
// consumes currencies; it never creates or mutates them.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyReader
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// GetCurrencyByCode retrieves a currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code %s: %w", code, err)
	}
	return currency, nil
}

// GetCurrencyByID retrieves a currency by its internal ID.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	if currencyID == "" {
		return nil, fmt.Errorf("%w: currency ID must not be empty", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by ID %s: %w", currencyID, err)
	}
	return currency, nil
}

// GetReferenceCurrency retrieves the canonical reference currency. A missing
// designation is surfaced as ErrReferenceCurrencyUnconfigured so callers can
// distinguish it from an unknown user-supplied code.
func (s *CurrencyService) GetReferenceCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindReferenceCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrReferenceCurrencyUnconfigured
		}
		return nil, fmt.Errorf("failed to get reference currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
