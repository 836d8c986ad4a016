package repositories

import (
	"context"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// FindCurrencyByID retrieves a specific currency by its internal ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindReferenceCurrency retrieves the currency designated as the canonical
	// reference. Returns apperrors.ErrNotFound when no currency carries the
	// designation.
	FindReferenceCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
// The search core only reads currency data; write paths live outside this service.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
