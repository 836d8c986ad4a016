package services

import (
	"context"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// GetCurrencyByID retrieves a specific currency by its internal ID.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// GetReferenceCurrency retrieves the canonical reference currency.
	// Every directional computation anchors on it; failure here is a system
	// misconfiguration, not user error.
	GetReferenceCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
