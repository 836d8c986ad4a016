package dto

import (
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID  string `json:"currencyID"`
	Code        string `json:"code"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	IsReference bool   `json:"isReference"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:  curr.CurrencyID,
		Code:        curr.Code,
		Symbol:      curr.Symbol,
		Name:        curr.Name,
		IsReference: curr.IsReference,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
