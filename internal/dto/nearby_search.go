package dto

import (
	"strings"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NearbySearchRequest defines the query parameters of the nearby-office
// search. Pointer fields distinguish "not supplied" from a zero value, which
// matters both for required coordinates (0 is a valid latitude) and for the
// tri-state status filters.
type NearbySearchRequest struct {
	Latitude            *float64 `form:"latitude" binding:"required"`
	Longitude           *float64 `form:"longitude" binding:"required"`
	RadiusInKm          *float64 `form:"radiusInKm" binding:"required"`
	BaseCurrency        string   `form:"baseCurrency" binding:"omitempty,currencyref"`
	TargetCurrency      string   `form:"targetCurrency" binding:"omitempty,currencyref"`
	TargetCurrencyRate  *float64 `form:"targetCurrencyRate" binding:"omitempty,gt=0"`
	AvailableCurrencies string   `form:"availableCurrencies"` // comma-separated codes
	IsActive            *bool    `form:"isActive"`
	IsVerified          *bool    `form:"isVerified"`
	IsFeatured          *bool    `form:"isFeatured"`
	IsOpen              *bool    `form:"isOpen"`
	ShowOnlyOpenNow     *bool    `form:"showOnlyOpenNow"`
	Nearest             bool     `form:"nearest"`
	IsPopular           bool     `form:"isPopular"`
	MostSearched        bool     `form:"mostSearched"`
	Page                int      `form:"page,default=1"`
	Limit               int      `form:"limit,default=9"`
}

// ToSearchFilter builds the immutable domain filter from the bound request.
// targetCurrencyRate is purely the amount being converted; when absent it
// defaults to 1 so the equivalent value equals the effective rate.
func (r *NearbySearchRequest) ToSearchFilter() domain.SearchFilter {
	filter := domain.SearchFilter{
		Latitude:       *r.Latitude,
		Longitude:      *r.Longitude,
		RadiusInKm:     *r.RadiusInKm,
		BaseCurrency:   strings.TrimSpace(r.BaseCurrency),
		TargetCurrency: strings.TrimSpace(r.TargetCurrency),
		TargetAmount:   decimal.NewFromInt(1),
		IsActive:       r.IsActive,
		IsVerified:     r.IsVerified,
		IsFeatured:     r.IsFeatured,
		Nearest:        r.Nearest,
		Popular:        r.IsPopular,
		MostSearched:   r.MostSearched,
		Page:           r.Page,
		Limit:          r.Limit,
	}

	if r.TargetCurrencyRate != nil {
		filter.TargetAmount = decimal.NewFromFloat(*r.TargetCurrencyRate)
	}

	// isOpen is the legacy alias of showOnlyOpenNow; either switches the
	// open-now filter on.
	filter.ShowOnlyOpenNow = (r.ShowOnlyOpenNow != nil && *r.ShowOnlyOpenNow) ||
		(r.IsOpen != nil && *r.IsOpen)

	for _, code := range strings.Split(r.AvailableCurrencies, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			filter.AvailableCurrencies = append(filter.AvailableCurrencies, code)
		}
	}

	return filter
}
