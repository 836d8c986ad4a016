package domain

import "github.com/shopspring/decimal"

// Office represents a currency-exchange office.
type Office struct {
	OfficeID     string        `json:"officeID"` // Primary Key (UUID)
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	City         string        `json:"city"`
	Country      string        `json:"country"`
	Location     GeoPoint      `json:"location"`
	IsActive     bool          `json:"isActive"`
	IsVerified   bool          `json:"isVerified"`
	IsFeatured   bool          `json:"isFeatured"`
	Rates        []OfficeRate  `json:"rates,omitempty"`
	WorkingHours []WorkingHour `json:"workingHours,omitempty"`
	AuditFields
}

// OfficeRate is a two-way exchange rate published by a single office.
// Rates are stored oriented as (reference currency -> foreign currency);
// BuyRate is what the office pays when buying the foreign currency from the
// client, SellRate what it charges when selling it.
type OfficeRate struct {
	RateID           string          `json:"rateID"` // Primary Key (UUID)
	OfficeID         string          `json:"officeID"`
	BaseCurrencyID   string          `json:"baseCurrencyID"`
	TargetCurrencyID string          `json:"targetCurrencyID"`
	BuyRate          decimal.Decimal `json:"buyRate"`
	SellRate         decimal.Decimal `json:"sellRate"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}
