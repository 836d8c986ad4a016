package models

import "github.com/shopspring/decimal"

// Office mirrors one row of the offices table.
type Office struct {
	OfficeID   string  `json:"officeID"` // Primary Key (UUID)
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	IsActive   bool    `json:"isActive"`
	IsVerified bool    `json:"isVerified"`
	IsFeatured bool    `json:"isFeatured"`
	AuditFields
}

// OfficeRate mirrors one row of the office_rates table.
// Note: rates use a precise decimal type, never float64.
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
