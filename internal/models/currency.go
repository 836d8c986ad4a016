package models

// Currency mirrors one row of the currencies table.
type Currency struct {
	CurrencyID  string `json:"currencyID"` // Primary Key (UUID)
	Code        string `json:"code"`       // e.g., "MAD"
	Symbol      string `json:"symbol"`     // e.g., "DH"
	Name        string `json:"name"`       // e.g., "Moroccan Dirham"
	IsReference bool   `json:"isReference"`
	AuditFields
}
