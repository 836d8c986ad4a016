package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID  string `json:"currencyID"`  // Primary Key (UUID)
	Code        string `json:"code"`        // ISO-like code (e.g., "MAD", "USD")
	Symbol      string `json:"symbol"`      // e.g., "DH", "$"
	Name        string `json:"name"`        // e.g., "Moroccan Dirham"
	IsReference bool   `json:"isReference"` // Exactly one currency carries this flag
	AuditFields
}
