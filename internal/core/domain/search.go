package domain

import "github.com/shopspring/decimal"

// ExchangeDirection states which side of a two-way rate applies to a
// conversion: the office buying the foreign currency from the client, or
// selling it to the client.
type ExchangeDirection string

const (
	DirectionBuy  ExchangeDirection = "BUY"
	DirectionSell ExchangeDirection = "SELL"
)

// SearchFilter carries the validated parameters of one nearby-office search.
// It is created once at the request boundary and passed immutably through the
// pipeline; nil pointer fields mean "filter not requested", which is distinct
// from "filter requires false".
type SearchFilter struct {
	Latitude            float64
	Longitude           float64
	RadiusInKm          float64
	BaseCurrency        string // code or currency ID, empty when not supplied
	TargetCurrency      string
	TargetAmount        decimal.Decimal // amount being converted
	AvailableCurrencies []string        // target currency codes the office must trade
	IsActive            *bool
	IsVerified          *bool
	IsFeatured          *bool
	ShowOnlyOpenNow     bool
	Nearest             bool
	Popular             bool
	MostSearched        bool
	Page                int
	Limit               int
}

// ResolvedPair is the outcome of currency-direction resolution: the concrete
// currency IDs to match rates against and the applicable direction. Direction
// is empty for an unconstrained query (no pair supplied).
type ResolvedPair struct {
	BaseCurrencyID   string
	TargetCurrencyID string
	Direction        ExchangeDirection
	Amount           decimal.Decimal
}

// NearbyQuery is the storage-level query derived from a SearchFilter after
// currency resolution.
type NearbyQuery struct {
	Center              GeoPoint
	RadiusInKm          float64
	IsActive            *bool
	IsVerified          *bool
	IsFeatured          *bool
	AvailableCurrencies []string
	BaseCurrencyID      string
	TargetCurrencyID    string
}

// OfficeWithDistance is a spatial-query candidate: an office plus its
// great-circle distance from the search center.
type OfficeWithDistance struct {
	Office
	DistanceInKm float64
}

// RankedOffice is an office enriched for one search response. It is assembled
// per request and never persisted.
type RankedOffice struct {
	Office
	DistanceInKm      float64          `json:"distanceInKm"`
	EquivalentValue   *decimal.Decimal `json:"equivalentValue,omitempty"`
	BestOffice        bool             `json:"bestOffice"`
	IsCurrentlyOpen   bool             `json:"isCurrentlyOpen"`
	TodayWorkingHours *WorkingHour     `json:"todayWorkingHours,omitempty"`
}

// NearbySearchResult is the full outcome of one search request.
type NearbySearchResult struct {
	Offices    []RankedOffice
	TotalCount int
	Page       int
	TotalPages int
	HasMore    bool
}
