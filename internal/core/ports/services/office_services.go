package services

import (
	"context"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// NearbySearchSvc defines the nearby-office search operation: spatial query,
// currency-direction resolution, rate evaluation, ranking and pagination in a
// single request/response cycle.
type NearbySearchSvc interface {
	// SearchNearby runs one search. It fails with a typed error on invalid
	// parameters or unresolvable currencies; no partial results are returned
	// on failure.
	SearchNearby(ctx context.Context, filter domain.SearchFilter) (*domain.NearbySearchResult, error)
}

// NearbySearchSvcFacade combines all search-related service interfaces.
type NearbySearchSvcFacade interface {
	NearbySearchSvc
}
