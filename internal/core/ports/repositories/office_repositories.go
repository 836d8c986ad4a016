package repositories

import (
	"context"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// OfficeReader defines read operations for exchange-office data.
type OfficeReader interface {
	// FindNearby executes the radius search: it returns every office whose
	// great-circle distance from the query center is within the radius and
	// that matches the non-spatial filters, ordered by ascending distance,
	// together with the total count of matching offices. Rates and working
	// hours of the returned offices are loaded.
	FindNearby(ctx context.Context, query domain.NearbyQuery) ([]domain.OfficeWithDistance, int, error)
}

// OfficeRepositoryFacade combines all office-related repository interfaces.
type OfficeRepositoryFacade interface {
	OfficeReader
}
