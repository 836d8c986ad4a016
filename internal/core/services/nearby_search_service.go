package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	portsrepo "github.com/SarrafLink/exchange_locator_app/internal/core/ports/repositories"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
	"github.com/SarrafLink/exchange_locator_app/internal/utils/pagination"
)

const (
	maxRadiusInKm = 1000.0
	maxPageLimit  = 100
)

// nearbySearchService orchestrates one search request: validation, currency
// resolution, spatial query, hours evaluation, rate evaluation, ranking and
// pagination. It holds no per-request state; concurrent requests are safe
// because the pipeline only reads.
type nearbySearchService struct {
	officeRepo    portsrepo.OfficeReader
	resolver      *DirectionResolver
	rateEvaluator *RateEvaluator
	hoursEval     *WorkingHoursEvaluator
	ranking       *RankingEngine
	searchTimeout time.Duration
	now           func() time.Time
}

// NearbySearchOption customizes a nearby-search service.
type NearbySearchOption func(*nearbySearchService)

// WithSearchTimeout bounds the spatial query with a deadline. Zero disables
// the internal deadline and leaves cancellation to the caller's context.
func WithSearchTimeout(timeout time.Duration) NearbySearchOption {
	return func(s *nearbySearchService) {
		s.searchTimeout = timeout
	}
}

// WithClock overrides the wall clock used for open/closed evaluation.
func WithClock(now func() time.Time) NearbySearchOption {
	return func(s *nearbySearchService) {
		s.now = now
	}
}

// NewNearbySearchService creates the search orchestrator.
func NewNearbySearchService(officeRepo portsrepo.OfficeReader, currencySvc portssvc.CurrencyReaderSvc, opts ...NearbySearchOption) portssvc.NearbySearchSvcFacade {
	s := &nearbySearchService{
		officeRepo:    officeRepo,
		resolver:      NewDirectionResolver(currencySvc),
		rateEvaluator: NewRateEvaluator(),
		hoursEval:     NewWorkingHoursEvaluator(),
		ranking:       NewRankingEngine(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.NearbySearchSvcFacade = (*nearbySearchService)(nil)

// SearchNearby runs the full search pipeline. Any validation or resolution
// failure short-circuits with a typed error; no partial results are returned.
func (s *nearbySearchService) SearchNearby(ctx context.Context, filter domain.SearchFilter) (*domain.NearbySearchResult, error) {
	if err := validateSearchFilter(filter); err != nil {
		return nil, err
	}

	pair, err := s.resolver.Resolve(ctx, filter.BaseCurrency, filter.TargetCurrency, filter.TargetAmount)
	if err != nil {
		return nil, err
	}

	candidates, totalCount, err := s.queryCandidates(ctx, filter, pair)
	if err != nil {
		return nil, err
	}

	at := s.now()
	ranked := make([]domain.RankedOffice, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, domain.RankedOffice{
			Office:            candidate.Office,
			DistanceInKm:      candidate.DistanceInKm,
			IsCurrentlyOpen:   s.hoursEval.IsOpenAt(candidate.WorkingHours, at),
			TodayWorkingHours: s.hoursEval.TodayHours(candidate.WorkingHours, at),
		})
	}

	// Open-now filtering happens here rather than in the store because it
	// depends on wall-clock evaluation, not stored columns.
	if filter.ShowOnlyOpenNow {
		open := ranked[:0]
		for _, r := range ranked {
			if r.IsCurrentlyOpen {
				open = append(open, r)
			}
		}
		ranked = open
		totalCount = len(ranked)
	}

	for i := range ranked {
		ranked[i].EquivalentValue = s.rateEvaluator.EquivalentValue(ranked[i].Office, *pair)
	}

	s.ranking.Rank(ranked, filter)
	s.ranking.SelectBest(ranked, pair.Direction)

	items, meta := pagination.Paginate(ranked, filter.Page, filter.Limit, totalCount)

	return &domain.NearbySearchResult{
		Offices:    items,
		TotalCount: meta.TotalCount,
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
		HasMore:    meta.HasMore,
	}, nil
}

// queryCandidates issues the radius search, bounded by the configured timeout,
// and maps infrastructure failures onto the typed error kinds.
func (s *nearbySearchService) queryCandidates(ctx context.Context, filter domain.SearchFilter, pair *domain.ResolvedPair) ([]domain.OfficeWithDistance, int, error) {
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}

	query := domain.NearbyQuery{
		Center:              domain.GeoPoint{Longitude: filter.Longitude, Latitude: filter.Latitude},
		RadiusInKm:          filter.RadiusInKm,
		IsActive:            filter.IsActive,
		IsVerified:          filter.IsVerified,
		IsFeatured:          filter.IsFeatured,
		AvailableCurrencies: filter.AvailableCurrencies,
	}
	if pair.Direction != "" {
		query.BaseCurrencyID = pair.BaseCurrencyID
		query.TargetCurrencyID = pair.TargetCurrencyID
	}

	candidates, totalCount, err := s.officeRepo.FindNearby(ctx, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, fmt.Errorf("%w: nearby office query", apperrors.ErrTimeout)
		}
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, context.Canceled) {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("%w: nearby office query: %v", apperrors.ErrStoreUnavailable, err)
	}
	return candidates, totalCount, nil
}

// validateSearchFilter checks the spatial and pagination bounds, naming the
// offending field. User-input violations are reported immediately and never
// retried.
func validateSearchFilter(filter domain.SearchFilter) error {
	if filter.Latitude < -90 || filter.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", apperrors.ErrValidation)
	}
	if filter.Longitude < -180 || filter.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", apperrors.ErrValidation)
	}
	if filter.RadiusInKm <= 0 || filter.RadiusInKm > maxRadiusInKm {
		return fmt.Errorf("%w: radiusInKm must be greater than 0 and at most %v", apperrors.ErrValidation, maxRadiusInKm)
	}
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", apperrors.ErrValidation, maxPageLimit)
	}
	if filter.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1", apperrors.ErrValidation)
	}
	if !filter.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: targetCurrencyRate must be positive", apperrors.ErrValidation)
	}
	return nil
}
