package services

import (
	"sort"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
)

// RankingEngine orders search candidates and selects the single office most
// favorable to the client.
type RankingEngine struct{}

// NewRankingEngine creates a new RankingEngine.
func NewRankingEngine() *RankingEngine {
	return &RankingEngine{}
}

// Rank sorts candidates in place according to the requested preference.
// Priority when several preferences are set: nearest wins over popular wins
// over mostSearched; with none set, candidates stay ordered by ascending
// distance. "Popular" ranks featured then verified offices first and treats
// older offices as more established; "most searched" keeps the same flag
// ordering but treats newer offices as trending. No click-analytics signal is
// wired into this path, so the flags and creation time act as proxies.
func (e *RankingEngine) Rank(candidates []domain.RankedOffice, filter domain.SearchFilter) {
	switch {
	case filter.Nearest:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].DistanceInKm < candidates[j].DistanceInKm
		})
	case filter.Popular:
		sort.SliceStable(candidates, func(i, j int) bool {
			return lessByFlags(&candidates[i], &candidates[j], true)
		})
	case filter.MostSearched:
		sort.SliceStable(candidates, func(i, j int) bool {
			return lessByFlags(&candidates[i], &candidates[j], false)
		})
	default:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].DistanceInKm < candidates[j].DistanceInKm
		})
	}
}

// lessByFlags orders featured desc, verified desc, then createdAt asc
// (oldestFirst) or desc.
func lessByFlags(a, b *domain.RankedOffice, oldestFirst bool) bool {
	if a.IsFeatured != b.IsFeatured {
		return a.IsFeatured
	}
	if a.IsVerified != b.IsVerified {
		return a.IsVerified
	}
	if oldestFirst {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// SelectBest flags the candidate with the most favorable equivalent value for
// the resolved direction: the maximum under BUY (the client receives the most
// reference-currency units) and the minimum under SELL (the client pays the
// fewest). Candidates without an equivalent value never qualify; ties keep the
// first candidate in the already-applied sort order. Returns false when no
// candidate qualifies.
func (e *RankingEngine) SelectBest(candidates []domain.RankedOffice, direction domain.ExchangeDirection) bool {
	if direction == "" {
		return false
	}

	best := -1
	for i := range candidates {
		v := candidates[i].EquivalentValue
		if v == nil {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		current := candidates[best].EquivalentValue
		switch direction {
		case domain.DirectionBuy:
			if v.GreaterThan(*current) {
				best = i
			}
		case domain.DirectionSell:
			if v.LessThan(*current) {
				best = i
			}
		}
	}

	if best == -1 {
		return false
	}
	candidates[best].BestOffice = true
	return true
}
