package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DirectionResolver determines which side of a two-way rate (buy vs. sell)
// applies to a requested currency pair. The rate table only stores rates
// oriented as (reference currency -> foreign currency), so a pair whose
// target is the reference currency must be swapped before rate lookup.
type DirectionResolver struct {
	currencySvc portssvc.CurrencyReaderSvc
}

// NewDirectionResolver creates a new DirectionResolver.
func NewDirectionResolver(currencySvc portssvc.CurrencyReaderSvc) *DirectionResolver {
	return &DirectionResolver{currencySvc: currencySvc}
}

// Resolve maps a (base, target) currency pair onto concrete currency IDs and
// an exchange direction. References may be 3-letter codes or internal IDs; a
// missing side defaults to the reference currency. The resolution is
// deterministic: identical inputs always produce identical output.
//
//   - both sides absent (or both the reference): unconstrained query, base is
//     the reference currency and no direction is set;
//   - base is the reference: the office sells the foreign currency, SELL;
//   - target is the reference: the pair is swapped so the stored orientation
//     matches, and the office buys the foreign currency, BUY;
//   - neither side is the reference: the pair is unsupported.
func (r *DirectionResolver) Resolve(ctx context.Context, baseRef, targetRef string, amount decimal.Decimal) (*domain.ResolvedPair, error) {
	reference, err := r.currencySvc.GetReferenceCurrency(ctx)
	if err != nil {
		return nil, err
	}

	base, err := r.resolveRef(ctx, baseRef, reference)
	if err != nil {
		return nil, err
	}
	target, err := r.resolveRef(ctx, targetRef, reference)
	if err != nil {
		return nil, err
	}

	if base.CurrencyID == reference.CurrencyID && target.CurrencyID == reference.CurrencyID {
		// Unconstrained query: no pair requested, or a degenerate
		// reference-to-reference pair.
		return &domain.ResolvedPair{
			BaseCurrencyID: reference.CurrencyID,
			Amount:         amount,
		}, nil
	}

	if base.CurrencyID == reference.CurrencyID {
		return &domain.ResolvedPair{
			BaseCurrencyID:   base.CurrencyID,
			TargetCurrencyID: target.CurrencyID,
			Direction:        domain.DirectionSell,
			Amount:           amount,
		}, nil
	}

	if target.CurrencyID == reference.CurrencyID {
		// Swap so the pair matches the stored (reference -> foreign) orientation.
		return &domain.ResolvedPair{
			BaseCurrencyID:   target.CurrencyID,
			TargetCurrencyID: base.CurrencyID,
			Direction:        domain.DirectionBuy,
			Amount:           amount,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s/%s", apperrors.ErrUnsupportedCurrencyPair, baseRef, targetRef)
}

// resolveRef turns a currency reference (code or internal ID) into a currency,
// defaulting to the reference currency when the ref is empty.
func (r *DirectionResolver) resolveRef(ctx context.Context, ref string, reference *domain.Currency) (*domain.Currency, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return reference, nil
	}

	if looksLikeCurrencyCode(ref) {
		currency, err := r.currencySvc.GetCurrencyByCode(ctx, ref)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency code %q", apperrors.ErrNotFound, strings.ToUpper(ref))
			}
			return nil, err
		}
		return currency, nil
	}

	currency, err := r.currencySvc.GetCurrencyByID(ctx, ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency ID %q", apperrors.ErrNotFound, ref)
		}
		return nil, err
	}
	return currency, nil
}

// looksLikeCurrencyCode reports whether ref has the shape of an ISO-like
// 3-letter code rather than an internal ID.
func looksLikeCurrencyCode(ref string) bool {
	if len(ref) != 3 {
		return false
	}
	for _, r := range ref {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
