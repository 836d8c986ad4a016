package services

import (
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// equivalentValuePlaces is the rounding precision for equivalent values.
const equivalentValuePlaces = 2

// RateEvaluator computes the currency-specific equivalent value of an office
// for a resolved pair and direction.
type RateEvaluator struct{}

// NewRateEvaluator creates a new RateEvaluator.
func NewRateEvaluator() *RateEvaluator {
	return &RateEvaluator{}
}

// EquivalentValue scans the office's rates for an active entry matching the
// resolved pair exactly and converts the requested amount:
//
//	BUY:  amount * buyRate  (client hands over foreign currency, receives reference units)
//	SELL: amount / sellRate (client pays reference units for the foreign amount)
//
// Results are rounded half-up to 2 decimal places. A missing rate is not an
// error: the office simply has no equivalent value and is excluded from
// best-office selection.
func (e *RateEvaluator) EquivalentValue(office domain.Office, pair domain.ResolvedPair) *decimal.Decimal {
	if pair.Direction == "" || pair.TargetCurrencyID == "" {
		return nil
	}

	rate := findActiveRate(office.Rates, pair.BaseCurrencyID, pair.TargetCurrencyID)
	if rate == nil {
		return nil
	}

	var value decimal.Decimal
	switch pair.Direction {
	case domain.DirectionBuy:
		value = pair.Amount.Mul(rate.BuyRate).Round(equivalentValuePlaces)
	case domain.DirectionSell:
		if rate.SellRate.IsZero() {
			return nil
		}
		value = pair.Amount.Div(rate.SellRate).Round(equivalentValuePlaces)
	default:
		return nil
	}

	return &value
}

// findActiveRate returns the first active rate matching the (base, target)
// pair exactly, or nil. A given tuple should resolve to at most one active
// rate; the first match wins if the data violates that.
func findActiveRate(rates []domain.OfficeRate, baseCurrencyID, targetCurrencyID string) *domain.OfficeRate {
	for i := range rates {
		r := &rates[i]
		if r.IsActive && r.BaseCurrencyID == baseCurrencyID && r.TargetCurrencyID == targetCurrencyID {
			return r
		}
	}
	return nil
}
