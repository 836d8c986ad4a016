package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrencyPair indicates that neither side of a requested
// currency pair is the reference currency. Only reference-anchored exchanges
// are supported.
var ErrUnsupportedCurrencyPair = errors.New("unsupported cross-currency pair")

// ErrReferenceCurrencyUnconfigured indicates that no currency in the system is
// designated as the reference currency. Operator must fix the data.
var ErrReferenceCurrencyUnconfigured = errors.New("reference currency not configured")

// ErrStoreUnavailable indicates a transient failure of the backing store.
// Safe for the caller to retry.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrTimeout indicates that an operation exceeded its deadline.
var ErrTimeout = errors.New("operation timed out")
