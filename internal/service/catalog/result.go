package catalog

import "github.com/heartmarshall/pricewatch-bot/internal/domain"

// Outcome classifies the result of a lookup.
type Outcome int

const (
	// OutcomeFound means the product exists and Product is populated.
	OutcomeFound Outcome = iota + 1
	// OutcomeNotFound means the card API knows no product with this code.
	OutcomeNotFound
	// OutcomeInvalidCode means the code was rejected before any network call.
	OutcomeInvalidCode
	// OutcomeUnavailable means the card API could not be reached or answered garbage.
	OutcomeUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeInvalidCode:
		return "invalid_code"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// LookupResult holds the outcome of an interactive lookup.
type LookupResult struct {
	Outcome Outcome
	Code    string
	Product domain.Product
}
