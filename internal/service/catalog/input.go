package catalog

import (
	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

// LookupInput holds the parameters of an interactive product lookup.
// Code is user-typed text; a malformed code is an outcome, not an input error.
type LookupInput struct {
	RequesterID int64
	Code        string
}

// Validate checks all fields and collects all errors.
func (i LookupInput) Validate() error {
	var errs []domain.FieldError

	if i.RequesterID == 0 {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
