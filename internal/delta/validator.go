package delta

import (
	"errors"
	"fmt"

	"fxdelta/internal/domain"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks the structural invariants of a CurrencyRequest.
type RequestValidator struct {
	validate *validator.Validate
}

// Validate reports duplicate currencies before a bad date range.
// Returned errors are tagged domain.KindInvalidRequest.
func (v *RequestValidator) Validate(req domain.CurrencyRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Internal(fmt.Errorf("failed to validate request: %w", err))
	}

	tags := make(map[string]struct{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		tags[fe.Tag()] = struct{}{}
	}
	if _, ok := tags["unique"]; ok {
		return domain.InvalidRequest(domain.ErrDuplicateCurrencies)
	}
	if _, ok := tags["gtfield"]; ok {
		return domain.InvalidRequest(domain.ErrInvalidDateRange)
	}
	return domain.InvalidRequest(fieldErrs)
}

func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}
