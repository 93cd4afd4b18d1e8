package domain

import (
	"errors"
	"fmt"
)

// Kind tells the boundary layer which category a failure belongs to.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidRequest
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

var (
	ErrDuplicateCurrencies       = errors.New("Currencies must be unique.")
	ErrInvalidDateRange          = errors.New("To date must be greater than from date.")
	ErrMalformedUpstreamResponse = errors.New("Invalid response structure from the API")
)

// Error tags an underlying error with its Kind. Its message is the underlying message.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func InvalidRequest(err error) error { return &Error{Kind: KindInvalidRequest, Err: err} }

func Upstream(err error) error { return &Error{Kind: KindUpstream, Err: err} }

func Internal(err error) error { return &Error{Kind: KindInternal, Err: err} }

// KindOf returns the Kind of the first tagged error in err's chain.
// Untagged errors are internal.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindInternal
}

// UnknownCurrencyError is returned when a requested currency is absent from the rate table.
type UnknownCurrencyError struct {
	Currency string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("Currency %s does not exist.", e.Currency)
}

// UpstreamHTTPError carries a non-2xx response from the rate provider.
type UpstreamHTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("Error fetching data: %s, Content: %s", e.Status, e.Body)
}
