package entities

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks programmer errors: bad argument shape or text that lacks
// the quote, marker or space it must contain.
var ErrPrecondition = errors.New("precondition violated")

var (
	ErrMissingQuote      = fmt.Errorf("%w: fewer than two double quotes", ErrPrecondition)
	ErrMissingField      = fmt.Errorf("%w: field marker not found", ErrPrecondition)
	ErrNoSpace           = fmt.Errorf("%w: no space in string", ErrPrecondition)
	ErrInvalidCodeFormat = fmt.Errorf("%w: currency code must be non-empty letters without spaces", ErrPrecondition)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be a finite number", ErrPrecondition)
	ErrInvalidCurrency   = fmt.Errorf("%w: currency code is not recognized by the service", ErrPrecondition)
	ErrMissingAPIKey     = fmt.Errorf("%w: api key is not configured", ErrPrecondition)
)

var (
	ErrServiceRejected  = errors.New("service reported an error")
	ErrMalformedAmount  = errors.New("service returned a malformed amount")
	ErrUnexpectedStatus = errors.New("unexpected status from currency service")
	ErrJournalDisabled  = errors.New("exchange journal is disabled")
)
