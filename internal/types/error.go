package types

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// InvalidArgument covers malformed or out-of-range caller input, e.g. a
	// zero deposit amount or a withdrawal exceeding the current stake.
	InvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// Unauthorized covers administrator-only operations invoked by a caller
	// that is not the configured owner account.
	Unauthorized ErrorCode = "UNAUTHORIZED"
	// Unavailable covers operations rejected by the gating layer: deposits
	// while the ledger is paused and reentrant calls into a mutating
	// operation that is still in flight.
	Unavailable ErrorCode = "UNAVAILABLE"
	// InsufficientFunds covers an emergency withdrawal with nothing
	// reclaimable and token transfers declined by the bridge for lack of
	// balance or allowance.
	InsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	// InternalServiceError covers everything that is not the caller's fault.
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

// Error carries the taxonomy code and the HTTP status it maps to at the API
// boundary. All ledger errors are fail-fast: by the time one is returned no
// state has been mutated.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInvalidArgumentError(format string, args ...any) *Error {
	return NewError(http.StatusBadRequest, InvalidArgument, fmt.Errorf(format, args...))
}

func NewUnauthorizedError(caller string) *Error {
	return NewError(
		http.StatusForbidden,
		Unauthorized,
		fmt.Errorf("caller %s is not the ledger owner", caller),
	)
}

func NewUnavailableError(msg string) *Error {
	return NewErrorWithMsg(http.StatusServiceUnavailable, Unavailable, msg)
}

func NewInsufficientFundsError(msg string) *Error {
	return NewErrorWithMsg(http.StatusConflict, InsufficientFunds, msg)
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

// CodeOf extracts the taxonomy code from err, defaulting to
// InternalServiceError for errors that did not originate in the ledger.
func CodeOf(err error) ErrorCode {
	var ledgerErr *Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr.ErrorCode
	}
	return InternalServiceError
}

// StatusOf extracts the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var ledgerErr *Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr.StatusCode
	}
	return http.StatusInternalServerError
}
