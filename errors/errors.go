package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified adapter error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// ProviderCode is the error code reported by the upstream API, if any.
	ProviderCode string `json:"providerCode,omitempty"`
	// ProviderType is the error type reported by the upstream API, if any.
	ProviderType string `json:"providerType,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code, so
// errors.Is(err, &Error{Code: ErrCodeProvider}) works as a class check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// --- Constructors ---

// Provider creates an error for a failure reported in the upstream response.
// code, typ and description come from the first entry of the provider's
// errors list.
func Provider(code, typ, description string) *Error {
	return &Error{
		Code:         ErrCodeProvider,
		Message:      description,
		ProviderCode: code,
		ProviderType: typ,
	}
}

// Transport creates an error for a network or HTTP-level failure.
func Transport(msg string, cause error) *Error {
	return &Error{Code: ErrCodeTransport, Message: msg, Cause: cause}
}

// DateFormat creates an error for an unparsable caller-supplied date.
func DateFormat(value, format string, cause error) *Error {
	return &Error{
		Code:    ErrCodeDateFormat,
		Message: fmt.Sprintf("date %q does not match format %q", value, format),
		Cause:   cause,
	}
}

// ContractViolation creates an error for a response that does not match the
// documented provider shape.
func ContractViolation(msg string) *Error {
	return &Error{Code: ErrCodeContractViolation, Message: msg}
}

// InvalidConfig creates an error for credentials or configuration that
// failed validation.
func InvalidConfig(msg string) *Error {
	return &Error{Code: ErrCodeInvalidConfig, Message: msg}
}

// --- Predicates ---

// CodeOf extracts the adapter error code from err, or "" if err is not an
// *Error anywhere in its chain.
func CodeOf(err error) ErrorCode {
	var ae *Error
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsProvider reports whether err is a provider-reported error.
func IsProvider(err error) bool { return CodeOf(err) == ErrCodeProvider }

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool { return CodeOf(err) == ErrCodeTransport }

// IsDateFormat reports whether err is a date-format failure.
func IsDateFormat(err error) bool { return CodeOf(err) == ErrCodeDateFormat }

// IsContractViolation reports whether err is a response-shape violation.
func IsContractViolation(err error) bool {
	return CodeOf(err) == ErrCodeContractViolation
}
