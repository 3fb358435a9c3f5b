package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeProvider indicates the upstream API reported a business or
	// validation error in its response payload.
	ErrCodeProvider ErrorCode = "PROVIDER_ERROR"
	// ErrCodeTransport indicates a network or HTTP-level failure before a
	// usable response was obtained.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeDateFormat indicates a caller-supplied date string could not be
	// parsed under the declared format.
	ErrCodeDateFormat ErrorCode = "DATE_FORMAT"
	// ErrCodeContractViolation indicates the provider response did not match
	// the documented shape (missing result node, wrong type).
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeInvalidConfig indicates credentials or configuration failed
	// validation before any request was made.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
