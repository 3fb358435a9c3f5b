package transport

import (
	"net/http"

	"github.com/google/uuid"
)

// authScheme is the Authorization scheme TravelgateX expects.
const authScheme = "ApiKey "

// Auth carries per-request authentication and correlation.
type Auth struct {
	// APIKey is the TravelGate user key sent as `Authorization: ApiKey <key>`.
	APIKey string
	// RequestID is an optional correlation id forwarded to the provider.
	RequestID string
}

// apply sets the auth-related headers on an HTTP request.
func (a Auth) apply(req *http.Request) {
	req.Header.Set("Authorization", authScheme+a.APIKey)
	if a.RequestID != "" {
		req.Header.Set("requestId", a.RequestID)
	}
}

// NewRequestID generates a correlation id for calls that did not supply one.
func NewRequestID() string {
	return uuid.NewString()
}
