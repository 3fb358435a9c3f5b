// Package provider defines the uniform booking-provider interface the
// orchestration host programs against. Concrete adapters (hotelx is the
// TravelgateX one) implement BookingProvider; hosts never import adapter
// internals.
package provider

import (
	"context"

	"github.com/kbukum/travelgate/config"
	"github.com/kbukum/travelgate/mapping"
)

// Payload is the caller-supplied operation payload. Fields are untyped at
// the boundary; each operation consumes the ones it documents.
type Payload = map[string]any

// Call carries everything one operation invocation needs besides context.
type Call struct {
	// Token holds per-call credentials; unset fields fall back to the
	// adapter instance defaults.
	Token config.Credentials
	// Payload is the operation payload.
	Payload Payload
	// RequestID is an optional correlation id; a fresh one is generated
	// when empty.
	RequestID string
}

// HotelList is the result of a product search.
type HotelList struct {
	Accommodation []mapping.Object `json:"accommodation"`
}

// Availability is the result of an availability search.
type Availability struct {
	Availability []mapping.Object `json:"availability"`
}

// Quote is a priced, bookable snapshot of an availability option.
type Quote struct {
	Quote mapping.Object `json:"quote"`
}

// Booking is the post-creation booking record.
type Booking struct {
	Booking mapping.Object `json:"booking"`
}

// Cancellation is the result of a booking cancellation.
type Cancellation struct {
	Cancellation mapping.Object `json:"cancellation"`
}

// BookingList is the result of an existing-booking search, sorted
// ascending by travel start date.
type BookingList struct {
	Bookings []mapping.Object `json:"bookings"`
}

// BookingProvider is the interface every booking adapter implements.
// All operations are stateless request/response round trips; errors carry
// the adapter error codes from the errors package.
type BookingProvider interface {
	// Name returns the provider's unique name.
	Name() string
	// ValidateToken probes the provider with the given credentials.
	// It never fails; any error maps to false.
	ValidateToken(ctx context.Context, call Call) bool
	// SearchHotels lists the hotels available under an access code.
	SearchHotels(ctx context.Context, call Call) (*HotelList, error)
	// SearchAvailability searches bookable options for a date window.
	SearchAvailability(ctx context.Context, call Call) (*Availability, error)
	// SearchQuote exchanges an availability option id for a quote.
	SearchQuote(ctx context.Context, call Call) (*Quote, error)
	// CreateBooking books a quoted option.
	CreateBooking(ctx context.Context, call Call) (*Booking, error)
	// CancelBooking cancels an existing booking by id.
	CancelBooking(ctx context.Context, call Call) (*Cancellation, error)
	// SearchBooking finds existing bookings by reference or date window.
	SearchBooking(ctx context.Context, call Call) (*BookingList, error)
}

// Factory creates a provider instance from credentials.
type Factory[T BookingProvider] func(creds config.Credentials) (T, error)
