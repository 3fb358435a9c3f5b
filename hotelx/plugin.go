package hotelx

import (
	"context"

	"github.com/kbukum/travelgate/config"
	"github.com/kbukum/travelgate/errors"
	"github.com/kbukum/travelgate/logger"
	"github.com/kbukum/travelgate/mapping"
	"github.com/kbukum/travelgate/provider"
	"github.com/kbukum/travelgate/transport"
	"github.com/kbukum/travelgate/util"
)

// providerName identifies this adapter to the host.
const providerName = "travelgate"

// Operation names, used as result paths and log fields.
const (
	opHotels  = "hotels"
	opSearch  = "search"
	opQuote   = "quote"
	opBook    = "book"
	opCancel  = "cancel"
	opBooking = "booking"
)

// Config configures the plugin.
type Config struct {
	// Credentials are the instance defaults; per-call tokens override them
	// field by field.
	Credentials config.Credentials
	// Transport configures the HTTP round trip.
	Transport transport.Config
	// Log is the adapter logger. Nil falls back to env-configured logging.
	Log *logger.Logger
}

// Plugin is the TravelgateX booking provider. Immutable after construction
// and safe for concurrent use.
type Plugin struct {
	creds     config.Credentials
	transport *transport.Client
	log       *logger.Logger
}

var _ provider.BookingProvider = (*Plugin)(nil)

// New creates the plugin. Credentials get defaults applied and every
// present field pattern-validated.
func New(cfg Config) (*Plugin, error) {
	cfg.Credentials.ApplyDefaults()
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Log
	if log == nil {
		log = logger.NewFromEnv()
	}
	log = log.WithComponent(providerName)

	tc, err := transport.New(cfg.Transport, log)
	if err != nil {
		return nil, err
	}

	return &Plugin{
		creds:     cfg.Credentials,
		transport: tc,
		log:       log,
	}, nil
}

// Name returns the provider's unique name.
func (p *Plugin) Name() string { return providerName }

// ValidateToken probes the hotel list with the given credentials. Any
// failure, transport or provider-side, maps to false.
func (p *Plugin) ValidateToken(ctx context.Context, call provider.Call) bool {
	node, err := p.post(ctx, call, hotelListQuery, hotelListVariables(0), opHotels)
	if err == nil {
		err = checkError(node)
	}
	if err == nil {
		if _, listErr := edgesOf(node); listErr != nil {
			err = listErr
		}
	}
	if err != nil {
		p.log.Debug("token validation failed", logger.Fields(logger.FieldError, err.Error()))
		return false
	}
	return true
}

// SearchHotels lists the hotels reachable under the payload's access code.
func (p *Plugin) SearchHotels(ctx context.Context, call provider.Call) (*provider.HotelList, error) {
	vars := hotelListVariables(call.Payload["access"])
	node, err := p.post(ctx, call, hotelListQuery, vars, opHotels)
	if err != nil {
		return nil, err
	}
	if err := checkError(node); err != nil {
		return nil, err
	}
	edges, err := edgesOf(node)
	if err != nil {
		return nil, err
	}
	return &provider.HotelList{
		Accommodation: mapping.ProjectAll(edges, hotelTable),
	}, nil
}

// SearchAvailability searches bookable options for the payload's stay
// window and filters.
func (p *Plugin) SearchAvailability(ctx context.Context, call provider.Call) (*provider.Availability, error) {
	creds := p.creds.Merge(call.Token)
	vars, err := availabilityVariables(call.Payload, creds.ClientCode)
	if err != nil {
		return nil, err
	}
	node, err := p.post(ctx, call, availabilityQuery, vars, opSearch)
	if err != nil {
		return nil, err
	}
	if err := checkError(node); err != nil {
		return nil, err
	}
	// A search with no matches omits the options list entirely.
	options, ok := mapping.SliceAt(node, "options")
	if !ok {
		return nil, errors.ContractViolation("search options is not a list")
	}
	return &provider.Availability{
		Availability: mapping.ProjectAll(options, availabilityTable),
	}, nil
}

// SearchQuote exchanges an availability option id for a quote.
func (p *Plugin) SearchQuote(ctx context.Context, call provider.Call) (*provider.Quote, error) {
	creds := p.creds.Merge(call.Token)
	vars := quoteVariables(call.Payload, creds.ClientCode)
	node, err := p.post(ctx, call, quoteQuery, vars, opQuote)
	if err != nil {
		return nil, err
	}
	if err := checkError(node); err != nil {
		return nil, err
	}
	optionQuote := mapping.ObjectAt(node, "optionQuote")
	if optionQuote == nil {
		return nil, errors.ContractViolation("quote response is missing optionQuote")
	}
	return &provider.Quote{Quote: projectQuote(optionQuote)}, nil
}

// CreateBooking books a quoted option.
func (p *Plugin) CreateBooking(ctx context.Context, call provider.Call) (*provider.Booking, error) {
	creds := p.creds.Merge(call.Token)
	vars := bookVariables(call.Payload, creds.ClientCode)
	node, err := p.post(ctx, call, bookMutation, vars, opBook)
	if err != nil {
		return nil, err
	}
	if err := checkError(node); err != nil {
		return nil, err
	}
	booking := mapping.ObjectAt(node, "booking")
	if booking == nil {
		return nil, errors.ContractViolation("book response is missing booking")
	}
	return &provider.Booking{Booking: booking}, nil
}

// CancelBooking cancels the booking named by the payload's id.
func (p *Plugin) CancelBooking(ctx context.Context, call provider.Call) (*provider.Cancellation, error) {
	creds := p.creds.Merge(call.Token)
	vars := cancelVariables(call.Payload, creds.ClientCode)
	node, err := p.post(ctx, call, cancelMutation, vars, opCancel)
	if err != nil {
		return nil, err
	}
	if err := checkError(node); err != nil {
		return nil, err
	}
	cancellation := mapping.ObjectAt(node, "cancellation")
	if cancellation == nil {
		return nil, errors.ContractViolation("cancel response is missing cancellation")
	}
	return &provider.Cancellation{Cancellation: cancellation}, nil
}

// SearchBooking finds existing bookings by reference or date window,
// sorted ascending by travel start date.
func (p *Plugin) SearchBooking(ctx context.Context, call provider.Call) (*provider.BookingList, error) {
	creds := p.creds.Merge(call.Token)
	vars, err := bookingSearchVariables(call.Payload, creds.ClientCode)
	if err != nil {
		return nil, err
	}
	node, err := p.post(ctx, call, bookingSearchQuery, vars, opBooking)
	if err != nil {
		return nil, err
	}
	if err := checkError(node); err != nil {
		return nil, err
	}
	// An empty result omits the bookings list entirely.
	list, ok := mapping.SliceAt(node, "bookings")
	if !ok {
		return nil, errors.ContractViolation("booking response bookings is not a list")
	}
	bookings := mapping.ProjectAll(list, bookingTable)
	sortBookings(bookings)
	return &provider.BookingList{Bookings: bookings}, nil
}

// post performs the operation's single round trip and extracts its result
// node.
func (p *Plugin) post(ctx context.Context, call provider.Call, query string, vars mapping.Object, operation string) (mapping.Object, error) {
	creds := p.creds.Merge(call.Token)
	if creds.APIKey == "" {
		return nil, errors.InvalidConfig("apiKey is required")
	}

	requestID := util.Coalesce(call.RequestID, transport.NewRequestID())

	p.log.Debug("calling provider", logger.Fields(
		logger.FieldOperation, operation,
		logger.FieldRequestID, requestID,
		logger.FieldEndpoint, creds.Endpoint,
	))

	resp, err := p.transport.Post(ctx, creds.Endpoint, transport.Request{
		Query:     query,
		Variables: vars,
		Auth: transport.Auth{
			APIKey:    creds.APIKey,
			RequestID: requestID,
		},
	})
	if err != nil {
		p.log.Error("provider call failed", logger.Fields(
			logger.FieldOperation, operation,
			logger.FieldRequestID, requestID,
			logger.FieldError, err.Error(),
		))
		return nil, err
	}

	return resultAt(resp, operation)
}

// edgesOf pulls the edges list out of a hotel list result. A missing list
// violates the documented shape.
func edgesOf(node mapping.Object) ([]any, error) {
	v := mapping.Lookup(node, "edges")
	if v == nil {
		return nil, errors.ContractViolation("hotels response is missing edges")
	}
	edges, ok := v.([]any)
	if !ok {
		return nil, errors.ContractViolation("hotels edges is not a list")
	}
	return edges, nil
}
