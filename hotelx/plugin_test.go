package hotelx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kbukum/travelgate/config"
	"github.com/kbukum/travelgate/errors"
	"github.com/kbukum/travelgate/logger"
	"github.com/kbukum/travelgate/mapping"
	"github.com/kbukum/travelgate/provider"
)

const testAPIKey = "8e8ba334-3d39-4c51-8804-000000000000"

// stubProvider records the last request body and replies with a fixed JSON
// response.
type stubProvider struct {
	t        *testing.T
	response string
	lastBody mapping.Object
}

func (s *stubProvider) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			s.t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "ApiKey "+testAPIKey {
			s.t.Errorf("bad Authorization header: %q", got)
		}
		if r.Header.Get("requestId") == "" {
			s.t.Error("a correlation id must always be sent")
		}
		var body mapping.Object
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.t.Fatalf("bad request body: %v", err)
		}
		s.lastBody = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.response))
	}
}

func newTestPlugin(t *testing.T, response string) (*Plugin, *stubProvider) {
	t.Helper()
	stub := &stubProvider{t: t, response: response}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	plugin, err := New(Config{
		Credentials: config.Credentials{
			APIKey:   testAPIKey,
			Endpoint: srv.URL,
		},
		Log: logger.Nop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return plugin, stub
}

func TestSearchBookingByID(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{
		"data": {"hotelX": {"booking": {
			"errors": [],
			"bookings": [{
				"reference": {"bookingID": "200127", "supplier": "SUP-1"},
				"status": "CONFIRMED",
				"hotel": {"hotelCode": "H1", "hotelName": "Test", "start": "2020-03-05", "rooms": []}
			}]
		}}}
	}`)

	res, err := plugin.SearchBooking(context.Background(), provider.Call{
		Payload: provider.Payload{"bookingId": "200127"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Bookings) != 1 {
		t.Fatalf("bookings = %v", res.Bookings)
	}
	if res.Bookings[0]["id"] != "200127" {
		t.Errorf("id = %v", res.Bookings[0]["id"])
	}
	if res.Bookings[0]["status"] != "Confirmed" {
		t.Errorf("status = %v", res.Bookings[0]["status"])
	}

	// the outbound document and variables
	query, _ := stub.lastBody["query"].(string)
	if !strings.Contains(query, "booking(") {
		t.Errorf("wrong document sent: %.60s", query)
	}
	typeSearch := mapping.Lookup(stub.lastBody, "variables", "criteria", "typeSearch")
	if typeSearch != searchByReferences {
		t.Errorf("typeSearch = %v", typeSearch)
	}
}

func TestSearchBookingSortsByStartDate(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{
		"data": {"hotelX": {"booking": {
			"bookings": [
				{"reference": {"bookingID": "late"}, "hotel": {"start": "2020-03-10"}},
				{"reference": {"bookingID": "early"}, "hotel": {"start": "2020-03-05"}}
			]
		}}}
	}`)

	res, err := plugin.SearchBooking(context.Background(), provider.Call{
		Payload: provider.Payload{"bookingId": "200127"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bookings[0]["start"] != "2020-03-05" || res.Bookings[1]["start"] != "2020-03-10" {
		t.Errorf("not sorted: %v", res.Bookings)
	}
}

func TestSearchBookingEmptyResult(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{"data": {"hotelX": {"booking": {}}}}`)

	res, err := plugin.SearchBooking(context.Background(), provider.Call{
		Payload: provider.Payload{"bookingId": "200127"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Bookings) != 0 {
		t.Errorf("bookings = %v", res.Bookings)
	}
}

func TestProviderErrorBeatsPartialData(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{
		"data": {"hotelX": {"booking": {
			"errors": [{"code": "102", "type": "HTL", "description": "Access is not active"}],
			"bookings": [{"reference": {"bookingID": "should-not-leak"}}]
		}}}
	}`)

	res, err := plugin.SearchBooking(context.Background(), provider.Call{
		Payload: provider.Payload{"bookingId": "200127"},
	})
	if res != nil {
		t.Error("no output may accompany a provider error")
	}
	if !errors.IsProvider(err) {
		t.Fatalf("expected PROVIDER_ERROR, got %v", err)
	}
	ae := err.(*errors.Error)
	if ae.ProviderCode != "102" || ae.ProviderType != "HTL" {
		t.Errorf("error fields not carried: %+v", ae)
	}
}

func TestSearchHotels(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{
		"data": {"hotelX": {"hotels": {
			"edges": [
				{"node": {"hotelData": {"hotelCode": "H1", "hotelName": "One"}}},
				{"node": {"hotelData": {"hotelCode": "H2", "hotelName": "Two"}}}
			]
		}}}
	}`)

	res, err := plugin.SearchHotels(context.Background(), provider.Call{
		Payload: provider.Payload{"access": "9999"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Accommodation) != 2 {
		t.Fatalf("accommodation = %v", res.Accommodation)
	}
	if res.Accommodation[0]["hotelId"] != "H1" || res.Accommodation[1]["hotelName"] != "Two" {
		t.Errorf("projection wrong: %v", res.Accommodation)
	}

	if got := mapping.Lookup(stub.lastBody, "variables", "criteria", "access"); got != "9999" {
		t.Errorf("access not forwarded: %v", got)
	}
}

func TestSearchHotelsMissingEdges(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{"data": {"hotelX": {"hotels": {}}}}`)

	_, err := plugin.SearchHotels(context.Background(), provider.Call{
		Payload: provider.Payload{"access": "9999"},
	})
	if !errors.IsContractViolation(err) {
		t.Errorf("expected CONTRACT_VIOLATION, got %v", err)
	}
}

func TestSearchAvailability(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{
		"data": {"hotelX": {"search": {
			"options": [{
				"id": "opt-1",
				"hotelCode": "H1",
				"hotelName": "One",
				"rooms": [],
				"price": {"currency": "EUR", "net": 90, "gross": 100}
			}]
		}}}
	}`)

	res, err := plugin.SearchAvailability(context.Background(), provider.Call{
		Payload: provider.Payload{
			"travelDateStart": "28/12/2020",
			"travelDateEnd":   "29/12/2020",
			"access":          "9999",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Availability) != 1 || res.Availability[0]["id"] != "opt-1" {
		t.Errorf("availability = %v", res.Availability)
	}

	checkIn := mapping.Lookup(stub.lastBody, "variables", "criteria", "checkIn")
	if checkIn != "2020-12-28" {
		t.Errorf("checkIn = %v", checkIn)
	}
}

func TestSearchAvailabilityNoOptions(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{"data": {"hotelX": {"search": {}}}}`)

	res, err := plugin.SearchAvailability(context.Background(), provider.Call{
		Payload: provider.Payload{
			"travelDateStart": "28/12/2020",
			"travelDateEnd":   "29/12/2020",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Availability) != 0 {
		t.Errorf("availability = %v", res.Availability)
	}
}

func TestSearchAvailabilityBadDateFailsBeforeNetwork(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	plugin, err := New(Config{
		Credentials: config.Credentials{APIKey: testAPIKey, Endpoint: srv.URL},
		Log:         logger.Nop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = plugin.SearchAvailability(context.Background(), provider.Call{
		Payload: provider.Payload{"travelDateStart": "whenever"},
	})
	if !errors.IsDateFormat(err) {
		t.Fatalf("expected DATE_FORMAT, got %v", err)
	}
	if called {
		t.Error("no network call may happen after a date failure")
	}
}

func TestSearchQuote(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{
		"data": {"hotelX": {"quote": {
			"errors": [],
			"optionQuote": {"optionRefId": "opt-1", "status": "OK"}
		}}}
	}`)

	res, err := plugin.SearchQuote(context.Background(), provider.Call{
		Payload: provider.Payload{"id": "opt-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Quote["id"] != "opt-1" || res.Quote["status"] != "OK" {
		t.Errorf("quote = %v", res.Quote)
	}

	if got := mapping.Lookup(stub.lastBody, "variables", "criteria", "optionRefId"); got != "opt-1" {
		t.Errorf("optionRefId not forwarded: %v", got)
	}
}

func TestSearchQuoteMissingOptionQuote(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{"data": {"hotelX": {"quote": {"errors": []}}}}`)

	_, err := plugin.SearchQuote(context.Background(), provider.Call{
		Payload: provider.Payload{"id": "opt-1"},
	})
	if !errors.IsContractViolation(err) {
		t.Errorf("expected CONTRACT_VIOLATION, got %v", err)
	}
}

func TestCreateBooking(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{
		"data": {"hotelX": {"book": {
			"errors": [],
			"booking": {
				"status": "OK",
				"reference": {"bookingID": "200127", "client": "ref-77"}
			}
		}}}
	}`)

	res, err := plugin.CreateBooking(context.Background(), provider.Call{
		Payload: provider.Payload{
			"id":              "opt-1",
			"clientReference": "ref-77",
			"holder":          mapping.Object{"name": "Ada", "surname": "Lovelace"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapping.String(res.Booking, "reference", "bookingID") != "200127" {
		t.Errorf("booking = %v", res.Booking)
	}

	if got := mapping.Lookup(stub.lastBody, "variables", "input", "optionRefId"); got != "opt-1" {
		t.Errorf("optionRefId not forwarded: %v", got)
	}
	if got := mapping.Lookup(stub.lastBody, "variables", "settings", "useContext"); got != true {
		t.Errorf("useContext not set: %v", got)
	}
}

func TestCancelBooking(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{
		"data": {"hotelX": {"cancel": {
			"errors": [],
			"cancellation": {
				"status": "CANCELLED",
				"cancelReference": "CX-1",
				"reference": {"bookingID": "200127"}
			}
		}}}
	}`)

	res, err := plugin.CancelBooking(context.Background(), provider.Call{
		Payload: provider.Payload{"id": "200127"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cancellation["status"] != "CANCELLED" {
		t.Errorf("cancellation = %v", res.Cancellation)
	}

	if got := mapping.Lookup(stub.lastBody, "variables", "input", "bookingID"); got != "200127" {
		t.Errorf("bookingID not forwarded: %v", got)
	}
}

func TestValidateToken(t *testing.T) {
	plugin, stub := newTestPlugin(t, `{"data": {"hotelX": {"hotels": {"edges": []}}}}`)

	if !plugin.ValidateToken(context.Background(), provider.Call{}) {
		t.Error("expected true for a well-formed hotels response")
	}
	if got := mapping.Lookup(stub.lastBody, "variables", "criteria", "access"); got != float64(0) {
		t.Errorf("probe access = %v", got)
	}
}

func TestValidateTokenFalseOnAnyFailure(t *testing.T) {
	responses := []string{
		`{"data": {"hotelX": {"hotels": {"errors": [{"code": "401", "type": "AUTH", "description": "bad key"}]}}}}`,
		`{"data": {"hotelX": {"hotels": {}}}}`,
		`{}`,
		`not json`,
	}
	for _, response := range responses {
		plugin, _ := newTestPlugin(t, response)
		if plugin.ValidateToken(context.Background(), provider.Call{}) {
			t.Errorf("expected false for response %q", response)
		}
	}
}

func TestValidateTokenFalseOnConnectionFailure(t *testing.T) {
	plugin, err := New(Config{
		Credentials: config.Credentials{APIKey: testAPIKey, Endpoint: "http://127.0.0.1:1"},
		Log:         logger.Nop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plugin.ValidateToken(context.Background(), provider.Call{}) {
		t.Error("expected false when nothing is listening")
	}
}

func TestMissingAPIKey(t *testing.T) {
	plugin, err := New(Config{Log: logger.Nop()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = plugin.SearchHotels(context.Background(), provider.Call{
		Payload: provider.Payload{"access": "9999"},
	})
	if errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestPerCallTokenOverridesInstance(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data": {"hotelX": {"hotels": {"edges": []}}}}`))
	}))
	defer srv.Close()

	plugin, err := New(Config{
		Credentials: config.Credentials{APIKey: testAPIKey, Endpoint: srv.URL},
		Log:         logger.Nop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	override := "11111111-2222-3333-4444-555555555555"
	_, err = plugin.SearchHotels(context.Background(), provider.Call{
		Token:   config.Credentials{APIKey: override},
		Payload: provider.Payload{"access": "9999"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "ApiKey "+override {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestNewRejectsBadCredentials(t *testing.T) {
	_, err := New(Config{Credentials: config.Credentials{APIKey: "not-a-uuid"}})
	if errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestPluginImplementsBookingProvider(t *testing.T) {
	plugin, _ := newTestPlugin(t, `{}`)
	var bp provider.BookingProvider = plugin
	if bp.Name() != "travelgate" {
		t.Errorf("name = %s", bp.Name())
	}
}
