package hotelx

import (
	"strings"

	"github.com/kbukum/travelgate/dates"
	"github.com/kbukum/travelgate/mapping"
	"github.com/kbukum/travelgate/provider"
)

// Server-side timeout hints per operation, in milliseconds. The hotel list
// and book operations send none.
const (
	timeoutAvailability  = 25000
	timeoutQuote         = 5000
	timeoutCancel        = 18000
	timeoutBookingSearch = 18000
)

// Search-type discriminators and date types for the booking search.
const (
	searchByReferences = "REFERENCES"
	searchByDates      = "DATES"
	dateTypeBooking    = "BOOKING"
	dateTypeArrival    = "ARRIVAL"
)

// sanitize trims string fields and drops the ones left empty. Non-string
// fields pass through untouched. The input payload is never modified.
func sanitize(p provider.Payload) provider.Payload {
	out := make(provider.Payload, len(p))
	for k, v := range p {
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out[k] = s
		} else {
			out[k] = v
		}
	}
	return out
}

// stringField returns the payload field as a string, or "" when absent or
// not a string.
func stringField(p provider.Payload, key string) string {
	s, _ := p[key].(string)
	return s
}

// settings builds the provider settings tree shared by all operations.
// A zero timeout means the operation sends no server-side hint.
func settings(clientCode string, p provider.Payload, audit bool, timeoutMS int) mapping.Object {
	s := mapping.Object{
		"client":            clientCode,
		"auditTransactions": audit,
	}
	if v, ok := p["context"]; ok {
		s["context"] = v
	}
	if v, ok := p["testMode"]; ok {
		s["testMode"] = v
	}
	if timeoutMS > 0 {
		s["timeout"] = timeoutMS
	}
	return s
}

// hotelListVariables builds the variable tree for the hotel list query.
// access may be any value the provider accepts (string or numeric code).
func hotelListVariables(access any) mapping.Object {
	return mapping.Object{
		"criteria": mapping.Object{"access": access},
		"relay":    mapping.Object{},
	}
}

// bookingSearchVariables shapes the booking search criteria. The search
// type is discriminated in order: booking reference, purchase-date window,
// travel-date window; with none present the discriminator is omitted and
// the provider is expected to reject the request.
func bookingSearchVariables(payload provider.Payload, clientCode string) (mapping.Object, error) {
	p := sanitize(payload)
	dateFormat := stringField(p, "dateFormat")

	criteria := mapping.Object{}
	if v, ok := p["access"]; ok {
		criteria["accessCode"] = v
	}
	if v, ok := p["language"]; ok {
		criteria["language"] = v
	}

	switch {
	case stringField(p, "bookingId") != "":
		criteria["typeSearch"] = searchByReferences
		references := mapping.Object{
			"references": []any{
				mapping.Object{"supplier": p["bookingId"]},
			},
		}
		if v, ok := p["hotelCode"]; ok {
			references["hotelCode"] = v
		}
		if v, ok := p["currency"]; ok {
			references["currency"] = v
		}
		criteria["references"] = references

	case stringField(p, "purchaseDateStart") != "":
		window, err := dateWindow(
			stringField(p, "purchaseDateStart"),
			stringField(p, "purchaseDateEnd"),
			dateFormat, dateTypeBooking,
		)
		if err != nil {
			return nil, err
		}
		criteria["typeSearch"] = searchByDates
		criteria["dates"] = window

	case stringField(p, "travelDateStart") != "":
		window, err := dateWindow(
			stringField(p, "travelDateStart"),
			stringField(p, "travelDateEnd"),
			dateFormat, dateTypeArrival,
		)
		if err != nil {
			return nil, err
		}
		criteria["typeSearch"] = searchByDates
		criteria["dates"] = window
	}

	s := settings(clientCode, p, true, timeoutBookingSearch)
	s["testMode"] = true

	return mapping.Object{
		"criteria": criteria,
		"settings": s,
	}, nil
}

// dateWindow normalizes an inclusive [start, end] window; end defaults to
// start when absent.
func dateWindow(start, end, format, dateType string) (mapping.Object, error) {
	if end == "" {
		end = start
	}
	startISO, err := dates.Normalize(start, format)
	if err != nil {
		return nil, err
	}
	endISO, err := dates.Normalize(end, format)
	if err != nil {
		return nil, err
	}
	return mapping.Object{
		"dateType": dateType,
		"start":    startISO,
		"end":      endISO,
	}, nil
}

// availabilityVariables shapes the availability search criteria.
func availabilityVariables(payload provider.Payload, clientCode string) (mapping.Object, error) {
	p := sanitize(payload)
	dateFormat := stringField(p, "dateFormat")

	checkIn, err := dates.Normalize(stringField(p, "travelDateStart"), dateFormat)
	if err != nil {
		return nil, err
	}
	checkOut, err := dates.Normalize(stringField(p, "travelDateEnd"), dateFormat)
	if err != nil {
		return nil, err
	}

	criteria := mapping.Merge(
		mapping.Object{"checkIn": checkIn, "checkOut": checkOut},
		mapping.Pick(p, "hotels", "occupancies", "currency", "market", "language", "nationality"),
	)

	return mapping.Object{
		"criteria": criteria,
		"settings": settings(clientCode, p, false, timeoutAvailability),
		"filter": mapping.Object{
			"access": mapping.Object{"includes": []any{p["access"]}},
		},
	}, nil
}

// quoteVariables shapes the quote criteria from an availability option id.
func quoteVariables(payload provider.Payload, clientCode string) mapping.Object {
	p := sanitize(payload)
	return mapping.Object{
		"criteria": mapping.Object{"optionRefId": p["id"]},
		"settings": settings(clientCode, p, false, timeoutQuote),
	}
}

// bookVariables shapes the booking input from a quote id plus the optional
// holder/rooms/payment fields forwarded verbatim.
func bookVariables(payload provider.Payload, clientCode string) mapping.Object {
	p := sanitize(payload)

	input := mapping.Merge(
		mapping.Object{"optionRefId": p["id"]},
		mapping.Pick(p, "clientReference", "deltaPrice", "holder", "remarks", "paymentCard", "rooms"),
	)

	s := settings(clientCode, p, false, 0)
	s["useContext"] = true

	return mapping.Object{
		"input":    input,
		"settings": s,
	}
}

// cancelVariables shapes the cancellation input from a booking id.
func cancelVariables(payload provider.Payload, clientCode string) mapping.Object {
	p := sanitize(payload)
	return mapping.Object{
		"input":    mapping.Object{"bookingID": p["id"]},
		"settings": settings(clientCode, p, false, timeoutCancel),
	}
}
