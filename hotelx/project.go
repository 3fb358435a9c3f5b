package hotelx

import (
	"sort"
	"strings"

	"github.com/kbukum/travelgate/dates"
	"github.com/kbukum/travelgate/mapping"
)

// capitalize normalizes a status string: first letter upper, remainder
// lower. Non-strings map to "".
func capitalize(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// bookingTable reshapes one provider booking record.
var bookingTable = mapping.Table{
	{Attr: "id", Get: mapping.Path("reference", "bookingID")},
	{Attr: "status", Get: func(e mapping.Object) any {
		return capitalize(mapping.Lookup(e, "status"))
	}},
	{Attr: "holder", Get: mapping.Path("holder")},
	{Attr: "telephone", Get: mapping.Path("phone")},
	{Attr: "supplierBookingId", Get: mapping.Path("reference", "supplier")},
	{Attr: "hotelId", Get: mapping.Path("hotel", "hotelCode")},
	{Attr: "hotelName", Get: mapping.Path("hotel", "hotelName")},
	{Attr: "rooms", Get: func(e mapping.Object) any {
		list, ok := mapping.SliceAt(e, "hotel", "rooms")
		if !ok || list == nil {
			return nil
		}
		return mapping.ProjectAll(list, bookingRoomTable)
	}},
	{Attr: "start", Get: mapping.Path("hotel", "start")},
	{Attr: "end", Get: mapping.Path("hotel", "end")},
	{Attr: "bookingDate", Get: mapping.Path("hotel", "bookingDate")},
	{Attr: "price", Get: mapping.Path("price")},
	{Attr: "cancelPolicy", Get: func(e mapping.Object) any {
		return mapping.Project(e, cancelPolicyTable)
	}},
}

var bookingRoomTable = mapping.Table{
	{Attr: "roomId", Get: mapping.Path("code")},
	{Attr: "description", Get: mapping.Path("description")},
	{Attr: "price", Get: mapping.Path("price")},
}

var cancelPolicyTable = mapping.Table{
	{Attr: "refundable", Get: mapping.Path("cancelPolicy", "refundable")},
	{Attr: "cancelPenalties", Get: mapping.Path("cancelPolicy", "cancelPenalties")},
}

// hotelTable reshapes one hotel list edge.
var hotelTable = mapping.Table{
	{Attr: "hotelId", Get: mapping.Path("node", "hotelData", "hotelCode")},
	{Attr: "hotelName", Get: mapping.Path("node", "hotelData", "hotelName")},
}

// availabilityTable reshapes one availability option.
var availabilityTable = mapping.Table{
	{Attr: "id", Get: mapping.Path("id")},
	{Attr: "hotelName", Get: mapping.Path("hotelName")},
	{Attr: "hotelId", Get: mapping.Path("hotelCode")},
	{Attr: "supplierBookingId", Get: mapping.Path("supplierCode")},
	{Attr: "paymentType", Get: mapping.Path("paymentType")},
	{Attr: "rooms", Get: func(e mapping.Object) any {
		list, ok := mapping.SliceAt(e, "rooms")
		if !ok || list == nil {
			return nil
		}
		return mapping.ProjectAll(list, availabilityRoomTable)
	}},
	{Attr: "pricing", Get: func(e mapping.Object) any {
		return mapping.Project(e, pricingTable)
	}},
	{Attr: "surcharges", Get: mapping.Path("surcharges")},
	{Attr: "cancelPolicy", Get: mapping.Path("cancelPolicy")},
}

var availabilityRoomTable = mapping.Table{
	{Attr: "description", Get: mapping.Path("description")},
	{Attr: "roomId", Get: mapping.Path("code")},
	{Attr: "price", Get: mapping.Path("roomPrice", "price")},
	{Attr: "beds", Get: mapping.Path("beds")},
}

var pricingTable = mapping.Table{
	{Attr: "retail", Get: mapping.Path("price", "gross")},
	{Attr: "net", Get: mapping.Path("price", "net")},
	{Attr: "currency", Get: mapping.Path("price", "currency")},
	{Attr: "includedTaxes", Get: func(e mapping.Object) any {
		list, _ := mapping.SliceAt(e, "surcharges")
		taxes := make([]mapping.Object, 0, len(list))
		for _, entry := range list {
			c, ok := entry.(mapping.Object)
			if !ok {
				continue
			}
			tax := mapping.Omit(c, "description", "price")
			if v := c["description"]; v != nil {
				tax["name"] = v
			}
			if v := c["price"]; v != nil {
				tax["net"] = v
			}
			taxes = append(taxes, tax)
		}
		return taxes
	}},
}

// projectQuote passes the provider's optionQuote through with id set from
// its optionRefId.
func projectQuote(optionQuote mapping.Object) mapping.Object {
	out := mapping.Merge(nil, optionQuote)
	if v := optionQuote["optionRefId"]; v != nil {
		out["id"] = v
	}
	return out
}

// sortBookings orders projected bookings ascending by travel start date.
// Records without a parsable start sort first; ties keep provider order.
func sortBookings(bookings []mapping.Object) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a := dates.ParseCanonical(mapping.String(bookings[i], "start"))
		b := dates.ParseCanonical(mapping.String(bookings[j], "start"))
		return a.Before(b)
	})
}
