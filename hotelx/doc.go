// Package hotelx implements the TravelgateX hotel-distribution adapter.
//
// Every operation is one POST of a fixed GraphQL document against the
// hotelX domain: the criteria builders shape caller payloads into the
// provider's variable trees, the transport performs the round trip, and the
// projection tables reshape each result record into the stable output shape
// defined by the provider package.
//
//	plugin, err := hotelx.New(hotelx.Config{
//	    Credentials: config.Credentials{APIKey: key},
//	})
//	res, err := plugin.SearchBooking(ctx, provider.Call{
//	    Payload: provider.Payload{"bookingId": "200127"},
//	})
package hotelx
