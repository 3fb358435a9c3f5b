// Package transport performs the single HTTP round trip behind every
// adapter operation: one POST of a GraphQL document plus variables, ApiKey
// authorization, and a decoded JSON response.
//
// There is deliberately no retry, pagination, or caching here: the adapter
// contract is exactly one attempt per operation, and resilience belongs to
// the calling host. A client-side timeout guards the call on top of the
// server-side settings.timeout hint embedded in the variables.
//
//	client, _ := transport.New(transport.Config{}, logger.Nop())
//	resp, err := client.Post(ctx, "https://api.travelgatex.com", transport.Request{
//	    Query:     hotelListQuery,
//	    Variables: vars,
//	    APIKey:    apiKey,
//	})
package transport
