package transport

import "github.com/kbukum/travelgate/mapping"

// Request describes one GraphQL call.
type Request struct {
	// Query is the fixed GraphQL document text.
	Query string `json:"query"`
	// Variables is the operation-specific variable tree.
	Variables map[string]any `json:"variables"`

	// Auth is applied as headers and never serialized into the body.
	Auth Auth `json:"-"`
}

// Response is the decoded result of a GraphQL call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Body is the raw response body.
	Body []byte
	// Data is the decoded JSON body.
	Data mapping.Object
}
