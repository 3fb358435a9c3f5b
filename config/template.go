package config

import "regexp"

// TokenField describes one credential field for hosts that render
// credential forms dynamically.
type TokenField struct {
	// Type is the form input type.
	Type string `json:"type"`
	// Pattern validates the field's value.
	Pattern *regexp.Regexp `json:"-"`
	// Description explains the field to the operator.
	Description string `json:"description"`
	// Default is the pre-filled value, if any.
	Default string `json:"default,omitempty"`
}

var (
	clientCodeRe = regexp.MustCompile(`^\w+$`)
	apiKeyRe     = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	endpointRe   = regexp.MustCompile(`^(?:http|https)://\S+$`)
)

// TokenTemplate returns the credential field descriptors for this provider.
func TokenTemplate() map[string]TokenField {
	return map[string]TokenField{
		"clientCode": {
			Type:        "text",
			Pattern:     clientCodeRe,
			Description: "The host app making the connection",
			Default:     DefaultClientCode,
		},
		"apiKey": {
			Type:        "text",
			Pattern:     apiKeyRe,
			Description: "the User Key provided by TravelGate to identify the user",
		},
		"endpoint": {
			Type:        "text",
			Pattern:     endpointRe,
			Description: "The url api endpoint from travelgate",
			Default:     DefaultEndpoint,
		},
	}
}
