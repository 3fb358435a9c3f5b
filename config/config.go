package config

import (
	"github.com/kbukum/travelgate/util"
	"github.com/kbukum/travelgate/validation"
)

const (
	// DefaultEndpoint is the production TravelgateX API endpoint.
	DefaultEndpoint = "https://api.travelgatex.com"
	// DefaultClientCode identifies the host app when none is configured.
	DefaultClientCode = "tourconnect"
)

// Credentials identify the caller to the provider. Instance-level
// credentials act as defaults; every field can be overridden per call.
type Credentials struct {
	// APIKey is the user key provided by TravelGate to identify the user.
	APIKey string `json:"apiKey" yaml:"api_key" mapstructure:"api_key" validate:"omitempty,uuid"`
	// Endpoint is the API endpoint URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,url"`
	// ClientCode is the business on whose behalf requests are made.
	ClientCode string `json:"clientCode" yaml:"client_code" mapstructure:"client_code" validate:"omitempty,word"`
}

// ApplyDefaults fills in zero-value fields with documented defaults.
func (c *Credentials) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.ClientCode == "" {
		c.ClientCode = DefaultClientCode
	}
}

// Validate checks every present field against its documented pattern.
// Absent fields pass; completeness is checked when a request is built,
// since per-call tokens may supply what the instance lacks.
func (c *Credentials) Validate() error {
	return validation.Validate(c)
}

// Merge returns a copy of c with every non-empty field of override applied.
func (c Credentials) Merge(override Credentials) Credentials {
	return Credentials{
		APIKey:     util.Coalesce(override.APIKey, c.APIKey),
		Endpoint:   util.Coalesce(override.Endpoint, c.Endpoint),
		ClientCode: util.Coalesce(override.ClientCode, c.ClientCode),
	}
}
