package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kbukum/travelgate/errors"
	"github.com/kbukum/travelgate/logger"
	"github.com/kbukum/travelgate/mapping"
	"github.com/kbukum/travelgate/util"
	"github.com/kbukum/travelgate/version"
)

// Client posts GraphQL documents to a provider endpoint. Safe for
// concurrent use; it holds no mutable state after construction.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// New creates a transport client with the given configuration.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			httpTransport.TLSClientConfig = tlsCfg
		}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: httpTransport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log.WithComponent("transport"),
	}, nil
}

// Post sends one GraphQL request to endpoint and decodes the JSON response.
// Exactly one attempt is made; any network, HTTP-status or decode failure
// surfaces as a TRANSPORT_ERROR.
func (c *Client) Post(ctx context.Context, endpoint string, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, endpoint, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Transport("request canceled or timed out", err)
		}
		c.log.Error("request failed", logger.Fields(
			logger.FieldEndpoint, endpoint,
			logger.FieldError, err.Error(),
		))
		return nil, errors.Transport("connection failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, errors.Transport("read response body", err)
	}
	body := buf.Bytes()

	c.log.Debug("request completed", logger.Fields(
		logger.FieldEndpoint, endpoint,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
		logger.FieldRequestID, req.Auth.RequestID,
		"api_key", util.MaskSecret(req.Auth.APIKey, 8),
	))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Transport(
			fmt.Sprintf("provider returned HTTP %d", resp.StatusCode), nil)
	}

	var data mapping.Object
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, errors.Transport("decode response body", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Data:       data,
	}, nil
}

// buildRequest constructs the *http.Request for one GraphQL call.
func (c *Client) buildRequest(ctx context.Context, endpoint string, req Request) (*http.Request, error) {
	if endpoint == "" {
		return nil, errors.InvalidConfig("transport: endpoint is required")
	}
	url := strings.TrimRight(endpoint, "/") + "/"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Transport("encode request body", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Transport("create request", err)
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())
	req.Auth.apply(httpReq)

	return httpReq, nil
}
