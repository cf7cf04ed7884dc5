// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hipchat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bureau-foundation/hipchat/lib/netutil"
	"github.com/bureau-foundation/hipchat/lib/secret"
	"github.com/bureau-foundation/hipchat/lib/version"
)

// DefaultBaseURL is the hosted HipChat API.
const DefaultBaseURL = "https://api.hipchat.com"

// ClientConfig holds the configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the API root (e.g., "https://api.hipchat.com"). The
	// "/v1/" prefix is appended per request. Defaults to DefaultBaseURL.
	BaseURL string

	// AuthToken is the API token sent as the auth_token parameter on
	// every request. Required. NewClient copies it into protected
	// memory; the caller's string is not retained.
	AuthToken string

	// HTTPClient is the HTTP client to use. If nil, a client built by
	// netutil.NewHTTPClient from Transport and Timeout is used. A
	// supplied client is copied and its transport wrapped so that the
	// auth token is added outermost: instrumentation inside that
	// transport sees the token. To record metrics or spans, leave
	// HTTPClient nil and configure Transport instead.
	HTTPClient *http.Client

	// Transport configures the default HTTP client. Set Metrics (from
	// netutil.NewTransportMetrics, registered by the caller) to export
	// Prometheus request counters, and TracerProvider to choose where
	// client spans go. Authorize is chained after the auth token is
	// added. Ignored when HTTPClient is set.
	Transport netutil.TransportConfig

	// Timeout bounds each request made by the default HTTP client.
	// Defaults to netutil.DefaultTimeout. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the HipChat v1 REST API. It is safe for concurrent use
// when its HTTP client is.
type Client struct {
	baseURL    string
	authToken  *secret.Buffer
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Client. Call Close when done to release the
// token memory.
func NewClient(config ClientConfig) (*Client, error) {
	if config.AuthToken == "" {
		return nil, fmt.Errorf("hipchat: auth token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("hipchat: invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("hipchat: base URL %q must use http or https", baseURL)
	}

	authToken, err := secret.NewFromString(config.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("hipchat: protecting auth token: %w", err)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		logger:    logger,
	}

	if config.HTTPClient != nil {
		httpClient := *config.HTTPClient
		httpClient.Transport = netutil.AuthorizeTransport(httpClient.Transport, client.authorize)
		client.httpClient = &httpClient
	} else {
		transport := config.Transport
		chained := transport.Authorize
		transport.Authorize = func(request *http.Request) {
			client.authorize(request)
			if chained != nil {
				chained(request)
			}
		}
		client.httpClient = netutil.NewHTTPClient(transport)
		if config.Timeout > 0 {
			client.httpClient.Timeout = config.Timeout
		}
	}

	return client, nil
}

// authorize adds the auth token to an outgoing request. It runs inside
// the transport, below tracing and metrics, so the token stays out of
// span attributes and of the URL carried by *url.Error.
func (c *Client) authorize(request *http.Request) {
	query := request.URL.Query()
	query.Set("auth_token", c.authToken.String())
	request.URL.RawQuery = query.Encode()
}

// New creates a Client for the hosted API with default transport and
// logging.
func New(authToken string) (*Client, error) {
	return NewClient(ClientConfig{AuthToken: authToken})
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the auth token memory. The client must not be used
// afterwards.
func (c *Client) Close() error {
	return c.authToken.Close()
}

// doRequest performs one API round trip against /v1/{service}. GET
// requests carry params in the query string; other methods send them as
// a form-encoded body. The auth token is added by the transport. Returns
// the response body on HTTP 200, or an error (an *APIError for any other
// status).
func (c *Client) doRequest(ctx context.Context, method, service string, params url.Values) ([]byte, error) {
	query := url.Values{}
	query.Set("format", "json")

	var body io.Reader
	if method == http.MethodGet {
		for key, values := range params {
			query[key] = values
		}
	} else if params != nil {
		body = strings.NewReader(params.Encode())
	}

	requestURL := c.baseURL + "/v1/" + service + "?" + query.Encode()
	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("hipchat: creating %s request for %s: %w", method, service, err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", version.UserAgent())

	response, err := c.httpClient.Do(request)
	if err != nil {
		var urlError *url.Error
		if errors.As(err, &urlError) {
			err = urlError.Err
		}
		return nil, fmt.Errorf("hipchat: %s %s failed: %w", method, service, err)
	}
	defer response.Body.Close()

	c.logger.Debug("hipchat request",
		"method", method,
		"service", service,
		"status", response.StatusCode,
		"token", c.authToken.Fingerprint(),
	)

	if !responseOK(response.StatusCode, err) {
		return nil, newAPIError(response.StatusCode, []byte(netutil.ErrorBody(response.Body)))
	}

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("hipchat: reading %s response: %w", service, err)
	}
	return responseBody, nil
}
