// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds a single request when the caller does not supply
// an *http.Client of its own.
const DefaultTimeout = 30 * time.Second

// TransportMetrics holds the client-side Prometheus collectors. Labels
// follow promhttp conventions: "code" is the status code, "method" is the
// lower-cased HTTP method.
type TransportMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewTransportMetrics creates unregistered collectors under namespace.
func NewTransportMetrics(namespace string) *TransportMetrics {
	return &TransportMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_requests_total",
			Help:      "HTTP requests sent to the upstream API, by status code and method.",
		}, []string{"code", "method"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "client_request_duration_seconds",
			Help:      "Round-trip latency of upstream API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "client_requests_in_flight",
			Help:      "Upstream API requests currently awaiting a response.",
		}),
	}
}

// Register registers every collector with registerer.
func (m *TransportMetrics) Register(registerer prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{m.Requests, m.Duration, m.InFlight} {
		if err := registerer.Register(collector); err != nil {
			return fmt.Errorf("registering transport metrics: %w", err)
		}
	}
	return nil
}

// TransportConfig configures NewTransport.
type TransportConfig struct {
	// Base is the innermost RoundTripper. If nil, http.DefaultTransport
	// is used.
	Base http.RoundTripper

	// Metrics, when set, records request counts, latency, and in-flight
	// requests. Registration is the caller's responsibility.
	Metrics *TransportMetrics

	// TracerProvider receives client spans. If nil, the global
	// provider is used (a no-op unless the process installed one).
	TracerProvider trace.TracerProvider

	// Authorize, when set, adds credentials to each request after
	// tracing and metrics have observed it. Anything it writes into the
	// URL or headers never reaches span attributes.
	Authorize func(*http.Request)
}

// AuthorizeTransport returns a RoundTripper that applies authorize to a
// clone of each request before passing it to base.
func AuthorizeTransport(base http.RoundTripper, authorize func(*http.Request)) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authorizingTransport{base: base, authorize: authorize}
}

type authorizingTransport struct {
	base      http.RoundTripper
	authorize func(*http.Request)
}

func (t *authorizingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request = request.Clone(request.Context())
	t.authorize(request)
	return t.base.RoundTrip(request)
}

// NewTransport wraps the base RoundTripper with, from the outside in:
// OpenTelemetry client spans, Prometheus metrics (when configured),
// gzip/zstd response decompression, and request authorization (when
// configured).
func NewTransport(config TransportConfig) http.RoundTripper {
	base := config.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if config.Authorize != nil {
		base = AuthorizeTransport(base, config.Authorize)
	}

	var transport http.RoundTripper = gzhttp.Transport(base)

	if config.Metrics != nil {
		transport = promhttp.InstrumentRoundTripperInFlight(config.Metrics.InFlight,
			promhttp.InstrumentRoundTripperCounter(config.Metrics.Requests,
				promhttp.InstrumentRoundTripperDuration(config.Metrics.Duration, transport),
			),
		)
	}

	options := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, request *http.Request) string {
			return request.Method + " " + request.URL.Path
		}),
	}
	if config.TracerProvider != nil {
		options = append(options, otelhttp.WithTracerProvider(config.TracerProvider))
	}
	return otelhttp.NewTransport(transport, options...)
}

// NewHTTPClient returns an *http.Client using NewTransport(config) and
// DefaultTimeout.
func NewHTTPClient(config TransportConfig) *http.Client {
	return &http.Client{
		Transport: NewTransport(config),
		Timeout:   DefaultTimeout,
	}
}
