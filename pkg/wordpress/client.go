package wordpress

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/aster/pkg/metrics"
	"github.com/Ramsey-B/aster/pkg/tracing"
)

const (
	// DefaultTimeout is the default request timeout
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum response body size (10MB)
	MaxResponseSize = 10 * 1024 * 1024
)

// Config holds HTTP client configuration
type Config struct {
	Timeout         time.Duration
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// DefaultConfig returns default HTTP client configuration
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	}
}

// Client executes RequestSpecs against a WordPress instance. It owns no retry
// or caching policy: each call produces exactly one Outcome, and cancellation
// is inherited from the context and the configured timeout.
type Client struct {
	client *http.Client
	logger ectologger.Logger
}

// NewClient creates a new WordPress API client
func NewClient(cfg Config, logger ectologger.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:    cfg.MaxIdleConns,
		IdleConnTimeout: cfg.IdleConnTimeout,
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

// Outcome is the tagged result of one remote call. A non-zero StatusCode
// means a response was received and Body holds its (possibly empty) payload;
// Err is set only when no response arrived at all.
type Outcome struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Received reports whether a response with a status code was received.
func (o Outcome) Received() bool {
	return o.StatusCode != 0
}

// Do executes a request spec and returns the outcome. Transport failures are
// reported through the Outcome rather than a separate error return so callers
// classify every result through a single path.
func (c *Client) Do(ctx context.Context, spec RequestSpec) Outcome {
	ctx, span := tracing.StartSpan(ctx, "wordpress.Client.Do")
	defer span.End()

	req, err := newRequest(ctx, spec)
	if err != nil {
		return Outcome{Err: err}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(spec.Method, "transport_error").Inc()
		c.logger.WithContext(ctx).WithError(err).Errorf("wordpress request failed: %s %s", spec.Method, spec.URI)
		return Outcome{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	metrics.RemoteRequestsTotal.WithLabelValues(spec.Method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RemoteRequestDuration.WithLabelValues(spec.Method).Observe(duration.Seconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return Outcome{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(body) > MaxResponseSize {
		return Outcome{Err: fmt.Errorf("response body too large: %d bytes (max %d)", len(body), MaxResponseSize)}
	}

	c.logger.WithContext(ctx).Debugf("wordpress %s %s -> %d (%s)",
		spec.Method, spec.URI, resp.StatusCode, duration)

	return Outcome{StatusCode: resp.StatusCode, Body: body}
}

// newRequest converts a RequestSpec into an *http.Request
func newRequest(ctx context.Context, spec RequestSpec) (*http.Request, error) {
	uri := spec.URI
	if len(spec.Query) > 0 {
		uri += "?" + spec.Query.Encode()
	}

	var bodyReader io.Reader
	if len(spec.Body) > 0 {
		bodyReader = strings.NewReader(spec.Body.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, uri, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if len(spec.Body) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.SetBasicAuth(spec.Auth.Username, spec.Auth.Password)

	return req, nil
}
