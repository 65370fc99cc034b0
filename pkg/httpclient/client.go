// Package httpclient fetches JSON from upstream providers with a per-attempt
// timeout, a shared rate limiter and a fixed number of immediate retries.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"

	"datewise/pkg/utils"
)

const (
	DefaultTimeout    = 5 * time.Second
	DefaultMaxRetries = 2
	DefaultRateLimit  = 10
	DefaultBurst      = 5

	maxBodyBytes = 4 << 20
)

type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Fetcher interface {
	FetchJSON(ctx context.Context, req Request) (json.RawMessage, error)
}

type Options struct {
	Timeout    time.Duration
	MaxRetries int
	RateLimit  float64
	Burst      int
	UserAgent  string
}

type Client struct {
	http       *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	maxRetries int
	logger     *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "datewise/unknown"
	}

	transport := &AppendRequestHeadersRoundTripper{
		Headers: map[string]string{
			"User-Agent": opts.UserAgent,
			"Accept":     "application/json",
		},
		Transport: http.DefaultTransport,
	}

	return &Client{
		http:       &http.Client{Transport: transport},
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
		timeout:    opts.Timeout,
		maxRetries: opts.MaxRetries,
		logger:     logger,
	}
}

// WithHTTPClient swaps the underlying client. The header transport is kept
// only if the given client has no transport of its own.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc.Transport == nil {
		hc.Transport = c.http.Transport
	}
	c.http = hc
	return c
}

// FetchJSON performs req up to 1+MaxRetries times and returns the decoded
// body of the first 2xx response. Once the attempts are exhausted the last
// failure is reported as ErrUpstreamUnreachable.
func (c *Client) FetchJSON(ctx context.Context, req Request) (json.RawMessage, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		body, err := c.attempt(ctx, req)
		if err == nil {
			return body, nil
		}
		lastErr = err

		c.logger.Warn("external call failed",
			zap.Int("attempt", attempt+1),
			zap.String("method", req.Method),
			zap.String("url", RedactURL(req.URL)),
			zap.Error(err),
		)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, utils.NewUpstreamUnreachable("Failed to fetch places data.", lastErr)
}

func (c *Client) attempt(ctx context.Context, req Request) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, redactError(err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("response is not valid JSON (%d bytes)", len(raw))
	}

	return raw, nil
}

var secretParams = []string{"access_token", "key"}

// RedactURL hides credentials carried in the query string.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// url.Error embeds the full request URL, token included.
func redactError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return &url.Error{Op: uerr.Op, URL: RedactURL(uerr.URL), Err: uerr.Err}
	}
	return err
}

// AppendRequestHeadersRoundTripper adds headers to the request.
type AppendRequestHeadersRoundTripper struct {
	Transport http.RoundTripper
	Headers   map[string]string
}

// RoundTrip implements the http.RoundTripper interface.
func (t *AppendRequestHeadersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range t.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	return t.Transport.RoundTrip(req)
}
