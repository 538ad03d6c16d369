package apifootball

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"football-data-service/internal/logging"
	"football-data-service/internal/metrics"
	"football-data-service/internal/providers"
)

// Config controls how the client reaches the football API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Client fetches football data from the upstream API and maps it to domain
// models. Every call classifies its outcome: a payload, a rate limit, an
// upstream error status, or an unreachable provider.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// NewClient constructs an API client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := normalizeBaseURL(cfg.BaseURL)
	logger := cfg.Logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldProvider, providerName))
	}
	return &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		host:       apiHost(base),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     logger,
		recorder:   cfg.Recorder,
	}
}

// envelope is the upstream response wrapper. Response stays nil when the body
// lacks the response key entirely, which marks the payload as malformed.
type envelope struct {
	Response json.RawMessage `json:"response"`
}

// get performs one upstream call and returns the raw response payload.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	start := time.Now()
	payload, err := c.fetch(ctx, endpoint, query)
	c.recorder.RecordUpstreamCall(endpoint, time.Since(start), err)

	if rlErr, ok := providers.AsRateLimitError(err); ok {
		c.recorder.RecordRateLimit(endpoint, rlErr.RetryAfter)
	}
	if err != nil {
		logging.Error(c.logger, "upstream call failed", err, slog.String(logging.FieldEndpoint, endpoint))
	}
	return payload, err
}

func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	req, err := c.buildRequest(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "calling %s", endpoint), providers.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.RateLimitError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s response", endpoint), providers.ErrUnavailable)
	}

	var env envelope
	if decodeErr := sonic.Unmarshal(body, &env); decodeErr != nil {
		return nil, errors.Mark(errors.Wrapf(decodeErr, "decoding %s response", endpoint), providers.ErrMalformed)
	}
	if env.Response == nil {
		return nil, errors.Wrapf(providers.ErrMalformed, "%s response missing response field", endpoint)
	}
	return env.Response, nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
		req.Header.Set(headerAPIHost, c.host)
	}
	return req, nil
}

// decodeRows unmarshals the response payload into typed rows. The upstream
// wraps every list endpoint in the same array shape.
func decodeRows[T any](endpoint string, raw json.RawMessage) ([]T, error) {
	var rows []T
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decoding %s rows", endpoint), providers.ErrMalformed)
	}
	return rows, nil
}

// unmarshalObject decodes an object-shaped response payload. A few endpoints
// (teams/statistics) return a single object instead of the usual array.
func unmarshalObject(endpoint string, raw json.RawMessage, dst any) error {
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return errors.Mark(errors.Wrapf(err, "decoding %s payload", endpoint), providers.ErrMalformed)
	}
	return nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(header)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
