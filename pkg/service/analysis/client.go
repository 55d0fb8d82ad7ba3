package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
	"github.com/oneirolab/dreamvault/pkg/utils/safe"
)

const defaultTimeout = 30 * time.Second

// Client calls the remote dream analysis endpoint. One request per
// user-initiated analyze action; no automatic retry.
type Client struct {
	endpoint   string
	apiKey     string
	userID     string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (used by tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserID sets the user identifier sent with each request
func WithUserID(userID string) Option {
	return func(c *Client) {
		c.userID = userID
	}
}

// WithTimeout sets the request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates an analysis client for the given endpoint and API key
func New(endpoint, apiKey string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, goerr.New("analysis endpoint is required")
	}
	if apiKey == "" {
		return nil, goerr.New("analysis API key is required")
	}

	c := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		userID:     "1",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Analyze submits the dream content for interpretation. It returns
// ErrUninterpretable (wrapped) when the endpoint answers without an
// analysis; other errors are transport failures whose message, when the
// endpoint supplied one, is surfaced verbatim.
func (c *Client) Analyze(ctx context.Context, content string, date time.Time) (*Result, error) {
	body, err := json.Marshal(request{
		DreamContent: content,
		DreamDate:    date.Format(time.RFC3339),
		UserID:       c.userID,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode analysis request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build analysis request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "analysis request failed")
	}
	defer safe.Close(ctx, resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read analysis response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(data, resp.StatusCode)
	}

	var parsed response
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, remoteError(data, resp.StatusCode)
	}

	if parsed.Analysis == nil || *parsed.Analysis == "" {
		return nil, goerr.Wrap(ErrUninterpretable, "analysis response has no content")
	}

	result := &Result{
		Narrative:      *parsed.Analysis,
		Symbols:        parsed.Symbols,
		SentimentScore: parsed.SentimentScore,
	}
	if parsed.Theme != nil {
		result.Theme = *parsed.Theme
	}
	if parsed.Timestamp != nil {
		ts, err := time.Parse(time.RFC3339, *parsed.Timestamp)
		if err != nil {
			logging.From(ctx).Warn("analysis response has malformed timestamp",
				"timestamp", *parsed.Timestamp)
		} else {
			result.Timestamp = ts
		}
	}

	return result, nil
}

// remoteError surfaces the endpoint's own error string verbatim when the
// body carries one, and a generic message otherwise.
func remoteError(body []byte, statusCode int) error {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && *parsed.Error != "" {
		return goerr.New(*parsed.Error, goerr.V("status", statusCode))
	}
	return goerr.New("analysis service returned an unexpected response", goerr.V("status", statusCode))
}
