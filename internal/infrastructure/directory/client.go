// Package directory talks to the upstream reference-data directory that
// serves dropdown option lists (cities, law types, languages, ...). The
// upstream nests its payloads inconsistently, so decoding goes through an
// explicit normalization boundary instead of leaking shape guesses into the
// callers.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrRateLimited is returned once the capped backoff on HTTP 429 is
	// exhausted.
	ErrRateLimited = errors.New("directory rate limit not cleared within retry budget")
)

// Option is one selectable entry as served by the directory.
type Option struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// Client fetches reference options over HTTP with bounded exponential
// backoff on 429 responses. Other failures are returned immediately; the
// retry budget exists only for rate limiting.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	log         *logrus.Logger
	maxRetries  int
	backoffBase time.Duration
}

// NewClient creates a directory client. maxRetries caps the 429 retry loop;
// backoffBase is the first retry delay and doubles per attempt.
func NewClient(baseURL string, timeout time.Duration, maxRetries int, backoffBase time.Duration, log *logrus.Logger) *Client {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if backoffBase <= 0 {
		backoffBase = 500 * time.Millisecond
	}
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
	}
}

// FetchOptions retrieves the option list for one reference kind.
func (c *Client) FetchOptions(ctx context.Context, kind string) ([]Option, error) {
	endpoint := fmt.Sprintf("%s/options/%s", c.baseURL, url.PathEscape(kind))

	delay := c.backoffBase
	for attempt := 0; ; attempt++ {
		options, retryable, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			return options, nil
		}
		if !retryable {
			return nil, err
		}
		if attempt >= c.maxRetries {
			c.log.Warnf("Directory still rate limiting %s after %d retries", kind, c.maxRetries)
			return nil, ErrRateLimited
		}

		c.log.Debugf("Directory rate limited for %s, retrying in %v", kind, delay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) (options []Option, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build directory request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read directory response: %w", err)
	}

	options, err = NormalizeOptions(body)
	if err != nil {
		return nil, false, err
	}
	return options, false, nil
}

// NormalizeOptions decodes a directory payload regardless of how deeply the
// upstream happens to have nested it. Fallback order: result.data.data,
// then result.data, then a bare top-level array. Anything else is an error,
// never a silent empty list.
func NormalizeOptions(body []byte) ([]Option, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		// Inner envelope: {"data": {"data": [...]}}
		var inner struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(envelope.Data, &inner); err == nil && len(inner.Data) > 0 {
			var options []Option
			if err := json.Unmarshal(inner.Data, &options); err == nil {
				return options, nil
			}
		}

		// Single envelope: {"data": [...]}
		var options []Option
		if err := json.Unmarshal(envelope.Data, &options); err == nil {
			return options, nil
		}
	}

	// Bare array: [...]
	var options []Option
	if err := json.Unmarshal(body, &options); err == nil {
		return options, nil
	}

	return nil, fmt.Errorf("directory payload has no recognizable shape: %s", truncate(body, 120))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
