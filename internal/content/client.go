// internal/content/client.go
//
// CMS query client, scoped to one locale per call.
//
// Context
// -------
// The CMS exposes a single GraphQL-over-HTTP endpoint.  This wrapper
// owns exactly two jobs: convert the negotiated standard-form locale
// back to the CMS-native source form, and attach it as the $locale
// variable on the outgoing query.  Everything else — caching, retries,
// batching, persisted queries — belongs to the CMS side and is
// deliberately absent here.
//
// Failure semantics
// -----------------
// Transport errors, non-2xx statuses, and GraphQL-level errors all
// surface as *SourceError so callers can distinguish "the CMS failed"
// from their own bugs.  Nothing is swallowed; this layer has no
// fallback content to serve.
//
// Notes
// -----
// • One outbound POST per Query call, no more.
// • Request timeout comes from the injected http.Client; this package
//   sets no policy of its own.
// • Oxford commas, two spaces after periods.

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/polyglot/internal/locale"
	"github.com/yanizio/polyglot/internal/metrics"
)

// SourceError reports a failed CMS call: transport trouble, an
// unexpected HTTP status, or errors in the GraphQL response envelope.
type SourceError struct {
	Status   int    // HTTP status when one was received, else 0
	Messages []string
	Err      error // transport or decode cause, may be nil
}

func (e *SourceError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("content source: %v", e.Err)
	case len(e.Messages) > 0:
		return fmt.Sprintf("content source: %s", e.Messages[0])
	default:
		return fmt.Sprintf("content source: status %d", e.Status)
	}
}

func (e *SourceError) Unwrap() error { return e.Err }

// Client issues locale-scoped queries against the CMS endpoint.  Safe
// for concurrent use; construct with New.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

// New returns a Client bound to the given endpoint.  token may be empty
// for unauthenticated CMS instances.  hc must not be nil; its Timeout
// is the only cancellation policy this client applies.
func New(endpoint, token string, hc *http.Client) *Client {
	return &Client{endpoint: endpoint, token: token, http: hc}
}

// envelope is the standard GraphQL response shape.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query executes one query document scoped to a single locale and
// returns the raw data payload.  The locale is converted to source form
// and injected as the "locale" variable, overwriting any caller-set
// value, so exactly one locale is ever requested per call.
func (c *Client) Query(ctx context.Context, loc locale.Locale, document string, vars map[string]any) (json.RawMessage, error) {
	src, err := loc.Source()
	if err != nil {
		return nil, fmt.Errorf("content: bad locale: %w", err)
	}

	if vars == nil {
		vars = make(map[string]any, 1)
	}
	vars["locale"] = src

	body, err := json.Marshal(map[string]any{
		"query":     document,
		"variables": vars,
	})
	if err != nil {
		return nil, fmt.Errorf("content: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("content: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	metrics.ContentQueryTotal.Inc()
	timer := metrics.NewQueryTimer()
	resp, err := c.http.Do(req)
	timer.ObserveDuration()
	if err != nil {
		metrics.ContentQueryErrorsTotal.Inc()
		return nil, &SourceError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ContentQueryErrorsTotal.Inc()
		// Drain so the connection can be reused before the error path.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &SourceError{Status: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.ContentQueryErrorsTotal.Inc()
		return nil, &SourceError{Status: resp.StatusCode, Err: err}
	}

	if len(env.Errors) > 0 {
		metrics.ContentQueryErrorsTotal.Inc()
		msgs := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			msgs[i] = e.Message
		}
		zap.S().Warnw("cms query errors", "locale", src, "errors", msgs)
		return nil, &SourceError{Status: resp.StatusCode, Messages: msgs}
	}

	return env.Data, nil
}
