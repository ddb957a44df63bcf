package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError represents a non-200 response from the warframe.market API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wfmarket api error %d: %s", e.StatusCode, e.Message)
}

// admit blocks until the rate limiter grants a slot or ctx is cancelled.
// Denials are retried after a fixed backoff: the limiter's window reset
// guarantees forward progress, so the loop needs no growth or bound.
func (c *Client) admit(ctx context.Context, path string) error {
	for attempt := 0; ; attempt++ {
		if c.limiter == nil || c.limiter.TryAdmit() {
			return nil
		}

		c.logger.Warn("request limit reached, retrying",
			"backoff", c.retryBackoff,
			"attempt", attempt+1,
			"path", path,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryBackoff):
		}
	}
}

// getPayload performs one logical GET and decodes the response envelope's
// payload field into out. A 200 with no payload field decodes to the zero
// value of out with a warning; the caller treats that as empty, not failed.
func (c *Client) getPayload(ctx context.Context, path string, out any) error {
	if err := c.admit(ctx, path); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	var envelope struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if len(envelope.Payload) == 0 || string(envelope.Payload) == "null" {
		c.logger.Warn("response has no payload field", "path", path)
		return nil
	}

	if err := json.Unmarshal(envelope.Payload, out); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	return nil
}
