package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// RequestTimeout is how long a single webhook POST may take.
// There are no retries: one request per channel per dispatch.
const RequestTimeout = 10 * time.Second

// Standard sentinel errors for webhook replies.
var (
	// ErrBadRequest indicates the destination rejected the payload.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized indicates an invalid webhook URL or token.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrRateLimited indicates the destination rate limit was exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServerError indicates a destination-side error.
	ErrServerError = errors.New("server error")
)

// APIError represents a non-2xx reply from a destination webhook.
type APIError struct {
	// Service is the channel name (e.g., "teams", "feishu").
	Service string

	// StatusCode is the HTTP status code returned.
	StatusCode int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s webhook returned %d", e.Service, e.StatusCode)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 400:
		return ErrBadRequest
	case e.StatusCode == 401 || e.StatusCode == 403:
		return ErrUnauthorized
	case e.StatusCode == 429:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServerError
	default:
		return nil
	}
}

// newHTTPClient returns the client every channel shares the settings of.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: RequestTimeout}
}

// postJSON sends payload to url and returns the parsed JSON reply.
// This is the single transport primitive shared by all channels.
func postJSON(ctx context.Context, client *http.Client, service, url string, payload any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", service, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", service, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s message: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Service: service, StatusCode: resp.StatusCode}
	}

	var reply any
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", service, err)
	}
	return reply, nil
}
