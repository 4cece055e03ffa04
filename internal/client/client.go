// Package client talks to a remote ftracker server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/report"
	"github.com/claude/ftracker/internal/training"
)

const maxAttempts = 3

// APIError is a non-2xx response from the server. It unwraps to the
// matching training sentinel so callers can use errors.Is on either side of
// the wire.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return training.ErrUnknownWorkoutKind
	case http.StatusBadRequest:
		return training.ErrMalformedReadings
	case http.StatusUnprocessableEntity:
		return training.ErrInvalidDomainValue
	}
	return nil
}

// Client sends packages to an ftracker server.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
	backoff    time.Duration
}

// New creates a client for the server at serverURL. apiKey may be empty.
func New(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoff: time.Second,
	}
}

// Compute asks the server for the report of one package.
func (c *Client) Compute(ctx context.Context, p models.Package) (*report.Report, error) {
	var rep report.Report
	if err := c.do(ctx, http.MethodPost, "/api/v1/reports", p, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Workouts fetches the workout kinds the server recognises.
func (c *Client) Workouts(ctx context.Context) ([]training.Kind, error) {
	var kinds []training.Kind
	if err := c.do(ctx, http.MethodGet, "/api/v1/workouts", nil, &kinds); err != nil {
		return nil, err
	}
	return kinds, nil
}

// do sends a request and decodes a JSON response into out. Transport errors
// and 5xx responses are retried with exponential backoff; other statuses are
// returned as *APIError immediately.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
	}

	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff * time.Duration(1<<uint(attempt-1))):
			}
		}

		retry, err := c.send(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		if !retry || ctx.Err() != nil {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, out any) (retry bool, err error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, rd)
	if err != nil {
		return false, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
		return resp.StatusCode >= 500, apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decoding response: %w", err)
	}
	return false, nil
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw text.
func errorMessage(data []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(data))
}

// IsAPIError reports whether err carries a server response.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
