// Package extractor fetches raw user records from the source API.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"userpipe/internal/logger"
	"userpipe/internal/models"
)

// Extraction errors. Failures are fatal to the run; there is no retry.
var (
	ErrRequestTimeout       = errors.New("request timed out")
	ErrConnectionFailed     = errors.New("connection failed")
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrInvalidJSON          = errors.New("response is not valid JSON")
	ErrNotArray             = errors.New("expected API response to be an array")
)

// Client performs the HTTP extraction against the user API.
type Client struct {
	client *http.Client
	log    *logger.Logger
}

// NewClient creates a new extraction client with the given request timeout.
func NewClient(timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchUsers performs a single GET against the given URL and decodes the
// response body as a JSON array of user objects.
func (c *Client) FetchUsers(ctx context.Context, url string) ([]models.RawUser, error) {
	c.log.Info("fetching user data", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			c.log.Error("request timed out", "url", url)

			return nil, fmt.Errorf("%w: %s", ErrRequestTimeout, url)
		}

		c.log.Error("connection error occurred", "url", url, "error", err)

		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.log.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("http error occurred", "status", resp.StatusCode)

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	users, err := decodeUsers(body)
	if err != nil {
		c.log.Error("invalid response format", "error", err)

		return nil, err
	}

	c.log.Info("successfully extracted users", "count", len(users))

	return users, nil
}

// decodeUsers parses a JSON array of objects into raw user records.
func decodeUsers(body []byte) ([]models.RawUser, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	users := make([]models.RawUser, 0, len(items))

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrNotArray, i)
		}

		users = append(users, models.RawUser(obj))
	}

	return users, nil
}
