package identityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP client for the staff identity service. The service owns
// authentication and role assignment for the whole suite; this backend only
// asks it who a user is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates an identity service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaff fetches the staff record for a user ID
func (c *Client) GetStaff(ctx context.Context, userID int64) (*Staff, error) {
	url := fmt.Sprintf("%s/internal/staff/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrStaffNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var staff Staff
	if err := json.NewDecoder(resp.Body).Decode(&staff); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &staff, nil
}

// IsAdmin reports whether the user has an active admin account.
// Unknown users and identity-service failures both resolve to false; callers
// treat "cannot prove admin" as "not admin".
func (c *Client) IsAdmin(ctx context.Context, userID int64) bool {
	staff, err := c.GetStaff(ctx, userID)
	if err != nil {
		if err != ErrStaffNotFound {
			c.log.Error("IsAdmin: identity service lookup failed for user=%d: %v", userID, err)
		}
		return false
	}
	return staff.IsActive && staff.IsAdmin()
}
