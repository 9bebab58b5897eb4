package logs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"logview/internal/api"
)

var ErrAPIUnavailable = errors.New("log API unavailable")

// Client fetches the latest log from a running logview server.
type Client struct {
	base *url.URL
	http *http.Client
}

func NewClient(bind string) (*Client, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, nil
	}
	if !strings.Contains(bind, "://") {
		bind = "http://" + bind
	}
	base, err := url.Parse(bind)
	if err != nil {
		return nil, err
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""

	return &Client{
		base: base,
		// Timeouts are left to the caller's context.
		http: &http.Client{},
	}, nil
}

// Fetch calls /api/logs. A server-side fetch failure is returned as a
// response with Status "error", not as a Go error; Go errors are reserved for
// transport problems.
func (c *Client) Fetch(ctx context.Context) (api.LogsResponse, error) {
	if c == nil {
		return api.LogsResponse{}, ErrAPIUnavailable
	}

	endpoint := c.base.ResolveReference(&url.URL{Path: "/api/logs"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return api.LogsResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return api.LogsResponse{}, err
	}
	defer resp.Body.Close()

	var payload api.LogsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if resp.StatusCode >= 400 {
			return api.LogsResponse{}, fmt.Errorf("api logs returned status %d", resp.StatusCode)
		}
		return api.LogsResponse{}, err
	}
	if resp.StatusCode >= 400 && payload.Status == "" {
		return api.LogsResponse{}, fmt.Errorf("api logs returned status %d", resp.StatusCode)
	}
	return payload, nil
}

func IsAPIUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	var opErr *net.OpError
	return errors.Is(err, ErrAPIUnavailable) || errors.As(err, &opErr)
}
