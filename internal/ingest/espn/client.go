package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches ESPN API endpoints. Responses come back as raw bytes so
// each route picks its own typed decode.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates an ESPN API client with default settings.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: "Mozilla/5.0 (compatible; ScorefeedBot/1.0)",
	}
}

// Get performs an HTTP GET and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ESPN API error: status=%d, body=%s", resp.StatusCode, truncate(body, 200))
	}

	// Blocked or missing resources come back as HTML error pages.
	if len(body) > 0 && body[0] == '<' {
		return nil, fmt.Errorf("ESPN returned HTML error page: %s", truncate(body, 200))
	}

	return body, nil
}

func truncate(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
