// Package fetch retrieves rendered pages from the target CMS and pulls the
// server-assigned node id out of the markup.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/contentops/migratekit/pkg/migrate/htmlscan"
)

const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 20 * time.Second

	// DefaultUserAgent identifies the toolkit to the target site.
	DefaultUserAgent = "migratekit-nodeid-fetch/1.0 (+https://www.lifeline.org.au)"

	containerTag = "article"
	nodeIDAttr   = "data-history-node-id"
)

// Client fetches pages with an identifying User-Agent and a bounded timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a page fetcher. Zero timeout and empty userAgent fall
// back to the package defaults.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// FindNodeID fetches url and extracts the node id from the first article tag
// that carries one. found is false when the page rendered without an id;
// transport failures and non-200 responses are returned as errors.
func (c *Client) FindNodeID(ctx context.Context, url string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	// Decode using the declared charset, falling back to utf-8 with
	// replacement on bad bytes.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", false, fmt.Errorf("decode %s: %w", url, err)
	}

	id, ok := htmlscan.FirstAttr(body, containerTag, nodeIDAttr)
	return id, ok, nil
}
