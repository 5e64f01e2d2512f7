package catalog

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
)

// Fetcher retrieves the catalog item list.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]Item, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the public anime catalog API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultEndpoint is the catalog listing the view shows.
	DefaultEndpoint  = "https://api.jikan.moe/v4/anime"
	defaultUserAgent = "animeshelf/0.1"
	maxBodyBytes     = 16 << 20
)

// NewClient builds a Client for the given endpoint URL. The request carries no
// timeout; callers bound it through the context.
func NewClient(endpoint string) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint:  u,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the resolved catalog URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// FetchCatalog issues the single catalog read and decodes its item list.
func (c *Client) FetchCatalog(ctx context.Context) ([]Item, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	items, err := decodeCatalog(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	return items, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("api %s returned status %d", c.endpoint.String(), resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	return body, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse endpoint %q", endpoint)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.Errorf("endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
