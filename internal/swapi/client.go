package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Catalog defines the calls the crawler makes against the catalog API.
// It is implemented by *Client and can be faked in tests.
type Catalog interface {
	FetchFilms(ctx context.Context) ([]Film, error)
	FetchCharacter(ctx context.Context, ref string) (Character, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// Client talks to a SWAPI-compatible HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public catalog used when none is configured.
	DefaultBaseURL   = "https://swapi.dev/api/"
	defaultUserAgent = "swcrawl/0.1"
)

// NewClient builds a Client rooted at baseURL. A zero timeout disables the
// per-request deadline.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchFilms retrieves the first page of the film listing. Pagination is not
// followed; the catalog returns every film on one page.
func (c *Client) FetchFilms(ctx context.Context) ([]Film, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload FilmListResponse
	if err := c.get(ctx, &url.URL{Path: "films/"}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FetchCharacter retrieves a single character by its reference. Absolute
// URLs are used as-is; relative references resolve against the API root.
func (c *Client) FetchCharacter(ctx context.Context, ref string) (Character, error) {
	if c == nil {
		return Character{}, fmt.Errorf("client is nil")
	}
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return Character{}, fmt.Errorf("character reference is empty")
	}
	rel, err := url.Parse(trimmed)
	if err != nil {
		return Character{}, fmt.Errorf("parse character reference %q: %w", ref, err)
	}
	var payload Character
	if err := c.get(ctx, rel, &payload); err != nil {
		return Character{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
