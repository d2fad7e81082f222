package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API defines the backend operations the UI depends on. It is implemented by
// *Client and can be faked in tests.
type API interface {
	ListBooks(ctx context.Context, query Query) ([]Book, error)
	CreateBook(ctx context.Context, draft Draft) error
	DeleteBook(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the catalog backend's REST surface.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "127.0.0.1:8000"
	defaultUserAgent = "bookdeck/0.1"
	requestTimeout   = 5 * time.Second

	// Error bodies are short plain text; cap the read so a misbehaving
	// backend cannot balloon the banner.
	maxErrorBody = 4 << 10
)

// StatusError reports a non-success HTTP response. Message holds the
// response body text when the backend sent one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Code)
}

// NewClient builds a Client for the given base URL. A bare host:port value
// is accepted and normalized to http.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListBooks retrieves the catalog, optionally filtered by free text and
// category. Filter parameters are sent only when non-empty.
func (c *Client) ListBooks(ctx context.Context, query Query) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if text := strings.TrimSpace(query.Text); text != "" {
		values.Set("q", text)
	}
	if category := strings.TrimSpace(query.Category); category != "" {
		values.Set("category", category)
	}
	rel := &url.URL{Path: "/api/books", RawQuery: values.Encode()}
	var books []Book
	if err := c.do(ctx, http.MethodGet, rel, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook submits a new book record. The created record in the response
// body is not inspected; success is signalled by the status alone.
func (c *Client) CreateBook(ctx context.Context, draft Draft) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	rel := &url.URL{Path: "/api/books"}
	return c.do(ctx, http.MethodPost, rel, draft, nil)
}

// DeleteBook removes the book with the given id.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return fmt.Errorf("book id required")
	}
	rel := &url.URL{Path: "/api/books/" + strconv.FormatInt(id, 10)}
	return c.do(ctx, http.MethodDelete, rel, nil, nil)
}

// Ping probes the backend's reachability endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, &url.URL{Path: "/test"}, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, payload, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(text)),
		}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
