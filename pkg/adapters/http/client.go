package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aretw0/orderbot/pkg/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// DefaultMenuURL is the public pizza API used when no URL is configured.
const DefaultMenuURL = "https://demos.swe.htwk-leipzig.de/pizza-api/pizza"

// DefaultTimeout bounds one menu fetch.
const DefaultTimeout = 10 * time.Second

const maxMenuBody = 1 << 20

// MenuClient implements ports.MenuService against a remote HTTP endpoint.
// Every ListItems call performs exactly one GET; there is no caching or retry.
type MenuClient struct {
	url    string
	client *http.Client
	schema *jsonschema.Schema
}

// ClientOption configures a MenuClient.
type ClientOption func(*MenuClient)

// WithHTTPClient replaces the underlying client (its timeout included).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(m *MenuClient) {
		if c != nil {
			m.client = c
		}
	}
}

// WithTimeout bounds each request. Zero or negative disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(m *MenuClient) {
		if d < 0 {
			d = 0
		}
		m.client.Timeout = d
	}
}

// NewMenuClient creates a client for url, or DefaultMenuURL when url is empty.
func NewMenuClient(url string, opts ...ClientOption) (*MenuClient, error) {
	if url == "" {
		url = DefaultMenuURL
	}
	sch, err := compileMenuSchema()
	if err != nil {
		return nil, err
	}
	m := &MenuClient{
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
		schema: sch,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// URL returns the endpoint the client calls.
func (m *MenuClient) URL() string { return m.url }

// ListItems fetches the menu. Transport failures, non-2xx responses and bodies
// that do not match the menu schema are reported as *domain.ValidationServiceError.
func (m *MenuClient) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url, nil)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, m.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxMenuBody))
		return nil, m.fail(resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMenuBody))
	if err != nil {
		return nil, m.fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	if err := checkMenuBody(m.schema, body); err != nil {
		return nil, m.fail(0, err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, m.fail(0, fmt.Errorf("decode menu: %w", err))
	}
	return items, nil
}

func (m *MenuClient) fail(status int, err error) error {
	return &domain.ValidationServiceError{URL: m.url, StatusCode: status, Err: err}
}
