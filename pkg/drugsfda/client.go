package drugsfda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hazyhaar/drugreg/pkg/convert"
)

const (
	defaultBaseURL  = "https://api.fda.gov/drug/drugsfda.json"
	defaultPageSize = 500

	// maxRecords caps pagination so an over-broad search expression cannot
	// walk the whole corpus.
	maxRecords = 25000
)

// Client queries the Drugs@FDA endpoint and pages through results
// sequentially with the API's skip/limit scheme.
type Client struct {
	base     string
	http     *http.Client
	log      *slog.Logger
	policy   convert.Policy
	pageSize int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option { return func(c *Client) { c.base = u } }

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithLogger sets the logger used for request and normalization reporting.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.log = l } }

// WithPolicy selects the normalization policy (lenient by default).
func WithPolicy(p convert.Policy) Option { return func(c *Client) { c.policy = p } }

// WithPageSize sets the per-request result limit.
func WithPageSize(n int) Option { return func(c *Client) { c.pageSize = n } }

// NewClient creates a Drugs@FDA client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		base:     defaultBaseURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      slog.Default(),
		policy:   convert.Lenient,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchANDA returns application records for an ANDA code (a six-digit
// number formatted as a string).
func (c *Client) SearchANDA(ctx context.Context, anda string, normalize bool) ([]*Result, error) {
	return c.Search(ctx, "openfda.application_number:ANDA"+anda, normalize)
}

// SearchNDA returns application records for an NDA code.
func (c *Client) SearchNDA(ctx context.Context, nda string, normalize bool) ([]*Result, error) {
	return c.Search(ctx, "openfda.application_number:NDA"+nda, normalize)
}

// Search pages through every result matching the query expression and
// assembles them. With normalize set, field values are converted to
// controlled vocabularies and native types; otherwise original spellings are
// carried through.
func (c *Client) Search(ctx context.Context, search string, normalize bool) ([]*Result, error) {
	var raws []convert.Raw
	skip := 0
	for {
		u := fmt.Sprintf("%s?search=%s&limit=%d&skip=%d", c.base, url.QueryEscape(search), c.pageSize, skip)
		c.log.Debug("issuing GET request", "url", u)

		page, err := c.getJSON(ctx, u)
		if err != nil {
			return nil, err
		}
		results, ok := page.List("results")
		if !ok || len(results) == 0 {
			break
		}
		raws = append(raws, results...)
		skip += len(results)

		total := pageTotal(page)
		if skip >= total || skip >= maxRecords {
			break
		}
	}

	asm := NewAssembler(normalize, convert.New(c.policy, c.log))
	out := make([]*Result, 0, len(raws))
	for _, r := range raws {
		result, err := asm.Result(r)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, nil
}

// pageTotal reads meta.results.total; 0 when absent, which ends pagination.
func pageTotal(page convert.Raw) int {
	meta, ok := page.Object("meta")
	if !ok {
		return 0
	}
	results, ok := meta.Object("results")
	if !ok {
		return 0
	}
	if n := results.OptInt("total"); n != nil {
		return *n
	}
	return 0
}

func (c *Client) getJSON(ctx context.Context, u string) (convert.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", u, resp.StatusCode)
	}
	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response from %s: %w", u, err)
	}
	return convert.Raw(data), nil
}
