package trials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hazyhaar/drugreg/pkg/convert"
)

const (
	defaultBaseURL  = "https://clinicaltrials.gov/api/v2/studies"
	defaultPageSize = 50

	// maxRecords caps pagination on over-broad intervention queries.
	maxRecords = 25000
)

// ErrEmptyQuery is returned when a search is attempted without a query term.
var ErrEmptyQuery = errors.New("must supply a non-empty query term")

// Client queries the ClinicalTrials.gov v2 studies endpoint and pages through
// results with the API's nextPageToken scheme.
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

// NewClient creates a ClinicalTrials.gov client.
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

// SearchIntervention returns studies whose intervention matches drugName. The
// API matches the term as a substring of the intervention name rather than a
// full-span match.
func (c *Client) SearchIntervention(ctx context.Context, drugName string, normalize bool) ([]*Study, error) {
	if drugName == "" {
		return nil, ErrEmptyQuery
	}

	var raws []convert.Raw
	pageToken := ""
	for {
		u := fmt.Sprintf("%s?pageSize=%d&query.intr=%s", c.base, c.pageSize, url.QueryEscape(drugName))
		if pageToken != "" {
			u += "&pageToken=" + url.QueryEscape(pageToken)
		}
		c.log.Debug("issuing GET request", "url", u)

		page, err := c.getJSON(ctx, u)
		if err != nil {
			return nil, err
		}
		if studies, ok := page.List("studies"); ok {
			raws = append(raws, studies...)
		}

		pageToken, _ = page.OptString("nextPageToken")
		if pageToken == "" || len(raws) >= maxRecords {
			break
		}
	}

	asm := NewAssembler(normalize, convert.New(c.policy, c.log))
	out := make([]*Study, 0, len(raws))
	for _, r := range raws {
		study, err := asm.Study(r)
		if err != nil {
			return nil, err
		}
		out = append(out, study)
	}
	return out, nil
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
