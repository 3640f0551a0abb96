package rxclass

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hazyhaar/drugreg/pkg/convert"
)

const defaultBaseURL = "https://rxnav.nlm.nih.gov/REST/rxclass"

// Client queries the RxClass API. The byDrugName endpoint returns the full
// result set in one response, so there is no pagination.
type Client struct {
	base   string
	http   *http.Client
	log    *slog.Logger
	policy convert.Policy

	// includeSNOMEDCT keeps class claims asserted by SNOMEDCT. Those are
	// distributed under a different license than the rest of the data, so
	// they are dropped unless a consumer opts in.
	includeSNOMEDCT bool
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

// WithSNOMEDCT keeps SNOMEDCT-sourced class claims in results.
func WithSNOMEDCT() Option { return func(c *Client) { c.includeSNOMEDCT = true } }

// NewClient creates an RxClass client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		base:   defaultBaseURL,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    slog.Default(),
		policy: convert.Lenient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchDrugName returns classification claims for an RxNorm drug name. An
// unknown drug name yields an empty slice, not an error.
func (c *Client) SearchDrugName(ctx context.Context, drug string, normalize bool) ([]*Entry, error) {
	u := fmt.Sprintf("%s/class/byDrugName.json?drugName=%s", c.base, url.QueryEscape(drug))
	c.log.Debug("issuing GET request", "url", u)

	page, err := c.getJSON(ctx, u)
	if err != nil {
		return nil, err
	}
	infoList, ok := page.Object("rxclassDrugInfoList")
	if !ok {
		return []*Entry{}, nil
	}
	rawEntries, ok := infoList.List("rxclassDrugInfo")
	if !ok {
		return []*Entry{}, nil
	}

	asm := NewAssembler(normalize, convert.New(c.policy, c.log))
	out := make([]*Entry, 0, len(rawEntries))
	for _, raw := range rawEntries {
		entry, err := asm.Entry(raw)
		if err != nil {
			return nil, err
		}
		if !c.includeSNOMEDCT && isSNOMEDCT(entry.RelationSource) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

// isSNOMEDCT matches both the canonical token and the raw spelling, so the
// filter holds with normalization off.
func isSNOMEDCT(source convert.Term) bool {
	return strings.EqualFold(string(source), "snomedct")
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
