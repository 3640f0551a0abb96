// Package convert implements the value normalizers shared by the drugsfda,
// trials, and rxclass clients: tristate booleans, controlled-vocabulary terms,
// integers, and date-only timestamps. Every normalizer degrades instead of
// aborting: a field value that cannot be normalized is logged and echoed back
// raw so the rest of a large record still assembles. The strict policy, where
// the upstream APIs disagree on it, is an explicit opt-in.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hazyhaar/drugreg/pkg/vocab"
)

var (
	// ErrInvalidTristate reports an unrecognized yes/no/tbd value under Strict.
	ErrInvalidTristate = errors.New("invalid tristate value")
	// ErrUnparseableDate reports a date outside every accepted layout of the
	// flexible family.
	ErrUnparseableDate = errors.New("unparseable date")
	// ErrMissingField reports a mandatory key absent from a raw record.
	ErrMissingField = errors.New("missing required field")
)

// Policy selects how unrecognized tristate and vocabulary values are handled.
type Policy int

const (
	// Lenient logs the offending value at error level and echoes the raw
	// spelling back. Default: one bad field value must never discard an
	// otherwise valid record.
	Lenient Policy = iota
	// Strict fails the conversion instead.
	Strict
)

// Converter applies one normalization policy across a request.
type Converter struct {
	policy Policy
	log    *slog.Logger
}

// New creates a Converter. A nil logger falls back to slog.Default().
func New(policy Policy, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{policy: policy, log: log}
}

// Policy returns the converter's policy.
func (c *Converter) Policy() Policy { return c.policy }

// Tristate is a yes/no flag that may be unknown. Value is nil when the source
// said "tbd" (explicitly unknown) or when the spelling was unrecognized; in
// the latter case Raw keeps the original text.
type Tristate struct {
	Value *bool  `json:"value,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// RawTristate wraps an unconverted source spelling, for normalize=false mode.
func RawTristate(raw string) Tristate { return Tristate{Raw: raw} }

// Tristate normalizes "yes"/"no"/"tbd" (case-insensitive). Any other spelling
// is unrecognized: logged and echoed under Lenient, ErrInvalidTristate under
// Strict.
func (c *Converter) Tristate(raw string) (Tristate, error) {
	switch strings.ToLower(raw) {
	case "yes":
		t := true
		return Tristate{Value: &t}, nil
	case "no":
		f := false
		return Tristate{Value: &f}, nil
	case "tbd":
		return Tristate{}, nil
	}
	if c.policy == Strict {
		return Tristate{Raw: raw}, fmt.Errorf("%w: %q", ErrInvalidTristate, raw)
	}
	c.log.Error("unrecognized tristate value", "value", raw)
	return Tristate{Raw: raw}, nil
}

// Term is one field value drawn from a controlled vocabulary. Canonical terms
// are lowercase underscore-delimited tokens; a value that failed (or skipped)
// normalization keeps its original spelling.
type Term string

// Term resolves raw against v. On a vocabulary miss the raw spelling is
// logged and echoed under Lenient, and additionally returned with an error
// under Strict.
func (c *Converter) Term(raw string, v *vocab.Vocabulary) (Term, error) {
	if tok, ok := v.Lookup(raw); ok {
		return Term(tok), nil
	}
	if c.policy == Strict {
		return Term(raw), fmt.Errorf("vocabulary %s has no entry for %q", v.Name(), raw)
	}
	c.log.Error("value not in vocabulary", "value", raw, "vocabulary", v.Name())
	return Term(raw), nil
}

// Terms normalizes a multi-valued field. A []string or []any input is mapped
// element-wise through Term; a plain string is first split on list-separator
// commas (see SplitCompound) and then mapped.
func (c *Converter) Terms(raw any, v *vocab.Vocabulary) ([]Term, error) {
	var parts []string
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		parts = SplitCompound(val)
	case []string:
		parts = val
	case []any:
		parts = make([]string, 0, len(val))
		for _, elem := range val {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("vocabulary %s: non-string element %v in multi-valued field", v.Name(), elem)
			}
			parts = append(parts, s)
		}
	default:
		return nil, fmt.Errorf("vocabulary %s: cannot normalize %T as multi-valued field", v.Name(), raw)
	}

	terms := make([]Term, 0, len(parts))
	for _, p := range parts {
		t, err := c.Term(p, v)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// Int is an integer decoded from a string field. Value is nil when the source
// text did not parse; Raw then keeps the original spelling.
type Int struct {
	Value *int   `json:"value,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// RawInt wraps an unconverted source spelling, for normalize=false mode.
func RawInt(raw string) Int { return Int{Raw: raw} }

// Int parses a base-10 integer. Parse failures are logged and produce a nil
// Value under either policy; downstream consumers treat a missing count as
// unknown rather than fatal.
func (c *Converter) Int(raw string) Int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.log.Error("cannot convert value to int", "value", raw)
		return Int{Raw: raw}
	}
	return Int{Value: &n}
}

// Date is a calendar date pinned to midnight UTC. Time is nil when parsing
// failed or was skipped; Raw then keeps the original spelling.
type Date struct {
	Time *time.Time `json:"time,omitempty"`
	Raw  string     `json:"raw,omitempty"`
}

// RawDate wraps an unconverted source spelling, for normalize=false mode.
func RawDate(raw string) Date { return Date{Raw: raw} }

// CompactDate parses the fixed 8-digit YYYYMMDD encoding used by Drugs@FDA.
// Failures are logged and produce a nil Time under either policy.
func (c *Converter) CompactDate(raw string) Date {
	t, err := time.Parse("20060102", raw)
	if err != nil {
		c.log.Error("cannot convert value to date", "value", raw, "layout", "YYYYMMDD")
		return Date{Raw: raw}
	}
	return Date{Time: &t}
}

// flexLayouts are tried in order, most specific first.
var flexLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FlexDate parses YYYY-MM-DD, YYYY-MM, or YYYY, in that order, completing
// missing components to the first of the month or year. Unlike CompactDate it
// fails hard: the Clinical Trials API is assumed to emit well-formed dates,
// so an unparseable one is a structural error, not a vocabulary gap.
func (c *Converter) FlexDate(raw string) (Date, error) {
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date{Time: &t}, nil
		}
	}
	c.log.Error("cannot convert value to date", "value", raw, "layout", "YYYY-MM-DD|YYYY-MM|YYYY")
	return Date{Raw: raw}, fmt.Errorf("%w: %q is not YYYY-MM-DD, YYYY-MM, or YYYY", ErrUnparseableDate, raw)
}
