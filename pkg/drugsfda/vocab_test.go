package drugsfda

import (
	"testing"

	"github.com/hazyhaar/drugreg/pkg/vocab"
)

// API spellings that must resolve through the fold transform alone.
func TestVocabularies_APISpellings(t *testing.T) {
	cases := []struct {
		vocab string
		in    string
		want  string
	}{
		{"marketing_status", "Over-the-Counter", "over_the_counter"},
		{"marketing_status", "None (Tentative Approval)", "none_tentative_approval"},
		{"dosage_form", "TABLET, EXTENDED RELEASE", "tablet_extended_release"},
		{"dosage_form", "N/A", "n_a"},
		{"route", "INTRA-ARTICULAR", "intra_articular"},
		{"route", "ORAL-28", "oral_28"},
		{"submission_class_code", "MANUF (CMC)", "manuf_cmc"},
		{"submission_class_code", "TYPE 1", "type_1"},
		{"submission_class_code", "TYPE 2/3", "type_2_3"},
		{"application_doc_type", "Pediatric Amendment 1", "pediatric_amendment_1"},
	}
	byName := map[string]*vocab.Vocabulary{}
	for _, v := range Vocabularies() {
		byName[v.Name()] = v
	}
	for _, c := range cases {
		v, ok := byName[c.vocab]
		if !ok {
			t.Fatalf("vocabulary %s not registered", c.vocab)
		}
		got, ok := v.Lookup(c.in)
		if !ok || got != c.want {
			t.Errorf("%s.Lookup(%q) = (%q, %v), want %q", c.vocab, c.in, got, ok, c.want)
		}
	}
}

func TestVocabularies_Aliases(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"901 REQUIRED", "require_901"},
		{"901 ORDER", "order_901"},
	}
	for _, c := range cases {
		got, ok := ReviewPriority.Lookup(c.in)
		if !ok || got != c.want {
			t.Errorf("ReviewPriority.Lookup(%q) = (%q, %v), want %q", c.in, got, ok, c.want)
		}
	}
}
