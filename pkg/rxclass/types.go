// Package rxclass is a client for the NLM RxClass API: drug classification
// claims looked up by RxNorm drug name, with term types, class types, and
// relation values optionally normalized to controlled vocabularies.
package rxclass

import "github.com/hazyhaar/drugreg/pkg/convert"

// Entry is one classification claim: a drug concept, the class it belongs
// to, and the relation asserting the membership.
type Entry struct {
	Concept        DrugConcept        `json:"concept"`
	Classification DrugClassification `json:"drug_classification"`
	Relation       convert.Term       `json:"relation,omitempty"`
	RelationSource convert.Term       `json:"relation_source,omitempty"`
}

// DrugConcept is an RxNorm drug concept. ConceptID carries the rxcui CURIE
// prefix, matching the Bioregistry convention.
type DrugConcept struct {
	ConceptID string       `json:"concept_id"`
	Name      string       `json:"name"`
	TermType  convert.Term `json:"term_type"`
}

// DrugClassification is one drug class from a classification system.
type DrugClassification struct {
	ClassID   string       `json:"class_id"`
	ClassName string       `json:"class_name"`
	ClassType convert.Term `json:"class_type"`
	ClassURL  string       `json:"class_url,omitempty"`
}
