package rxclass

import (
	"fmt"

	"github.com/hazyhaar/drugreg/pkg/convert"
	"github.com/hazyhaar/drugreg/pkg/vocab"
)

// Assembler builds typed classification entries from raw rxclassDrugInfo
// objects.
type Assembler struct {
	conv      *convert.Converter
	normalize bool
}

// NewAssembler creates an assembler. A nil converter gets the lenient default.
func NewAssembler(normalize bool, conv *convert.Converter) *Assembler {
	if conv == nil {
		conv = convert.New(convert.Lenient, nil)
	}
	return &Assembler{conv: conv, normalize: normalize}
}

// Entry assembles one classification claim.
func (a *Assembler) Entry(data convert.Raw) (*Entry, error) {
	rawConcept, ok := data.Object("minConcept")
	if !ok {
		return nil, fmt.Errorf("%w: minConcept", convert.ErrMissingField)
	}
	concept, err := a.concept(rawConcept)
	if err != nil {
		return nil, err
	}

	rawClass, ok := data.Object("rxclassMinConceptItem")
	if !ok {
		return nil, fmt.Errorf("concept %s: %w: rxclassMinConceptItem", concept.ConceptID, convert.ErrMissingField)
	}
	classification, err := a.classification(rawClass)
	if err != nil {
		return nil, fmt.Errorf("concept %s: %w", concept.ConceptID, err)
	}

	entry := &Entry{Concept: concept, Classification: classification}
	if raw, ok := data.OptString("rela"); ok && raw != "" {
		if entry.Relation, err = a.term(raw, Relation); err != nil {
			return nil, fmt.Errorf("concept %s: %w", concept.ConceptID, err)
		}
	}
	if raw, ok := data.OptString("relaSource"); ok && raw != "" {
		if entry.RelationSource, err = a.term(raw, RelationSource); err != nil {
			return nil, fmt.Errorf("concept %s: %w", concept.ConceptID, err)
		}
	}
	return entry, nil
}

func (a *Assembler) concept(data convert.Raw) (DrugConcept, error) {
	rxcui, err := data.String("rxcui")
	if err != nil {
		return DrugConcept{}, err
	}
	name, err := data.String("name")
	if err != nil {
		return DrugConcept{}, err
	}
	tty, err := data.String("tty")
	if err != nil {
		return DrugConcept{}, err
	}
	termType, err := a.term(tty, TermType)
	if err != nil {
		return DrugConcept{}, err
	}
	return DrugConcept{
		ConceptID: "rxcui:" + rxcui,
		Name:      name,
		TermType:  termType,
	}, nil
}

func (a *Assembler) classification(data convert.Raw) (DrugClassification, error) {
	classID, err := data.String("classId")
	if err != nil {
		return DrugClassification{}, err
	}
	className, err := data.String("className")
	if err != nil {
		return DrugClassification{}, err
	}
	rawType, err := data.String("classType")
	if err != nil {
		return DrugClassification{}, err
	}
	classType, err := a.term(rawType, ClassType)
	if err != nil {
		return DrugClassification{}, err
	}
	classURL, _ := data.OptString("classUrl")
	return DrugClassification{
		ClassID:   classID,
		ClassName: className,
		ClassType: classType,
		ClassURL:  classURL,
	}, nil
}

func (a *Assembler) term(raw string, v *vocab.Vocabulary) (convert.Term, error) {
	if !a.normalize {
		return convert.Term(raw), nil
	}
	return a.conv.Term(raw, v)
}
