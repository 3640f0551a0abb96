package drugsfda

import (
	"fmt"

	"github.com/hazyhaar/drugreg/pkg/convert"
	"github.com/hazyhaar/drugreg/pkg/vocab"
)

// Assembler builds typed Drugs@FDA records from raw response objects. With
// normalize unset, every field echoes its original spelling; with it set,
// fields are routed through the converter appropriate to their semantic type.
// Assembly fails only on structural problems (a mandatory key missing, or a
// normalization error under the strict policy); a single unrecognized field
// value degrades to its raw spelling and the record still assembles.
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

// Result assembles one drug application record.
func (a *Assembler) Result(data convert.Raw) (*Result, error) {
	appNumber, err := data.String("application_number")
	if err != nil {
		return nil, err
	}
	sponsor, err := data.String("sponsor_name")
	if err != nil {
		return nil, err
	}

	rawProducts, ok := data.List("products")
	if !ok {
		return nil, fmt.Errorf("%w: products", convert.ErrMissingField)
	}
	products := make([]Product, 0, len(rawProducts))
	for _, rp := range rawProducts {
		p, err := a.product(rp)
		if err != nil {
			return nil, fmt.Errorf("application %s: %w", appNumber, err)
		}
		products = append(products, p)
	}

	result := &Result{
		ApplicationNumber: appNumber,
		SponsorName:       sponsor,
		Products:          products,
	}

	if rawSubs, ok := data.List("submissions"); ok {
		result.Submissions = make([]Submission, 0, len(rawSubs))
		for _, rs := range rawSubs {
			s, err := a.submission(rs)
			if err != nil {
				return nil, fmt.Errorf("application %s: %w", appNumber, err)
			}
			result.Submissions = append(result.Submissions, s)
		}
	}
	if rawOpenFDA, ok := data.Object("openfda"); ok {
		of, err := a.openFDA(rawOpenFDA)
		if err != nil {
			return nil, fmt.Errorf("application %s: %w", appNumber, err)
		}
		result.OpenFDA = of
	}
	return result, nil
}

func (a *Assembler) product(data convert.Raw) (Product, error) {
	number, err := data.String("product_number")
	if err != nil {
		return Product{}, err
	}
	brand, err := data.String("brand_name")
	if err != nil {
		return Product{}, err
	}

	refDrugRaw, err := data.String("reference_drug")
	if err != nil {
		return Product{}, err
	}
	refDrug, err := a.tristate(refDrugRaw)
	if err != nil {
		return Product{}, err
	}

	var refStandard *convert.Tristate
	if raw, ok := data.OptString("reference_standard"); ok {
		t, err := a.tristate(raw)
		if err != nil {
			return Product{}, err
		}
		refStandard = &t
	}

	dosageRaw, err := data.String("dosage_form")
	if err != nil {
		return Product{}, err
	}
	dosage, err := a.term(dosageRaw, DosageForm)
	if err != nil {
		return Product{}, err
	}

	route, err := a.terms(data["route"], Route)
	if err != nil {
		return Product{}, err
	}

	statusRaw, err := data.String("marketing_status")
	if err != nil {
		return Product{}, err
	}
	status, err := a.term(statusRaw, MarketingStatus)
	if err != nil {
		return Product{}, err
	}

	var teCode convert.Term
	if raw, ok := data.OptString("te_code"); ok {
		teCode, err = a.term(raw, TECode)
		if err != nil {
			return Product{}, err
		}
	}

	rawIngredients, ok := data.List("active_ingredients")
	if !ok {
		return Product{}, fmt.Errorf("%w: active_ingredients", convert.ErrMissingField)
	}
	ingredients := make([]ActiveIngredient, 0, len(rawIngredients))
	for _, ri := range rawIngredients {
		name, err := ri.String("name")
		if err != nil {
			return Product{}, err
		}
		strength, _ := ri.OptString("strength")
		ingredients = append(ingredients, ActiveIngredient{Name: name, Strength: strength})
	}

	return Product{
		ProductNumber:     number,
		ReferenceDrug:     refDrug,
		BrandName:         brand,
		ActiveIngredients: ingredients,
		ReferenceStandard: refStandard,
		DosageForm:        dosage,
		Route:             route,
		MarketingStatus:   status,
		TECode:            teCode,
	}, nil
}

func (a *Assembler) submission(data convert.Raw) (Submission, error) {
	typeRaw, err := data.String("submission_type")
	if err != nil {
		return Submission{}, err
	}
	subType, err := a.term(typeRaw, SubmissionType)
	if err != nil {
		return Submission{}, err
	}

	numberRaw, err := data.String("submission_number")
	if err != nil {
		return Submission{}, err
	}
	number := convert.RawInt(numberRaw)
	if a.normalize {
		number = a.conv.Int(numberRaw)
	}

	var status convert.Term
	if raw, ok := data.OptString("submission_status"); ok {
		status, err = a.term(raw, SubmissionStatus)
		if err != nil {
			return Submission{}, err
		}
	}

	dateRaw, err := data.String("submission_status_date")
	if err != nil {
		return Submission{}, err
	}
	date := convert.RawDate(dateRaw)
	if a.normalize {
		date = a.conv.CompactDate(dateRaw)
	}

	var priority convert.Term
	if raw, ok := data.OptString("review_priority"); ok {
		priority, err = a.term(raw, ReviewPriority)
		if err != nil {
			return Submission{}, err
		}
	}
	var classCode convert.Term
	if raw, ok := data.OptString("submission_class_code"); ok {
		classCode, err = a.term(raw, ClassCode)
		if err != nil {
			return Submission{}, err
		}
	}
	classDescription, _ := data.OptString("submission_class_code_description")

	var docs []ApplicationDoc
	if rawDocs, ok := data.List("application_docs"); ok {
		docs = make([]ApplicationDoc, 0, len(rawDocs))
		for _, rd := range rawDocs {
			doc, err := a.applicationDoc(rd)
			if err != nil {
				return Submission{}, err
			}
			docs = append(docs, doc)
		}
	}

	return Submission{
		Type:                 subType,
		Number:               number,
		Status:               status,
		StatusDate:           date,
		ReviewPriority:       priority,
		ClassCode:            classCode,
		ClassCodeDescription: classDescription,
		ApplicationDocs:      docs,
	}, nil
}

func (a *Assembler) applicationDoc(data convert.Raw) (ApplicationDoc, error) {
	id, err := data.String("id")
	if err != nil {
		return ApplicationDoc{}, err
	}
	url, err := data.String("url")
	if err != nil {
		return ApplicationDoc{}, err
	}
	dateRaw, err := data.String("date")
	if err != nil {
		return ApplicationDoc{}, err
	}
	date := convert.RawDate(dateRaw)
	if a.normalize {
		date = a.conv.CompactDate(dateRaw)
	}
	typeRaw, err := data.String("type")
	if err != nil {
		return ApplicationDoc{}, err
	}
	docType, err := a.term(typeRaw, DocType)
	if err != nil {
		return ApplicationDoc{}, err
	}
	return ApplicationDoc{ID: id, URL: url, Date: date, Type: docType}, nil
}

func (a *Assembler) openFDA(data convert.Raw) (*OpenFDA, error) {
	productType, err := a.terms(data["product_type"], ProductType)
	if err != nil {
		return nil, err
	}
	route, err := a.terms(data["route"], Route)
	if err != nil {
		return nil, err
	}

	strs := func(key string) []string {
		s, _ := data.Strings(key)
		return s
	}
	return &OpenFDA{
		ApplicationNumber: strs("application_number"),
		BrandName:         strs("brand_name"),
		GenericName:       strs("generic_name"),
		ManufacturerName:  strs("manufacturer_name"),
		ProductNDC:        strs("product_ndc"),
		ProductType:       productType,
		Route:             route,
		SubstanceName:     strs("substance_name"),
		RxCUI:             strs("rxcui"),
		SplID:             strs("spl_id"),
		SplSetID:          strs("spl_set_id"),
		PackageNDC:        strs("package_ndc"),
		NUI:               strs("nui"),
		PharmClassEPC:     strs("pharm_class_epc"),
		PharmClassCS:      strs("pharm_class_cs"),
		PharmClassMOA:     strs("pharm_class_moa"),
		UNII:              strs("unii"),
	}, nil
}

func (a *Assembler) tristate(raw string) (convert.Tristate, error) {
	if !a.normalize {
		return convert.RawTristate(raw), nil
	}
	return a.conv.Tristate(raw)
}

func (a *Assembler) term(raw string, v *vocab.Vocabulary) (convert.Term, error) {
	if !a.normalize {
		return convert.Term(raw), nil
	}
	return a.conv.Term(raw, v)
}

// terms handles a multi-valued field that may be absent, a single string, or
// a list of strings. Without normalization the source spellings are echoed
// unsplit, matching the original JSON shape as closely as a typed slice can.
func (a *Assembler) terms(raw any, v *vocab.Vocabulary) ([]convert.Term, error) {
	if raw == nil {
		return nil, nil
	}
	if a.normalize {
		return a.conv.Terms(raw, v)
	}
	switch val := raw.(type) {
	case string:
		return []convert.Term{convert.Term(val)}, nil
	case []any:
		out := make([]convert.Term, 0, len(val))
		for _, elem := range val {
			if s, ok := elem.(string); ok {
				out = append(out, convert.Term(s))
			}
		}
		return out, nil
	case []string:
		out := make([]convert.Term, 0, len(val))
		for _, s := range val {
			out = append(out, convert.Term(s))
		}
		return out, nil
	}
	return nil, fmt.Errorf("vocabulary %s: cannot carry %T as multi-valued field", v.Name(), raw)
}
