// Package drugsfda is a client for the FDA Drugs@FDA API: drug application
// records looked up by ANDA/NDA number or an arbitrary search expression,
// with field values optionally normalized to controlled vocabularies.
package drugsfda

import "github.com/hazyhaar/drugreg/pkg/convert"

// Result is one drug application record.
type Result struct {
	ApplicationNumber string       `json:"application_number"`
	SponsorName       string       `json:"sponsor_name"`
	OpenFDA           *OpenFDA     `json:"openfda,omitempty"`
	Products          []Product    `json:"products"`
	Submissions       []Submission `json:"submissions,omitempty"`
}

// Product is one marketed form of the application's drug.
type Product struct {
	ProductNumber     string             `json:"product_number"`
	ReferenceDrug     convert.Tristate   `json:"reference_drug"`
	BrandName         string             `json:"brand_name"`
	ActiveIngredients []ActiveIngredient `json:"active_ingredients"`
	ReferenceStandard *convert.Tristate  `json:"reference_standard,omitempty"`
	DosageForm        convert.Term       `json:"dosage_form"`
	Route             []convert.Term     `json:"route,omitempty"`
	MarketingStatus   convert.Term       `json:"marketing_status"`
	TECode            convert.Term       `json:"te_code,omitempty"`
}

// ActiveIngredient names one ingredient and its strength.
type ActiveIngredient struct {
	Name     string `json:"name"`
	Strength string `json:"strength,omitempty"`
}

// Submission is one regulatory submission under the application.
type Submission struct {
	Type                 convert.Term     `json:"submission_type"`
	Number               convert.Int      `json:"submission_number"`
	Status               convert.Term     `json:"submission_status,omitempty"`
	StatusDate           convert.Date     `json:"submission_status_date"`
	ReviewPriority       convert.Term     `json:"review_priority,omitempty"`
	ClassCode            convert.Term     `json:"submission_class_code,omitempty"`
	ClassCodeDescription string           `json:"submission_class_code_description,omitempty"`
	ApplicationDocs      []ApplicationDoc `json:"application_docs,omitempty"`
}

// ApplicationDoc is one document attached to a submission.
type ApplicationDoc struct {
	ID   string       `json:"id"`
	URL  string       `json:"url"`
	Date convert.Date `json:"date"`
	Type convert.Term `json:"type"`
}

// OpenFDA is the openfda annotation block. Its fields are array-valued in the
// source payload and are carried through as-is, except product_type and
// route, which go through vocabulary normalization.
type OpenFDA struct {
	ApplicationNumber []string       `json:"application_number,omitempty"`
	BrandName         []string       `json:"brand_name,omitempty"`
	GenericName       []string       `json:"generic_name,omitempty"`
	ManufacturerName  []string       `json:"manufacturer_name,omitempty"`
	ProductNDC        []string       `json:"product_ndc,omitempty"`
	ProductType       []convert.Term `json:"product_type,omitempty"`
	Route             []convert.Term `json:"route,omitempty"`
	SubstanceName     []string       `json:"substance_name,omitempty"`
	RxCUI             []string       `json:"rxcui,omitempty"`
	SplID             []string       `json:"spl_id,omitempty"`
	SplSetID          []string       `json:"spl_set_id,omitempty"`
	PackageNDC        []string       `json:"package_ndc,omitempty"`
	NUI               []string       `json:"nui,omitempty"`
	PharmClassEPC     []string       `json:"pharm_class_epc,omitempty"`
	PharmClassCS      []string       `json:"pharm_class_cs,omitempty"`
	PharmClassMOA     []string       `json:"pharm_class_moa,omitempty"`
	UNII              []string       `json:"unii,omitempty"`
}
