package rxclass

import "github.com/hazyhaar/drugreg/pkg/vocab"

// Controlled vocabularies for RxClass fields. Canonical tokens spell out the
// concepts; aliases map the short codes the API actually transmits.

// TermType enumerates RxNorm term types.
// https://www.nlm.nih.gov/research/umls/rxnorm/docs/appendix5.html
var TermType = vocab.MustNew("term_type", []string{
	"ingredient",
	"precise_ingredient",
	"multiple_ingredients",
	"semantic_clinical_drug_component",
	"semantic_clinical_drug_form",
	"semantic_clinical_drug_form_precise",
	"semantic_clinical_drug_group",
	"semantic_clinical_drug_form_group_precise",
	"semantic_clinical_drug",
	"generic_pack",
	"brand_name",
	"semantic_branded_drug_component",
	"semantic_branded_drug_form",
	"semantic_branded_drug_form_precise",
	"semantic_branded_drug_group",
	"semantic_branded_drug",
	"brand_name_pack",
	"dose_form",
	"dose_form_group",
}, map[string]string{
	"in":    "ingredient",
	"pin":   "precise_ingredient",
	"min":   "multiple_ingredients",
	"scdc":  "semantic_clinical_drug_component",
	"scdf":  "semantic_clinical_drug_form",
	"scdfp": "semantic_clinical_drug_form_precise",
	"scdg":  "semantic_clinical_drug_group",
	"scdgp": "semantic_clinical_drug_form_group_precise",
	"scd":   "semantic_clinical_drug",
	"gpck":  "generic_pack",
	"bn":    "brand_name",
	"sbdc":  "semantic_branded_drug_component",
	"sbdf":  "semantic_branded_drug_form",
	"sbdfp": "semantic_branded_drug_form_precise",
	"sbdg":  "semantic_branded_drug_group",
	"sbd":   "semantic_branded_drug",
	"bpck":  "brand_name_pack",
	"df":    "dose_form",
	"dfg":   "dose_form_group",
})

// ClassType enumerates drug class systems.
// https://lhncbc.nlm.nih.gov/RxNav/applications/RxClassIntro.html
//
// "atc1-4" keeps its hyphen: that is the class type's published name, and the
// fold transform maps the transmitted spelling onto it.
var ClassType = vocab.MustNew("class_type", []string{
	"atc1-4",
	"chem",
	"disease",
	"dispos",
	"epc",
	"moa",
	"pe",
	"pk",
	"schedule",
	"struct",
	"tc",
	"therap",
	"va",
}, nil)

// Relation enumerates drug-to-class relationship values.
var Relation = vocab.MustNew("relation", []string{
	"isa_disposition",
	"isa_therapeutic",
	"isa_structure",
	"has_ingredient",
	"may_treat",
	"has_epc",
	"has_pe",
	"has_moa",
	"ci_with",
	"has_va_class",
	"has_va_class_extended",
}, map[string]string{
	"has_vaclass":          "has_va_class",
	"has_vaclass_extended": "has_va_class_extended",
})

// RelationSource enumerates the terminologies asserting a classification.
var RelationSource = vocab.MustNew("relation_source", []string{
	"atc",
	"atc_prod",
	"dailymed",
	"fda_spl",
	"fmtsme",
	"med_rt",
	"rxnorm",
	"snomedct",
	"va",
}, map[string]string{
	"atcprod": "atc_prod",
	"medrt":   "med_rt",
	"fdaspl":  "fda_spl",
})

// Vocabularies returns every RxClass vocabulary, for registry registration.
func Vocabularies() []*vocab.Vocabulary {
	return []*vocab.Vocabulary{
		TermType,
		ClassType,
		Relation,
		RelationSource,
	}
}
