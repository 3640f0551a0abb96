package drugsfda

import "github.com/hazyhaar/drugreg/pkg/vocab"

// Controlled vocabularies for Drugs@FDA fields. Canonical tokens follow the
// API's glossary terms; aliases carry only the spellings that survive the
// fold transform non-canonically. The tables are known to be incomplete for
// long-tail historical records; extend them through registry overlays rather
// than here.

// DocType enumerates application document types.
// https://www.fda.gov/drugs/drug-approvals-and-databases/drugsfda-glossary-terms
var DocType = vocab.MustNew("application_doc_type", []string{
	"at",
	"exclusivity_letter",
	"fda_press_release",
	"federal_register_notice",
	"healthcare_professional_sheet",
	"label",
	"letter",
	"medication_guide",
	"other",
	"other_important_information_from_fda",
	"patient_information_sheet",
	"patient_package_insert",
	"pediatric_addendum",
	"pediatric_amendment_1",
	"pediatric_amendment_2",
	"pediatric_amendment_3",
	"pediatric_amendment_4",
	"pediatric_amendment_5",
	"pediatric_amendment_6",
	"pediatric_amendment_7",
	"pediatric_cdtl_review",
	"pediatric_clinical_pharmacology_addendum",
	"pediatric_clinical_pharmacology_review",
	"pediatric_dd_summary_review",
	"pediatric_medical_review",
	"pediatric_memo",
	"pediatric_other",
	"pediatric_reissue",
	"pediatric_reissue_amendment_1",
	"pediatric_reissue_amendment_2",
	"pediatric_reissue_amendment_3",
	"pediatric_reissue_amendment_4",
	"pediatric_reissue_amendment_5",
	"pediatric_reissue_amendment_6",
	"pediatric_statistical_review",
	"pediatric_written_request",
	"rems",
	"review",
	"summary_review",
	"withdrawal_notice",
}, nil)

// MarketingStatus indicates how a drug product is sold in the United States.
var MarketingStatus = vocab.MustNew("marketing_status", []string{
	"prescription",
	"over_the_counter",
	"discontinued",
	"none_tentative_approval",
	"none",
}, nil)

// Route enumerates routes of administration. Compound multi-route spellings
// are split by the multi-value normalizer before lookup.
var Route = vocab.MustNew("route", []string{
	"auricular_otic",
	"biliary",
	"buccal",
	"dental",
	"epidural",
	"for_rx_compounding",
	"implantation",
	"im_iv",
	"infiltration",
	"inhalation",
	"injection",
	"intra_arterial",
	"intracardiac",
	"intracaudal",
	"intracavernous",
	"intralesional",
	"intramuscular",
	"intraocular",
	"intraperitoneal",
	"intrapleural",
	"intrasynovial",
	"intrathecal",
	"intratracheal",
	"intrauterine",
	"intravascular",
	"intravenous",
	"intravesical",
	"intravesicular",
	"intravitreal",
	"intra_articular",
	"iontophoresis",
	"irrigation",
	"iv_infusion",
	"nasal",
	"n_a",
	"ophthalmic",
	"oral",
	"orally_disintegrating",
	"oral_20",
	"oral_21",
	"oral_28",
	"otic",
	"parenteral",
	"percutaneous",
	"perfusion",
	"periarticular",
	"perineural",
	"periodontal",
	"powder_for_solution",
	"rectal",
	"respiratory_inhalation",
	"soft_tissue",
	"spinal",
	"subcutaneous",
	"sublingual",
	"topical",
	"transdermal",
	"transmucosal",
	"ureteral",
	"urethral",
	"vaginal",
}, map[string]string{
	// No space after the comma, so the fold transform leaves it intact.
	"powder,for_solution": "powder_for_solution",
})

// DosageForm is the physical form in which a drug is produced and dispensed.
var DosageForm = vocab.MustNew("dosage_form", []string{
	"aerosol",
	"aerosol_foam",
	"aerosol_metered",
	"capsule",
	"capsule_delayed_release",
	"capsule_delayed_rel_pellets",
	"capsule_delayed_rel_pellets_tablet",
	"capsule_extended_release",
	"capsule_pellet",
	"capsule_pellette",
	"concentrate",
	"cream",
	"cream_augmented",
	"cream_suppository",
	"cream_tablet",
	"disc",
	"dressing",
	"elixir",
	"emulsion",
	"enema",
	"fiber_extended_release",
	"film",
	"film_extended_release",
	"for_solution",
	"for_suspension",
	"for_suspension_extended_release",
	"for_suspension_tablet",
	"gas",
	"gel",
	"gel_augmented",
	"gel_metered",
	"granule",
	"granule_effervescent",
	"gum_chewing",
	"implant",
	"injectable",
	"injectable_lipid_complex",
	"injectable_liposomal",
	"injection",
	"insert",
	"insert_extended_release",
	"intrauterine_device",
	"jelly",
	"liquid",
	"lotion",
	"lotion_augmented",
	"lotion_shampoo",
	"n_a",
	"oil",
	"oil_drops",
	"ointment",
	"paste",
	"pastille",
	"patch",
	"powder",
	"powder_metered",
	"ring",
	"shampoo",
	"soap",
	"solution",
	"solution_drops",
	"solution_extended_release",
	"solution_metered",
	"sponge",
	"spray",
	"spray_metered",
	"suppository",
	"suspension",
	"suspension_drops",
	"suspension_extended_release",
	"swab",
	"syrup",
	"system",
	"system_extended_release",
	"tablet",
	"tablet_chewable",
	"tablet_coated_particles",
	"tablet_delayed_release",
	"tablet_effervescent",
	"tablet_extended_release",
	"tablet_for_suspension",
	"tablet_orally_disintegrating",
	"tablet_orally_disintegrating_extended_release",
	"tampon",
	"troche_lozenge",
	"vial",
}, nil)

// TECode enumerates therapeutic equivalency codes from the Orange Book.
var TECode = vocab.MustNew("te_code", []string{
	"aa", "ab", "ab1", "ab2", "ab3", "ab4",
	"an", "ao", "ap", "ap1", "ap2",
	"at", "at1",
	"bc", "bs", "bt", "bx",
	"tbd",
}, nil)

// ProductType enumerates openfda product types.
var ProductType = vocab.MustNew("product_type", []string{
	"human_prescription_drug",
	"human_otc_drug",
}, nil)

// SubmissionType distinguishes original applications from supplements.
var SubmissionType = vocab.MustNew("submission_type", []string{
	"orig",
	"suppl",
}, nil)

// SubmissionStatus: approved or tentatively approved.
var SubmissionStatus = vocab.MustNew("submission_status", []string{
	"ap",
	"ta",
}, nil)

// ReviewPriority enumerates submission review priority ratings.
var ReviewPriority = vocab.MustNew("review_priority", []string{
	"standard",
	"priority",
	"unknown",
	"n_a",
	"require_901",
	"order_901",
}, map[string]string{
	"901 required": "require_901",
	"901 order":    "order_901",
})

// ClassCode enumerates submission class codes.
var ClassCode = vocab.MustNew("submission_class_code", []string{
	"bioequiv",
	"efficacy",
	"labeling",
	"manuf_cmc",
	"medgas",
	"n_a",
	"rems",
	"s",
	"type_1",
	"type_10",
	"type_1_4",
	"type_2",
	"type_2_3",
	"type_2_4",
	"type_3",
	"type_3_4",
	"type_4",
	"type_4_5",
	"type_5",
	"type_6",
	"type_7",
	"type_8",
	"type_9",
	"unknown",
}, nil)

// Vocabularies returns every Drugs@FDA vocabulary, for registry registration.
func Vocabularies() []*vocab.Vocabulary {
	return []*vocab.Vocabulary{
		DocType,
		MarketingStatus,
		Route,
		DosageForm,
		TECode,
		ProductType,
		SubmissionType,
		SubmissionStatus,
		ReviewPriority,
		ClassCode,
	}
}
