package trials

import "github.com/hazyhaar/drugreg/pkg/vocab"

// Controlled vocabularies for ClinicalTrials.gov study fields. Canonical
// tokens follow the API's documented enums:
// https://clinicaltrials.gov/data-api/about-api/study-data-structure

// AgencyClass classifies a sponsoring or collaborating organization.
var AgencyClass = vocab.MustNew("agency_class", []string{
	"nih",
	"fed",
	"other_gov",
	"indiv",
	"industry",
	"network",
	"ambig",
	"other",
	"unknown",
}, nil)

// Status enumerates overall study status values.
var Status = vocab.MustNew("study_status", []string{
	"active_not_recruiting",
	"completed",
	"enrolling_by_invitation",
	"not_yet_recruiting",
	"recruiting",
	"suspended",
	"terminated",
	"withdrawn",
	"available",
	"no_longer_available",
	"temporarily_not_available",
	"approved_for_marketing",
	"withheld",
	"unknown",
}, nil)

// DateType distinguishes actual from estimated dates.
var DateType = vocab.MustNew("date_type", []string{
	"actual",
	"estimated",
}, nil)

// StudyType enumerates the kinds of registered studies.
var StudyType = vocab.MustNew("study_type", []string{
	"expanded_access",
	"interventional",
	"observational",
}, nil)

// StudyPhase enumerates trial phases. The API spells phases without an
// underscore before the digit ("PHASE1"), which the fold transform cannot
// repair, so each spelling carries an alias.
var StudyPhase = vocab.MustNew("study_phase", []string{
	"na",
	"early_phase_1",
	"phase_1",
	"phase_2",
	"phase_3",
	"phase_4",
}, map[string]string{
	"early_phase1": "early_phase_1",
	"phase1":       "phase_1",
	"phase2":       "phase_2",
	"phase3":       "phase_3",
	"phase4":       "phase_4",
})

// EnrollmentType distinguishes actual from estimated enrollment counts.
var EnrollmentType = vocab.MustNew("enrollment_type", []string{
	"actual",
	"estimated",
}, nil)

// InterventionType enumerates protocol intervention categories.
var InterventionType = vocab.MustNew("intervention_type", []string{
	"behavioral",
	"biological",
	"combination_product",
	"device",
	"diagnostic_test",
	"dietary_supplement",
	"drug",
	"genetic",
	"procedure",
	"radiation",
	"other",
}, nil)

// StandardAge enumerates standardized eligibility age groups.
var StandardAge = vocab.MustNew("standard_age", []string{
	"child",
	"adult",
	"older_adult",
}, nil)

// ReferenceType enumerates citation reference categories.
var ReferenceType = vocab.MustNew("reference_type", []string{
	"background",
	"result",
	"derived",
}, nil)

// EventAssessment enumerates adverse event collection approaches.
var EventAssessment = vocab.MustNew("event_assessment", []string{
	"non_systematic_assessment",
	"systematic_assessment",
}, nil)

// Vocabularies returns every clinical trials vocabulary, for registry
// registration.
func Vocabularies() []*vocab.Vocabulary {
	return []*vocab.Vocabulary{
		AgencyClass,
		Status,
		DateType,
		StudyType,
		StudyPhase,
		EnrollmentType,
		InterventionType,
		StandardAge,
		ReferenceType,
		EventAssessment,
	}
}
