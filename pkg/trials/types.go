// Package trials is a client for the ClinicalTrials.gov v2 API: study
// records looked up by intervention drug name, with enum-valued fields
// optionally normalized to controlled vocabularies and dates parsed from the
// API's year, year-month, and full-date spellings.
package trials

import "github.com/hazyhaar/drugreg/pkg/convert"

// Study is one registered clinical trial.
type Study struct {
	Protocol *Protocol `json:"protocol"`
	Results  *Results  `json:"results,omitempty"`
	Derived  *Derived  `json:"derived,omitempty"`
}

// Protocol groups the protocol section's modules. Each module is optional;
// the API omits modules the registrant never filled in.
type Protocol struct {
	Identification       *Identification       `json:"identification,omitempty"`
	Status               *ProtocolStatus       `json:"status,omitempty"`
	SponsorCollaborators *SponsorCollaborators `json:"sponsor_collaborators,omitempty"`
	Oversight            *Oversight            `json:"oversight,omitempty"`
	Description          *Description          `json:"description,omitempty"`
	Conditions           *Conditions           `json:"conditions,omitempty"`
	Design               *Design               `json:"design,omitempty"`
	ArmsInterventions    *ArmsInterventions    `json:"arms_interventions,omitempty"`
	Outcomes             *Outcomes             `json:"outcomes,omitempty"`
	Eligibility          *Eligibility          `json:"eligibility,omitempty"`
	References           []Reference           `json:"references,omitempty"`
}

// Identification carries the study's registry identifiers and titles.
type Identification struct {
	NCTID           string       `json:"nct_id"`
	NCTIDAliases    []string     `json:"nct_id_aliases,omitempty"`
	OrgStudyID      *OrgStudyID  `json:"org_study_id,omitempty"`
	SecondaryOrgIDs []OrgStudyID `json:"secondary_org_ids,omitempty"`
	BriefTitle      string       `json:"brief_title"`
	OfficialTitle   string       `json:"official_title,omitempty"`
	Organization    Organization `json:"organization"`
}

// OrgStudyID is an identifier assigned by the registering organization or a
// secondary registry.
type OrgStudyID struct {
	ID     string `json:"id"`
	Type   string `json:"type,omitempty"`
	Link   string `json:"link,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// Organization names the registering organization.
type Organization struct {
	FullName string       `json:"full_name"`
	Class    convert.Term `json:"class,omitempty"`
}

// ProtocolStatus carries recruitment status and milestone dates.
type ProtocolStatus struct {
	OverallStatus   convert.Term        `json:"overall_status,omitempty"`
	LastKnownStatus convert.Term        `json:"last_known_status,omitempty"`
	DelayedPosting  string              `json:"delayed_posting,omitempty"`
	WhyStopped      string              `json:"why_stopped,omitempty"`
	ExpandedAccess  *ExpandedAccessInfo `json:"expanded_access,omitempty"`
	Dates           StatusDates         `json:"dates"`
	ResultsWaived   *bool               `json:"results_waived,omitempty"`
}

// ExpandedAccessInfo points at a companion expanded access record.
type ExpandedAccessInfo struct {
	HasExpandedAccess *bool  `json:"has_expanded_access,omitempty"`
	NCTID             string `json:"nct_id,omitempty"`
	StatusForNCTID    string `json:"status_for_nct_id,omitempty"`
}

// StatusDates carries the study's milestone dates. Each date uses the
// flexible year / year-month / full-date formats.
type StatusDates struct {
	StartDate                 convert.Date `json:"start_date,omitempty"`
	StartDateType             convert.Term `json:"start_date_type,omitempty"`
	PrimaryCompletionDate     convert.Date `json:"primary_completion_date,omitempty"`
	PrimaryCompletionDateType convert.Term `json:"primary_completion_date_type,omitempty"`
	CompletionDate            convert.Date `json:"completion_date,omitempty"`
	CompletionDateType        convert.Term `json:"completion_date_type,omitempty"`
	StudyFirstSubmitDate      convert.Date `json:"study_first_submit_date,omitempty"`
	ResultsFirstSubmitDate    convert.Date `json:"results_first_submit_date,omitempty"`
	LastUpdateSubmitDate      convert.Date `json:"last_update_submit_date,omitempty"`
}

// SponsorCollaborators names the lead sponsor.
type SponsorCollaborators struct {
	LeadSponsorName  string       `json:"lead_sponsor_name"`
	LeadSponsorClass convert.Term `json:"lead_sponsor_class,omitempty"`
}

// Oversight carries regulatory oversight flags.
type Oversight struct {
	HasDMC               *bool `json:"has_dmc,omitempty"`
	IsFDARegulatedDrug   *bool `json:"is_fda_regulated_drug,omitempty"`
	IsFDARegulatedDevice *bool `json:"is_fda_regulated_device,omitempty"`
	IsUnapprovedDevice   *bool `json:"is_unapproved_device,omitempty"`
	IsPPSD               *bool `json:"is_ppsd,omitempty"`
}

// Description carries the study's free-text summaries.
type Description struct {
	Summary  string `json:"summary,omitempty"`
	Detailed string `json:"detailed,omitempty"`
}

// Conditions lists the studied conditions and registrant keywords.
type Conditions struct {
	Conditions []string `json:"conditions,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// Design carries study type, phases, and enrollment.
type Design struct {
	StudyType  convert.Term   `json:"study_type"`
	Phases     []convert.Term `json:"phases,omitempty"`
	Enrollment *Enrollment    `json:"enrollment,omitempty"`
}

// Enrollment is the participant count and whether it is actual or estimated.
type Enrollment struct {
	Count *int         `json:"count,omitempty"`
	Type  convert.Term `json:"type,omitempty"`
}

// Intervention is one protocol intervention.
type Intervention struct {
	Type        convert.Term `json:"type,omitempty"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Aliases     []string     `json:"aliases,omitempty"`
}

// ArmsInterventions groups the protocol's interventions.
type ArmsInterventions struct {
	Interventions []Intervention `json:"interventions,omitempty"`
}

// Outcome is one measured endpoint.
type Outcome struct {
	Measure     string `json:"measure,omitempty"`
	Description string `json:"description,omitempty"`
	TimeFrame   string `json:"time_frame,omitempty"`
}

// Outcomes groups primary and secondary endpoints.
type Outcomes struct {
	Primary   []Outcome `json:"primary,omitempty"`
	Secondary []Outcome `json:"secondary,omitempty"`
}

// Eligibility carries participant age restrictions. Minimum and maximum ages
// are free-text spans like "18 Years" and are not normalized.
type Eligibility struct {
	MinAge  string         `json:"min_age,omitempty"`
	MaxAge  string         `json:"max_age,omitempty"`
	StdAges []convert.Term `json:"std_ages,omitempty"`
}

// Reference is one literature citation attached to the study.
type Reference struct {
	PMID             string       `json:"pmid,omitempty"`
	Type             convert.Term `json:"type,omitempty"`
	Citation         string       `json:"citation,omitempty"`
	RetractionPMID   string       `json:"retraction_pmid,omitempty"`
	RetractionSource string       `json:"retraction_source,omitempty"`
}

// Results carries the posted results section.
type Results struct {
	AdverseEvents *AdverseEvents `json:"adverse_events,omitempty"`
}

// AdverseEvents groups serious and other reported adverse events.
type AdverseEvents struct {
	FrequencyThreshold       string         `json:"frequency_threshold,omitempty"`
	TimeFrame                string         `json:"time_frame,omitempty"`
	Description              string         `json:"description,omitempty"`
	AllCauseMortalityComment string         `json:"all_cause_mortality_comment,omitempty"`
	SeriousEvents            []AdverseEvent `json:"serious_events,omitempty"`
	OtherEvents              []AdverseEvent `json:"other_events,omitempty"`
}

// AdverseEvent is one reported adverse event term.
type AdverseEvent struct {
	Term             string             `json:"term,omitempty"`
	OrganSystem      string             `json:"organ_system,omitempty"`
	SourceVocabulary string             `json:"source_vocabulary,omitempty"`
	AssessmentType   convert.Term       `json:"assessment_type,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Stats            []AdverseEventStat `json:"stats,omitempty"`
}

// AdverseEventStat is one arm group's event counts.
type AdverseEventStat struct {
	GroupID     string `json:"group_id,omitempty"`
	NumEvents   *int   `json:"num_events,omitempty"`
	NumAffected *int   `json:"num_affected,omitempty"`
	NumAtRisk   *int   `json:"num_at_risk,omitempty"`
}

// Derived carries curator-derived annotations.
type Derived struct {
	Conditions []MeshConcept `json:"conditions,omitempty"`
}

// MeshConcept is one MeSH heading assigned to the study.
type MeshConcept struct {
	ID   string `json:"id,omitempty"`
	Term string `json:"term,omitempty"`
}
