package trials

import (
	"errors"
	"testing"

	"github.com/hazyhaar/drugreg/pkg/convert"
)

// studyFixture is a trimmed ClinicalTrials.gov v2 study with field spellings
// as the API transmits them.
func studyFixture() convert.Raw {
	return convert.Raw{
		"protocolSection": map[string]any{
			"identificationModule": map[string]any{
				"nctId":      "NCT00769782",
				"briefTitle": "Imatinib in Patients With Chronic Myeloid Leukemia",
				"orgStudyIdInfo": map[string]any{
					"id": "CAMN107A2303",
				},
				"organization": map[string]any{
					"fullName": "Novartis Pharmaceuticals",
					"class":    "INDUSTRY",
				},
			},
			"statusModule": map[string]any{
				"overallStatus": "COMPLETED",
				"startDateStruct": map[string]any{
					"date": "2008-09",
					"type": "ACTUAL",
				},
				"completionDateStruct": map[string]any{
					"date": "2013-12-17",
				},
				"studyFirstSubmitDate": "2008",
			},
			"sponsorCollaboratorsModule": map[string]any{
				"leadSponsor": map[string]any{
					"name":  "Novartis Pharmaceuticals",
					"class": "INDUSTRY",
				},
			},
			"oversightModule": map[string]any{
				"oversightHasDmc":    true,
				"isFdaRegulatedDrug": false,
			},
			"designModule": map[string]any{
				"studyType": "INTERVENTIONAL",
				"phases":    []any{"PHASE3"},
				"enrollmentInfo": map[string]any{
					"count": float64(846),
					"type":  "ACTUAL",
				},
			},
			"armsInterventionsModule": map[string]any{
				"interventions": []any{
					map[string]any{
						"type":       "DRUG",
						"name":       "Imatinib",
						"otherNames": []any{"Gleevec"},
					},
				},
			},
			"eligibilityModule": map[string]any{
				"minimumAge": "18 Years",
				"stdAges":    []any{"ADULT", "OLDER_ADULT"},
			},
		},
		"resultsSection": map[string]any{
			"adverseEventsModule": map[string]any{
				"frequencyThreshold": "5",
				"seriousEvents": []any{
					map[string]any{
						"term":           "Anaemia",
						"organSystem":    "Blood and lymphatic system disorders",
						"assessmentType": "SYSTEMATIC_ASSESSMENT",
						"stats": []any{
							map[string]any{
								"groupId":     "EG000",
								"numAffected": float64(12),
								"numAtRisk":   float64(422),
							},
						},
					},
				},
			},
		},
		"derivedSection": map[string]any{
			"conditionBrowseModule": map[string]any{
				"meshes": []any{
					map[string]any{"id": "D015464", "term": "Leukemia, Myelogenous, Chronic, BCR-ABL Positive"},
				},
			},
		},
	}
}

func TestAssembleStudy_Normalized(t *testing.T) {
	asm := NewAssembler(true, nil)

	study, err := asm.Study(studyFixture())
	if err != nil {
		t.Fatalf("Study: %v", err)
	}

	id := study.Protocol.Identification
	if id == nil || id.NCTID != "NCT00769782" {
		t.Fatalf("Identification = %+v", id)
	}
	if id.Organization.Class != "industry" {
		t.Errorf("organization class = %q, want industry", id.Organization.Class)
	}
	if id.OrgStudyID == nil || id.OrgStudyID.ID != "CAMN107A2303" {
		t.Errorf("OrgStudyID = %+v", id.OrgStudyID)
	}

	status := study.Protocol.Status
	if status.OverallStatus != "completed" {
		t.Errorf("OverallStatus = %q, want completed", status.OverallStatus)
	}
	// A year-month date completes to the first of the month.
	if status.Dates.StartDate.Time == nil || status.Dates.StartDate.Time.Format("2006-01-02") != "2008-09-01" {
		t.Errorf("StartDate = %+v", status.Dates.StartDate)
	}
	if status.Dates.StartDateType != "actual" {
		t.Errorf("StartDateType = %q, want actual", status.Dates.StartDateType)
	}
	if status.Dates.CompletionDate.Time == nil || status.Dates.CompletionDate.Time.Format("2006-01-02") != "2013-12-17" {
		t.Errorf("CompletionDate = %+v", status.Dates.CompletionDate)
	}
	// Date type absent from the struct stays empty.
	if status.Dates.CompletionDateType != "" {
		t.Errorf("CompletionDateType = %q, want empty", status.Dates.CompletionDateType)
	}
	// A bare year completes to January 1.
	if status.Dates.StudyFirstSubmitDate.Time == nil || status.Dates.StudyFirstSubmitDate.Time.Format("2006-01-02") != "2008-01-01" {
		t.Errorf("StudyFirstSubmitDate = %+v", status.Dates.StudyFirstSubmitDate)
	}

	design := study.Protocol.Design
	if design.StudyType != "interventional" {
		t.Errorf("StudyType = %q, want interventional", design.StudyType)
	}
	// The API spells phases without the underscore; the alias repairs it.
	if len(design.Phases) != 1 || design.Phases[0] != "phase_3" {
		t.Errorf("Phases = %v, want [phase_3]", design.Phases)
	}
	if design.Enrollment == nil || design.Enrollment.Count == nil || *design.Enrollment.Count != 846 {
		t.Errorf("Enrollment = %+v", design.Enrollment)
	}

	ints := study.Protocol.ArmsInterventions.Interventions
	if len(ints) != 1 || ints[0].Type != "drug" || ints[0].Name != "Imatinib" {
		t.Errorf("Interventions = %+v", ints)
	}

	elig := study.Protocol.Eligibility
	if elig.MinAge != "18 Years" {
		t.Errorf("MinAge = %q", elig.MinAge)
	}
	if len(elig.StdAges) != 2 || elig.StdAges[0] != "adult" || elig.StdAges[1] != "older_adult" {
		t.Errorf("StdAges = %v", elig.StdAges)
	}

	if study.Protocol.Oversight.HasDMC == nil || !*study.Protocol.Oversight.HasDMC {
		t.Errorf("HasDMC = %v, want true", study.Protocol.Oversight.HasDMC)
	}

	events := study.Results.AdverseEvents.SeriousEvents
	if len(events) != 1 || events[0].AssessmentType != "systematic_assessment" {
		t.Fatalf("SeriousEvents = %+v", events)
	}
	if len(events[0].Stats) != 1 || *events[0].Stats[0].NumAffected != 12 {
		t.Errorf("Stats = %+v", events[0].Stats)
	}

	if len(study.Derived.Conditions) != 1 || study.Derived.Conditions[0].ID != "D015464" {
		t.Errorf("Derived = %+v", study.Derived)
	}
}

func TestAssembleStudy_RawMode(t *testing.T) {
	asm := NewAssembler(false, nil)

	study, err := asm.Study(studyFixture())
	if err != nil {
		t.Fatalf("Study: %v", err)
	}
	if study.Protocol.Status.OverallStatus != "COMPLETED" {
		t.Errorf("OverallStatus = %q, want original spelling", study.Protocol.Status.OverallStatus)
	}
	start := study.Protocol.Status.Dates.StartDate
	if start.Time != nil || start.Raw != "2008-09" {
		t.Errorf("StartDate = %+v, want raw echo", start)
	}
	if study.Protocol.Design.Phases[0] != "PHASE3" {
		t.Errorf("Phases = %v, want original spelling", study.Protocol.Design.Phases)
	}
}

func TestAssembleStudy_MissingProtocol(t *testing.T) {
	asm := NewAssembler(true, nil)
	if _, err := asm.Study(convert.Raw{}); !errors.Is(err, convert.ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}

func TestAssembleStudy_BadDateFailsHard(t *testing.T) {
	data := studyFixture()
	protocol := data["protocolSection"].(map[string]any)
	statusModule := protocol["statusModule"].(map[string]any)
	statusModule["studyFirstSubmitDate"] = "not-a-date"

	asm := NewAssembler(true, nil)
	if _, err := asm.Study(data); !errors.Is(err, convert.ErrUnparseableDate) {
		t.Errorf("err = %v, want ErrUnparseableDate", err)
	}
}

func TestAssembleStudy_UnrecognizedStatusDegrades(t *testing.T) {
	data := studyFixture()
	protocol := data["protocolSection"].(map[string]any)
	statusModule := protocol["statusModule"].(map[string]any)
	statusModule["overallStatus"] = "PONDERING"

	asm := NewAssembler(true, nil)
	study, err := asm.Study(data)
	if err != nil {
		t.Fatalf("Study: %v", err)
	}
	if study.Protocol.Status.OverallStatus != "PONDERING" {
		t.Errorf("OverallStatus = %q, want raw echo", study.Protocol.Status.OverallStatus)
	}
}
