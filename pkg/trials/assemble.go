package trials

import (
	"fmt"

	"github.com/hazyhaar/drugreg/pkg/convert"
	"github.com/hazyhaar/drugreg/pkg/vocab"
)

// Assembler builds typed study records from raw API v2 response objects.
// Modules absent from the payload stay nil. Dates use the flexible
// year / year-month / full-date family, which is strict: a malformed date
// fails the whole study's assembly rather than degrading, since the API is
// assumed to emit well-formed dates.
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

// Study assembles one study record. The protocol section is mandatory.
func (a *Assembler) Study(data convert.Raw) (*Study, error) {
	rawProtocol, ok := data.Object("protocolSection")
	if !ok {
		return nil, fmt.Errorf("%w: protocolSection", convert.ErrMissingField)
	}
	protocol, err := a.protocol(rawProtocol)
	if err != nil {
		return nil, err
	}
	study := &Study{Protocol: protocol}

	if rawResults, ok := data.Object("resultsSection"); ok {
		results, err := a.results(rawResults)
		if err != nil {
			return nil, a.wrap(protocol, err)
		}
		study.Results = results
	}
	if rawDerived, ok := data.Object("derivedSection"); ok {
		study.Derived = a.derived(rawDerived)
	}
	return study, nil
}

// wrap prefixes err with the study's NCT number when identification was
// assembled, so a failure in a later section names the study.
func (a *Assembler) wrap(protocol *Protocol, err error) error {
	if protocol != nil && protocol.Identification != nil {
		return fmt.Errorf("study %s: %w", protocol.Identification.NCTID, err)
	}
	return err
}

func (a *Assembler) protocol(data convert.Raw) (*Protocol, error) {
	p := &Protocol{}
	var err error

	if raw, ok := data.Object("identificationModule"); ok {
		if p.Identification, err = a.identification(raw); err != nil {
			return nil, err
		}
	}
	if raw, ok := data.Object("statusModule"); ok {
		if p.Status, err = a.status(raw); err != nil {
			return nil, a.wrap(p, err)
		}
	}
	if raw, ok := data.Object("sponsorCollaboratorsModule"); ok {
		if p.SponsorCollaborators, err = a.sponsorCollaborators(raw); err != nil {
			return nil, a.wrap(p, err)
		}
	}
	if raw, ok := data.Object("oversightModule"); ok {
		p.Oversight = &Oversight{
			HasDMC:               raw.OptBool("oversightHasDmc"),
			IsFDARegulatedDrug:   raw.OptBool("isFdaRegulatedDrug"),
			IsFDARegulatedDevice: raw.OptBool("isFdaRegulatedDevice"),
			IsUnapprovedDevice:   raw.OptBool("isUnapprovedDevice"),
			IsPPSD:               raw.OptBool("isPPSD"),
		}
	}
	if raw, ok := data.Object("descriptionModule"); ok {
		summary, _ := raw.OptString("briefSummary")
		detailed, _ := raw.OptString("detailedDescription")
		p.Description = &Description{Summary: summary, Detailed: detailed}
	}
	if raw, ok := data.Object("conditionsModule"); ok {
		conditions, _ := raw.Strings("conditions")
		keywords, _ := raw.Strings("keywords")
		p.Conditions = &Conditions{Conditions: conditions, Keywords: keywords}
	}
	if raw, ok := data.Object("designModule"); ok {
		if p.Design, err = a.design(raw); err != nil {
			return nil, a.wrap(p, err)
		}
	}
	if raw, ok := data.Object("armsInterventionsModule"); ok {
		if p.ArmsInterventions, err = a.armsInterventions(raw); err != nil {
			return nil, a.wrap(p, err)
		}
	}
	if raw, ok := data.Object("outcomesModule"); ok {
		p.Outcomes = a.outcomes(raw)
	}
	if raw, ok := data.Object("eligibilityModule"); ok {
		if p.Eligibility, err = a.eligibility(raw); err != nil {
			return nil, a.wrap(p, err)
		}
	}
	if raw, ok := data.Object("referencesModule"); ok {
		if rawRefs, ok := raw.List("references"); ok {
			p.References = make([]Reference, 0, len(rawRefs))
			for _, rr := range rawRefs {
				ref, err := a.reference(rr)
				if err != nil {
					return nil, a.wrap(p, err)
				}
				p.References = append(p.References, ref)
			}
		}
	}
	return p, nil
}

func (a *Assembler) identification(data convert.Raw) (*Identification, error) {
	nctID, err := data.String("nctId")
	if err != nil {
		return nil, err
	}
	brief, err := data.String("briefTitle")
	if err != nil {
		return nil, fmt.Errorf("study %s: %w", nctID, err)
	}

	id := &Identification{NCTID: nctID, BriefTitle: brief}
	id.NCTIDAliases, _ = data.Strings("nctIdAlias")
	id.OfficialTitle, _ = data.OptString("officialTitle")

	if rawOrgID, ok := data.Object("orgStudyIdInfo"); ok {
		orgID, err := rawOrgID.String("id")
		if err != nil {
			return nil, fmt.Errorf("study %s: %w", nctID, err)
		}
		idType, _ := rawOrgID.OptString("orgStudyIdType")
		link, _ := rawOrgID.OptString("orgStudyIdLink")
		id.OrgStudyID = &OrgStudyID{ID: orgID, Type: idType, Link: link}

		if rawSecondaries, ok := data.List("secondaryIdInfos"); ok {
			id.SecondaryOrgIDs = make([]OrgStudyID, 0, len(rawSecondaries))
			for _, rs := range rawSecondaries {
				secID, err := rs.String("id")
				if err != nil {
					return nil, fmt.Errorf("study %s: %w", nctID, err)
				}
				secType, _ := rs.OptString("type")
				secLink, _ := rs.OptString("link")
				secDomain, _ := rs.OptString("domain")
				id.SecondaryOrgIDs = append(id.SecondaryOrgIDs, OrgStudyID{
					ID: secID, Type: secType, Link: secLink, Domain: secDomain,
				})
			}
		}
	}

	rawOrg, ok := data.Object("organization")
	if !ok {
		return nil, fmt.Errorf("study %s: %w: organization", nctID, convert.ErrMissingField)
	}
	fullName, err := rawOrg.String("fullName")
	if err != nil {
		return nil, fmt.Errorf("study %s: %w", nctID, err)
	}
	id.Organization.FullName = fullName
	if class, ok := rawOrg.OptString("class"); ok {
		if id.Organization.Class, err = a.term(class, AgencyClass); err != nil {
			return nil, fmt.Errorf("study %s: %w", nctID, err)
		}
	}
	return id, nil
}

func (a *Assembler) status(data convert.Raw) (*ProtocolStatus, error) {
	s := &ProtocolStatus{}
	var err error

	if raw, ok := data.OptString("overallStatus"); ok {
		if s.OverallStatus, err = a.term(raw, Status); err != nil {
			return nil, err
		}
	}
	if raw, ok := data.OptString("lastKnownStatus"); ok {
		if s.LastKnownStatus, err = a.term(raw, Status); err != nil {
			return nil, err
		}
	}
	s.DelayedPosting, _ = data.OptString("delayedPosting")
	s.WhyStopped, _ = data.OptString("whyStopped")
	s.ResultsWaived = data.OptBool("resultsWaived")

	if raw, ok := data.Object("expandedAccessInfo"); ok {
		nctID, _ := raw.OptString("expandedAccessNCTId")
		statusFor, _ := raw.OptString("expandedAccessStatusForNCTId")
		s.ExpandedAccess = &ExpandedAccessInfo{
			HasExpandedAccess: raw.OptBool("hasExpandedAccess"),
			NCTID:             nctID,
			StatusForNCTID:    statusFor,
		}
	}
	if s.Dates, err = a.statusDates(data); err != nil {
		return nil, err
	}
	return s, nil
}

// statusDates reads the milestone dates out of the status module. The three
// dated structs pair a date with an actual/estimated type; the submit dates
// are bare strings.
func (a *Assembler) statusDates(data convert.Raw) (StatusDates, error) {
	d := StatusDates{}
	var err error

	if d.StartDate, d.StartDateType, err = a.dateStruct(data, "startDateStruct"); err != nil {
		return StatusDates{}, err
	}
	if d.PrimaryCompletionDate, d.PrimaryCompletionDateType, err = a.dateStruct(data, "primaryCompletionDateStruct"); err != nil {
		return StatusDates{}, err
	}
	if d.CompletionDate, d.CompletionDateType, err = a.dateStruct(data, "completionDateStruct"); err != nil {
		return StatusDates{}, err
	}

	if raw, ok := data.OptString("studyFirstSubmitDate"); ok {
		if d.StudyFirstSubmitDate, err = a.flexDate(raw); err != nil {
			return StatusDates{}, err
		}
	}
	if raw, ok := data.OptString("resultsFirstSubmitDate"); ok {
		if d.ResultsFirstSubmitDate, err = a.flexDate(raw); err != nil {
			return StatusDates{}, err
		}
	}
	if raw, ok := data.OptString("lastUpdateSubmitDate"); ok {
		if d.LastUpdateSubmitDate, err = a.flexDate(raw); err != nil {
			return StatusDates{}, err
		}
	}
	return d, nil
}

func (a *Assembler) dateStruct(data convert.Raw, key string) (convert.Date, convert.Term, error) {
	raw, ok := data.Object(key)
	if !ok {
		return convert.Date{}, "", nil
	}
	rawDate, err := raw.String("date")
	if err != nil {
		return convert.Date{}, "", fmt.Errorf("%s: %w", key, err)
	}
	date, err := a.flexDate(rawDate)
	if err != nil {
		return convert.Date{}, "", err
	}
	var dateType convert.Term
	if rawType, ok := raw.OptString("type"); ok {
		if dateType, err = a.term(rawType, DateType); err != nil {
			return convert.Date{}, "", err
		}
	}
	return date, dateType, nil
}

func (a *Assembler) sponsorCollaborators(data convert.Raw) (*SponsorCollaborators, error) {
	rawLead, ok := data.Object("leadSponsor")
	if !ok {
		return nil, fmt.Errorf("%w: leadSponsor", convert.ErrMissingField)
	}
	name, err := rawLead.String("name")
	if err != nil {
		return nil, err
	}
	sc := &SponsorCollaborators{LeadSponsorName: name}
	if class, ok := rawLead.OptString("class"); ok {
		if sc.LeadSponsorClass, err = a.term(class, AgencyClass); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func (a *Assembler) design(data convert.Raw) (*Design, error) {
	rawType, err := data.String("studyType")
	if err != nil {
		return nil, err
	}
	d := &Design{}
	if d.StudyType, err = a.term(rawType, StudyType); err != nil {
		return nil, err
	}
	if rawPhases, ok := data.Strings("phases"); ok {
		if d.Phases, err = a.termList(rawPhases, StudyPhase); err != nil {
			return nil, err
		}
	}
	if raw, ok := data.Object("enrollmentInfo"); ok {
		e := &Enrollment{Count: raw.OptInt("count")}
		if rawType, ok := raw.OptString("type"); ok {
			if e.Type, err = a.term(rawType, EnrollmentType); err != nil {
				return nil, err
			}
		}
		d.Enrollment = e
	}
	return d, nil
}

func (a *Assembler) armsInterventions(data convert.Raw) (*ArmsInterventions, error) {
	ai := &ArmsInterventions{}
	rawInts, ok := data.List("interventions")
	if !ok {
		return ai, nil
	}
	ai.Interventions = make([]Intervention, 0, len(rawInts))
	for _, ri := range rawInts {
		i := Intervention{}
		var err error
		if rawType, ok := ri.OptString("type"); ok {
			if i.Type, err = a.term(rawType, InterventionType); err != nil {
				return nil, err
			}
		}
		i.Name, _ = ri.OptString("name")
		i.Description, _ = ri.OptString("description")
		i.Aliases, _ = ri.Strings("otherNames")
		ai.Interventions = append(ai.Interventions, i)
	}
	return ai, nil
}

func (a *Assembler) outcomes(data convert.Raw) *Outcomes {
	readList := func(key string) []Outcome {
		rawOutcomes, ok := data.List(key)
		if !ok {
			return nil
		}
		out := make([]Outcome, 0, len(rawOutcomes))
		for _, ro := range rawOutcomes {
			measure, _ := ro.OptString("measure")
			description, _ := ro.OptString("description")
			timeFrame, _ := ro.OptString("timeFrame")
			out = append(out, Outcome{Measure: measure, Description: description, TimeFrame: timeFrame})
		}
		return out
	}
	return &Outcomes{
		Primary:   readList("primaryOutcomes"),
		Secondary: readList("secondaryOutcomes"),
	}
}

func (a *Assembler) eligibility(data convert.Raw) (*Eligibility, error) {
	e := &Eligibility{}
	e.MinAge, _ = data.OptString("minimumAge")
	e.MaxAge, _ = data.OptString("maximumAge")
	if rawAges, ok := data.Strings("stdAges"); ok {
		var err error
		if e.StdAges, err = a.termList(rawAges, StandardAge); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (a *Assembler) reference(data convert.Raw) (Reference, error) {
	r := Reference{}
	r.PMID, _ = data.OptString("pmid")
	r.Citation, _ = data.OptString("citation")
	if rawType, ok := data.OptString("type"); ok {
		var err error
		if r.Type, err = a.term(rawType, ReferenceType); err != nil {
			return Reference{}, err
		}
	}
	if rawRetraction, ok := data.Object("retraction"); ok {
		r.RetractionPMID, _ = rawRetraction.OptString("retractionPmid")
		r.RetractionSource, _ = rawRetraction.OptString("retractionSource")
	}
	return r, nil
}

func (a *Assembler) results(data convert.Raw) (*Results, error) {
	r := &Results{}
	rawAEs, ok := data.Object("adverseEventsModule")
	if !ok {
		return r, nil
	}
	aes := &AdverseEvents{}
	aes.FrequencyThreshold, _ = rawAEs.OptString("frequencyThreshold")
	aes.TimeFrame, _ = rawAEs.OptString("timeFrame")
	aes.Description, _ = rawAEs.OptString("description")
	aes.AllCauseMortalityComment, _ = rawAEs.OptString("allCauseMortalityComment")

	var err error
	if aes.SeriousEvents, err = a.adverseEvents(rawAEs, "seriousEvents"); err != nil {
		return nil, err
	}
	if aes.OtherEvents, err = a.adverseEvents(rawAEs, "otherEvents"); err != nil {
		return nil, err
	}
	r.AdverseEvents = aes
	return r, nil
}

func (a *Assembler) adverseEvents(data convert.Raw, key string) ([]AdverseEvent, error) {
	rawEvents, ok := data.List(key)
	if !ok {
		return nil, nil
	}
	events := make([]AdverseEvent, 0, len(rawEvents))
	for _, re := range rawEvents {
		e := AdverseEvent{}
		e.Term, _ = re.OptString("term")
		e.OrganSystem, _ = re.OptString("organSystem")
		e.SourceVocabulary, _ = re.OptString("sourceVocabulary")
		e.Notes, _ = re.OptString("notes")
		if rawType, ok := re.OptString("assessmentType"); ok {
			var err error
			if e.AssessmentType, err = a.term(rawType, EventAssessment); err != nil {
				return nil, err
			}
		}
		if rawStats, ok := re.List("stats"); ok {
			e.Stats = make([]AdverseEventStat, 0, len(rawStats))
			for _, rs := range rawStats {
				groupID, _ := rs.OptString("groupId")
				e.Stats = append(e.Stats, AdverseEventStat{
					GroupID:     groupID,
					NumEvents:   rs.OptInt("numEvents"),
					NumAffected: rs.OptInt("numAffected"),
					NumAtRisk:   rs.OptInt("numAtRisk"),
				})
			}
		}
		events = append(events, e)
	}
	return events, nil
}

func (a *Assembler) derived(data convert.Raw) *Derived {
	d := &Derived{}
	rawBrowse, ok := data.Object("conditionBrowseModule")
	if !ok {
		return d
	}
	rawMeshes, ok := rawBrowse.List("meshes")
	if !ok {
		return d
	}
	d.Conditions = make([]MeshConcept, 0, len(rawMeshes))
	for _, rm := range rawMeshes {
		id, _ := rm.OptString("id")
		term, _ := rm.OptString("term")
		d.Conditions = append(d.Conditions, MeshConcept{ID: id, Term: term})
	}
	return d
}

func (a *Assembler) term(raw string, v *vocab.Vocabulary) (convert.Term, error) {
	if !a.normalize {
		return convert.Term(raw), nil
	}
	return a.conv.Term(raw, v)
}

func (a *Assembler) termList(raw []string, v *vocab.Vocabulary) ([]convert.Term, error) {
	out := make([]convert.Term, 0, len(raw))
	for _, s := range raw {
		t, err := a.term(s, v)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (a *Assembler) flexDate(raw string) (convert.Date, error) {
	if !a.normalize {
		return convert.RawDate(raw), nil
	}
	return a.conv.FlexDate(raw)
}
