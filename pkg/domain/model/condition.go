package model

import (
	"encoding/json"

	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Defaults applied when a dataset record omits a field. Decoding never fails
// on a missing field; it fails only when the document itself is malformed.
const (
	DefaultConditionID    = "unknown_id"
	DefaultConditionTitle = "Unknown Title"
)

// AssessmentQuestion is an open key-value record describing one triage
// question. The schema of individual questions is owned by the dataset, not
// by this module, so it stays a generic mapping.
type AssessmentQuestion map[string]any

// EmergencyCondition is a static knowledge record describing a medical
// emergency: its symptoms, recommended and discouraged actions, and severity.
// Records are immutable after decoding.
type EmergencyCondition struct {
	ID                  string
	Title               string
	Description         string
	Severity            types.Severity
	Symptoms            []string
	Dos                 []string
	Donts               []string
	AssessmentQuestions []AssessmentQuestion
	UrgentActions       []string
}

// EmergencyActions groups the recommended and discouraged actions of a condition
type EmergencyActions struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// Clone returns a deep copy of the condition
func (c *EmergencyCondition) Clone() *EmergencyCondition {
	copied := &EmergencyCondition{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Severity:    c.Severity,
	}

	if c.Symptoms != nil {
		copied.Symptoms = append([]string{}, c.Symptoms...)
	}
	if c.Dos != nil {
		copied.Dos = append([]string{}, c.Dos...)
	}
	if c.Donts != nil {
		copied.Donts = append([]string{}, c.Donts...)
	}
	if c.UrgentActions != nil {
		copied.UrgentActions = append([]string{}, c.UrgentActions...)
	}
	if c.AssessmentQuestions != nil {
		copied.AssessmentQuestions = make([]AssessmentQuestion, len(c.AssessmentQuestions))
		for i, q := range c.AssessmentQuestions {
			copiedQ := make(AssessmentQuestion, len(q))
			for k, v := range q {
				copiedQ[k] = v
			}
			copied.AssessmentQuestions[i] = copiedQ
		}
	}

	return copied
}

// conditionRecord mirrors one entry of the bundled dataset. All fields are
// optional per record; absence falls back to the documented defaults.
type conditionRecord struct {
	ID                  string               `json:"id"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	Severity            string               `json:"severity"`
	Symptoms            []string             `json:"symptoms"`
	Dos                 []string             `json:"dos"`
	Donts               []string             `json:"donts"`
	AssessmentQuestions []AssessmentQuestion `json:"assessment_questions"`
	UrgentActions       []string             `json:"urgent_actions"`
}

// guideDocument is the top-level shape of the bundled dataset
type guideDocument struct {
	Emergencies []conditionRecord `json:"emergencies"`
}

func (r conditionRecord) toCondition() *EmergencyCondition {
	cond := &EmergencyCondition{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		Severity:            types.Severity(r.Severity).Normalize(),
		Symptoms:            r.Symptoms,
		Dos:                 r.Dos,
		Donts:               r.Donts,
		AssessmentQuestions: r.AssessmentQuestions,
		UrgentActions:       r.UrgentActions,
	}

	if cond.ID == "" {
		cond.ID = DefaultConditionID
	}
	if cond.Title == "" {
		cond.Title = DefaultConditionTitle
	}
	if cond.Symptoms == nil {
		cond.Symptoms = []string{}
	}
	if cond.Dos == nil {
		cond.Dos = []string{}
	}
	if cond.Donts == nil {
		cond.Donts = []string{}
	}
	if cond.AssessmentQuestions == nil {
		cond.AssessmentQuestions = []AssessmentQuestion{}
	}
	if cond.UrgentActions == nil {
		cond.UrgentActions = []string{}
	}

	return cond
}

// DecodeGuideDocument parses the bundled JSON dataset and returns the decoded
// conditions in document order. Individual records never fail to decode;
// only a malformed document or a missing emergency list is an error.
func DecodeGuideDocument(data []byte) ([]*EmergencyCondition, error) {
	var doc guideDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse guide document")
	}

	if doc.Emergencies == nil {
		return nil, goerr.New("guide document has no emergency list")
	}

	conditions := make([]*EmergencyCondition, len(doc.Emergencies))
	for i, record := range doc.Emergencies {
		conditions[i] = record.toCondition()
	}

	return conditions, nil
}
