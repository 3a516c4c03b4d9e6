package usecase

import (
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
)

// FallbackConditions returns the fixed minimal dataset installed when the
// bundled guide document cannot be loaded, so the service is never left empty.
func FallbackConditions() []*model.EmergencyCondition {
	return []*model.EmergencyCondition{
		{
			ID:          "heart_attack",
			Title:       "Heart Attack",
			Description: "Blockage of blood flow to the heart muscle.",
			Severity:    types.SeverityHigh,
			Symptoms: []string{
				"Chest pain or pressure",
				"Shortness of breath",
				"Pain radiating to arm or jaw",
			},
			Dos: []string{
				"Call emergency services immediately",
				"Help the person sit down and rest",
				"Give aspirin to chew if not allergic",
			},
			Donts: []string{
				"Do not leave the person alone",
				"Do not give food or drink",
			},
			AssessmentQuestions: []model.AssessmentQuestion{
				{"question": "Is the person conscious and responsive?", "type": "yes_no"},
			},
			UrgentActions: []string{
				"Call emergency services now",
				"Start CPR if unresponsive and not breathing normally",
			},
		},
		{
			ID:          "stroke",
			Title:       "Stroke",
			Description: "Interrupted blood supply to part of the brain.",
			Severity:    types.SeverityHigh,
			Symptoms: []string{
				"Sudden facial drooping",
				"Arm weakness",
				"Slurred speech",
			},
			Dos: []string{
				"Call emergency services immediately",
				"Note the time symptoms started",
			},
			Donts: []string{
				"Do not give food, drink or medication",
			},
			AssessmentQuestions: []model.AssessmentQuestion{
				{"question": "Does one side of the face droop when smiling?", "type": "yes_no"},
			},
			UrgentActions: []string{
				"Call emergency services now",
				"Record the symptom onset time for responders",
			},
		},
	}
}
