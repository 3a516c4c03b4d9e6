package advisor

import (
	"context"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
)

// Service generates first-aid guidance and answers medical questions with
// an LLM, taking the caller's profile into account when provided.
type Service interface {
	// Advise generates step-by-step first aid instructions for a condition,
	// grounded on the situation description and answered assessment questions
	Advise(ctx context.Context, input Input) (string, error)

	// Chat answers a general medical question, carrying prior conversation turns
	Chat(ctx context.Context, input ChatInput) (string, error)
}

// Answer is one answered assessment question
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Input is the context for an advice generation
type Input struct {
	Condition *model.EmergencyCondition
	Situation string
	Answers   []Answer
	Profile   *model.UserProfile
}

// ChatMessage is one prior conversation turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatInput is the context for a chat answer
type ChatInput struct {
	Prompt  string
	History []ChatMessage
	Profile *model.UserProfile
}
