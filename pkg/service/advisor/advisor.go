package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates an advisor backed by the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

const adviseSystemPrompt = `You are an emergency first aid advisor.
Provide immediate, actionable, step-by-step first aid instructions for a layperson, based strictly on the condition, situation and answered assessment questions given in the user prompt.
If the situation sounds potentially life-threatening, your first step must be to call local emergency services immediately.
Then list only simple, practical steps the person can take while waiting for professional help. Number each step. Use simple language. Be concise and direct. Recommend specific maneuvers when appropriate.
Do not explain medical conditions and do not add conversational filler. Just provide the numbered steps.`

const chatSystemPrompt = `You are a knowledgeable medical assistant.
Provide helpful and informative answers to general medical questions in clear, simple language, explaining specialised terms when they appear.
If you do not know the answer, or the question describes a serious medical issue, advise seeking professional help from a doctor.
Do not generate quizzes, exam questions or multiple-choice answers.`

// Advise generates first aid guidance for the given condition and context
func (c *client) Advise(ctx context.Context, input Input) (string, error) {
	if input.Condition == nil {
		return "", goerr.New("condition is required")
	}

	return c.generate(ctx,
		systemPrompt(adviseSystemPrompt, input.Profile),
		buildAdvicePrompt(input),
	)
}

// Chat answers a general medical question with optional conversation history
func (c *client) Chat(ctx context.Context, input ChatInput) (string, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return "", goerr.New("prompt is required")
	}

	return c.generate(ctx,
		systemPrompt(chatSystemPrompt, input.Profile),
		buildChatPrompt(input),
	)
}

func (c *client) generate(ctx context.Context, system, user string) (string, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(system),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(user))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content from LLM")
	}

	if len(resp.Texts) == 0 || strings.TrimSpace(resp.Texts[0]) == "" {
		return "", goerr.New("LLM returned an empty response")
	}

	return strings.TrimSpace(resp.Texts[0]), nil
}

// systemPrompt prepends the caller's profile context to the base prompt
func systemPrompt(base string, profile *model.UserProfile) string {
	if context := profile.Context(); context != "" {
		return context + "\n\n" + base
	}
	return base
}

// buildAdvicePrompt renders the condition record, situation description and
// answered assessment questions into the user prompt
func buildAdvicePrompt(input Input) string {
	var sb strings.Builder

	cond := input.Condition
	fmt.Fprintf(&sb, "## Condition: %s (severity: %s)\n", cond.Title, cond.Severity.String())
	if cond.Description != "" {
		sb.WriteString(cond.Description)
		sb.WriteString("\n")
	}

	if len(cond.Symptoms) > 0 {
		sb.WriteString("\n## Known symptoms of this condition:\n")
		for _, symptom := range cond.Symptoms {
			sb.WriteString("- " + symptom + "\n")
		}
	}

	if input.Situation != "" {
		sb.WriteString("\n## Situation:\n")
		sb.WriteString(input.Situation)
		sb.WriteString("\n")
	}

	if len(input.Answers) > 0 {
		sb.WriteString("\n## Assessment answers:\n")
		for _, a := range input.Answers {
			fmt.Fprintf(&sb, "- %s: %s\n", a.Question, a.Answer)
		}
	}

	return sb.String()
}

// buildChatPrompt renders prior conversation turns ahead of the question
func buildChatPrompt(input ChatInput) string {
	if len(input.History) == 0 {
		return input.Prompt
	}

	var sb strings.Builder
	sb.WriteString("## Conversation so far:\n")
	for _, msg := range input.History {
		fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Content)
	}
	sb.WriteString("\n## Question:\n")
	sb.WriteString(input.Prompt)

	return sb.String()
}
