package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AdviceRequest describes the caller's situation for a known condition
type AdviceRequest struct {
	Situation string
	Answers   []advisor.Answer
	Profile   *model.UserProfile
}

// Advice is first aid guidance for a condition. Generated reports whether the
// text came from the LLM advisor or from the static condition record.
type Advice struct {
	Text      string
	Generated bool
}

// Advise produces first aid guidance for the condition. With an advisor
// configured it asks the LLM, degrading to static guidance from the condition
// record when generation fails. Without one it returns static guidance
// directly. An unknown id yields an error matching memory.ErrNotFound.
func (uc *GuideUseCase) Advise(ctx context.Context, id string, req AdviceRequest) (*Advice, error) {
	cond, err := uc.repo.Guide().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.advisor == nil {
		return &Advice{Text: staticGuidance(cond)}, nil
	}

	text, err := uc.advisor.Advise(ctx, advisor.Input{
		Condition: cond,
		Situation: req.Situation,
		Answers:   req.Answers,
		Profile:   req.Profile,
	})
	if err != nil {
		logging.From(ctx).Warn("advice generation failed, returning static guidance",
			"condition", id, "error", err.Error())
		return &Advice{Text: staticGuidance(cond)}, nil
	}

	return &Advice{Text: text, Generated: true}, nil
}

// Chat answers a general medical question. Unlike Advise there is no static
// fallback, so an advisor must be configured.
func (uc *GuideUseCase) Chat(ctx context.Context, input advisor.ChatInput) (string, error) {
	if uc.advisor == nil {
		return "", goerr.Wrap(ErrAdvisorUnavailable, "chat requires an LLM advisor")
	}

	answer, err := uc.advisor.Chat(ctx, input)
	if err != nil {
		return "", goerr.Wrap(err, "failed to answer chat prompt")
	}

	return answer, nil
}

// ErrAdvisorUnavailable indicates an operation that needs the LLM advisor was
// called without one configured
var ErrAdvisorUnavailable = goerr.New("advisor is not configured")

// staticGuidance builds numbered first aid steps from the condition record
// alone: urgent actions first, then recommended actions. High-severity
// conditions without urgent actions still lead with calling emergency
// services.
func staticGuidance(cond *model.EmergencyCondition) string {
	steps := make([]string, 0, len(cond.UrgentActions)+len(cond.Dos)+1)
	steps = append(steps, cond.UrgentActions...)

	if len(steps) == 0 && cond.Severity.Normalize() == types.SeverityHigh {
		steps = append(steps, "Call your local emergency services immediately.")
	}
	steps = append(steps, cond.Dos...)

	if len(steps) == 0 {
		return "Monitor the person and seek professional medical help if the situation worsens."
	}

	var sb strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
