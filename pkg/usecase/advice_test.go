package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type fakeAdvisor struct {
	adviseResp string
	adviseErr  error
	chatResp   string
	chatErr    error

	lastInput advisor.Input
	lastChat  advisor.ChatInput
}

func (a *fakeAdvisor) Advise(ctx context.Context, input advisor.Input) (string, error) {
	a.lastInput = input
	return a.adviseResp, a.adviseErr
}

func (a *fakeAdvisor) Chat(ctx context.Context, input advisor.ChatInput) (string, error) {
	a.lastChat = input
	return a.chatResp, a.chatErr
}

func newGuideWithAdvisor(t *testing.T, adv advisor.Service) *usecase.UseCases {
	t.Helper()
	uc := usecase.New(memory.New(),
		usecase.WithAssets(validAssets(), "data/emergencies.json"),
		usecase.WithAdvisor(adv),
	)
	uc.Guide.Init(context.Background())
	return uc
}

func TestAdviseGenerated(t *testing.T) {
	ctx := context.Background()
	adv := &fakeAdvisor{adviseResp: "1. Call emergency services.\n2. Give 5 back blows."}
	uc := newGuideWithAdvisor(t, adv)

	advice, err := uc.Guide.Advise(ctx, "choking", usecase.AdviceRequest{
		Situation: "Adult at a restaurant, clutching their throat.",
		Answers:   []advisor.Answer{{Question: "Can the person cough?", Answer: "no"}},
	})
	gt.NoError(t, err).Required()
	gt.Bool(t, advice.Generated).True()
	gt.Value(t, advice.Text).Equal(adv.adviseResp)

	gt.Value(t, adv.lastInput.Condition.ID).Equal("choking")
	gt.Value(t, adv.lastInput.Situation).Equal("Adult at a restaurant, clutching their throat.")
	gt.Array(t, adv.lastInput.Answers).Length(1)
}

func TestAdviseUnknownCondition(t *testing.T) {
	ctx := context.Background()
	uc := newGuideWithAdvisor(t, &fakeAdvisor{adviseResp: "ok"})

	_, err := uc.Guide.Advise(ctx, "no_such", usecase.AdviceRequest{})
	gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
}

func TestAdviseFallsBackWithoutAdvisor(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	advice, err := uc.Guide.Advise(ctx, "choking", usecase.AdviceRequest{})
	gt.NoError(t, err).Required()
	gt.Bool(t, advice.Generated).False()
	gt.String(t, advice.Text).Contains("1. Call emergency services")
	gt.String(t, advice.Text).Contains("2. Give 5 back blows")
}

func TestAdviseFallsBackOnGenerationFailure(t *testing.T) {
	ctx := context.Background()
	adv := &fakeAdvisor{adviseErr: goerr.New("model unavailable")}
	uc := newGuideWithAdvisor(t, adv)

	advice, err := uc.Guide.Advise(ctx, "choking", usecase.AdviceRequest{})
	gt.NoError(t, err).Required()
	gt.Bool(t, advice.Generated).False()
	gt.String(t, advice.Text).Contains("Give 5 back blows")
}

func TestAdviseStaticGuidanceForMediumCondition(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	// The burn record has no urgent actions and no dos
	advice, err := uc.Guide.Advise(ctx, "burn", usecase.AdviceRequest{})
	gt.NoError(t, err).Required()
	gt.Bool(t, advice.Generated).False()
	gt.String(t, advice.Text).Contains("seek professional medical help")
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	adv := &fakeAdvisor{chatResp: "Air in the abdominal cavity."}
	uc := newGuideWithAdvisor(t, adv)

	answer, err := uc.Guide.Chat(ctx, advisor.ChatInput{Prompt: "What is pneumoperitoneum?"})
	gt.NoError(t, err).Required()
	gt.Value(t, answer).Equal("Air in the abdominal cavity.")
	gt.Value(t, adv.lastChat.Prompt).Equal("What is pneumoperitoneum?")
}

func TestChatWithoutAdvisor(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	_, err := uc.Guide.Chat(ctx, advisor.ChatInput{Prompt: "What is pneumoperitoneum?"})
	gt.Bool(t, errors.Is(err, usecase.ErrAdvisorUnavailable)).True()
}

func TestChatPropagatesFailure(t *testing.T) {
	ctx := context.Background()
	adv := &fakeAdvisor{chatErr: goerr.New("model unavailable")}
	uc := newGuideWithAdvisor(t, adv)

	_, err := uc.Guide.Chat(ctx, advisor.ChatInput{Prompt: "What is pneumoperitoneum?"})
	gt.Value(t, err).NotNil()
}
