package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type fakeAssets struct {
	files map[string]string
	err   error
}

func (a *fakeAssets) LoadString(path string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	content, ok := a.files[path]
	if !ok {
		return "", goerr.New("asset not found", goerr.V("path", path))
	}
	return content, nil
}

const testDataset = `{
	"emergencies": [
		{
			"id": "choking",
			"title": "Choking",
			"description": "Airway blocked by a foreign object.",
			"severity": "high",
			"symptoms": ["Unable to speak", "Clutching the throat"],
			"dos": ["Give 5 back blows"],
			"donts": ["Do not perform a blind finger sweep"],
			"assessment_questions": [{"question": "Can the person cough?", "type": "yes_no"}],
			"urgent_actions": ["Call emergency services"]
		},
		{
			"id": "burn",
			"title": "Burn",
			"description": "Skin damage from heat.",
			"severity": "medium",
			"symptoms": ["Red skin", "Blisters"]
		}
	]
}`

func newGuide(t *testing.T, assets *fakeAssets) *usecase.UseCases {
	t.Helper()
	uc := usecase.New(memory.New(), usecase.WithAssets(assets, "data/emergencies.json"))
	uc.Guide.Init(context.Background())
	return uc
}

func validAssets() *fakeAssets {
	return &fakeAssets{files: map[string]string{"data/emergencies.json": testDataset}}
}

func TestGuideInit(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	conds, err := uc.Guide.ListConditions(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, conds).Length(2)
	gt.Value(t, conds[0].ID).Equal("choking")
	gt.Value(t, conds[1].ID).Equal("burn")
}

func TestGuideInitIdempotent(t *testing.T) {
	ctx := context.Background()
	assets := validAssets()
	uc := newGuide(t, assets)

	// A second Init does not reload even if the underlying dataset changed
	assets.files["data/emergencies.json"] = `{"emergencies": [{"id": "only_one", "title": "Only One"}]}`
	uc.Guide.Init(ctx)

	conds, err := uc.Guide.ListConditions(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, conds).Length(2)
}

func TestGuideInitFallback(t *testing.T) {
	ctx := context.Background()

	cases := map[string]*fakeAssets{
		"load error":       {err: goerr.New("disk failure")},
		"missing asset":    {files: map[string]string{}},
		"malformed json":   {files: map[string]string{"data/emergencies.json": "not json"}},
		"missing doc list": {files: map[string]string{"data/emergencies.json": "{}"}},
	}

	for name, assets := range cases {
		t.Run(name, func(t *testing.T) {
			uc := newGuide(t, assets)

			conds, err := uc.Guide.ListConditions(ctx)
			gt.NoError(t, err).Required()
			gt.Array(t, conds).Length(2)
			gt.Value(t, conds[0].ID).Equal("heart_attack")
			gt.Value(t, conds[1].ID).Equal("stroke")
			gt.Value(t, conds[0].Severity).Equal(types.SeverityHigh)
		})
	}
}

func TestGuideReload(t *testing.T) {
	ctx := context.Background()
	assets := validAssets()
	uc := newGuide(t, assets)

	assets.files["data/emergencies.json"] = `{"emergencies": [{"id": "stroke", "title": "Stroke", "severity": "high"}]}`
	gt.NoError(t, uc.Guide.Reload(ctx)).Required()

	conds, err := uc.Guide.ListConditions(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, conds).Length(1)
	gt.Value(t, conds[0].ID).Equal("stroke")

	// A failed reload keeps the current table
	assets.err = goerr.New("disk failure")
	gt.Error(t, uc.Guide.Reload(ctx))

	conds, err = uc.Guide.ListConditions(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, conds).Length(1)
}

func TestGuideGetCondition(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	cond, err := uc.Guide.GetCondition(ctx, "choking")
	gt.NoError(t, err).Required()
	gt.Value(t, cond.Title).Equal("Choking")

	_, err = uc.Guide.GetCondition(ctx, "no_such_condition")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
}

func TestGuideListBySeverity(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	high, err := uc.Guide.ListBySeverity(ctx, types.Severity("HIGH"))
	gt.NoError(t, err).Required()
	gt.Array(t, high).Length(1)
	gt.Value(t, high[0].ID).Equal("choking")

	priority, err := uc.Guide.ListHighPriority(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, priority).Length(1)

	low, err := uc.Guide.ListBySeverity(ctx, types.SeverityLow)
	gt.NoError(t, err)
	gt.Array(t, low).Length(0)
}

func TestGuideQuestionsAndActions(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	questions := uc.Guide.AssessmentQuestions(ctx, "choking")
	gt.Array(t, questions).Length(1)
	gt.Value(t, questions[0]["question"]).Equal("Can the person cough?")

	actions := uc.Guide.Actions(ctx, "choking")
	gt.Array(t, actions.Dos).Length(1)
	gt.Array(t, actions.Donts).Length(1)

	urgent := uc.Guide.UrgentActions(ctx, "choking")
	gt.Array(t, urgent).Length(1)

	// Unknown ids degrade to empty collections
	gt.Array(t, uc.Guide.AssessmentQuestions(ctx, "missing")).Length(0)
	gt.Array(t, uc.Guide.Actions(ctx, "missing").Dos).Length(0)
	gt.Array(t, uc.Guide.Actions(ctx, "missing").Donts).Length(0)
	gt.Array(t, uc.Guide.UrgentActions(ctx, "missing")).Length(0)
}

func TestGuideSearch(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, validAssets())

	t.Run("matches title", func(t *testing.T) {
		conds, err := uc.Guide.Search(ctx, "CHOKING")
		gt.NoError(t, err).Required()
		gt.Array(t, conds).Length(1)
		gt.Value(t, conds[0].ID).Equal("choking")
	})

	t.Run("matches symptom", func(t *testing.T) {
		conds, err := uc.Guide.Search(ctx, "blister")
		gt.NoError(t, err).Required()
		gt.Array(t, conds).Length(1)
		gt.Value(t, conds[0].ID).Equal("burn")
	})

	t.Run("matches description", func(t *testing.T) {
		conds, err := uc.Guide.Search(ctx, "airway")
		gt.NoError(t, err).Required()
		gt.Array(t, conds).Length(1)
		gt.Value(t, conds[0].ID).Equal("choking")
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		conds, err := uc.Guide.Search(ctx, "   ")
		gt.NoError(t, err).Required()
		gt.Array(t, conds).Length(0)
	})

	t.Run("no match", func(t *testing.T) {
		conds, err := uc.Guide.Search(ctx, "frostbite")
		gt.NoError(t, err).Required()
		gt.Array(t, conds).Length(0)
	})
}

func TestGuideSearchFallbackDataset(t *testing.T) {
	ctx := context.Background()
	uc := newGuide(t, &fakeAssets{err: goerr.New("disk failure")})

	conds, err := uc.Guide.Search(ctx, "chest")
	gt.NoError(t, err).Required()
	gt.Array(t, conds).Length(1)
	gt.Value(t, conds[0].ID).Equal("heart_attack")
}

func TestGuideSeverityInfo(t *testing.T) {
	uc := usecase.New(memory.New())

	gt.Value(t, uc.Guide.SeverityInfo(types.Severity("HIGH")).Title).Equal("High Priority")
	gt.Value(t, uc.Guide.SeverityInfo(types.Severity("unknown")).Title).Equal("Unknown Severity")
}
