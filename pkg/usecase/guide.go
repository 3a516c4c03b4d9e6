package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// GuideUseCase answers queries against the emergency condition table. The
// table is populated once by Init from the bundled dataset, with a fixed
// fallback dataset when loading fails, so queries never run against an empty
// store after initialization.
type GuideUseCase struct {
	repo    interfaces.Repository
	assets  interfaces.AssetStore
	path    string
	advisor advisor.Service

	initMu      sync.Mutex
	initialized bool
}

func newGuideUseCase(repo interfaces.Repository, assets interfaces.AssetStore, path string, adv advisor.Service) *GuideUseCase {
	return &GuideUseCase{
		repo:    repo,
		assets:  assets,
		path:    path,
		advisor: adv,
	}
}

// Init populates the condition table from the bundled dataset. It is
// idempotent and safe for concurrent callers; on any load or parse failure
// it installs the fallback dataset instead, so it never fails observably.
func (uc *GuideUseCase) Init(ctx context.Context) {
	uc.initMu.Lock()
	defer uc.initMu.Unlock()

	if uc.initialized {
		return
	}

	if err := uc.load(ctx); err != nil {
		logging.From(ctx).Warn("failed to load guide dataset, installing fallback",
			"error", err.Error())
		if err := uc.repo.Guide().Replace(ctx, FallbackConditions()); err != nil {
			logging.From(ctx).Error("failed to install fallback dataset", "error", err.Error())
		}
	}

	uc.initialized = true
}

// Reload re-reads the dataset and swaps the table, keeping the current
// contents when loading fails. Used by the dataset reload worker for
// directory-backed stores.
func (uc *GuideUseCase) Reload(ctx context.Context) error {
	if err := uc.load(ctx); err != nil {
		return goerr.Wrap(err, "failed to reload guide dataset")
	}

	count, err := uc.repo.Guide().Len(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to count conditions after reload")
	}
	logging.From(ctx).Info("guide dataset reloaded", "conditions", count)

	return nil
}

func (uc *GuideUseCase) load(ctx context.Context) error {
	if uc.assets == nil {
		return goerr.New("no asset store configured")
	}

	raw, err := uc.assets.LoadString(uc.path)
	if err != nil {
		return goerr.Wrap(err, "failed to load guide dataset", goerr.V("path", uc.path))
	}

	conditions, err := model.DecodeGuideDocument([]byte(raw))
	if err != nil {
		return goerr.Wrap(err, "failed to decode guide dataset", goerr.V("path", uc.path))
	}

	if err := uc.repo.Guide().Replace(ctx, conditions); err != nil {
		return goerr.Wrap(err, "failed to store guide dataset")
	}

	logging.From(ctx).Info("guide dataset loaded",
		"path", uc.path, "conditions", len(conditions))

	return nil
}

// ListConditions returns all conditions in dataset order
func (uc *GuideUseCase) ListConditions(ctx context.Context) ([]*model.EmergencyCondition, error) {
	return uc.repo.Guide().List(ctx)
}

// ListBySeverity returns conditions matching the severity, case-insensitively
func (uc *GuideUseCase) ListBySeverity(ctx context.Context, severity types.Severity) ([]*model.EmergencyCondition, error) {
	return uc.repo.Guide().ListBySeverity(ctx, severity)
}

// ListHighPriority returns all high-severity conditions
func (uc *GuideUseCase) ListHighPriority(ctx context.Context) ([]*model.EmergencyCondition, error) {
	return uc.ListBySeverity(ctx, types.SeverityHigh)
}

// GetCondition retrieves a condition by id. An unknown id yields an error
// matching memory.ErrNotFound.
func (uc *GuideUseCase) GetCondition(ctx context.Context, id string) (*model.EmergencyCondition, error) {
	return uc.repo.Guide().Get(ctx, id)
}

// AssessmentQuestions returns the condition's triage questions, or an empty
// list when the id is unknown
func (uc *GuideUseCase) AssessmentQuestions(ctx context.Context, id string) []model.AssessmentQuestion {
	cond, err := uc.repo.Guide().Get(ctx, id)
	if err != nil {
		return []model.AssessmentQuestion{}
	}
	return cond.AssessmentQuestions
}

// Actions returns the condition's recommended and discouraged actions, both
// empty when the id is unknown
func (uc *GuideUseCase) Actions(ctx context.Context, id string) model.EmergencyActions {
	cond, err := uc.repo.Guide().Get(ctx, id)
	if err != nil {
		return model.EmergencyActions{Dos: []string{}, Donts: []string{}}
	}
	return model.EmergencyActions{Dos: cond.Dos, Donts: cond.Donts}
}

// UrgentActions returns the condition's urgent action list, or an empty list
// when the id is unknown
func (uc *GuideUseCase) UrgentActions(ctx context.Context, id string) []string {
	cond, err := uc.repo.Guide().Get(ctx, id)
	if err != nil {
		return []string{}
	}
	return cond.UrgentActions
}

// Search returns conditions whose title, description or any symptom contains
// the query, case-insensitively. An empty query matches nothing.
func (uc *GuideUseCase) Search(ctx context.Context, query string) ([]*model.EmergencyCondition, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []*model.EmergencyCondition{}, nil
	}

	all, err := uc.repo.Guide().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conditions for search")
	}

	var result []*model.EmergencyCondition
	for _, cond := range all {
		if matchesQuery(cond, query) {
			result = append(result, cond)
		}
	}

	return result, nil
}

func matchesQuery(cond *model.EmergencyCondition, query string) bool {
	if strings.Contains(strings.ToLower(cond.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(cond.Description), query) {
		return true
	}
	for _, symptom := range cond.Symptoms {
		if strings.Contains(strings.ToLower(symptom), query) {
			return true
		}
	}
	return false
}

// SeverityInfo returns display metadata for a severity level. It is a pure
// lookup, independent of Init.
func (uc *GuideUseCase) SeverityInfo(severity types.Severity) model.SeverityInfo {
	return model.SeverityInfoFor(severity)
}
