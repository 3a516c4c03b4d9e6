package memory

import (
	"context"
	"sync"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type guideRepository struct {
	mu         sync.RWMutex
	conditions map[string]*model.EmergencyCondition
	order      []string
}

func newGuideRepository() *guideRepository {
	return &guideRepository{
		conditions: make(map[string]*model.EmergencyCondition),
	}
}

func (r *guideRepository) Put(ctx context.Context, cond *model.EmergencyCondition) error {
	if cond == nil {
		return goerr.New("condition is nil")
	}
	if cond.ID == "" {
		return goerr.New("condition ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(cond)
	return nil
}

func (r *guideRepository) Replace(ctx context.Context, conds []*model.EmergencyCondition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conditions = make(map[string]*model.EmergencyCondition, len(conds))
	r.order = nil
	for _, cond := range conds {
		if cond == nil || cond.ID == "" {
			continue
		}
		r.put(cond)
	}

	return nil
}

// put inserts under the held write lock, keeping insertion order for List.
// A duplicate id overwrites the earlier record but keeps its position.
func (r *guideRepository) put(cond *model.EmergencyCondition) {
	if _, exists := r.conditions[cond.ID]; !exists {
		r.order = append(r.order, cond.ID)
	}
	r.conditions[cond.ID] = cond.Clone()
}

func (r *guideRepository) Get(ctx context.Context, id string) (*model.EmergencyCondition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cond, exists := r.conditions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "condition not found", goerr.V("id", id))
	}

	return cond.Clone(), nil
}

func (r *guideRepository) List(ctx context.Context) ([]*model.EmergencyCondition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.EmergencyCondition, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.conditions[id].Clone())
	}

	return result, nil
}

func (r *guideRepository) ListBySeverity(ctx context.Context, severity types.Severity) ([]*model.EmergencyCondition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.EmergencyCondition
	for _, id := range r.order {
		cond := r.conditions[id]
		if cond.Severity.Matches(severity) {
			result = append(result, cond.Clone())
		}
	}

	return result, nil
}

func (r *guideRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conditions), nil
}
