package interfaces

import (
	"context"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
)

// GuideRepository defines read/write access to the emergency condition table.
// The table is written once during initialization and read-only afterwards.
type GuideRepository interface {
	// Put inserts a condition, overwriting any existing entry with the same id
	Put(ctx context.Context, cond *model.EmergencyCondition) error

	// Replace atomically swaps the whole table for the given conditions,
	// keyed by id in slice order (later duplicates win)
	Replace(ctx context.Context, conds []*model.EmergencyCondition) error

	// Get retrieves a condition by id
	Get(ctx context.Context, id string) (*model.EmergencyCondition, error)

	// List returns all conditions in insertion order
	List(ctx context.Context) ([]*model.EmergencyCondition, error)

	// ListBySeverity returns conditions whose severity matches case-insensitively
	ListBySeverity(ctx context.Context, severity types.Severity) ([]*model.EmergencyCondition, error)

	// Len returns the number of stored conditions
	Len(ctx context.Context) (int, error)
}
