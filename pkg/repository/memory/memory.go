package memory

import (
	"github.com/lifeline-app/lifeline/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory implementation of interfaces.Repository
type Memory struct {
	guide *guideRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository
func New() *Memory {
	return &Memory{
		guide: newGuideRepository(),
	}
}

// Guide returns the emergency condition repository
func (m *Memory) Guide() interfaces.GuideRepository {
	return m.guide
}

// Close is a no-op for the in-memory repository
func (m *Memory) Close() error {
	return nil
}
