package memory

import (
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	dreams *dreamRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		dreams: newDreamRepository(),
	}
}

func (m *Memory) Dreams() interfaces.DreamRepository {
	return m.dreams
}

func (m *Memory) Close() error {
	return nil
}
