package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/repository"
)

// dreamRepository keeps records in a slice so insertion order survives:
// new entries go to the head, matching the most-recent-first convention.
type dreamRepository struct {
	mu     sync.RWMutex
	dreams []*model.Dream
}

func newDreamRepository() *dreamRepository {
	return &dreamRepository{}
}

func (r *dreamRepository) indexOf(id types.DreamID) int {
	for i, d := range r.dreams {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (r *dreamRepository) Create(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := dream.Clone()
	if created.ID == "" {
		created.ID = types.NewDreamID()
	}
	if r.indexOf(created.ID) >= 0 {
		return nil, goerr.Wrap(repository.ErrDuplicateID, "dream ID already exists", goerr.V("id", created.ID))
	}

	r.dreams = append([]*model.Dream{created}, r.dreams...)
	return created.Clone(), nil
}

func (r *dreamRepository) Get(ctx context.Context, id types.DreamID) (*model.Dream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "dream not found", goerr.V("id", id))
	}

	return r.dreams[idx].Clone(), nil
}

func (r *dreamRepository) List(ctx context.Context) ([]*model.Dream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Dream, 0, len(r.dreams))
	for _, d := range r.dreams {
		result = append(result, d.Clone())
	}

	return model.SortByDateDesc(result), nil
}

func (r *dreamRepository) Update(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(dream.ID)
	if idx < 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "dream not found", goerr.V("id", dream.ID))
	}

	updated := dream.Clone()
	r.dreams[idx] = updated
	return updated.Clone(), nil
}

func (r *dreamRepository) Delete(ctx context.Context, id types.DreamID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		// Deleting an absent ID is a no-op
		return nil
	}

	r.dreams = append(r.dreams[:idx], r.dreams[idx+1:]...)
	return nil
}
