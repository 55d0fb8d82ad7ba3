package localfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/repository"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
)

type dreamRepository struct {
	path string
	seed []*model.Dream

	mu     sync.RWMutex
	dreams []*model.Dream
}

func newDreamRepository(path string) *dreamRepository {
	return &dreamRepository{path: path}
}

// load reads the journal file into the cache. Missing or corrupt data is
// swallowed: the cache starts from the seed set (or empty) instead.
func (r *dreamRepository) load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.From(ctx).Warn("failed to read journal file, starting fresh",
				"path", r.path, "error", err.Error())
		}
		r.dreams = cloneAll(r.seed)
		return
	}

	dreams, err := model.DecodeJournal(data)
	if err != nil {
		logging.From(ctx).Warn("journal file is corrupt, starting fresh",
			"path", r.path, "error", err.Error())
		r.dreams = cloneAll(r.seed)
		return
	}

	r.dreams = dreams
}

// persist rewrites the whole journal atomically: write to a temp file in
// the same directory, sync, then rename over the previous copy. Callers
// must hold the write lock. Failure never reverts the cache.
func (r *dreamRepository) persist(ctx context.Context) {
	if err := r.writeFile(); err != nil {
		logging.From(ctx).Error("failed to persist journal, in-memory state remains authoritative",
			"path", r.path, "error", err.Error())
	}
}

func (r *dreamRepository) writeFile() error {
	data, err := model.EncodeJournal(r.dreams)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".journal-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp journal file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write temp journal file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to sync temp journal file")
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp journal file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return goerr.Wrap(err, "failed to replace journal file")
	}
	return nil
}

func cloneAll(dreams []*model.Dream) []*model.Dream {
	result := make([]*model.Dream, 0, len(dreams))
	for _, d := range dreams {
		result = append(result, d.Clone())
	}
	return result
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
	r.persist(ctx)
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

	return model.SortByDateDesc(cloneAll(r.dreams)), nil
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
	r.persist(ctx)
	return updated.Clone(), nil
}

func (r *dreamRepository) Delete(ctx context.Context, id types.DreamID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}

	r.dreams = append(r.dreams[:idx], r.dreams[idx+1:]...)
	r.persist(ctx)
	return nil
}
