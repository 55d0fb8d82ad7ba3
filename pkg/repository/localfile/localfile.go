package localfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
)

// LocalFile is a repository backed by a single JSON journal file. The full
// collection lives in memory; every mutation updates the cache first and
// then rewrites the file atomically. A failed write is logged and the
// in-memory state stays authoritative for the session.
type LocalFile struct {
	dreams *dreamRepository
}

var _ interfaces.Repository = &LocalFile{}

// Option configures the repository
type Option func(*dreamRepository)

// WithSeed provides the entries used when the journal file is missing or
// unreadable (first-run experience).
func WithSeed(seed []*model.Dream) Option {
	return func(r *dreamRepository) {
		r.seed = seed
	}
}

// New opens the journal at path, creating parent directories as needed.
// A missing or corrupt file is treated as "no data yet", never an error.
func New(ctx context.Context, path string, opts ...Option) (*LocalFile, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create journal directory", goerr.V("path", path))
		}
	}

	repo := newDreamRepository(path)
	for _, opt := range opts {
		opt(repo)
	}
	repo.load(ctx)

	return &LocalFile{dreams: repo}, nil
}

func (s *LocalFile) Dreams() interfaces.DreamRepository {
	return s.dreams
}

func (s *LocalFile) Close() error {
	return nil
}

// Path returns the journal file path
func (s *LocalFile) Path() string {
	return s.dreams.path
}
