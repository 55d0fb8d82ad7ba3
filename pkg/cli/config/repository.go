package config

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/repository/localfile"
	"github.com/oneirolab/dreamvault/pkg/repository/memory"
	"github.com/oneirolab/dreamvault/pkg/repository/sqlite"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	path       string
	seed       bool
	seedConfig string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (file, sqlite or memory)",
			Value:       "file",
			Category:    "Repository",
			Sources:     cli.EnvVars("DREAMVAULT_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "journal-path",
			Usage:       "Journal file path (JSON for file backend, database for sqlite)",
			Value:       "dreams.json",
			Category:    "Repository",
			Sources:     cli.EnvVars("DREAMVAULT_JOURNAL_PATH"),
			Destination: &r.path,
		},
		&cli.BoolFlag{
			Name:        "seed-samples",
			Usage:       "Populate an empty journal with sample entries",
			Category:    "Repository",
			Sources:     cli.EnvVars("DREAMVAULT_SEED_SAMPLES"),
			Destination: &r.seed,
		},
		&cli.StringFlag{
			Name:        "seed-config",
			Usage:       "TOML file with custom seed entries (overrides --seed-samples)",
			Category:    "Repository",
			Sources:     cli.EnvVars("DREAMVAULT_SEED_CONFIG"),
			Destination: &r.seedConfig,
		},
	}
}

// seeds resolves the entries used to populate an empty journal
func (r *Repository) seeds() ([]*model.Dream, error) {
	if r.seedConfig != "" {
		cfg, err := LoadAppConfig(r.seedConfig)
		if err != nil {
			return nil, err
		}
		return cfg.Dreams(time.Now()), nil
	}
	if r.seed {
		return model.SeedDreams(time.Now()), nil
	}
	return nil, nil
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Path returns the configured journal path
func (r *Repository) Path() string {
	return r.path
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "file":
		if r.path == "" {
			return nil, goerr.New("journal-path is required when using file backend")
		}
		seeds, err := r.seeds()
		if err != nil {
			return nil, err
		}
		var opts []localfile.Option
		if seeds != nil {
			opts = append(opts, localfile.WithSeed(seeds))
		}
		repo, err := localfile.New(ctx, r.path, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize file repository")
		}
		logging.Default().Info("Using file repository", "path", r.path)
		return repo, nil

	case "sqlite":
		if r.path == "" {
			return nil, goerr.New("journal-path is required when using sqlite backend")
		}
		repo, err := sqlite.New(r.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		logging.Default().Info("Using SQLite repository", "path", r.path)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
