package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/repository/sqlite"
)

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dreams.db")

	repo, err := sqlite.New(path)
	gt.NoError(t, err).Required()

	score := -0.2
	created, err := repo.Dreams().Create(ctx, &model.Dream{
		Title:   "The shifting maze",
		Content: "walls kept rearranging",
		Date:    time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC),
		Clarity: 6,
		Emotion: "😨",
		Tags:    []string{"maze", "fear"},
		Analysis: &model.Analysis{
			Narrative:      "anxiety about choices",
			SentimentScore: &score,
			ComputedAt:     time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		},
	})
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.Close()).Required()

	reopened, err := sqlite.New(path)
	gt.NoError(t, err).Required()
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Dreams().Get(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Title).Equal("The shifting maze")
	gt.Value(t, got.Tags).Equal([]string{"maze", "fear"})
	gt.Value(t, got.Analysis).NotNil()
	gt.Value(t, got.Analysis.Narrative).Equal("anxiety about choices")
	gt.Value(t, *got.Analysis.SentimentScore).Equal(-0.2)
	gt.Bool(t, got.Date.Equal(created.Date)).True()
}

func TestSchemaBootstrapIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dreams.db")

	first, err := sqlite.New(path)
	gt.NoError(t, err).Required()
	gt.NoError(t, first.Close()).Required()

	second, err := sqlite.New(path)
	gt.NoError(t, err).Required()
	gt.NoError(t, second.Close())
}
