package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
)

type DreamUseCase struct {
	repo interfaces.Repository
}

func NewDreamUseCase(repo interfaces.Repository) *DreamUseCase {
	return &DreamUseCase{repo: repo}
}

// QueryOptions narrows a journal view. Zero values are identity: an empty
// query keeps everything. The history and favorites views both go through
// here so their filtering can never diverge.
type QueryOptions struct {
	Search        string
	Tags          []string
	Emotion       string
	Range         types.TimeRange
	FavoritesOnly bool
}

// StatsSummary is the aggregate view consumed by analysis screens
type StatsSummary struct {
	Count          int                    `json:"count"`
	AverageClarity float64                `json:"averageClarity"`
	RecordedDays   int                    `json:"recordedDays"`
	Emotions       []model.FrequencyEntry `json:"emotions"`
	Tags           []model.FrequencyEntry `json:"tags"`
}

// CreateDream validates and stores a new record
func (uc *DreamUseCase) CreateDream(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	if err := dream.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dream record")
	}
	if dream.Date.IsZero() {
		dream = dream.Clone()
		dream.Date = time.Now()
	}

	created, err := uc.repo.Dreams().Create(ctx, dream)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dream")
	}
	return created, nil
}

// GetDream retrieves one record by ID
func (uc *DreamUseCase) GetDream(ctx context.Context, id types.DreamID) (*model.Dream, error) {
	dream, err := uc.repo.Dreams().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get dream", goerr.V("id", id))
	}
	return dream, nil
}

// UpdateDream validates and replaces an existing record
func (uc *DreamUseCase) UpdateDream(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	if err := dream.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dream record")
	}

	updated, err := uc.repo.Dreams().Update(ctx, dream)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update dream", goerr.V("id", dream.ID))
	}
	return updated, nil
}

// DeleteDream removes a record. Absent IDs are a no-op.
func (uc *DreamUseCase) DeleteDream(ctx context.Context, id types.DreamID) error {
	if err := uc.repo.Dreams().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete dream", goerr.V("id", id))
	}
	return nil
}

// ToggleFavorite flips the favorite flag on a record
func (uc *DreamUseCase) ToggleFavorite(ctx context.Context, id types.DreamID) (*model.Dream, error) {
	dream, err := uc.repo.Dreams().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get dream", goerr.V("id", id))
	}

	dream.IsFavorite = !dream.IsFavorite
	updated, err := uc.repo.Dreams().Update(ctx, dream)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update favorite flag", goerr.V("id", id))
	}
	return updated, nil
}

// ListDreams returns a filtered view of the journal, most recent first
func (uc *DreamUseCase) ListDreams(ctx context.Context, opts QueryOptions) ([]*model.Dream, error) {
	dreams, err := uc.repo.Dreams().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list dreams")
	}
	return applyQuery(dreams, opts, time.Now()), nil
}

// Stats computes the aggregate summary over the same filtered view that
// ListDreams would return
func (uc *DreamUseCase) Stats(ctx context.Context, opts QueryOptions, topTags int) (*StatsSummary, error) {
	dreams, err := uc.ListDreams(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &StatsSummary{
		Count:          model.Count(dreams),
		AverageClarity: model.AverageClarity(dreams),
		RecordedDays:   model.RecordedDayCount(dreams),
		Emotions:       model.EmotionFrequency(dreams),
		Tags:           model.TagFrequency(dreams, topTags),
	}, nil
}

// applyQuery funnels every view through the same filter chain. The
// predicates are independent, so their order is irrelevant.
func applyQuery(dreams []*model.Dream, opts QueryOptions, now time.Time) []*model.Dream {
	dreams = model.Search(dreams, opts.Search)
	dreams = model.FilterByTags(dreams, opts.Tags)
	dreams = model.FilterByEmotion(dreams, opts.Emotion)
	dreams = model.FilterInRange(dreams, opts.Range, now)
	if opts.FavoritesOnly {
		dreams = model.FilterFavorites(dreams)
	}
	return model.SortByDateDesc(dreams)
}
