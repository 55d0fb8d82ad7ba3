package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/service/analysis"
)

// ErrAnalysisUnavailable is returned when no analysis service is configured
var ErrAnalysisUnavailable = goerr.New("analysis service is not configured")

type AnalyzeUseCase struct {
	repo     interfaces.Repository
	analyzer AnalysisService
}

func NewAnalyzeUseCase(repo interfaces.Repository, analyzer AnalysisService) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		repo:     repo,
		analyzer: analyzer,
	}
}

// Available reports whether analysis requests can be made
func (uc *AnalyzeUseCase) Available() bool {
	return uc.analyzer != nil
}

// AnalyzeDream submits the record's content for interpretation and attaches
// the result. The attach is all-or-nothing: on any failure the record keeps
// its previous analysis (including none). Retry is manual, by the user
// invoking this again.
func (uc *AnalyzeUseCase) AnalyzeDream(ctx context.Context, id types.DreamID) (*model.Dream, error) {
	if uc.analyzer == nil {
		return nil, ErrAnalysisUnavailable
	}

	dream, err := uc.repo.Dreams().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get dream for analysis", goerr.V("id", id))
	}

	result, err := uc.analyzer.Analyze(ctx, dream.Content, dream.Date)
	if err != nil {
		return nil, goerr.Wrap(err, "dream analysis failed", goerr.V("id", id))
	}
	if result.Narrative == "" {
		return nil, goerr.Wrap(analysis.ErrUninterpretable, "analysis result has no narrative", goerr.V("id", id))
	}

	dream.Analysis = &model.Analysis{
		Narrative:      result.Narrative,
		Symbols:        result.Symbols,
		SentimentScore: result.SentimentScore,
		Theme:          result.Theme,
		ComputedAt:     time.Now().UTC(),
	}

	updated, err := uc.repo.Dreams().Update(ctx, dream)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store analysis result", goerr.V("id", id))
	}
	return updated, nil
}
