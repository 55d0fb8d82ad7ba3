package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/repository"
	"github.com/oneirolab/dreamvault/pkg/service/analysis"
	"github.com/oneirolab/dreamvault/pkg/usecase"
)

func analyzeDreamHandler(uc *usecase.AnalyzeUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.DreamID(chi.URLParam(r, "id"))

		updated, err := uc.AnalyzeDream(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrAnalysisUnavailable):
				respondError(r.Context(), w, http.StatusServiceUnavailable, err)
			case errors.Is(err, repository.ErrNotFound):
				respondError(r.Context(), w, http.StatusNotFound, err)
			case errors.Is(err, analysis.ErrUninterpretable):
				respondError(r.Context(), w, http.StatusUnprocessableEntity, err)
			default:
				// Remote failures carry the endpoint's own message when
				// it supplied one
				respondError(r.Context(), w, http.StatusBadGateway, err)
			}
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}
