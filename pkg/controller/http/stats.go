package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/usecase"
)

func statsHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseQueryOptions(r)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		topTags := 0
		if v := r.URL.Query().Get("topTags"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				respondUseCaseError(r.Context(), w,
					goerr.Wrap(model.ErrInvalidDream, "invalid topTags parameter", goerr.V("topTags", v)))
				return
			}
			topTags = n
		}

		summary, err := uc.Stats(r.Context(), opts, topTags)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, summary)
	}
}
