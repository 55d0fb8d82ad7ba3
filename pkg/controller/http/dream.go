package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/domain/types"
	"github.com/oneirolab/dreamvault/pkg/usecase"
)

// parseQueryOptions reads the shared view parameters: q, tags (comma
// separated), emotion, range (all|week|month), favorites.
func parseQueryOptions(r *http.Request) (usecase.QueryOptions, error) {
	q := r.URL.Query()

	opts := usecase.QueryOptions{
		Search:  q.Get("q"),
		Emotion: q.Get("emotion"),
	}

	if tags := q.Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}

	rng, err := types.ParseTimeRange(q.Get("range"))
	if err != nil {
		return opts, goerr.Wrap(model.ErrInvalidDream, "invalid range parameter", goerr.V("range", q.Get("range")))
	}
	opts.Range = rng

	opts.FavoritesOnly = q.Get("favorites") == "true"

	return opts, nil
}

func listDreamsHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	type response struct {
		Dreams []*model.Dream `json:"dreams"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseQueryOptions(r)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		dreams, err := uc.ListDreams(r.Context(), opts)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}
		if dreams == nil {
			dreams = []*model.Dream{}
		}

		respondJSON(r.Context(), w, http.StatusOK, response{Dreams: dreams})
	}
}

func createDreamHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dream model.Dream
		if err := json.NewDecoder(r.Body).Decode(&dream); err != nil {
			respondError(r.Context(), w, http.StatusBadRequest, goerr.Wrap(err, "failed to decode dream"))
			return
		}

		created, err := uc.CreateDream(r.Context(), &dream)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func getDreamHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.DreamID(chi.URLParam(r, "id"))

		dream, err := uc.GetDream(r.Context(), id)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, dream)
	}
}

func updateDreamHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dream model.Dream
		if err := json.NewDecoder(r.Body).Decode(&dream); err != nil {
			respondError(r.Context(), w, http.StatusBadRequest, goerr.Wrap(err, "failed to decode dream"))
			return
		}
		dream.ID = types.DreamID(chi.URLParam(r, "id"))

		updated, err := uc.UpdateDream(r.Context(), &dream)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func deleteDreamHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.DreamID(chi.URLParam(r, "id"))

		if err := uc.DeleteDream(r.Context(), id); err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toggleFavoriteHandler(uc *usecase.DreamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.DreamID(chi.URLParam(r, "id"))

		updated, err := uc.ToggleFavorite(r.Context(), id)
		if err != nil {
			respondUseCaseError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}
