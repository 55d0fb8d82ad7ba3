package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/model"
	"github.com/oneirolab/dreamvault/pkg/repository"
	"github.com/oneirolab/dreamvault/pkg/utils/errutil"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data) //nolint:errcheck // header already committed
}

func respondError(ctx context.Context, w http.ResponseWriter, statusCode int, err error) {
	errutil.Handle(ctx, err, "HTTP error") //nolint:errcheck // logged, surfaced below
	respondJSON(ctx, w, statusCode, errorBody{Error: err.Error()})
}

// respondUseCaseError maps domain errors to their status codes. Anything
// unmatched is an internal error.
func respondUseCaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(ctx, w, http.StatusNotFound, err)
	case errors.Is(err, model.ErrInvalidDream):
		respondError(ctx, w, http.StatusBadRequest, err)
	default:
		respondError(ctx, w, http.StatusInternalServerError, err)
	}
}
