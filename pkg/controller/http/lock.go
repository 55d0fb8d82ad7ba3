package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/usecase"
)

// lockGate rejects journal access while a configured lock session is
// locked. With no authenticator the gate is a pass-through.
func lockGate(session *usecase.SessionUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.Unlocked() {
				respondError(r.Context(), w, http.StatusUnauthorized, goerr.New("journal is locked"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func lockStatusHandler(session *usecase.SessionUseCase) http.HandlerFunc {
	type response struct {
		Enabled   bool   `json:"enabled"`
		Available bool   `json:"available"`
		Kind      string `json:"kind,omitempty"`
		Unlocked  bool   `json:"unlocked"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, response{
			Enabled:   session.Enabled(),
			Available: session.Available(),
			Kind:      session.Kind(),
			Unlocked:  session.Unlocked(),
		})
	}
}

func unlockHandler(session *usecase.SessionUseCase) http.HandlerFunc {
	type request struct {
		Credential string `json:"credential"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(r.Context(), w, http.StatusBadRequest, goerr.Wrap(err, "failed to decode unlock request"))
			return
		}

		if err := session.Unlock(r.Context(), req.Credential); err != nil {
			respondError(r.Context(), w, http.StatusUnauthorized, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func lockHandler(session *usecase.SessionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.Lock()
		w.WriteHeader(http.StatusNoContent)
	}
}
