package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oneirolab/dreamvault/pkg/usecase"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// Lock endpoints stay reachable while the journal is locked,
	// otherwise nothing could ever unlock it
	r.Route("/api/lock", func(r chi.Router) {
		r.Get("/", lockStatusHandler(uc.Session))
		r.Post("/unlock", unlockHandler(uc.Session))
		r.Post("/lock", lockHandler(uc.Session))
	})

	r.Group(func(r chi.Router) {
		r.Use(lockGate(uc.Session))

		r.Route("/api/dreams", func(r chi.Router) {
			r.Get("/", listDreamsHandler(uc.Dream))
			r.Post("/", createDreamHandler(uc.Dream))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getDreamHandler(uc.Dream))
				r.Put("/", updateDreamHandler(uc.Dream))
				r.Delete("/", deleteDreamHandler(uc.Dream))
				r.Post("/favorite", toggleFavoriteHandler(uc.Dream))
				r.Post("/analyze", analyzeDreamHandler(uc.Analyze))
			})
		})

		r.Get("/api/stats", statsHandler(uc.Dream))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
