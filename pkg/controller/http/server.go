package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/lifeline-app/lifeline/pkg/utils/errutil"
	"github.com/lifeline-app/lifeline/pkg/utils/logging"
	"github.com/lifeline-app/lifeline/pkg/utils/safe"
)

// Server exposes the guide and location operations over REST
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("use cases are required")
	}

	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/emergencies", func(r chi.Router) {
			r.Get("/", s.listConditions)
			r.Get("/high-priority", s.listHighPriority)
			r.Route("/{conditionID}", func(r chi.Router) {
				r.Get("/", s.getCondition)
				r.Get("/questions", s.getQuestions)
				r.Get("/actions", s.getActions)
				r.Get("/urgent", s.getUrgentActions)
				r.Post("/advice", s.getAdvice)
			})
		})

		r.Get("/severities/{level}", s.getSeverityInfo)
		r.Post("/chat", s.postChat)

		r.Route("/location", func(r chi.Router) {
			r.Get("/", s.getLocation)
			r.Post("/map", s.openInMap)
		})
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
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

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to encode response"),
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(r.Context(), w, data)
}
