package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pacs_automation/domain/entities"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const (
	apiName    = "PACS Imago Radiologia API"
	apiVersion = "1.0.0"
)

// Runner executes one extraction request and always yields a
// well-formed envelope, never a raw fault.
type Runner interface {
	Run(ctx context.Context, creds entities.Credentials, viewport entities.ViewportConfig, filters *entities.FilterOptions) entities.ResultEnvelope
}

// Server is the thin HTTP layer over the extraction core. Exactly two
// routes: a root informational GET and the synchronous POST extraction
// endpoint.
type Server struct {
	runner          Runner
	logger          *logrus.Logger
	defaults        entities.Credentials
	defaultHeadless bool
	requestTimeout  time.Duration
}

// NewServer - creates new API server. requestTimeout is the end-to-end
// deadline for one extraction call; on expiry the in-flight browser
// session is released rather than leaked.
func NewServer(runner Runner, logger *logrus.Logger, defaults entities.Credentials, defaultHeadless bool, requestTimeout time.Duration) *Server {
	return &Server{
		runner:          runner,
		logger:          logger,
		defaults:        defaults,
		defaultHeadless: defaultHeadless,
		requestTimeout:  requestTimeout,
	}
}

// Routes - builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleInfo)
	r.Post("/scrape", s.handleScrape)
	return r
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    apiName,
		"version": apiVersion,
		"endpoints": []map[string]string{
			{"path": "/", "method": "GET", "description": "API information"},
			{"path": "/scrape", "method": "POST", "description": "Extract totem arrival records from the PACS system"},
		},
	})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req entities.ExtractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, entities.NewFailureEnvelope("invalid request body: "+err.Error()))
		return
	}

	creds, err := req.RequestCredentials().Resolve(s.defaults)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, entities.NewFailureEnvelope(err.Error()))
		return
	}
	if !creds.Complete() {
		s.writeJSON(w, http.StatusBadRequest, entities.NewFailureEnvelope("username and password are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	start := time.Now()
	envelope := s.runner.Run(ctx, creds, req.Viewport(s.defaultHeadless), req.FilterOptions)
	s.logger.WithFields(logrus.Fields{
		"status":   envelope.Status,
		"rows":     len(envelope.Data),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("scrape request finished")

	s.writeJSON(w, http.StatusOK, envelope)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}
