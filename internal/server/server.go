package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"kord/internal/api"
	"kord/internal/config"
	"kord/internal/logging"
)

const maxBodyBytes = 64 << 10

// Options controls the HTTP listener.
type Options struct {
	Bind            string
	Token           string
	Version         string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// OptionsFromConfig maps the api section of cfg.
func OptionsFromConfig(cfg *config.Config, version string) Options {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return Options{
		Bind:            strings.TrimSpace(cfg.API.Bind),
		Token:           cfg.API.Token,
		Version:         version,
		ReadTimeout:     time.Duration(cfg.API.ReadTimeoutSeconds) * time.Second,
		ShutdownTimeout: time.Duration(cfg.API.ShutdownTimeoutSeconds) * time.Second,
	}
}

// Server serves the JSON API for a Service.
type Server struct {
	opts   Options
	svc    *api.Service
	logger *slog.Logger
	server *http.Server
}

// New wires routes and middleware around svc.
func New(opts Options, svc *api.Service, logger *slog.Logger) (*Server, error) {
	if svc == nil {
		return nil, errors.New("server: service is required")
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 15 * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	srv := &Server{
		opts:   opts,
		svc:    svc,
		logger: logging.NewComponentLogger(logger, "api"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/parse", authMiddleware(opts.Token, srv.handleParse))
	mux.HandleFunc("/api/scales", authMiddleware(opts.Token, srv.handleScales))
	mux.HandleFunc("/api/guess", authMiddleware(opts.Token, srv.handleGuess))
	mux.HandleFunc("/api/guess/chroma", authMiddleware(opts.Token, srv.handleGuessChroma))

	srv.server = &http.Server{
		Handler:           requestIDMiddleware(srv.logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       opts.ReadTimeout,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the routed handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run listens on the configured bind address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()
	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api serve: %w", err)
	}
	s.logger.Info("api server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	s.writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Version: s.opts.Version})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	query := r.URL.Query()
	text := strings.TrimSpace(query.Get("q"))
	if text == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter q", api.KindInput)
		return
	}
	result, err := s.svc.Describe(r.Context(), text, query.Get("type"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	symbol := strings.TrimSpace(r.URL.Query().Get("q"))
	if symbol == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter q", api.KindInput)
		return
	}
	result, err := s.svc.Scales(r.Context(), symbol)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	query := r.URL.Query()
	notes, classes := query["notes"], query["classes"]
	var (
		result api.CandidateList
		err    error
	)
	switch {
	case len(notes) > 0 && len(classes) > 0:
		s.writeError(w, http.StatusBadRequest, "use either notes or classes, not both", api.KindInput)
		return
	case len(notes) > 0:
		result, err = s.svc.GuessNotes(r.Context(), notes)
	case len(classes) > 0:
		result, err = s.svc.GuessClasses(r.Context(), classes)
	default:
		s.writeError(w, http.StatusBadRequest, "missing query parameter notes or classes", api.KindInput)
		return
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGuessChroma(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	var req api.ChromaRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), api.KindInput)
		return
	}
	result, err := s.svc.GuessChroma(r.Context(), req.Chroma)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	kind := api.ErrorKind(err)
	status := http.StatusUnprocessableEntity
	if kind == api.KindResolve || kind == api.KindInternal {
		status = http.StatusInternalServerError
		s.logger.Error("request failed", logging.Error(err))
	}
	s.writeError(w, status, err.Error(), kind)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("api encode failed", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message, kind string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message, Kind: kind})
}
