// Package server serves the portfolio page, its JSON API and the
// README detail pages over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/naka-gawa/github-portfolio/internal/preference"
	"github.com/naka-gawa/github-portfolio/internal/presenter"
)

// ContactMessage acknowledges a contact form submission.
const ContactMessage = "Mensagem enviada com sucesso! Entrarei em contato em breve."

// Loader loads the project cards of an owner.
type Loader interface {
	Load(ctx context.Context, owner string) ([]domain.ProjectCard, error)
}

// Config holds server configuration.
type Config struct {
	Owner          string
	Addr           string
	AllowedOrigins []string
}

// Server owns the single UI state of the portfolio. Handlers read
// snapshots of it; only Reload changes it.
type Server struct {
	cfg    Config
	loader Loader
	prefs  *preference.Store
	logger *log.Logger
	router chi.Router

	// reloadMu serializes loads so the last started load is the last applied.
	reloadMu sync.Mutex
	mu       sync.RWMutex
	state    *presenter.State
}

// New creates a Server. Call Reload to load the projects.
func New(cfg Config, loader Loader, prefs *preference.Store, logger *log.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		loader: loader,
		prefs:  prefs,
		logger: logger,
		state:  presenter.NewState(),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", s.handleIndex)
	r.Get("/api/projects", s.handleAPIProjects)
	r.Get("/projects/{name}", s.handleProject)
	r.Post("/theme/toggle", s.handleThemeToggle)
	r.Post("/contact", s.handleContact)
	r.Post("/reload", s.handleReload)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Reload loads the projects again. On failure the state keeps the error
// and no cards; the error is also returned.
func (s *Server) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	s.mu.Lock()
	s.state.LoadStarted()
	s.mu.Unlock()

	projects, err := s.loader.Load(ctx, s.cfg.Owner)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Printf("Server: loading projects failed: %v\n", err)
		s.state.LoadFailed(err)
		return err
	}
	s.state.LoadCompleted(projects)
	return nil
}

// snapshot returns a copy of the state with the request's filter selected.
func (s *Server) snapshot(r *http.Request) *presenter.State {
	s.mu.RLock()
	st := s.state.Clone()
	s.mu.RUnlock()

	if f := r.URL.Query().Get("filter"); f != "" {
		st.SelectFilter(domain.FilterSelection(f))
	}
	return st
}

func (s *Server) darkTheme() bool {
	enabled, err := s.prefs.DarkTheme()
	if err != nil {
		s.logger.Printf("Server: reading preferences: %v\n", err)
		return false
	}
	return enabled
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := presenter.Page{
		Owner:     s.cfg.Owner,
		View:      s.snapshot(r).View(),
		DarkTheme: s.darkTheme(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := presenter.RenderPage(w, page); err != nil {
		s.logger.Printf("Server: rendering page: %v\n", err)
	}
}

func (s *Server) handleAPIProjects(w http.ResponseWriter, r *http.Request) {
	st := s.snapshot(r)
	if err := st.Err(); err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, presenter.Filter(st.Projects(), st.Filter()))
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	card, ok := s.snapshot(r).Project(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := presenter.RenderProject(w, s.cfg.Owner, card, s.darkTheme()); err != nil {
		s.logger.Printf("Server: rendering project %s: %v\n", card.Title, err)
	}
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if _, err := s.prefs.Toggle(); err != nil {
		s.logger.Printf("Server: toggling theme: %v\n", err)
		http.Error(w, "could not store preference", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleContact is a stub: the message is accepted and dropped.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<p>%s</p>\n", ContactMessage)
}

// handleReload keeps loading when the client goes away; a load is never aborted.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(context.WithoutCancel(r.Context())); err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("Server: listening on %s\n", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
