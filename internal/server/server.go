// Package server exposes the HTTP API and serves the built frontend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/stockpulse/stockpulse/config"
	"github.com/stockpulse/stockpulse/internal/service"
)

type API struct {
	cfg      *config.Config
	svc      *service.Service
	log      logrus.FieldLogger
	router   *mux.Router
	validate *validator.Validate
}

func NewAPI(cfg *config.Config, svc *service.Service, log logrus.FieldLogger) *API {
	a := &API{
		cfg:      cfg,
		svc:      svc,
		log:      log,
		router:   mux.NewRouter(),
		validate: validator.New(),
	}
	a.setupRoutes()
	return a
}

// Handler returns the routing tree, mainly for tests.
func (a *API) Handler() http.Handler {
	return a.router
}

func (a *API) setupRoutes() {
	api := a.router.PathPrefix("/api").Subrouter()

	// Fixed paths first so they are not swallowed by {symbol}.
	api.HandleFunc("/stocks/recent", a.recentHandler).Methods("GET")
	api.HandleFunc("/stocks/search/{query}", a.searchHandler).Methods("GET")

	api.HandleFunc("/stocks/{symbol}", a.stockHandler).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/history", a.historyHandler).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/fundamentals", a.fundamentalsHandler).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/analyze", a.analyzeHandler).Methods("POST")
	api.HandleFunc("/stocks/{symbol}/sentiment", a.sentimentHandler).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/earnings/latest", a.latestTranscriptHandler).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/earnings/generate", a.generateTranscriptHandler).Methods("POST")
	api.HandleFunc("/stocks/{symbol}/earnings/{quarter}/{year}", a.transcriptHandler).Methods("GET")
	api.HandleFunc("/stocks/{symbol}/earnings/{quarter}/{year}/summary", a.summaryHandler).Methods("GET")

	a.router.HandleFunc("/health", a.healthHandler).Methods("GET")

	if a.cfg.DistDir != "" {
		if _, err := os.Stat(a.cfg.DistDir); err == nil {
			a.router.PathPrefix("/").Handler(spaHandler{dir: a.cfg.DistDir})
		}
	}
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *API) Start() error {
	server := &http.Server{
		Addr:        ":" + a.cfg.Port,
		Handler:     withCORS(a.router),
		ReadTimeout: 15 * time.Second,
		// LLM-backed endpoints can legitimately take a while.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("port", a.cfg.Port).Info("starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	a.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}

// withCORS wraps a handler with the cross-origin policy. The API is
// unauthenticated, so credentials stay disabled; a wildcard origin
// combined with allowed credentials would be rejected by browsers.
func withCORS(h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(h)
}

// spaHandler serves the frontend build, falling back to index.html for
// client-side routes.
type spaHandler struct {
	dir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}
	http.FileServer(http.Dir(h.dir)).ServeHTTP(w, r)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error marshaling JSON"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
