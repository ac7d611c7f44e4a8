//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/simukka/starship-espace/config"
	"github.com/simukka/starship-espace/pattern"
)

//go:embed index.html
var indexHTML []byte

// Server serves the game page, the compiled bundle and the tuning in use.
type Server struct {
	Tuning    config.Tuning
	StaticDir string
	Log       zerolog.Logger
}

// NewRouter builds the HTTP routes.
func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/tuning", s.handleTuning).Methods(http.MethodGet)
	api.HandleFunc("/patterns", s.handlePatterns).Methods(http.MethodGet)

	// Serve embedded index.html at root path
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/index.html", s.handleIndex).Methods(http.MethodGet)

	// Serve other static files from disk
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.StaticDir)))
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy"}`))
}

func (s *Server) handleTuning(w http.ResponseWriter, r *http.Request) {
	out, err := s.Tuning.Marshal()
	if err != nil {
		s.Log.Error().Err(err).Msg("encode tuning")
		http.Error(w, "cannot encode tuning", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(out)
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name  string `json:"name"`
		Valid bool   `json:"valid"`
	}
	var list []entry
	for _, name := range pattern.Names() {
		_, err := pattern.Load(name)
		if err != nil {
			s.Log.Warn().Err(err).Msg("bad pattern")
		}
		list = append(list, entry{Name: string(name), Valid: err == nil})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		s.Log.Warn().Err(err).Msg("encode patterns")
	}
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
