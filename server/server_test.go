//go:build !js
// +build !js

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/starship-espace/config"
)

func newTestServer(t *testing.T) *Server {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"), []byte("console.log(1)"), 0o644))
	return &Server{Tuning: config.Default(), StaticDir: dir, Log: zerolog.Nop()}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := get(t, NewRouter(newTestServer(t)), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

// TestRouter_Index tests that the embedded page is served at both paths
func TestRouter_Index(t *testing.T) {
	r := NewRouter(newTestServer(t))
	for _, path := range []string{"/", "/index.html"} {
		rec := get(t, r, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `<canvas id="c"`, path)
	}
}

func TestRouter_Static(t *testing.T) {
	rec := get(t, NewRouter(newTestServer(t)), "/main.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
}

// TestRouter_Tuning tests that the served tuning decodes back to the
// server's values
func TestRouter_Tuning(t *testing.T) {
	s := newTestServer(t)
	s.Tuning.Progression.BossThreshold = 150

	rec := get(t, NewRouter(s), "/api/tuning")
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := config.Load(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 150, got.Progression.BossThreshold)
	assert.Equal(t, s.Tuning, got)
}

func TestRouter_Patterns(t *testing.T) {
	rec := get(t, NewRouter(newTestServer(t)), "/api/patterns")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []struct {
		Name  string `json:"name"`
		Valid bool   `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 3)
	for _, p := range list {
		assert.True(t, p.Valid, p.Name)
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combat:\n  spawn_interval: 30\n"), 0o644))

	tuning, err := loadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 30, tuning.Combat.SpawnInterval)

	_, err = loadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
