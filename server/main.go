//go:build !js
// +build !js

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/config"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	tuningPath := flag.String("tuning", "", "YAML tuning overrides served to the game")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	common.SetDebug(*debug)
	log := common.NewLogger("server")

	tuning := config.Default()
	if *tuningPath != "" {
		t, err := loadTuning(*tuningPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *tuningPath).Msg("cannot load tuning")
		}
		tuning = t
	}

	s := &Server{Tuning: tuning, StaticDir: *staticDir, Log: log}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           NewRouter(s),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().
		Str("addr", "http://localhost"+srv.Addr).
		Str("static", *staticDir).
		Msg("Starship ESPACE server starting")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func loadTuning(path string) (config.Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return config.Tuning{}, fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()
	return config.Load(f)
}
