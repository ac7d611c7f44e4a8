//go:build js
// +build js

package main

import (
	"bytes"

	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/dom"

	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/config"
	"github.com/simukka/starship-espace/game"
)

func main() {
	common.UseBrowserConsole()
	log := common.NewLogger("main")

	doc := dom.GetWindow().Document()
	canvas, ok := doc.GetElementByID("c").(*dom.HTMLCanvasElement)
	if !ok {
		log.Error().Msg("canvas element not found")
		return
	}

	// Difficulty is read once; changing it reloads the page
	difficulty, err := config.ParseDifficulty(storageItem(config.DifficultyStorageKey))
	if err != nil {
		log.Warn().Err(err).Msg("using default difficulty")
	}

	sound := audio.NewManager(common.NewLogger("audio"))
	gameLog := common.NewLogger("game")
	g := game.NewGame(game.Options{
		Tuning:     config.Default(),
		Difficulty: difficulty,
		Seed:       uint32(js.Global.Get("Date").Call("now").Int64()),
		Audio:      sound,
		Log:        &gameLog,
	})
	log.Info().Stringer("difficulty", difficulty).Uint32("seed", g.RNG.Seed()).Msg("starting")

	// Browsers only allow audio after a user gesture
	volume := 0.5
	doc.AddEventListener("keydown", false, func(e dom.Event) {
		sound.Init(volume)
		ke, ok := e.(*dom.KeyboardEvent)
		if !ok {
			return
		}
		switch ke.KeyCode {
		case 107, 187: // +
			volume += 0.1
		case 109, 189: // -
			volume -= 0.1
		default:
			return
		}
		if volume > 1 {
			volume = 1
		} else if volume < 0 {
			volume = 0
		}
		sound.SetVolume(volume)
	})

	go fetchTuning(g)

	game.NewBrowser(g, canvas).Start()
}

func storageItem(key string) string {
	storage := js.Global.Get("localStorage")
	if storage == nil || storage == js.Undefined {
		return ""
	}
	item := storage.Call("getItem", key)
	if item == nil || item == js.Undefined {
		return ""
	}
	return item.String()
}

// fetchTuning applies the overrides served by the development server, if
// any.
func fetchTuning(g *game.Game) {
	resp := make(chan string, 1)
	js.Global.Call("fetch", "/api/tuning").Call("then", func(r *js.Object) *js.Object {
		if !r.Get("ok").Bool() {
			resp <- ""
			return nil
		}
		return r.Call("text")
	}).Call("then", func(body *js.Object) {
		if body != nil && body != js.Undefined {
			resp <- body.String()
		}
	}).Call("catch", func(*js.Object) {
		resp <- ""
	})

	body := <-resp
	if body == "" {
		return
	}
	t, err := config.Load(bytes.NewReader([]byte(body)))
	if err != nil {
		g.Log.Warn().Err(err).Msg("ignoring served tuning")
		return
	}
	g.Tuning = t
	g.ApplyTuning()
	g.Log.Info().Msg("served tuning applied")
}
