//go:build js
// +build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/rs/zerolog"
)

// Manager plays cues through the Web Audio API.
type Manager struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[Cue]*js.Object
	ready      bool
	log        zerolog.Logger
}

// NewManager creates an uninitialised manager. Call Init from a user
// gesture so the browser allows the audio context to start.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		buffers: make(map[Cue]*js.Object),
		log:     log,
	}
}

// Init creates the audio context and decodes every cue.
func (am *Manager) Init(volume float64) {
	if am.ctx != nil {
		return
	}
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		am.log.Warn().Msg("web audio unavailable")
		return
	}

	am.ctx = audioCtx.New()
	am.masterGain = am.ctx.Call("createGain")
	am.masterGain.Call("connect", am.ctx.Get("destination"))
	am.masterGain.Get("gain").Set("value", volume)
	am.ready = true

	for _, c := range Cues() {
		p, err := CueParams(c)
		if err != nil {
			am.log.Warn().Err(err).Msg("skipping cue")
			continue
		}
		am.load(c, DataURL(p))
	}
}

func (am *Manager) load(c Cue, dataURL string) {
	js.Global.Call("fetch", dataURL).Call("then", func(response *js.Object) *js.Object {
		return response.Call("arrayBuffer")
	}).Call("then", func(buf *js.Object) *js.Object {
		return am.ctx.Call("decodeAudioData", buf)
	}).Call("then", func(decoded *js.Object) {
		am.buffers[c] = decoded
	}).Call("catch", func(err *js.Object) {
		am.log.Warn().Str("cue", c.String()).Str("err", err.String()).Msg("decode failed")
	})
}

// Play implements Player.
func (am *Manager) Play(c Cue) {
	if !am.ready {
		return
	}
	buffer, ok := am.buffers[c]
	if !ok || buffer == nil {
		return
	}
	if am.ctx.Get("state").String() == "suspended" {
		am.ctx.Call("resume")
	}
	source := am.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", am.masterGain)
	source.Call("start", 0)
}

// SetVolume sets the master gain.
func (am *Manager) SetVolume(volume float64) {
	if am.masterGain == nil {
		return
	}
	if volume < 0 {
		volume = 0
	}
	am.masterGain.Get("gain").Set("value", volume)
}
