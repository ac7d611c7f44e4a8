//go:build js
// +build js

package game

import (
	"time"

	"honnef.co/go/js/dom"
)

// Browser drives a Game from requestAnimationFrame and DOM events.
type Browser struct {
	Game     *Game
	Renderer *Renderer
	Window   dom.Window

	AnimationFrameID int
	LastFrameTime    float64
}

// NewBrowser binds g to the given canvas.
func NewBrowser(g *Game, canvas *dom.HTMLCanvasElement) *Browser {
	return &Browser{
		Game:     g,
		Renderer: NewRenderer(canvas),
		Window:   dom.GetWindow(),
	}
}

// Start installs the input handlers and schedules the first frame.
func (b *Browser) Start() {
	b.SetupInputHandlers()
	b.AnimationFrameID = b.Window.RequestAnimationFrame(b.GameLoopRAF)
}

// GameLoopRAF is the main game loop using requestAnimationFrame.
func (b *Browser) GameLoopRAF(t time.Duration) {
	// Schedule next frame
	b.AnimationFrameID = b.Window.RequestAnimationFrame(b.GameLoopRAF)

	currentTime := float64(t) / float64(time.Millisecond)
	b.Game.Overlay.UpdateFPS(currentTime)

	// Fixed timestep
	if currentTime-b.LastFrameTime < FrameDuration {
		return
	}
	b.LastFrameTime = currentTime

	b.Game.Tick()
	b.Renderer.Render(b.Game)
}

// SetupInputHandlers initializes keyboard event handlers.
func (b *Browser) SetupInputHandlers() {
	doc := b.Window.Document()

	doc.AddEventListener("keydown", false, func(event dom.Event) {
		ke, ok := event.(*dom.KeyboardEvent)
		if !ok {
			return
		}
		if ke.KeyCode == KeyFullscreen && !b.Game.DebugUI.Visible {
			b.requestFullscreen()
		}
		if b.Game.HandleKeyDown(ke.KeyCode) {
			event.PreventDefault()
		}
	})

	doc.AddEventListener("keyup", false, func(event dom.Event) {
		if ke, ok := event.(*dom.KeyboardEvent); ok {
			b.Game.HandleKeyUp(ke.KeyCode)
		}
	})
}

func (b *Browser) requestFullscreen() {
	canvas := b.Renderer.Canvas.Underlying()
	for _, name := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		if fn := canvas.Get(name); fn != nil && fn.Bool() {
			canvas.Call(name)
			return
		}
	}
}
