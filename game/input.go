package game

// Canonical control codes
const (
	KeyLeft       = 37
	KeyUp         = 38
	KeyRight      = 39
	KeyDown       = 40
	KeyShield     = 69 // E
	KeyFullscreen = 70
	KeyPause      = 80
	KeyRiposte    = 82
	KeyFire       = 88
	KeyTuner      = 120 // F9
	KeyStats      = 121 // F10
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	27: KeyPause, // Esc
	32: KeyFire,  // Space
	48: KeyFire,  // 0
	50: KeyDown,  // 2
	52: KeyLeft,  // 4
	53: KeyDown,  // 5
	54: KeyRight, // 6
	56: KeyUp,    // 8
	65: KeyLeft,  // A
	67: KeyFire,  // C
	68: KeyRight, // D
	73: KeyUp,    // I
	74: KeyLeft,  // J
	75: KeyDown,  // K
	76: KeyRight, // L
	83: KeyDown,  // S
	87: KeyUp,    // W
	89: KeyFire,  // Y
	90: KeyFire,  // Z
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// HandleKeyDown records a key press and applies the toggles bound to it. It
// reports whether the browser's default action should be suppressed.
func (g *Game) HandleKeyDown(rawKeyCode int) bool {
	keyCode := TranslateKeyCode(rawKeyCode)

	switch rawKeyCode {
	case KeyTuner:
		g.DebugUI.Toggle()
		return true
	case KeyStats:
		g.Overlay.Toggle()
		return true
	}

	if keyCode == KeyPause {
		g.Paused = !g.Paused
		g.Log.Debug().Bool("paused", g.Paused).Msg("pause toggled")
		return true
	}

	// Tuning panel controls when visible
	if g.DebugUI.Visible {
		switch rawKeyCode {
		case 81: // Q
			g.DebugUI.PrevSection()
		case 69: // E
			g.DebugUI.NextSection()
		case 87: // W
			g.DebugUI.PrevField()
		case 83: // S
			g.DebugUI.NextField()
		case 65: // A
			g.DebugUI.AdjustValue(-1)
			g.ApplyTuning()
		case 68: // D
			g.DebugUI.AdjustValue(1)
			g.ApplyTuning()
		}
		return true
	}

	g.Keys[keyCode] = true
	switch keyCode {
	case KeyRiposte:
		g.TriggerManualRiposte()
		return true
	case KeyShield:
		g.ToggleSimpleShield()
		return true
	}
	return keyCode >= KeyLeft && keyCode <= KeyDown || keyCode == KeyFire
}

// HandleKeyUp records a key release.
func (g *Game) HandleKeyUp(rawKeyCode int) {
	g.Keys[TranslateKeyCode(rawKeyCode)] = false
}
