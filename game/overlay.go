package game

import "strconv"

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX     int
	PanelY     int
	LineHeight int
	PanelWidth int
}

// StatLine is one label/value row of the overlay. An empty Value marks a
// section heading.
type StatLine struct {
	Label string
	Value string
	Color string
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:     WIDTH - 280,
		PanelY:     16,
		LineHeight: 18,
		PanelWidth: 264,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

func poolStat(live, max int) string {
	if max <= 0 {
		return strconv.Itoa(live)
	}
	return strconv.Itoa(live) + "/" + strconv.Itoa(max)
}

// Lines returns the rows to draw for g.
func (s *StatsOverlay) Lines(g *Game) []StatLine {
	w := g.World
	prog := g.Progression.Snapshot()
	sparks, reds, flashes := g.Particles.Counts()

	lines := []StatLine{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), Theme.StatGood},
		{Label: "── Progression ──"},
		{"Wave type", EnemyKindName(prog.CurrentType), Theme.TextPrimaryColor},
		{"Kills", strconv.Itoa(prog.TotalKills), Theme.ScoreColor},
		{"Next boss", strconv.Itoa(g.Progression.NextBossAt()), Theme.TextSecondaryColor},
		{"Random phase", strconv.FormatBool(prog.PostMiniBossPhase), Theme.TextSecondaryColor},
		{Label: "── Pools ──"},
		{"Enemies", poolStat(w.Enemies.Live(), w.Enemies.MaxSize), Theme.EnemyColor},
		{"Bullets", poolStat(w.PlayerBullets.Live(), w.PlayerBullets.MaxSize), Theme.BulletColor},
		{"Hazards", strconv.Itoa(w.Hazards()), Theme.HazardColor},
		{"Particles", strconv.Itoa(sparks) + " / " + strconv.Itoa(reds) + " / " + strconv.Itoa(flashes), Theme.ExplosionColor},
		{Label: "── Player ──"},
		{"Health", strconv.Itoa(w.Player.Health), s.healthColor(w.Player.Health * 100 / atLeast(w.Player.MaxHealth, 1))},
		{"Hits", strconv.Itoa(w.Player.Hits), Theme.TextSecondaryColor},
		{"Shield", s.shieldName(g), Theme.ShieldColor},
		{"Energy", strconv.FormatFloat(g.Riposte.Energy, 'f', 0, 64), Theme.RiposteColor},
		{"Coins", strconv.FormatFloat(g.Stats.Coins, 'f', 1, 64), Theme.RedPointColor},
	}
	return lines
}

func (s *StatsOverlay) shieldName(g *Game) string {
	h, ok := g.Shields.First()
	if !ok {
		return "none"
	}
	return h.ID().String()
}

// healthColor returns a color based on health percentage
func (s *StatsOverlay) healthColor(health int) string {
	if health > 75 {
		return "#00ff00"
	} else if health > 50 {
		return "#88ff00"
	} else if health > 25 {
		return "#ffff00"
	} else {
		return "#ff0000"
	}
}
