package game

import (
	"strconv"

	"github.com/simukka/starship-espace/config"
)

// DebugUI is the live tuning panel. It edits the game's Tuning in place;
// Game.ApplyTuning pushes the values into the running subsystems.
type DebugUI struct {
	Visible          bool
	SelectedSection  int
	SelectedField    int
	PanelX           int
	PanelY           int
	PanelWidth       int
	PanelHeight      int
	Sections         []string
	FieldNames       map[string][]string
	ScrollOffset     int
	MaxVisibleFields int

	tuning *config.Tuning
}

// NewDebugUI creates a tuning panel editing t.
func NewDebugUI(t *config.Tuning) *DebugUI {
	return &DebugUI{
		PanelX:      16,
		PanelY:      16,
		PanelWidth:  350,
		PanelHeight: 320,
		Sections:    []string{"Progression", "Shields", "Combat"},
		FieldNames: map[string][]string{
			"Progression": {
				"EnemiesPerType",
				"BossThreshold",
				"MiniBossRespawnInterval",
				"MaxRandomEnemies",
			},
			"Shields": {
				"SimpleRadius",
				"SphericalRadius",
				"RiposteRadius",
				"RiposteThreshold",
				"ManualRiposteThreshold",
				"RevealFrames",
				"RedPointsForReveal",
			},
			"Combat": {
				"ApplyPlayerDamage",
				"SpawnInterval",
				"FireInterval",
				"PowerUpChance",
				"ContactDamage",
			},
		},
		MaxVisibleFields: 8,
		tuning:           t,
	}
}

// Toggle toggles the panel visibility
func (d *DebugUI) Toggle() {
	d.Visible = !d.Visible
}

// Section returns the name of the selected section.
func (d *DebugUI) Section() string {
	return d.Sections[d.SelectedSection]
}

// Fields returns the field names of the selected section.
func (d *DebugUI) Fields() []string {
	return d.FieldNames[d.Section()]
}

// Field returns the name of the selected field.
func (d *DebugUI) Field() string {
	return d.Fields()[d.SelectedField]
}

// NextSection cycles to the next section
func (d *DebugUI) NextSection() {
	d.SelectedSection = (d.SelectedSection + 1) % len(d.Sections)
	d.SelectedField = 0
	d.ScrollOffset = 0
}

// PrevSection cycles to the previous section
func (d *DebugUI) PrevSection() {
	d.SelectedSection = (d.SelectedSection + len(d.Sections) - 1) % len(d.Sections)
	d.SelectedField = 0
	d.ScrollOffset = 0
}

// NextField moves to the next field
func (d *DebugUI) NextField() {
	d.SelectedField = (d.SelectedField + 1) % len(d.Fields())
	d.scroll()
}

// PrevField moves to the previous field
func (d *DebugUI) PrevField() {
	d.SelectedField--
	if d.SelectedField < 0 {
		d.SelectedField = len(d.Fields()) - 1
	}
	d.scroll()
}

func (d *DebugUI) scroll() {
	if d.SelectedField >= d.ScrollOffset+d.MaxVisibleFields {
		d.ScrollOffset = d.SelectedField - d.MaxVisibleFields + 1
	} else if d.SelectedField < d.ScrollOffset {
		d.ScrollOffset = d.SelectedField
	}
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AdjustValue adjusts the selected field by delta steps
func (d *DebugUI) AdjustValue(delta float64) {
	t := d.tuning
	step := int(delta)

	switch d.Field() {
	case "EnemiesPerType":
		t.Progression.EnemiesPerType = atLeast(t.Progression.EnemiesPerType+step, 1)
	case "BossThreshold":
		t.Progression.BossThreshold = atLeast(t.Progression.BossThreshold+step*10, 10)
	case "MiniBossRespawnInterval":
		t.Progression.MiniBossRespawnInterval = atLeast(t.Progression.MiniBossRespawnInterval+step*5, 5)
	case "MaxRandomEnemies":
		t.Progression.MaxRandomEnemies = atLeast(t.Progression.MaxRandomEnemies+step, 1)
	case "SimpleRadius":
		t.Shields.SimpleRadius = clampFloat(t.Shields.SimpleRadius+delta*5, 10, 200)
	case "SphericalRadius":
		t.Shields.SphericalRadius = clampFloat(t.Shields.SphericalRadius+delta*5, 10, 200)
	case "RiposteRadius":
		t.Shields.RiposteRadius = clampFloat(t.Shields.RiposteRadius+delta*5, 10, 200)
	case "RiposteThreshold":
		t.Shields.RiposteThreshold = clampFloat(t.Shields.RiposteThreshold+delta*5, 5, t.Shields.MaxEnergy)
	case "ManualRiposteThreshold":
		t.Shields.ManualRiposteThreshold = clampFloat(t.Shields.ManualRiposteThreshold+delta*5, 5, t.Shields.MaxEnergy)
	case "RevealFrames":
		t.Shields.RevealFrames = atLeast(t.Shields.RevealFrames+step*60, 60)
	case "RedPointsForReveal":
		t.Shields.RedPointsForReveal = atLeast(t.Shields.RedPointsForReveal+step, 1)
	case "ApplyPlayerDamage":
		t.Combat.ApplyPlayerDamage = !t.Combat.ApplyPlayerDamage
	case "SpawnInterval":
		t.Combat.SpawnInterval = atLeast(t.Combat.SpawnInterval+step*5, 5)
	case "FireInterval":
		t.Combat.FireInterval = atLeast(t.Combat.FireInterval+step*10, 10)
	case "PowerUpChance":
		t.Combat.PowerUpChance = clampFloat(t.Combat.PowerUpChance+delta*0.05, 0, 1)
	case "ContactDamage":
		t.Combat.ContactDamage = atLeast(t.Combat.ContactDamage+step*5, 0)
	}
}

// GetFieldValue returns the current value of a field as a string
func (d *DebugUI) GetFieldValue(fieldName string) string {
	t := d.tuning

	switch fieldName {
	case "EnemiesPerType":
		return strconv.Itoa(t.Progression.EnemiesPerType)
	case "BossThreshold":
		return strconv.Itoa(t.Progression.BossThreshold)
	case "MiniBossRespawnInterval":
		return strconv.Itoa(t.Progression.MiniBossRespawnInterval)
	case "MaxRandomEnemies":
		return strconv.Itoa(t.Progression.MaxRandomEnemies)
	case "SimpleRadius":
		return strconv.FormatFloat(t.Shields.SimpleRadius, 'f', 0, 64)
	case "SphericalRadius":
		return strconv.FormatFloat(t.Shields.SphericalRadius, 'f', 0, 64)
	case "RiposteRadius":
		return strconv.FormatFloat(t.Shields.RiposteRadius, 'f', 0, 64)
	case "RiposteThreshold":
		return strconv.FormatFloat(t.Shields.RiposteThreshold, 'f', 0, 64)
	case "ManualRiposteThreshold":
		return strconv.FormatFloat(t.Shields.ManualRiposteThreshold, 'f', 0, 64)
	case "RevealFrames":
		return strconv.Itoa(t.Shields.RevealFrames)
	case "RedPointsForReveal":
		return strconv.Itoa(t.Shields.RedPointsForReveal)
	case "ApplyPlayerDamage":
		return strconv.FormatBool(t.Combat.ApplyPlayerDamage)
	case "SpawnInterval":
		return strconv.Itoa(t.Combat.SpawnInterval)
	case "FireInterval":
		return strconv.Itoa(t.Combat.FireInterval)
	case "PowerUpChance":
		return strconv.FormatFloat(t.Combat.PowerUpChance, 'f', 2, 64)
	case "ContactDamage":
		return strconv.Itoa(t.Combat.ContactDamage)
	}
	return ""
}

// ApplyTuning pushes the current tuning into the shields and the
// progression controller. Combat values are read live.
func (g *Game) ApplyTuning() {
	s := g.Tuning.Shields
	g.Simple.Radius = s.SimpleRadius
	g.Spherical.Radius = s.SphericalRadius
	g.Spherical.RevealFrames = s.RevealFrames
	g.Riposte.Radius = s.RiposteRadius
	g.Riposte.Threshold = s.RiposteThreshold
	g.Riposte.ManualThreshold = s.ManualRiposteThreshold
	g.Progression.Configure(g.Tuning.Progression)
}
