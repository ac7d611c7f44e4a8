package game

import "github.com/simukka/starship-espace/shield"

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background colors
	BackgroundColor string
	BackgroundGlow  string

	// Player ship colors
	ShipColor string
	ShipGlow  string

	// Shield colors
	ShieldColor    string
	SimpleColor    string
	SphericalColor string
	RiposteColor   string

	// Projectile colors
	BulletColor     string
	HazardColor     string
	LaserColor      string
	WaveBulletColor string

	// Enemy colors, one per type
	EnemyColor    string
	EnemyPalette  [EnemyTypeCount]string
	MiniBossColor string
	BossColor     string

	// Particle colors
	ExplosionColor string
	RedPointColor  string

	// Power-up colors
	PowerUpColor string

	// UI/HUD colors
	ScoreColor         string
	TextPrimaryColor   string
	TextSecondaryColor string
	StatGood           string
	PanelBackground    string
	PanelBorder        string
	PanelHighlight     string

	// Fonts
	TextFont  string
	TitleFont string

	// Line widths
	ShipLineWidth   float64
	ShieldLineWidth float64

	// Shadow/glow blur values
	DefaultShadowBlur float64
	ShieldShadowBlur  float64
}{
	// Background colors - dark space theme
	BackgroundColor: "#000",
	BackgroundGlow:  "#444",

	// Player ship colors - green/lime theme
	ShipColor: "#9F0",
	ShipGlow:  "#9F0",

	// Shield colors
	ShieldColor:    "#0FF",
	SimpleColor:    "#CF0",
	SphericalColor: "#0CF",
	RiposteColor:   "#F0C",

	// Projectile colors
	BulletColor:     "#CF0",
	HazardColor:     "#F63",
	LaserColor:      "#F33",
	WaveBulletColor: "#FC6",

	// Enemy colors - purple/violet family
	EnemyColor:    "#62F",
	EnemyPalette:  [EnemyTypeCount]string{"#62F", "#96F", "#C6F", "#F6C", "#F69"},
	MiniBossColor: "#F90",
	BossColor:     "#F30",

	// Particle colors
	ExplosionColor: "#F63",
	RedPointColor:  "#F22",

	PowerUpColor: "#EFF",

	// UI/HUD colors
	ScoreColor:         "#9F0",
	TextPrimaryColor:   "#FFF",
	TextSecondaryColor: "#AAA",
	StatGood:           "#0F0",
	PanelBackground:    "rgba(0, 0, 0, 0.8)",
	PanelBorder:        "#0AF",
	PanelHighlight:     "rgba(0, 255, 0, 0.2)",

	// Fonts
	TextFont:  "12px monospace",
	TitleFont: "bold 14px monospace",

	// Line widths
	ShipLineWidth:   3.0,
	ShieldLineWidth: 2.0,

	// Shadow/glow blur values
	DefaultShadowBlur: 6.0,
	ShieldShadowBlur:  18.0,
}

// ShieldColor returns the draw color of a shield variant.
func ShieldColor(id shield.ID) string {
	switch id {
	case shield.Simple:
		return Theme.SimpleColor
	case shield.Spherical:
		return Theme.SphericalColor
	case shield.Riposte:
		return Theme.RiposteColor
	}
	return Theme.ShieldColor
}
