package audio

import "fmt"

// Cue is a sound the game asks for.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueCoin
	CueExplosion
	CueBossExplosion
	CueShieldUp
	CueShieldImpact
	CueRiposte
	CuePlayerHit
	numCues
)

var cueNames = [numCues]string{
	"shoot", "hit", "coin", "explosion", "boss_explosion",
	"shield_up", "shield_impact", "riposte", "player_hit",
}

// cueSettings in ParseParams format.
var cueSettings = [numCues]string{
	CueShoot:         "0,0,0.12,0.1,0.15,0.8,0.2,0.3,,,,,,0.3,0.2,1,,,0.1,,0.35",
	CueHit:           "3,0,0.08,0.3,0.25,0.5,,-0.3,,,,,,,,1,,,,,0.4",
	CueCoin:          "0,0,0.05,0.45,0.25,0.55,,,,,,0.5,0.6,0.2,,1,,,,,0.3",
	CueExplosion:     "3,0,0.3,0.5,0.4,0.15,,-0.3,,,,,,,,1,,,,,0.45",
	CueBossExplosion: "3,0,0.6,0.6,0.7,0.08,,-0.1,,0.2,0.3,,,,,0.8,0.1,,,,0.55",
	CueShieldUp:      "2,0.1,0.3,,0.3,0.3,,0.2,,0.3,0.4,,,,,1,,,,,0.35",
	CueShieldImpact:  "2,0,0.05,0.2,0.2,0.6,,-0.2,,,,,,,,1,,,0.1,,0.3",
	CueRiposte:       "1,0,0.25,0.2,0.3,0.9,0.1,-0.25,,,,,,,,1,,,0.05,,0.4",
	CuePlayerHit:     "3,0,0.15,0.4,0.3,0.3,,-0.4,,,,,,,,0.7,,,,,0.45",
}

func (c Cue) String() string {
	if c < 0 || c >= numCues {
		return "unknown"
	}
	return cueNames[c]
}

// Cues lists every cue.
func Cues() []Cue {
	out := make([]Cue, numCues)
	for i := range out {
		out[i] = Cue(i)
	}
	return out
}

// CueParams returns the synthesis parameters of c.
func CueParams(c Cue) (Params, error) {
	if c < 0 || c >= numCues {
		return Params{}, fmt.Errorf("audio: unknown cue %d", int(c))
	}
	p, err := ParseParams(cueSettings[c])
	if err != nil {
		return Params{}, fmt.Errorf("audio: cue %s: %w", c, err)
	}
	return p, nil
}

// Player plays cues. Calls are fire-and-forget.
type Player interface {
	Play(c Cue)
}

// Counter is a Player that only counts requests. It stands in for the
// browser player in headless runs.
type Counter struct {
	Counts [numCues]int
}

// Play implements Player.
func (c *Counter) Play(cue Cue) {
	if cue >= 0 && cue < numCues {
		c.Counts[cue]++
	}
}

// Count returns how many times cue was requested.
func (c *Counter) Count(cue Cue) int {
	if cue < 0 || cue >= numCues {
		return 0
	}
	return c.Counts[cue]
}
