// Package progression drives the enemy wave cycle: which enemy type spawns,
// when a mini-boss appears and when the boss is due.
package progression

import (
	"github.com/rs/zerolog"

	"github.com/simukka/starship-espace/config"
)

// State is the observable progression state.
type State struct {
	CurrentType        int
	KillsOfCurrentType int
	TotalKills         int
	PostMiniBossPhase  bool
	PostMiniBossKills  int
}

// KillResult tells the caller what to spawn after a kill. The caller must
// act on it before the next kill is reported.
type KillResult struct {
	SpawnMiniBoss bool
	SpawnBoss     bool
}

// Rand is the randomness the controller needs for random-type spawns.
type Rand interface {
	Intn(n int) int
}

// Controller is the progression state machine. Wave types cycle from 0 to
// MaxType and back; the first full cycle brings a mini-boss; destroying a
// mini-boss switches to random types for the rest of the session; the boss
// is due every BossThreshold kills.
type Controller struct {
	State

	cfg config.Progression
	log zerolog.Logger

	bossActive    bool
	miniBosses    int
	firstMiniBoss bool
	miniBossDue   bool
	nextBossAt    int

	// Cycle counts defeated bosses.
	Cycle int
}

// New creates a controller at the start of the first wave.
func New(cfg config.Progression, log zerolog.Logger) *Controller {
	c := &Controller{cfg: cfg, log: log}
	c.Reset()
	return c
}

// Reset returns to the first wave, keeping the configuration.
func (c *Controller) Reset() {
	c.State = State{}
	c.bossActive = false
	c.miniBosses = 0
	c.firstMiniBoss = false
	c.miniBossDue = false
	c.nextBossAt = c.cfg.BossThreshold
	c.Cycle = 0
}

// Configure replaces the thresholds. The current wave and counters are kept;
// the next boss keeps its already scheduled kill count. A wave whose kills
// already meet the new quota advances at once.
func (c *Controller) Configure(cfg config.Progression) {
	c.cfg = cfg
	if c.CurrentType > cfg.MaxType {
		c.CurrentType = 0
	}
	if c.KillsOfCurrentType >= cfg.EnemiesPerType {
		c.advanceWave()
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	return c.State
}

// BossActive reports whether a boss is live.
func (c *Controller) BossActive() bool { return c.bossActive }

// MiniBossActive reports whether at least one mini-boss is live.
func (c *Controller) MiniBossActive() bool { return c.miniBosses > 0 }

// LiveMiniBosses returns the number of live mini-bosses.
func (c *Controller) LiveMiniBosses() int { return c.miniBosses }

// NextBossAt returns the global kill count at which the next boss is due.
func (c *Controller) NextBossAt() int { return c.nextBossAt }

// OnEnemyKilled records a kill and reports whether a boss or mini-boss
// should spawn. The boss wins when both are due.
func (c *Controller) OnEnemyKilled() KillResult {
	c.TotalKills++
	c.KillsOfCurrentType++
	if c.KillsOfCurrentType >= c.cfg.EnemiesPerType {
		c.advanceWave()
	}

	respawn := false
	if c.PostMiniBossPhase {
		c.PostMiniBossKills++
		if c.cfg.MiniBossRespawnInterval > 0 && c.PostMiniBossKills%c.cfg.MiniBossRespawnInterval == 0 {
			respawn = true
		}
	}

	var res KillResult
	if c.bossActive {
		return res
	}
	if c.TotalKills >= c.nextBossAt {
		res.SpawnBoss = true
		c.log.Info().Int("total", c.TotalKills).Msg("boss due")
		return res
	}
	if c.miniBosses > 0 {
		return res
	}
	if c.miniBossDue || respawn {
		c.miniBossDue = false
		res.SpawnMiniBoss = true
		c.log.Info().Int("total", c.TotalKills).Bool("post_phase", c.PostMiniBossPhase).Msg("mini-boss due")
	}
	return res
}

func (c *Controller) advanceWave() {
	c.KillsOfCurrentType = 0
	c.CurrentType++
	if c.CurrentType > c.cfg.MaxType {
		c.CurrentType = 0
		if !c.PostMiniBossPhase && !c.firstMiniBoss {
			c.firstMiniBoss = true
			c.miniBossDue = true
		}
	}
	c.log.Debug().Int("type", c.CurrentType).Int("total", c.TotalKills).Msg("wave advanced")
}

// OnBossSpawned marks the boss as live.
func (c *Controller) OnBossSpawned() {
	c.bossActive = true
}

// OnBossDefeated ends the boss fight and schedules the next one.
func (c *Controller) OnBossDefeated() {
	if !c.bossActive {
		return
	}
	c.bossActive = false
	c.nextBossAt = c.TotalKills + c.cfg.BossThreshold
	c.Cycle++
	c.log.Info().Int("cycle", c.Cycle).Int("next_boss_at", c.nextBossAt).Msg("boss defeated")
}

// OnMiniBossSpawned counts a new live mini-boss.
func (c *Controller) OnMiniBossSpawned() {
	c.miniBosses++
	c.miniBossDue = false
}

// OnMiniBossDefeated counts a destroyed mini-boss and enters the post
// mini-boss phase.
func (c *Controller) OnMiniBossDefeated() {
	if c.miniBosses > 0 {
		c.miniBosses--
	}
	c.ActivatePostMiniBossPhase()
}

// ActivatePostMiniBossPhase switches spawning to random types. It reports
// false when the phase was already active.
func (c *Controller) ActivatePostMiniBossPhase() bool {
	if c.PostMiniBossPhase {
		return false
	}
	c.PostMiniBossPhase = true
	c.PostMiniBossKills = 0
	c.miniBossDue = false
	c.log.Info().Int("total", c.TotalKills).Msg("post mini-boss phase")
	return true
}

// NextSpawnType returns the type of the next regular enemy: the current
// wave type, or a uniformly random one in the post mini-boss phase.
func (c *Controller) NextSpawnType(rng Rand) int {
	if c.PostMiniBossPhase && rng != nil {
		return rng.Intn(c.cfg.MaxType + 1)
	}
	return c.CurrentType
}

// CanSpawn reports whether a regular enemy may spawn given the number of
// live ones. A live boss suspends spawning; the post mini-boss phase caps
// the live count.
func (c *Controller) CanSpawn(live int) bool {
	if c.bossActive {
		return false
	}
	if c.PostMiniBossPhase {
		return live < c.cfg.MaxRandomEnemies
	}
	return true
}
