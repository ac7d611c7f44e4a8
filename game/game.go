package game

import (
	"github.com/rs/zerolog"

	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/config"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/particles"
	"github.com/simukka/starship-espace/pattern"
	"github.com/simukka/starship-espace/progression"
	"github.com/simukka/starship-espace/sched"
	"github.com/simukka/starship-espace/shield"
	"github.com/simukka/starship-espace/world"
)

// Effects is the particle collaborator the resolver feeds.
type Effects interface {
	SpawnExplosionParticles(x, y float64, count int) int
	SpawnCollectibleParticles(x, y float64, count int) int
	CreateShieldImpactEffect(id shield.ID, x, y float64)
}

// Scorer is told about every enemy kill.
type Scorer interface {
	HandleKill(playerID int)
}

// Score is the default scoreboard.
type Score struct {
	Kills  int
	Points int
}

// HandleKill implements Scorer.
func (s *Score) HandleKill(playerID int) {
	s.Kills++
	s.Points += 100
}

// Stats are the counters shown by the overlay.
type Stats struct {
	Tick       uint64
	Coins      float64
	RedPoints  int // collected toward the next spherical reveal
	PlayerHits int
	ShieldHits int
	Ripostes   int
	Victories  int
}

// Options configures a new game.
type Options struct {
	Tuning     config.Tuning
	Difficulty config.Difficulty
	Seed       uint32
	// Audio defaults to a silent counter.
	Audio audio.Player
	// Log defaults to a "game" component logger.
	Log *zerolog.Logger
}

// Game holds the complete game state. Nothing in the package keeps state
// outside of it, so independent games can run side by side.
type Game struct {
	Tuning     config.Tuning
	Difficulty config.Difficulty
	SpeedMult  float64

	World *world.World

	// Shields
	Simple    *shield.SimpleShield
	Riposte   *shield.RiposteShield
	Spherical *shield.SphericalShield
	Shields   *shield.Arbiter

	Progression *progression.Controller
	Scheduler   *sched.Scheduler
	Particles   *particles.System
	Effects     Effects
	Audio       audio.Player
	Score       Scorer
	Stats       Stats

	RNG *common.SeededRNG
	Log zerolog.Logger

	// Collision detection
	EnemyGrid *world.Grid[*world.Enemy]

	// Input
	Keys map[int]bool

	Paused bool
	Over   bool

	// Debug UI
	Overlay *StatsOverlay
	DebugUI *DebugUI

	seed       uint32
	spawnTimer int
	emitters   map[world.ID]*pattern.Emitter
	nearby     []*world.Enemy
}

// NewGame creates a game with the player parked at the bottom centre.
func NewGame(opts Options) *Game {
	log := common.NewLogger("game")
	if opts.Log != nil {
		log = *opts.Log
	}

	tuning := opts.Tuning
	if err := tuning.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid tuning, using defaults")
		tuning = config.Default()
	}

	player := opts.Audio
	if player == nil {
		player = &audio.Counter{}
	}

	rng := common.NewSeededRNG(opts.Seed)
	s := tuning.Shields
	g := &Game{
		Tuning:      tuning,
		Difficulty:  opts.Difficulty,
		SpeedMult:   opts.Difficulty.SpeedMultiplier(),
		World:       world.New(PlayerStartX, PlayerStartY, tuning.Combat.PlayerHealth, tuning.Combat.PlayerLives),
		Simple:      shield.NewSimple(s.SimpleRadius),
		Riposte:     shield.NewRiposte(s.RiposteRadius, s.MaxEnergy, s.RiposteThreshold, s.ManualRiposteThreshold),
		Spherical:   shield.NewSpherical(s.SphericalRadius, s.RevealFrames),
		Progression: progression.New(tuning.Progression, log.With().Str("sub", "progression").Logger()),
		Scheduler:   sched.New(),
		Particles:   particles.New(tuning.Particles, rng),
		Audio:       player,
		Score:       &Score{},
		RNG:         rng,
		Log:         log,
		EnemyGrid:   world.NewGrid[*world.Enemy](WIDTH, HEIGHT, GridCell),
		Keys:        make(map[int]bool),
		Overlay:     NewStatsOverlay(),
		seed:        opts.Seed,
		emitters:    make(map[world.ID]*pattern.Emitter),
	}
	g.DebugUI = NewDebugUI(&g.Tuning)

	// Priority order when more than one shield is up.
	g.Shields = shield.NewArbiter(g.Simple, g.Riposte, g.Spherical)
	g.Effects = g.Particles
	g.Particles.OnCollect = g.OnRedPointCollected
	g.Riposte.Charged = g.scheduleRiposte
	g.World.Player.Speed = PlayerSpeed

	return g
}

// Reset starts a new session with the same tuning and seed.
func (g *Game) Reset() {
	c := g.Tuning.Combat
	g.World = world.New(PlayerStartX, PlayerStartY, c.PlayerHealth, c.PlayerLives)
	g.World.Player.Speed = PlayerSpeed
	g.Simple.Reset()
	g.Riposte.Reset()
	g.Spherical.Deactivate()
	g.Progression.Reset()
	g.Scheduler.Clear()
	g.Particles.Clear()
	g.RNG.SetSeed(g.seed)
	g.Stats = Stats{}
	if sc, ok := g.Score.(*Score); ok {
		*sc = Score{}
	}
	g.Over = false
	g.spawnTimer = 0
	g.emitters = make(map[world.ID]*pattern.Emitter)
	g.Log.Info().Uint32("seed", g.RNG.Seed()).Msg("game reset")
}

// PlayerCenter returns the centre of the player ship.
func (g *Game) PlayerCenter() geom.Point {
	return g.World.Player.Center()
}

// Play plays a sound cue.
func (g *Game) Play(c audio.Cue) {
	if g.Audio != nil {
		g.Audio.Play(c)
	}
}

// scheduleRiposte is the riposte shield's charge hook: the automatic shot
// leaves after the configured delay.
func (g *Game) scheduleRiposte() {
	delay := config.TicksFor(g.Tuning.Shields.RiposteDelay)
	g.Scheduler.After(delay, func() {
		if g.Riposte.Fire() {
			g.fireRiposteBeam()
		}
	})
}
