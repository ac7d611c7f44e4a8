// Package config holds the gameplay tuning of the runtime: progression
// thresholds, shield parameters, particle physics and spawn timings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultYAML []byte

// FramesPerSecond is the fixed simulation rate.
const FramesPerSecond = 60

// EnemyTypeCount is the number of regular enemy kinds; max_type indexes them.
const EnemyTypeCount = 5

// Progression controls the enemy type cycle and boss cadence.
type Progression struct {
	EnemiesPerType          int `yaml:"enemies_per_type"`
	MaxType                 int `yaml:"max_type"`
	BossThreshold           int `yaml:"boss_threshold"`
	MiniBossRespawnInterval int `yaml:"miniboss_respawn_interval"`
	MaxRandomEnemies        int `yaml:"max_random_enemies"`
}

// Shields holds the parameters of the three shield variants.
type Shields struct {
	SimpleRadius           float64       `yaml:"simple_radius"`
	SphericalRadius        float64       `yaml:"spherical_radius"`
	RiposteRadius          float64       `yaml:"riposte_radius"`
	RevealFrames           int           `yaml:"reveal_frames"`
	PowerUpRevealFrames    int           `yaml:"powerup_reveal_frames"`
	MaxEnergy              float64       `yaml:"max_energy"`
	RiposteThreshold       float64       `yaml:"riposte_threshold"`
	ManualRiposteThreshold float64       `yaml:"manual_riposte_threshold"`
	RiposteDelay           time.Duration `yaml:"riposte_delay"`
	RedPointsForReveal     int           `yaml:"red_points_for_reveal"`
}

// Particles holds the explosion and collectible particle physics.
type Particles struct {
	ExplosionCount     int     `yaml:"explosion_count"`
	BossExplosionCount int     `yaml:"boss_explosion_count"`
	CollectibleCount   int     `yaml:"collectible_count"`
	MinSpeed           float64 `yaml:"min_speed"`
	MaxSpeed           float64 `yaml:"max_speed"`
	MinLife            int     `yaml:"min_life"`
	MaxLife            int     `yaml:"max_life"`
	Friction           float64 `yaml:"friction"`
	FallSpeed          float64 `yaml:"fall_speed"`
	AttractRadius      float64 `yaml:"attract_radius"`
	AttractStrength    float64 `yaml:"attract_strength"`
	CollectRadius      float64 `yaml:"collect_radius"`
	CoinValue          float64 `yaml:"coin_value"`
}

// Combat holds damage, health and spawn cadence values.
type Combat struct {
	PlayerHealth      int     `yaml:"player_health"`
	PlayerLives       int     `yaml:"player_lives"`
	ApplyPlayerDamage bool    `yaml:"apply_player_damage"`
	BulletDamage      int     `yaml:"bullet_damage"`
	LaserDamage       int     `yaml:"laser_damage"`
	WaveBulletDamage  int     `yaml:"wave_bullet_damage"`
	ContactDamage     int     `yaml:"contact_damage"`
	MiniBossHealth    int     `yaml:"miniboss_health"`
	BossHealth        int     `yaml:"boss_health"`
	SpawnInterval     int     `yaml:"spawn_interval"`
	PowerUpChance     float64 `yaml:"powerup_chance"`
	FireInterval      int     `yaml:"fire_interval"`
}

// Tuning is the complete set of gameplay parameters.
type Tuning struct {
	Progression Progression `yaml:"progression"`
	Shields     Shields     `yaml:"shields"`
	Particles   Particles   `yaml:"particles"`
	Combat      Combat      `yaml:"combat"`
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		Progression: Progression{
			EnemiesPerType:          10,
			MaxType:                 4,
			BossThreshold:           100,
			MiniBossRespawnInterval: 30,
			MaxRandomEnemies:        8,
		},
		Shields: Shields{
			SimpleRadius:           50,
			SphericalRadius:        70,
			RiposteRadius:          60,
			RevealFrames:           600,
			PowerUpRevealFrames:    600,
			MaxEnergy:              100,
			RiposteThreshold:       50,
			ManualRiposteThreshold: 30,
			RiposteDelay:           500 * time.Millisecond,
			RedPointsForReveal:     20,
		},
		Particles: Particles{
			ExplosionCount:     100,
			BossExplosionCount: 300,
			CollectibleCount:   10,
			MinSpeed:           1,
			MaxSpeed:           3,
			MinLife:            30,
			MaxLife:            50,
			Friction:           0.95,
			FallSpeed:          1,
			AttractRadius:      100,
			AttractStrength:    3,
			CollectRadius:      30,
			CoinValue:          0.5,
		},
		Combat: Combat{
			PlayerHealth:      100,
			PlayerLives:       3,
			ApplyPlayerDamage: false,
			BulletDamage:      10,
			LaserDamage:       15,
			WaveBulletDamage:  8,
			ContactDamage:     25,
			MiniBossHealth:    40,
			BossHealth:        200,
			SpawnInterval:     45,
			PowerUpChance:     0.15,
			FireInterval:      90,
		},
	}
}

// DefaultYAML returns the embedded reference document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load overlays the YAML document read from r onto the defaults.
func Load(r io.Reader) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Default(), err
	}
	return t, nil
}

// Marshal encodes the tuning as YAML.
func (t Tuning) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return out, nil
}

// Validate reports every field that would break an invariant.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := t.Progression
	check(p.EnemiesPerType > 0, "progression.enemies_per_type must be positive, got %d", p.EnemiesPerType)
	check(p.MaxType >= 0 && p.MaxType < EnemyTypeCount,
		"progression.max_type must be in [0, %d], got %d", EnemyTypeCount-1, p.MaxType)
	check(p.BossThreshold > 0, "progression.boss_threshold must be positive, got %d", p.BossThreshold)
	check(p.MiniBossRespawnInterval > 0, "progression.miniboss_respawn_interval must be positive, got %d", p.MiniBossRespawnInterval)
	check(p.MaxRandomEnemies > 0, "progression.max_random_enemies must be positive, got %d", p.MaxRandomEnemies)

	s := t.Shields
	check(s.SimpleRadius > 0 && s.SphericalRadius > 0 && s.RiposteRadius > 0, "shields radii must be positive")
	check(s.MaxEnergy > 0, "shields.max_energy must be positive, got %g", s.MaxEnergy)
	check(s.RiposteThreshold > 0 && s.RiposteThreshold <= s.MaxEnergy,
		"shields.riposte_threshold must be in (0, max_energy], got %g", s.RiposteThreshold)
	check(s.ManualRiposteThreshold > 0 && s.ManualRiposteThreshold <= s.MaxEnergy,
		"shields.manual_riposte_threshold must be in (0, max_energy], got %g", s.ManualRiposteThreshold)
	check(s.RiposteDelay >= 0, "shields.riposte_delay must not be negative")
	check(s.RedPointsForReveal > 0, "shields.red_points_for_reveal must be positive, got %d", s.RedPointsForReveal)

	pa := t.Particles
	check(pa.MinLife > 0 && pa.MaxLife >= pa.MinLife, "particles life range invalid: %d..%d", pa.MinLife, pa.MaxLife)
	check(pa.MaxSpeed >= pa.MinSpeed, "particles speed range invalid: %g..%g", pa.MinSpeed, pa.MaxSpeed)
	check(pa.Friction > 0 && pa.Friction <= 1, "particles.friction must be in (0, 1], got %g", pa.Friction)

	c := t.Combat
	check(c.PlayerHealth > 0, "combat.player_health must be positive, got %d", c.PlayerHealth)
	check(c.MiniBossHealth > 0 && c.BossHealth > 0, "combat boss health must be positive")
	check(c.SpawnInterval > 0, "combat.spawn_interval must be positive, got %d", c.SpawnInterval)
	check(c.PowerUpChance >= 0 && c.PowerUpChance <= 1, "combat.powerup_chance must be in [0, 1], got %g", c.PowerUpChance)

	return errors.Join(errs...)
}

// TicksFor converts a wall-clock duration into simulation ticks, rounding up.
func TicksFor(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()*FramesPerSecond - 1e-9))
}
