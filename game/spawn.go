package game

import (
	"math"

	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/world"
)

// EnemyKind describes one regular enemy type.
type EnemyKind struct {
	Name  string
	Speed float64 // downward speed in px/frame
	Sway  float64 // horizontal sway amplitude in px/frame
	// FireScale multiplies Combat.FireInterval for this type.
	FireScale float64
}

// Standard enemy types, indexed by progression type.
var enemyKinds = [EnemyTypeCount]EnemyKind{
	{Name: "Straight Shooter", Speed: 2, FireScale: 1},
	{Name: "Hunter", Speed: 1.5, Sway: 1, FireScale: 1.2},
	{Name: "Spreader", Speed: 1.2, FireScale: 1.5},
	{Name: "Lancer", Speed: 1, Sway: 0.5, FireScale: 2},
	{Name: "Burster", Speed: 1.8, Sway: 1.5, FireScale: 1.6},
}

// EnemyKindName returns the display name of an enemy type.
func EnemyKindName(typ int) string {
	if typ < 0 || typ >= len(enemyKinds) {
		return "Unknown"
	}
	return enemyKinds[typ].Name
}

// fireInterval returns the ticks between two volleys of the given type.
func (g *Game) fireInterval(typ int) int {
	scale := 1.0
	if typ >= 0 && typ < len(enemyKinds) {
		scale = enemyKinds[typ].FireScale
	}
	n := int(float64(g.Tuning.Combat.FireInterval) * scale)
	if n < 1 {
		n = 1
	}
	return n
}

// GenerateEnemies spawns the next regular enemy when the spawn timer is due
// and progression allows it. It returns the spawned enemy, or nil.
func (g *Game) GenerateEnemies() *world.Enemy {
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return nil
	}
	g.spawnTimer = g.Tuning.Combat.SpawnInterval

	if !g.Progression.CanSpawn(g.World.Enemies.Live()) {
		return nil
	}
	typ := g.Progression.NextSpawnType(g.RNG)
	x := g.RNG.RandomFloat(EnemySize/2, WIDTH-EnemySize/2)
	return g.SpawnEnemy(typ, x, -EnemySize/2)
}

// SpawnEnemy adds an enemy of the given type centred on (x, y).
func (g *Game) SpawnEnemy(typ int, x, y float64) *world.Enemy {
	if typ < 0 || typ >= EnemyTypeCount {
		g.Log.Warn().Int("type", typ).Msg("unknown enemy type")
		typ = 0
	}
	kind := enemyKinds[typ]
	e := &world.Enemy{
		Body:      world.Body{ID: g.World.NextID(), Rect: geom.RectAround(x, y, EnemySize, EnemySize)},
		Type:      typ,
		VY:        kind.Speed,
		FireTimer: g.RNG.RandomInt(g.fireInterval(typ)/3, g.fireInterval(typ)),
		Phase:     g.RNG.RandomFloat(0, 2*math.Pi),
	}
	if !g.World.Enemies.Add(e) {
		return nil
	}
	return e
}

// CreateBoss spawns the boss unless one is already live.
func (g *Game) CreateBoss() *world.Boss {
	w := g.World
	if w.Boss != nil && !w.Boss.Dead() {
		return w.Boss
	}
	hp := g.Tuning.Combat.BossHealth
	b := &world.Boss{
		Body:      world.Body{ID: w.NextID(), Rect: geom.RectAround(WIDTH/2, -BossH/2, BossW, BossH)},
		Health:    hp,
		MaxHealth: hp,
		VX:        BossSpeed,
		StopY:     BossStopY,
		FireTimer: BossFire / 2,
	}
	w.Boss = b
	g.Progression.OnBossSpawned()
	g.Log.Info().Uint64("id", uint64(b.ID)).Int("kills", g.Progression.TotalKills).Msg("boss spawned")
	return b
}

// CreateMiniBoss spawns a mini-boss unless one is already live.
func (g *Game) CreateMiniBoss() *world.MiniBoss {
	w := g.World
	for _, m := range w.MiniBosses.Items() {
		if !m.Dead() {
			return m
		}
	}
	hp := g.Tuning.Combat.MiniBossHealth
	x := g.RNG.RandomFloat(MiniBossW, WIDTH-MiniBossW)
	m := &world.MiniBoss{
		Body:      world.Body{ID: w.NextID(), Rect: geom.RectAround(x, -MiniBossH/2, MiniBossW, MiniBossH)},
		Health:    hp,
		MaxHealth: hp,
		VX:        MiniBossSpeed,
		StopY:     MiniBossStopY,
		FireTimer: MiniBossFire / 2,
	}
	w.MiniBosses.Add(m)
	g.Progression.OnMiniBossSpawned()
	g.Log.Info().Uint64("id", uint64(m.ID)).Int("kills", g.Progression.TotalKills).Msg("mini-boss spawned")
	return m
}

// DamageMiniBoss applies n damage and reports whether m was destroyed.
func (g *Game) DamageMiniBoss(m *world.MiniBoss, n int) bool {
	if m == nil || m.Dead() {
		return false
	}
	if !m.TakeDamage(n) {
		return false
	}
	m.Kill()
	delete(g.emitters, m.ID)

	c := m.Center()
	g.Effects.SpawnExplosionParticles(c.X, c.Y, g.Tuning.Particles.BossExplosionCount)
	g.Effects.SpawnCollectibleParticles(c.X, c.Y, g.Tuning.Particles.CollectibleCount*2)
	g.Play(audio.CueBossExplosion)
	g.Progression.OnMiniBossDefeated()
	return true
}

// DamageBoss applies n damage and reports whether b was destroyed.
func (g *Game) DamageBoss(b *world.Boss, n int) bool {
	if b == nil || b.Dead() {
		return false
	}
	if !b.TakeDamage(n) {
		return false
	}
	b.Kill()
	delete(g.emitters, b.ID)

	c := b.Center()
	g.Effects.SpawnExplosionParticles(c.X, c.Y, g.Tuning.Particles.BossExplosionCount)
	g.Effects.SpawnCollectibleParticles(c.X, c.Y, g.Tuning.Particles.CollectibleCount*3)
	g.Play(audio.CueBossExplosion)
	g.Stats.Victories++
	g.Progression.OnBossDefeated()

	// Every cycle replays from its own seed
	g.RNG.SetSeed(common.StageSeed(g.seed, g.Progression.Cycle))
	return true
}
