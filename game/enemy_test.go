package game

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/world"
)

const floatTolerance = 0.0001

// fakeRunner is a scripted wave bullet runner.
type fakeRunner struct {
	x, y     float64
	err      error
	vanished bool
	updates  int
}

func (f *fakeRunner) Update() error {
	f.updates++
	return f.err
}

func (f *fakeRunner) Position() (float64, float64) { return f.x, f.y }
func (f *fakeRunner) Vanished() bool               { return f.vanished }

func TestOffscreen(t *testing.T) {
	tests := []struct {
		name string
		r    geom.Rect
		want bool
	}{
		{"on screen", geom.Rect{X: 100, Y: 100, W: 10, H: 10}, false},
		{"inside margin above", geom.Rect{X: 100, Y: -60, W: 10, H: 10}, false},
		{"above margin", geom.Rect{X: 100, Y: -200, W: 10, H: 10}, true},
		{"below margin", geom.Rect{X: 100, Y: HEIGHT + Margin + 1, W: 10, H: 10}, true},
		{"left of margin", geom.Rect{X: -Margin - 20, Y: 100, W: 10, H: 10}, true},
		{"right of margin", geom.Rect{X: WIDTH + Margin + 1, Y: 100, W: 10, H: 10}, true},
		{"nan", geom.Rect{X: math.NaN(), Y: 100, W: 10, H: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offscreen(tt.r))
		})
	}
}

// TestUpdateEnemies_EscapeIsNotAKill tests that enemies leaving the screen
// are dropped without advancing the progression
func TestUpdateEnemies_EscapeIsNotAKill(t *testing.T) {
	g := newTestGame(t)
	stay := g.SpawnEnemy(0, 100, 100)
	stay.FireTimer = 1000
	gone := g.SpawnEnemy(0, 100, HEIGHT+Margin+100)
	gone.FireTimer = 1000

	g.UpdateEnemies()
	assert.Equal(t, 1, g.World.Enemies.Len())
	assert.InDelta(t, 100+enemyKinds[0].Speed, stay.Center().Y, floatTolerance)
	assert.Equal(t, 0, g.Progression.TotalKills)
}

func TestUpdateEnemies_SpeedMultiplier(t *testing.T) {
	g := newTestGame(t)
	g.SpeedMult = 2
	e := g.SpawnEnemy(0, 100, 100)
	e.FireTimer = 1000

	g.UpdateEnemies()
	assert.InDelta(t, 100+2*enemyKinds[0].Speed, e.Center().Y, floatTolerance)
}

func TestUpdateEnemies_FiresWhenDue(t *testing.T) {
	g := newTestGame(t)
	e := g.SpawnEnemy(0, 400, 100)
	e.FireTimer = 1

	g.UpdateEnemies()
	assert.Equal(t, 1, g.World.EnemyBullets.Len())
	assert.Equal(t, g.fireInterval(0), e.FireTimer)
}

// TestFireEnemy_Weapons tests the weapon of every enemy type
func TestFireEnemy_Weapons(t *testing.T) {
	tests := []struct {
		typ     int
		bullets int
		lasers  int
		pending int
	}{
		{typ: 0, bullets: 1},
		{typ: 1, bullets: 1},
		{typ: 2, bullets: 3},
		{typ: 3, lasers: 1},
		{typ: 4, bullets: 1, pending: BurstShots - 1},
	}
	for _, tt := range tests {
		t.Run(EnemyKindName(tt.typ), func(t *testing.T) {
			g := newTestGame(t)
			e := g.SpawnEnemy(tt.typ, 400, 100)
			g.fireEnemy(e)

			assert.Equal(t, tt.bullets, g.World.EnemyBullets.Len())
			assert.Equal(t, tt.lasers, g.World.Lasers.Len())
			assert.Equal(t, tt.pending, g.Scheduler.Pending())
			for _, b := range g.World.EnemyBullets.Items() {
				assert.Greater(t, b.VY, 0.0, "bullets head down")
				assert.InDelta(t, EnemyBulletSpeed, math.Hypot(b.VX, b.VY), floatTolerance)
				assert.Equal(t, g.Tuning.Combat.BulletDamage, b.Damage)
			}
		})
	}
}

func TestFireEnemy_Aimed(t *testing.T) {
	g := newTestGame(t)
	e := g.SpawnEnemy(1, 100, 100)
	g.fireEnemy(e)

	require.Equal(t, 1, g.World.EnemyBullets.Len())
	b := g.World.EnemyBullets.At(0)
	pc := g.PlayerCenter()
	muzzle := geom.Point{X: 100, Y: 130}
	want := math.Atan2(pc.Y-muzzle.Y, pc.X-muzzle.X)
	assert.InDelta(t, want, math.Atan2(b.VY, b.VX), floatTolerance)
}

func TestEnemyKindName(t *testing.T) {
	assert.Equal(t, "Straight Shooter", EnemyKindName(0))
	assert.Equal(t, "Burster", EnemyKindName(EnemyTypeCount-1))
	assert.Equal(t, "Unknown", EnemyKindName(-1))
	assert.Equal(t, "Unknown", EnemyKindName(EnemyTypeCount))
}

// TestLaser_FollowsSource tests that a laser tracks its shooter horizontally
// and keeps its last heading once the shooter is destroyed
func TestLaser_FollowsSource(t *testing.T) {
	g := newTestGame(t)
	e := g.SpawnEnemy(3, 200, 100)
	e.FireTimer = 1000
	l := g.fireLaser(e.ID, geom.Point{X: 200, Y: 130})
	require.NotNil(t, l)
	startY := l.Y

	e.Translate(50, 0)
	g.UpdateHazards()
	assert.InDelta(t, 250, l.Center().X, floatTolerance)
	assert.InDelta(t, startY+LaserSpeed, l.Y, floatTolerance)
	assert.Equal(t, e.ID, l.SourceID)

	e.Kill()
	g.World.Enemies.Sweep()
	g.UpdateHazards()
	assert.Equal(t, world.ID(0), l.SourceID)
	assert.InDelta(t, 250, l.Center().X, floatTolerance)
	assert.InDelta(t, startY+2*LaserSpeed, l.Y, floatTolerance)

	for i := 0; i < LaserLife; i++ {
		g.UpdateHazards()
	}
	assert.Equal(t, 0, g.World.Lasers.Len(), "expired")
}

// TestBurst_Staggered tests that the burst shots leave BurstGap ticks apart
// and stop once the shooter is gone
func TestBurst_Staggered(t *testing.T) {
	g := newTestGame(t)
	e := g.SpawnEnemy(4, 400, 100)
	g.fireEnemy(e)
	require.Equal(t, 1, g.World.EnemyBullets.Len())
	require.Equal(t, 2, g.Scheduler.Pending())

	for i := 0; i < BurstGap-1; i++ {
		g.Scheduler.Advance()
	}
	assert.Equal(t, 1, g.World.EnemyBullets.Len())
	g.Scheduler.Advance()
	assert.Equal(t, 2, g.World.EnemyBullets.Len())

	e.Kill()
	g.World.Enemies.Sweep()
	for i := 0; i < BurstGap; i++ {
		g.Scheduler.Advance()
	}
	assert.Equal(t, 2, g.World.EnemyBullets.Len())
	assert.Equal(t, 0, g.Scheduler.Pending())
}

func TestUpdateHazards_EnemyBullets(t *testing.T) {
	g := newTestGame(t)
	b := g.fireBullet(100, 100, math.Pi/2)
	g.fireBullet(100, HEIGHT+Margin, math.Pi/2)

	g.UpdateHazards()
	require.Equal(t, 1, g.World.EnemyBullets.Len())
	assert.InDelta(t, 100+EnemyBulletSpeed, b.Center().Y, floatTolerance)
}

// TestUpdateHazards_WaveBullets tests that wave bullets follow their runner
// and are dropped when it fails or vanishes
func TestUpdateHazards_WaveBullets(t *testing.T) {
	g := newTestGame(t)
	add := func(r world.Runner) *world.WaveBullet {
		wb := &world.WaveBullet{
			Body:   world.Body{ID: g.World.NextID(), Rect: geom.RectAround(0, 0, WaveBulletSize, WaveBulletSize)},
			Runner: r,
		}
		g.World.WaveBullets.Add(wb)
		return wb
	}
	ok := &fakeRunner{x: 300, y: 200}
	kept := add(ok)
	add(&fakeRunner{err: errors.New("bad action")})
	add(&fakeRunner{vanished: true})
	add(&fakeRunner{x: -1000, y: 200})
	add(nil)

	g.UpdateHazards()
	require.Equal(t, 1, g.World.WaveBullets.Len())
	assert.Same(t, kept, g.World.WaveBullets.At(0))
	assert.Equal(t, geom.Point{X: 300, Y: 200}, kept.Center())
	assert.Equal(t, 1, ok.updates)
}

// TestUpdateBosses_MiniBossVolley tests that a mini-boss fires a laser and
// a pattern volley, and that the volley stops with it
func TestUpdateBosses_MiniBossVolley(t *testing.T) {
	g := newTestGame(t)
	withEffects(g)
	m := g.CreateMiniBoss()
	for i := 0; i < MiniBossFire/2+20; i++ {
		g.UpdateBosses()
	}
	assert.Equal(t, 1, g.World.Lasers.Len())
	assert.Greater(t, g.World.WaveBullets.Len(), 0)
	assert.Len(t, g.emitters, 1)
	assert.InDelta(t, MiniBossStopY, m.Y, MiniBossSpeed)

	require.True(t, g.DamageMiniBoss(m, m.Health))
	assert.Empty(t, g.emitters)
}

// TestUpdateBosses_BossVolley tests that the boss descends to its patrol
// line and starts a volley
func TestUpdateBosses_BossVolley(t *testing.T) {
	g := newTestGame(t)
	b := g.CreateBoss()
	for i := 0; i < BossFire/2+50; i++ {
		g.UpdateBosses()
	}
	assert.GreaterOrEqual(t, b.Y, float64(BossStopY))
	assert.Greater(t, g.World.WaveBullets.Len(), 0)

	g.World.Boss = nil
	g.UpdateBosses()
	assert.Empty(t, g.emitters, "volley dropped with its owner")
}

func TestPatrol_Bounces(t *testing.T) {
	g := newTestGame(t)
	r := geom.Rect{X: WIDTH - 101, Y: 100, W: 100, H: 50}
	vx := g.patrol(&r, 2, 100, 2)
	assert.Equal(t, -2.0, vx)
	assert.Equal(t, float64(WIDTH-100), r.X)

	r = geom.Rect{X: 1, Y: 100, W: 100, H: 50}
	vx = g.patrol(&r, -2, 100, 2)
	assert.Equal(t, 2.0, vx)
	assert.Equal(t, 0.0, r.X)

	r = geom.Rect{X: 300, Y: 0, W: 100, H: 50}
	vx = g.patrol(&r, 2, 100, 2)
	assert.Equal(t, 2.0, vx)
	assert.Equal(t, 300.0, r.X)
	assert.Equal(t, 2.0, r.Y)
}
