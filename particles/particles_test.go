package particles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/config"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/shield"
)

func newSystem() *System {
	return New(config.Default().Particles, common.NewSeededRNG(42))
}

// TestPool_AcquireRelease tests swap-and-pop release keeps the active prefix dense
func TestPool_AcquireRelease(t *testing.T) {
	p := NewPool[Flash](3)
	a := p.Acquire()
	b := p.Acquire()
	c := p.Acquire()
	require.NotNil(t, c)
	assert.Nil(t, p.Acquire())

	a.Life, b.Life, c.Life = 1, 2, 3
	p.Release(0)
	assert.Equal(t, 2, p.ActiveCount)
	assert.Equal(t, 3, p.Pool[0].Life)
	assert.Equal(t, 2, p.Pool[1].Life)

	p.Release(5)
	assert.Equal(t, 2, p.ActiveCount)

	d := p.Acquire()
	assert.Equal(t, Flash{}, *d, "acquired particles are zeroed")
}

// TestSpawnExplosionParticles tests the spark count and physics ranges
func TestSpawnExplosionParticles(t *testing.T) {
	s := newSystem()
	assert.Equal(t, 100, s.SpawnExplosionParticles(130, 130, 100))
	sparks, _, _ := s.Counts()
	assert.Equal(t, 100, sparks)

	for i := 0; i < s.Sparks.ActiveCount; i++ {
		p := s.Sparks.Pool[i]
		speed := math.Hypot(p.VX, p.VY)
		assert.GreaterOrEqual(t, speed, 1.0-1e-9)
		assert.Less(t, speed, 3.0)
		assert.GreaterOrEqual(t, p.Life, 30)
		assert.LessOrEqual(t, p.Life, 50)
	}
}

// TestSparks_FrictionAndExpiry tests that sparks slow down and all die
// within the maximum life
func TestSparks_FrictionAndExpiry(t *testing.T) {
	s := newSystem()
	s.SpawnExplosionParticles(0, 0, 10)
	before := math.Hypot(s.Sparks.Pool[0].VX, s.Sparks.Pool[0].VY)
	s.Update(geom.Point{X: 1000, Y: 1000}, 600)
	after := math.Hypot(s.Sparks.Pool[0].VX, s.Sparks.Pool[0].VY)
	assert.InDelta(t, before*0.95, after, 1e-9)

	for i := 0; i < 50; i++ {
		s.Update(geom.Point{X: 1000, Y: 1000}, 600)
	}
	sparks, _, _ := s.Counts()
	assert.Zero(t, sparks)
}

func TestSpawn_NonFiniteIgnored(t *testing.T) {
	s := newSystem()
	assert.Zero(t, s.SpawnExplosionParticles(math.NaN(), 0, 100))
	assert.Zero(t, s.SpawnCollectibleParticles(0, math.Inf(1), 10))
	s.CreateShieldImpactEffect(shield.Simple, math.NaN(), 0)
	sparks, reds, flashes := s.Counts()
	assert.Zero(t, sparks+reds+flashes)
}

// TestRedPoints_FallWhenFar tests that red points out of range fall at the
// configured speed
func TestRedPoints_FallWhenFar(t *testing.T) {
	s := newSystem()
	require.Equal(t, 10, s.SpawnCollectibleParticles(100, 100, 10))
	p := s.RedPoints.Pool[0]
	y := p.Y

	assert.Zero(t, s.Update(geom.Point{X: 700, Y: 550}, 600))
	assert.Equal(t, y+1, p.Y)
	assert.False(t, p.Attracted)
}

// TestRedPoints_AttractedAndCollected tests attraction inside 100px and
// collection inside 30px
func TestRedPoints_AttractedAndCollected(t *testing.T) {
	s := newSystem()
	collected := 0
	s.OnCollect = func() { collected++ }

	p := s.RedPoints.Acquire()
	p.X, p.Y = 400, 430
	player := geom.Point{X: 400, Y: 520}

	assert.Zero(t, s.Update(player, 600))
	assert.True(t, p.Attracted)
	assert.Equal(t, 433.0, p.Y)

	total := 0
	for i := 0; i < 40 && s.RedPoints.ActiveCount > 0; i++ {
		total += s.Update(player, 600)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, collected)
	assert.Zero(t, s.RedPoints.ActiveCount)
}

func TestRedPoints_DroppedOffscreen(t *testing.T) {
	s := newSystem()
	p := s.RedPoints.Acquire()
	p.X, p.Y = 10, 620
	s.Update(geom.Point{X: 700, Y: 100}, 600)
	assert.Zero(t, s.RedPoints.ActiveCount)
}

func TestShieldImpactEffect(t *testing.T) {
	s := newSystem()
	s.CreateShieldImpactEffect(shield.Riposte, 10, 20)
	require.Equal(t, 1, s.Flashes.ActiveCount)
	assert.Equal(t, Flash{Shield: shield.Riposte, X: 10, Y: 20, Life: flashLife}, *s.Flashes.Pool[0])

	for i := 0; i < flashLife; i++ {
		s.Update(geom.Point{}, 600)
	}
	assert.Zero(t, s.Flashes.ActiveCount)

	s.SpawnExplosionParticles(0, 0, 5)
	s.Clear()
	sparks, _, _ := s.Counts()
	assert.Zero(t, sparks)
}
