package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/shield"
	"github.com/simukka/starship-espace/world"
)

// TestCollectPowerUp_ReplacesShield tests that collecting a spherical
// power-up while the riposte shield is up leaves only the spherical shield
func TestCollectPowerUp_ReplacesShield(t *testing.T) {
	g := newTestGame(t)
	g.ActivateRiposteShield()
	require.True(t, g.Riposte.Active())

	g.CollectPowerUp(world.PowerUpSpherical)
	assert.False(t, g.Riposte.Active())
	assert.False(t, g.Simple.Active())
	assert.True(t, g.Spherical.IsActive())
	assert.Equal(t, g.Tuning.Shields.PowerUpRevealFrames, g.Spherical.RevealTimer())

	first, ok := g.Shields.First()
	require.True(t, ok)
	assert.Equal(t, shield.Spherical, first.ID())
}

func TestCollectPowerUp_Kinds(t *testing.T) {
	g := newTestGame(t)
	for _, kind := range world.PowerUpKinds {
		g.CollectPowerUp(kind)
		first, ok := g.Shields.First()
		require.True(t, ok, kind.String())
		assert.Equal(t, powerUpShield(kind), first.ID(), kind.String())
		assert.Equal(t, 1, g.Shields.ActiveCount(), kind.String())
	}
	assert.Equal(t, len(world.PowerUpKinds), sounds(g).Count(audio.CueShieldUp))

	g.CollectPowerUp(world.PowerUpKind(9))
	assert.Equal(t, shield.Riposte, mustFirst(t, g))
	assert.Equal(t, shield.None, powerUpShield(world.PowerUpKind(9)))
}

func mustFirst(t *testing.T, g *Game) shield.ID {
	t.Helper()
	h, ok := g.Shields.First()
	require.True(t, ok)
	return h.ID()
}

// TestShields_NeverTwoActive tests that no sequence of activations,
// pickups, red points and frame updates ever leaves two shields up
func TestShields_NeverTwoActive(t *testing.T) {
	g := newTestGame(t)
	rng := common.NewSeededRNG(7)
	actions := []func(){
		g.ActivateSimpleShield,
		g.ActivateSphericalShield,
		g.ActivateRiposteShield,
		g.DeactivateSimpleShield,
		g.DeactivateSphericalShield,
		g.DeactivateRiposteShield,
		g.OnRedPointCollected,
		func() { g.CollectPowerUp(world.PowerUpKinds[rng.Intn(len(world.PowerUpKinds))]) },
		func() {
			g.Simple.Update()
			g.Riposte.Update()
			g.Spherical.Update()
		},
	}

	for i := 0; i < 2000; i++ {
		actions[rng.Intn(len(actions))]()
		require.LessOrEqual(t, g.Shields.ActiveCount(), 1, "step %d", i)
	}
}

// TestOnRedPointCollected_Reveal tests that every twentieth red point fully
// reveals the spherical shield and resets the counter
func TestOnRedPointCollected_Reveal(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 19; i++ {
		g.OnRedPointCollected()
	}
	assert.False(t, g.Spherical.IsActive())
	assert.Equal(t, 19, g.Stats.RedPoints)

	g.OnRedPointCollected()
	assert.True(t, g.Spherical.IsActive())
	assert.Equal(t, 0, g.Stats.RedPoints)
	assert.Equal(t, 10.0, g.Stats.Coins)
	assert.Equal(t, 20, sounds(g).Count(audio.CueCoin))
}

// TestOnRedPointCollected_SimpleKept tests that the reveal is skipped while
// the simple shield is up
func TestOnRedPointCollected_SimpleKept(t *testing.T) {
	g := newTestGame(t)
	g.ActivateSimpleShield()
	for i := 0; i < 20; i++ {
		g.OnRedPointCollected()
	}
	assert.True(t, g.Simple.Active())
	assert.False(t, g.Spherical.IsActive())
	assert.Equal(t, 0, g.Stats.RedPoints)
}

// TestOnRedPointCollected_ReplacesRiposte tests that the reveal drops the
// riposte shield but keeps its stored energy
func TestOnRedPointCollected_ReplacesRiposte(t *testing.T) {
	g := newTestGame(t)
	g.ActivateRiposteShield()
	g.Riposte.Energy = 20
	for i := 0; i < 20; i++ {
		g.OnRedPointCollected()
	}
	assert.False(t, g.Riposte.Active())
	assert.True(t, g.Spherical.IsActive())
	assert.Equal(t, 20.0, g.Riposte.Energy)
}

func TestTriggerManualRiposte(t *testing.T) {
	g := newTestGame(t)
	g.Riposte.Energy = 40
	assert.False(t, g.TriggerManualRiposte(), "shield down")

	g.ActivateRiposteShield()
	g.Riposte.Energy = 20
	assert.False(t, g.TriggerManualRiposte(), "not enough energy")
	assert.Equal(t, 0, g.World.Ripostes.Len())

	g.Riposte.Energy = 40
	require.True(t, g.TriggerManualRiposte())
	assert.Equal(t, 10.0, g.Riposte.Energy)
	require.Equal(t, 1, g.World.Ripostes.Len())

	p := g.World.Player
	beam := g.World.Ripostes.At(0)
	assert.Equal(t, g.PlayerCenter().X, beam.Center().X)
	assert.Equal(t, 0.0, beam.Y)
	assert.Equal(t, p.Y, beam.H)
	assert.Equal(t, 1, g.Stats.Ripostes)
}

// TestDestroyEnemy_DropsPowerUp tests that a kill can drop a pickup at the
// enemy's position
func TestDestroyEnemy_DropsPowerUp(t *testing.T) {
	g := newTestGame(t)
	withEffects(g)
	g.Tuning.Combat.PowerUpChance = 1
	e := addEnemy(g, 0, geom.RectAround(200, 200, 60, 60))

	g.destroyEnemy(e)
	require.Equal(t, 1, g.World.PowerUps.Len())
	pu := g.World.PowerUps.At(0)
	assert.Equal(t, geom.Point{X: 200, Y: 200}, pu.Center())
	assert.NotEqual(t, shield.None, powerUpShield(pu.Kind))

	g.destroyEnemy(e)
	assert.Equal(t, 1, g.World.PowerUps.Len(), "already dead")
}
