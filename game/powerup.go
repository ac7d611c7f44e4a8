package game

import (
	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/shield"
	"github.com/simukka/starship-espace/world"
)

// ActivateSimpleShield raises the simple shield. The other two shields are
// dropped first so that at most one is ever up.
func (g *Game) ActivateSimpleShield() {
	g.DeactivateRiposteShield()
	g.DeactivateSphericalShield()
	g.Simple.Activate()
	g.Play(audio.CueShieldUp)
	g.Log.Debug().Msg("simple shield up")
}

// ActivateSphericalShield fully reveals the spherical shield for the
// power-up window.
func (g *Game) ActivateSphericalShield() {
	g.DeactivateSimpleShield()
	g.DeactivateRiposteShield()
	g.Spherical.ForceFullReveal(g.Tuning.Shields.PowerUpRevealFrames)
	g.Play(audio.CueShieldUp)
	g.Log.Debug().Int("frames", g.Spherical.RevealTimer()).Msg("spherical shield up")
}

// ActivateRiposteShield raises the riposte shield. Stored energy carries
// over between activations.
func (g *Game) ActivateRiposteShield() {
	g.DeactivateSimpleShield()
	g.DeactivateSphericalShield()
	g.Riposte.Activate()
	g.Play(audio.CueShieldUp)
	g.Log.Debug().Float64("energy", g.Riposte.Energy).Msg("riposte shield up")
}

func (g *Game) DeactivateSimpleShield()    { g.Simple.Deactivate() }
func (g *Game) DeactivateSphericalShield() { g.Spherical.Deactivate() }
func (g *Game) DeactivateRiposteShield()   { g.Riposte.Deactivate() }

// ToggleSimpleShield raises the simple shield, or drops it when it is up.
func (g *Game) ToggleSimpleShield() {
	if g.Simple.Active() {
		g.DeactivateSimpleShield()
		return
	}
	g.ActivateSimpleShield()
}

// CollectPowerUp activates the shield matching kind.
func (g *Game) CollectPowerUp(kind world.PowerUpKind) {
	g.Log.Info().Stringer("kind", kind).Msg("power-up collected")
	switch kind {
	case world.PowerUpSimple:
		g.ActivateSimpleShield()
	case world.PowerUpSpherical:
		g.ActivateSphericalShield()
	case world.PowerUpRiposte:
		g.ActivateRiposteShield()
	default:
		g.Log.Warn().Int("kind", int(kind)).Msg("unknown power-up")
	}
}

// powerUpShield returns the shield a pickup activates.
func powerUpShield(kind world.PowerUpKind) shield.ID {
	switch kind {
	case world.PowerUpSimple:
		return shield.Simple
	case world.PowerUpSpherical:
		return shield.Spherical
	case world.PowerUpRiposte:
		return shield.Riposte
	}
	return shield.None
}

// maybeDropPowerUp rolls the drop chance at a destroyed enemy's position.
func (g *Game) maybeDropPowerUp(x, y float64) {
	if !g.RNG.Chance(g.Tuning.Combat.PowerUpChance) {
		return
	}
	kind := world.PowerUpKinds[g.RNG.Intn(len(world.PowerUpKinds))]
	g.SpawnPowerUp(kind, x, y)
}

// SpawnPowerUp drops a pickup centred on (x, y).
func (g *Game) SpawnPowerUp(kind world.PowerUpKind, x, y float64) *world.PowerUp {
	pu := &world.PowerUp{
		Body: world.Body{ID: g.World.NextID(), Rect: geom.RectAround(x, y, PowerUpSize, PowerUpSize)},
		Kind: kind,
		VY:   PowerUpSpeed,
	}
	if !g.World.PowerUps.Add(pu) {
		return nil
	}
	return pu
}

// OnRedPointCollected is called by the particle system for every red point
// reaching the ship. Every RedPointsForReveal points the spherical shield is
// fully revealed, unless the simple shield is up.
func (g *Game) OnRedPointCollected() {
	g.Stats.Coins += g.Tuning.Particles.CoinValue
	g.Stats.RedPoints++
	g.Play(audio.CueCoin)

	if g.Stats.RedPoints < g.Tuning.Shields.RedPointsForReveal {
		return
	}
	g.Stats.RedPoints = 0
	if g.Simple.Active() {
		return
	}
	g.ActivateSphericalShield()
}

// TriggerManualRiposte fires a riposte on demand if the shield holds enough
// energy.
func (g *Game) TriggerManualRiposte() bool {
	if !g.Riposte.TriggerManual() {
		return false
	}
	g.fireRiposteBeam()
	return true
}

// fireRiposteBeam launches the vertical counter-beam from the ship's nose
// to the top of the screen.
func (g *Game) fireRiposteBeam() {
	p := g.World.Player
	c := p.Center()
	r := &world.Riposte{
		Body:   world.Body{ID: g.World.NextID(), Rect: geom.Rect{X: c.X - RiposteW/2, Y: 0, W: RiposteW, H: p.Y}},
		Damage: RiposteDamage,
		Life:   RiposteLife,
	}
	g.World.Ripostes.Add(r)
	g.Stats.Ripostes++
	g.Play(audio.CueRiposte)
	g.Log.Debug().Float64("energy", g.Riposte.Energy).Msg("riposte fired")
}
