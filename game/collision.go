package game

import (
	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/shield"
	"github.com/simukka/starship-espace/world"
)

// Resolve runs every collision step of one tick in order. Each step sweeps
// the pools it touched, so later steps never see an entity killed earlier.
func (g *Game) Resolve() {
	g.ResolvePlayerBulletVsEnemies()
	g.ResolvePlayerBulletVsBosses()
	g.ResolveRipostes()
	g.ResolveEnemiesVsPlayer()
	g.ResolveHazards()
	g.ResolvePowerUps()
}

// ResolvePlayerBulletVsEnemies destroys every enemy hit by a player bullet
// and returns the number destroyed. A bullet is consumed by the first enemy
// it overlaps, in spawn order.
func (g *Game) ResolvePlayerBulletVsEnemies() int {
	w := g.World

	g.EnemyGrid.Clear()
	for _, e := range w.Enemies.Items() {
		if !e.Dead() {
			g.EnemyGrid.Insert(e)
		}
	}

	killed := 0
	for _, b := range w.PlayerBullets.Items() {
		if b.Dead() || !b.Bounds().Valid() {
			continue
		}
		c := b.Center()
		g.nearby = g.EnemyGrid.Nearby(c.X, c.Y, g.nearby[:0])

		var hit *world.Enemy
		for _, e := range g.nearby {
			if e.Dead() || !world.Collides(b, e) {
				continue
			}
			if hit == nil || e.ID < hit.ID {
				hit = e
			}
		}
		if hit == nil {
			continue
		}
		b.Kill()
		g.destroyEnemy(hit)
		killed++
	}

	w.PlayerBullets.Sweep()
	w.Enemies.Sweep()
	return killed
}

// destroyEnemy removes e and applies every kill side effect, including the
// progression signals, before returning.
func (g *Game) destroyEnemy(e *world.Enemy) {
	if e.Dead() {
		return
	}
	e.Kill()
	c := e.Center()

	pc := g.Tuning.Particles
	g.Effects.SpawnExplosionParticles(c.X, c.Y, pc.ExplosionCount)
	g.Effects.SpawnCollectibleParticles(c.X, c.Y, pc.CollectibleCount)
	if g.Score != nil {
		g.Score.HandleKill(LocalPlayerID)
	}
	g.Play(audio.CueHit)

	res := g.Progression.OnEnemyKilled()
	if res.SpawnBoss {
		g.CreateBoss()
	} else if res.SpawnMiniBoss {
		g.CreateMiniBoss()
	}
	g.maybeDropPowerUp(c.X, c.Y)
}

// ResolvePlayerBulletVsBosses applies player bullets to mini-bosses, then to
// the boss.
func (g *Game) ResolvePlayerBulletVsBosses() {
	w := g.World
	for _, b := range w.PlayerBullets.Items() {
		if b.Dead() {
			continue
		}
		for _, m := range w.MiniBosses.Items() {
			if m.Dead() || !world.Collides(b, m) {
				continue
			}
			b.Kill()
			g.DamageMiniBoss(m, b.Damage)
			break
		}
		if b.Dead() || w.Boss == nil || w.Boss.Dead() {
			continue
		}
		if world.Collides(b, w.Boss) {
			b.Kill()
			g.DamageBoss(w.Boss, b.Damage)
		}
	}
	w.PlayerBullets.Sweep()
	w.Sweep()
}

// ResolveRipostes lets riposte beams destroy enemies and damage bosses. A
// beam damages each boss at most once per tick.
func (g *Game) ResolveRipostes() {
	w := g.World
	for _, r := range w.Ripostes.Items() {
		if r.Dead() {
			continue
		}
		for _, e := range w.Enemies.Items() {
			if !e.Dead() && world.Collides(r, e) {
				g.destroyEnemy(e)
			}
		}
		for _, m := range w.MiniBosses.Items() {
			if !m.Dead() && world.Collides(r, m) {
				g.DamageMiniBoss(m, r.Damage)
			}
		}
		if w.Boss != nil && !w.Boss.Dead() && world.Collides(r, w.Boss) {
			g.DamageBoss(w.Boss, r.Damage)
		}
	}
	w.Sweep()
}

// ResolveEnemiesVsPlayer handles enemies ramming the ship. The enemy is
// always destroyed; the active shield takes the hit, otherwise the player
// does.
func (g *Game) ResolveEnemiesVsPlayer() {
	w := g.World
	p := w.Player
	pc := p.Center()
	for _, e := range w.Enemies.Items() {
		if e.Dead() || !geom.Overlap(e.Bounds(), p.Bounds()) {
			continue
		}
		hz := shield.Hazard{Bounds: e.Bounds(), Damage: g.Tuning.Combat.ContactDamage, Extended: true}
		out := g.Shields.Contact(pc.X, pc.Y, hz)
		if out.Shielded() {
			g.shieldHit(out)
		} else {
			g.hurtPlayer(hz.Damage, "enemy contact")
		}
		g.destroyEnemy(e)
	}
	w.Enemies.Sweep()
}

// ResolveHazards tests enemy bullets, lasers and wave bullets against the
// player. While a shield is up only that shield is tested; a hazard that
// misses it keeps flying.
func (g *Game) ResolveHazards() {
	w := g.World
	for _, b := range w.EnemyBullets.Items() {
		if !b.Dead() && g.resolveHazard(shield.Hazard{Bounds: b.Bounds(), Damage: b.Damage}, "enemy bullet") {
			b.Kill()
		}
	}
	for _, l := range w.Lasers.Items() {
		if !l.Dead() && g.resolveHazard(shield.Hazard{Bounds: l.Bounds(), Damage: l.Damage, Extended: true}, "laser") {
			l.Kill()
		}
	}
	for _, wb := range w.WaveBullets.Items() {
		if !wb.Dead() && g.resolveHazard(shield.Hazard{Bounds: wb.Bounds(), Damage: wb.Damage}, "wave bullet") {
			wb.Kill()
		}
	}

	w.EnemyBullets.Sweep()
	w.Lasers.Sweep()
	w.WaveBullets.Sweep()
}

// resolveHazard reports whether the hazard was consumed, by a shield or by
// the ship.
func (g *Game) resolveHazard(h shield.Hazard, source string) bool {
	if !h.Bounds.Valid() {
		g.Log.Debug().Str("source", source).Msg("skipping malformed hazard")
		return false
	}
	pc := g.PlayerCenter()
	out := g.Shields.Resolve(pc.X, pc.Y, h)
	if out.Shielded() {
		if out.Intercepted {
			g.shieldHit(out)
		}
		return out.Intercepted
	}
	if geom.Overlap(h.Bounds, g.World.Player.Bounds()) {
		g.hurtPlayer(h.Damage, source)
		return true
	}
	return false
}

// ResolvePowerUps collects every pickup touching the ship.
func (g *Game) ResolvePowerUps() {
	w := g.World
	for _, pu := range w.PowerUps.Items() {
		if !pu.Dead() && geom.Overlap(pu.Bounds(), w.Player.Bounds()) {
			pu.Kill()
			g.CollectPowerUp(pu.Kind)
		}
	}
	w.PowerUps.Sweep()
}

// shieldHit plays the feedback of a shield stopping a hazard.
func (g *Game) shieldHit(out shield.Outcome) {
	g.Stats.ShieldHits++
	g.Effects.CreateShieldImpactEffect(out.Shield, out.At.X, out.At.Y)
	g.Play(audio.CueShieldImpact)
}

// hurtPlayer records an unshielded hit. Health is only reduced when the
// tuning enables player damage.
func (g *Game) hurtPlayer(damage int, source string) {
	p := g.World.Player
	p.Hits++
	g.Stats.PlayerHits++
	g.Play(audio.CuePlayerHit)
	g.Log.Info().
		Str("source", source).
		Int("damage", damage).
		Bool("applied", g.Tuning.Combat.ApplyPlayerDamage).
		Msg("player hit")

	if !g.Tuning.Combat.ApplyPlayerDamage {
		return
	}
	p.Health -= damage
	if p.Health > 0 {
		return
	}
	p.Lives--
	if p.Lives <= 0 {
		p.Health = 0
		p.Lives = 0
		g.Over = true
		g.Log.Info().Int("kills", g.Progression.TotalKills).Msg("game over")
		return
	}
	p.Health = p.MaxHealth
}
