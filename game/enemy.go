package game

import (
	"math"
	"sort"

	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/pattern"
	"github.com/simukka/starship-espace/world"
)

// offscreen reports whether r left the playfield by more than Margin, or
// is malformed.
func offscreen(r geom.Rect) bool {
	return !r.Valid() ||
		r.X+r.W < -Margin || r.X > WIDTH+Margin ||
		r.Y+r.H < -Margin || r.Y > HEIGHT+Margin
}

// UpdateEnemies moves every regular enemy and fires its weapon when due.
// Enemies leaving through the bottom edge are dropped without a kill.
func (g *Game) UpdateEnemies() {
	w := g.World
	for _, e := range w.Enemies.Items() {
		if e.Dead() {
			continue
		}
		kind := enemyKinds[0]
		if e.Type >= 0 && e.Type < len(enemyKinds) {
			kind = enemyKinds[e.Type]
		}
		e.Phase += 0.05
		e.VX = math.Sin(e.Phase) * kind.Sway
		e.Step(g.SpeedMult)
		if offscreen(e.Rect) {
			e.Kill()
			continue
		}

		e.FireTimer--
		if e.FireTimer <= 0 && e.Y > 0 {
			e.FireTimer = g.fireInterval(e.Type)
			g.fireEnemy(e)
		}
	}
	w.Enemies.Sweep()
}

// fireEnemy fires the weapon of e's type.
func (g *Game) fireEnemy(e *world.Enemy) {
	c := e.Center()
	muzzle := geom.Point{X: c.X, Y: e.Y + e.H}
	switch e.Type {
	case 0:
		g.fireBullet(muzzle.X, muzzle.Y, math.Pi/2)
	case 1:
		g.fireBullet(muzzle.X, muzzle.Y, g.aimAt(muzzle))
	case 2:
		for i := -1; i <= 1; i++ {
			g.fireBullet(muzzle.X, muzzle.Y, math.Pi/2+float64(i)*SpreadAngle)
		}
	case 3:
		g.fireLaser(e.ID, muzzle)
	case 4:
		g.fireBurst(e.ID)
	}
}

// aimAt returns the angle from p to the player centre.
func (g *Game) aimAt(p geom.Point) float64 {
	pc := g.PlayerCenter()
	return math.Atan2(pc.Y-p.Y, pc.X-p.X)
}

// fireBullet adds a straight enemy bullet centred on (x, y) heading along
// angle.
func (g *Game) fireBullet(x, y, angle float64) *world.EnemyBullet {
	b := &world.EnemyBullet{
		Body:   world.Body{ID: g.World.NextID(), Rect: geom.RectAround(x, y, EnemyBulletSize, EnemyBulletSize)},
		VX:     math.Cos(angle) * EnemyBulletSpeed,
		VY:     math.Sin(angle) * EnemyBulletSpeed,
		Damage: g.Tuning.Combat.BulletDamage,
	}
	if !g.World.EnemyBullets.Add(b) {
		return nil
	}
	return b
}

// fireLaser adds a following laser attached to the shooter with the given ID.
func (g *Game) fireLaser(source world.ID, muzzle geom.Point) *world.Laser {
	l := &world.Laser{
		Body:     world.Body{ID: g.World.NextID(), Rect: geom.Rect{X: muzzle.X - LaserW/2, Y: muzzle.Y, W: LaserW, H: LaserH}},
		SourceID: source,
		VY:       LaserSpeed,
		Damage:   g.Tuning.Combat.LaserDamage,
		Life:     LaserLife,
	}
	if !g.World.Lasers.Add(l) {
		return nil
	}
	return l
}

// fireBurst fires BurstShots aimed bullets BurstGap ticks apart. Delayed
// shots are skipped once the shooter is gone.
func (g *Game) fireBurst(source world.ID) {
	shot := func() {
		e, ok := g.World.Enemies.Find(source)
		if !ok {
			return
		}
		muzzle := geom.Point{X: e.Center().X, Y: e.Y + e.H}
		g.fireBullet(muzzle.X, muzzle.Y, g.aimAt(muzzle))
	}
	shot()
	for i := 1; i < BurstShots; i++ {
		g.Scheduler.After(i*BurstGap, shot)
	}
}

// UpdateBosses moves the mini-bosses and the boss, starts their volleys and
// advances the running emitters.
func (g *Game) UpdateBosses() {
	w := g.World
	for _, m := range w.MiniBosses.Items() {
		if m.Dead() {
			continue
		}
		m.VX = g.patrol(&m.Rect, m.VX, m.StopY, MiniBossSpeed)
		m.FireTimer--
		if m.FireTimer <= 0 {
			m.FireTimer = MiniBossFire
			g.startEmitter(m.ID, pattern.MiniBossFan)
			g.fireLaser(m.ID, geom.Point{X: m.Center().X, Y: m.Y + m.H})
		}
	}

	if b := w.Boss; b != nil && !b.Dead() {
		b.VX = g.patrol(&b.Rect, b.VX, b.StopY, BossSpeed)
		b.FireTimer--
		if b.FireTimer <= 0 {
			b.FireTimer = BossFire
			name := pattern.BossSpiral
			if g.Progression.Cycle%2 == 1 || b.Health*2 < b.MaxHealth {
				name = pattern.BossRain
			}
			g.startEmitter(b.ID, name)
		}
	}

	g.updateEmitters()
}

// patrol descends to stopY, then sweeps left and right. It returns the new
// horizontal velocity.
func (g *Game) patrol(r *geom.Rect, vx, stopY, speed float64) float64 {
	if r.Y < stopY {
		r.Translate(0, speed*g.SpeedMult)
		return vx
	}
	r.Translate(vx*g.SpeedMult, 0)
	if r.X < 0 {
		r.X = 0
		return math.Abs(vx)
	}
	if r.X+r.W > WIDTH {
		r.X = WIDTH - r.W
		return -math.Abs(vx)
	}
	return vx
}

// bossPosition returns the muzzle of a live boss or mini-boss.
func (g *Game) bossPosition(owner world.ID) (geom.Point, bool) {
	if b := g.World.Boss; b != nil && !b.Dead() && b.ID == owner {
		return geom.Point{X: b.Center().X, Y: b.Y + b.H}, true
	}
	if m, ok := g.World.MiniBosses.Find(owner); ok {
		return geom.Point{X: m.Center().X, Y: m.Y + m.H}, true
	}
	return geom.Point{}, false
}

// startEmitter starts a volley for owner, replacing the previous one.
func (g *Game) startEmitter(owner world.ID, name pattern.Name) {
	last := geom.Point{X: WIDTH / 2, Y: 0}
	em, err := pattern.NewEmitter(name, pattern.Options{
		Shooter: func() (float64, float64) {
			if p, ok := g.bossPosition(owner); ok {
				last = p
			}
			return last.X, last.Y
		},
		Target: func() (float64, float64) {
			c := g.PlayerCenter()
			return c.X, c.Y
		},
		OnFire: g.addWaveBullet,
	})
	if err != nil {
		g.Log.Warn().Err(err).Msg("cannot start volley")
		return
	}
	g.emitters[owner] = em
}

// updateEmitters advances every volley and drops those whose owner is gone
// or that ran for too long.
func (g *Game) updateEmitters() {
	owners := make([]world.ID, 0, len(g.emitters))
	for owner := range g.emitters {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	for _, owner := range owners {
		em := g.emitters[owner]
		if _, ok := g.bossPosition(owner); !ok || em.Ticks() >= EmitterMaxLife {
			delete(g.emitters, owner)
			continue
		}
		if err := em.Update(); err != nil {
			g.Log.Warn().Err(err).Msg("volley stopped")
			delete(g.emitters, owner)
		}
	}
}

// addWaveBullet takes ownership of a bullet fired by a volley.
func (g *Game) addWaveBullet(r pattern.Bullet) {
	x, y := r.Position()
	wb := &world.WaveBullet{
		Body:   world.Body{ID: g.World.NextID(), Rect: geom.RectAround(x, y, WaveBulletSize, WaveBulletSize)},
		Runner: r,
		Damage: g.Tuning.Combat.WaveBulletDamage,
	}
	g.World.WaveBullets.Add(wb)
}

// UpdateHazards moves every enemy projectile. Lasers follow their source
// while it lives and fly straight afterwards; wave bullets are driven by
// their runner and dropped when it vanishes or fails.
func (g *Game) UpdateHazards() {
	w := g.World
	mult := g.SpeedMult

	for _, b := range w.EnemyBullets.Items() {
		b.Step(mult)
		if offscreen(b.Rect) {
			b.Kill()
		}
	}

	for _, l := range w.Lasers.Items() {
		src, alive := w.Shooter(l.SourceID)
		if l.SourceID != 0 && !alive {
			g.Log.Debug().Uint64("laser", uint64(l.ID)).Msg("laser source gone")
		}
		l.Follow(src, alive, mult)
		if l.Life <= 0 || offscreen(l.Rect) {
			l.Kill()
		}
	}

	for _, wb := range w.WaveBullets.Items() {
		if wb.Runner == nil {
			wb.Kill()
			continue
		}
		if err := wb.Runner.Update(); err != nil {
			g.Log.Warn().Err(err).Uint64("bullet", uint64(wb.ID)).Msg("wave bullet failed")
			wb.Kill()
			continue
		}
		if wb.Runner.Vanished() {
			wb.Kill()
			continue
		}
		x, y := wb.Runner.Position()
		wb.CenterOn(x, y)
		if offscreen(wb.Rect) {
			wb.Kill()
		}
	}

	w.EnemyBullets.Sweep()
	w.Lasers.Sweep()
	w.WaveBullets.Sweep()
}
