package game

import (
	"github.com/simukka/starship-espace/audio"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/world"
)

// MoveShip moves the player from the held keys, keeping it on screen.
func (g *Game) MoveShip(keys map[int]bool) {
	p := g.World.Player
	var dx, dy float64
	if keys[KeyLeft] {
		dx -= p.Speed
	}
	if keys[KeyRight] {
		dx += p.Speed
	}
	if keys[KeyUp] {
		dy -= p.Speed
	}
	if keys[KeyDown] {
		dy += p.Speed
	}
	p.Translate(dx, dy)
	p.X = geom.Clamp(p.X, 0, WIDTH-p.W)
	p.Y = geom.Clamp(p.Y, 0, HEIGHT-p.H)

	if p.Reload > 0 {
		p.Reload--
	}
	if keys[KeyFire] {
		g.ShootBullet()
	}
}

// ShootBullet fires a player bullet from the ship's nose when the gun is
// reloaded.
func (g *Game) ShootBullet() *world.PlayerBullet {
	p := g.World.Player
	if p.Reload > 0 {
		return nil
	}
	c := p.Center()
	b := &world.PlayerBullet{
		Body:   world.Body{ID: g.World.NextID(), Rect: geom.Rect{X: c.X - PlayerBulletW/2, Y: p.Y - PlayerBulletH, W: PlayerBulletW, H: PlayerBulletH}},
		VY:     -PlayerBulletSpeed,
		Damage: PlayerBulletDamage,
	}
	if !g.World.PlayerBullets.Add(b) {
		return nil
	}
	p.Reload = PlayerReload
	g.Play(audio.CueShoot)
	return b
}

// UpdateProjectiles moves player bullets, falling pickups and riposte beams.
func (g *Game) UpdateProjectiles() {
	w := g.World
	for _, b := range w.PlayerBullets.Items() {
		b.Step()
		if offscreen(b.Rect) {
			b.Kill()
		}
	}
	for _, pu := range w.PowerUps.Items() {
		pu.Translate(0, pu.VY)
		if offscreen(pu.Rect) {
			pu.Kill()
		}
	}
	for _, r := range w.Ripostes.Items() {
		r.Life--
		if r.Life <= 0 {
			r.Kill()
		}
	}
	w.PlayerBullets.Sweep()
	w.PowerUps.Sweep()
	w.Ripostes.Sweep()
}
