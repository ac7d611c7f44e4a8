// Package world holds the live game objects: the entity kinds, the ordered
// pools that own them and the spatial grid used as collision broadphase.
package world

import "github.com/simukka/starship-espace/geom"

// ID identifies an entity for its whole life. IDs are never reused within a
// World, so a stale ID simply fails to resolve.
type ID uint64

// Entity is implemented by everything a Pool can hold.
type Entity interface {
	EntityID() ID
	Bounds() geom.Rect
	Dead() bool
	Kill()
}

// Body is the shared part of every pooled entity: identity, bounding box and
// the removal mark consumed by Pool.Sweep.
type Body struct {
	ID ID
	geom.Rect
	dead bool
}

// EntityID implements Entity.
func (b *Body) EntityID() ID { return b.ID }

// Bounds implements Entity.
func (b *Body) Bounds() geom.Rect { return b.Rect }

// Dead implements Entity.
func (b *Body) Dead() bool { return b.dead }

// Kill marks the body for removal at the next sweep.
func (b *Body) Kill() { b.dead = true }

// Collides is the nil-safe overlap test between two entities.
func Collides(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return geom.Overlap(a.Bounds(), b.Bounds())
}

// PlayerBullet is a projectile fired by the player ship.
type PlayerBullet struct {
	Body
	VX, VY float64
	Damage int
}

// Step advances the bullet by one frame.
func (b *PlayerBullet) Step() {
	b.Translate(b.VX, b.VY)
}

// EnemyBullet is a straight-flying hazard fired by a regular enemy.
type EnemyBullet struct {
	Body
	VX, VY float64
	Damage int
}

// Step advances the bullet by one frame, scaled by the difficulty multiplier.
func (b *EnemyBullet) Step(mult float64) {
	b.Translate(b.VX*mult, b.VY*mult)
}

// Laser is a beam hazard. While its source is alive the beam stays attached
// to it horizontally; SourceID is a non-owning link looked up every tick.
type Laser struct {
	Body
	SourceID ID
	VX, VY   float64
	Damage   int
	Life     int
}

// Follow moves the laser one frame. When the source is still alive the beam
// re-centres on it horizontally; otherwise the link is dropped and the beam
// continues in its last direction.
func (l *Laser) Follow(source geom.Point, alive bool, mult float64) {
	if alive && l.SourceID != 0 {
		l.X = source.X - l.W/2
	} else {
		l.SourceID = 0
	}
	l.Translate(l.VX*mult, l.VY*mult)
	l.Life--
}

// Runner drives a wave bullet. It is satisfied by go-bulletml bullet runners.
type Runner interface {
	Update() error
	Position() (float64, float64)
	Vanished() bool
}

// WaveBullet is a pattern-driven hazard fired by the bosses.
type WaveBullet struct {
	Body
	Runner Runner
	Damage int
}

// Enemy is a regular wave enemy. Type indexes the enemy roster.
type Enemy struct {
	Body
	Type      int
	VX, VY    float64
	FireTimer int
	Phase     float64
}

// Step advances the enemy by one frame.
func (e *Enemy) Step(mult float64) {
	e.Translate(e.VX*mult, e.VY*mult)
}

// MiniBoss is a mid-cycle boss. Several may be live at once.
type MiniBoss struct {
	Body
	Health    int
	MaxHealth int
	VX        float64
	StopY     float64
	FireTimer int
}

// TakeDamage subtracts n health and reports whether the mini-boss is destroyed.
func (m *MiniBoss) TakeDamage(n int) bool {
	m.Health -= n
	return m.Health <= 0
}

// Boss is the end-of-cycle boss. At most one is live.
type Boss struct {
	Body
	Health    int
	MaxHealth int
	VX        float64
	StopY     float64
	FireTimer int
}

// TakeDamage subtracts n health and reports whether the boss is destroyed.
func (b *Boss) TakeDamage(n int) bool {
	b.Health -= n
	return b.Health <= 0
}

// PowerUpKind names the shield a pickup activates.
type PowerUpKind int

const (
	PowerUpSimple PowerUpKind = iota
	PowerUpSpherical
	PowerUpRiposte
)

// PowerUpKinds lists every pickup, in drop-table order.
var PowerUpKinds = []PowerUpKind{PowerUpSimple, PowerUpSpherical, PowerUpRiposte}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSimple:
		return "simple"
	case PowerUpSpherical:
		return "spherical"
	case PowerUpRiposte:
		return "riposte"
	}
	return "unknown"
}

// PowerUp is a falling shield pickup.
type PowerUp struct {
	Body
	Kind PowerUpKind
	VY   float64
}

// Riposte is the vertical counter-beam fired by the riposte shield.
type Riposte struct {
	Body
	Damage int
	Life   int
}

// Player is the player ship. It is not pooled.
type Player struct {
	geom.Rect
	Health    int
	MaxHealth int
	Lives     int
	Hits      int
	Speed     float64
	Reload    int
}

// Bounds returns the ship's bounding box.
func (p *Player) Bounds() geom.Rect { return p.Rect }
