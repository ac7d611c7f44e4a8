package world

import "github.com/simukka/starship-espace/geom"

// World owns every live entity of one game session.
type World struct {
	nextID ID

	Player *Player

	PlayerBullets *Pool[*PlayerBullet]
	EnemyBullets  *Pool[*EnemyBullet]
	Lasers        *Pool[*Laser]
	WaveBullets   *Pool[*WaveBullet]
	Enemies       *Pool[*Enemy]
	MiniBosses    *Pool[*MiniBoss]
	PowerUps      *Pool[*PowerUp]
	Ripostes      *Pool[*Riposte]

	// Boss is nil when no boss is live.
	Boss *Boss
}

// New creates an empty world with the player ship parked at (x, y).
func New(x, y float64, health, lives int) *World {
	return &World{
		Player: &Player{
			Rect:      geom.RectAround(x, y, 50, 50),
			Health:    health,
			MaxHealth: health,
			Lives:     lives,
			Speed:     6,
		},
		PlayerBullets: NewPool[*PlayerBullet](200),
		EnemyBullets:  NewPool[*EnemyBullet](400),
		Lasers:        NewPool[*Laser](32),
		WaveBullets:   NewPool[*WaveBullet](600),
		Enemies:       NewPool[*Enemy](0),
		MiniBosses:    NewPool[*MiniBoss](0),
		PowerUps:      NewPool[*PowerUp](0),
		Ripostes:      NewPool[*Riposte](0),
	}
}

// NextID issues a fresh entity ID.
func (w *World) NextID() ID {
	w.nextID++
	return w.nextID
}

// Sweep drops dead entities from every pool and clears a dead boss.
func (w *World) Sweep() {
	w.PlayerBullets.Sweep()
	w.EnemyBullets.Sweep()
	w.Lasers.Sweep()
	w.WaveBullets.Sweep()
	w.Enemies.Sweep()
	w.MiniBosses.Sweep()
	w.PowerUps.Sweep()
	w.Ripostes.Sweep()
	if w.Boss != nil && w.Boss.Dead() {
		w.Boss = nil
	}
}

// Clear removes every entity. The player and the ID counter are kept.
func (w *World) Clear() {
	w.PlayerBullets.Clear()
	w.EnemyBullets.Clear()
	w.Lasers.Clear()
	w.WaveBullets.Clear()
	w.Enemies.Clear()
	w.MiniBosses.Clear()
	w.PowerUps.Clear()
	w.Ripostes.Clear()
	w.Boss = nil
}

// Shooter returns the centre of the live enemy or mini-boss with the given
// ID. It is how lasers resolve their non-owning source link.
func (w *World) Shooter(id ID) (geom.Point, bool) {
	if id == 0 {
		return geom.Point{}, false
	}
	if e, ok := w.Enemies.Find(id); ok {
		return e.Center(), true
	}
	if m, ok := w.MiniBosses.Find(id); ok {
		return m.Center(), true
	}
	return geom.Point{}, false
}

// Hazards returns the number of live enemy projectiles of every kind.
func (w *World) Hazards() int {
	return w.EnemyBullets.Live() + w.Lasers.Live() + w.WaveBullets.Live()
}
