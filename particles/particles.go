// Package particles simulates the short-lived effects spawned by the
// collision resolver: explosion sparks, collectible red points and shield
// impact flashes. Rendering is left to the browser layer.
package particles

import (
	"math"

	"github.com/simukka/starship-espace/common"
	"github.com/simukka/starship-espace/config"
	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/shield"
)

const (
	maxSparks    = 4000
	maxRedPoints = 400
	maxFlashes   = 64

	flashLife    = 20
	redScatter   = 24
	redOffscreen = 20
)

// Spark is one explosion particle.
type Spark struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
}

// Alpha returns the remaining life as an opacity in [0, 1].
func (s *Spark) Alpha() float64 {
	if s.MaxLife <= 0 {
		return 0
	}
	return float64(s.Life) / float64(s.MaxLife)
}

// RedPoint is a collectible dropped by destroyed enemies.
type RedPoint struct {
	X, Y      float64
	Attracted bool
}

// Flash is the short ring drawn where a shield stopped a hazard.
type Flash struct {
	Shield shield.ID
	X, Y   float64
	Life   int
}

// System owns every live particle.
type System struct {
	cfg config.Particles
	rng *common.SeededRNG

	Sparks    *Pool[Spark]
	RedPoints *Pool[RedPoint]
	Flashes   *Pool[Flash]

	// OnCollect is called once per red point reaching the player.
	OnCollect func()
}

// New creates an empty particle system.
func New(cfg config.Particles, rng *common.SeededRNG) *System {
	return &System{
		cfg:       cfg,
		rng:       rng,
		Sparks:    NewPool[Spark](maxSparks),
		RedPoints: NewPool[RedPoint](maxRedPoints),
		Flashes:   NewPool[Flash](maxFlashes),
	}
}

// SpawnExplosionParticles emits count sparks at (x, y) flying in random
// directions. It returns how many fitted in the pool.
func (s *System) SpawnExplosionParticles(x, y float64, count int) int {
	if !finite(x, y) {
		return 0
	}
	n := 0
	for i := 0; i < count; i++ {
		p := s.Sparks.Acquire()
		if p == nil {
			break
		}
		angle := s.rng.RandomFloat(0, 2*math.Pi)
		speed := s.rng.RandomFloat(s.cfg.MinSpeed, s.cfg.MaxSpeed)
		life := s.rng.RandomInt(s.cfg.MinLife, s.cfg.MaxLife+1)
		*p = Spark{
			X: x, Y: y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
		}
		n++
	}
	return n
}

// SpawnCollectibleParticles drops count red points scattered around (x, y).
func (s *System) SpawnCollectibleParticles(x, y float64, count int) int {
	if !finite(x, y) {
		return 0
	}
	n := 0
	for i := 0; i < count; i++ {
		p := s.RedPoints.Acquire()
		if p == nil {
			break
		}
		p.X = x + s.rng.RandomFloat(-redScatter, redScatter)
		p.Y = y + s.rng.RandomFloat(-redScatter, redScatter)
		n++
	}
	return n
}

// CreateShieldImpactEffect flashes the given shield at (x, y).
func (s *System) CreateShieldImpactEffect(id shield.ID, x, y float64) {
	if !finite(x, y) {
		return
	}
	f := s.Flashes.Acquire()
	if f == nil {
		return
	}
	*f = Flash{Shield: id, X: x, Y: y, Life: flashLife}
}

// Update advances every particle by one frame. Red points fall, drift
// toward the player once in range and are collected on contact; the number
// collected this frame is returned.
func (s *System) Update(player geom.Point, height float64) int {
	s.Sparks.ForEachReverse(func(p *Spark, i int) {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= s.cfg.Friction
		p.VY *= s.cfg.Friction
		p.Life--
		if p.Life <= 0 {
			s.Sparks.Release(i)
		}
	})

	s.Flashes.ForEachReverse(func(f *Flash, i int) {
		f.Life--
		if f.Life <= 0 {
			s.Flashes.Release(i)
		}
	})

	collected := 0
	attract := s.cfg.AttractRadius * s.cfg.AttractRadius
	collect := s.cfg.CollectRadius * s.cfg.CollectRadius
	s.RedPoints.ForEachReverse(func(p *RedPoint, i int) {
		at := geom.Point{X: p.X, Y: p.Y}
		d2 := geom.DistSq(at, player)
		if math.IsNaN(d2) {
			s.RedPoints.Release(i)
			return
		}
		if d2 <= collect {
			s.RedPoints.Release(i)
			collected++
			if s.OnCollect != nil {
				s.OnCollect()
			}
			return
		}
		if d2 <= attract {
			d := math.Sqrt(d2)
			step := math.Min(s.cfg.AttractStrength, d)
			p.X += (player.X - p.X) / d * step
			p.Y += (player.Y - p.Y) / d * step
			p.Attracted = true
		} else {
			p.Y += s.cfg.FallSpeed
			p.Attracted = false
		}
		if p.Y > height+redOffscreen {
			s.RedPoints.Release(i)
		}
	})
	return collected
}

// Clear removes every particle.
func (s *System) Clear() {
	s.Sparks.Clear()
	s.RedPoints.Clear()
	s.Flashes.Clear()
}

// Counts returns the live spark, red point and flash counts.
func (s *System) Counts() (sparks, redPoints, flashes int) {
	return s.Sparks.ActiveCount, s.RedPoints.ActiveCount, s.Flashes.ActiveCount
}

func finite(x, y float64) bool {
	return geom.Rect{X: x, Y: y}.Valid()
}
