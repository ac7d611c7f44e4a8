// Package shield implements the three player shields and the arbiter that
// decides which of them, if any, stops an incoming hazard.
//
// The shields do not enforce mutual exclusion themselves. Whoever activates
// one is expected to deactivate the other two first; the arbiter still tests
// them in a fixed priority order so the outcome stays deterministic if that
// convention is ever broken.
package shield

import (
	"math"

	"github.com/simukka/starship-espace/geom"
)

// ID names a shield variant.
type ID int

const (
	None ID = iota
	Simple
	Riposte
	Spherical
)

func (id ID) String() string {
	switch id {
	case Simple:
		return "simple"
	case Riposte:
		return "riposte"
	case Spherical:
		return "spherical"
	}
	return "none"
}

// Hazard is an incoming projectile or contact surface as seen by a shield.
type Hazard struct {
	Bounds geom.Rect
	Damage int
	// Extended hazards (lasers) are tested as boxes against the shield
	// circle. Point-like hazards are tested by their centre.
	Extended bool
}

// Handler is one shield variant as seen by the arbiter.
type Handler interface {
	ID() ID
	Active() bool
	// Intercept reports whether the hazard reaches the shield circle centred
	// on (cx, cy), and where.
	Intercept(cx, cy float64, h Hazard) (geom.Point, bool)
	// Absorb applies the side effects of stopping h at the given point.
	Absorb(cx, cy float64, h Hazard, at geom.Point)
}

// intercept is the hit test shared by every variant.
func intercept(cx, cy, radius float64, h Hazard) (geom.Point, bool) {
	if h.Extended {
		return geom.CircleRect(cx, cy, radius, h.Bounds)
	}
	c := h.Bounds.Center()
	if !geom.InCircle(cx, cy, radius, c.X, c.Y) {
		return geom.Point{}, false
	}
	return c, true
}

// safeRadius returns r, or fallback when r is not a usable radius.
func safeRadius(r, fallback float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fallback
	}
	return r
}

// fade scales v by factor and snaps it to zero once it is invisible.
func fade(v, factor float64) float64 {
	v *= factor
	if v < 0.01 {
		return 0
	}
	return v
}

// Outcome is the arbiter's decision for one hazard.
type Outcome struct {
	// Shield is the variant that was tested, None when no shield is active.
	Shield ID
	// Intercepted is true when that shield stopped the hazard.
	Intercepted bool
	// At is the impact position when Intercepted.
	At geom.Point
}

// Shielded reports whether any shield was in the way, whether or not it
// caught the hazard. When true no direct hit test should follow.
func (o Outcome) Shielded() bool {
	return o.Shield != None
}

// Arbiter holds the shields in priority order.
type Arbiter struct {
	handlers []Handler
}

// NewArbiter builds an arbiter testing handlers in the given order.
func NewArbiter(handlers ...Handler) *Arbiter {
	return &Arbiter{handlers: handlers}
}

// Handlers returns the shields in priority order.
func (a *Arbiter) Handlers() []Handler {
	return a.handlers
}

// First returns the highest-priority active shield.
func (a *Arbiter) First() (Handler, bool) {
	for _, h := range a.handlers {
		if h.Active() {
			return h, true
		}
	}
	return nil, false
}

// Resolve tests h against the first active shield only. If that shield
// intercepts it absorbs the hazard; lower-priority shields are never tested.
func (a *Arbiter) Resolve(cx, cy float64, h Hazard) Outcome {
	handler, ok := a.First()
	if !ok {
		return Outcome{}
	}
	at, hit := handler.Intercept(cx, cy, h)
	if hit {
		handler.Absorb(cx, cy, h, at)
	}
	return Outcome{Shield: handler.ID(), Intercepted: hit, At: at}
}

// Contact makes the first active shield absorb a body that already touches
// the ship. The impact point is the closest point of the body to (cx, cy).
func (a *Arbiter) Contact(cx, cy float64, h Hazard) Outcome {
	handler, ok := a.First()
	if !ok {
		return Outcome{}
	}
	b := h.Bounds
	at := geom.Point{
		X: geom.Clamp(geom.Finite(cx, 0), b.X, b.X+b.W),
		Y: geom.Clamp(geom.Finite(cy, 0), b.Y, b.Y+b.H),
	}
	handler.Absorb(cx, cy, h, at)
	return Outcome{Shield: handler.ID(), Intercepted: true, At: at}
}

// AnyActive reports whether at least one shield is up.
func (a *Arbiter) AnyActive() bool {
	_, ok := a.First()
	return ok
}

// ActiveCount returns how many shields are up. Outside of bugs it is 0 or 1.
func (a *Arbiter) ActiveCount() int {
	n := 0
	for _, h := range a.handlers {
		if h.Active() {
			n++
		}
	}
	return n
}
