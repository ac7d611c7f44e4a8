package shield

import "github.com/simukka/starship-espace/geom"

// DefaultSimpleRadius is used when the configured radius is unusable.
const DefaultSimpleRadius = 50

// SimpleShield is the plain absorbing bubble: on or off, no energy.
type SimpleShield struct {
	active     bool
	Visibility float64
	Radius     float64
	Absorbed   int
}

// NewSimple creates an inactive simple shield.
func NewSimple(radius float64) *SimpleShield {
	return &SimpleShield{Radius: safeRadius(radius, DefaultSimpleRadius)}
}

func (s *SimpleShield) ID() ID       { return Simple }
func (s *SimpleShield) Active() bool { return s.active }

// Activate raises the shield at full visibility.
func (s *SimpleShield) Activate() {
	s.active = true
	s.Visibility = 1
}

// Deactivate drops the shield. Visibility fades out in Update.
func (s *SimpleShield) Deactivate() {
	s.active = false
}

// Reset drops the shield and clears the absorbed count.
func (s *SimpleShield) Reset() {
	s.active = false
	s.Absorbed = 0
}

func (s *SimpleShield) radius() float64 {
	return safeRadius(s.Radius, DefaultSimpleRadius)
}

// Intercept implements Handler.
func (s *SimpleShield) Intercept(cx, cy float64, h Hazard) (geom.Point, bool) {
	return intercept(cx, cy, s.radius(), h)
}

// Absorb implements Handler.
func (s *SimpleShield) Absorb(cx, cy float64, h Hazard, at geom.Point) {
	s.Absorbed++
	s.Visibility = 1
}

// AbsorbProjectile reports whether the bullet centre lies inside the shield
// around (cx, cy) and, if so, absorbs it. The caller removes the bullet.
func (s *SimpleShield) AbsorbProjectile(cx, cy float64, bullet geom.Rect) bool {
	if !s.active {
		return false
	}
	h := Hazard{Bounds: bullet}
	at, ok := s.Intercept(cx, cy, h)
	if ok {
		s.Absorb(cx, cy, h, at)
	}
	return ok
}

// Update advances the visibility by one frame.
func (s *SimpleShield) Update() {
	if s.active {
		s.Visibility = 1
		return
	}
	s.Visibility = fade(s.Visibility, 0.9)
}
