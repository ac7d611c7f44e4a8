package shield

import (
	"math"

	"github.com/simukka/starship-espace/geom"
)

const (
	// DefaultSphericalRadius is used when the configured radius is unusable.
	DefaultSphericalRadius = 70

	Meridians = 12
	Parallels = 6

	maxImpacts  = 8
	impactLife  = 30
	meridianArc = math.Pi / 4
	parallelArc = math.Pi / 8
	revealEase  = 0.15
)

// Impact is a recent hit kept for the renderer.
type Impact struct {
	X, Y float64
	Life int
}

// SphericalShield is invisible until struck. Each impact reveals the grid
// segments around it and keeps the shield up for a reveal window, after
// which it fades away.
type SphericalShield struct {
	Radius       float64
	Visibility   float64
	RevealFrames int

	target      float64
	revealing   bool
	revealTimer int

	MeridianReveal [Meridians]float64
	ParallelReveal [Parallels]float64
	Impacts        []Impact
}

// NewSpherical creates a hidden spherical shield.
func NewSpherical(radius float64, revealFrames int) *SphericalShield {
	return &SphericalShield{
		Radius:       safeRadius(radius, DefaultSphericalRadius),
		RevealFrames: revealFrames,
	}
}

func (s *SphericalShield) ID() ID { return Spherical }

// Active implements Handler.
func (s *SphericalShield) Active() bool { return s.IsActive() }

// IsActive is true while the shield is visible at all or still revealing.
func (s *SphericalShield) IsActive() bool {
	return s.Visibility > 0 || s.revealing
}

// Revealing reports whether the reveal window is still open.
func (s *SphericalShield) Revealing() bool { return s.revealing }

// RevealTimer returns the frames left in the reveal window.
func (s *SphericalShield) RevealTimer() int { return s.revealTimer }

func (s *SphericalShield) radius() float64 {
	return safeRadius(s.Radius, DefaultSphericalRadius)
}

// ForceFullReveal shows the whole grid for the given number of frames.
func (s *SphericalShield) ForceFullReveal(frames int) {
	if frames <= 0 {
		frames = s.RevealFrames
	}
	s.revealing = true
	s.revealTimer = frames
	s.target = 1
	s.Visibility = 1
	for i := range s.MeridianReveal {
		s.MeridianReveal[i] = 1
	}
	for i := range s.ParallelReveal {
		s.ParallelReveal[i] = 1
	}
}

// Deactivate hides the shield immediately.
func (s *SphericalShield) Deactivate() {
	s.revealing = false
	s.revealTimer = 0
	s.target = 0
	s.Visibility = 0
	s.MeridianReveal = [Meridians]float64{}
	s.ParallelReveal = [Parallels]float64{}
	s.Impacts = s.Impacts[:0]
}

// Intercept implements Handler.
func (s *SphericalShield) Intercept(cx, cy float64, h Hazard) (geom.Point, bool) {
	return intercept(cx, cy, s.radius(), h)
}

// Absorb implements Handler.
func (s *SphericalShield) Absorb(cx, cy float64, h Hazard, at geom.Point) {
	s.CreateSphericalImpact(at.X, at.Y, cx, cy)
}

// CreateSphericalImpact records a hit at (x, y) on the shield centred on
// (cx, cy), reveals the nearby meridians and parallels and restarts the
// reveal window.
func (s *SphericalShield) CreateSphericalImpact(x, y, cx, cy float64) {
	dx := geom.Finite(x-cx, 0)
	dy := geom.Finite(y-cy, 0)
	dist := math.Sqrt(dx*dx + dy*dy)

	phi := math.Atan2(dy, dx)
	theta := math.Acos(geom.Clamp(dist/s.radius(), 0, 1))
	if math.IsNaN(theta) {
		theta = 0
	}

	for i := range s.MeridianReveal {
		m := float64(i) * 2 * math.Pi / Meridians
		r := 1 - geom.AngleDiff(phi, m)/meridianArc
		if r > s.MeridianReveal[i] {
			s.MeridianReveal[i] = r
		}
	}
	for i := range s.ParallelReveal {
		p := float64(i+1) * (math.Pi / 2) / (Parallels + 1)
		r := 1 - math.Abs(theta-p)/parallelArc
		if r > s.ParallelReveal[i] {
			s.ParallelReveal[i] = r
		}
	}

	if len(s.Impacts) >= maxImpacts {
		copy(s.Impacts, s.Impacts[1:])
		s.Impacts = s.Impacts[:len(s.Impacts)-1]
	}
	s.Impacts = append(s.Impacts, Impact{X: x, Y: y, Life: impactLife})

	s.revealing = true
	s.target = 1
	s.revealTimer = s.RevealFrames
}

// Update advances the reveal window and the fade by one frame.
func (s *SphericalShield) Update() {
	kept := s.Impacts[:0]
	for _, imp := range s.Impacts {
		imp.Life--
		if imp.Life > 0 {
			kept = append(kept, imp)
		}
	}
	s.Impacts = kept

	if s.revealTimer > 0 {
		s.revealTimer--
		s.Visibility += (s.target - s.Visibility) * revealEase
		if s.revealTimer > 0 {
			return
		}
	}

	s.revealing = false
	s.target = 0
	s.Visibility = fade(s.Visibility, 0.98)
	for i := range s.MeridianReveal {
		s.MeridianReveal[i] = fade(s.MeridianReveal[i], 0.98)
	}
	for i := range s.ParallelReveal {
		s.ParallelReveal[i] = fade(s.ParallelReveal[i], 0.98)
	}
}
