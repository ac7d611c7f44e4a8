package shield

import (
	"github.com/simukka/starship-espace/geom"
)

const (
	// DefaultRiposteRadius is used when the configured radius is unusable.
	DefaultRiposteRadius = 60

	riposteFloor = 0.35
)

// RiposteShield stores energy from absorbed hits and spends it on a
// vertical counter-beam. Absorbing enough energy queues an automatic shot;
// Charged is called once per queued shot and is expected to call Fire after
// the riposte delay.
type RiposteShield struct {
	active     bool
	Visibility float64
	Radius     float64

	Energy          float64
	MaxEnergy       float64
	Threshold       float64
	ManualThreshold float64

	queued bool
	Fired  int

	Charged func()
}

// NewRiposte creates an inactive riposte shield with no stored energy.
func NewRiposte(radius, maxEnergy, threshold, manualThreshold float64) *RiposteShield {
	return &RiposteShield{
		Radius:          safeRadius(radius, DefaultRiposteRadius),
		MaxEnergy:       maxEnergy,
		Threshold:       threshold,
		ManualThreshold: manualThreshold,
	}
}

func (r *RiposteShield) ID() ID       { return Riposte }
func (r *RiposteShield) Active() bool { return r.active }

// Queued reports whether an automatic shot is waiting to fire.
func (r *RiposteShield) Queued() bool { return r.queued }

// Activate raises the shield. Stored energy carries over.
func (r *RiposteShield) Activate() {
	r.active = true
	r.Visibility = 1
	r.charge()
}

// Deactivate drops the shield. A queued shot will not fire while it is down.
func (r *RiposteShield) Deactivate() {
	r.active = false
}

// Reset drops the shield and forgets the stored energy and any queued shot.
func (r *RiposteShield) Reset() {
	r.active = false
	r.Energy = 0
	r.queued = false
	r.Fired = 0
}

func (r *RiposteShield) radius() float64 {
	return safeRadius(r.Radius, DefaultRiposteRadius)
}

// Intercept implements Handler.
func (r *RiposteShield) Intercept(cx, cy float64, h Hazard) (geom.Point, bool) {
	return intercept(cx, cy, r.radius(), h)
}

// Absorb implements Handler. Each hit stores twice its damage.
func (r *RiposteShield) Absorb(cx, cy float64, h Hazard, at geom.Point) {
	r.AddEnergy(float64(h.Damage) * 2)
	r.Visibility = 1
}

// AddEnergy stores e, capped at MaxEnergy, and queues a shot if the
// threshold is reached.
func (r *RiposteShield) AddEnergy(e float64) {
	if e <= 0 {
		return
	}
	r.Energy += e
	if r.Energy > r.MaxEnergy {
		r.Energy = r.MaxEnergy
	}
	r.charge()
}

func (r *RiposteShield) charge() {
	if !r.active || r.queued || r.Energy < r.Threshold || r.Charged == nil {
		return
	}
	r.queued = true
	r.Charged()
}

// Fire spends Threshold energy on the queued shot. It reports false, keeping
// the energy, when the shield went down or the energy was spent meanwhile.
// If enough energy is left another shot is queued.
func (r *RiposteShield) Fire() bool {
	r.queued = false
	if !r.active || r.Energy < r.Threshold {
		return false
	}
	r.Energy -= r.Threshold
	r.Fired++
	r.charge()
	return true
}

// TriggerManual fires a riposte on demand for ManualThreshold energy.
func (r *RiposteShield) TriggerManual() bool {
	if !r.active || r.Energy < r.ManualThreshold {
		return false
	}
	r.Energy -= r.ManualThreshold
	r.Fired++
	return true
}

// Update advances the visibility by one frame.
func (r *RiposteShield) Update() {
	if !r.active {
		r.Visibility = fade(r.Visibility, 0.95)
		return
	}
	r.Visibility *= 0.95
	if r.Visibility < riposteFloor {
		r.Visibility = riposteFloor
	}
}
