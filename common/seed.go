package common

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Every gameplay roll (power-up drops, random enemy types, particle spread)
// goes through one of these so a run can be replayed from its seed.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last reset with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	return int(r.Random()*float64(max-min)) + min
}

// Intn returns a uniformly distributed integer in [0, n). n <= 0 yields 0.
func (r *SeededRNG) Intn(n int) int {
	return r.RandomInt(0, n)
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Chance reports true with probability p.
func (r *SeededRNG) Chance(p float64) bool {
	return r.Random() < p
}

// StageSeed derives a deterministic seed for a boss cycle so each cycle of
// the wave/mini-boss/boss loop gets its own reproducible sequence.
func StageSeed(baseSeed uint32, cycle int) uint32 {
	seed := baseSeed ^ (uint32(cycle) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
