package particles

// Pool is a fixed-size free list. Acquire hands out the next free slot and
// Release swaps the released slot with the last active one, so active
// particles are always Pool[:ActiveCount] in no particular order.
type Pool[T any] struct {
	Pool        []*T
	ActiveCount int
	MaxSize     int
}

// NewPool preallocates maxSize particles.
func NewPool[T any](maxSize int) *Pool[T] {
	pool := &Pool[T]{
		Pool:    make([]*T, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = new(T)
	}
	return pool
}

// Acquire returns a zeroed particle, or nil when the pool is exhausted.
func (p *Pool[T]) Acquire() *T {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	e := p.Pool[p.ActiveCount]
	var zero T
	*e = zero
	p.ActiveCount++
	return e
}

// Release returns the particle at index to the pool.
func (p *Pool[T]) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
	}
	p.ActiveCount--
}

// Clear releases every particle.
func (p *Pool[T]) Clear() {
	p.ActiveCount = 0
}

// ForEachReverse iterates over active particles in reverse order, so fn may
// release the index it was given.
func (p *Pool[T]) ForEachReverse(fn func(*T, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}
