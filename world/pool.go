package world

// Pool is an ordered collection that exclusively owns its entities.
// Insertion order is kept so iteration is deterministic. Removal happens
// either by index during reverse iteration (RemoveAt) or by marking entities
// dead and sweeping them out.
type Pool[T Entity] struct {
	items   []T
	MaxSize int
}

// NewPool creates a pool holding at most maxSize entities. Zero means unbounded.
func NewPool[T Entity](maxSize int) *Pool[T] {
	capacity := maxSize
	if capacity <= 0 || capacity > 256 {
		capacity = 64
	}
	return &Pool[T]{
		items:   make([]T, 0, capacity),
		MaxSize: maxSize,
	}
}

// Add appends e. It reports false when the pool is full.
func (p *Pool[T]) Add(e T) bool {
	if p.MaxSize > 0 && len(p.items) >= p.MaxSize {
		return false
	}
	p.items = append(p.items, e)
	return true
}

// Len returns the number of entities, including ones marked dead but not
// yet swept.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Live returns the number of entities not marked dead.
func (p *Pool[T]) Live() int {
	n := 0
	for _, e := range p.items {
		if !e.Dead() {
			n++
		}
	}
	return n
}

// At returns the entity at index i.
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

// Items exposes the backing slice for read-only iteration.
func (p *Pool[T]) Items() []T {
	return p.items
}

// RemoveAt splices out the entity at index i, keeping the order of the rest.
// Out-of-range indexes are ignored.
func (p *Pool[T]) RemoveAt(i int) {
	if i < 0 || i >= len(p.items) {
		return
	}
	var zero T
	copy(p.items[i:], p.items[i+1:])
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
}

// ForEachReverse iterates from the newest entity to the oldest, so fn may
// call RemoveAt on the index it was given.
func (p *Pool[T]) ForEachReverse(fn func(i int, e T)) {
	for i := len(p.items) - 1; i >= 0; i-- {
		if i >= len(p.items) {
			continue
		}
		fn(i, p.items[i])
	}
}

// Sweep drops every entity marked dead and returns how many were removed.
func (p *Pool[T]) Sweep() int {
	kept := p.items[:0]
	for _, e := range p.items {
		if !e.Dead() {
			kept = append(kept, e)
		}
	}
	removed := len(p.items) - len(kept)
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
	return removed
}

// Find returns the live entity with the given ID.
func (p *Pool[T]) Find(id ID) (T, bool) {
	for _, e := range p.items {
		if e.EntityID() == id && !e.Dead() {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Clear removes every entity.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
}
