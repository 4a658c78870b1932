package signal

import "sync"

// Derived is a computed value over one or more observables. Each
// dependency change triggers exactly one recomputation; watchers are
// notified only when the recomputed value differs under the configured
// equality
type Derived[T any] struct {
	mu         sync.RWMutex
	compute    func() T
	value      T
	equal      EqualFunc[T]
	watchers   watcherSet[T]
	recomputes uint64
	detach     []func()
	closed     bool
}

// Derive creates a derived value. compute runs once immediately and then
// once per dependency change; it must not read the derived value itself.
// Dependencies are declared explicitly
func Derive[T any](compute func() T, deps ...Observable) *Derived[T] {
	return DeriveWith(compute, nil, deps...)
}

// DeriveWith is Derive with construction options
func DeriveWith[T any](compute func() T, opts []Option[T], deps ...Observable) *Derived[T] {
	o := options[T]{equal: DefaultEqual[T]}
	for _, opt := range opts {
		opt(&o)
	}
	d := &Derived[T]{
		compute:    compute,
		value:      compute(),
		equal:      o.equal,
		watchers:   newWatcherSet[T](),
		recomputes: 1,
	}
	for _, dep := range deps {
		d.detach = append(d.detach, dep.observe(d.recompute))
	}
	return d
}

// Get returns the current derived value
func (d *Derived[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Recomputations returns how many times the computation has run,
// including the initial run at construction
func (d *Derived[T]) Recomputations() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.recomputes
}

// Watch registers fn for change notification, as on Signal
func (d *Derived[T]) Watch(fn WatchFunc[T]) func() {
	d.mu.Lock()
	id := d.watchers.add(fn)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		d.watchers.remove(id)
		d.mu.Unlock()
	}
}

// Close detaches the derived value from its dependencies. The last
// computed value stays readable. Close is idempotent
func (d *Derived[T]) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	detach := d.detach
	d.detach = nil
	d.mu.Unlock()

	for _, stop := range detach {
		stop()
	}
}

func (d *Derived[T]) observe(fn func()) func() {
	return d.Watch(func(T, T) { fn() })
}

func (d *Derived[T]) recompute() {
	d.mu.Lock()
	prev := d.value
	next := d.compute()
	d.recomputes++
	if d.equal(prev, next) {
		d.mu.Unlock()
		return
	}
	d.value = next
	watchers := d.watchers.snapshot()
	d.mu.Unlock()

	for _, w := range watchers {
		w(prev, next)
	}
}
