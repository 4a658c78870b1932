// Package signal implements a small synchronous reactive primitive: a
// mutable container that notifies registered watchers when its value
// changes. Change detection is equality-gated and configurable. All
// notification is synchronous and runs on the goroutine performing the
// write, after the internal lock is released.
package signal

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// WatchFunc receives the previous and the new value after a change
type WatchFunc[T any] func(old, new T)

// EqualFunc gates change notification: when it reports true the write is
// treated as a no-op and watchers are not notified
type EqualFunc[T any] func(a, b T) bool

// Observable is the kind-agnostic subscription surface shared by Signal
// and Derived, used to declare dependencies of derived computations
type Observable interface {
	observe(fn func()) (unsubscribe func())
}

type options[T any] struct {
	equal EqualFunc[T]
}

// Option configures a Signal or Derived at construction
type Option[T any] func(*options[T])

// WithEqual replaces the default change-detection equality
func WithEqual[T any](eq EqualFunc[T]) Option[T] {
	return func(o *options[T]) {
		o.equal = eq
	}
}

// Signal holds a value of type T and fans out change notifications
type Signal[T any] struct {
	mu       sync.RWMutex
	value    T
	equal    EqualFunc[T]
	watchers watcherSet[T]
}

// New creates a signal holding initial
func New[T any](initial T, opts ...Option[T]) *Signal[T] {
	o := options[T]{equal: DefaultEqual[T]}
	for _, opt := range opts {
		opt(&o)
	}
	return &Signal[T]{
		value:    initial,
		equal:    o.equal,
		watchers: newWatcherSet[T](),
	}
}

// Get returns the current value
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value. It reports whether a change was recorded;
// watchers are notified in subscription order only on change
func (s *Signal[T]) Set(next T) bool {
	s.mu.Lock()
	prev := s.value
	if s.equal(prev, next) {
		s.mu.Unlock()
		return false
	}
	s.value = next
	watchers := s.watchers.snapshot()
	s.mu.Unlock()

	for _, w := range watchers {
		w(prev, next)
	}
	return true
}

// Update replaces the value with fn applied to the current value, through
// the same equality gate as Set. fn runs under the signal's lock and must
// not call back into the signal
func (s *Signal[T]) Update(fn func(T) T) bool {
	s.mu.Lock()
	prev := s.value
	next := fn(prev)
	if s.equal(prev, next) {
		s.mu.Unlock()
		return false
	}
	s.value = next
	watchers := s.watchers.snapshot()
	s.mu.Unlock()

	for _, w := range watchers {
		w(prev, next)
	}
	return true
}

// Watch registers fn for change notification. The returned function
// removes the registration and is safe to call more than once
func (s *Signal[T]) Watch(fn WatchFunc[T]) func() {
	s.mu.Lock()
	id := s.watchers.add(fn)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.watchers.remove(id)
		s.mu.Unlock()
	}
}

func (s *Signal[T]) observe(fn func()) func() {
	return s.Watch(func(T, T) { fn() })
}

// DefaultEqual is the default change-detection equality: comparable values
// compare by value, pointers, maps, channels and funcs by reference
// identity, slices by data pointer and length. Values of non-comparable
// types are always treated as changed
func DefaultEqual[T any](a, b T) bool {
	return identical(any(a), any(b))
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Len() == rb.Len() && (ra.Len() == 0 || ra.Pointer() == rb.Pointer())
	}
	if ra.Comparable() {
		return ra.Equal(rb)
	}
	return false
}

// watcherSet keeps registered watchers plus their subscription order. The
// owner guards it with its own lock
type watcherSet[T any] struct {
	byID  map[string]WatchFunc[T]
	order []string
}

func newWatcherSet[T any]() watcherSet[T] {
	return watcherSet[T]{byID: make(map[string]WatchFunc[T])}
}

func (w *watcherSet[T]) add(fn WatchFunc[T]) string {
	id := uuid.New().String()
	w.byID[id] = fn
	w.order = append(w.order, id)
	return id
}

func (w *watcherSet[T]) remove(id string) {
	if _, ok := w.byID[id]; !ok {
		return
	}
	delete(w.byID, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *watcherSet[T]) snapshot() []WatchFunc[T] {
	out := make([]WatchFunc[T], 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.byID[id])
	}
	return out
}
