package immutable

import (
	"github.com/zuriscript/signal-immutability/pkg/signal"
	"github.com/zuriscript/signal-immutability/pkg/value"
)

// Event describes a published state change
type Event struct {
	Old value.Value
	New value.Value
}

// Signal adapts a host signal so that reads hand out read-only views and
// writes flow through the clone, mutate and freeze pipeline. The adapter
// itself is stateless beyond its configuration; the host signal owns the
// value and the watcher registry
type Signal struct {
	src *signal.Signal[value.Value]
	cfg Config
}

// NewSignal creates an immutable signal holding initial. The initial value
// is deep-frozen first when freezing is enabled. Change notification uses
// the configured equality, value.Identical unless overridden
func NewSignal(initial value.Value, opts ...Option) *Signal {
	cfg := resolve(opts)
	if cfg.EnableDeepFreezing {
		initial = Freeze(initial)
	}
	src := signal.New(initial,
		signal.WithEqual(signal.EqualFunc[value.Value](cfg.Equality)))
	return &Signal{src: src, cfg: cfg}
}

// Wrap adapts an existing host signal. The host keeps its own equality
// gate; options control cloning and freezing only. The wrapped value is
// not retroactively frozen until the first write
func Wrap(src *signal.Signal[value.Value], opts ...Option) *Signal {
	return &Signal{src: src, cfg: resolve(opts)}
}

// Read returns the current value as a read-only view
func (s *Signal) Read() value.Value {
	return s.src.Get()
}

// Set replaces the value, deep-freezing it first when freezing is enabled.
// It reports whether a change was recorded
func (s *Signal) Set(next value.Value) bool {
	if s.cfg.EnableDeepFreezing {
		next = Freeze(next)
	}
	return s.src.Set(next)
}

// Update replaces the value with fn applied to the current value. fn runs
// under the host signal's lock and must not call back into the signal
func (s *Signal) Update(fn func(current value.Value) value.Value) bool {
	return s.src.Update(func(current value.Value) value.Value {
		next := fn(current)
		if s.cfg.EnableDeepFreezing {
			next = Freeze(next)
		}
		return next
	})
}

// Mutate produces the next state by applying fn to a draft of the current
// state and publishes it. On error the signal is untouched and no
// notification fires. The read-produce-publish sequence runs atomically
// under the host signal's lock, so fn and any custom producer must not
// call back into the signal; the draft carries the current state
func (s *Signal) Mutate(fn MutateFunc) error {
	var produceErr error
	s.src.Update(func(current value.Value) value.Value {
		next, err := produceWith(s.cfg, current, fn)
		if err != nil {
			produceErr = err
			return current
		}
		return next
	})
	return produceErr
}

// Watch registers fn for change notification. Old and new values arrive as
// read-only views
func (s *Signal) Watch(fn func(Event)) func() {
	return s.src.Watch(func(old, new value.Value) {
		fn(Event{Old: old, New: new})
	})
}

// Source exposes the host signal, for deriving computations from this one
func (s *Signal) Source() *signal.Signal[value.Value] {
	return s.src
}
