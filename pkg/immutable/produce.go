package immutable

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zuriscript/signal-immutability/pkg/value"
)

// MutateFunc mutates a draft in place. The draft is a private clone, so
// arbitrary writes are safe; returning an error abandons the draft
type MutateFunc func(draft value.Value) error

// Producer turns the current value and a mutation into the next value.
// The built-in producer clones current and applies mutate to the clone; a
// custom producer may do anything as long as it never mutates current
type Producer func(current value.Value, mutate MutateFunc) (value.Value, error)

// Produce applies mutate to a draft of current and returns the result as
// the next state. current is never touched: on error no partial state can
// escape, because only the draft was written. Panics in mutate are
// recovered and returned as errors wrapping ErrMutationPanic. When deep
// freezing is enabled the result is frozen before it is returned
func Produce(current value.Value, mutate MutateFunc, opts ...Option) (value.Value, error) {
	return produceWith(resolve(opts), current, mutate)
}

func produceWith(cfg Config, current value.Value, mutate MutateFunc) (value.Value, error) {
	producer := cfg.Producer
	if producer == nil {
		producer = func(current value.Value, mutate MutateFunc) (value.Value, error) {
			draft, err := cloneWith(cfg, current)
			if err != nil {
				return nil, err
			}
			if err := runMutation(mutate, draft); err != nil {
				return nil, err
			}
			return draft, nil
		}
	}

	next, err := producer(current, mutate)
	if err != nil {
		cfg.Logger.Warn("mutation failed", zap.Error(err))
		return nil, fmt.Errorf("produce: %w", err)
	}
	if cfg.EnableDeepFreezing {
		next = Freeze(next)
	}
	cfg.Logger.Debug("produced next state",
		zap.Bool("frozen", cfg.EnableDeepFreezing))
	return next, nil
}

func runMutation(mutate MutateFunc, draft value.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMutationPanic, r)
		}
	}()
	return mutate(draft)
}
