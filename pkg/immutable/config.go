// Package immutable layers immutability guarantees over reactive signals:
// structural cloning, clone-then-mutate production of next states, deep
// freezing, and a signal adapter that routes every write through that
// pipeline. All operations are synchronous and keep no state beyond the
// process-wide default configuration.
package immutable

import (
	"sync"

	"go.uber.org/zap"

	"github.com/zuriscript/signal-immutability/pkg/value"
)

// EqualityFunc gates change notification on adapter signals
type EqualityFunc func(a, b value.Value) bool

// Config holds the knobs shared by Clone, Freeze, Produce and Signal
type Config struct {
	// EnableDeepFreezing recursively freezes values before they are
	// published through Produce or a Signal
	EnableDeepFreezing bool

	// CloneMode selects how drafts are made from current values
	CloneMode CloneMode

	// Producer replaces the built-in clone-then-mutate pipeline when set
	Producer Producer

	// Equality gates change notification; defaults to value.Identical
	Equality EqualityFunc

	// Logger receives debug diagnostics and is never required
	Logger *zap.Logger
}

// DefaultConfig returns the documented defaults: no freezing, structural
// cloning, built-in producer, identity equality, silent logger
func DefaultConfig() Config {
	return Config{
		EnableDeepFreezing: false,
		CloneMode:          ModeStructural,
		Producer:           nil,
		Equality:           value.Identical,
		Logger:             zap.NewNop(),
	}
}

// Option overrides one configuration field for a single call or a single
// adapter instance
type Option func(*Config)

// WithDeepFreezing toggles recursive freezing of published values
func WithDeepFreezing(enabled bool) Option {
	return func(c *Config) {
		c.EnableDeepFreezing = enabled
	}
}

// WithCloneMode selects the cloning strategy
func WithCloneMode(mode CloneMode) Option {
	return func(c *Config) {
		c.CloneMode = mode
	}
}

// WithProducer installs a custom production strategy
func WithProducer(p Producer) Option {
	return func(c *Config) {
		c.Producer = p
	}
}

// WithEquality replaces the change-detection equality
func WithEquality(eq EqualityFunc) Option {
	return func(c *Config) {
		c.Equality = eq
	}
}

// WithLogger installs a diagnostics logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

var (
	configMu sync.RWMutex
	global   = DefaultConfig()
)

// Configure replaces the process-wide default configuration. The record is
// swapped whole: a later call wins entirely, it is not merged with earlier
// ones. Zero-value fields are normalized back to the defaults
func Configure(cfg Config) {
	cfg = normalize(cfg)
	configMu.Lock()
	global = cfg
	configMu.Unlock()
}

// CurrentConfig returns the process-wide default configuration
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return global
}

// resolve builds the effective configuration for one call: the process
// default with per-call options applied on top
func resolve(opts []Option) Config {
	cfg := CurrentConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

func normalize(cfg Config) Config {
	if cfg.Equality == nil {
		cfg.Equality = value.Identical
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
