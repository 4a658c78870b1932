package immutable

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/zuriscript/signal-immutability/pkg/value"
)

// CloneMode selects the cloning strategy
type CloneMode int

const (
	// ModeStructural copies node by node. Kinds are preserved exactly
	// (timestamps stay timestamps, callables stay callables sharing their
	// invocation target) and cyclic graphs reproduce as cyclic clones
	ModeStructural CloneMode = iota

	// ModeSerialize round-trips through JSON. Callable members are
	// silently dropped (array elements become null), timestamps flatten to
	// their string form, integers come back as floats, and cyclic graphs
	// fail with ErrCycle. The loss is documented behavior, not an error
	ModeSerialize
)

var cloneModeNames = map[CloneMode]string{
	ModeStructural: "structural",
	ModeSerialize:  "serialize",
}

func (m CloneMode) String() string {
	if name, ok := cloneModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Clone returns a copy of v that shares no mutable node with the input.
// The copy is unfrozen even when the input was frozen. Scalars are
// returned as-is; sharing immutable nodes is safe
func Clone(v value.Value, opts ...Option) (value.Value, error) {
	return cloneWith(resolve(opts), v)
}

func cloneWith(cfg Config, v value.Value) (value.Value, error) {
	if v == nil {
		return value.Null{}, nil
	}
	switch cfg.CloneMode {
	case ModeSerialize:
		out, err := cloneSerialize(v)
		if err != nil {
			return nil, err
		}
		cfg.Logger.Debug("cloned value",
			zap.Stringer("mode", ModeSerialize),
			zap.Stringer("kind", v.Kind()))
		return out, nil
	default:
		out := cloneStructural(v, make(map[value.Value]value.Value))
		cfg.Logger.Debug("cloned value",
			zap.Stringer("mode", ModeStructural),
			zap.Stringer("kind", v.Kind()))
		return out, nil
	}
}

// cloneStructural walks the graph once. seen maps originals to their
// clones so shared nodes stay shared and cycles terminate
func cloneStructural(v value.Value, seen map[value.Value]value.Value) value.Value {
	switch n := v.(type) {
	case *value.Object:
		if c, ok := seen[v]; ok {
			return c
		}
		clone := value.NewObject()
		seen[v] = clone
		n.Range(func(key string, child value.Value) bool {
			_ = clone.Set(key, cloneStructural(child, seen))
			return true
		})
		return clone
	case *value.Array:
		if c, ok := seen[v]; ok {
			return c
		}
		clone := value.NewArray()
		seen[v] = clone
		n.Range(func(_ int, child value.Value) bool {
			_ = clone.Append(cloneStructural(child, seen))
			return true
		})
		return clone
	case *value.Func:
		if c, ok := seen[v]; ok {
			return c
		}
		target, _ := n.Interface().(value.Target)
		clone := value.NewFunc(n.Name(), n.Arity(), target)
		seen[v] = clone
		for _, name := range n.PropNames() {
			prop, _ := n.Prop(name)
			_ = clone.SetProp(name, cloneStructural(prop, seen))
		}
		return clone
	default:
		// Scalars are immutable by construction
		return v
	}
}

// cloneSerialize strips the graph to a JSON-encodable tree, round-trips it
// through encoding/json and converts the result back into a graph
func cloneSerialize(v value.Value) (value.Value, error) {
	if v.Kind() == value.KindFunc {
		return nil, fmt.Errorf("serialize clone: callable root: %w", value.ErrUnsupportedType)
	}
	plain, err := stripForJSON(v, make(map[value.Value]bool))
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("serialize clone: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("serialize clone: %w", err)
	}
	out, err := value.Of(decoded)
	if err != nil {
		return nil, fmt.Errorf("serialize clone: %w", err)
	}
	return out, nil
}

// stripForJSON converts a graph to plain Go values the way a JSON
// serializer sees them: callable object members disappear, callable array
// elements become nil. ancestors tracks the path for cycle detection
func stripForJSON(v value.Value, ancestors map[value.Value]bool) (any, error) {
	switch n := v.(type) {
	case *value.Object:
		if ancestors[v] {
			return nil, fmt.Errorf("serialize clone: %w", ErrCycle)
		}
		ancestors[v] = true
		defer delete(ancestors, v)

		out := make(map[string]any, n.Len())
		var walkErr error
		n.Range(func(key string, child value.Value) bool {
			if child.Kind() == value.KindFunc {
				return true
			}
			plain, err := stripForJSON(child, ancestors)
			if err != nil {
				walkErr = err
				return false
			}
			out[key] = plain
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return out, nil
	case *value.Array:
		if ancestors[v] {
			return nil, fmt.Errorf("serialize clone: %w", ErrCycle)
		}
		ancestors[v] = true
		defer delete(ancestors, v)

		out := make([]any, 0, n.Len())
		var walkErr error
		n.Range(func(_ int, child value.Value) bool {
			if child.Kind() == value.KindFunc {
				out = append(out, nil)
				return true
			}
			plain, err := stripForJSON(child, ancestors)
			if err != nil {
				walkErr = err
				return false
			}
			out = append(out, plain)
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
		return out, nil
	default:
		return v.Interface(), nil
	}
}
