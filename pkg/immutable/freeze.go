package immutable

import (
	"github.com/zuriscript/signal-immutability/pkg/value"
)

// Freeze recursively marks v and every node reachable from it read-only
// and returns the same reference. After freezing, every mutating operation
// on any reachable node fails with value.ErrFrozen. Freezing is idempotent
// and an already-frozen node is not re-traversed, so cyclic graphs
// terminate. A nil value is a no-op
func Freeze(v value.Value) value.Value {
	if v == nil {
		return nil
	}
	freeze(v)
	return v
}

func freeze(v value.Value) {
	switch n := v.(type) {
	case *value.Object:
		if n.Frozen() {
			return
		}
		n.MarkFrozen()
		n.Range(func(_ string, child value.Value) bool {
			freeze(child)
			return true
		})
	case *value.Array:
		if n.Frozen() {
			return
		}
		n.MarkFrozen()
		n.Range(func(_ int, child value.Value) bool {
			freeze(child)
			return true
		})
	case *value.Func:
		if n.Frozen() {
			return
		}
		n.MarkFrozen()
		// Only the property bag participates; identity metadata (name,
		// arity, target) is not freezable state. Reserved names are
		// skipped silently
		for _, name := range n.PropNames() {
			if value.ReservedFuncProp(name) {
				continue
			}
			if prop, ok := n.Prop(name); ok {
				freeze(prop)
			}
		}
	}
}
