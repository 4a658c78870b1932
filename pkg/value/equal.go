package value

import (
	"reflect"
	"time"
)

// visit tracks a pair of composite nodes already compared, so Equal
// terminates on cyclic graphs
type visit struct {
	a, b Value
}

// Equal reports deep structural equality. Kinds must match exactly, arrays
// compare elementwise, objects memberwise, and callables compare by target
// identity plus property bag. Cyclic graphs are handled
func Equal(a, b Value) bool {
	return equal(a, b, make(map[visit]bool))
}

func equal(a, b Value, seen map[visit]bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Float:
		return av == b.(Float)
	case String:
		return av == b.(String)
	case Time:
		return time.Time(av).Equal(time.Time(b.(Time)))
	case *Array:
		bv := b.(*Array)
		if av == bv {
			return true
		}
		if av.Len() != bv.Len() {
			return false
		}
		v := visit{a, b}
		if seen[v] {
			return true
		}
		seen[v] = true
		for i, item := range av.items {
			if !equal(item, bv.items[i], seen) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if av == bv {
			return true
		}
		if av.Len() != bv.Len() {
			return false
		}
		v := visit{a, b}
		if seen[v] {
			return true
		}
		seen[v] = true
		for key, item := range av.entries {
			other, ok := bv.entries[key]
			if !ok || !equal(item, other, seen) {
				return false
			}
		}
		return true
	case *Func:
		bv := b.(*Func)
		if av == bv {
			return true
		}
		if av.name != bv.name || av.arity != bv.arity {
			return false
		}
		if targetPointer(av.target) != targetPointer(bv.target) {
			return false
		}
		if len(av.props) != len(bv.props) {
			return false
		}
		v := visit{a, b}
		if seen[v] {
			return true
		}
		seen[v] = true
		for key, item := range av.props {
			other, ok := bv.props[key]
			if !ok || !equal(item, other, seen) {
				return false
			}
		}
		return true
	}
	return false
}

// Identical reports the default change-detection equality: value equality
// for scalars, reference identity for composites and callables
func Identical(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindArray, KindObject, KindFunc:
		return a == b
	case KindTime:
		return time.Time(a.(Time)).Equal(time.Time(b.(Time)))
	default:
		return a == b
	}
}

// targetPointer returns the code pointer of a callable target. Go funcs are
// not comparable directly
func targetPointer(t Target) uintptr {
	if t == nil {
		return 0
	}
	return reflect.ValueOf(t).Pointer()
}
