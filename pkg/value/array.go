package value

import (
	"fmt"
	"strings"
)

// Array is an index-addressed composite node
type Array struct {
	frozen
	items []Value
}

// NewArray creates a mutable array holding the given items
func NewArray(items ...Value) *Array {
	arr := &Array{items: make([]Value, len(items))}
	for i, v := range items {
		if v == nil {
			v = Null{}
		}
		arr.items[i] = v
	}
	return arr
}

func (a *Array) Kind() Kind {
	return KindArray
}

// Len returns the number of elements
func (a *Array) Len() int {
	return len(a.items)
}

// At returns the element at index i
func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Range calls fn for each element in order until fn returns false
func (a *Array) Range(fn func(i int, v Value) bool) {
	for i, v := range a.items {
		if !fn(i, v) {
			return
		}
	}
}

// Set replaces the element at index i
func (a *Array) Set(i int, v Value) error {
	if a.ro {
		return fmt.Errorf("set index %d: %w", i, ErrFrozen)
	}
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("set index %d of %d: %w", i, len(a.items), ErrIndexOutOfRange)
	}
	if v == nil {
		v = Null{}
	}
	a.items[i] = v
	return nil
}

// Append adds elements at the end
func (a *Array) Append(items ...Value) error {
	if a.ro {
		return fmt.Errorf("append: %w", ErrFrozen)
	}
	for _, v := range items {
		if v == nil {
			v = Null{}
		}
		a.items = append(a.items, v)
	}
	return nil
}

// Interface converts the subtree to []any. Shared nodes convert once, so
// cyclic graphs come back as cyclic slices
func (a *Array) Interface() any {
	return toInterface(a, make(map[Value]any))
}

func (a *Array) String() string {
	var b strings.Builder
	render(a, &b, make(map[Value]bool))
	return b.String()
}

func (a *Array) node() {}
