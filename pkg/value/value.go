// Package value implements the graph of nodes the immutability layer
// operates on: JSON-like scalars, arrays, objects, timestamps and
// callables. Go maps and slices carry no runtime mutability flag, so the
// graph makes that flag explicit: every composite node can be marked
// frozen, after which all of its mutating operations fail with ErrFrozen.
//
// Value is the read-only contract. Mutating methods live only on the
// concrete node types (*Object, *Array, *Func), so an API that hands out
// Value hands out a compile-time read-only view; mutable access requires
// an explicit type assertion.
package value

import (
	"fmt"
	"strconv"
	"time"
)

// Value is the read-only view every node satisfies
type Value interface {
	// Kind identifies the node shape
	Kind() Kind

	// Frozen reports whether the node is read-only. Scalars are always frozen
	Frozen() bool

	// Interface converts the subtree back to plain Go values
	Interface() any

	fmt.Stringer

	// node restricts graph membership to this package's types
	node()
}

// frozen carries the read-only flag embedded by composite and callable nodes.
// Marking is shallow and irreversible; recursive marking is the deep
// freezer's job.
type frozen struct {
	ro bool
}

func (f *frozen) Frozen() bool {
	return f.ro
}

// MarkFrozen marks this node read-only. It does not touch children
func (f *frozen) MarkFrozen() {
	f.ro = true
}

// Null is the absent value
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) Frozen() bool { return true }
func (Null) Interface() any { return nil }
func (Null) String() string { return "null" }

// Bool is a boolean scalar
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) Frozen() bool { return true }
func (b Bool) Interface() any { return bool(b) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Int is a signed integer scalar
type Int int64

func (Int) Kind() Kind { return KindInt }
func (Int) Frozen() bool { return true }
func (i Int) Interface() any { return int64(i) }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a floating point scalar
type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) Frozen() bool { return true }
func (f Float) Interface() any { return float64(f) }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// String is a text scalar
type String string

func (String) Kind() Kind { return KindString }
func (String) Frozen() bool { return true }
func (s String) Interface() any { return string(s) }
func (s String) String() string { return string(s) }

// Time is a timestamp scalar. It preserves the full time.Time identity,
// including location, so structural clones keep timestamps intact
type Time time.Time

// NewTime wraps a time.Time as a graph node
func NewTime(t time.Time) Time {
	return Time(t)
}

func (Time) Kind() Kind { return KindTime }
func (Time) Frozen() bool { return true }
func (t Time) Interface() any { return time.Time(t) }
func (t Time) String() string { return time.Time(t).Format(time.RFC3339Nano) }

// Std returns the underlying time.Time
func (t Time) Std() time.Time {
	return time.Time(t)
}

func (Null) node() {}
func (Bool) node() {}
func (Int) node() {}
func (Float) node() {}
func (String) node() {}
func (Time) node() {}
