package value

import (
	"fmt"
	"sort"
)

// Target is the invocation shape callables carried in a value graph must have
type Target func(args ...Value) (Value, error)

// reservedFuncProps are callable identity names that cannot live in the
// property bag. They mirror the host-language properties whose access is
// restricted on functions, which is why the deep freezer never touches them
var reservedFuncProps = map[string]struct{}{
	"caller":    {},
	"callee":    {},
	"arguments": {},
	"prototype": {},
}

// ReservedFuncProp reports whether name is a reserved callable property
func ReservedFuncProp(name string) bool {
	_, ok := reservedFuncProps[name]
	return ok
}

// Func is a callable node. Its identity metadata (name, arity) and
// invocation target are fixed at construction; only the property bag is
// mutable state, and only until frozen
type Func struct {
	frozen
	name   string
	arity  int
	target Target
	props  map[string]Value
}

// NewFunc creates a callable node. A negative arity means variadic
func NewFunc(name string, arity int, target Target) *Func {
	return &Func{
		name:   name,
		arity:  arity,
		target: target,
		props:  make(map[string]Value),
	}
}

func (f *Func) Kind() Kind {
	return KindFunc
}

// Name returns the callable's identity name
func (f *Func) Name() string {
	return f.name
}

// Arity returns the declared parameter count, or a negative value for variadic
func (f *Func) Arity() int {
	return f.arity
}

// Call invokes the target
func (f *Func) Call(args ...Value) (Value, error) {
	if f.target == nil {
		return nil, fmt.Errorf("call %q: no target", f.name)
	}
	return f.target(args...)
}

// Prop returns the bag property stored under name
func (f *Func) Prop(name string) (Value, bool) {
	v, ok := f.props[name]
	return v, ok
}

// PropNames returns the bag property names in sorted order
func (f *Func) PropNames() []string {
	names := make([]string, 0, len(f.props))
	for name := range f.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetProp stores a bag property. Reserved identity names are rejected
func (f *Func) SetProp(name string, v Value) error {
	if f.ro {
		return fmt.Errorf("set prop %q: %w", name, ErrFrozen)
	}
	if ReservedFuncProp(name) {
		return fmt.Errorf("set prop %q: %w", name, ErrReservedProperty)
	}
	if v == nil {
		v = Null{}
	}
	f.props[name] = v
	return nil
}

// Interface returns the invocation target
func (f *Func) Interface() any {
	return f.target
}

func (f *Func) String() string {
	if f.name == "" {
		return "func"
	}
	return "func " + f.name
}

func (f *Func) node() {}
