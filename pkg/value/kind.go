package value

// Kind identifies the shape of a node in a value graph
type Kind int

const (
	// Scalar kinds, immutable by construction
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime

	// Composite kinds, mutable until frozen
	KindArray
	KindObject

	// Callable kind, carries an invocation target plus a property bag
	KindFunc
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindTime:   "time",
	KindArray:  "array",
	KindObject: "object",
	KindFunc:   "func",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Scalar reports whether the kind has no children and no mutable state
func (k Kind) Scalar() bool {
	switch k {
	case KindNull, KindBool, KindInt, KindFloat, KindString, KindTime:
		return true
	}
	return false
}
