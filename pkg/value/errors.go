package value

import "errors"

var (
	// ErrFrozen is returned by every mutating operation on a frozen node
	ErrFrozen = errors.New("value is frozen")

	// ErrUnsupportedType is returned when a Go value has no graph representation
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrIndexOutOfRange is returned for array access outside [0, Len)
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrReservedProperty is returned when setting a reserved callable property
	ErrReservedProperty = errors.New("reserved property")
)

// IsFrozen checks if an error was caused by writing to a frozen node
func IsFrozen(err error) bool {
	return errors.Is(err, ErrFrozen)
}

// IsReservedProperty checks if an error was caused by a reserved property name
func IsReservedProperty(err error) bool {
	return errors.Is(err, ErrReservedProperty)
}
