package immutable

import "errors"

var (
	// ErrCycle is returned by serialize-mode cloning of a cyclic graph
	ErrCycle = errors.New("cyclic graph")

	// ErrMutationPanic wraps a panic recovered from a mutation function
	ErrMutationPanic = errors.New("mutation panicked")
)

// IsCycle checks if an error was caused by a cyclic graph
func IsCycle(err error) bool {
	return errors.Is(err, ErrCycle)
}
