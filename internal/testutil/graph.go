// Package testutil provides value graph fixtures shared by tests and
// benchmarks
package testutil

import (
	"fmt"

	"github.com/zuriscript/signal-immutability/pkg/value"
)

// NestedObject builds an object graph depth levels deep with width members
// per level. Leaves are integers
func NestedObject(depth, width int) *value.Object {
	obj := value.NewObject()
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("field%d", i)
		if depth <= 1 {
			_ = obj.Set(key, value.Int(int64(i)))
			continue
		}
		_ = obj.Set(key, NestedObject(depth-1, width))
	}
	return obj
}

// CyclicObject builds a two-node graph where child points back at root
func CyclicObject() *value.Object {
	root := value.NewObject()
	child := value.NewObject()
	_ = root.Set("child", child)
	_ = child.Set("parent", root)
	return root
}
