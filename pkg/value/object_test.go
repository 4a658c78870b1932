package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetAndGet(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("name", String("ada")))
	require.NoError(t, obj.Set("age", Int(36)))

	v, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, String("ada"), v)
	assert.Equal(t, 2, obj.Len())

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_SetNilNormalizesToNull(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("gone", nil))

	v, ok := obj.Get("gone")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)
}

func TestObject_Delete(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", Int(1)))
	require.NoError(t, obj.Delete("a"))
	require.NoError(t, obj.Delete("never-existed"))

	assert.Equal(t, 0, obj.Len())
}

func TestObject_KeysSorted(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("zebra", Int(1)))
	require.NoError(t, obj.Set("apple", Int(2)))
	require.NoError(t, obj.Set("mango", Int(3)))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, obj.Keys())
}

func TestObject_RangeStopsEarly(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", Int(1)))
	require.NoError(t, obj.Set("b", Int(2)))
	require.NoError(t, obj.Set("c", Int(3)))

	var visited []string
	obj.Range(func(key string, _ Value) bool {
		visited = append(visited, key)
		return len(visited) < 2
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestObject_FrozenRejectsMutation(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", Int(1)))
	obj.MarkFrozen()

	err := obj.Set("b", Int(2))
	require.Error(t, err)
	assert.True(t, IsFrozen(err))

	err = obj.Delete("a")
	require.Error(t, err)
	assert.True(t, IsFrozen(err))

	// Reads still work
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(1), v)
}

func TestObject_GetPath(t *testing.T) {
	obj := NewObject()
	inner := NewObject()
	require.NoError(t, inner.Set("count", Int(7)))
	require.NoError(t, obj.Set("stats", inner))

	v, ok := obj.GetPath("stats.count")
	require.True(t, ok)
	assert.Equal(t, Int(7), v)

	_, ok = obj.GetPath("stats.missing")
	assert.False(t, ok)

	// Path through a non-object
	require.NoError(t, obj.Set("label", String("x")))
	_, ok = obj.GetPath("label.inner")
	assert.False(t, ok)
}

func TestObject_SetPathCreatesIntermediates(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.SetPath("user.profile.city", String("zurich")))

	v, ok := obj.GetPath("user.profile.city")
	require.True(t, ok)
	assert.Equal(t, String("zurich"), v)
}

func TestObject_SetPathRejectsNonObjectSegment(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("user", Int(1)))

	err := obj.SetPath("user.name", String("ada"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an object")
}

func TestObject_SetPathOnFrozenIntermediate(t *testing.T) {
	obj := NewObject()
	inner := NewObject()
	require.NoError(t, obj.Set("inner", inner))
	inner.MarkFrozen()

	err := obj.SetPath("inner.x", Int(1))
	require.Error(t, err)
	assert.True(t, IsFrozen(err))
}

func TestObject_Interface(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("n", Int(1)))
	require.NoError(t, obj.Set("nested", NewArray(Bool(true))))

	got := obj.Interface()
	assert.Equal(t, map[string]any{"n": int64(1), "nested": []any{true}}, got)
}

func TestObject_String(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("b", Int(2)))
	require.NoError(t, obj.Set("a", Int(1)))

	assert.Equal(t, "{a: 1, b: 2}", obj.String())
}

func TestObject_StringCyclicGraphTerminates(t *testing.T) {
	root := NewObject()
	require.NoError(t, root.Set("n", Int(1)))
	require.NoError(t, root.Set("self", root))

	assert.Equal(t, "{n: 1, self: ...}", root.String())
}

func TestObject_StringSharedNodesPrintInFull(t *testing.T) {
	shared := NewArray(Int(1))
	root := NewObject()
	require.NoError(t, root.Set("a", shared))
	require.NoError(t, root.Set("b", shared))

	assert.Equal(t, "{a: [1], b: [1]}", root.String())
}

func TestObject_InterfaceCyclicGraphTerminates(t *testing.T) {
	root := NewObject()
	require.NoError(t, root.Set("self", root))

	out := root.Interface().(map[string]any)
	self, ok := out["self"].(map[string]any)
	require.True(t, ok)

	// out and out["self"] are one map: the cycle survives the conversion
	out["tag"] = true
	_, ok = self["tag"]
	assert.True(t, ok)
}
