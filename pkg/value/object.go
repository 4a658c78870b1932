package value

import (
	"fmt"
	"sort"
	"strings"
)

// Object is a string-keyed composite node
type Object struct {
	frozen
	entries map[string]Value
}

// NewObject creates an empty mutable object
func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

func (o *Object) Kind() Kind {
	return KindObject
}

// Len returns the number of members
func (o *Object) Len() int {
	return len(o.entries)
}

// Get returns the member stored under key
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Keys returns the member names in sorted order
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.entries))
	for k := range o.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Range calls fn for each member in sorted key order until fn returns false
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, k := range o.Keys() {
		if !fn(k, o.entries[k]) {
			return
		}
	}
}

// Set stores a member, replacing any existing one. A nil value is
// normalized to Null
func (o *Object) Set(key string, v Value) error {
	if o.ro {
		return fmt.Errorf("set %q: %w", key, ErrFrozen)
	}
	if v == nil {
		v = Null{}
	}
	o.entries[key] = v
	return nil
}

// Delete removes a member. Deleting an absent key is a no-op
func (o *Object) Delete(key string) error {
	if o.ro {
		return fmt.Errorf("delete %q: %w", key, ErrFrozen)
	}
	delete(o.entries, key)
	return nil
}

// GetPath resolves a dot-separated path of object members
func (o *Object) GetPath(path string) (Value, bool) {
	segments := strings.Split(path, ".")
	var current Value = o
	for _, seg := range segments {
		obj, ok := current.(*Object)
		if !ok {
			return nil, false
		}
		current, ok = obj.Get(seg)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SetPath stores a value under a dot-separated path, creating intermediate
// objects for missing segments. It fails if a segment resolves to a
// non-object or if any node along the path is frozen
func (o *Object) SetPath(path string, v Value) error {
	segments := strings.Split(path, ".")
	current := o
	for i, seg := range segments[:len(segments)-1] {
		next, ok := current.Get(seg)
		if !ok {
			child := NewObject()
			if err := current.Set(seg, child); err != nil {
				return fmt.Errorf("set path %q: %w", path, err)
			}
			current = child
			continue
		}
		obj, ok := next.(*Object)
		if !ok {
			return fmt.Errorf("set path %q: segment %q is a %s, not an object",
				path, strings.Join(segments[:i+1], "."), next.Kind())
		}
		current = obj
	}
	if err := current.Set(segments[len(segments)-1], v); err != nil {
		return fmt.Errorf("set path %q: %w", path, err)
	}
	return nil
}

// Interface converts the subtree to map[string]any. Shared nodes convert
// once, so cyclic graphs come back as cyclic maps
func (o *Object) Interface() any {
	return toInterface(o, make(map[Value]any))
}

func (o *Object) String() string {
	var b strings.Builder
	render(o, &b, make(map[Value]bool))
	return b.String()
}

func (o *Object) node() {}
