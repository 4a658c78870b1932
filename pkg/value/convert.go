package value

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// Of converts a plain Go value into a graph node. Supported inputs are nil,
// booleans, integers, floats, strings, time.Time, Target functions, []any,
// map[string]any, their Value-typed variants, and any named type or
// string-keyed map/slice reachable through reflection. Existing Value nodes
// pass through unchanged
func Of(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(v), nil
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("convert uint64 %d: overflows int64: %w", v, ErrUnsupportedType)
		}
		return Int(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case time.Time:
		return NewTime(v), nil
	case Target:
		return NewFunc("", -1, v), nil
	case func(args ...Value) (Value, error):
		return NewFunc("", -1, v), nil
	case []any:
		arr := NewArray()
		for i, item := range v {
			node, err := Of(item)
			if err != nil {
				return nil, fmt.Errorf("convert index %d: %w", i, err)
			}
			if err := arr.Append(node); err != nil {
				return nil, err
			}
		}
		return arr, nil
	case map[string]any:
		obj := NewObject()
		for key, item := range v {
			node, err := Of(item)
			if err != nil {
				return nil, fmt.Errorf("convert key %q: %w", key, err)
			}
			if err := obj.Set(key, node); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case []Value:
		return NewArray(v...), nil
	case map[string]Value:
		obj := NewObject()
		for key, item := range v {
			if err := obj.Set(key, item); err != nil {
				return nil, err
			}
		}
		return obj, nil
	}
	return ofReflect(reflect.ValueOf(v))
}

// MustOf is Of for literals known to convert; it panics on error
func MustOf(v any) Value {
	node, err := Of(v)
	if err != nil {
		panic(err)
	}
	return node
}

// ofReflect handles named basic types and arbitrary string-keyed maps and
// slices that the type switch in Of cannot see
func ofReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("convert %s %d: overflows int64: %w", rv.Type(), u, ErrUnsupportedType)
		}
		return Int(u), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			node, err := Of(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("convert index %d: %w", i, err)
			}
			if err := arr.Append(node); err != nil {
				return nil, err
			}
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("convert %s: map keys must be strings: %w", rv.Type(), ErrUnsupportedType)
		}
		obj := NewObject()
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			node, err := Of(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("convert key %q: %w", key, err)
			}
			if err := obj.Set(key, node); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return Of(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("convert %s: %w", rv.Type(), ErrUnsupportedType)
}

// toInterface converts a subtree to plain Go values. seen maps composites
// to their converted forms, so nodes shared inside the graph convert once
// and cyclic graphs come back as cyclic maps and slices instead of
// recursing forever
func toInterface(v Value, seen map[Value]any) any {
	switch n := v.(type) {
	case *Object:
		if out, ok := seen[v]; ok {
			return out
		}
		out := make(map[string]any, len(n.entries))
		seen[v] = out
		for k, child := range n.entries {
			out[k] = toInterface(child, seen)
		}
		return out
	case *Array:
		if out, ok := seen[v]; ok {
			return out
		}
		out := make([]any, len(n.items))
		seen[v] = out
		for i, child := range n.items {
			out[i] = toInterface(child, seen)
		}
		return out
	default:
		return v.Interface()
	}
}
