package value

import "strings"

// render writes a subtree in display form. ancestors tracks the composites
// on the current path, so a node that contains itself prints "..." at the
// point of the cycle instead of recursing forever. Nodes shared between
// siblings are not on each other's path and still print in full
func render(v Value, b *strings.Builder, ancestors map[Value]bool) {
	switch n := v.(type) {
	case *Object:
		if ancestors[v] {
			b.WriteString("...")
			return
		}
		ancestors[v] = true
		b.WriteByte('{')
		for i, k := range n.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			render(n.entries[k], b, ancestors)
		}
		b.WriteByte('}')
		delete(ancestors, v)
	case *Array:
		if ancestors[v] {
			b.WriteString("...")
			return
		}
		ancestors[v] = true
		b.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				b.WriteString(", ")
			}
			render(item, b, ancestors)
		}
		b.WriteByte(']')
		delete(ancestors, v)
	default:
		b.WriteString(v.String())
	}
}
