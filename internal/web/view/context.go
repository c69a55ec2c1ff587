package view

import (
	"github.com/gofiber/fiber/v2"
)

// Value is an ExtraContext entry. It is either a static value or a producer
// evaluated on every merge.
type Value interface {
	resolve() any
}

type staticValue struct {
	v any
}

func (s staticValue) resolve() any { return s.v }

type producerValue struct {
	fn func() any
}

func (p producerValue) resolve() any {
	if p.fn == nil {
		return nil
	}

	return p.fn()
}

// Static wraps a plain value.
func Static(v any) Value {
	return staticValue{v: v}
}

// Producer wraps a zero-argument function. The function is called each time
// the context is merged, never cached.
func Producer(fn func() any) Value {
	return producerValue{fn: fn}
}

// ExtraContext holds supplemental template values keyed by name.
type ExtraContext map[string]Value

// Merge returns a new map with every key of base plus every entry of e.
// Entries of e override keys of base. base is not modified.
func (e ExtraContext) Merge(base fiber.Map) fiber.Map {
	out := make(fiber.Map, len(base)+len(e))

	for k, v := range base {
		out[k] = v
	}

	for k, v := range e {
		if v == nil {
			out[k] = nil
			continue
		}

		out[k] = v.resolve()
	}

	return out
}
