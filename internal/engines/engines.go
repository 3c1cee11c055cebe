// Package engines provides engine identities and a generic container
// for per-engine values on a two-engine airframe.
package engines

import "fmt"

// Number identifies one of the two engines.
type Number int

const (
	Engine1 Number = 1
	Engine2 Number = 2
)

// Numbers returns all engine identities in display order.
func Numbers() []Number {
	return []Number{Engine1, Engine2}
}

// Index returns the zero-based index of the engine.
func (n Number) Index() int {
	return int(n) - 1
}

// SimIndex returns the one-based index the simulation variable
// namespace uses for this engine.
func (n Number) SimIndex() int {
	return int(n)
}

func (n Number) String() string {
	return fmt.Sprintf("engine %d", int(n))
}

// Data holds one value of type T per engine.
type Data[T any] struct {
	values [2]T
}

// New creates a Data with both engines set to the same value.
func New[T any](value T) Data[T] {
	return Data[T]{values: [2]T{value, value}}
}

// NewDistinct creates a Data with separate values for each engine.
func NewDistinct[T any](engine1 T, engine2 T) Data[T] {
	return Data[T]{values: [2]T{engine1, engine2}}
}

// NewFrom creates a Data by calling the given constructor once per engine.
func NewFrom[T any](create func(n Number) T) Data[T] {
	return Data[T]{values: [2]T{create(Engine1), create(Engine2)}}
}

// Get returns the value for the given engine. The receiver is a value
// so reads work on pairs returned by other functions.
func (d Data[T]) Get(n Number) T {
	return d.values[n.Index()]
}

// Set replaces the value for the given engine.
func (d *Data[T]) Set(n Number, value T) {
	d.values[n.Index()] = value
}

// Ref returns a pointer to the stored value for the given engine.
func (d *Data[T]) Ref(n Number) *T {
	return &d.values[n.Index()]
}

// ForEach calls the given function once per engine, in order.
func (d Data[T]) ForEach(visit func(n Number, value T)) {
	for _, n := range Numbers() {
		visit(n, d.Get(n))
	}
}

// Update replaces each engine's value with the result of the given function.
func (d *Data[T]) Update(apply func(n Number, value T) T) {
	for _, n := range Numbers() {
		d.Set(n, apply(n, d.Get(n)))
	}
}

// Map derives a new Data by transforming each engine's value.
func Map[T any, U any](d Data[T], transform func(n Number, value T) U) Data[U] {
	return NewFrom(func(n Number) U {
		return transform(n, d.Get(n))
	})
}

// Zip derives a new Data by combining the values of two Data pairs
// engine by engine.
func Zip[T any, U any, V any](a Data[T], b Data[U], combine func(n Number, left T, right U) V) Data[V] {
	return NewFrom(func(n Number) V {
		return combine(n, a.Get(n), b.Get(n))
	})
}
