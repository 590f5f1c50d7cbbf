// Package registry provides a global registry for curve constructors.
// Curve kinds register themselves in init() functions, allowing the CLI
// and storage layers to build curves by name without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/spacefill/internal/core"
)

// Curve is the read-only view of a built space-filling curve.
// Implementations are immutable and safe for concurrent readers.
type Curve interface {
	// Kind returns the registered identifier (e.g., "hilbert", "moore").
	Kind() string

	// Order returns the recursion depth the curve was built with.
	Order() int

	// Side returns the grid side length, 2^Order.
	Side() int

	// Size returns the number of cells, Side squared.
	Size() int

	// Closed reports whether the last step is adjacent to the first.
	Closed() bool

	// Forward returns the coordinate visited at step i.
	// ok is false when i is outside [0, Size()).
	Forward(i int) (c core.Coord, ok bool)

	// ForwardCircular wraps i into [0, Size()) before looking it up.
	ForwardCircular(i int) core.Coord

	// Backward returns the step index at which (x, y) is visited.
	// ok is false when either coordinate is outside [0, Side()).
	Backward(x, y int) (i int, ok bool)
}

// Info contains metadata about a registered curve kind.
type Info struct {
	ID       string
	Title    string
	MinOrder int
	MaxOrder int
}

// Factory builds a curve of the given order.
type Factory func(order int) (Curve, error)

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a curve factory to the registry.
// Typically called from an init() function.
// Panics if a kind with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: curve %q already registered", info.ID))
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered curve kinds, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata for a registered kind.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Build constructs a curve of the given kind and order.
// Returns an error if the kind is not registered or the factory rejects
// the order.
func Build(id string, order int) (Curve, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown curve %q", id)
	}

	c, err := e.factory(order)
	if err != nil {
		return nil, fmt.Errorf("registry: build %s order %d: %w", id, order, err)
	}
	return c, nil
}

// Exists checks if a curve kind with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
