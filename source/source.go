package source

import (
	"fmt"
	"sort"
	"sync"
)

// Size is the number of bytes a source produces per identifier
const Size = 16

// Source produces the bytes backing a new identifier or fails
type Source interface {
	// Name returns the registered source name
	Name() string
	// Read fills dst. The content of dst is unspecified when an error is returned.
	Read(dst *[Size]byte) error
}

// Factory creates a source
type Factory func() Source

var (
	mux      sync.RWMutex
	registry = map[string]Factory{}
)

// Register makes a source available by name. It panics if name is empty, factory is nil
// or the name is already registered.
func Register(name string, factory Factory) {
	mux.Lock()
	defer mux.Unlock()
	if name == "" {
		panic("source: empty name")
	}
	if factory == nil {
		panic("source: nil factory for " + name)
	}
	if _, ok := registry[name]; ok {
		panic("source: Register called twice for " + name)
	}
	registry[name] = factory
}

// Lookup creates a source registered under name
func Lookup(name string) (Source, error) {
	mux.RLock()
	factory, ok := registry[name]
	mux.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown identifier source: %q (registered: %v)", name, Names())
	}
	return factory(), nil
}

// Names returns sorted registered source names
func Names() []string {
	mux.RLock()
	defer mux.RUnlock()
	result := make([]string, 0, len(registry))
	for name := range registry {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Func adapts a function to a Source
type Func struct {
	name string
	fn   func(dst *[Size]byte) error
}

// Name returns source name
func (f *Func) Name() string { return f.name }

// Read calls the underlying function
func (f *Func) Read(dst *[Size]byte) error { return f.fn(dst) }

// NewFunc creates a function backed source
func NewFunc(name string, fn func(dst *[Size]byte) error) *Func {
	return &Func{name: name, fn: fn}
}
