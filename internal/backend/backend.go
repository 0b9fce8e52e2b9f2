// Package backend is the target-backend registry: the CLI driver looks up
// a Backend by name (inferred from -l or from the output file's extension)
// and calls its Write method with a resolved Program.
package backend

import (
	"fmt"
	"io"
	"sort"

	"github.com/cwbudde/citogo/internal/ast"
)

// Backend lowers a resolved Program to one target language's surface
// syntax.
type Backend interface {
	// Write emits the translated program to w. Namespace is an optional
	// prefix string some backends use to scope generated globals; ignored
	// by backends that don't need one.
	Write(w io.Writer, program *ast.Program, namespace string) error
}

// Factory constructs a fresh Backend instance. Backends are stateful
// (they accumulate helper registrations and output per generation), so
// the registry holds constructors, not instances — each generation pass
// gets its own backend, never a shared one.
type Factory func() Backend

var registry = map[string]Factory{}

// Register adds a backend factory under name and every alias extension it
// should be inferred from.
func Register(name string, factory Factory, extensions ...string) {
	registry[name] = factory
	for _, ext := range extensions {
		registry[ext] = factory
	}
}

// Get looks up a registered backend factory by name or file extension.
func Get(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns every registered lookup key, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrUnknownBackend is returned by the CLI driver when neither -l nor the
// output extension names a registered backend.
type ErrUnknownBackend struct {
	Requested string
}

func (e *ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unknown target backend %q (available: %v)", e.Requested, Names())
}
