// Package stub registers every acknowledged-but-unimplemented target
// name (C, C++, C#, Java, TypeScript, Python, Swift, OpenCL C) so the
// driver's backend lookup and extension inference always resolve to
// *something*: a backend that immediately raises the "unsupported
// construct" error class naming itself, rather than the CLI surfacing a
// generic unknown-backend usage error for a language this core
// recognizes by name but does not implement.
package stub

import (
	"io"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/backend"
	"github.com/cwbudde/citogo/internal/errors"
)

type Backend struct {
	name string
}

func (b *Backend) Write(w io.Writer, program *ast.Program, namespace string) error {
	panic(&errors.UnsupportedConstruct{Backend: b.name, Kind: "entire backend (not implemented in this core)"})
}

func register(name string, extensions ...string) {
	backend.Register(name, func() backend.Backend { return &Backend{name: name} }, extensions...)
}

func init() {
	register("c")
	register("cpp", "cc", "hpp")
	register("csharp", "cs")
	register("java")
	register("typescript", "ts")
	register("python", "py")
	register("swift")
	register("openclc", "cl")
}
