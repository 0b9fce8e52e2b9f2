// Package javascript implements the dynamically-typed, garbage-collected
// target backend: the hard case that must rewrite the input language's
// integer, collection, interpolated-string, regex, and class/inheritance
// semantics onto JavaScript's native ones.
package javascript

import (
	"io"
	"sort"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/backend"
	"github.com/cwbudde/citogo/internal/errors"
	"github.com/cwbudde/citogo/pkg/emitter"
)

func init() {
	backend.Register("javascript", New, "js")
}

// Backend is one program-generation instance. It owns all of its state
// (indentation via the embedded Writer, helper registrations,
// current-method context) and is never reused across programs.
type Backend struct {
	w             *emitter.Writer
	namespace     string
	helpers       map[string]bool
	resources     map[string][]byte
	currentClass  string
	currentMethod string
	switchDepth   int
	labelCounter  int
	switchLabels  []switchLabel
}

// New constructs a fresh backend instance. Matches the registry's
// backend.Factory signature.
func New() backend.Backend {
	return &Backend{
		w:       emitter.New("  "),
		helpers: map[string]bool{},
	}
}

// Write lowers program to JavaScript source and writes it to w: UTF-8
// text, first non-blank line `"use strict";`, then top-level declarations
// in source order, then the helper/resource object when non-empty, with
// a trailing newline.
func (b *Backend) Write(w io.Writer, program *ast.Program, namespace string) error {
	b.namespace = namespace
	b.resources = program.Resources

	b.w.WriteLine(`"use strict";`)
	b.w.Newline()

	for _, decl := range program.Decls {
		switch d := decl.(type) {
		case *ast.EnumDecl:
			b.emitEnum(d)
		case *ast.ClassDecl:
			b.emitClass(d)
		default:
			panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "top-level declaration"})
		}
		b.w.Newline()
	}

	b.emitHelpersAndResources()

	_, err := io.WriteString(w, b.w.String())
	return err
}

// registerHelper marks id as used; emitHelpersAndResources later emits it
// exactly once, in lexicographic order with every other registered
// helper, no matter how many call sites registered it.
func (b *Backend) registerHelper(id string) {
	b.helpers[id] = true
}

func (b *Backend) emitHelpersAndResources() {
	if len(b.helpers) == 0 && len(b.resources) == 0 {
		return
	}

	ids := make([]string, 0, len(b.helpers))
	for id := range b.helpers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b.w.WriteString("const Ci = ")
	b.w.OpenBlock("")
	for i, id := range ids {
		src, ok := helperSources[id]
		if !ok {
			panic(&errors.UnsupportedConstruct{Backend: "javascript", Kind: "helper:" + id})
		}
		b.w.WriteString(id + ": " + src)
		if i < len(ids)-1 || len(b.resources) > 0 {
			b.w.WriteLine(",")
		} else {
			b.w.Newline()
		}
	}

	keys := make([]string, 0, len(b.resources))
	for k := range b.resources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		b.w.WriteString(mangleResourceName(k) + ": ")
		b.w.WriteByteArrayLiteral(b.resources[k], "new Uint8Array")
		if i < len(keys)-1 {
			b.w.WriteLine(",")
		} else {
			b.w.Newline()
		}
	}
	b.w.CloseBlock()
	b.w.WriteLine(";")
}

// mangleResourceName replaces every non letter/digit byte with "_" so a
// resource path becomes a valid JS identifier segment.
func mangleResourceName(name string) string {
	out := []byte(name)
	for i, c := range out {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			out[i] = '_'
		}
	}
	return string(out)
}
