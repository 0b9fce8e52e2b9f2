// Package loader implements the Program boundary format: since the
// lexer, parser, and semantic analyzer are out of scope for this core,
// the driver obtains a resolved *ast.Program by reading a single JSON
// document whose field names mirror internal/ast's exported Go types
// 1:1. Uses the standard library encoding/json: no third-party
// AST-serialization library fits this pure data-interchange boundary
// (see DESIGN.md).
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/citogo/internal/ast"
)

// wireProgram is the top-level JSON shape: an ordered list of
// kind-tagged top-level declarations plus a resource map whose values
// are base64 strings (encoding/json decodes a []byte field from base64).
type wireProgram struct {
	Decls     []json.RawMessage    `json:"decls"`
	Resources map[string][]byte    `json:"resources,omitempty"`
}

// Load reads a Program from the JSON document at path.
func Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a Program from an in-memory JSON document.
func Decode(data []byte) (*ast.Program, error) {
	var wp wireProgram
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}

	dec := newDecoder()

	decls := make([]ast.TopLevelDecl, 0, len(wp.Decls))
	for i, raw := range wp.Decls {
		d, err := dec.topLevelDecl(raw)
		if err != nil {
			return nil, fmt.Errorf("decls[%d]: %w", i, err)
		}
		decls = append(decls, d)
	}

	if err := dec.resolveBackReferences(); err != nil {
		return nil, err
	}

	return &ast.Program{Decls: decls, Resources: wp.Resources}, nil
}
