package stub

import (
	"bytes"
	"testing"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/backend"
	"github.com/cwbudde/citogo/internal/errors"
)

func TestStubBackendsRegistered(t *testing.T) {
	for _, name := range []string{"c", "cpp", "csharp", "java", "typescript", "python", "swift", "openclc"} {
		if _, ok := backend.Get(name); !ok {
			t.Errorf("backend %q not registered", name)
		}
	}
}

func TestStubBackendWritePanicsWithOwnName(t *testing.T) {
	factory, ok := backend.Get("python")
	if !ok {
		t.Fatal("python backend not registered")
	}
	b := factory()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Write: want panic, got none")
		}
		uc, ok := r.(*errors.UnsupportedConstruct)
		if !ok {
			t.Fatalf("panic value is %T, want *errors.UnsupportedConstruct", r)
		}
		if uc.Backend != "python" {
			t.Errorf("UnsupportedConstruct.Backend = %q, want %q", uc.Backend, "python")
		}
	}()

	var buf bytes.Buffer
	_ = b.Write(&buf, &ast.Program{}, "")
}
