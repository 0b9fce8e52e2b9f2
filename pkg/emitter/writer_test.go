package emitter

import "testing"

func TestIndentedBlocks(t *testing.T) {
	w := New("  ")
	w.WriteString("function foo() ")
	w.OpenBlock("")
	w.WriteLine("return 1;")
	w.CloseBlock()

	want := "function foo() {\n  return 1;\n}\n"
	if w.String() != want {
		t.Errorf("got %q, want %q", w.String(), want)
	}
}

func TestOpenLoopInductionVars(t *testing.T) {
	w := New("  ")
	w.OpenLoop("let", 0, "n")
	w.OpenLoop("let", 1, "m")
	w.WriteLine("arr[i][j] = new T();")
	w.CloseBlock()
	w.CloseBlock()

	want := "for (let i = 0; i < n; i++) {\n" +
		"  for (let j = 0; j < m; j++) {\n" +
		"    arr[i][j] = new T();\n" +
		"  }\n" +
		"}\n"
	if w.String() != want {
		t.Errorf("got %q, want %q", w.String(), want)
	}
}

func TestInductionVarBeyondAlphabet(t *testing.T) {
	if got := InductionVar(6); got != "i6" {
		t.Errorf("InductionVar(6) = %q, want i6", got)
	}
}
