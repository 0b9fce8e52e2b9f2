package emitter

import "testing"

func TestWriteStringLiteralEscapesControlAndQuotes(t *testing.T) {
	w := New("")
	w.WriteStringLiteral("line1\n\"quoted\"", 0)
	want := `"line1\n\"quoted\""`
	if w.String() != want {
		t.Errorf("got %q, want %q", w.String(), want)
	}
}

func TestWriteStringLiteralBudgetEscapesBeyondLimit(t *testing.T) {
	w := New("")
	w.WriteStringLiteral("café", 1)
	want := `"café"`
	if w.String() != want {
		t.Errorf("got %q, want %q (é within budget of 1)", w.String(), want)
	}

	w2 := New("")
	w2.WriteStringLiteral("café", 0)
	want2 := "\"caf\\u00e9\""
	if w2.String() != want2 {
		t.Errorf("got %q, want %q (budget 0 escapes all non-ASCII)", w2.String(), want2)
	}
}

func TestWriteByteArrayLiteralWithWrapper(t *testing.T) {
	w := New("")
	w.WriteByteArrayLiteral([]byte{1, 2, 255}, "new Uint8Array")
	want := "new Uint8Array([1, 2, 255])"
	if w.String() != want {
		t.Errorf("got %q, want %q", w.String(), want)
	}
}

func TestWriteByteArrayLiteralBare(t *testing.T) {
	w := New("")
	w.WriteByteArrayLiteral([]byte{1, 2}, "")
	want := "[1, 2]"
	if w.String() != want {
		t.Errorf("got %q, want %q", w.String(), want)
	}
}
