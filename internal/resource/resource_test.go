package resource

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMangleName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"icons/app.png", "icons_app_png"},
		{"plain", "plain"},
		{"a b-c.d", "a_b_c_d"},
	}
	for _, c := range cases {
		if got := MangleName(c.in); got != c.want {
			t.Errorf("MangleName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoaderLoadsBytesVerbatim(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "icons"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "icons", "app.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := New(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if string(got["readme_txt"]) != "hello" {
		t.Errorf("readme_txt = %q, want %q", got["readme_txt"], "hello")
	}
	png, ok := got["icons_app_png"]
	if !ok || len(png) != 4 || png[0] != 0x89 {
		t.Errorf("icons_app_png = %v, want the 4-byte PNG header verbatim", png)
	}
}

func TestLoaderFirstDirWins(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(first, "shared.txt"), []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(second, "shared.txt"), []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := New(first, second).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got["shared_txt"]) != "first" {
		t.Errorf("shared_txt = %q, want %q (first search dir wins)", got["shared_txt"], "first")
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string][]byte{"b": nil, "a": nil, "c": nil})
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("SortedKeys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("SortedKeys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
