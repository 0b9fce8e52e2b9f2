package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInferLanguageFromExtension(t *testing.T) {
	cases := []struct{ output, want string }{
		{"out/app.js", "js"},
		{"out/app.py", "py"},
		{"out/app", ""},
	}
	for _, c := range cases {
		if got := inferLanguage(c.output); got != c.want {
			t.Errorf("inferLanguage(%q) = %q, want %q", c.output, got, c.want)
		}
	}
}

// resetGenerateFlags clears the package-level flag vars resolveTargets
// reads, since they're normally populated by cobra.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	genLang, genOutput, genNamespace = "", "", ""
	genDefines, genReferences, genResDirs, genProject = nil, nil, nil, ""
}

func TestResolveTargetsFromFlagsSplitsCommaSeparatedOutput(t *testing.T) {
	resetGenerateFlags(t)
	genLang = "javascript"
	genOutput = "out/a.js,out/b.js"
	genNamespace = "App"

	targets, resDirs, err := resolveTargets()
	if err != nil {
		t.Fatalf("resolveTargets: %v", err)
	}
	if len(resDirs) != 0 {
		t.Errorf("resDirs = %v, want empty", resDirs)
	}
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}
	if targets[0].Output != "out/a.js" || targets[1].Output != "out/b.js" {
		t.Errorf("unexpected outputs: %+v", targets)
	}
	for _, tgt := range targets {
		if tgt.Language != "javascript" || tgt.Namespace != "App" {
			t.Errorf("unexpected target: %+v", tgt)
		}
	}
}

func TestResolveTargetsRequiresProjectOrOutput(t *testing.T) {
	resetGenerateFlags(t)
	if _, _, err := resolveTargets(); err == nil {
		t.Fatal("resolveTargets: want error when neither --project nor -o is set")
	}
}

func TestResolveTargetsFromProjectMergesFlagOverrides(t *testing.T) {
	resetGenerateFlags(t)

	dir := t.TempDir()
	manifest := filepath.Join(dir, "cito.yaml")
	err := os.WriteFile(manifest, []byte(`
resourceDirs:
  - assets
targets:
  - language: javascript
    output: out/app.js
    namespace: App
`), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	genProject = manifest
	genResDirs = []string{"extra"}

	targets, resDirs, err := resolveTargets()
	if err != nil {
		t.Fatalf("resolveTargets: %v", err)
	}
	if len(targets) != 1 || targets[0].Output != "out/app.js" {
		t.Fatalf("unexpected targets: %+v", targets)
	}
	if len(resDirs) != 2 || resDirs[0] != "assets" || resDirs[1] != "extra" {
		t.Errorf("resDirs = %v, want [assets extra]", resDirs)
	}
}
