package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "cito.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
resourceDirs:
  - assets
targets:
  - language: javascript
    output: out/app.js
    namespace: App
    defines:
      - DEBUG
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Targets) != 1 {
		t.Fatalf("got %d targets, want 1", len(p.Targets))
	}
	tgt := p.Targets[0]
	if tgt.Language != "javascript" || tgt.Output != "out/app.js" || tgt.Namespace != "App" {
		t.Errorf("unexpected target: %+v", tgt)
	}
	if len(tgt.Defines) != 1 || tgt.Defines[0] != "DEBUG" {
		t.Errorf("unexpected defines: %v", tgt.Defines)
	}
	if len(p.ResourceDirs) != 1 || p.ResourceDirs[0] != "assets" {
		t.Errorf("unexpected resourceDirs: %v", p.ResourceDirs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load: want error for missing manifest, got nil")
	}
}

func TestValidateRejectsEmptyTargets(t *testing.T) {
	p := &Project{}
	if err := p.Validate(); err == nil {
		t.Fatal("Validate: want error for manifest with no targets")
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		target Target
	}{
		{"no language", Target{Output: "out.js"}},
		{"no output", Target{Language: "javascript"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Project{Targets: []Target{c.target}}
			if err := p.Validate(); err == nil {
				t.Errorf("Validate: want error for %+v", c.target)
			}
		})
	}
}

func TestTargetMergeOverridesFieldByField(t *testing.T) {
	base := Target{Language: "javascript", Output: "out/app.js", Namespace: "App", Defines: []string{"A"}}

	merged := base.Merge("", "out/other.js", "", []string{"B"})
	if merged.Language != "javascript" {
		t.Errorf("Language = %q, want unchanged %q", merged.Language, base.Language)
	}
	if merged.Output != "out/other.js" {
		t.Errorf("Output = %q, want override applied", merged.Output)
	}
	if merged.Namespace != "App" {
		t.Errorf("Namespace = %q, want unchanged %q", merged.Namespace, base.Namespace)
	}
	if len(merged.Defines) != 2 || merged.Defines[0] != "A" || merged.Defines[1] != "B" {
		t.Errorf("Defines = %v, want appended [A B]", merged.Defines)
	}

	// base must be untouched by Merge (value receiver, fresh Defines backing array).
	if len(base.Defines) != 1 {
		t.Errorf("Merge mutated receiver's Defines: %v", base.Defines)
	}
}
