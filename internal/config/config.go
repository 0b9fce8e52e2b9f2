// Package config parses the declarative project manifest (cito.yaml)
// so one invocation can drive several (namespace, defines, resource
// dirs, output) combinations instead of repeating flags. Parsed with
// github.com/goccy/go-yaml.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Target is one (language, output, namespace) combination a manifest
// can describe, mirroring the generate command's CLI flags.
type Target struct {
	Language  string   `yaml:"language"`
	Output    string   `yaml:"output"`
	Namespace string   `yaml:"namespace,omitempty"`
	Defines   []string `yaml:"defines,omitempty"`
}

// Project is the root of a cito.yaml manifest.
type Project struct {
	ResourceDirs []string `yaml:"resourceDirs,omitempty"`
	References   []string `yaml:"references,omitempty"`
	Targets      []Target `yaml:"targets"`
}

// Load reads and parses a manifest file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks that every target names a language and an output
// path, the two fields with no sensible default.
func (p *Project) Validate() error {
	if len(p.Targets) == 0 {
		return fmt.Errorf("manifest must declare at least one target")
	}
	for i, t := range p.Targets {
		if t.Language == "" {
			return fmt.Errorf("target %d: language is required", i)
		}
		if t.Output == "" {
			return fmt.Errorf("target %d: output is required", i)
		}
	}
	return nil
}

// Merge overlays CLI-flag overrides onto a single target, field by
// field: a non-zero language, output, or namespace override wins over
// the manifest value, and override defines are appended after the
// manifest's defines.
func (t Target) Merge(language, output, namespace string, defines []string) Target {
	out := t
	if language != "" {
		out.Language = language
	}
	if output != "" {
		out.Output = output
	}
	if namespace != "" {
		out.Namespace = namespace
	}
	if len(defines) > 0 {
		out.Defines = append(append([]string{}, out.Defines...), defines...)
	}
	return out
}
