package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/citogo/internal/ast"
	"github.com/cwbudde/citogo/internal/backend"
	"github.com/cwbudde/citogo/internal/config"
	cierrors "github.com/cwbudde/citogo/internal/errors"
	"github.com/cwbudde/citogo/internal/loader"
	"github.com/cwbudde/citogo/internal/resource"
)

var (
	genLang       string
	genOutput     string
	genNamespace  string
	genDefines    []string
	genReferences []string
	genResDirs    []string
	genProject    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <program.json>",
	Short: "Generate target-language source from a resolved program",
	Long: `generate reads a resolved Program from a JSON document (the boundary
format standing in for an external lexer/parser/semantic-analyzer
pipeline) and writes translated source for one or more targets.

-l <target>   target backend name, inferred from -o's extension if absent
-o <file>     output path; comma-separated paths run one pass per target
-n <namespace> optional namespace/prefix string
-D <symbol>   preprocessor-style define, repeatable (recorded, reference-only)
-r <file>     reference-only input, repeatable (recorded, not read by the core)
-I <dir>      resource search directory, repeatable
--project     cito.yaml manifest driving several targets in one invocation`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genLang, "lang", "l", "", "target backend name")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (comma-separated for multiple passes)")
	generateCmd.Flags().StringVarP(&genNamespace, "namespace", "n", "", "namespace/prefix string")
	generateCmd.Flags().StringArrayVarP(&genDefines, "define", "D", nil, "preprocessor-style define (repeatable)")
	generateCmd.Flags().StringArrayVarP(&genReferences, "reference", "r", nil, "reference-only input file (repeatable)")
	generateCmd.Flags().StringArrayVarP(&genResDirs, "resource-dir", "I", nil, "resource search directory (repeatable)")
	generateCmd.Flags().StringVar(&genProject, "project", "", "cito.yaml project manifest")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	programPath := args[0]

	targets, resDirs, err := resolveTargets()
	if err != nil {
		return err
	}

	program, err := loader.Load(programPath)
	if err != nil {
		return err
	}

	if len(resDirs) > 0 {
		loaded, err := resource.New(resDirs...).Load()
		if err != nil {
			return fmt.Errorf("load resources: %w", err)
		}
		if program.Resources == nil {
			program.Resources = loaded
		} else {
			for k, v := range loaded {
				if _, exists := program.Resources[k]; !exists {
					program.Resources[k] = v
				}
			}
		}
	}

	logger.Debug("generation starting",
		zap.String("program", programPath),
		zap.Int("targets", len(targets)),
		zap.Strings("references", genReferences),
	)

	for _, t := range targets {
		if err := generateOne(program, t); err != nil {
			return err
		}
	}

	return nil
}

// generateOne runs one (language, output, namespace) target through its
// backend, recovering the "unsupported construct" panic class into a
// normal error so a single bad construct terminates the pass cleanly
// with exit code 1 rather than a raw stack trace.
func generateOne(program *ast.Program, t config.Target) (err error) {
	lang := t.Language
	if lang == "" {
		lang = inferLanguage(t.Output)
	}

	factory, ok := backend.Get(lang)
	if !ok {
		return &backend.ErrUnknownBackend{Requested: lang}
	}
	be := factory()

	defer func() {
		if r := recover(); r != nil {
			if uc, ok := r.(*cierrors.UnsupportedConstruct); ok {
				err = uc
				return
			}
			panic(r)
		}
	}()

	f, createErr := os.Create(t.Output)
	if createErr != nil {
		return fmt.Errorf("open output %s: %w", t.Output, createErr)
	}
	defer f.Close()

	logger.Debug("writing target", zap.String("lang", lang), zap.String("output", t.Output), zap.String("namespace", t.Namespace))

	if writeErr := be.Write(f, program, t.Namespace); writeErr != nil {
		return fmt.Errorf("write %s: %w", t.Output, writeErr)
	}
	return nil
}

// inferLanguage picks a backend name from the output file's extension
// when -l is absent.
func inferLanguage(output string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	return ext
}

// resolveTargets builds the list of (language, output, namespace)
// passes to run: either from a --project manifest (overridden
// field-by-field by any CLI flags that were set), or synthesized
// straight from the CLI flags, splitting a comma-separated -o into one
// pass per output file.
func resolveTargets() ([]config.Target, []string, error) {
	if genProject != "" {
		proj, err := config.Load(genProject)
		if err != nil {
			return nil, nil, err
		}
		targets := make([]config.Target, len(proj.Targets))
		for i, t := range proj.Targets {
			targets[i] = t.Merge(genLang, genOutput, genNamespace, genDefines)
		}
		resDirs := append(append([]string{}, proj.ResourceDirs...), genResDirs...)
		return targets, resDirs, nil
	}

	if genOutput == "" {
		return nil, nil, fmt.Errorf("either --project or -o is required")
	}

	outputs := strings.Split(genOutput, ",")
	targets := make([]config.Target, len(outputs))
	for i, out := range outputs {
		targets[i] = config.Target{
			Language:  genLang,
			Output:    out,
			Namespace: genNamespace,
			Defines:   genDefines,
		}
	}
	return targets, genResDirs, nil
}
