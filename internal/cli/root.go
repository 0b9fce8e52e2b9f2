// Package cli implements the CLI driver's command tree: a persistent
// --verbose flag and version-template pattern, and a
// read-JSON → generate → write-file command shape, since this core
// consumes an already-resolved program rather than lexing or parsing
// source itself.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/citogo/internal/logging"

	_ "github.com/cwbudde/citogo/internal/backend/javascript"
	_ "github.com/cwbudde/citogo/internal/backend/stub"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "cito",
	Short: "Translate resolved programs to idiomatic target-language source",
	Long: `cito is a source-to-source translator for a small statically typed
imperative language. It consumes an already-resolved program (emitted by
an external lexer/parser/semantic-analyzer pipeline as a JSON document)
and emits idiomatic source in one of several target languages.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
}

// Execute runs the root command and returns its exit code: 0 on
// success, 1 on a usage or translation error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose operational logging")
}
