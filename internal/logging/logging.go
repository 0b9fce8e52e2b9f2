// Package logging wires the CLI's operational diagnostics through zap: a
// development config with caller/stacktrace noise stripped under verbose
// mode, and a no-op logger otherwise, so a normal generation run stays
// silent while --verbose still surfaces per-target progress.
package logging

import "go.uber.org/zap"

// New builds the process logger. verbose selects a human-readable
// development encoding; otherwise every log call is a no-op so a normal
// generation run produces no incidental output on stderr.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cc := zap.NewDevelopmentConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.Encoding = "console"

	log, err := cc.Build()
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("module", "cito")), nil
}
