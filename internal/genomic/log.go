package genomic

import "go.uber.org/zap"

// logger carries pipeline progress. Quiet by default so library callers
// aren't spammed; the CLI turns it on with --verbose.
var logger = zap.NewNop().Sugar()

// Verbose replaces the package logger with one that writes progress
// to stderr.
func Verbose() {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	l, err := cfg.Build()
	if err != nil {
		return
	}
	logger = l.Sugar()
}
