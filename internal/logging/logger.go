// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction
type Options struct {
	// Level is one of debug, info, warn, error
	Level string
	// Verbose forces debug level
	Verbose bool
	// OutputPath is a file path, "stderr" or "stdout"
	OutputPath string
}

// New builds a production zap logger.
// The TUI owns the terminal, so it passes the log file as OutputPath.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	output := opts.OutputPath
	if output == "" {
		output = "stderr"
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
