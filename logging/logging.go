package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ericpoe/ask-a-tech/config"
)

// NewLogger creates the run log: one line per entry (timestamp, level, message, fields) appended
// to the configured log file and, if debug is set, echoed to stderr at DEBUG level.
func NewLogger(cfg config.Log, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level '%v' (%w)", cfg.Level, err)
	}

	outputs := []string{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0770); err != nil {
			return nil, err
		}

		outputs = append(outputs, cfg.File)
	}

	if debug {
		level = zapcore.DebugLevel
		outputs = append(outputs, "stderr")
	}

	if len(outputs) == 0 {
		outputs = append(outputs, "stderr")
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:       "message",
			LevelKey:         "level",
			TimeKey:          "ts",
			NameKey:          "logger",
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeDuration:   zapcore.StringDurationEncoder,
			ConsoleSeparator: "  ",
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}
