// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Disabled is the File value that discards all log output.
const Disabled = "off"

// Config selects the log level, encoding and destination file.
type Config struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
	// File receives TUI logs. Empty means DefaultFile(); Disabled
	// discards them.
	File string `koanf:"file"`
}

// DefaultConfig logs info and above in console format.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// DefaultFile returns $XDG_STATE_HOME/weakspot/weakspot.log, falling back
// to ~/.local/state.
func DefaultFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "weakspot.log")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "weakspot", "weakspot.log")
}

// New builds a logger writing to w.
func New(cfg Config, w zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	core := zapcore.NewCore(newEncoder(cfg.Format), w, level)
	return zap.New(core), nil
}

// NewStderr builds the logger used by CLI subcommands.
func NewStderr(cfg Config) (*zap.Logger, error) {
	return New(cfg, zapcore.Lock(os.Stderr))
}

// NewFile builds the logger used while the TUI owns the terminal. The
// returned close func flushes and closes the file.
func NewFile(cfg Config) (*zap.Logger, func() error, error) {
	if cfg.File == Disabled {
		return zap.NewNop(), func() error { return nil }, nil
	}

	path := cfg.File
	if path == "" {
		path = DefaultFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(cfg, zapcore.AddSync(f))
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() error {
		_ = logger.Sync()
		return f.Close()
	}, nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	return zapcore.NewConsoleEncoder(encoderCfg)
}
