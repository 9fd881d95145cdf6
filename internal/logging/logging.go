// Package logging builds the application's zap logger.
//
// The TUI owns the terminal, so by default logs go to a rotating file
// managed by lumberjack. The CLI may log to stderr instead.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output selects where log entries are written.
type Output string

const (
	OutputFile   Output = "file"
	OutputStderr Output = "stderr"
	OutputBoth   Output = "both"
	OutputNone   Output = "none"
)

// Config controls logger construction.
type Config struct {
	Level      string
	Format     string // json or console
	Output     Output
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Output == OutputNone {
		return zap.NewNop(), nil
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "msg"
	encoderConfig.LevelKey = "level"

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cores []zapcore.Core

	if cfg.Output == OutputStderr || cfg.Output == OutputBoth {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level))
	}

	if cfg.Output == OutputFile || cfg.Output == OutputBoth || cfg.Output == "" {
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("log file path is empty")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}

		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("unknown log output %q", cfg.Output)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
