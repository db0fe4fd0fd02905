// Package logger builds the zap logger. The terminal belongs to the UI, so logs
// only ever go to a file; without one the logger discards everything.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultFile is used when debug logging is requested without a file
	DefaultFile = "logs/fps-proto.log"

	// maxLogSize triggers rotation of an existing log on start
	maxLogSize = 10 * 1024 * 1024
)

// Options selects the log destination and encoding
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	File   string

	// Debug forces file logging at debug level
	Debug bool
}

// New returns the logger and a closer that flushes and closes the file.
// With no file and no debug flag the logger is a no-op.
func New(opts Options) (*zap.Logger, func(), error) {
	path := opts.File
	if path == "" {
		if !opts.Debug {
			return zap.NewNop(), func() {}, nil
		}
		path = DefaultFile
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	f, err := openRotated(path)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(newEncoder(opts.Format), zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	closer := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closer, nil
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// openRotated opens path for append, first moving aside a file larger than maxLogSize
func openRotated(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := strings.TrimSuffix(path, ext) + "-" + time.Now().Format("20060102-150405") + ext
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
