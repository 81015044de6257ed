// Package logger provides the structured logger used by the quantity generator. The quantity and
// measures packages never log.
package logger

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging interface of the generator, implemented by go.uber.org/zap.SugaredLogger.
//
// Loggers should be injected and usually Named: e.g. lggr.Named("render")
//
// Tests should use a [Test] or [TestObserved] logger, with [New] being reserved for the CLI.
//
// Levels
//   - Error: generation failed. Example: a table failed validation
//   - Warn: generation succeeded but something looks off. Example: a generated file was removed
//   - Info: one line per run step. Example: loaded a table, wrote the files
//   - Debug: one line per quantity or file
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string
	// Named returns a child logger with name appended to the name of this one.
	Named(name string) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

// Encodings accepted by Config.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config configures a Logger built by [Config.New].
type Config struct {
	Level    zapcore.Level
	Encoding string // EncodingConsole or EncodingJSON, defaults to EncodingConsole
}

// ParseConfig returns the Config for the level and encoding names given on the command line.
func ParseConfig(level, encoding string) (Config, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return Config{}, err
	}

	switch encoding {
	case "", EncodingConsole, EncodingJSON:
	default:
		return Config{}, fmt.Errorf("unrecognized log encoding: %q", encoding)
	}

	return Config{Level: lvl, Encoding: encoding}, nil
}

var defaultConfig = Config{Level: zapcore.InfoLevel}

// New returns a new Logger with the default configuration.
func New() (Logger, error) { return defaultConfig.New() }

// New returns a new Logger for Config.
func (c Config) New() (Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level.SetLevel(c.Level)
		if c.Encoding != "" {
			cfg.Encoding = c.Encoding
		}
	})
}

// NewWith returns a new Logger from a modified [zap.Config]. The base config writes
// human-readable entries to stderr.
func NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfgFn(&cfg)

	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// Test returns a new test Logger for tb.
func Test(tb testing.TB) Logger {
	tb.Helper()

	return &logger{zaptest.NewLogger(tb, zaptest.Level(zapcore.DebugLevel)).Sugar()}
}

// TestObserved returns a new test Logger for tb and ObservedLogs at the given Level.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()

	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return &logger{zaptest.NewLogger(tb, zaptest.WrapOptions(observe)).Sugar()}, logs
}

// Nop returns a no-op Logger.
func Nop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}
