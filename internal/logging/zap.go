package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap adapts a zap.SugaredLogger to the Logger contract. Progress messages map to info level; zap has no custom
// levels and the distinction only matters to the host platform's sink.
type Zap struct {
	Sugared *zap.SugaredLogger
}

// Debugf implements Logger
func (z Zap) Debugf(format string, a ...any) {
	z.Sugared.Debugf(format, a...)
}

// Progressf implements Logger
func (z Zap) Progressf(format string, a ...any) {
	z.Sugared.Infof(format, a...)
}

// Infof implements Logger
func (z Zap) Infof(format string, a ...any) {
	z.Sugared.Infof(format, a...)
}

// Warnf implements Logger
func (z Zap) Warnf(format string, a ...any) {
	z.Sugared.Warnf(format, a...)
}

// Errorf implements Logger
func (z Zap) Errorf(format string, a ...any) {
	z.Sugared.Errorf(format, a...)
}

// Failuref implements Logger
func (z Zap) Failuref(escalation Escalation, format string, a ...any) {
	if escalation == EscalateFailure {
		z.Sugared.Errorf(format, a...)
		return
	}

	z.Sugared.Infof(format, a...)
}

// NewProductionLogger returns a logger that prints Debug, Info, and Warn messages to stdout and the rest to stderr.
func NewProductionLogger() Zap {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		MessageKey: "M",
		LevelKey:   "L",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			// Anything other than "info" logs will have a capitalized level prefix.
			if lvl != zapcore.InfoLevel {
				zapcore.CapitalColorLevelEncoder(lvl, enc)
			}
		},
	})

	infoLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zapcore.InfoLevel
	})

	errorLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return !infoLevels(level) && level != zapcore.DebugLevel
	})

	return Zap{Sugared: zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), infoLevels),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), errorLevels),
	)).Sugar()}
}

// NewDebugLogger is similar to our production logger, however it also includes debug output & stacktraces
func NewDebugLogger() Zap {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		LevelKey:      "L",
		MessageKey:    "M",
		NameKey:       "N",
		StacktraceKey: "S",
		TimeKey:       "T",
		EncodeLevel:   zapcore.CapitalColorLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
	})

	infoLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zapcore.InfoLevel
	})

	errorLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return !infoLevels(level)
	})

	return Zap{Sugared: zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), infoLevels),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), errorLevels),
	)).WithOptions(
		zap.Development(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Sugar()}
}
