// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package log is the structured logger used across the module. It wraps a
// process-wide zap logger which can be rebuilt with InitLogger.
package log

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu            sync.RWMutex
	defaultLogger = mustNewLogger(false)
)

// InitLogger rebuilds the default logger. A debug logger is human readable and
// enables the debug level, otherwise JSON entries at info level are emitted.
func InitLogger(debug bool) error {
	l, err := newLogger(debug)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l

	return nil
}

func mustNewLogger(debug bool) *zap.Logger {
	l, err := newLogger(debug)
	if err != nil {
		panic(err)
	}

	return l
}

func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.NameKey = "logger"
	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.EncoderConfig.EncodeTime = timeEncoder
	cfg.EncoderConfig.EncodeDuration = milliSecondsDurationEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build(zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func milliSecondsDurationEncoder(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendFloat64(float64(d) / float64(time.Millisecond))
}

// Logger returns the default zap logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return defaultLogger
}

// SugarLogger returns the sugared form of the default logger.
func SugarLogger() *zap.SugaredLogger {
	return Logger().Sugar()
}

// Flush flushes any buffered log entries. Applications should take care to call before exiting.
func Flush() { _ = Logger().Sync() }

// Debug method output debug level log.
func Debug(args ...interface{}) { SugarLogger().Debug(args...) }

// Debugf method output debug level log.
func Debugf(format string, v ...interface{}) { SugarLogger().Debugf(format, v...) }

// Debugw method output debug level log with key-value pairs.
func Debugw(msg string, keysAndValues ...interface{}) { SugarLogger().Debugw(msg, keysAndValues...) }

// Info method output info level log.
func Info(args ...interface{}) { SugarLogger().Info(args...) }

// Infof method output info level log.
func Infof(format string, v ...interface{}) { SugarLogger().Infof(format, v...) }

// Infow method output info level log with key-value pairs.
func Infow(msg string, keysAndValues ...interface{}) { SugarLogger().Infow(msg, keysAndValues...) }

// Warn method output warning level log.
func Warn(args ...interface{}) { SugarLogger().Warn(args...) }

// Warnf method output warning level log.
func Warnf(format string, v ...interface{}) { SugarLogger().Warnf(format, v...) }

// Warnw method output warning level log with key-value pairs.
func Warnw(msg string, keysAndValues ...interface{}) { SugarLogger().Warnw(msg, keysAndValues...) }

// Error method output error level log.
func Error(args ...interface{}) { SugarLogger().Error(args...) }

// Errorf method output error level log.
func Errorf(format string, v ...interface{}) { SugarLogger().Errorf(format, v...) }

// Errorw method output error level log with key-value pairs.
func Errorw(msg string, keysAndValues ...interface{}) { SugarLogger().Errorw(msg, keysAndValues...) }
