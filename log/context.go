// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"

	"go.uber.org/zap"
)

type key int

const (
	logContextKey key = iota
)

// With returns a new logger with specified fields.
func With(args ...interface{}) *zap.SugaredLogger {
	return SugarLogger().With(args...)
}

// WithContext returns a copy of ctx carrying a logger which is the logger of
// ctx extended with args.
func WithContext(ctx context.Context, args ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := From(ctx)

	return context.WithValue(ctx, logContextKey, logger.With(args...))
}

// From returns the logger stored in ctx, or the default one.
func From(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(logContextKey).(*zap.SugaredLogger); ok {
			return logger
		}
	}

	return SugarLogger()
}
