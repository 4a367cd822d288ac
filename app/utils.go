// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/wangtaoking1/cli-base/cmdline"
	"github.com/wangtaoking1/cli-base/log"
)

var progressMessage = color.GreenString("==>")

// FormatExecName is formatted as an executable file name under different
// operating systems according to the given name.
func FormatExecName(name string) string {
	// Make case-insensitive and strip executable suffix if present
	if runtime.GOOS == "windows" {
		name = strings.ToLower(name)
		name = strings.TrimSuffix(name, ".exe")
	}

	return name
}

// addHelpFlag adds help flag to the specified FlagSet object.
func addHelpFlag(name string, fs *pflag.FlagSet) {
	fs.BoolP("help", "h", false, fmt.Sprintf("Help for %s.", name))
}

// logOptions logs the effective value of every option.
func logOptions(ctx context.Context, opts []cmdline.Option, values *cmdline.Values) {
	logger := log.From(ctx)
	for _, opt := range opts {
		name := opt.LongName()
		switch opt.(type) {
		case *cmdline.BoolOption:
			logger.Infow("Option", "name", opt.FormatLongName(), "value", values.Bool(name))
		case *cmdline.PathOption:
			if p, ok := values.Path(name); ok {
				logger.Infow("Option", "name", opt.FormatLongName(), "value", p.String())
			}
		case *cmdline.StringOption:
			if s, ok := values.String(name); ok {
				logger.Infow("Option", "name", opt.FormatLongName(), "value", s)
			}
		}
	}
}
