// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wangtaoking1/cli-base/cmdline"
	"github.com/wangtaoking1/cli-base/errors"
)

// RunFunc defines the startup callback of an application or command. ctx
// carries a logger named after the command, see log.From.
type RunFunc func(ctx context.Context, values *cmdline.Values) error

// reservedFlag is a flag registered by the shell itself.
type reservedFlag struct {
	long  string
	short rune
}

var (
	helpFlag   = reservedFlag{long: "help", short: 'h'}
	configFlag = reservedFlag{long: configFlagName, short: 'c'}
)

// bindOptions registers opts on the flags of cmd. Options which cannot be
// grouped, or which take the name of a reserved flag, make the command fail
// before it runs.
func bindOptions(cmd *cobra.Command, opts []cmdline.Option, reserved ...reservedFlag) *cmdline.Values {
	errs := checkReserved(opts, reserved)
	set, err := cmdline.NewSet(opts...)
	if err != nil {
		errs = append(errs, err)
	}

	if agg := errors.NewAggregate(errs); agg != nil {
		cmd.PreRunE = func(*cobra.Command, []string) error {
			return agg
		}
		set, _ = cmdline.NewSet()
	}

	return set.AddToFlagSet(cmd.Flags())
}

func checkReserved(opts []cmdline.Option, reserved []reservedFlag) []error {
	var errs []error
	for _, opt := range opts {
		for _, r := range reserved {
			if opt.LongName() == r.long {
				errs = append(errs, errors.Errorf("option --%s is reserved", r.long))
			}
			if opt.HasShortName() && opt.ShortName() == r.short {
				errs = append(errs, errors.Errorf("short name -%c of --%s is reserved by --%s",
					r.short, opt.LongName(), r.long))
			}
		}
	}

	return errs
}
