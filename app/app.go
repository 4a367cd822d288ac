// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wangtaoking1/cli-base/cmdline"
	"github.com/wangtaoking1/cli-base/errors"
	"github.com/wangtaoking1/cli-base/log"
)

// App is the Interface of application.
type App interface {
	// Run launch the application.
	Run()

	// Command returns cobra command instance inside the application.
	Command() *cobra.Command
}

// app is the main structure of a cli application.
// It is recommended that an app be created with the app.NewApp() function.
type app struct {
	name        string
	short       string
	description string
	options     []cmdline.Option
	runFunc     RunFunc
	silence     bool
	noConfig    bool
	commands    []Command
	args        cobra.PositionalArgs
	cfgFile     string
	values      *cmdline.Values
	cmd         *cobra.Command
}

var _ App = (*app)(nil)

// Option defines optional parameters for initializing the application structure.
type Option func(*app)

// WithOptions declares the command-line options of the application.
func WithOptions(opts ...cmdline.Option) Option {
	return func(a *app) {
		a.options = append(a.options, opts...)
	}
}

// WithRunFunc is used to set the application startup callback function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *app) {
		a.runFunc = run
	}
}

// WithDescription is used to set the description of the application.
func WithDescription(desc string) Option {
	return func(a *app) {
		a.description = desc
	}
}

// WithSilence sets the application to silent mode, in which the program startup
// information is not logged.
func WithSilence() Option {
	return func(a *app) {
		a.silence = true
	}
}

// WithNoConfig set the application does not provide config flag.
func WithNoConfig() Option {
	return func(a *app) {
		a.noConfig = true
	}
}

// WithValidArgs set the validation function to valid non-flag arguments.
func WithValidArgs(args cobra.PositionalArgs) Option {
	return func(a *app) {
		a.args = args
	}
}

// WithDefaultValidArgs set default validation function to valid non-flag arguments.
func WithDefaultValidArgs() Option {
	return func(a *app) {
		a.args = func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if len(arg) > 0 {
					return fmt.Errorf("%q does not take any arguments, got %q", cmd.CommandPath(), args)
				}
			}

			return nil
		}
	}
}

// WithCommands set children commands for thie application.
func WithCommands(cmds ...Command) Option {
	return func(a *app) {
		a.commands = append(a.commands, cmds...)
	}
}

// NewApp creates a new application instance based on the given application name,
// binary name, and other options.
func NewApp(name string, short string, opts ...Option) App {
	a := &app{
		name:  name,
		short: short,
	}

	for _, o := range opts {
		o(a)
	}

	a.buildCommand()

	return a
}

func (a *app) buildCommand() {
	cmd := &cobra.Command{
		Use:   FormatExecName(a.name),
		Short: a.short,
		Long:  a.description,
		// stop printing usage when the command errors
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          a.args,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	cmd.Flags().SortFlags = true

	// add children commands
	for _, c := range a.commands {
		cmd.AddCommand(c.Command())
	}
	if a.runFunc != nil {
		cmd.RunE = a.runCommand
	}

	reserved := []reservedFlag{helpFlag}
	if !a.noConfig {
		reserved = append(reserved, configFlag)
	}
	a.values = bindOptions(cmd, a.options, reserved...)
	if !a.noConfig {
		addConfigFlag(&a.cfgFile, cmd.Flags())
	}
	addHelpFlag(a.name, cmd.Flags())

	a.cmd = cmd
}

func (a *app) Run() {
	if err := a.cmd.Execute(); err != nil {
		fmt.Printf("%v %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func (a *app) Command() *cobra.Command {
	return a.cmd
}

func (a *app) runCommand(cmd *cobra.Command, args []string) error {
	if !a.noConfig {
		cfg, err := loadConfig(a.name, a.cfgFile)
		if err != nil {
			return err
		}
		if err := applyConfig(cfg, a.options, a.values); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		if !a.silence && cfg.ConfigFileUsed() != "" {
			log.Infof("%v Config file used: `%s`", progressMessage, cfg.ConfigFileUsed())
		}
	}

	ctx := log.WithContext(cmd.Context(), "app", a.name)
	if !a.silence {
		log.From(ctx).Infof("%v Starting %s ...", progressMessage, a.short)
		logOptions(ctx, a.options, a.values)
	}

	return a.runFunc(ctx, a.values)
}
