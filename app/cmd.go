// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/spf13/cobra"

	"github.com/wangtaoking1/cli-base/cmdline"
	"github.com/wangtaoking1/cli-base/log"
)

// Command is the Interface of command.
type Command interface {
	// AddCommands add children commands to the Command.
	AddCommands(cmds ...Command)
	// Command returns the cobra command instance of the Command.
	Command() *cobra.Command
}

// command is a sub command structure of an application.
// It is recommended that a command be created with the app.NewCommand()
// function.
type command struct {
	name        string
	short       string
	description string
	options     []cmdline.Option
	commands    []Command
	runFunc     RunFunc
}

// CommandOption defines optional parameters for initializing the command
// structure.
type CommandOption func(*command)

// WithCmdOptions declares the command-line options of the command.
func WithCmdOptions(opts ...cmdline.Option) CommandOption {
	return func(c *command) {
		c.options = append(c.options, opts...)
	}
}

// WithCmdDescription is used to set the description of the command.
func WithCmdDescription(desc string) CommandOption {
	return func(c *command) {
		c.description = desc
	}
}

// WithCmdRunFunc is used to set the application's command startup callback
// function option.
func WithCmdRunFunc(run RunFunc) CommandOption {
	return func(c *command) {
		c.runFunc = run
	}
}

// NewCommand creates a new sub command instance based on the given command name
// and other options.
func NewCommand(name string, short string, opts ...CommandOption) Command {
	c := &command{
		name:  name,
		short: short,
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

func (c *command) AddCommands(cmds ...Command) {
	c.commands = append(c.commands, cmds...)
}

func (c *command) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.name,
		Short: c.short,
		Long:  c.description,
	}
	cmd.Flags().SortFlags = false

	for _, sub := range c.commands {
		cmd.AddCommand(sub.Command())
	}

	values := bindOptions(cmd, c.options, helpFlag)
	if c.runFunc != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			ctx := log.WithContext(cmd.Context(), "command", cmd.CommandPath())
			return c.runFunc(ctx, values)
		}
	}
	addHelpFlag(c.name, cmd.Flags())

	return cmd
}
