// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/wangtaoking1/cli-base/app"
	"github.com/wangtaoking1/cli-base/cmdline"
	"github.com/wangtaoking1/cli-base/fs"
	"github.com/wangtaoking1/cli-base/log"
)

func main() {
	defer log.Flush()

	application := app.NewApp("wctl",
		"w ctl",
		app.WithDescription("This is a w ctl just for test"),
		app.WithOptions(
			cmdline.NewBoolOption('v', "verbose", "Enable debug logging."),
			cmdline.NewPathOption('r', "root", "Directory to work in.", "dir", cmdline.WithDefault(".")),
			cmdline.NewLongStringOption("greeting", "Message to print.", "TEXT", cmdline.WithDefault("hello")),
		),
		app.WithDefaultValidArgs(),
		app.WithCommands(copyCommand()),
		app.WithRunFunc(run),
	)

	application.Run()
}

func run(ctx context.Context, values *cmdline.Values) error {
	if err := log.InitLogger(values.Bool("verbose")); err != nil {
		return err
	}

	root, _ := values.Path("root")
	greeting, _ := values.String("greeting")
	log.From(ctx).Infow(greeting, "root", root.String(), "leaf", root.LeafName())

	return nil
}

func copyCommand() app.Command {
	return app.NewCommand("copy",
		"copy sub command",
		app.WithCmdDescription("Show where a file would be copied"),
		app.WithCmdOptions(
			cmdline.NewPathOption('s', "source", "File to copy.", "path"),
			cmdline.NewPathOption('d', "dest", "Destination directory.", "dir", cmdline.WithDefault("/tmp")),
		),
		app.WithCmdRunFunc(func(ctx context.Context, values *cmdline.Values) error {
			src, ok := values.Path("source")
			if !ok {
				return cmdline.NewValueError("--source", "", "A source file is required")
			}
			leaf, err := fs.NewPath(src.LeafName())
			if err != nil {
				return err
			}
			if leaf.IsAbsolute() {
				return cmdline.NewValueError("--source", src.String(), "Cannot copy the root directory")
			}
			dest, _ := values.Path("dest")
			log.From(ctx).Infow("Copy", "from", src.String(), "to", dest.Join(leaf).String())

			return nil
		}),
	)
}
