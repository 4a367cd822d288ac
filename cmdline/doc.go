// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package cmdline describes command-line options.
//
// An Option is an immutable descriptor: a long name, an optional one-letter
// short name, a description and, for options which take a value, the name of
// that value plus an optional default. Three kinds of options exist:
//
//   - BoolOption: a flag, its presence is the value.
//   - StringOption: takes any string.
//   - PathOption: takes a filesystem path, converted to an fs.Path.
//
// Only options taking a value implement ArgOption and thus Validate. A value
// rejected by Validate yields a *ValueError, which is the only error meant to
// be shown to users. Misusing a descriptor (asking a flag for its argument
// name, reading a short name that does not exist, ...) is a programming error
// and panics with a *sanity.Violation.
//
// Options are parsed by an external parser; Set.AddToFlagSet plugs a group of
// descriptors into a pflag.FlagSet.
package cmdline
