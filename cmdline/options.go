// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"unicode"

	"github.com/wangtaoking1/cli-base/fs"
	"github.com/wangtaoking1/cli-base/log"
	"github.com/wangtaoking1/cli-base/sanity"
)

// Option is the description of a command-line option.
type Option interface {
	// HasShortName reports whether the option has a one-letter name.
	HasShortName() bool
	// ShortName returns the one-letter name. HasShortName must be true.
	ShortName() rune
	LongName() string
	Description() string

	// NeedsArg reports whether the option takes a value.
	NeedsArg() bool
	// ArgName returns the documentation name of the value. NeedsArg must be
	// true.
	ArgName() string
	// HasDefaultValue reports whether a default was declared. NeedsArg must
	// be true.
	HasDefaultValue() bool
	// DefaultValue returns the default. HasDefaultValue must be true.
	DefaultValue() string

	// FormatShortName renders "-X" or "-X <arg>". HasShortName must be true.
	FormatShortName() string
	// FormatLongName renders "--name" or "--name=<arg>".
	FormatLongName() string
}

// ArgOption is an Option which takes a value.
type ArgOption interface {
	Option
	// Validate checks raw as provided by the user and returns a *ValueError
	// if it is not acceptable.
	Validate(raw string) error
}

// Converter is an ArgOption which turns validated values into T.
type Converter[T any] interface {
	ArgOption
	// Convert converts raw, which must have passed Validate.
	Convert(raw string) T
}

// ArgOptionFunc defines optional parameters of options taking a value.
type ArgOptionFunc func(*baseOption)

// WithDefault sets the value used when the option is not given.
func WithDefault(value string) ArgOptionFunc {
	return func(o *baseOption) {
		o.hasDefaultValue = true
		o.defaultValue = value
	}
}

type baseOption struct {
	shortName       rune
	longName        string
	description     string
	argName         string
	hasDefaultValue bool
	defaultValue    string
}

func newBaseOption(shortName rune, longName, description, argName string, opts ...ArgOptionFunc) baseOption {
	sanity.Pre(longName != "", "Options must have a long name")

	o := baseOption{
		shortName:   shortName,
		longName:    longName,
		description: description,
		argName:     argName,
	}
	for _, fn := range opts {
		fn(&o)
	}
	sanity.Inv(!o.hasDefaultValue || o.argName != "",
		"Option --%s has a default value but takes no argument", longName)

	return o
}

func newShortBaseOption(shortName rune, longName, description, argName string, opts ...ArgOptionFunc) baseOption {
	sanity.Inv(shortName != 0, "Short name of option --%s cannot be empty", longName)
	sanity.Inv(shortName > 0 && shortName <= unicode.MaxASCII, "Short name of option --%s must be an ASCII character", longName)

	return newBaseOption(shortName, longName, description, argName, opts...)
}

func (o *baseOption) HasShortName() bool {
	return o.shortName != 0
}

func (o *baseOption) ShortName() rune {
	sanity.Pre(o.HasShortName(), "Option --%s has no short name", o.longName)

	return o.shortName
}

func (o *baseOption) LongName() string {
	return o.longName
}

func (o *baseOption) Description() string {
	return o.description
}

func (o *baseOption) NeedsArg() bool {
	return o.argName != ""
}

func (o *baseOption) ArgName() string {
	sanity.Pre(o.NeedsArg(), "Option --%s takes no argument", o.longName)

	return o.argName
}

func (o *baseOption) HasDefaultValue() bool {
	sanity.Pre(o.NeedsArg(), "Option --%s takes no argument", o.longName)

	return o.hasDefaultValue
}

func (o *baseOption) DefaultValue() string {
	sanity.Pre(o.HasDefaultValue(), "Option --%s has no default value", o.longName)

	return o.defaultValue
}

func (o *baseOption) FormatShortName() string {
	sanity.Pre(o.HasShortName(), "Option --%s has no short name", o.longName)

	if o.NeedsArg() {
		return fmt.Sprintf("-%c %s", o.ShortName(), o.ArgName())
	}

	return fmt.Sprintf("-%c", o.ShortName())
}

func (o *baseOption) FormatLongName() string {
	if o.NeedsArg() {
		return fmt.Sprintf("--%s=%s", o.LongName(), o.ArgName())
	}

	return fmt.Sprintf("--%s", o.LongName())
}

// checkDefault ensures a declared default is a legal value of opt.
func checkDefault(opt ArgOption) {
	if !opt.HasDefaultValue() {
		return
	}
	err := opt.Validate(opt.DefaultValue())
	sanity.Inv(err == nil, "Default value of option --%s is invalid: %v", opt.LongName(), err)
}

// Validate checks raw against opt. opt must take an argument: calling it on a
// flag is a programming error.
func Validate(opt Option, raw string) error {
	argOpt, ok := opt.(ArgOption)
	if !ok || !opt.NeedsArg() {
		sanity.Unreachable("Option does not support an argument")
	}

	return argOpt.Validate(raw)
}

// BoolOption is a flag: an option which takes no argument.
type BoolOption struct {
	baseOption
}

var _ Option = (*BoolOption)(nil)

// NewBoolOption creates a flag with both a short and a long name.
func NewBoolOption(shortName rune, longName, description string) *BoolOption {
	return &BoolOption{baseOption: newShortBaseOption(shortName, longName, description, "")}
}

// NewLongBoolOption creates a flag with a long name only.
func NewLongBoolOption(longName, description string) *BoolOption {
	return &BoolOption{baseOption: newBaseOption(0, longName, description, "")}
}

// StringOption takes an arbitrary string.
type StringOption struct {
	baseOption
}

var _ Converter[string] = (*StringOption)(nil)

// NewStringOption creates a string option with both a short and a long name.
func NewStringOption(shortName rune, longName, description, argName string, opts ...ArgOptionFunc) *StringOption {
	sanity.Pre(argName != "", "String option --%s needs an argument name", longName)

	o := &StringOption{baseOption: newShortBaseOption(shortName, longName, description, argName, opts...)}
	checkDefault(o)

	return o
}

// NewLongStringOption creates a string option with a long name only.
func NewLongStringOption(longName, description, argName string, opts ...ArgOptionFunc) *StringOption {
	sanity.Pre(argName != "", "String option --%s needs an argument name", longName)

	o := &StringOption{baseOption: newBaseOption(0, longName, description, argName, opts...)}
	checkDefault(o)

	return o
}

// Validate accepts every string.
func (o *StringOption) Validate(raw string) error {
	return nil
}

// Convert returns raw unchanged.
func (o *StringOption) Convert(raw string) string {
	return raw
}

// PathOption takes a filesystem path.
type PathOption struct {
	baseOption
}

var _ Converter[fs.Path] = (*PathOption)(nil)

// NewPathOption creates a path option with both a short and a long name.
func NewPathOption(shortName rune, longName, description, argName string, opts ...ArgOptionFunc) *PathOption {
	sanity.Pre(argName != "", "Path option --%s needs an argument name", longName)

	o := &PathOption{baseOption: newShortBaseOption(shortName, longName, description, argName, opts...)}
	checkDefault(o)

	return o
}

// NewLongPathOption creates a path option with a long name only.
func NewLongPathOption(longName, description, argName string, opts ...ArgOptionFunc) *PathOption {
	sanity.Pre(argName != "", "Path option --%s needs an argument name", longName)

	o := &PathOption{baseOption: newBaseOption(0, longName, description, argName, opts...)}
	checkDefault(o)

	return o
}

// Validate ensures raw is a well-formed path.
func (o *PathOption) Validate(raw string) error {
	if _, err := fs.NewPath(raw); err != nil {
		log.Debugw("Rejected option argument", "option", o.LongName(), "value", raw, "reason", err.Error())

		return newValueError(o, raw, err)
	}

	return nil
}

// Convert parses raw, which must have passed Validate, into a path.
func (o *PathOption) Convert(raw string) fs.Path {
	p, err := fs.NewPath(raw)
	if err != nil {
		sanity.Pre(false, "Raw value '%s' for path option not properly validated: %v", raw, err)
	}

	return p
}
