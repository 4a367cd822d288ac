// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cmdline

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/wangtaoking1/cli-base/fs"
	"github.com/wangtaoking1/cli-base/sanity"
)

// argValue adapts an ArgOption to pflag.Value. Values are validated when set.
type argValue struct {
	opt      ArgOption
	raw      string
	provided bool
}

var _ pflag.Value = (*argValue)(nil)

func (v *argValue) String() string {
	return v.raw
}

func (v *argValue) Set(raw string) error {
	if err := v.opt.Validate(raw); err != nil {
		return err
	}
	v.raw = raw
	v.provided = true

	return nil
}

func (v *argValue) Type() string {
	if v.opt == nil {
		return ""
	}

	return v.opt.ArgName()
}

// Values holds what the parser stored for the options of a Set.
type Values struct {
	set   *Set
	flags *pflag.FlagSet
	bools map[string]*bool
	args  map[string]*argValue
}

// AddToFlagSet registers every option of s on flags and returns the values
// they will be parsed into. Flags become pflag bool flags, options taking a
// value are validated as they are set. Defaults are applied up front.
func (s *Set) AddToFlagSet(flags *pflag.FlagSet) *Values {
	v := &Values{
		set:   s,
		flags: flags,
		bools: make(map[string]*bool),
		args:  make(map[string]*argValue),
	}

	for _, opt := range s.options {
		var short string
		if opt.HasShortName() {
			short = string(opt.ShortName())
		}

		if !opt.NeedsArg() {
			b := new(bool)
			flags.BoolVarP(b, opt.LongName(), short, false, opt.Description())
			v.bools[opt.LongName()] = b
			continue
		}

		argOpt, ok := opt.(ArgOption)
		sanity.Inv(ok, "Option --%s needs an argument but cannot validate it", opt.LongName())
		av := &argValue{opt: argOpt}
		if opt.HasDefaultValue() {
			av.raw = opt.DefaultValue()
			av.provided = true
		}
		flags.VarP(av, opt.LongName(), short, opt.Description())
		v.args[opt.LongName()] = av
	}

	return v
}

// Changed reports whether the option was given on the command line.
func (v *Values) Changed(longName string) bool {
	v.set.mustLookup(longName)

	return v.flags.Changed(longName)
}

// Set stores raw for the option as if it was given by the user. Values of
// flags must parse as booleans. A rejected value yields a *ValueError.
func (v *Values) Set(longName, raw string) error {
	opt := v.set.mustLookup(longName)

	if !opt.NeedsArg() {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return newValueError(opt, raw, err)
		}
		*v.bools[longName] = b

		return nil
	}

	return v.args[longName].Set(raw)
}

// Bool returns the state of a flag.
func (v *Values) Bool(longName string) bool {
	b, ok := v.bools[longName]
	sanity.Pre(ok, "Option --%s is not a flag", longName)

	return *b
}

// String returns the value of a string option and whether it has one.
func (v *Values) String(longName string) (string, bool) {
	return convert[string](v, longName, "string")
}

// Path returns the value of a path option and whether it has one.
func (v *Values) Path(longName string) (fs.Path, bool) {
	return convert[fs.Path](v, longName, "path")
}

func convert[T any](v *Values, longName, kind string) (T, bool) {
	var zero T

	av, ok := v.args[longName]
	sanity.Pre(ok, "Option --%s does not take an argument", longName)
	conv, ok := av.opt.(Converter[T])
	sanity.Pre(ok, "Option --%s is not a %s option", longName, kind)
	if !av.provided {
		return zero, false
	}

	return conv.Convert(av.raw), true
}
