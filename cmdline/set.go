// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cmdline

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wangtaoking1/cli-base/errors"
	"github.com/wangtaoking1/cli-base/sanity"
)

// Set is an ordered group of options with unique names, as held by a parser.
type Set struct {
	options []Option
	byLong  map[string]Option
	byShort map[rune]Option
}

// NewSet groups opts. Every long name and every short name must be unique.
func NewSet(opts ...Option) (*Set, error) {
	s := &Set{
		byLong:  make(map[string]Option, len(opts)),
		byShort: make(map[rune]Option),
	}

	var errs []error
	for _, opt := range opts {
		if _, ok := s.byLong[opt.LongName()]; ok {
			errs = append(errs, errors.Errorf("duplicate option --%s", opt.LongName()))
			continue
		}
		if opt.HasShortName() {
			if prev, ok := s.byShort[opt.ShortName()]; ok {
				errs = append(errs, errors.Errorf("short name -%c of --%s already used by --%s",
					opt.ShortName(), opt.LongName(), prev.LongName()))
				continue
			}
			s.byShort[opt.ShortName()] = opt
		}
		s.byLong[opt.LongName()] = opt
		s.options = append(s.options, opt)
	}
	if len(errs) != 0 {
		return nil, errors.NewAggregate(errs)
	}

	return s, nil
}

// Options returns the options in declaration order.
func (s *Set) Options() []Option {
	return slices.Clone(s.options)
}

// LongNames returns the sorted long names of all options.
func (s *Set) LongNames() []string {
	names := maps.Keys(s.byLong)
	slices.Sort(names)

	return names
}

// Lookup finds an option by long name.
func (s *Set) Lookup(longName string) (Option, bool) {
	opt, ok := s.byLong[longName]

	return opt, ok
}

// LookupShort finds an option by short name.
func (s *Set) LookupShort(shortName rune) (Option, bool) {
	opt, ok := s.byShort[shortName]

	return opt, ok
}

func (s *Set) mustLookup(longName string) Option {
	opt, ok := s.byLong[longName]
	sanity.Pre(ok, "Unknown option --%s", longName)

	return opt
}
