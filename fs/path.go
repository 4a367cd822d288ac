// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package fs provides a validated, normalized representation of filesystem
// paths.
package fs

import (
	"fmt"
	"strings"

	"github.com/wangtaoking1/cli-base/sanity"
)

// InvalidPathError is returned when a string cannot be used as a path.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("Invalid path '%s': %s", e.Path, e.Reason)
}

// Path is a normalized filesystem path. Repeated separators are collapsed and
// trailing separators are dropped. The zero value is not a valid path.
type Path struct {
	repr string
}

// NewPath parses raw into a Path.
func NewPath(raw string) (Path, error) {
	if raw == "" {
		return Path{}, &InvalidPathError{Path: raw, Reason: "Cannot be empty"}
	}
	if strings.IndexByte(raw, 0) != -1 {
		return Path{}, &InvalidPathError{Path: raw, Reason: "Cannot contain NUL characters"}
	}

	p := Path{repr: normalize(raw)}
	sanity.Post(!p.IsZero(), "Path '%s' normalized to nothing", raw)

	return p, nil
}

func normalize(in string) string {
	var b strings.Builder
	if strings.HasPrefix(in, "/") {
		b.WriteByte('/')
	}

	first := true
	for _, part := range strings.Split(in, "/") {
		if part == "" {
			continue
		}
		if !first {
			b.WriteByte('/')
		}
		b.WriteString(part)
		first = false
	}

	return b.String()
}

func (p Path) String() string {
	return p.repr
}

// IsZero reports whether p is the zero value.
func (p Path) IsZero() bool {
	return p.repr == ""
}

// IsAbsolute reports whether p starts at the filesystem root.
func (p Path) IsAbsolute() bool {
	return strings.HasPrefix(p.repr, "/")
}

// Branch returns the parent directory of p.
func (p Path) Branch() Path {
	sanity.Pre(!p.IsZero(), "Branch of an empty path")

	i := strings.LastIndexByte(p.repr, '/')
	switch i {
	case -1:
		return Path{repr: "."}
	case 0:
		return Path{repr: "/"}
	default:
		return Path{repr: p.repr[:i]}
	}
}

// LeafName returns the last component of p.
func (p Path) LeafName() string {
	sanity.Pre(!p.IsZero(), "LeafName of an empty path")

	if p.repr == "/" {
		return "/"
	}

	return p.repr[strings.LastIndexByte(p.repr, '/')+1:]
}

// Join appends the relative path rest to p.
func (p Path) Join(rest Path) Path {
	sanity.Pre(!p.IsZero() && !rest.IsZero(), "Cannot join empty paths")
	sanity.Pre(!rest.IsAbsolute(), "Cannot join absolute path %s to %s", rest, p)

	if p.repr == "/" {
		return Path{repr: "/" + rest.repr}
	}

	return Path{repr: p.repr + "/" + rest.repr}
}
