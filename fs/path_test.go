// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPath(t *testing.T, raw string) Path {
	t.Helper()
	p, err := NewPath(raw)
	require.NoError(t, err)

	return p
}

func TestNewPath_Normalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "/", want: "/"},
		{raw: "///", want: "/"},
		{raw: "/tmp/x", want: "/tmp/x"},
		{raw: "/tmp//x/", want: "/tmp/x"},
		{raw: "a", want: "a"},
		{raw: "a/b//c///", want: "a/b/c"},
		{raw: ".", want: "."},
		{raw: "../foo", want: "../foo"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, mustPath(t, tt.raw).String())
		})
	}
}

func TestNewPath_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{name: "empty", raw: "", reason: "Cannot be empty"},
		{name: "nul", raw: "foo\x00bar", reason: "Cannot contain NUL characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPath(tt.raw)
			var pathErr *InvalidPathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, tt.raw, pathErr.Path)
			assert.Equal(t, tt.reason, pathErr.Reason)
		})
	}

	_, err := NewPath("")
	assert.EqualError(t, err, "Invalid path '': Cannot be empty")
}

func TestPath_IsAbsolute(t *testing.T) {
	assert.True(t, mustPath(t, "/").IsAbsolute())
	assert.True(t, mustPath(t, "/a/b").IsAbsolute())
	assert.False(t, mustPath(t, "a/b").IsAbsolute())
	assert.False(t, Path{}.IsAbsolute())
}

func TestPath_BranchAndLeaf(t *testing.T) {
	tests := []struct {
		raw    string
		branch string
		leaf   string
	}{
		{raw: "/", branch: "/", leaf: "/"},
		{raw: "/tmp", branch: "/", leaf: "tmp"},
		{raw: "/tmp/x", branch: "/tmp", leaf: "x"},
		{raw: "file", branch: ".", leaf: "file"},
		{raw: "a/b/c", branch: "a/b", leaf: "c"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := mustPath(t, tt.raw)
			assert.Equal(t, tt.branch, p.Branch().String())
			assert.Equal(t, tt.leaf, p.LeafName())
		})
	}
}

func TestPath_Join(t *testing.T) {
	assert.Equal(t, "/a/b", mustPath(t, "/").Join(mustPath(t, "a/b")).String())
	assert.Equal(t, "a/b/c", mustPath(t, "a").Join(mustPath(t, "b/c")).String())
	assert.Equal(t, mustPath(t, "x/y"), mustPath(t, "x").Join(mustPath(t, "y")))

	assert.Panics(t, func() {
		mustPath(t, "a").Join(mustPath(t, "/b"))
	})
	assert.Panics(t, func() {
		Path{}.Join(mustPath(t, "b"))
	})
}
