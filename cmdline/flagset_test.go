// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cmdline

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangtaoking1/cli-base/sanity"
)

func newTestValues(t *testing.T) (*pflag.FlagSet, *Values) {
	t.Helper()

	s, err := NewSet(
		NewBoolOption('v', "verbose", "be verbose"),
		NewPathOption('f', "file", "input file", "path"),
		NewLongStringOption("name", "a name", "NAME", WithDefault("anonymous")),
		NewLongPathOption("root", "root directory", "dir", WithDefault("/")),
	)
	require.NoError(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	return flags, s.AddToFlagSet(flags)
}

func TestValues_Defaults(t *testing.T) {
	flags, values := newTestValues(t)
	require.NoError(t, flags.Parse(nil))

	assert.False(t, values.Bool("verbose"))

	_, ok := values.Path("file")
	assert.False(t, ok)

	name, ok := values.String("name")
	assert.True(t, ok)
	assert.Equal(t, "anonymous", name)

	root, ok := values.Path("root")
	assert.True(t, ok)
	assert.Equal(t, "/", root.String())

	assert.False(t, values.Changed("name"))
}

func TestValues_Parse(t *testing.T) {
	flags, values := newTestValues(t)
	require.NoError(t, flags.Parse([]string{"-v", "-f", "/tmp//x/", "--name=bob", "rest"}))

	assert.True(t, values.Bool("verbose"))
	assert.True(t, values.Changed("verbose"))

	file, ok := values.Path("file")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/x", file.String())

	name, _ := values.String("name")
	assert.Equal(t, "bob", name)
	assert.Equal(t, []string{"rest"}, flags.Args())
}

func TestValues_ParseInvalid(t *testing.T) {
	flags, _ := newTestValues(t)

	err := flags.Parse([]string{"--file="})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid argument '' for option --file")
}

func TestValues_Set(t *testing.T) {
	_, values := newTestValues(t)

	require.NoError(t, values.Set("name", "alice"))
	name, _ := values.String("name")
	assert.Equal(t, "alice", name)

	require.NoError(t, values.Set("verbose", "true"))
	assert.True(t, values.Bool("verbose"))

	var valueErr *ValueError
	err := values.Set("file", "")
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "--file", valueErr.Option)

	err = values.Set("verbose", "maybe")
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "--verbose", valueErr.Option)
	assert.Equal(t, "maybe", valueErr.Value)
}

func TestValues_Misuse(t *testing.T) {
	_, values := newTestValues(t)

	assertViolation(t, sanity.Precondition, func() { values.Bool("file") })
	assertViolation(t, sanity.Precondition, func() { values.String("file") })
	assertViolation(t, sanity.Precondition, func() { values.Path("name") })
	assertViolation(t, sanity.Precondition, func() { values.Path("verbose") })
	assertViolation(t, sanity.Precondition, func() { values.Changed("missing") })
	assertViolation(t, sanity.Precondition, func() { _ = values.Set("missing", "x") })
}

func TestValues_Usage(t *testing.T) {
	flags, _ := newTestValues(t)

	usage := flags.FlagUsages()
	assert.Contains(t, usage, "-f, --file path")
	assert.Contains(t, usage, "--name NAME")
	assert.Contains(t, usage, "(default anonymous)")
}

func TestAddToFlagSet_ShortNames(t *testing.T) {
	s, err := NewSet(NewBoolOption('~', "tilde", "x"), NewPathOption('9', "nine", "x", "path"))
	require.NoError(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var values *Values
	require.NotPanics(t, func() { values = s.AddToFlagSet(flags) })
	require.NoError(t, flags.Parse([]string{"-~", "-9", "/x"}))

	assert.True(t, values.Bool("tilde"))
	p, ok := values.Path("nine")
	assert.True(t, ok)
	assert.Equal(t, "/x", p.String())
}
