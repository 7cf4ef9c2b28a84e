// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"-q"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "S:/a.png", "hello")
	require.NoError(t, err)
	assert.Equal(t, "S:/a.png\tFile\nhello\tVariable\n", out)

	out, err = run(t, "classify", "-s", "ok", "volume-mid", "bullet")
	require.NoError(t, err)
	assert.Equal(t, "ok\tSymbol\nvolume-mid\tSymbol\nbullet\tVariable\n", out)

	out, err = run(t, "--symbol-table", "classify", "-s", "bullet")
	require.NoError(t, err)
	assert.Equal(t, "bullet\tSymbol\n", out)

	_, err = run(t, "classify", "-s", "nope")
	assert.Error(t, err)
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "S:/img/a.png")
	require.NoError(t, err)
	assert.Equal(t, "S:/img/a.png\tFile\tpath=S:/img/a.png ext=png format=PNG mime=image/png\n", out)

	out, err = run(t, "parse", "-s", "play")
	require.NoError(t, err)
	assert.Equal(t, "play\tSymbol\tlen=3\n", out)

	out, err = run(t, "parse", "-f", "testdata/magic.png")
	require.NoError(t, err)
	assert.Equal(t, "testdata/magic.png\tVariable\tformat=PNG mime=image/png\n", out)

	out, err = run(t, "parse", "")
	require.NoError(t, err)
	assert.Equal(t, "\trejected\n", out)

	_, err = run(t, "parse", "-f", "testdata/missing.bin")
	assert.Error(t, err)
}

func TestSymbolsCmd(t *testing.T) {
	out, err := run(t, "symbols")
	require.NoError(t, err)
	assert.Contains(t, out, "Audio\tU+F001\n")
	assert.Contains(t, out, "Bullet\tU+2022\n")
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "prefix_len = 256")
	assert.Contains(t, out, "lo = 61440")

	out, err = run(t, "--config", "../../testdata/symbols.yaml", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "prefix_len = 64")
	assert.Contains(t, out, "lo = 8226")

	_, err = run(t, "--config", "../../testdata/inverted.toml", "config")
	assert.Error(t, err)
}
