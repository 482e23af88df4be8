// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBoxHull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"0,0,0", "100 0 0"}, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CONTENTS")
	assert.Contains(t, lines[1], "solid")
	assert.Contains(t, lines[1], "Back")
	assert.Contains(t, lines[2], "empty")
	assert.Contains(t, lines[2], "Front")
}

func TestRunHullFile(t *testing.T) {
	var buf bytes.Buffer
	hull := filepath.Join("..", "..", "bsp", "testdata", "wedge.yaml")
	require.NoError(t, run(context.Background(), []string{"--hull", hull, "-j", "2", "-p", "-1,0,0", "1,1,-10"}, &buf))
	out := buf.String()
	assert.Contains(t, out, "solid")
	assert.Contains(t, out, "lava")
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "probe.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
BoxMins = [-1.0, -1.0, -1.0]
BoxMaxs = [1.0, 1.0, 1.0]
Points = [[0.5, 0.5, 0.5], [2.0, 0.0, 0.0]]
SIMD = false
`), 0666))

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-c", file, "--maxs", "3,3,3"}, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "solid")
	assert.Contains(t, lines[2], "solid", "the flag overrides the config file")
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, run(context.Background(), []string{"1,2"}, &buf), "point")
	assert.ErrorContains(t, run(context.Background(), []string{"--mins", "1,2"}, &buf), "3 values")
	assert.Error(t, run(context.Background(), []string{"--hull", "missing.toml", "0,0,0"}, &buf))
	assert.Error(t, run(context.Background(), []string{"-c", "missing.toml"}, &buf))
	assert.Error(t, run(context.Background(), []string{"--nope"}, &buf))
}

func TestRunSample(t *testing.T) {
	args := []string{"-n", "2000", "--seed", "9", "--mins", "-8,-8,-8", "--maxs", "8,8,8"}
	var a, b bytes.Buffer
	require.NoError(t, run(context.Background(), args, &a))
	require.NoError(t, run(context.Background(), args, &b))
	assert.Equal(t, a.String(), b.String(), "a seed gives the same samples")

	out := a.String()
	assert.Contains(t, out, "FRACTION")
	// a 16 cube inside the default 128 sample cube holds 1/512 of its volume
	assert.Regexp(t, `empty\s+\d+\s+0\.9`, out)
}

func TestRunNegativePoints(t *testing.T) {
	for _, args := range [][]string{
		{"-p", "-100,0,0", "--point=-1,-1,-1"},
		{"--", "-100,0,0", "-1,-1,-1"},
		{"--point", "-100 0 0", "--", "-1,-1,-1"},
	} {
		var buf bytes.Buffer
		require.NoError(t, run(context.Background(), args, &buf), "%v", args)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3, "%v", args)
		assert.Contains(t, lines[1], "(-100, 0, 0)")
		assert.Contains(t, lines[1], "empty")
		assert.Contains(t, lines[2], "(-1, -1, -1)")
		assert.Contains(t, lines[2], "solid")
	}
}

func TestRunRandomAngles(t *testing.T) {
	args := []string{"--random-angles", "--seed", "5", "1,2,3"}
	var a, b, fixed bytes.Buffer
	require.NoError(t, run(context.Background(), args, &a))
	require.NoError(t, run(context.Background(), args, &b))
	require.NoError(t, run(context.Background(), []string{"1,2,3"}, &fixed))
	assert.Equal(t, a.String(), b.String(), "a seed fixes the view frame")
	assert.NotEqual(t, a.String(), fixed.String())
	assert.Contains(t, a.String(), "solid")
}
