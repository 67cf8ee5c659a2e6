// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownFromName(t *testing.T) {
	assert.Equal(t, Perl, KnownFromName("lib/Foo/Bar.pm"))
	assert.Equal(t, Cpp, KnownFromName("main.CPP"))
	assert.Equal(t, Makefile, KnownFromName("/src/Makefile"))
	assert.Equal(t, Unknown, KnownFromName("noext"))
	assert.Equal(t, Code, Go.Cat())
	assert.Equal(t, Doc, Markdown.Cat())
	assert.Equal(t, "Perl", Perl.String())

	kn, err := KnownByName("perl")
	assert.NoError(t, err)
	assert.Equal(t, Perl, kn)
	_, err = KnownByName("cobol")
	assert.Error(t, err)
}

func TestKnownFromShebang(t *testing.T) {
	assert.Equal(t, Perl, KnownFromShebang([]byte("#!/usr/bin/env perl -w\nprint 1;\n")))
	assert.Equal(t, Shell, KnownFromShebang([]byte("#!/bin/sh\n")))
	assert.Equal(t, Unknown, KnownFromShebang([]byte("print 1;\n")))
}

func TestNewFileInfo(t *testing.T) {
	_, err := NewFileInfo("dummy.go")
	assert.Error(t, err)

	dir := t.TempDir()
	fn := filepath.Join(dir, "script")
	require.NoError(t, os.WriteFile(fn, []byte("#!/usr/bin/perl\nprint \"hi\\n\";\n"), 0o644))
	fi, err := NewFileInfo(fn)
	require.NoError(t, err)
	assert.Equal(t, Perl, fi.Known)
	assert.False(t, fi.Binary)

	png := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(png, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D}, 0o644))
	fi, err = NewFileInfo(png)
	require.NoError(t, err)
	assert.True(t, fi.Binary)
	assert.Equal(t, "image/png", fi.Mime)
}

func TestIsBinaryUTF16(t *testing.T) {
	assert.False(t, IsBinary([]byte{'h', 0, 'i', 0, '\n', 0}))
	assert.False(t, IsBinary([]byte{0xFF, 0xFE, 'h', 0}))
	assert.True(t, IsBinary([]byte{'a', 0, 0, 'b', 0, 1}))
}
