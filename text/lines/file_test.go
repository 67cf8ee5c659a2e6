// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japi.dev/core/base/fileinfo"
	"japi.dev/core/base/iox/tomlx"
	"japi.dev/core/base/iox/yamlx"
	"japi.dev/core/text/encoding"
)

func TestOpenSaveCRLF(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "crlf.go")
	src := []byte("package x\r\n\r\nvar s = \"a\"\r\n")
	require.NoError(t, os.WriteFile(fn, src, 0644))

	ls, err := OpenLines(fn)
	require.NoError(t, err)
	assert.Equal(t, fn, ls.Filename())
	assert.Equal(t, fileinfo.Go, ls.FileInfo().Known)
	assert.Equal(t, "Go", ls.Language())
	assert.Equal(t, encoding.CRLF, ls.LineEnding())
	assert.Equal(t, encoding.UTF8, ls.Encoding())
	assert.False(t, ls.HasBOM())
	assert.False(t, ls.IsChanged())
	assert.Equal(t, 4, ls.NumLines())
	assert.Equal(t, []byte("package x"), ls.Line(0))

	_, err = ls.Insert(ls.Len(), []byte("// end\n"))
	require.NoError(t, err)
	assert.True(t, ls.IsChanged())
	require.NoError(t, ls.Save())
	assert.False(t, ls.IsChanged())

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "package x\r\n\r\nvar s = \"a\"\r\n// end\r\n", string(b))

	require.NoError(t, os.WriteFile(fn, []byte("package y\n"), 0644))
	require.NoError(t, ls.Revert())
	assert.Equal(t, "package y\n", ls.String())
	assert.Equal(t, encoding.LF, ls.LineEnding())
}

func TestOpenSaveUTF16(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "u16.txt")
	text := "héllo\nwörld"
	enc, err := encoding.Encode([]byte(text), encoding.UTF16LE, true)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fn, enc, 0644))

	ls, err := OpenLines(fn)
	require.NoError(t, err)
	assert.Equal(t, text, ls.String())
	assert.Equal(t, encoding.UTF16LE, ls.Encoding())
	assert.True(t, ls.HasBOM())

	out := filepath.Join(dir, "out.txt")
	require.NoError(t, ls.SaveAs(out))
	assert.Equal(t, out, ls.Filename())
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, enc, b)

	require.NoError(t, ls.SetEncoding(encoding.ISO8859_1, true))
	assert.False(t, ls.HasBOM())
	b, err = ls.EncodedBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("h\xe9llo\nw\xf6rld"), b)

	_, err = ls.Insert(0, []byte("日本"))
	require.NoError(t, err)
	err = ls.SetEncoding(encoding.MacRoman, false)
	assert.ErrorIs(t, err, encoding.ErrUnrepresentable)
	assert.Equal(t, encoding.ISO8859_1, ls.Encoding())
	assert.Error(t, ls.Save())

	require.NoError(t, ls.SetEncoding(encoding.UTF8, true))
	ls.SetLineEnding(encoding.CRLF)
	b, err = ls.EncodedBytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\xef\xbb\xbf日本")))
	assert.Contains(t, string(b), "llo\r\nw")
}

func TestOpenErrors(t *testing.T) {
	_, err := OpenLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ls := NewLines()
	assert.Error(t, ls.Save())
	assert.Error(t, ls.Revert())
	assert.Error(t, ls.Watch(context.Background(), func(WatchOps) {}))
}

func TestShebang(t *testing.T) {
	ls := NewLinesFromBytes("script", []byte("#!/usr/bin/perl\nmy $x = 1;\n"))
	assert.Equal(t, "Perl", ls.Language())
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "w.txt")
	require.NoError(t, os.WriteFile(fn, []byte("one\n"), 0644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(fn, old, old))

	ls, err := OpenLines(fn)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ops := make(chan WatchOps, 10)
	require.NoError(t, ls.Watch(ctx, func(op WatchOps) { ops <- op }))

	// a file next to it is not reported
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(fn), "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(fn, []byte("two\n"), 0644))
	select {
	case op := <-ops:
		assert.Equal(t, Modified, op)
	case <-time.After(5 * time.Second):
		t.Fatal("no modified event")
	}

	require.NoError(t, os.Remove(fn))
	assert.Eventually(t, func() bool {
		for {
			select {
			case op := <-ops:
				if op == Removed {
					return true
				}
			default:
				return false
			}
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSettingsFiles(t *testing.T) {
	var st Settings
	st.Defaults()
	st.TabSize = 8
	st.SpaceIndent = true
	st.Encoding = encoding.UTF16BE
	st.LineEnding = encoding.CRLF
	st.RelexDelay = Duration(100 * time.Millisecond)

	b, err := tomlx.WriteBytes(&st)
	require.NoError(t, err)
	assert.Contains(t, string(b), "tab_size = 8")
	assert.Contains(t, string(b), "UTF-16BE")
	var tst Settings
	require.NoError(t, tomlx.ReadBytes(&tst, b))
	assert.Equal(t, st, tst)

	b, err = yamlx.WriteBytes(&st)
	require.NoError(t, err)
	assert.Contains(t, string(b), "relex_delay: 100ms")
	var yst Settings
	require.NoError(t, yamlx.ReadBytes(&yst, b))
	assert.Equal(t, st, yst)

	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("tab_size = 2\nundo_group_delay = \"1s\"\n"), 0644))
	var fst Settings
	fst.Defaults()
	require.NoError(t, tomlx.Open(&fst, fn))
	assert.Equal(t, 2, fst.TabSize)
	assert.Equal(t, Duration(time.Second), fst.UndoGroupDelay)
	assert.True(t, fst.AutoIndent)
}
