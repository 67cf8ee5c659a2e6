// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileinfo manages file information and identifies
// the known type of a file from its name and contents.
package fileinfo

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/h2non/filetype"
)

// sniffLen is the number of leading bytes examined for content sniffing.
const sniffLen = 8192

// FileInfo represents the information about a given file / directory,
// including the known file type determined by extension and contents.
type FileInfo struct {

	// Name is the name of the file, without any path.
	Name string

	// Path is the full path to the file.
	Path string

	// Ext is the file extension, including the dot.
	Ext string

	// Known is the known type of the file.
	Known Known

	// Mime is the mime type of binary content, if detected.
	Mime string

	// Binary is whether the file content is not editable text.
	Binary bool

	// Size is the size of the file in bytes.
	Size int64

	// ModTime is the time of last modification.
	ModTime time.Time
}

// NewFileInfo returns a new FileInfo for given file.
// The known type is always set from the name; an error is returned
// if the file cannot be read, in which case the content-based fields
// are left empty.
func NewFileInfo(fname string) (*FileInfo, error) {
	fi := &FileInfo{}
	err := fi.InitFile(fname)
	return fi, err
}

// InitFile initializes a FileInfo for the given file name.
func (fi *FileInfo) InitFile(fname string) error {
	path, _ := filepath.Abs(fname)
	fi.Path = path
	fi.Name = filepath.Base(fname)
	fi.Ext = filepath.Ext(fi.Name)
	fi.Known = KnownFromName(fi.Name)
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	fi.Size = st.Size()
	fi.ModTime = st.ModTime()
	if st.IsDir() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	fi.SetContent(head[:n])
	return nil
}

// SetContent updates the content-based fields from the leading bytes of the file.
func (fi *FileInfo) SetContent(head []byte) {
	fi.Mime = ""
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		fi.Mime = kind.MIME.Value
	}
	fi.Binary = IsBinary(head)
	if fi.Known == Unknown && !fi.Binary {
		fi.Known = KnownFromShebang(head)
	}
}

// IsBinary reports whether the given leading bytes of a file look like
// binary content: a recognized binary format signature, or NUL bytes
// outside of what a UTF-16 text would contain.
func IsBinary(head []byte) bool {
	if len(head) == 0 {
		return false
	}
	if filetype.IsImage(head) || filetype.IsArchive(head) || filetype.IsVideo(head) ||
		filetype.IsAudio(head) || filetype.IsFont(head) || filetype.IsApplication(head) {
		return true
	}
	if hasUTF16BOM(head) {
		return false
	}
	nul := bytes.Count(head, []byte{0})
	if nul == 0 {
		return false
	}
	// BOM-less UTF-16 ASCII text has NULs in every other byte.
	even, odd := 0, 0
	for i, c := range head {
		if c != 0 {
			continue
		}
		if i%2 == 0 {
			even++
		} else {
			odd++
		}
	}
	half := len(head) / 2
	if (even >= half*9/10 && odd == 0) || (odd >= half*9/10 && even == 0) {
		return false
	}
	return true
}

func hasUTF16BOM(b []byte) bool {
	return len(b) >= 2 && ((b[0] == 0xFE && b[1] == 0xFF) || (b[0] == 0xFF && b[1] == 0xFE))
}
