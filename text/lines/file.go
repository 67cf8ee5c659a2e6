// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"japi.dev/core/base/errors"
	"japi.dev/core/base/fileinfo"
	"japi.dev/core/text/encoding"
)

// OpenLines returns a new Lines with default settings, opened from the file.
func OpenLines(filename string) (*Lines, error) {
	ls := &Lines{}
	ls.Defaults()
	if err := ls.Open(filename); err != nil {
		return nil, err
	}
	return ls, nil
}

// Open loads the given file, detecting its encoding and line ending,
// and sets up highlighting for it.
func (ls *Lines) Open(filename string) error {
	ls.Lock()
	defer ls.unlock()
	return ls.openFile(filename)
}

// Revert loads the file again, discarding any edits.
func (ls *Lines) Revert() error {
	ls.Lock()
	defer ls.unlock()
	if ls.filename == "" {
		return errors.New("lines: no file to revert to")
	}
	return ls.openFile(ls.filename)
}

// Save saves the text to its file, in its encoding and line ending.
func (ls *Lines) Save() error {
	ls.Lock()
	defer ls.unlock()
	if ls.filename == "" {
		return errors.New("lines: no filename to save to")
	}
	return ls.saveFile(ls.filename)
}

// SaveAs saves the text to the given file, which becomes its file.
func (ls *Lines) SaveAs(filename string) error {
	ls.Lock()
	defer ls.unlock()
	if err := ls.saveFile(filename); err != nil {
		return err
	}
	ls.setFilename(filename)
	return nil
}

// Filename returns the name of the file, "" if there is none.
func (ls *Lines) Filename() string {
	ls.Lock()
	defer ls.Unlock()
	return ls.filename
}

// FileInfo returns the information about the file.
func (ls *Lines) FileInfo() fileinfo.FileInfo {
	ls.Lock()
	defer ls.Unlock()
	return ls.fileInfo
}

// IsChanged returns whether the text has been edited since it was last
// opened or saved.
func (ls *Lines) IsChanged() bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.changed
}

// Encoding returns the encoding the text is saved in.
func (ls *Lines) Encoding() encoding.Encoding {
	ls.Lock()
	defer ls.Unlock()
	return ls.Settings.Encoding
}

// SetEncoding sets the encoding to save the text in, and whether to
// write a byte order mark. It returns [encoding.ErrUnrepresentable] if
// the text cannot be saved in the encoding, leaving it unchanged.
func (ls *Lines) SetEncoding(en encoding.Encoding, bom bool) error {
	ls.Lock()
	defer ls.Unlock()
	if _, err := encoding.Encode(ls.bytes(), en, false); err != nil {
		return err
	}
	ls.Settings.Encoding = en
	ls.hasBOM = bom && en.BOM() != nil
	ls.changed = true
	return nil
}

// HasBOM returns whether a byte order mark is written on save.
func (ls *Lines) HasBOM() bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.hasBOM
}

// LineEnding returns the line ending the text is saved with.
func (ls *Lines) LineEnding() encoding.LineEnding {
	ls.Lock()
	defer ls.Unlock()
	return ls.Settings.LineEnding
}

// SetLineEnding sets the line ending to save the text with.
func (ls *Lines) SetLineEnding(le encoding.LineEnding) {
	ls.Lock()
	defer ls.Unlock()
	if le != ls.Settings.LineEnding {
		ls.Settings.LineEnding = le
		ls.changed = true
	}
}

// EncodedBytes returns the text as it would be saved, in its encoding
// and line ending.
func (ls *Lines) EncodedBytes() ([]byte, error) {
	ls.Lock()
	defer ls.Unlock()
	return ls.encoded()
}

//////// unexported api

func (ls *Lines) setFilename(filename string) {
	ls.filename = filename
	if err := ls.fileInfo.InitFile(filename); err != nil {
		ls.fileInfo = fileinfo.FileInfo{Name: filepath.Base(filename), Known: fileinfo.KnownFromName(filename)}
	}
	ls.modTime = ls.fileInfo.ModTime
}

func (ls *Lines) openFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	txt, en, bom, err := encoding.DecodeFile(b)
	if err != nil {
		return fmt.Errorf("lines: open %s: %w", filename, err)
	}
	ls.setFilename(filename)
	ls.Settings.Encoding = en
	ls.Settings.LineEnding = encoding.DetectLineEnding(txt)
	ls.hasBOM = bom
	ls.Highlighter.StyleName = ls.Settings.Highlighting
	ls.Highlighter.Init(&ls.fileInfo)
	ls.setText(encoding.NormalizeLineEndings(txt))
	ls.changed = false
	ls.sendChange()
	return nil
}

func (ls *Lines) encoded() ([]byte, error) {
	txt := encoding.ApplyLineEnding(ls.bytes(), ls.Settings.LineEnding)
	return encoding.Encode(txt, ls.Settings.Encoding, ls.hasBOM)
}

func (ls *Lines) saveFile(filename string) error {
	b, err := ls.encoded()
	if err != nil {
		return fmt.Errorf("lines: save %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return err
	}
	if st, err := os.Stat(filename); err == nil {
		ls.modTime = st.ModTime()
	}
	ls.changed = false
	ls.sendChange()
	return nil
}

// changedOnDisk returns whether the file has a different modification
// time than when it was last opened or saved.
func (ls *Lines) changedOnDisk() bool {
	ls.Lock()
	defer ls.Unlock()
	st, err := os.Stat(ls.filename)
	return err == nil && !st.ModTime().Equal(ls.modTime)
}

//////// Watch

// WatchOps are the changes to a file that are reported by [Lines.Watch].
type WatchOps int32

const (
	// Modified means the file was written by another program.
	Modified WatchOps = iota

	// Removed means the file was removed or renamed.
	Removed
)

func (op WatchOps) String() string {
	if op == Removed {
		return "Removed"
	}
	return "Modified"
}

// Watch calls fn from another goroutine whenever the file is changed
// on disk by something other than this Lines, until the context is done.
// It watches the directory of the file, so that the file being replaced
// by a rename is also reported.
func (ls *Lines) Watch(ctx context.Context, fn func(op WatchOps)) error {
	fname := ls.Filename()
	if fname == "" {
		return errors.New("lines: no file to watch")
	}
	path, err := filepath.Abs(fname)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ep, _ := filepath.Abs(event.Name); ep != path {
					continue
				}
				switch {
				case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
					fn(Removed)
				case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
					if ls.changedOnDisk() {
						fn(Modified)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("lines: watch", "file", fname, "err", err)
			}
		}
	}()
	return nil
}
