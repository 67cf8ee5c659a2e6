// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"time"

	"japi.dev/core/text/encoding"
	"japi.dev/core/text/highlighting"
)

// Settings contains the settings of a [Lines] document, which can be
// read from TOML or YAML configuration files.
type Settings struct {

	// TabSize is the size of a tab, in columns.
	TabSize int `toml:"tab_size" yaml:"tab_size"`

	// SpaceIndent uses spaces instead of tabs for indentation.
	SpaceIndent bool `toml:"space_indent" yaml:"space_indent"`

	// AutoIndent indents new lines to match the prior line.
	AutoIndent bool `toml:"auto_indent" yaml:"auto_indent"`

	// Encoding is the encoding used to save the file.
	Encoding encoding.Encoding `toml:"encoding" yaml:"encoding"`

	// LineEnding is the line ending used to save the file.
	LineEnding encoding.LineEnding `toml:"line_ending" yaml:"line_ending"`

	// Highlighting is the name of the highlighting style.
	Highlighting string `toml:"highlighting" yaml:"highlighting"`

	// MaxBalanceLines is the maximum number of lines scanned on each side
	// of the caret when balancing brackets; 0 means no limit.
	MaxBalanceLines int `toml:"max_balance_lines" yaml:"max_balance_lines"`

	// UndoGroupDelay is the time between edits above which a new undo
	// group is started.
	UndoGroupDelay Duration `toml:"undo_group_delay" yaml:"undo_group_delay"`

	// RelexDelay, if non-zero, re-lexes the dirty lines automatically
	// this long after the last edit.
	RelexDelay Duration `toml:"relex_delay" yaml:"relex_delay"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.TabSize = 4
	s.SpaceIndent = false
	s.AutoIndent = true
	s.Encoding = encoding.UTF8
	s.LineEnding = encoding.LF
	s.Highlighting = highlighting.DefaultStyle
	s.MaxBalanceLines = 2000
	s.UndoGroupDelay = Duration(250 * time.Millisecond)
}

// Duration is a [time.Duration] that is written as text, such as "250ms",
// in configuration files.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
