// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting provides syntax highlighting styles; it is based on
// github.com/alecthomas/chroma, which in turn was based on the python
// pygments package. Styles map the token kinds of the lexers to colors
// and font settings, and turn the tags of a line into style runs.
package highlighting

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"

	"japi.dev/core/base/errors"
	"japi.dev/core/text/token"
)

// Trilean value for StyleEntry value inheritance.
type Trilean int32

const (
	Pass Trilean = iota
	Yes
	No
)

func (t Trilean) Prefix(s string) string {
	if t == Yes {
		return s
	} else if t == No {
		return "no" + s
	}
	return ""
}

// StyleEntry is one value in the map of highlight style values
type StyleEntry struct {

	// Color is the text color.
	Color color.RGBA `json:",omitzero"`

	// Background color.
	// In general it is not good to use this because it obscures highlighting.
	Background color.RGBA `json:",omitzero"`

	// Bold font.
	Bold Trilean `json:",omitempty"`

	// Italic font.
	Italic Trilean `json:",omitempty"`

	// Underline.
	Underline Trilean `json:",omitempty"`

	// NoInherit indicates to not inherit these settings from sub-category or category levels.
	// Otherwise everything with a Pass is inherited.
	NoInherit bool `json:",omitempty"`
}

// isNil returns whether a color is unset, which is its zero value.
func isNil(c color.RGBA) bool { return c.A == 0 }

// Hex returns the color as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fromColour(c chroma.Colour) color.RGBA {
	if !c.IsSet() {
		return color.RGBA{}
	}
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 0xff}
}

// StyleEntryFromChroma returns a new style entry from corresponding chroma version
func StyleEntryFromChroma(ce chroma.StyleEntry) StyleEntry {
	return StyleEntry{
		Color:      fromColour(ce.Colour),
		Background: fromColour(ce.Background),
		Bold:       Trilean(ce.Bold),
		Italic:     Trilean(ce.Italic),
		Underline:  Trilean(ce.Underline),
		NoInherit:  ce.NoInherit,
	}
}

func (se StyleEntry) String() string {
	out := []string{}
	if se.Bold != Pass {
		out = append(out, se.Bold.Prefix("bold"))
	}
	if se.Italic != Pass {
		out = append(out, se.Italic.Prefix("italic"))
	}
	if se.Underline != Pass {
		out = append(out, se.Underline.Prefix("underline"))
	}
	if se.NoInherit {
		out = append(out, "noinherit")
	}
	if !isNil(se.Color) {
		out = append(out, Hex(se.Color))
	}
	if !isNil(se.Background) {
		out = append(out, "bg:"+Hex(se.Background))
	}
	return strings.Join(out, " ")
}

// ToCSS converts StyleEntry to CSS attributes.
func (se StyleEntry) ToCSS() string {
	styles := []string{}
	if !isNil(se.Color) {
		styles = append(styles, "color: "+Hex(se.Color))
	}
	if !isNil(se.Background) {
		styles = append(styles, "background-color: "+Hex(se.Background))
	}
	if se.Bold == Yes {
		styles = append(styles, "font-weight: bold")
	}
	if se.Italic == Yes {
		styles = append(styles, "font-style: italic")
	}
	if se.Underline == Yes {
		styles = append(styles, "text-decoration: underline")
	}
	return strings.Join(styles, "; ")
}

// Sub subtracts two style entries, returning an entry with only the differences set
func (se StyleEntry) Sub(e StyleEntry) StyleEntry {
	out := StyleEntry{}
	if e.Color != se.Color {
		out.Color = se.Color
	}
	if e.Background != se.Background {
		out.Background = se.Background
	}
	if e.Bold != se.Bold {
		out.Bold = se.Bold
	}
	if e.Italic != se.Italic {
		out.Italic = se.Italic
	}
	if e.Underline != se.Underline {
		out.Underline = se.Underline
	}
	return out
}

// Inherit styles from ancestors.
//
// Ancestors should be provided from oldest, furthest away to newest, closest.
func (se StyleEntry) Inherit(ancestors ...StyleEntry) StyleEntry {
	out := se
	for i := len(ancestors) - 1; i >= 0; i-- {
		if out.NoInherit {
			return out
		}
		ancestor := ancestors[i]
		if isNil(out.Color) {
			out.Color = ancestor.Color
		}
		if isNil(out.Background) {
			out.Background = ancestor.Background
		}
		if out.Bold == Pass {
			out.Bold = ancestor.Bold
		}
		if out.Italic == Pass {
			out.Italic = ancestor.Italic
		}
		if out.Underline == Pass {
			out.Underline = ancestor.Underline
		}
	}
	return out
}

func (se StyleEntry) IsZero() bool {
	return isNil(se.Color) && isNil(se.Background) && se.Bold == Pass && se.Italic == Pass && se.Underline == Pass && !se.NoInherit
}

// Style is a full style map of styles for different token.Tokens tag values
type Style map[token.Tokens]*StyleEntry

// FromChroma returns the style for a chroma style, taking the entry of
// each token kind that the chroma style defines.
func FromChroma(cs *chroma.Style) Style {
	hs := Style{}
	for tk := token.None; tk < token.TokensN; tk++ {
		ct := ChromaFromToken(tk)
		if !cs.Has(ct) {
			continue
		}
		se := StyleEntryFromChroma(cs.Get(ct))
		hs[tk] = &se
	}
	bg := StyleEntryFromChroma(cs.Get(chroma.Background))
	text := hs.TagRaw(token.Text).Inherit(bg)
	hs[token.Text] = &text
	return hs
}

// CopyFrom copies a style from source style
func (hs *Style) CopyFrom(ss Style) {
	*hs = make(Style, len(ss))
	for k, v := range ss {
		se := *v
		(*hs)[k] = &se
	}
}

// TagRaw returns a StyleEntry for given tag without any inheritance of anything
// will be IsZero if not defined for this style
func (hs Style) TagRaw(tag token.Tokens) StyleEntry {
	if len(hs) == 0 {
		return StyleEntry{}
	}
	if se, has := hs[tag]; has {
		return *se
	}
	return StyleEntry{}
}

// Tag returns a StyleEntry for given Tag.
// Will try sub-category or category if an exact match is not found.
func (hs Style) Tag(tag token.Tokens) StyleEntry {
	return hs.TagRaw(tag).Inherit(
		hs.TagRaw(token.Text),
		hs.TagRaw(tag.Cat()),
		hs.TagRaw(tag.SubCat()))
}

// ToCSS generates a CSS style sheet for this style, by token.Tokens tag
func (hs Style) ToCSS() map[token.Tokens]string {
	css := map[token.Tokens]string{}
	for ht := token.None; ht < token.TokensN; ht++ {
		entry := hs.Tag(ht)
		if entry.IsZero() {
			continue
		}
		css[ht] = entry.ToCSS()
	}
	return css
}

// OpenJSON opens the style from a JSON-formatted file.
func (hs *Style) OpenJSON(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, hs)
}

// SaveJSON saves the style to a JSON-formatted file.
func (hs Style) SaveJSON(filename string) error {
	b, err := json.MarshalIndent(hs, "", "  ")
	if err != nil {
		return errors.Log(err) // unlikely
	}
	return os.WriteFile(filename, b, 0644)
}
