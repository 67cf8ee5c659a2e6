// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"encoding/json"
	"os"
	"slices"
	"sync"

	"github.com/alecthomas/chroma/v2/styles"

	"japi.dev/core/base/errors"
)

// DefaultStyle is the initial default style.
const DefaultStyle = "emacs"

// Styles is a collection of styles
type Styles map[string]Style

var (
	stylesMu sync.Mutex

	// standardStyles are the styles converted from the chroma package,
	// created on first use.
	standardStyles Styles

	// customStyles are user styles, which take precedence over the
	// standard ones with the same name.
	customStyles = Styles{}
)

// AvailableStyle returns a style by name, or the default style and false
// if there is none with that name.
func AvailableStyle(name string) (Style, bool) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	if st, ok := customStyles[name]; ok {
		return st, true
	}
	std := standard()
	if st, ok := std[name]; ok {
		return st, true
	}
	return std[DefaultStyle], false
}

// StyleNames returns the sorted names of all the available styles.
func StyleNames() []string {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	nms := standard().Names()
	for nm := range customStyles {
		if !slices.Contains(nms, nm) {
			nms = append(nms, nm)
		}
	}
	slices.Sort(nms)
	return nms
}

// AddCustomStyles adds the given styles to the custom styles.
func AddCustomStyles(ss Styles) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	for nm, st := range ss {
		customStyles[nm] = st
	}
}

// standard returns the standard styles, converting them from chroma
// on first use. It must be called with stylesMu held.
func standard() Styles {
	if standardStyles == nil {
		standardStyles = make(Styles, len(styles.Registry))
		for nm, cs := range styles.Registry {
			standardStyles[nm] = FromChroma(cs)
		}
	}
	return standardStyles
}

// OpenJSON opens styles from a JSON-formatted file. You can save and open
// styles to / from files to share, experiment, transfer, etc.
func (hs *Styles) OpenJSON(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, hs)
}

// SaveJSON saves styles to a JSON-formatted file.
func (hs Styles) SaveJSON(filename string) error {
	b, err := json.MarshalIndent(hs, "", "  ")
	if err != nil {
		return errors.Log(err) // unlikely
	}
	return os.WriteFile(filename, b, 0644)
}

// Names outputs names of styles in collection
func (hs Styles) Names() []string {
	nms := make([]string, 0, len(hs))
	for nm := range hs {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}
