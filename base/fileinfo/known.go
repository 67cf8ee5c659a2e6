// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileinfo

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Known is an enumerated list of known file types, for which
// appropriate actions can be taken etc.
type Known int32

// Categories is a functional category for files.
type Categories int32

const (
	// UnknownCategory is an unknown file category
	UnknownCategory Categories = iota

	// Code is a programming language file
	Code

	// Doc is an editable word processing or markup file
	Doc

	// Data is some kind of structured data file
	Data

	// Text is some other kind of text file
	Text
)

// These are the known file types, organized by category
const (
	// Unknown = a non-known file type
	Unknown Known = iota

	// Code types
	C
	Cpp
	Go
	Java
	Makefile
	Perl
	Python
	Shell

	// Doc types
	HTML
	Markdown
	TeX

	// Data types
	JSON
	XML

	// Text types
	PlainText

	// KnownN is the number of known types
	KnownN
)

var knownNames = [...]string{
	Unknown:   "Unknown",
	C:         "C",
	Cpp:       "Cpp",
	Go:        "Go",
	Java:      "Java",
	Makefile:  "Makefile",
	Perl:      "Perl",
	Python:    "Python",
	Shell:     "Shell",
	HTML:      "HTML",
	Markdown:  "Markdown",
	TeX:       "TeX",
	JSON:      "JSON",
	XML:       "XML",
	PlainText: "PlainText",
}

// String returns the name of the known file type.
func (kn Known) String() string {
	if kn < 0 || kn >= KnownN {
		return fmt.Sprintf("Known(%d)", int32(kn))
	}
	return knownNames[kn]
}

// Cat returns the Cat category for given known file type
func (kn Known) Cat() Categories {
	switch {
	case kn == Unknown:
		return UnknownCategory
	case kn <= Shell:
		return Code
	case kn <= TeX:
		return Doc
	case kn <= XML:
		return Data
	case kn < KnownN:
		return Text
	}
	return UnknownCategory
}

// KnownByName looks up known file type by caps or lowercase name
func KnownByName(name string) (Known, error) {
	for i, nm := range knownNames {
		if strings.EqualFold(nm, name) {
			return Known(i), nil
		}
	}
	return Unknown, fmt.Errorf("fileinfo.KnownByName: doesn't look like that is a known file type: %v", name)
}

// extensions maps lower-case file extensions (with the dot) to known types.
var extensions = map[string]Known{
	".c":    C,
	".h":    C,
	".cc":   Cpp,
	".cpp":  Cpp,
	".cxx":  Cpp,
	".hh":   Cpp,
	".hpp":  Cpp,
	".go":   Go,
	".java": Java,
	".mk":   Makefile,
	".pl":   Perl,
	".pm":   Perl,
	".t":    Perl,
	".pod":  Perl,
	".py":   Python,
	".sh":   Shell,
	".bash": Shell,
	".html": HTML,
	".htm":  HTML,
	".md":   Markdown,
	".tex":  TeX,
	".json": JSON,
	".xml":  XML,
	".txt":  PlainText,
}

// baseNames maps whole file names that carry no useful extension.
var baseNames = map[string]Known{
	"makefile":    Makefile,
	"gnumakefile": Makefile,
	"readme":      PlainText,
}

// KnownFromName returns the known file type for the given file name,
// based on its extension or, for extension-less names, the name itself.
func KnownFromName(filename string) Known {
	base := strings.ToLower(filepath.Base(filename))
	if kn, ok := baseNames[base]; ok {
		return kn
	}
	if kn, ok := extensions[strings.ToLower(filepath.Ext(base))]; ok {
		return kn
	}
	return Unknown
}

// KnownFromShebang returns the known file type implied by a "#!" first line,
// or Unknown.
func KnownFromShebang(first []byte) Known {
	if len(first) < 3 || first[0] != '#' || first[1] != '!' {
		return Unknown
	}
	ln := string(first[2:])
	if i := strings.IndexByte(ln, '\n'); i >= 0 {
		ln = ln[:i]
	}
	flds := strings.Fields(ln)
	if len(flds) == 0 {
		return Unknown
	}
	prog := filepath.Base(flds[0])
	if prog == "env" && len(flds) > 1 {
		prog = flds[1]
	}
	switch {
	case strings.HasPrefix(prog, "perl"):
		return Perl
	case strings.HasPrefix(prog, "python"):
		return Python
	case prog == "sh" || prog == "bash" || prog == "zsh" || prog == "ksh":
		return Shell
	}
	return Unknown
}
