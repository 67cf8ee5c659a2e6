// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command japi provides command line access to the Japi text core:
// diffs, syntax highlighting, lexing, bracket balancing, encoding
// conversion, find and replace, and file watching.
package main

import (
	"os"
)

func main() {
	if err := Execute(newRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
