// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package supportedlanguages includes all the hand-written lexers; import
// it to register them with the lexer registry in a given target.
package supportedlanguages

import (
	_ "japi.dev/core/text/parse/languages/cfamily"
	_ "japi.dev/core/text/parse/languages/perl"
)
