// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	UserLevel.Set(slog.LevelInfo)
	defer UserLevel.Set(slog.LevelWarn)

	var b bytes.Buffer
	lg := slog.New(NewHandler(&b).SetProfile(termenv.Ascii))
	lg.Debug("hidden")
	lg.Info("relexed", "lines", 3)
	lg.With("file", "a.pl").WithGroup("lex").Warn("unterminated", "line", 7)

	assert.Equal(t, "INFO relexed lines=3\nWARN unterminated file=a.pl lex.line=7\n", b.String())
}
