// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is an [slog.Handler] that writes one line per record:
// the level (colored when the output supports it), the message,
// and then all of the attributes as key=value pairs.
type Handler struct {
	mu      *sync.Mutex
	out     io.Writer
	profile termenv.Profile
	attrs   []slog.Attr
	group   string
}

// NewHandler returns a new [Handler] writing to the given writer,
// filtering records below [UserLevel]. The color profile is detected
// from the writer with termenv.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: w, profile: termenv.NewOutput(w).EnvColorProfile()}
}

// SetProfile sets the color profile used for the level text.
// [termenv.Ascii] turns coloring off.
func (h *Handler) SetProfile(p termenv.Profile) *Handler {
	h.profile = p
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b bytes.Buffer
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = slices.Concat(h.attrs, h.qualify(attrs))
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}

func (h *Handler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	qa := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		qa[i] = slog.Attr{Key: h.group + "." + a.Key, Value: a.Value}
	}
	return qa
}

// writeAttr writes the attribute with its key qualified by prefix.
func writeAttr(b *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}

func (h *Handler) levelString(level slog.Level) string {
	s := termenv.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(h.profile.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(h.profile.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(h.profile.Color("4"))
	default:
		s = s.Faint()
	}
	if h.profile == termenv.Ascii {
		return level.String()
	}
	return s.String()
}
