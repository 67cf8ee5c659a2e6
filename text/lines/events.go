// Copyright (c) 2026, The Japi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"japi.dev/core/text/textpos"
)

// EventTypes are the types of events sent by a [Lines].
type EventTypes int32

const (
	// Change is sent for large-scale changes in the text, such as
	// opening a new file, setting new text, or saving.
	Change EventTypes = iota

	// Input is sent after every edit, including undo and redo.
	Input

	// Relex is sent after lexing changes the tags of some lines.
	Relex
)

// Event is an event sent to listeners of a [Lines].
type Event struct {

	// Type is the type of event.
	Type EventTypes

	// Edit is the edit for an [Input] event.
	Edit *textpos.Edit

	// Lines are the lines whose tags changed, for a [Relex] event.
	Lines textpos.LineRange
}

// listeners holds the listener functions for each event type.
type listeners map[EventTypes][]func(e Event)

func (ls *Lines) addListener(typ EventTypes, fun func(e Event)) {
	ls.Lock()
	defer ls.Unlock()
	if ls.listeners == nil {
		ls.listeners = listeners{}
	}
	ls.listeners[typ] = append(ls.listeners[typ], fun)
}

// OnChange adds an event listener function for the [Change] event.
func (ls *Lines) OnChange(fun func(e Event)) {
	ls.addListener(Change, fun)
}

// OnInput adds an event listener function for the [Input] event.
func (ls *Lines) OnInput(fun func(e Event)) {
	ls.addListener(Input, fun)
}

// OnRelex adds an event listener function for the [Relex] event.
func (ls *Lines) OnRelex(fun func(e Event)) {
	ls.addListener(Relex, fun)
}

//////// unexported api

func (ls *Lines) sendChange() {
	ls.pending = append(ls.pending, Event{Type: Change})
}

func (ls *Lines) sendInput(ed *textpos.Edit) {
	ls.pending = append(ls.pending, Event{Type: Input, Edit: ed})
}

func (ls *Lines) sendRelex(lr textpos.LineRange) {
	ls.pending = append(ls.pending, Event{Type: Relex, Lines: lr})
}

// unlock unlocks the mutex and then calls the listeners for the events
// queued while it was locked, so that they can use the Lines.
func (ls *Lines) unlock() {
	evs := ls.pending
	ls.pending = nil
	var fns []func(e Event)
	var fevs []Event
	for _, e := range evs {
		for _, fn := range ls.listeners[e.Type] {
			fns = append(fns, fn)
			fevs = append(fevs, e)
		}
	}
	ls.Unlock()
	for i, fn := range fns {
		fn(fevs[i])
	}
}
