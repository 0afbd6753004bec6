// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vt

import (
	"time"

	"go.uber.org/zap"
)

// ClipboardMode selects how Clipboard mediates reads and writes against
// the surrounding terminal's system clipboard, for Selection and
// Clipboard only — the eight numbered selections are always local.
type ClipboardMode int

const (
	ClipboardSystem ClipboardMode = iota
	ClipboardSystemWriteLocalRead
	ClipboardSystemWriteNoRead
	ClipboardLocal
	ClipboardLocalWriteNoRead
	ClipboardDisabled
)

// RequestTimeout is how long a pending system-clipboard read is given to
// answer before it is expired and answered from the local cache instead.
const RequestTimeout = time.Second

// ClipboardIdentifier names the requester of a clipboard read, so that
// replies can be routed back to the right caller (e.g. pane/tab/session).
type ClipboardIdentifier struct {
	SessionID uint64
	TabID     uint64
	PaneID    uint64
}

// ClipboardReply is one completed (or expired) read, ready to be
// re-serialized as an OSC 52 response by the caller.
type ClipboardReply struct {
	Identifier ClipboardIdentifier
	Type       SelectionType
	Data       []byte
}

type clipboardRequest struct {
	reception  time.Time
	identifier ClipboardIdentifier
}

type selectionState struct {
	data []byte
	// systemWorking latches true once any real response has been seen
	// for this selection. It is present, but never consulted, for the
	// eight numbered selections, which are always local-only — see
	// SPEC_FULL.md's Resolved Open Questions.
	systemWorking bool
	pending       []clipboardRequest
}

// Clipboard mediates between a local per-selection buffer and the
// surrounding terminal's system clipboard, per spec.md §4.4.
type Clipboard struct {
	mode     ClipboardMode
	features Feature
	state    [10]selectionState
	replies  []ClipboardReply
	log      *zap.Logger
}

// NewClipboard returns a Clipboard with empty buffers for every selection
// and a zap.NewNop() logger; callers that want visibility into expired
// system-clipboard requests pass a real one to WithLogger.
func NewClipboard(mode ClipboardMode, features Feature) *Clipboard {
	return &Clipboard{mode: mode, features: features, log: zap.NewNop()}
}

// WithLogger replaces the Clipboard's logger, returning the receiver for
// chaining at construction time.
func (c *Clipboard) WithLogger(log *zap.Logger) *Clipboard {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
	return c
}

type clipboardReadAction int

const (
	readIgnore clipboardReadAction = iota
	readRequestSystemReadLocal
	readReadLocal
	readReadSystem
)

type clipboardWriteAction int

const (
	writeIgnore clipboardWriteAction = iota
	writeSystem
	writeLocal
)

func (c *Clipboard) actionForRead(t SelectionType) clipboardReadAction {
	switch c.mode {
	case ClipboardSystem:
		// fall through to the feature/selection checks below
	case ClipboardSystemWriteLocalRead, ClipboardLocal:
		return readReadLocal
	case ClipboardSystemWriteNoRead, ClipboardLocalWriteNoRead, ClipboardDisabled:
		return readIgnore
	}

	if !c.features.Has(FeatureClipboard) {
		return readReadLocal
	}
	if t != SelSelection && t != SelClipboard {
		return readReadLocal
	}
	if c.state[t].systemWorking {
		return readReadSystem
	}
	return readRequestSystemReadLocal
}

func (c *Clipboard) actionForWrite(t SelectionType) clipboardWriteAction {
	switch c.mode {
	case ClipboardSystem, ClipboardSystemWriteLocalRead, ClipboardSystemWriteNoRead:
		// fall through to the feature/selection checks below
	case ClipboardLocal, ClipboardLocalWriteNoRead:
		return writeLocal
	case ClipboardDisabled:
		return writeIgnore
	}

	if !c.features.Has(FeatureClipboard) {
		return writeLocal
	}
	if t != SelSelection && t != SelClipboard {
		return writeLocal
	}
	return writeSystem
}

// Set stores data locally according to policy and reports whether the
// surrounding terminal should also be written via OSC 52.
func (c *Clipboard) Set(t SelectionType, data []byte, reception time.Time) bool {
	c.expire(reception)
	defer c.expire(reception)

	writeToSystem := false
	switch c.actionForWrite(t) {
	case writeIgnore:
	case writeSystem:
		writeToSystem = true
		fallthrough
	case writeLocal:
		c.state[t].data = data
	}
	return writeToSystem
}

// Request registers a read request and reports whether the surrounding
// terminal should be queried via OSC 52. If policy resolves the read
// locally, the reply is enqueued immediately.
func (c *Clipboard) Request(t SelectionType, id ClipboardIdentifier, reception time.Time) bool {
	c.expire(reception)
	defer c.expire(reception)

	requestSystem := false
	var data []byte
	haveData := false

	switch c.actionForRead(t) {
	case readIgnore:
		data, haveData = nil, true
	case readRequestSystemReadLocal:
		requestSystem = true
		fallthrough
	case readReadLocal:
		data = append([]byte(nil), c.state[t].data...)
		haveData = true
	case readReadSystem:
		requestSystem = true
	}

	if haveData {
		c.replies = append(c.replies, ClipboardReply{Identifier: id, Type: t, Data: data})
	} else {
		c.state[t].pending = append(c.state[t].pending, clipboardRequest{reception: reception, identifier: id})
	}
	return requestSystem
}

// GotResponse records a real response from the system clipboard, marking
// that selection's system path as working. An empty response is treated
// as a probable permission denial and does not overwrite the local cache.
// One pending request, if any, is answered from the (possibly just
// updated) local buffer.
func (c *Clipboard) GotResponse(t SelectionType, data []byte, reception time.Time) {
	c.expire(reception)
	defer c.expire(reception)

	state := &c.state[t]
	state.systemWorking = true
	if len(data) != 0 {
		state.data = data
	}

	if len(state.pending) > 0 {
		req := state.pending[0]
		state.pending = state.pending[1:]
		c.replies = append(c.replies, ClipboardReply{
			Identifier: req.identifier,
			Type:       t,
			Data:       append([]byte(nil), state.data...),
		})
	}
}

// TakeReplies drains and returns every reply accumulated so far, in the
// order they were enqueued.
func (c *Clipboard) TakeReplies(reception time.Time) []ClipboardReply {
	c.expire(reception)
	defer c.expire(reception)
	out := c.replies
	c.replies = nil
	return out
}

// expire pops every pending request whose deadline has passed, answering
// it with the selection's currently cached buffer and resetting that
// selection's systemWorking latch (a subsequent request will fall back to
// requesting the system clipboard again).
func (c *Clipboard) expire(reception time.Time) {
	for i := range c.state {
		state := &c.state[i]
		for len(state.pending) > 0 {
			top := state.pending[0]
			if !top.reception.Add(RequestTimeout).After(reception) {
				c.replies = append(c.replies, ClipboardReply{
					Identifier: top.identifier,
					Type:       SelectionType(i),
					Data:       append([]byte(nil), state.data...),
				})
				state.pending = state.pending[1:]
				state.systemWorking = false
				c.log.Debug("clipboard request timed out, answering from local cache",
					zap.Int("selection", int(i)),
					zap.Uint64("session", top.identifier.SessionID),
				)
				continue
			}
			break
		}
	}
}
