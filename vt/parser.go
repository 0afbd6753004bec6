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
	"strings"

	"github.com/mattn/go-runewidth"
)

// parserState names the canonical VT state-diagram states, plus the two
// deviations this parser needs: Ss3 (input-mode only) and the colon
// sub-parameter latch folded into CsiParam/DcsParam.
type parserState uint8

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiIgnore
	stateDcsEntry
	stateDcsParam
	stateDcsIntermediate
	stateDcsPassthrough
	stateDcsIgnore
	stateOscString
	stateSosPmApcString
	stateSs3
)

// Parser is the escape-sequence state machine described in spec.md §4.1. It
// converts a stream of already-decoded code points into ParserEvents. A
// Parser is single-threaded and synchronous: every call fully drains its
// input before returning.
type Parser struct {
	state parserState

	intermediates strings.Builder
	params        paramAccumulator
	data          []byte
	oscSawBel     bool

	// onStateExit is an action registered by the state being left, run
	// (and cleared) the moment transition() moves to a new state. This
	// is how OSC/DCS emission and pending-parameter flushing happen at
	// the right point in the byte stream rather than at entry of the
	// next state.
	onStateExit func()

	// awaitingST is set when ESC is seen while leaving a string state
	// (OSC, DCS passthrough/ignore, SOS/PM/APC) whose terminator may be
	// "ESC \": the very next byte is consumed silently if it is '\'
	// (completing the terminator) rather than re-dispatched as its own
	// escape sequence.
	awaitingST bool

	events []ParserEvent

	// inputMode distinguishes ParseInput (keyboard-bound) semantics from
	// ParseApplication (screen-bound) semantics for the duration of one
	// public call.
	inputMode bool
}

// NewParser returns a Parser in the Ground state.
func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) emit(ev ParserEvent) {
	p.events = append(p.events, ev)
}

// transition moves to the next state, running and clearing any pending
// on-leave action first.
func (p *Parser) transition(next parserState) {
	if p.onStateExit != nil {
		fn := p.onStateExit
		p.onStateExit = nil
		fn()
	}
	p.state = next
}

func (p *Parser) clearEscapeCollectors() {
	p.intermediates.Reset()
	p.params.reset()
	p.data = p.data[:0]
}

// Classification predicates, see spec.md §4.1.

func isPrintable(c rune) bool {
	return (c >= 0x20 && c <= 0x7F) || c >= 0xA0
}

func isExecutable(c rune) bool {
	return c <= 0x17 || c == 0x19 || (c >= 0x1C && c <= 0x1F)
}

func isCsiTerminator(c rune) bool {
	return c >= 0x40 && c <= 0x7E
}

func isParamByte(c rune) bool {
	return (c >= 0x30 && c <= 0x39) || c == 0x3B || c == 0x3A
}

func isIntermediate(c rune) bool {
	return c >= 0x20 && c <= 0x2F
}

func isEscapeTerminator(c rune) bool {
	switch {
	case c >= 0x30 && c <= 0x4F:
		return true
	case c >= 0x51 && c <= 0x57:
		return true
	case c == 0x59 || c == 0x5A || c == 0x5C:
		return true
	case c >= 0x60 && c <= 0x7E:
		return true
	}
	return false
}

const (
	cBEL = 0x07
	cESC = 0x1B
)

// ParseApplication feeds data (already-decoded code points) through the
// machine in application mode and returns every event produced.
func (p *Parser) ParseApplication(data []rune) []ParserEvent {
	p.inputMode = false
	p.events = p.events[:0]
	for _, c := range data {
		p.step(c)
	}
	return p.events
}

// ParseInput feeds data through the machine in input mode. If flush is
// true and the machine is left stuck in the Escape state with no
// following byte (the caller has no more buffered input right now), a
// synthetic Execute(ESC) is produced and the state resets to Ground —
// this is the explicit substitute for a timeout-based Escape/Alt
// disambiguation.
func (p *Parser) ParseInput(data []rune, flush bool) []ParserEvent {
	p.inputMode = true
	p.events = p.events[:0]
	for _, c := range data {
		p.step(c)
	}
	if flush && p.state == stateEscape {
		p.emit(ParserEvent{Kind: EventExecute, Rune: cESC, FromEscape: false})
		p.transition(stateGround)
	}
	return p.events
}

func (p *Parser) step(c rune) {
	// Global transitions, from any state.
	if c == 0x18 || c == 0x1A {
		p.emit(ParserEvent{Kind: EventExecute, Rune: c, FromEscape: p.state == stateEscape})
		p.transition(stateGround)
		return
	}
	if c == cESC {
		if p.inputMode && p.state == stateEscape {
			// ESC ESC: emit the pending ESC as a key press.
			p.emit(ParserEvent{Kind: EventExecute, Rune: cESC, FromEscape: false})
			p.transition(stateGround)
			return
		}
		prevState := p.state
		p.transition(stateEscape)
		p.clearEscapeCollectors()
		p.awaitingST = prevState == stateOscString || prevState == stateDcsPassthrough ||
			prevState == stateDcsIgnore || prevState == stateSosPmApcString
		return
	}

	switch p.state {
	case stateGround:
		p.stepGround(c)
	case stateEscape:
		p.stepEscape(c)
	case stateEscapeIntermediate:
		p.stepEscapeIntermediate(c)
	case stateCsiEntry:
		p.stepCsiEntry(c)
	case stateCsiParam:
		p.stepCsiParam(c)
	case stateCsiIntermediate:
		p.stepCsiIntermediate(c)
	case stateCsiIgnore:
		p.stepCsiIgnore(c)
	case stateDcsEntry:
		p.stepDcsEntry(c)
	case stateDcsParam:
		p.stepDcsParam(c)
	case stateDcsIntermediate:
		p.stepDcsIntermediate(c)
	case stateDcsPassthrough:
		p.stepDcsPassthrough(c)
	case stateDcsIgnore:
		p.stepDcsIgnore(c)
	case stateOscString:
		p.stepOscString(c)
	case stateSosPmApcString:
		p.stepSosPmApcString(c)
	case stateSs3:
		p.stepSs3(c)
	}
}

func (p *Parser) stepGround(c rune) {
	switch {
	case isExecutable(c):
		if p.inputMode {
			p.emit(ParserEvent{Kind: EventExecute, Rune: c, FromEscape: false})
			p.transition(stateGround)
			return
		}
		p.emit(ParserEvent{Kind: EventExecute, Rune: c, FromEscape: false})
	case isPrintable(c):
		p.emit(ParserEvent{Kind: EventPrint, Rune: c, Width: runewidth.RuneWidth(c)})
	}
}

func (p *Parser) stepEscape(c rune) {
	if p.awaitingST {
		p.awaitingST = false
		if c == 0x5C {
			p.transition(stateGround)
			return
		}
		// Not a terminator after all: the preceding string was aborted
		// by an unrelated escape sequence that now starts here.
	}
	switch {
	case c == 0x5B:
		p.transition(stateCsiEntry)
	case c == 0x50:
		p.transition(stateDcsEntry)
	case c == 0x5D:
		p.enterOscString()
	case c == 0x58 || c == 0x5E || c == 0x5F:
		p.transition(stateSosPmApcString)
	case p.inputMode && c == 0x4F:
		p.transition(stateSs3)
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
		p.transition(stateEscapeIntermediate)
	case isEscapeTerminator(c):
		p.emit(ParserEvent{Kind: EventEscape, Intermediates: p.intermediates.String(), Final: c})
		p.transition(stateGround)
	default:
		if p.inputMode {
			// Unclassified byte while in Escape: Alt+key fallback.
			p.emit(ParserEvent{Kind: EventExecute, Rune: c, FromEscape: true})
			p.transition(stateGround)
		}
	}
}

func (p *Parser) stepEscapeIntermediate(c rune) {
	switch {
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
	case isEscapeTerminator(c):
		p.emit(ParserEvent{Kind: EventEscape, Intermediates: p.intermediates.String(), Final: c})
		p.transition(stateGround)
	}
}

func (p *Parser) stepCsiEntry(c rune) {
	switch {
	case c >= 0x3C && c <= 0x3F:
		p.intermediates.WriteRune(c)
		p.transition(stateCsiParam)
	case isParamByte(c):
		p.stepCsiParamByte(c)
		p.transition(stateCsiParam)
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
		p.transition(stateCsiIntermediate)
	case isCsiTerminator(c):
		p.finishCsi(c)
	default:
		p.transition(stateCsiIgnore)
	}
}

func (p *Parser) stepCsiParamByte(c rune) {
	switch {
	case c >= 0x30 && c <= 0x39:
		p.params.addDigit(uint32(c - 0x30))
	case c == 0x3B:
		p.params.separator(false)
	case c == 0x3A:
		p.params.separator(true)
	}
}

func (p *Parser) stepCsiParam(c rune) {
	switch {
	case isParamByte(c):
		p.stepCsiParamByte(c)
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
		p.transition(stateCsiIntermediate)
	case isCsiTerminator(c):
		p.finishCsi(c)
	default:
		p.transition(stateCsiIgnore)
	}
}

func (p *Parser) stepCsiIntermediate(c rune) {
	switch {
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
	case isCsiTerminator(c):
		p.finishCsi(c)
	default:
		p.transition(stateCsiIgnore)
	}
}

func (p *Parser) stepCsiIgnore(c rune) {
	if isCsiTerminator(c) {
		p.transition(stateGround)
	}
}

func (p *Parser) finishCsi(final rune) {
	params := p.params.finish()
	p.emit(ParserEvent{Kind: EventCSI, Intermediates: p.intermediates.String(), Params: params, Final: final})
	p.transition(stateGround)
}

func (p *Parser) stepDcsEntry(c rune) {
	switch {
	case c >= 0x3C && c <= 0x3F:
		p.intermediates.WriteRune(c)
		p.transition(stateDcsParam)
	case isParamByte(c):
		p.stepCsiParamByte(c)
		p.transition(stateDcsParam)
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
		p.transition(stateDcsIntermediate)
	case isCsiTerminator(c):
		p.hookDcs(c)
	default:
		p.transition(stateDcsIgnore)
	}
}

func (p *Parser) stepDcsParam(c rune) {
	switch {
	case isParamByte(c):
		p.stepCsiParamByte(c)
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
		p.transition(stateDcsIntermediate)
	case isCsiTerminator(c):
		p.hookDcs(c)
	default:
		p.transition(stateDcsIgnore)
	}
}

func (p *Parser) stepDcsIntermediate(c rune) {
	switch {
	case isIntermediate(c):
		p.intermediates.WriteRune(c)
	case isCsiTerminator(c):
		p.hookDcs(c)
	default:
		p.transition(stateDcsIgnore)
	}
}

// hookDcs registers the state-exit action that will emit the DCS event
// once the passthrough data has been collected, then enters
// DcsPassthrough.
func (p *Parser) hookDcs(final rune) {
	intermediates := p.intermediates.String()
	params := p.params.finish()
	p.data = p.data[:0]
	p.onStateExit = func() {
		p.emit(ParserEvent{Kind: EventDCS, Intermediates: intermediates, Params: params, Final: final, Data: append([]byte(nil), p.data...)})
	}
	p.state = stateDcsPassthrough
}

func (p *Parser) stepDcsPassthrough(c rune) {
	switch {
	case c == cBEL:
		p.transition(stateGround)
	case isExecutable(c) || isPrintable(c) || isIntermediate(c):
		p.data = append(p.data, []byte(string(c))...)
	default:
		p.transition(stateGround)
	}
}

func (p *Parser) stepDcsIgnore(c rune) {
	if c == cBEL {
		p.transition(stateGround)
	}
}

func (p *Parser) enterOscString() {
	p.data = p.data[:0]
	p.onStateExit = func() {
		terminator := "\x1b\\"
		if p.oscSawBel {
			terminator = "\a"
		}
		p.emit(ParserEvent{Kind: EventOSC, OSCData: append([]byte(nil), p.data...), OSCTerminator: terminator})
	}
	p.oscSawBel = false
	p.state = stateOscString
}

func (p *Parser) stepOscString(c rune) {
	switch {
	case c == cBEL:
		p.oscSawBel = true
		p.transition(stateGround)
	case isPrintable(c) || isIntermediate(c):
		p.data = append(p.data, []byte(string(c))...)
	}
}

func (p *Parser) stepSosPmApcString(c rune) {
	if c == cBEL {
		p.transition(stateGround)
	}
}

// stepSs3 consumes exactly one code point and re-emits it as a CSI event
// with no intermediates and no parameters, so downstream consumers only
// ever handle one variety of cursor-key-style sequence.
func (p *Parser) stepSs3(c rune) {
	p.emit(ParserEvent{Kind: EventCSI, Final: c})
	p.transition(stateGround)
}
