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

// Key names a logical key, independent of any particular wire encoding,
// covering everything the Kitty keyboard protocol can report.
type Key int

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyQuote
	KeyComma
	KeyMinus
	KeySlash
	KeySemiColon
	KeyEqual
	KeyLeftBracket
	KeyBackSlash
	KeyRightBracket
	KeyBacktick

	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyMenu
	KeyPause
	KeyPrintScreen

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyKeyPadBegin

	KeyCapsLock
	KeyScrollLock
	KeyNumLock

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34

	KeyKeyPad0
	KeyKeyPad1
	KeyKeyPad2
	KeyKeyPad3
	KeyKeyPad4
	KeyKeyPad5
	KeyKeyPad6
	KeyKeyPad7
	KeyKeyPad8
	KeyKeyPad9
	KeyKeyPadDecimal
	KeyKeyPadDivide
	KeyKeyPadMultiply
	KeyKeyPadSubtract
	KeyKeyPadAdd
	KeyKeyPadEnter
	KeyKeyPadEqual
	KeyKeyPadSeparator
	KeyKeyPadLeft
	KeyKeyPadRight
	KeyKeyPadUp
	KeyKeyPadDown
	KeyKeyPadPageUp
	KeyKeyPadPageDown
	KeyKeyPadHome
	KeyKeyPadEnd
	KeyKeyPadInsert
	KeyKeyPadDelete

	KeyMediaPlay
	KeyMediaPause
	KeyMediaPlayPause
	KeyMediaReverse
	KeyMediaStop
	KeyMediaFastForward
	KeyMediaRewind
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyMediaRecord
	KeyLowerVolume
	KeyRaiseVolume
	KeyMuteVolume

	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyLeftHyper
	KeyLeftMeta
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyRightHyper
	KeyRightMeta
	KeyIsoLevel3Shift
	KeyIsoLevel5Shift
)

// Modifiers is a bitset over the modifier keys a KeyEvent may report,
// matching the encoding of the Kitty keyboard protocol's modifier field
// (wire value is modifiers+1).
type Modifiers uint8

const ModNone Modifiers = 0

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModControl
	ModSuper
	ModHyper
	ModMeta
	ModCapsLock
	ModNumLock
)

// KeyEventType discriminates press, repeat, and release events, as
// reported by the Kitty keyboard protocol (legacy and SS3 encodings are
// always Press).
type KeyEventType int

const (
	KeyPress KeyEventType = iota + 1
	KeyRepeat
	KeyRelease
)

// KeyEvent is a single decoded key press/repeat/release, optionally
// carrying the UTF-8 text it produces.
type KeyEvent struct {
	Type      KeyEventType
	Key       Key
	Text      string
	Modifiers Modifiers
}

func keyDown(key Key, text string, mods Modifiers) KeyEvent {
	return KeyEvent{Type: KeyPress, Key: key, Text: text, Modifiers: mods}
}

type codePointMapping struct {
	codePoint rune
	key       Key
	modifiers Modifiers
}

// legacyCodePointMappings decodes bare bytes received from the terminal
// in Base state: C0 controls as Ctrl-modified letters, and printable
// ASCII as its base key (plus Shift where the glyph implies it).
var legacyCodePointMappings = []codePointMapping{
	{0x00, KeySpace, ModControl},
	{0x01, KeyA, ModControl},
	{0x02, KeyB, ModControl},
	{0x03, KeyC, ModControl},
	{0x04, KeyD, ModControl},
	{0x05, KeyE, ModControl},
	{0x06, KeyF, ModControl},
	{0x07, KeyG, ModControl},
	{0x08, KeyBackspace, ModControl},
	{0x09, KeyTab, ModNone},
	{0x0a, KeyJ, ModControl},
	{0x0b, KeyK, ModControl},
	{0x0c, KeyL, ModControl},
	{0x0d, KeyEnter, ModControl},
	{0x0e, KeyN, ModControl},
	{0x0f, KeyO, ModControl},
	{0x10, KeyP, ModControl},
	{0x11, KeyQ, ModControl},
	{0x12, KeyR, ModControl},
	{0x13, KeyS, ModControl},
	{0x14, KeyT, ModControl},
	{0x15, KeyU, ModControl},
	{0x16, KeyV, ModControl},
	{0x17, KeyW, ModControl},
	{0x18, KeyX, ModControl},
	{0x19, KeyY, ModControl},
	{0x1a, KeyZ, ModControl},
	{0x1b, KeyEscape, ModNone},
	{0x1c, KeyBackSlash, ModControl},
	{0x1d, KeyRightBracket, ModControl},
	{0x1e, Key6, ModControl},
	{0x1f, Key7, ModControl},

	{' ', KeySpace, ModNone},
	{'!', Key1, ModShift},
	{'"', KeyQuote, ModShift},
	{'#', Key3, ModShift},
	{'$', Key4, ModShift},
	{'%', Key5, ModShift},
	{'&', Key7, ModShift},
	{'\'', KeyQuote, ModNone},
	{'(', Key9, ModShift},
	{')', Key0, ModShift},
	{'*', Key8, ModShift},
	{'+', KeyEqual, ModShift},
	{',', KeyComma, ModNone},
	{'-', KeyMinus, ModNone},
	{'.', KeyD, ModNone},
	{'/', KeySlash, ModNone},
	{'0', Key0, ModNone},
	{'1', Key1, ModNone},
	{'2', Key2, ModNone},
	{'3', Key3, ModNone},
	{'4', Key4, ModNone},
	{'5', Key5, ModNone},
	{'6', Key6, ModNone},
	{'7', Key7, ModNone},
	{'8', Key8, ModNone},
	{'9', Key9, ModNone},
	{':', KeySemiColon, ModShift},
	{';', KeySemiColon, ModNone},
	{'<', KeyComma, ModShift},
	{'=', KeyEqual, ModNone},
	{'>', KeyD, ModShift},
	{'?', KeySlash, ModShift},
	{'@', Key2, ModShift},
	{'A', KeyA, ModShift},
	{'B', KeyB, ModShift},
	{'C', KeyC, ModShift},
	{'D', KeyD, ModShift},
	{'E', KeyE, ModShift},
	{'F', KeyF, ModShift},
	{'G', KeyG, ModShift},
	{'H', KeyH, ModShift},
	{'I', KeyI, ModShift},
	{'J', KeyJ, ModShift},
	{'K', KeyK, ModShift},
	{'L', KeyL, ModShift},
	{'M', KeyM, ModShift},
	{'N', KeyN, ModShift},
	{'O', KeyO, ModShift},
	{'P', KeyP, ModShift},
	{'Q', KeyQ, ModShift},
	{'R', KeyR, ModShift},
	{'S', KeyS, ModShift},
	{'T', KeyT, ModShift},
	{'U', KeyU, ModShift},
	{'V', KeyV, ModShift},
	{'W', KeyW, ModShift},
	{'X', KeyX, ModShift},
	{'Y', KeyY, ModShift},
	{'Z', KeyZ, ModShift},
	{'[', KeyLeftBracket, ModNone},
	{'\\', KeyBackSlash, ModNone},
	{']', KeyRightBracket, ModNone},
	{'^', Key6, ModShift},
	{'_', KeyMinus, ModShift},
	{'`', KeyBacktick, ModNone},
	{'a', KeyA, ModNone},
	{'b', KeyB, ModNone},
	{'c', KeyC, ModNone},
	{'d', KeyD, ModNone},
	{'e', KeyE, ModNone},
	{'f', KeyF, ModNone},
	{'g', KeyG, ModNone},
	{'h', KeyH, ModNone},
	{'i', KeyI, ModNone},
	{'j', KeyJ, ModNone},
	{'k', KeyK, ModNone},
	{'l', KeyL, ModNone},
	{'m', KeyM, ModNone},
	{'n', KeyN, ModNone},
	{'o', KeyO, ModNone},
	{'p', KeyP, ModNone},
	{'q', KeyQ, ModNone},
	{'r', KeyR, ModNone},
	{'s', KeyS, ModNone},
	{'t', KeyT, ModNone},
	{'u', KeyU, ModNone},
	{'v', KeyV, ModNone},
	{'w', KeyW, ModNone},
	{'x', KeyX, ModNone},
	{'y', KeyY, ModNone},
	{'z', KeyZ, ModNone},
	{'{', KeyLeftBracket, ModShift},
	{'|', KeyBackSlash, ModShift},
	{'}', KeyRightBracket, ModShift},
	{'~', KeyBacktick, ModShift},

	{0x7f, KeyBackspace, ModNone},
}

// ss3Mappings decodes the one-byte payload of an SS3 (ESC O x) sequence,
// used for cursor keys in application-cursor-keys mode.
var ss3Mappings = []codePointMapping{
	{'A', KeyUp, ModNone},
	{'B', KeyDown, ModNone},
	{'C', KeyRight, ModNone},
	{'D', KeyLeft, ModNone},
	{'E', KeyKeyPadBegin, ModNone},
	{'H', KeyHome, ModNone},
	{'F', KeyEnd, ModNone},
	{'P', KeyF1, ModNone},
	{'Q', KeyF2, ModNone},
	{'R', KeyF3, ModNone},
	{'S', KeyF4, ModNone},
}

// legacyFunctionalKeyMappings decodes the leading number of a "CSI n ~"
// sequence. The gap at 16 and 22 is inherited from the wire protocol this
// reproduces, not a bug: no code is assigned to those numbers.
var legacyFunctionalKeyMappings = []codePointMapping{
	{2, KeyInsert, ModNone},
	{3, KeyDelete, ModNone},
	{5, KeyPageUp, ModNone},
	{6, KeyPageDown, ModNone},
	{7, KeyHome, ModNone},
	{8, KeyEnd, ModNone},
	{11, KeyF1, ModNone},
	{12, KeyF2, ModNone},
	{13, KeyF3, ModNone},
	{14, KeyF4, ModNone},
	{15, KeyF5, ModNone},
	{17, KeyF6, ModNone},
	{18, KeyF7, ModNone},
	{19, KeyF8, ModNone},
	{20, KeyF9, ModNone},
	{21, KeyF10, ModNone},
	{23, KeyF11, ModNone},
	{24, KeyF12, ModNone},
	{29, KeyMenu, ModNone},
}

// codePointKeyMappings decodes the leading code point of a "CSI n u"
// (Kitty unified key protocol) sequence: legacy ASCII plus the Kitty
// private-use-area codes for keys with no Unicode representation.
//
// Code 57448 is filled in as RightControl; the original mapping table
// this is grounded on omits 57448 and instead assigns 57449 to both
// RightControl and RightAlt, which cannot be right since the two keys
// would then be indistinguishable. 57449 is corrected to RightAlt here;
// 57450-57454 were already correct in the original and are unchanged —
// see SPEC_FULL.md's Resolved Open Questions.
var codePointKeyMappings = []codePointMapping{
	{9, KeyTab, ModNone},
	{13, KeyEnter, ModNone},
	{27, KeyEscape, ModNone},
	{' ', KeySpace, ModNone},
	{'\'', KeyQuote, ModNone},
	{',', KeyComma, ModNone},
	{'-', KeyMinus, ModNone},
	{'.', KeyD, ModNone},
	{'/', KeySlash, ModNone},
	{'0', Key0, ModNone},
	{'1', Key1, ModNone},
	{'2', Key2, ModNone},
	{'3', Key3, ModNone},
	{'4', Key4, ModNone},
	{'5', Key5, ModNone},
	{'6', Key6, ModNone},
	{'7', Key7, ModNone},
	{'8', Key8, ModNone},
	{'9', Key9, ModNone},
	{';', KeySemiColon, ModNone},
	{'=', KeyEqual, ModNone},
	{'[', KeyLeftBracket, ModNone},
	{'\\', KeyBackSlash, ModNone},
	{']', KeyRightBracket, ModNone},
	{'`', KeyBacktick, ModNone},
	{'a', KeyA, ModNone},
	{'b', KeyB, ModNone},
	{'c', KeyC, ModNone},
	{'d', KeyD, ModNone},
	{'e', KeyE, ModNone},
	{'f', KeyF, ModNone},
	{'g', KeyG, ModNone},
	{'h', KeyH, ModNone},
	{'i', KeyI, ModNone},
	{'j', KeyJ, ModNone},
	{'k', KeyK, ModNone},
	{'l', KeyL, ModNone},
	{'m', KeyM, ModNone},
	{'n', KeyN, ModNone},
	{'o', KeyO, ModNone},
	{'p', KeyP, ModNone},
	{'q', KeyQ, ModNone},
	{'r', KeyR, ModNone},
	{'s', KeyS, ModNone},
	{'t', KeyT, ModNone},
	{'u', KeyU, ModNone},
	{'v', KeyV, ModNone},
	{'w', KeyW, ModNone},
	{'x', KeyX, ModNone},
	{'y', KeyY, ModNone},
	{'z', KeyZ, ModNone},
	{127, KeyBackspace, ModNone},

	{57358, KeyCapsLock, ModNone},
	{57359, KeyScrollLock, ModNone},
	{57360, KeyNumLock, ModNone},
	{57361, KeyPrintScreen, ModNone},
	{57362, KeyPause, ModNone},
	{57363, KeyMenu, ModNone},
	{57376, KeyF13, ModNone},
	{57377, KeyF14, ModNone},
	{57378, KeyF15, ModNone},
	{57379, KeyF16, ModNone},
	{57380, KeyF17, ModNone},
	{57381, KeyF18, ModNone},
	{57382, KeyF19, ModNone},
	{57383, KeyF20, ModNone},
	{57384, KeyF21, ModNone},
	{57385, KeyF22, ModNone},
	{57386, KeyF23, ModNone},
	{57387, KeyF24, ModNone},
	{57388, KeyF25, ModNone},
	{57389, KeyF26, ModNone},
	{57390, KeyF27, ModNone},
	{57391, KeyF28, ModNone},
	{57392, KeyF29, ModNone},
	{57393, KeyF30, ModNone},
	{57394, KeyF31, ModNone},
	{57395, KeyF32, ModNone},
	{57396, KeyF33, ModNone},
	{57397, KeyF34, ModNone},
	{57398, KeyF13, ModNone},
	{57399, KeyKeyPad0, ModNone},
	{57400, KeyKeyPad1, ModNone},
	{57401, KeyKeyPad2, ModNone},
	{57402, KeyKeyPad3, ModNone},
	{57403, KeyKeyPad4, ModNone},
	{57404, KeyKeyPad5, ModNone},
	{57405, KeyKeyPad6, ModNone},
	{57406, KeyKeyPad7, ModNone},
	{57407, KeyKeyPad8, ModNone},
	{57408, KeyKeyPad9, ModNone},
	{57409, KeyKeyPadDecimal, ModNone},
	{57410, KeyKeyPadDivide, ModNone},
	{57411, KeyKeyPadMultiply, ModNone},
	{57412, KeyKeyPadSubtract, ModNone},
	{57413, KeyKeyPadAdd, ModNone},
	{57414, KeyKeyPadEnter, ModNone},
	{57415, KeyKeyPadEqual, ModNone},
	{57416, KeyKeyPadSeparator, ModNone},
	{57417, KeyKeyPadLeft, ModNone},
	{57418, KeyKeyPadRight, ModNone},
	{57419, KeyKeyPadUp, ModNone},
	{57420, KeyKeyPadDown, ModNone},
	{57421, KeyKeyPadPageUp, ModNone},
	{57422, KeyKeyPadPageDown, ModNone},
	{57423, KeyKeyPadHome, ModNone},
	{57424, KeyKeyPadEnd, ModNone},
	{57425, KeyKeyPadInsert, ModNone},
	{57426, KeyKeyPadDelete, ModNone},
	{57427, KeyKeyPadBegin, ModNone},
	{57428, KeyMediaPlay, ModNone},
	{57429, KeyMediaPause, ModNone},
	{57430, KeyMediaPlayPause, ModNone},
	{57431, KeyMediaReverse, ModNone},
	{57432, KeyMediaStop, ModNone},
	{57433, KeyMediaFastForward, ModNone},
	{57434, KeyMediaRewind, ModNone},
	{57435, KeyMediaTrackNext, ModNone},
	{57436, KeyMediaTrackPrevious, ModNone},
	{57437, KeyMediaRecord, ModNone},
	{57438, KeyLowerVolume, ModNone},
	{57439, KeyRaiseVolume, ModNone},
	{57440, KeyMuteVolume, ModNone},
	{57441, KeyLeftShift, ModNone},
	{57442, KeyLeftControl, ModNone},
	{57443, KeyLeftAlt, ModNone},
	{57444, KeyLeftSuper, ModNone},
	{57445, KeyLeftHyper, ModNone},
	{57446, KeyLeftMeta, ModNone},
	{57447, KeyRightShift, ModNone},
	{57448, KeyRightControl, ModNone},
	{57449, KeyRightAlt, ModNone},
	{57450, KeyRightSuper, ModNone},
	{57451, KeyRightHyper, ModNone},
	{57452, KeyRightMeta, ModNone},
	{57453, KeyIsoLevel3Shift, ModNone},
	{57454, KeyIsoLevel5Shift, ModNone},
}

func lookupMapping(table []codePointMapping, codePoint rune) (codePointMapping, bool) {
	for _, m := range table {
		if m.codePoint == codePoint {
			return m, true
		}
	}
	return codePointMapping{}, false
}

func keyEventFromLegacyCodePoint(codePoint rune, base Modifiers) KeyEvent {
	if m, ok := lookupMapping(legacyCodePointMappings, codePoint); ok {
		text := ""
		if codePoint >= 32 && codePoint < 127 {
			text = string(codePoint)
		}
		return keyDown(m.key, text, m.modifiers|base)
	}
	return keyDown(KeyNone, string(codePoint), base)
}

func keyEventFromSs3CodePoint(codePoint rune, base Modifiers) (KeyEvent, bool) {
	if m, ok := lookupMapping(ss3Mappings, codePoint); ok {
		return keyDown(m.key, "", base|m.modifiers), true
	}
	return KeyEvent{}, false
}

func keyEventFromLegacyFunctionalKey(number rune, base Modifiers) (KeyEvent, bool) {
	if m, ok := lookupMapping(legacyFunctionalKeyMappings, number); ok {
		return keyDown(m.key, "", base|m.modifiers), true
	}
	return KeyEvent{}, false
}

func keyEventFromCodePoint(number rune, base Modifiers, text string, typ KeyEventType) (KeyEvent, bool) {
	if m, ok := lookupMapping(codePointKeyMappings, number); ok {
		return KeyEvent{Type: typ, Key: m.key, Text: text, Modifiers: base | m.modifiers}, true
	}
	return KeyEvent{}, false
}

type inputState int

const (
	inputBase inputState = iota
	inputEscape
	inputCSIState
	inputSS3State
)

// InputParser is the terminal input parser of spec.md §4.3: a small
// 4-state machine converting code points received *from* the controlling
// terminal (as opposed to an application's output) into KeyEvents.
type InputParser struct {
	state       inputState
	accumulator []rune
	events      []KeyEvent
}

// NewInputParser returns an InputParser in the Base state.
func NewInputParser() *InputParser {
	return &InputParser{}
}

func (p *InputParser) emit(ev KeyEvent) {
	p.events = append(p.events, ev)
}

// Parse feeds input through the machine and returns every KeyEvent
// produced. If the machine ends in the Escape state with no further
// input, a bare Escape key press is emitted, since a lone ESC byte with
// nothing following it is assumed to be the user pressing Escape rather
// than a partially transmitted sequence.
func (p *InputParser) Parse(input []rune) []KeyEvent {
	p.events = p.events[:0]
	for _, c := range input {
		p.handleCodePoint(c)
	}
	if p.state == inputEscape {
		p.emit(keyDown(KeyEscape, "", ModNone))
		p.state = inputBase
	}
	return p.events
}

func (p *InputParser) handleCodePoint(c rune) {
	switch p.state {
	case inputBase:
		p.handleBase(c)
	case inputEscape:
		p.handleEscape(c)
	case inputCSIState:
		p.handleCSI(c)
	case inputSS3State:
		p.handleSS3(c)
	}
}

func (p *InputParser) handleBase(c rune) {
	p.accumulator = p.accumulator[:0]
	if c == 0x1b {
		p.state = inputEscape
		return
	}
	p.emit(keyEventFromLegacyCodePoint(c, ModNone))
}

func (p *InputParser) handleEscape(c rune) {
	switch c {
	case '[':
		p.state = inputCSIState
	case 'O':
		p.state = inputSS3State
	default:
		p.emit(keyEventFromLegacyCodePoint(c, ModAlt))
		p.state = inputBase
	}
}

func (p *InputParser) handleCSI(c rune) {
	if c == ';' || c == ':' || (c >= '0' && c <= '9') {
		p.accumulator = append(p.accumulator, c)
		return
	}

	var acc paramAccumulator
	for _, d := range p.accumulator {
		switch {
		case d >= '0' && d <= '9':
			acc.addDigit(uint32(d - '0'))
		case d == ';':
			acc.separator(false)
		case d == ':':
			acc.separator(true)
		}
	}
	var nums Params
	if len(p.accumulator) > 0 {
		nums = acc.finish()
	}

	codePoint := rune(nums.Get(0, 1))
	mods := ModNone
	if nums.Len() >= 2 {
		mods = Modifiers(nums.Get(1, 1) - 1)
	}

	switch c {
	case 'u':
		typ := KeyPress
		if nums.Len() >= 2 {
			v := nums.GetSubParam(1, 1, uint32(typ))
			if v >= uint32(KeyPress) && v <= uint32(KeyRelease) {
				typ = KeyEventType(v)
			}
		}
		var text string
		if nums.Len() >= 3 && nums.GetSubParam(2, 0, 0) != 0 {
			sub := nums.SubParamsFrom(2, 0)
			rs := make([]rune, 0, len(sub))
			for _, s := range sub {
				rs = append(rs, rune(s.Value))
			}
			text = string(rs)
		}
		if ev, ok := keyEventFromCodePoint(codePoint, mods, text, typ); ok {
			p.emit(ev)
		}
	case '~':
		if ev, ok := keyEventFromLegacyFunctionalKey(codePoint, mods); ok {
			p.emit(ev)
		}
	default:
		if ev, ok := keyEventFromSs3CodePoint(c, mods); ok {
			p.emit(ev)
		}
	}
	p.state = inputBase
}

func (p *InputParser) handleSS3(c rune) {
	if ev, ok := keyEventFromSs3CodePoint(c, ModNone); ok {
		p.emit(ev)
	}
	p.state = inputBase
}
