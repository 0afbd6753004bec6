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

// ParserEventKind discriminates the variants of ParserEvent.
type ParserEventKind uint8

const (
	EventPrint ParserEventKind = iota
	EventExecute
	EventEscape
	EventCSI
	EventDCS
	EventOSC
)

// ParserEvent is a single typed unit produced by Parser.ParseApplication or
// Parser.ParseInput. Only the fields relevant to Kind are populated.
type ParserEvent struct {
	Kind ParserEventKind

	// EventPrint, EventExecute
	Rune rune

	// EventPrint: the rune's display width in cells, as classified by
	// runewidth (0 for combining marks, 2 for East Asian wide/fullwidth).
	Width int

	// EventExecute: true if this control byte was executed while the
	// parser was in the Escape state (relevant to input-mode Alt+key
	// disambiguation).
	FromEscape bool

	// EventEscape, EventCSI, EventDCS
	Intermediates string
	Final         rune

	// EventCSI, EventDCS
	Params Params

	// EventDCS
	Data []byte

	// EventOSC
	OSCData       []byte
	OSCTerminator string // exactly "\a" or "\x1b\\" as received
}
