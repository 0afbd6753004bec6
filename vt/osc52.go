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
	"encoding/base64"
	"strings"
)

// SelectionType names one of the ten clipboard selections an OSC 52
// sequence can target. Selection and _0.._7 are the X11 PRIMARY selection
// and the eight "cut buffer" style numbered selections respectively; the
// numbered selections are always local-only (spec.md §4.4).
type SelectionType int

const (
	SelClipboard SelectionType = iota
	SelSelection
	Sel0
	Sel1
	Sel2
	Sel3
	Sel4
	Sel5
	Sel6
	Sel7
)

// selectionLetter maps a SelectionType to its OSC 52 wire letter.
// SelSelection always serializes as 'p' (never 's'), per spec.md §4.2.
func selectionLetter(s SelectionType) byte {
	switch s {
	case SelClipboard:
		return 'c'
	case SelSelection:
		return 'p'
	case Sel0, Sel1, Sel2, Sel3, Sel4, Sel5, Sel6, Sel7:
		return byte('0' + int(s-Sel0))
	}
	return 0
}

// selectionFromLetter is the inverse of selectionLetter; both 'p' and 's'
// map to SelSelection on parse.
func selectionFromLetter(b byte) (SelectionType, bool) {
	switch {
	case b == 'c':
		return SelClipboard, true
	case b == 'p' || b == 's':
		return SelSelection, true
	case b >= '0' && b <= '7':
		return Sel0 + SelectionType(b-'0'), true
	}
	return 0, false
}

// OSC52 is the parsed form of "ESC ] 52 ; <sel> ; <payload> ST".
type OSC52 struct {
	Selections []SelectionType
	Query      bool
	Data       []byte
}

// ParseOSC52 parses the body of an OSC 52 sequence: the "<sel>;<payload>"
// bytes that follow "52;" and precede the string terminator, i.e.
// ParserEvent.OSCData with the leading "52;" stripped.
func ParseOSC52(body []byte) (OSC52, bool) {
	s := string(body)
	idx := strings.IndexByte(s, ';')
	if idx < 0 {
		return OSC52{}, false
	}
	selPart, payload := s[:idx], s[idx+1:]

	var sels []SelectionType
	seen := make(map[SelectionType]bool)
	if selPart == "" {
		sels = []SelectionType{SelClipboard}
	} else {
		for i := 0; i < len(selPart); i++ {
			t, ok := selectionFromLetter(selPart[i])
			if !ok {
				return OSC52{}, false
			}
			if !seen[t] {
				seen[t] = true
				sels = append(sels, t)
			}
		}
	}

	if payload == "?" {
		return OSC52{Selections: sels, Query: true}, true
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// xterm treats invalid base64 as clearing the selection: the
		// payload parses successfully as empty data, not as a parse
		// failure.
		data = nil
	}
	return OSC52{Selections: sels, Data: data}, true
}

// Serialize renders the OSC52 back into the "52;<sel>;<payload>" body
// (without the ESC ] … ST envelope, which is the caller's concern).
func (o OSC52) Serialize() string {
	var sb strings.Builder
	sb.WriteString("52;")
	if len(o.Selections) == 0 {
		sb.WriteByte('c')
	} else {
		for _, s := range o.Selections {
			sb.WriteByte(selectionLetter(s))
		}
	}
	sb.WriteByte(';')
	if o.Query {
		sb.WriteByte('?')
	} else {
		sb.WriteString(base64.StdEncoding.EncodeToString(o.Data))
	}
	return sb.String()
}
