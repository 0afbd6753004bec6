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

import "testing"

func TestParserBasicPrintAndExecute(t *testing.T) {
	p := NewParser()
	events := p.ParseApplication([]rune("a\nb"))
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	if events[0].Kind != EventPrint || events[0].Rune != 'a' {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Kind != EventExecute || events[1].Rune != '\n' {
		t.Errorf("events[1] = %+v", events[1])
	}
	if events[2].Kind != EventPrint || events[2].Rune != 'b' {
		t.Errorf("events[2] = %+v", events[2])
	}
}

func TestParserPrintWidthClassifiesCodePoints(t *testing.T) {
	p := NewParser()
	events := p.ParseApplication([]rune("a中"))
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Width != 1 {
		t.Errorf("Width('a') = %d, want 1", events[0].Width)
	}
	if events[1].Width != 2 {
		t.Errorf("Width('\\u4e2d') = %d, want 2 (East Asian wide)", events[1].Width)
	}
}

func TestParserCSISimple(t *testing.T) {
	p := NewParser()
	events := p.ParseApplication([]rune("\x1b[1;2H"))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventCSI || ev.Final != 'H' {
		t.Fatalf("ev = %+v", ev)
	}
	if ev.Params.Get(0, 0) != 1 || ev.Params.Get(1, 0) != 2 {
		t.Errorf("params = %+v", ev.Params)
	}
}

func TestParserOSCBelTerminated(t *testing.T) {
	p := NewParser()
	events := p.ParseApplication([]rune("\x1b]0;title\a"))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventOSC || string(ev.OSCData) != "0;title" || ev.OSCTerminator != "\a" {
		t.Fatalf("ev = %+v", ev)
	}
}

func TestParserOSCStTerminated(t *testing.T) {
	p := NewParser()
	events := p.ParseApplication([]rune("\x1b]52;c;Zm9v\x1b\\"))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1 (ST must not also emit a spurious escape event)", len(events))
	}
	ev := events[0]
	if ev.Kind != EventOSC || ev.OSCTerminator != "\x1b\\" {
		t.Fatalf("ev = %+v", ev)
	}
}

func TestParserDCSPassthrough(t *testing.T) {
	p := NewParser()
	events := p.ParseApplication([]rune("\x1bP$qm\x1b\\"))
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventDCS || ev.Intermediates != "$" || ev.Final != 'q' || string(ev.Data) != "m" {
		t.Fatalf("ev = %+v", ev)
	}
}

func TestParserBareEscapeAfterStringIsNotSuppressed(t *testing.T) {
	// A standalone "ESC \" with no open string still dispatches normally.
	p := NewParser()
	events := p.ParseApplication([]rune("\x1b\\"))
	if len(events) != 1 || events[0].Kind != EventEscape || events[0].Final != '\\' {
		t.Fatalf("events = %+v", events)
	}
}

func TestParserNvimStartupStream(t *testing.T) {
	stream := "\x1b[?1049h\x1b[22;0;0t\x1b[?1h\x1b=\x1b[H\x1b[2J\x1b[?2004h" +
		"\x1b[?2026$p\x1b[0m\x1b[4:3m\x1bP$qm\x1b\\\x1b[?u\x1b[c\x1b[?25h"

	p := NewParser()
	events := p.ParseApplication([]rune(stream))
	if len(events) != 14 {
		t.Fatalf("len(events) = %d, want 14: %+v", len(events), events)
	}

	first := events[0]
	if first.Kind != EventCSI || first.Intermediates != "?" || first.Final != 'h' || first.Params.Get(0, 0) != 1049 {
		t.Errorf("events[0] = %+v", first)
	}

	var sawSubParamSGR, sawDCS bool
	for _, ev := range events {
		if ev.Kind == EventCSI && ev.Final == 'm' && ev.Params.GroupLen(0) == 2 &&
			ev.Params.Get(0, 0) == 4 && ev.Params.GetSubParam(0, 1, 0) == 3 {
			sawSubParamSGR = true
		}
		if ev.Kind == EventDCS && ev.Intermediates == "$" && ev.Final == 'q' && string(ev.Data) == "m" {
			sawDCS = true
		}
	}
	if !sawSubParamSGR {
		t.Errorf("expected a CSI('',[[4,3]],'m') event among %+v", events)
	}
	if !sawDCS {
		t.Errorf("expected a DCS($q,[],\"m\") event among %+v", events)
	}
}

func TestParserInputModeAltKey(t *testing.T) {
	// 0x7f (DEL) is neither a CSI/DCS/OSC/SS3 introducer nor a recognized
	// escape terminator, so in input mode it falls back to an
	// Alt-modified key press rather than a new escape sequence.
	p := NewParser()
	events := p.ParseInput([]rune("\x1b\x7f"), true)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventExecute || ev.Rune != 0x7f || !ev.FromEscape {
		t.Fatalf("ev = %+v, want Alt+Backspace fallback", ev)
	}
}

func TestParserInputModeEscEsc(t *testing.T) {
	p := NewParser()
	events := p.ParseInput([]rune("\x1b\x1b"), true)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Kind != EventExecute || events[0].Rune != 0x1b {
		t.Fatalf("ev = %+v, want a single Escape key press", events[0])
	}
}

func TestParserInputModeFlushStuckEscape(t *testing.T) {
	p := NewParser()
	events := p.ParseInput([]rune("\x1b"), true)
	if len(events) != 1 || events[0].Kind != EventExecute || events[0].Rune != 0x1b {
		t.Fatalf("events = %+v, want a flushed Escape key press", events)
	}

	p2 := NewParser()
	events2 := p2.ParseInput([]rune("\x1b"), false)
	if len(events2) != 0 {
		t.Fatalf("events = %+v, want no events without flush", events2)
	}
}

func TestParserInputModeSS3(t *testing.T) {
	p := NewParser()
	events := p.ParseInput([]rune("\x1bOA"), true)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Kind != EventCSI || events[0].Final != 'A' {
		t.Fatalf("ev = %+v, want SS3 folded into a CSI-shaped event", events[0])
	}
}
