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

func TestInputParserPlainLetter(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("a"))
	if len(events) != 1 {
		t.Fatalf("events = %+v, want 1", events)
	}
	if events[0].Key != KeyA || events[0].Modifiers != ModNone || events[0].Text != "a" {
		t.Errorf("events[0] = %+v", events[0])
	}
}

func TestInputParserUppercaseImpliesShift(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("A"))
	if len(events) != 1 || events[0].Key != KeyA || events[0].Modifiers != ModShift {
		t.Fatalf("events = %+v", events)
	}
}

func TestInputParserControlLetter(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune{0x03})
	if len(events) != 1 || events[0].Key != KeyC || events[0].Modifiers != ModControl {
		t.Fatalf("events = %+v, want Ctrl-C", events)
	}
}

func TestInputParserSS3CursorKeys(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1bOA\x1bOB"))
	if len(events) != 2 {
		t.Fatalf("events = %+v, want 2", events)
	}
	if events[0].Key != KeyUp || events[1].Key != KeyDown {
		t.Fatalf("events = %+v, want Up then Down", events)
	}
}

func TestInputParserLegacyFunctionalKey(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1b[3~"))
	if len(events) != 1 || events[0].Key != KeyDelete {
		t.Fatalf("events = %+v, want Delete", events)
	}
}

func TestInputParserLegacyFunctionalKeyWithModifiers(t *testing.T) {
	p := NewInputParser()
	// CSI 3;5~ is Delete with Ctrl (modifier field is wire value - 1).
	events := p.Parse([]rune("\x1b[3;5~"))
	if len(events) != 1 || events[0].Key != KeyDelete || events[0].Modifiers != ModControl {
		t.Fatalf("events = %+v, want Ctrl-Delete", events)
	}
}

func TestInputParserKittyUnifiedLetter(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1b[97u"))
	if len(events) != 1 || events[0].Key != KeyA || events[0].Modifiers != ModNone {
		t.Fatalf("events = %+v, want plain 'a'", events)
	}
}

func TestInputParserKittyReleaseEvent(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1b[97;1:3u"))
	if len(events) != 1 {
		t.Fatalf("events = %+v, want 1", events)
	}
	if events[0].Type != KeyRelease || events[0].Key != KeyA {
		t.Fatalf("events[0] = %+v, want a release of 'a'", events[0])
	}
}

func TestInputParserKittyRightControlRightAltDistinct(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1b[57448u\x1b[57449u"))
	if len(events) != 2 {
		t.Fatalf("events = %+v, want 2", events)
	}
	if events[0].Key != KeyRightControl {
		t.Errorf("events[0].Key = %v, want RightControl", events[0].Key)
	}
	if events[1].Key != KeyRightAlt {
		t.Errorf("events[1].Key = %v, want RightAlt", events[1].Key)
	}
	if events[0].Key == events[1].Key {
		t.Error("RightControl and RightAlt must not collide")
	}
}

func TestInputParserKittyRightModifiersAndIsoLevelsUnshifted(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1b[57450u\x1b[57451u\x1b[57452u\x1b[57453u\x1b[57454u"))
	want := []Key{KeyRightSuper, KeyRightHyper, KeyRightMeta, KeyIsoLevel3Shift, KeyIsoLevel5Shift}
	if len(events) != len(want) {
		t.Fatalf("events = %+v, want %d events", events, len(want))
	}
	for i, k := range want {
		if events[i].Key != k {
			t.Errorf("events[%d].Key = %v, want %v", i, events[i].Key, k)
		}
	}
}

func TestInputParserLoneEscapeAtEndOfInput(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1b"))
	if len(events) != 1 || events[0].Key != KeyEscape {
		t.Fatalf("events = %+v, want a bare Escape key press", events)
	}
}

func TestInputParserAltKeyFallback(t *testing.T) {
	p := NewInputParser()
	events := p.Parse([]rune("\x1bx"))
	if len(events) != 1 || events[0].Key != KeyX || events[0].Modifiers != ModAlt {
		t.Fatalf("events = %+v, want Alt+x", events)
	}
}
