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
	"testing"

	"github.com/coletrammer/ttx-sub001/color"
)

func sgrParams(t *testing.T, csi string) Params {
	t.Helper()
	p := NewParser()
	events := p.ParseApplication([]rune("\x1b[" + csi + "m"))
	if len(events) != 1 || events[0].Kind != EventCSI {
		t.Fatalf("unexpected parse of %q: %+v", csi, events)
	}
	return events[0].Params
}

func TestGraphicsRenditionBoldItalic(t *testing.T) {
	var g GraphicsRendition
	g.UpdateWithCSIParams(sgrParams(t, "1;3"))
	if g.FontWeight != WeightBold || !g.Italic {
		t.Errorf("g = %+v", g)
	}
}

func TestGraphicsRenditionReset(t *testing.T) {
	var g GraphicsRendition
	g.UpdateWithCSIParams(sgrParams(t, "1;3"))
	g.UpdateWithCSIParams(sgrParams(t, "0"))
	if g != (GraphicsRendition{}) {
		t.Errorf("g = %+v, want zero value after reset", g)
	}

	var g2 GraphicsRendition
	g2.UpdateWithCSIParams(sgrParams(t, "1"))
	g2.UpdateWithCSIParams(Params{})
	if g2 != (GraphicsRendition{}) {
		t.Errorf("g2 = %+v, want zero value after bare CSI m", g2)
	}
}

func TestGraphicsRenditionLegacyRGBColor(t *testing.T) {
	var g GraphicsRendition
	g.UpdateWithCSIParams(sgrParams(t, "38;2;255;0;0"))
	want := color.NewRGBColor(255, 0, 0)
	if g.Fg != want {
		t.Errorf("Fg = %v, want %v", g.Fg, want)
	}
}

func TestGraphicsRenditionSubParamIndexedBg(t *testing.T) {
	var g GraphicsRendition
	g.UpdateWithCSIParams(sgrParams(t, "48:5:196"))
	want := color.PaletteColor(196)
	if g.Bg != want {
		t.Errorf("Bg = %v, want %v", g.Bg, want)
	}
}

func TestGraphicsRenditionHighIntensityPalette(t *testing.T) {
	var g GraphicsRendition
	g.UpdateWithCSIParams(sgrParams(t, "91"))
	if g.Fg != color.PaletteColor(9) {
		t.Errorf("Fg = %v, want palette 9", g.Fg)
	}
}

func TestGraphicsRenditionResetColorCodes(t *testing.T) {
	var g GraphicsRendition
	g.UpdateWithCSIParams(sgrParams(t, "31"))
	g.UpdateWithCSIParams(sgrParams(t, "39"))
	if g.Fg != color.Default {
		t.Errorf("Fg = %v, want Default after 39", g.Fg)
	}
}

func TestGraphicsRenditionUnderlineCurlyLegacyFallback(t *testing.T) {
	g := GraphicsRendition{UnderlineMode: UnderlineCurly}
	seqs := g.AsCSISequencesFrom(FeatureNone, GraphicsRendition{})
	found := false
	for _, s := range seqs {
		if s == "\x1b[4m" {
			found = true
		}
		if s == "\x1b[4:3m" {
			t.Errorf("used sub-param form %q without FeatureUndercurl", s)
		}
	}
	if !found {
		t.Errorf("seqs = %v, want a legacy \"4\" underline sequence", seqs)
	}
}

func TestGraphicsRenditionUnderlineCurlyWithUndercurl(t *testing.T) {
	g := GraphicsRendition{UnderlineMode: UnderlineCurly}
	seqs := g.AsCSISequences(FeatureUndercurl)
	found := false
	for _, s := range seqs {
		if s == "\x1b[4:3m" {
			found = true
		}
	}
	if !found {
		t.Errorf("seqs = %v, want the sub-param \"4:3\" underline sequence", seqs)
	}
}

func TestGraphicsRenditionUnderlineColorAlwaysPaletteForm(t *testing.T) {
	g := GraphicsRendition{UnderlineColor: color.PaletteColor(5)}
	seqs := g.AsCSISequences(FeatureNone)
	found := false
	for _, s := range seqs {
		if s == "\x1b[58:5:5m" {
			found = true
		}
	}
	if !found {
		t.Errorf("seqs = %v, want an underline-color sequence in 58:5:I form even without FeatureUndercurl", seqs)
	}
}

func TestGraphicsRenditionDowngrade(t *testing.T) {
	palette := []color.Color{
		color.NewRGBColor(0, 0, 0),
		color.NewRGBColor(255, 0, 0),
		color.NewRGBColor(0, 255, 0),
	}
	g := GraphicsRendition{Fg: color.NewRGBColor(250, 5, 5)}
	downgraded := g.Downgrade(palette)
	if downgraded.Fg != palette[1] {
		t.Errorf("Fg = %v, want nearest palette entry %v", downgraded.Fg, palette[1])
	}
}

func TestGraphicsRenditionAttr(t *testing.T) {
	g := GraphicsRendition{
		FontWeight:    WeightBold,
		Italic:        true,
		UnderlineMode: UnderlineCurly,
		StrikeThrough: true,
	}
	a := g.Attr()
	for _, want := range []Attr{Bold, Italic, CurlyUnderline, StrikeThrough} {
		if a&want != want {
			t.Errorf("Attr() = %#x missing %#x", a, want)
		}
	}
	if a&Reverse != 0 || a&Overline != 0 {
		t.Errorf("Attr() = %#x, unexpected bits set", a)
	}
	if GraphicsRendition{}.Attr() != Plain {
		t.Error("zero-value rendition should map to Plain")
	}
}
