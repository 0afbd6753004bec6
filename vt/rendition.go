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
	"fmt"
	"strconv"
	"strings"

	"github.com/coletrammer/ttx-sub001/color"
)

// FontWeight is the mutually-exclusive bold/dim axis of SGR.
type FontWeight int

const (
	WeightNone FontWeight = iota
	WeightBold
	WeightDim
)

// UnderlineMode is the style of the underline attribute, if any.
type UnderlineMode int

const (
	UnderlineNone UnderlineMode = iota
	UnderlineNormal
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// BlinkMode is the blink attribute, if any.
type BlinkMode int

const (
	BlinkNone BlinkMode = iota
	BlinkNormal
	BlinkRapid
)

// GraphicsRendition is the parsed, accumulated state of an SGR (CSI …m)
// sequence: a set of text attributes plus foreground, background, and
// underline colors. See spec.md §4.2.
type GraphicsRendition struct {
	FontWeight    FontWeight
	Italic        bool
	UnderlineMode UnderlineMode
	BlinkMode     BlinkMode
	Inverted      bool
	Invisible     bool
	StrikeThrough bool
	Overline      bool

	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
}

// Attr collapses the boolean and enum fields (everything but color) into
// the Attr bitmask, for callers that want a single comparable value for
// cell styling rather than the full struct.
func (g GraphicsRendition) Attr() Attr {
	a := Plain
	switch g.FontWeight {
	case WeightBold:
		a |= Bold
	case WeightDim:
		a |= Dim
	}
	if g.Italic {
		a |= Italic
	}
	if g.Inverted {
		a |= Reverse
	}
	if g.StrikeThrough {
		a |= StrikeThrough
	}
	if g.Overline {
		a |= Overline
	}
	if g.BlinkMode != BlinkNone {
		a |= Blink
	}
	switch g.UnderlineMode {
	case UnderlineNormal:
		a |= PlainUnderline
	case UnderlineDouble:
		a |= DoubleUnderline
	case UnderlineCurly:
		a |= CurlyUnderline
	case UnderlineDotted:
		a |= DottedUnderline
	case UnderlineDashed:
		a |= DashedUnderline
	}
	return a
}

// UpdateWithCSIParams applies one SGR parameter list on top of the
// receiver's current state, mutating it in place. An empty list (bare
// "CSI m") resets every field, same as an explicit "CSI 0 m".
func (g *GraphicsRendition) UpdateWithCSIParams(p Params) {
	if p.IsEmpty() {
		*g = GraphicsRendition{}
		return
	}
	for i := 0; i == 0 || i < p.Len(); i++ {
		switch p.Get(i, 0) {
		case 0:
			*g = GraphicsRendition{}
		case 1:
			g.FontWeight = WeightBold
		case 2:
			g.FontWeight = WeightDim
		case 3:
			g.Italic = true
		case 4:
			switch p.GetSubParam(i, 1, 1) {
			case 0:
				g.UnderlineMode = UnderlineNone
			case 1:
				g.UnderlineMode = UnderlineNormal
			case 2:
				g.UnderlineMode = UnderlineDouble
			case 3:
				g.UnderlineMode = UnderlineCurly
			case 4:
				g.UnderlineMode = UnderlineDotted
			case 5:
				g.UnderlineMode = UnderlineDashed
			}
		case 5:
			g.BlinkMode = BlinkNormal
		case 6:
			g.BlinkMode = BlinkRapid
		case 7:
			g.Inverted = true
		case 8:
			g.Invisible = true
		case 9:
			g.StrikeThrough = true
		case 21:
			g.UnderlineMode = UnderlineDouble
		case 22:
			g.FontWeight = WeightNone
		case 23:
			g.Italic = false
		case 24:
			g.UnderlineMode = UnderlineNone
		case 25:
			g.BlinkMode = BlinkNone
		case 27:
			g.Inverted = false
		case 28:
			g.Invisible = false
		case 29:
			g.StrikeThrough = false
		case 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 90, 91, 92, 93, 94, 95, 96, 97:
			n, c := parseColor(p, i)
			i += n - 1
			g.Fg = c
		case 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 100, 101, 102, 103, 104, 105, 106, 107:
			n, c := parseColor(p, i)
			i += n - 1
			g.Bg = c
		case 53:
			g.Overline = true
		case 55:
			g.Overline = false
		case 58, 59:
			n, c := parseColor(p, i)
			i += n - 1
			g.UnderlineColor = c
		}
	}
}

// parseColor dispatches on the SGR color-introducing code at params[i] and
// returns the number of top-level parameter groups it consumed.
func parseColor(p Params, i int) (int, color.Color) {
	command := p.Get(i, 0)

	if command == 38 || command == 48 || command == 58 {
		return parseComplexColor(p, i)
	}

	paletteIndex := command % 10
	if command >= 90 {
		return 1, color.PaletteColor(8 + int(paletteIndex))
	}
	if paletteIndex == 9 {
		return 1, color.Default
	}
	return 1, color.PaletteColor(int(paletteIndex))
}

// parseComplexColor handles the 38/48/58 introducers in their five wire
// forms: legacy "38;2;R;G;B", sub-param "38:2:R:G:B", sub-param with
// ignored color-space "38:2:CS:R:G:B", legacy indexed "38;5;I", and
// sub-param indexed "38:5:I".
func parseComplexColor(p Params, i int) (int, color.Color) {
	if p.GroupLen(i) == 1 {
		// Legacy form: the color-space selector and its operands are
		// separate top-level parameter groups.
		switch p.Get(i+1, 0) {
		case 2:
			if p.Len()-i < 5 {
				return 1, color.Default
			}
			return 5, color.NewRGBColor(int32(p.Get(i+2, 0)), int32(p.Get(i+3, 0)), int32(p.Get(i+4, 0)))
		case 5:
			if p.Len()-i < 3 {
				return 1, color.Default
			}
			idx := p.Get(i+2, 0)
			if idx >= 256 {
				return 3, color.Default
			}
			return 3, color.PaletteColor(int(idx))
		default:
			return 1, color.Default
		}
	}

	// Sub-parameter form: everything lives in group i's sub-parameters.
	n := p.GroupLen(i)
	switch p.GetSubParam(i, 1, 0) {
	case 2:
		if n != 5 && n != 6 {
			break
		}
		return 1, color.NewRGBColor(
			int32(p.GetSubParam(i, n-3, 0)),
			int32(p.GetSubParam(i, n-2, 0)),
			int32(p.GetSubParam(i, n-1, 0)),
		)
	case 5:
		idx := p.GetSubParam(i, 2, 0)
		if idx >= 256 {
			return 1, color.Default
		}
		return 1, color.PaletteColor(int(idx))
	}
	return 1, color.Default
}

type colorRole int

const (
	roleFg colorRole = iota
	roleBg
	roleUnderline
)

// colorToParams renders a single color field into the CSI parameter
// group(s) needed to express it, matching graphics_rendition.cpp's
// color_to_params exactly (including the legacy-vs-subparam split).
func colorToParams(c color.Color, role colorRole, useLegacy bool) []string {
	introducer := map[colorRole][3]int{
		roleFg:        {38, 30, 90},
		roleBg:        {48, 40, 100},
		roleUnderline: {58, 0, 0},
	}[role]
	complexCode := introducer[0]

	switch {
	case c.IsRGB():
		r, g, b := c.RGB()
		if role == roleUnderline || !useLegacy {
			return []string{fmt.Sprintf("%d:2::%d:%d:%d", complexCode, r, g, b)}
		}
		return []string{fmt.Sprintf("%d", complexCode), "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	case !c.Valid():
		resetCode := map[colorRole]int{roleFg: 39, roleBg: 49, roleUnderline: 59}[role]
		return []string{strconv.Itoa(resetCode)}
	}

	idx := int(c & 0xFF)
	if role == roleUnderline {
		return []string{fmt.Sprintf("58:5:%d", idx)}
	}
	switch {
	case idx <= 7:
		return []string{strconv.Itoa(introducer[1] + idx)}
	case idx <= 15:
		return []string{strconv.Itoa(introducer[2] + idx - 8)}
	default:
		if useLegacy {
			return []string{strconv.Itoa(complexCode), "5", strconv.Itoa(idx)}
		}
		return []string{fmt.Sprintf("%d:5:%d", complexCode, idx)}
	}
}

// AsCSISequences renders the delta between prev (nil meaning "start from a
// hard reset") and the receiver as the minimal set of SGR CSI sequences
// needed to reach the receiver's state, splitting colors into their own
// sequences to respect the 16-parameter-per-CSI cap, and honoring
// FeatureUndercurl for sub-parameter vs. legacy color forms.
func (g GraphicsRendition) AsCSISequences(features Feature) []string {
	return g.asCSISequences(features, nil)
}

// AsCSISequencesFrom is AsCSISequences given an explicit previous state to
// diff against.
func (g GraphicsRendition) AsCSISequencesFrom(features Feature, prev GraphicsRendition) []string {
	return g.asCSISequences(features, &prev)
}

func (g GraphicsRendition) asCSISequences(features Feature, prev *GraphicsRendition) []string {
	var basic []string
	if prev == nil {
		basic = append(basic, "0")
	}
	compare := GraphicsRendition{}
	if prev != nil {
		compare = *prev
	}

	var extra []string

	if compare.FontWeight != g.FontWeight {
		switch g.FontWeight {
		case WeightBold:
			basic = append(basic, "1")
		case WeightDim:
			basic = append(basic, "2")
		case WeightNone:
			basic = append(basic, "22")
		}
	}
	if compare.Italic != g.Italic {
		if g.Italic {
			basic = append(basic, "3")
		} else {
			basic = append(basic, "23")
		}
	}
	if compare.BlinkMode != g.BlinkMode {
		switch g.BlinkMode {
		case BlinkNormal:
			basic = append(basic, "5")
		case BlinkRapid:
			basic = append(basic, "6")
		case BlinkNone:
			basic = append(basic, "25")
		}
	}
	if compare.Inverted != g.Inverted {
		if g.Inverted {
			basic = append(basic, "7")
		} else {
			basic = append(basic, "27")
		}
	}
	if compare.Invisible != g.Invisible {
		if g.Invisible {
			basic = append(basic, "8")
		} else {
			basic = append(basic, "28")
		}
	}
	if compare.StrikeThrough != g.StrikeThrough {
		if g.StrikeThrough {
			basic = append(basic, "9")
		} else {
			basic = append(basic, "29")
		}
	}
	if compare.Overline != g.Overline {
		if g.Overline {
			basic = append(basic, "53")
		} else {
			basic = append(basic, "55")
		}
	}

	if compare.UnderlineMode != g.UnderlineMode {
		supportsUndercurl := features.Has(FeatureUndercurl)
		switch g.UnderlineMode {
		case UnderlineNormal:
			basic = append(basic, "4")
		case UnderlineDouble:
			basic = append(basic, "21")
		case UnderlineCurly:
			if supportsUndercurl {
				extra = append(extra, "4:3")
			} else {
				basic = append(basic, "4")
			}
		case UnderlineDotted:
			if supportsUndercurl {
				extra = append(extra, "4:4")
			} else {
				basic = append(basic, "4")
			}
		case UnderlineDashed:
			if supportsUndercurl {
				extra = append(extra, "4:5")
			} else {
				basic = append(basic, "4")
			}
		case UnderlineNone:
			basic = append(basic, "24")
		}
	}

	useLegacy := !features.Has(FeatureUndercurl)
	var colorSeqs []string
	if compare.Fg != g.Fg {
		colorSeqs = append(colorSeqs, strings.Join(colorToParams(g.Fg, roleFg, useLegacy), ";"))
	}
	if compare.Bg != g.Bg {
		colorSeqs = append(colorSeqs, strings.Join(colorToParams(g.Bg, roleBg, useLegacy), ";"))
	}
	if compare.UnderlineColor != g.UnderlineColor {
		colorSeqs = append(colorSeqs, strings.Join(colorToParams(g.UnderlineColor, roleUnderline, useLegacy), ";"))
	}

	var out []string
	if len(basic) > 0 {
		out = append(out, "\x1b["+strings.Join(basic, ";")+"m")
	}
	for _, e := range extra {
		out = append(out, "\x1b["+e+"m")
	}
	for _, c := range colorSeqs {
		out = append(out, "\x1b["+c+"m")
	}
	return out
}

// Downgrade resolves any truecolor fg/bg/underline values against palette
// using color.Find, for terminals that advertised no truecolor support.
// This is the one place this package calls into go-colorful (indirectly,
// via color.Find's CIE76 distance calculation).
func (g GraphicsRendition) Downgrade(palette []color.Color) GraphicsRendition {
	if g.Fg.IsRGB() {
		g.Fg = color.Find(g.Fg, palette)
	}
	if g.Bg.IsRGB() {
		g.Bg = color.Find(g.Bg, palette)
	}
	if g.UnderlineColor.IsRGB() {
		g.UnderlineColor = color.Find(g.UnderlineColor, palette)
	}
	return g
}
