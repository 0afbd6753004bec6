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

import "fmt"

// TextAreaPixelSizeReport is "CSI 4 ; y ; x t", requested via CSI 14 t.
type TextAreaPixelSizeReport struct {
	XPixels uint32
	YPixels uint32
}

// TextAreaPixelSizeReportFromCSI recognizes a TextAreaPixelSizeReport in a
// parsed CSI event.
func TextAreaPixelSizeReportFromCSI(intermediates string, p Params, final rune) (TextAreaPixelSizeReport, bool) {
	if intermediates != "" || final != 't' || p.Len() != 3 {
		return TextAreaPixelSizeReport{}, false
	}
	if p.Get(0, 0) != 4 {
		return TextAreaPixelSizeReport{}, false
	}
	return TextAreaPixelSizeReport{XPixels: p.Get(2, 0), YPixels: p.Get(1, 0)}, true
}

func (r TextAreaPixelSizeReport) Serialize() string {
	return fmt.Sprintf("\x1b[4;%d;%dt", r.YPixels, r.XPixels)
}

// CellPixelSizeReport is "CSI 6 ; y ; x t", requested via CSI 16 t.
type CellPixelSizeReport struct {
	XPixels uint32
	YPixels uint32
}

func CellPixelSizeReportFromCSI(intermediates string, p Params, final rune) (CellPixelSizeReport, bool) {
	if intermediates != "" || final != 't' || p.Len() != 3 {
		return CellPixelSizeReport{}, false
	}
	if p.Get(0, 0) != 6 {
		return CellPixelSizeReport{}, false
	}
	return CellPixelSizeReport{XPixels: p.Get(2, 0), YPixels: p.Get(1, 0)}, true
}

func (r CellPixelSizeReport) Serialize() string {
	return fmt.Sprintf("\x1b[6;%d;%dt", r.YPixels, r.XPixels)
}

// TextAreaSizeReport is "CSI 8 ; rows ; cols t", requested via CSI 18 t.
type TextAreaSizeReport struct {
	Cols uint32
	Rows uint32
}

func TextAreaSizeReportFromCSI(intermediates string, p Params, final rune) (TextAreaSizeReport, bool) {
	if intermediates != "" || final != 't' || p.Len() != 3 {
		return TextAreaSizeReport{}, false
	}
	if p.Get(0, 0) != 8 {
		return TextAreaSizeReport{}, false
	}
	return TextAreaSizeReport{Cols: p.Get(2, 0), Rows: p.Get(1, 0)}, true
}

func (r TextAreaSizeReport) Serialize() string {
	return fmt.Sprintf("\x1b[8;%d;%dt", r.Rows, r.Cols)
}

// Coord returns the reported size as a Coord, for callers sizing a grid
// rather than inspecting rows/cols individually.
func (r TextAreaSizeReport) Coord() Coord {
	return Coord{X: Col(r.Cols), Y: Row(r.Rows)}
}

// InBandSizeReport is "CSI 48 ; rows ; cols ; ypixels ; xpixels t",
// requested by DEC private mode 2024.
type InBandSizeReport struct {
	Rows    uint32
	Cols    uint32
	XPixels uint32
	YPixels uint32
}

func InBandSizeReportFromCSI(intermediates string, p Params, final rune) (InBandSizeReport, bool) {
	if intermediates != "" || final != 't' || p.Len() != 5 {
		return InBandSizeReport{}, false
	}
	if p.Get(0, 0) != 48 {
		return InBandSizeReport{}, false
	}
	return InBandSizeReport{
		Rows:    p.Get(1, 0),
		Cols:    p.Get(2, 0),
		XPixels: p.Get(4, 0),
		YPixels: p.Get(3, 0),
	}, true
}

func (r InBandSizeReport) Serialize() string {
	return fmt.Sprintf("\x1b[48;%d;%d;%d;%dt", r.Rows, r.Cols, r.YPixels, r.XPixels)
}
