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

func csiParams(vals ...uint32) Params {
	var p Params
	for _, v := range vals {
		p.AppendParam(ParamValue{Value: v, Present: true})
	}
	return p
}

func TestTextAreaPixelSizeReport(t *testing.T) {
	p := csiParams(4, 768, 1024)
	r, ok := TextAreaPixelSizeReportFromCSI("", p, 't')
	if !ok {
		t.Fatal("not recognized")
	}
	if r.YPixels != 768 || r.XPixels != 1024 {
		t.Errorf("r = %+v", r)
	}
	if got := r.Serialize(); got != "\x1b[4;768;1024t" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestCellPixelSizeReport(t *testing.T) {
	p := csiParams(6, 20, 10)
	r, ok := CellPixelSizeReportFromCSI("", p, 't')
	if !ok {
		t.Fatal("not recognized")
	}
	if r.YPixels != 20 || r.XPixels != 10 {
		t.Errorf("r = %+v", r)
	}
}

func TestTextAreaSizeReport(t *testing.T) {
	p := csiParams(8, 24, 80)
	r, ok := TextAreaSizeReportFromCSI("", p, 't')
	if !ok {
		t.Fatal("not recognized")
	}
	if r.Rows != 24 || r.Cols != 80 {
		t.Errorf("r = %+v", r)
	}
	if got := r.Serialize(); got != "\x1b[8;24;80t" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestInBandSizeReport(t *testing.T) {
	p := csiParams(48, 24, 80, 480, 640)
	r, ok := InBandSizeReportFromCSI("", p, 't')
	if !ok {
		t.Fatal("not recognized")
	}
	if r.Rows != 24 || r.Cols != 80 || r.YPixels != 480 || r.XPixels != 640 {
		t.Errorf("r = %+v", r)
	}
	if got := r.Serialize(); got != "\x1b[48;24;80;480;640t" {
		t.Errorf("Serialize() = %q", got)
	}
}

func TestSizeReportRejectsWrongParamCount(t *testing.T) {
	if _, ok := TextAreaPixelSizeReportFromCSI("", csiParams(4, 1), 't'); ok {
		t.Error("accepted a short param list")
	}
	if _, ok := TextAreaSizeReportFromCSI("", csiParams(8, 24, 80), 'm'); ok {
		t.Error("accepted the wrong final byte")
	}
	if _, ok := InBandSizeReportFromCSI("?", csiParams(48, 1, 2, 3, 4), 't'); ok {
		t.Error("accepted a non-empty intermediate")
	}
}

func TestTextAreaSizeReportCoord(t *testing.T) {
	r := TextAreaSizeReport{Rows: 24, Cols: 80}
	c := r.Coord()
	if c.X != 80 || c.Y != 24 {
		t.Errorf("Coord() = %+v, want {X:80 Y:24}", c)
	}
}
