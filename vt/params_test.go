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

func accumulate(s string) Params {
	var acc paramAccumulator
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			acc.addDigit(uint32(c - '0'))
		case c == ';':
			acc.separator(false)
		case c == ':':
			acc.separator(true)
		}
	}
	return acc.finish()
}

func TestParamsSimple(t *testing.T) {
	p := accumulate("1;2;3")
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	for i, want := range []uint32{1, 2, 3} {
		if got := p.Get(i, 999); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestParamsOmitted(t *testing.T) {
	p := accumulate(";5;")
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	if got := p.Get(0, 42); got != 42 {
		t.Errorf("Get(0) = %d, want default 42", got)
	}
	if got := p.Get(1, 0); got != 5 {
		t.Errorf("Get(1) = %d, want 5", got)
	}
	if got := p.Get(2, 7); got != 7 {
		t.Errorf("Get(2) = %d, want default 7", got)
	}
}

func TestParamsBareTerminator(t *testing.T) {
	p := accumulate("")
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (one empty group)", p.Len())
	}
	if !p.IsEmpty() {
		// one empty group is not the same as no groups
	}
}

func TestParamsSubParams(t *testing.T) {
	p := accumulate("38:2:255:128:0;1")
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if got := p.GroupLen(0); got != 5 {
		t.Fatalf("GroupLen(0) = %d, want 5", got)
	}
	if got := p.GetSubParam(0, 0, 0); got != 38 {
		t.Errorf("GetSubParam(0,0) = %d, want 38", got)
	}
	if got := p.GetSubParam(0, 3, 0); got != 128 {
		t.Errorf("GetSubParam(0,3) = %d, want 128", got)
	}
	if got := p.Get(1, 0); got != 1 {
		t.Errorf("Get(1) = %d, want 1", got)
	}
}

func TestParamsSubParamsFrom(t *testing.T) {
	p := accumulate("1:2:3:4")
	sub := p.SubParamsFrom(0, 1)
	if len(sub) != 3 {
		t.Fatalf("len(SubParamsFrom) = %d, want 3", len(sub))
	}
	if sub[0].Value != 2 || sub[1].Value != 3 || sub[2].Value != 4 {
		t.Errorf("SubParamsFrom = %v, want [2 3 4]", sub)
	}
}
