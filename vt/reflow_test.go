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

func pos(row uint64, col uint32) AbsolutePosition {
	return AbsolutePosition{Row: row, Col: col}
}

func TestReflowMapBasic(t *testing.T) {
	var m ReflowMap
	m.AddOffset(pos(0, 0), 1, 0)
	m.AddOffset(pos(5, 0), 2, 0)
	m.AddOffset(pos(10, 0), -1, 3)

	cases := []struct {
		in   AbsolutePosition
		want AbsolutePosition
	}{
		{pos(0, 0), pos(1, 0)},
		{pos(3, 2), pos(4, 2)},
		{pos(5, 0), pos(7, 0)},
		{pos(7, 1), pos(9, 1)},
		{pos(10, 0), pos(9, 3)},
		{pos(20, 4), pos(19, 7)},
	}
	for _, c := range cases {
		if got := m.MapPosition(c.in); got != c.want {
			t.Errorf("MapPosition(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestReflowMapBeforeFirstRangeIsUnchanged(t *testing.T) {
	var m ReflowMap
	m.AddOffset(pos(5, 0), 1, 0)
	if got := m.MapPosition(pos(2, 3)); got != pos(2, 3) {
		t.Errorf("MapPosition before first range = %v, want unchanged", got)
	}
}

func TestReflowMapAddOffsetRequiresIncreasingPosition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on non-increasing position")
		}
	}()
	var m ReflowMap
	m.AddOffset(pos(5, 0), 1, 0)
	m.AddOffset(pos(5, 0), 1, 0)
}

func TestReflowMapMergeFollowing(t *testing.T) {
	var a, b ReflowMap
	a.AddOffset(pos(5, 0), 1, 0)
	b.AddOffset(pos(10, 0), 1, 0)

	a.Merge(b)

	var want ReflowMap
	want.AddOffset(pos(5, 0), 1, 0)
	want.AddOffset(pos(10, 0), 2, 0)
	if !a.Equal(want) {
		t.Errorf("a = %+v, want %+v", a, want)
	}

	var c ReflowMap
	c.AddOffset(pos(0, 0), 1, 0)
	a.Merge(c)

	var want2 ReflowMap
	want2.AddOffset(pos(0, 0), 1, 0)
	want2.AddOffset(pos(5, 0), 2, 0)
	want2.AddOffset(pos(10, 0), 3, 0)
	if !a.Equal(want2) {
		t.Errorf("a = %+v, want %+v", a, want2)
	}
}
