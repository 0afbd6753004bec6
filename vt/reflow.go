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

import "sort"

// AbsolutePosition is a row/column pair identifying a cell anywhere in a
// terminal's (possibly scrolled-back) grid. Ordering is lexicographic:
// row first, then column.
type AbsolutePosition struct {
	Row uint64
	Col uint32
}

// Less reports whether p sorts strictly before other.
func (p AbsolutePosition) Less(other AbsolutePosition) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// reflowRange is one piecewise offset applicable from FromPosition onward,
// until the next range's FromPosition.
type reflowRange struct {
	FromPosition AbsolutePosition
	Dr           int64
	Dc           int32
}

// ReflowMap is a sorted, strictly-increasing-by-position sequence of
// coordinate offsets, used to remap absolute positions across a line
// reflow (re-wrap at a new width). See spec.md §4.5.
type ReflowMap struct {
	ranges []reflowRange
}

// AddOffset appends one range. position must sort strictly after the last
// range already present (the caller builds a ReflowMap in position order
// as it walks the reflow operation); violating this is a programmer error
// and panics, the same way the original's precondition assertion would
// abort.
func (m *ReflowMap) AddOffset(position AbsolutePosition, dr int64, dc int32) {
	if n := len(m.ranges); n > 0 && !m.ranges[n-1].FromPosition.Less(position) {
		panic("vt: ReflowMap.AddOffset requires strictly increasing position")
	}
	m.ranges = append(m.ranges, reflowRange{FromPosition: position, Dr: dr, Dc: dc})
}

// Merge combines other into m. If other's ranges all strictly follow m's
// (the common case: two reflow operations applied back to back), other's
// offsets are each increased by m's trailing offset and appended.
// Otherwise (other's first range sorts at or before m's last range, meaning
// other represents an earlier transformation this map must now be
// composed on top of), m's ranges are each increased by other's trailing
// offset and other is prepended.
func (m *ReflowMap) Merge(other ReflowMap) {
	if len(other.ranges) == 0 {
		return
	}
	if len(m.ranges) == 0 {
		m.ranges = other.ranges
		return
	}

	if m.ranges[len(m.ranges)-1].FromPosition.Less(other.ranges[0].FromPosition) {
		trailing := m.ranges[len(m.ranges)-1]
		merged := make([]reflowRange, 0, len(m.ranges)+len(other.ranges))
		merged = append(merged, m.ranges...)
		for _, r := range other.ranges {
			r.Dr += trailing.Dr
			r.Dc += trailing.Dc
			merged = append(merged, r)
		}
		m.ranges = merged
		return
	}

	trailing := other.ranges[len(other.ranges)-1]
	merged := make([]reflowRange, 0, len(m.ranges)+len(other.ranges))
	merged = append(merged, other.ranges...)
	for _, r := range m.ranges {
		r.Dr += trailing.Dr
		r.Dc += trailing.Dc
		merged = append(merged, r)
	}
	m.ranges = merged
}

// MapPosition applies the greatest range whose FromPosition is less than
// or equal to p, returning p unchanged if no range applies yet.
func (m *ReflowMap) MapPosition(p AbsolutePosition) AbsolutePosition {
	idx := sort.Search(len(m.ranges), func(i int) bool {
		return p.Less(m.ranges[i].FromPosition)
	}) - 1
	if idx < 0 {
		return p
	}
	r := m.ranges[idx]
	return AbsolutePosition{Row: uint64(int64(p.Row) + r.Dr), Col: uint32(int32(p.Col) + r.Dc)}
}

// Equal reports whether two reflow maps have identical range sequences,
// for use in tests.
func (m ReflowMap) Equal(other ReflowMap) bool {
	if len(m.ranges) != len(other.ranges) {
		return false
	}
	for i := range m.ranges {
		if m.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}
