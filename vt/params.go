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

// ParamValue is a single CSI/DCS sub-parameter. Present distinguishes an
// explicit value of 0 from an omitted parameter (e.g. the middle field of
// "CSI ;;5 m"), which matters because many sequences default omitted
// parameters differently than an explicit 0.
type ParamValue struct {
	Value   uint32
	Present bool
}

// EmptyParam is the omitted-parameter sentinel.
var EmptyParam = ParamValue{}

// Params is an ordered list of parameter groups, as produced by a CSI or
// DCS parameter section. Each group holds one or more sub-parameters,
// joined on the wire by ':' within a group and ';' between groups.
type Params struct {
	groups [][]ParamValue
}

// Len reports the number of parameter groups.
func (p *Params) Len() int {
	return len(p.groups)
}

// IsEmpty reports whether the parameter list has no groups at all (as
// opposed to one empty group, which is what a bare "CSI m" produces).
func (p *Params) IsEmpty() bool {
	return len(p.groups) == 0
}

// AppendParam starts a new parameter group with a single sub-parameter.
func (p *Params) AppendParam(v ParamValue) {
	p.groups = append(p.groups, []ParamValue{v})
}

// AppendSubParam appends a sub-parameter to the current (last) group. If
// there is no current group yet, it behaves like AppendParam.
func (p *Params) AppendSubParam(v ParamValue) {
	if len(p.groups) == 0 {
		p.AppendParam(v)
		return
	}
	last := len(p.groups) - 1
	p.groups[last] = append(p.groups[last], v)
}

// Get returns the first sub-parameter of group i, or def if i is out of
// range or the value is the empty marker.
func (p *Params) Get(i int, def uint32) uint32 {
	return p.GetSubParam(i, 0, def)
}

// GetSubParam returns sub-parameter j of group i, or def if out of range
// or omitted.
func (p *Params) GetSubParam(i, j int, def uint32) uint32 {
	if i < 0 || i >= len(p.groups) {
		return def
	}
	g := p.groups[i]
	if j < 0 || j >= len(g) {
		return def
	}
	if !g[j].Present {
		return def
	}
	return g[j].Value
}

// SubParamsFrom returns the sub-parameters of group i starting at j, for
// scanning variable-length groups such as Kitty key protocol trailers.
func (p *Params) SubParamsFrom(i, j int) []ParamValue {
	if i < 0 || i >= len(p.groups) {
		return nil
	}
	g := p.groups[i]
	if j < 0 || j >= len(g) {
		return nil
	}
	return g[j:]
}

// GroupLen reports how many sub-parameters group i has, or 0 if i is out
// of range.
func (p *Params) GroupLen(i int) int {
	if i < 0 || i >= len(p.groups) {
		return 0
	}
	return len(p.groups[i])
}

// Reset clears the list for reuse, retaining the backing array.
func (p *Params) Reset() {
	p.groups = p.groups[:0]
}

// paramAccumulator tracks the in-progress digits of the parameter section
// of a CSI or DCS sequence while it is being scanned byte by byte.
type paramAccumulator struct {
	params             Params
	pending            uint32
	pendingPresent     bool
	lastSeparatorColon bool
}

func (a *paramAccumulator) addDigit(d uint32) {
	a.pending = a.pending*10 + d
	a.pendingPresent = true
}

// flush closes out the current sub-parameter (possibly empty) and appends
// it to the list, either as a new group or as a sub-parameter of the
// current group depending on the separator that closed it.
func (a *paramAccumulator) flush(asSubParam bool) {
	v := ParamValue{Value: a.pending, Present: a.pendingPresent}
	if asSubParam {
		a.params.AppendSubParam(v)
	} else {
		a.params.AppendParam(v)
	}
	a.pending = 0
	a.pendingPresent = false
}

// separator is called on ';' or ':'. It flushes the pending value into the
// group structure implied by the *previous* separator, then remembers
// whether this one was a colon so the following value lands correctly.
func (a *paramAccumulator) separator(colon bool) {
	a.flush(a.lastSeparatorColon)
	a.lastSeparatorColon = colon
}

// finish flushes any trailing sub-parameter (there is always at least one,
// even for a bare terminator with no digits) and returns the accumulated
// list, resetting the accumulator.
func (a *paramAccumulator) finish() Params {
	a.flush(a.lastSeparatorColon)
	a.lastSeparatorColon = false
	out := a.params
	a.params = Params{}
	return out
}

func (a *paramAccumulator) reset() {
	a.params = Params{}
	a.pending = 0
	a.pendingPresent = false
	a.lastSeparatorColon = false
}
