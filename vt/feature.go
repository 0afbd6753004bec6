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

// Feature is a bitmask of capabilities the surrounding terminal has been
// probed (elsewhere, outside this package) to support. The core never
// probes for these itself; it only consumes the result.
type Feature uint32

const FeatureNone Feature = 0

const (
	// FeatureSynchronizedOutput indicates DEC mode 2026 (begin/end
	// synchronized update) support.
	FeatureSynchronizedOutput Feature = 1 << iota

	// FeatureClipboard indicates OSC 52 pass-through to a real system
	// clipboard is available. Absent, the clipboard coordinator
	// downgrades every mode to local-only behavior.
	FeatureClipboard

	// FeatureUndercurl indicates the terminal understands the
	// sub-parameter ("colon") SGR underline-style and underline-color
	// forms. Absent, GraphicsRendition.Serialize falls back to legacy
	// semicolon-separated forms wherever a sub-parameter would
	// otherwise be used.
	FeatureUndercurl

	// FeatureTextSizingWidth indicates support for the narrower,
	// width-only text-sizing protocol extension.
	FeatureTextSizingWidth

	// FeatureTextSizingFull indicates support for the full text-sizing
	// protocol extension (width and scale).
	FeatureTextSizingFull
)

// Has reports whether all bits of want are set in f.
func (f Feature) Has(want Feature) bool {
	return f&want == want
}

// featurePrivateModes pairs each probed Feature bit with the DEC private
// mode a caller would toggle or query to exercise it.
var featurePrivateModes = [...]struct {
	feature Feature
	mode    PrivateMode
}{
	{FeatureSynchronizedOutput, PmSyncOutput},
}

// PrivateModes returns the DEC private modes a caller should probe (via
// PrivateMode.Query) to populate this Feature set, in a fixed order.
func (f Feature) PrivateModes() []PrivateMode {
	var modes []PrivateMode
	for _, fp := range featurePrivateModes {
		if f.Has(fp.feature) {
			modes = append(modes, fp.mode)
		}
	}
	return modes
}
