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

func TestFeatureBitsDoNotOverlap(t *testing.T) {
	bits := []Feature{
		FeatureSynchronizedOutput,
		FeatureClipboard,
		FeatureUndercurl,
		FeatureTextSizingWidth,
		FeatureTextSizingFull,
	}
	if FeatureSynchronizedOutput != 1 {
		t.Errorf("FeatureSynchronizedOutput = %d, want 1", FeatureSynchronizedOutput)
	}
	var seen Feature
	for _, b := range bits {
		if seen&b != 0 {
			t.Fatalf("bit %d overlaps an earlier feature", b)
		}
		seen |= b
	}
}

func TestFeatureHas(t *testing.T) {
	f := FeatureClipboard | FeatureUndercurl
	if !f.Has(FeatureClipboard) {
		t.Error("Has(Clipboard) = false")
	}
	if f.Has(FeatureSynchronizedOutput) {
		t.Error("Has(SynchronizedOutput) = true")
	}
	if !f.Has(FeatureClipboard | FeatureUndercurl) {
		t.Error("Has(combined) = false")
	}
}

func TestFeaturePrivateModes(t *testing.T) {
	modes := (FeatureSynchronizedOutput | FeatureClipboard).PrivateModes()
	if len(modes) != 1 || modes[0] != PmSyncOutput {
		t.Fatalf("PrivateModes() = %v, want [PmSyncOutput]", modes)
	}
	if modes := FeatureClipboard.PrivateModes(); len(modes) != 0 {
		t.Fatalf("PrivateModes() = %v, want none (clipboard has no paired DEC mode)", modes)
	}
}
