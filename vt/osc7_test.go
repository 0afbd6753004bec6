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

func TestParseOSC7Normal(t *testing.T) {
	o, ok := ParseOSC7([]byte("file://host/dev/null%20test"))
	if !ok {
		t.Fatal("parse failed")
	}
	if o.Hostname != "host" || o.Path != "/dev/null test" {
		t.Errorf("o = %+v", o)
	}
}

func TestParseOSC7EmptyHostname(t *testing.T) {
	o, ok := ParseOSC7([]byte("file:///tmp"))
	if !ok {
		t.Fatal("parse failed")
	}
	if o.Hostname != "" || o.Path != "/tmp" {
		t.Errorf("o = %+v", o)
	}
}

func TestParseOSC7KittyVariantNotDecoded(t *testing.T) {
	o, ok := ParseOSC7([]byte("kitty-shell-cwd://host/dev/null%20test"))
	if !ok {
		t.Fatal("parse failed")
	}
	if o.Path != "/dev/null%20test" {
		t.Errorf("Path = %q, want percent-encoding preserved verbatim", o.Path)
	}
}

func TestParseOSC7Invalid(t *testing.T) {
	for _, body := range []string{"", "file://", "nope://host/path", "file://noslash"} {
		if _, ok := ParseOSC7([]byte(body)); ok {
			t.Errorf("ParseOSC7(%q) succeeded, want failure", body)
		}
	}
}

func TestOSC7SerializeEmpty(t *testing.T) {
	var o OSC7
	got := o.Serialize()
	want := "7;file://"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestOSC7SerializeNormal(t *testing.T) {
	o := OSC7{Hostname: "host", Path: "/dev/null test"}
	got := o.Serialize()
	want := "7;file://host/dev/null%20test"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}
