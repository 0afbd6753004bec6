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
	"net/url"
	"strings"
)

const (
	schemeFile          = "file://"
	schemeKittyShellCwd = "kitty-shell-cwd://"
)

// OSC7 is the parsed form of "ESC ] 7 ; <uri> ST", the current-working-
// directory report.
type OSC7 struct {
	Hostname string
	Path     string
}

// ParseOSC7 parses the payload of an OSC 7 sequence (the bytes after "7;").
func ParseOSC7(body []byte) (OSC7, bool) {
	s := string(body)

	var rest string
	var decode bool
	switch {
	case strings.HasPrefix(s, schemeFile):
		rest = s[len(schemeFile):]
		decode = true
	case strings.HasPrefix(s, schemeKittyShellCwd):
		rest = s[len(schemeKittyShellCwd):]
		decode = false
	default:
		return OSC7{}, false
	}

	// rest is "<host>/<path>"; the slash separating host from path must
	// be present, though host itself may be empty.
	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return OSC7{}, false
	}
	hostname, path := rest[:slash], rest[slash:]

	if decode {
		h, err := url.PathUnescape(hostname)
		if err != nil {
			return OSC7{}, false
		}
		p, err := url.PathUnescape(path)
		if err != nil {
			return OSC7{}, false
		}
		hostname, path = h, p
	}

	return OSC7{Hostname: hostname, Path: path}, true
}

// Serialize always emits the "file://" form, percent-encoding the
// hostname and each path segment independently so that '/' separators
// survive untouched.
func (o OSC7) Serialize() string {
	var sb strings.Builder
	sb.WriteString("7;")
	sb.WriteString(schemeFile)
	sb.WriteString(escapePathComponent(o.Hostname))
	segs := strings.Split(o.Path, "/")
	for i, seg := range segs {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(escapePathComponent(seg))
	}
	return sb.String()
}

// escapePathComponent percent-encodes a single path segment the same way
// url.PathEscape does, which conveniently never escapes '/' because it is
// never given one.
func escapePathComponent(s string) string {
	return url.PathEscape(s)
}
