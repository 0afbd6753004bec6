// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vt provides common definitions for VT derived terminals and applications.
// This includes the venerable VT100, XTerm, and newer emulators such as Kitty and
// the Windows Terminal.
//
// This package is still under development and direct access to any of the interfaces
// here is not guaranteed to be stable yet.  Caveat emptor.
package vt
