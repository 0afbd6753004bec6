//go:build wasm || js
// +build wasm js

package tty

import "errors"

// NewDevTty always fails on wasm: there is no tty device.
func NewDevTty() (Tty, error) {
	return nil, errors.New("No tty device on wasm")
}

// NewDevTtyFromDev always fails on wasm: there is no tty device.
func NewDevTtyFromDev(dev string) (Tty, error) {
	return nil, errors.New("No tty device on wasm")
}

// NewStdIoTty always fails on wasm: there is no tty device.
func NewStdIoTty() (Tty, error) {
	return nil, errors.New("No tty device on wasm")
}
