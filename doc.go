// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pilock drives HD44780 and DOGM204 character LCDs, matrix
// keypads and a piezo buzzer over GPIO, and builds a small PIN-entry
// door lock on top of them.
//
// The driver stack is layered: hd44780 and dogm204 speak the controller
// instruction sets over an abstract byte bus, charlcd puts a rows and
// columns facade with character ROM mapping on top, and termlcd swaps
// the hardware out for an ANSI terminal rendition during development.
// cmd/pilock wires the stack to real pins.
package pilock
