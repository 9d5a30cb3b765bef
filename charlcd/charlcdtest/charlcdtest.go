// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package charlcdtest is meant to be used to test drivers and applications
// built on charlcd without a physical display.
package charlcdtest

import (
	"fmt"
	"strings"

	"github.com/TheChilliPL/pilock/charlcd"
	"github.com/TheChilliPL/pilock/hd44780"
)

// Mock is a pure software model of an HD44780 class controller. It holds
// the 128 byte display data RAM and applies every instruction instantly,
// with no bus or timing simulation. Instructions are appended to Log so
// tests can assert on the emitted traffic.
//
// Character writes while the address counter is in CGRAM fail with
// hd44780.ErrNotSupported, to catch code that pushes text through the wrong
// channel. The controller is never busy.
type Mock struct {
	// DDRAM is the display data RAM. Clear fills it with spaces.
	DDRAM [128]byte
	// Log records every instruction in a short textual form.
	Log []string

	addr    byte
	inCGRAM bool
	dir     hd44780.CursorDirection
	shift   bool
	on      bool
	cursor  bool
	blink   bool
	halted  bool
}

// New returns an initialized Mock with the RAM blanked.
func New() *Mock {
	m := &Mock{}
	m.blank()
	return m
}

func (m *Mock) blank() {
	for i := range m.DDRAM {
		m.DDRAM[i] = ' '
	}
	m.addr = 0
	m.inCGRAM = false
}

func (m *Mock) log(format string, args ...interface{}) {
	m.Log = append(m.Log, fmt.Sprintf(format, args...))
}

func (m *Mock) Init() error {
	m.blank()
	m.dir = hd44780.Right
	m.shift = false
	m.on = true
	m.cursor = false
	m.blink = false
	m.log("init")
	return nil
}

func (m *Mock) Clear() error {
	m.blank()
	m.log("clear")
	return nil
}

func (m *Mock) ReturnHome() error {
	m.addr = 0
	m.inCGRAM = false
	m.log("home")
	return nil
}

func (m *Mock) SetEntryMode(dir hd44780.CursorDirection, shift bool) error {
	m.dir = dir
	m.shift = shift
	m.log("entry-mode dir=%d shift=%t", dir, shift)
	return nil
}

func (m *Mock) SetDisplayControl(on, cursor, blink bool) error {
	m.on = on
	m.cursor = cursor
	m.blink = blink
	m.log("display-control on=%t cursor=%t blink=%t", on, cursor, blink)
	return nil
}

func (m *Mock) CursorShift(displayShift bool, dir hd44780.CursorDirection) error {
	if !displayShift {
		m.step(dir)
	}
	m.log("cursor-shift display=%t dir=%d", displayShift, dir)
	return nil
}

func (m *Mock) SetDDRAMAddress(addr byte) error {
	m.addr = addr & 0x7f
	m.inCGRAM = false
	m.log("ddram %#02x", m.addr)
	return nil
}

func (m *Mock) SetCGRAMAddress(addr byte) error {
	m.addr = addr & 0x3f
	m.inCGRAM = true
	m.log("cgram %#02x", m.addr)
	return nil
}

func (m *Mock) WriteChar(code byte) error {
	if m.inCGRAM {
		return fmt.Errorf("charlcdtest: CGRAM write through the character path: %w", hd44780.ErrNotSupported)
	}
	m.DDRAM[m.addr] = code
	m.log("write %#02x", code)
	m.step(m.dir)
	return nil
}

func (m *Mock) ReadChar() (byte, error) {
	if m.inCGRAM {
		return 0, fmt.Errorf("charlcdtest: CGRAM read through the character path: %w", hd44780.ErrNotSupported)
	}
	b := m.DDRAM[m.addr]
	m.log("read %#02x", b)
	m.step(m.dir)
	return b, nil
}

func (m *Mock) Address() (byte, error) {
	return m.addr, nil
}

func (m *Mock) CanRead() bool {
	return true
}

func (m *Mock) String() string {
	return "charlcdtest.Mock"
}

func (m *Mock) Halt() error {
	m.halted = true
	m.log("halt")
	return nil
}

// Halted reports whether Halt was called.
func (m *Mock) Halted() bool {
	return m.halted
}

// Line returns the RAM contents starting at a line offset, decoded as ASCII
// for the common case of test assertions on visible text.
func (m *Mock) Line(offset byte, cols int) string {
	var b strings.Builder
	for i := 0; i < cols; i++ {
		b.WriteByte(m.DDRAM[(int(offset)+i)%len(m.DDRAM)])
	}
	return b.String()
}

func (m *Mock) step(dir hd44780.CursorDirection) {
	if dir == hd44780.Right {
		m.addr = (m.addr + 1) % 0x80
	} else {
		m.addr = (m.addr + 0x7f) % 0x80
	}
}

var _ charlcd.Controller = &Mock{}
