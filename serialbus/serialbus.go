// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package serialbus drives an HD44780 class display behind a serial nibble
// bridge.
//
// The bridge is a small microcontroller wired to the display's 4-bit bus. It
// takes one frame byte per nibble pulse over UART: bits 3-0 carry the nibble
// for D4-D7, bit 4 carries RS, the rest must be zero. The bridge owns all
// timing, so unlike the GPIO bus there are no delays on the host side. The
// link is one way; reads are not available.
package serialbus

import (
	"errors"
	"fmt"
	"io"

	"github.com/tarm/serial"

	"github.com/TheChilliPL/pilock/hd44780"
)

func wrap(err error) error {
	return fmt.Errorf("serialbus: %w", err)
}

// frame encodes one nibble pulse.
const rsBit = 0x10

// Opts configures the serial link.
type Opts struct {
	// Baud is the line rate. 9600 when zero.
	Baud int
}

// Bus is a write-only 4-bit hd44780.Bus over a serial link.
type Bus struct {
	w io.Writer
}

// Open opens the named serial port and returns a Bus on it.
func Open(name string, opts *Opts) (*Bus, error) {
	baud := 9600
	if opts != nil && opts.Baud != 0 {
		baud = opts.Baud
	}
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, wrap(err)
	}
	return NewBus(port), nil
}

// NewBus returns a Bus writing frames to w. Useful with an in-memory writer
// for tests.
func NewBus(w io.Writer) *Bus {
	return &Bus{w: w}
}

// WriteByte sends a byte as two nibble frames, high nibble first, in a
// single write so the pair cannot be torn apart by an error in between.
func (b *Bus) WriteByte(data byte, rs bool) error {
	var flag byte
	if rs {
		flag = rsBit
	}
	frames := [2]byte{flag | data>>4, flag | data&0x0f}
	if _, err := b.w.Write(frames[:]); err != nil {
		return wrap(err)
	}
	return nil
}

// ReadByte fails; the bridge cannot read the display.
func (b *Bus) ReadByte(rs bool) (byte, error) {
	return 0, wrap(hd44780.ErrNotSupported)
}

// CanRead reports false; the link is one way.
func (b *Bus) CanRead() bool {
	return false
}

// Width reports the bus width, always Four.
func (b *Bus) Width() hd44780.Width {
	return hd44780.Four
}

func (b *Bus) String() string {
	return "serialbus"
}

// Halt closes the serial port when the writer supports it.
func (b *Bus) Halt() error {
	if c, ok := b.w.(io.Closer); ok {
		if err := c.Close(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
			return wrap(err)
		}
	}
	return nil
}

var _ hd44780.Bus = &Bus{}
