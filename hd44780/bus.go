// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Width is the data bus width of the display connection.
type Width int

const (
	// Four wires only D4-D7; every byte is sent as two nibble pulses.
	Four Width = 4
	// Eight wires D0-D7; every byte is sent in a single pulse.
	Eight Width = 8
)

// Bus moves raw bytes between the host and an HD44780-family controller.
//
// WriteByte/ReadByte block until the controller has had the documented time
// to latch the transfer; callers never need to pace themselves. The rs flag
// selects the instruction register (false) or the data register (true).
type Bus interface {
	WriteByte(data byte, rs bool) error
	ReadByte(rs bool) (byte, error)
	// CanRead reports whether ReadByte is usable on this wiring.
	CanRead() bool
	Width() Width
	// Halt releases the underlying lines. The bus cannot be used afterwards.
	Halt() error
}

// Bus timing. The enable pulse itself only needs nanoseconds; the settle
// delay is the worst-case instruction time (clear/return-home) so that every
// instruction is safe without polling the busy flag.
const (
	setupDelay  = time.Microsecond
	enableDelay = time.Microsecond
	settleDelay = 1500 * time.Microsecond
)

// GPIOBus drives a display wired directly to GPIO lines.
//
// The data group must contain exactly the data pins, ordered D4-D7 (4-bit) or
// D0-D7 (8-bit); the bus width is inferred from the group size. RS and E are
// dedicated output pins. RW may be nil when the display's R/W line is
// grounded, in which case reads are unavailable.
type GPIOBus struct {
	data  gpio.Group
	rs    gpio.PinOut
	e     gpio.PinOut
	rw    gpio.PinOut
	width Width
	mask  gpio.GPIOValue

	reading bool
}

// NewGPIOBus returns a bus over the given lines. rw may be nil.
func NewGPIOBus(data gpio.Group, rs, e gpio.PinOut, rw gpio.PinOut) (*GPIOBus, error) {
	b := &GPIOBus{data: data, rs: rs, e: e, rw: rw}
	switch n := len(data.Pins()); {
	case n >= 8:
		b.width = Eight
		b.mask = 0xff
	case n >= 4:
		b.width = Four
		b.mask = 0x0f
	default:
		return nil, wrap(errors.New("data group needs at least 4 pins"))
	}
	if rs == nil || e == nil {
		return nil, wrap(errors.New("rs and e pins are required"))
	}
	if err := e.Out(gpio.Low); err != nil {
		return nil, wrap(err)
	}
	return b, nil
}

// WriteByte presents data on the bus and pulses E once (8-bit) or twice
// (4-bit, high nibble first).
func (b *GPIOBus) WriteByte(data byte, rs bool) error {
	if err := b.asOutput(); err != nil {
		return err
	}
	if err := b.rs.Out(gpio.Level(rs)); err != nil {
		return wrap(err)
	}
	if b.rw != nil {
		if err := b.rw.Out(gpio.Low); err != nil {
			return wrap(err)
		}
	}
	if b.width == Four {
		if err := b.pulse(gpio.GPIOValue(data >> 4)); err != nil {
			return err
		}
		return b.pulse(gpio.GPIOValue(data & 0x0f))
	}
	return b.pulse(gpio.GPIOValue(data))
}

// ReadByte samples the bus with RW high while E is raised. In 4-bit mode two
// samples are taken and reassembled high nibble first.
func (b *GPIOBus) ReadByte(rs bool) (byte, error) {
	if b.rw == nil {
		return 0, wrap(ErrNotSupported)
	}
	if err := b.asInput(); err != nil {
		return 0, err
	}
	if err := b.rs.Out(gpio.Level(rs)); err != nil {
		return 0, wrap(err)
	}
	if err := b.rw.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	time.Sleep(setupDelay)

	var data byte
	if b.width == Four {
		hi, err := b.sample()
		if err != nil {
			return 0, err
		}
		lo, err := b.sample()
		if err != nil {
			return 0, err
		}
		data = hi<<4 | lo&0x0f
	} else {
		v, err := b.sample()
		if err != nil {
			return 0, err
		}
		data = v
	}
	if err := b.rw.Out(gpio.Low); err != nil {
		return 0, wrap(err)
	}
	time.Sleep(settleDelay)
	return data, nil
}

// CanRead reports whether an R/W pin was wired.
func (b *GPIOBus) CanRead() bool {
	return b.rw != nil
}

// Width reports the configured bus width.
func (b *GPIOBus) Width() Width {
	return b.width
}

func (b *GPIOBus) String() string {
	return "GPIOBus{" + b.data.String() + "}"
}

// Halt releases the data group. The control pins are left low.
func (b *GPIOBus) Halt() error {
	_ = b.e.Out(gpio.Low)
	_ = b.rs.Out(gpio.Low)
	if b.rw != nil {
		_ = b.rw.Out(gpio.Low)
	}
	return b.data.Halt()
}

// pulse latches the value currently selected by mask into the controller.
func (b *GPIOBus) pulse(value gpio.GPIOValue) error {
	if err := b.data.Out(value, b.mask); err != nil {
		return wrap(err)
	}
	time.Sleep(setupDelay)
	if err := b.e.Out(gpio.High); err != nil {
		return wrap(err)
	}
	time.Sleep(enableDelay)
	if err := b.e.Out(gpio.Low); err != nil {
		return wrap(err)
	}
	time.Sleep(settleDelay)
	return nil
}

// sample raises E, reads the data lines, and lowers E again.
func (b *GPIOBus) sample() (byte, error) {
	if err := b.e.Out(gpio.High); err != nil {
		return 0, wrap(err)
	}
	time.Sleep(enableDelay)
	v, err := b.data.Read(b.mask)
	if err != nil {
		return 0, wrap(err)
	}
	if err := b.e.Out(gpio.Low); err != nil {
		return 0, wrap(err)
	}
	time.Sleep(enableDelay)
	return byte(v), nil
}

// asInput flips the data lines to inputs for a read transfer. Each pin in the
// group must implement gpio.PinIn; groups with fixed directions cannot read.
func (b *GPIOBus) asInput() error {
	if b.reading {
		return nil
	}
	for _, p := range b.data.Pins() {
		in, ok := p.(gpio.PinIn)
		if !ok {
			return wrap(ErrNotSupported)
		}
		if err := in.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return wrap(err)
		}
	}
	b.reading = true
	return nil
}

// asOutput restores the data lines to outputs after a read transfer.
func (b *GPIOBus) asOutput() error {
	if !b.reading {
		return nil
	}
	for _, p := range b.data.Pins() {
		out, ok := p.(gpio.PinOut)
		if !ok {
			return wrap(ErrNotSupported)
		}
		if err := out.Out(gpio.Low); err != nil {
			return wrap(err)
		}
	}
	b.reading = false
	return nil
}

var _ Bus = &GPIOBus{}
