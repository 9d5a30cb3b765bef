// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hd44780 controls the Hitachi HD44780 LCD display chipset at the
// instruction level.
//
// The package is split in two layers. A Bus moves raw bytes to the controller
// and hides the 4-bit/8-bit transfer protocol; GPIOBus is the direct-wired
// implementation. Dev encodes the HD44780 instruction set on top of a Bus and
// mirrors the controller's address counter and entry mode so that higher
// layers can position the cursor without reading the busy flag back.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package hd44780

import (
	"errors"
	"fmt"
	"time"
)

// powerOnDelay is the extra wait after the first wake-up write; a controller
// coming out of power-on reset needs 4.1ms before the next instruction.
const powerOnDelay = 4100 * time.Microsecond

// CursorDirection selects which way the address counter moves after a data
// transfer.
type CursorDirection int

const (
	// Left decrements the address counter after every data transfer.
	Left CursorDirection = iota
	// Right increments the address counter after every data transfer.
	Right
)

func (d CursorDirection) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// ErrNotSupported is returned for operations the wired configuration cannot
// perform, like reading without an R/W pin.
var ErrNotSupported = errors.New("operation not supported")

func wrap(err error) error {
	return fmt.Errorf("hd44780: %w", err)
}

// HD44780 instruction opcodes. The low bits carry the instruction's
// parameters.
const (
	cmdClear          byte = 0x01
	cmdReturnHome     byte = 0x02
	cmdEntryMode      byte = 0x04
	cmdDisplayControl byte = 0x08
	cmdCursorShift    byte = 0x10
	cmdFunctionSet    byte = 0x20
	cmdSetCGRAMAddr   byte = 0x40
	cmdSetDDRAMAddr   byte = 0x80

	entryIncrement byte = 0x02
	entryShift     byte = 0x01

	controlOn     byte = 0x04
	controlCursor byte = 0x02
	controlBlink  byte = 0x01

	shiftDisplay byte = 0x08
	shiftRight   byte = 0x04

	function8Bit    byte = 0x10
	functionTwoLine byte = 0x08
	functionFont    byte = 0x04

	cgramMask byte = 0x3f
	ddramMask byte = 0x7f

	busyFlag byte = 0x80

	ddramSize = 0x80
	cgramSize = 0x40
)

// Opts holds the display configuration applied during Init.
type Opts struct {
	// TwoLine enables the two-line address layout. Required for any display
	// with more than one row.
	TwoLine bool
	// Font5x10 selects the tall 5x10 font instead of the default 5x8. Only
	// valid on one-line displays.
	Font5x10 bool
}

// Dev encodes HD44780 instructions onto a Bus.
//
// Dev keeps a shadow of the controller's address counter, entry mode and
// display control bits. The shadow is what Address() reports; it stays in
// sync as long as the device is driven through this Dev only, which is the
// ownership contract for the whole package.
type Dev struct {
	bus  Bus
	opts Opts

	addr    byte
	inCGRAM bool
	dir     CursorDirection
	shift   bool
	on      bool
	cursor  bool
	blink   bool
}

// New returns a Dev driving an HD44780 over the supplied bus. opts may be nil
// for a one-line 5x8 configuration. The display is not touched until Init is
// called.
func New(bus Bus, opts *Opts) (*Dev, error) {
	if bus == nil {
		return nil, wrap(errors.New("bus is required"))
	}
	d := &Dev{bus: bus, dir: Right}
	if opts != nil {
		d.opts = *opts
	}
	return d, nil
}

// Init performs the documented wake-up sequence and leaves the display
// cleared, on, and in increment entry mode.
//
// The controller may power up in either bus width, so the function-set
// command is sent three times in 8-bit form regardless of configuration. On a
// 4-bit bus this is expressed as the byte pair 0x33, 0x32: the first three
// nibble pulses carry 0x3 (8-bit function set), the final 0x2 pulse locks the
// controller into 4-bit mode. None of these steps may be skipped.
func (d *Dev) Init() error {
	switch d.bus.Width() {
	case Four:
		if err := d.bus.WriteByte(0x33, false); err != nil {
			return err
		}
		time.Sleep(powerOnDelay)
		if err := d.bus.WriteByte(0x32, false); err != nil {
			return err
		}
	case Eight:
		for i := 0; i < 3; i++ {
			if err := d.bus.WriteByte(0x30, false); err != nil {
				return err
			}
			time.Sleep(powerOnDelay)
		}
	default:
		return wrap(fmt.Errorf("invalid bus width %d", d.bus.Width()))
	}
	if err := d.FunctionSet(d.bus.Width() == Eight, d.opts.TwoLine, d.opts.Font5x10); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.SetDisplayControl(true, false, false); err != nil {
		return err
	}
	return d.SetEntryMode(Right, false)
}

// Clear clears the entire display and resets the address counter to DDRAM
// address 0.
func (d *Dev) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	d.addr = 0
	d.inCGRAM = false
	return nil
}

// ReturnHome moves the cursor to DDRAM address 0 and undoes any display
// shift.
func (d *Dev) ReturnHome() error {
	if err := d.command(cmdReturnHome); err != nil {
		return err
	}
	d.addr = 0
	d.inCGRAM = false
	return nil
}

// SetEntryMode sets the cursor move direction and whether the display shifts
// on data transfers. The instruction carries both fields, so both must be
// supplied on every call.
func (d *Dev) SetEntryMode(dir CursorDirection, shift bool) error {
	cmd := cmdEntryMode
	if dir == Right {
		cmd |= entryIncrement
	}
	if shift {
		cmd |= entryShift
	}
	if err := d.command(cmd); err != nil {
		return err
	}
	d.dir = dir
	d.shift = shift
	return nil
}

// SetDisplayControl turns the display, the cursor and cursor blinking on or
// off, all in one instruction.
func (d *Dev) SetDisplayControl(on, cursor, blink bool) error {
	cmd := cmdDisplayControl
	if on {
		cmd |= controlOn
	}
	if cursor {
		cmd |= controlCursor
	}
	if blink {
		cmd |= controlBlink
	}
	if err := d.command(cmd); err != nil {
		return err
	}
	d.on = on
	d.cursor = cursor
	d.blink = blink
	return nil
}

// CursorShift moves the cursor, or shifts the whole display when
// displayShift is set, one position in the given direction.
func (d *Dev) CursorShift(displayShift bool, dir CursorDirection) error {
	cmd := cmdCursorShift
	if displayShift {
		cmd |= shiftDisplay
	}
	if dir == Right {
		cmd |= shiftRight
	}
	if err := d.command(cmd); err != nil {
		return err
	}
	if !displayShift {
		d.step(dir)
	}
	return nil
}

// FunctionSet configures the interface width, line count and font.
func (d *Dev) FunctionSet(len8, twoLine, font5x10 bool) error {
	cmd := cmdFunctionSet
	if len8 {
		cmd |= function8Bit
	}
	if twoLine {
		cmd |= functionTwoLine
	}
	if font5x10 {
		cmd |= functionFont
	}
	return d.command(cmd)
}

// SetCGRAMAddress points the address counter at CGRAM. The address is
// truncated to 6 bits, matching the hardware register.
func (d *Dev) SetCGRAMAddress(addr byte) error {
	addr &= cgramMask
	if err := d.command(cmdSetCGRAMAddr | addr); err != nil {
		return err
	}
	d.addr = addr
	d.inCGRAM = true
	return nil
}

// SetDDRAMAddress points the address counter at DDRAM. The address is
// truncated to 7 bits, matching the hardware register.
func (d *Dev) SetDDRAMAddress(addr byte) error {
	addr &= ddramMask
	if err := d.command(cmdSetDDRAMAddr | addr); err != nil {
		return err
	}
	d.addr = addr
	d.inCGRAM = false
	return nil
}

// WriteChar writes one byte to the RAM selected by the address counter and
// advances it per the entry mode.
func (d *Dev) WriteChar(code byte) error {
	if err := d.bus.WriteByte(code, true); err != nil {
		return err
	}
	d.step(d.dir)
	return nil
}

// ReadChar reads one byte from the RAM selected by the address counter and
// advances it per the entry mode. Requires an R/W pin.
func (d *Dev) ReadChar() (byte, error) {
	b, err := d.bus.ReadByte(true)
	if err != nil {
		return 0, err
	}
	d.step(d.dir)
	return b, nil
}

// BusyFlagAndAddress reads the busy flag and the controller's address
// counter. Requires an R/W pin. The shadow address is resynchronized from the
// value read back.
func (d *Dev) BusyFlagAndAddress() (busy bool, addr byte, err error) {
	b, err := d.bus.ReadByte(false)
	if err != nil {
		return false, 0, err
	}
	busy = b&busyFlag != 0
	addr = b & ddramMask
	d.addr = addr
	return busy, addr, nil
}

// Address reports the shadow address counter.
func (d *Dev) Address() (byte, error) {
	return d.addr, nil
}

// InCGRAM reports whether the address counter currently targets CGRAM.
func (d *Dev) InCGRAM() bool {
	return d.inCGRAM
}

// CanRead reports whether the bus supports read transfers.
func (d *Dev) CanRead() bool {
	return d.bus.CanRead()
}

func (d *Dev) String() string {
	return fmt.Sprintf("HD44780{%d-bit}", d.bus.Width())
}

// Halt clears the display and releases the bus.
func (d *Dev) Halt() error {
	_ = d.Clear()
	return d.bus.Halt()
}

func (d *Dev) command(cmd byte) error {
	return d.bus.WriteByte(cmd, false)
}

// step advances the shadow address counter one position, wrapping within the
// RAM currently addressed.
func (d *Dev) step(dir CursorDirection) {
	size := byte(ddramSize)
	if d.inCGRAM {
		size = cgramSize
	}
	if dir == Right {
		d.addr = (d.addr + 1) % size
	} else {
		d.addr = (d.addr + size - 1) % size
	}
}
