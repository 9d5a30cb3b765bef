// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package charlcd exposes row and column oriented text output on top of a
// character LCD protocol driver.
//
// The facade composes a Controller, which speaks the instruction set of a
// concrete chip, with a ROM table that maps runes to the chip's display
// codes. It implements periph.io/x/conn/v3/display.TextDisplay so it can be
// exercised with displaytest and dropped into code written against that
// interface.
package charlcd

import (
	"errors"
	"fmt"
	"strings"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"

	"github.com/TheChilliPL/pilock/dogm204"
	"github.com/TheChilliPL/pilock/hd44780"
)

// ErrOutOfBounds is returned for a cursor position outside the configured
// rows and columns. Raw DDRAM addresses are masked instead; only the row and
// column form is checked, because it goes through a table lookup.
var ErrOutOfBounds = errors.New("position out of bounds")

func wrap(err error) error {
	return fmt.Errorf("charlcd: %w", err)
}

// Controller is the instruction-level contract a chip driver exposes to the
// facade. Both hd44780.Dev and dogm204.Dev satisfy it, as does the in-memory
// controller in charlcdtest.
type Controller interface {
	Init() error
	Clear() error
	ReturnHome() error
	SetEntryMode(dir hd44780.CursorDirection, shift bool) error
	SetDisplayControl(on, cursor, blink bool) error
	CursorShift(displayShift bool, dir hd44780.CursorDirection) error
	SetDDRAMAddress(addr byte) error
	SetCGRAMAddress(addr byte) error
	WriteChar(code byte) error
	ReadChar() (byte, error)
	Address() (byte, error)
	CanRead() bool
	conn.Resource
}

var (
	_ Controller = &hd44780.Dev{}
	_ Controller = &dogm204.Dev{}
)

// HD44780LineOffsets returns the DDRAM base address of each row on HD44780
// panels, which interleave rows in memory. Three-row panels do not exist in
// this family.
func HD44780LineOffsets(rows int) ([]byte, error) {
	switch rows {
	case 1:
		return []byte{0x00}, nil
	case 2:
		return []byte{0x00, 0x40}, nil
	case 4:
		return []byte{0x00, 0x40, 0x14, 0x54}, nil
	}
	return nil, wrap(fmt.Errorf("no line offsets for %d rows", rows))
}

// DOGMLineOffsets returns the DDRAM base address of each row on DOGM204
// panels, which lay rows out linearly 32 bytes apart.
func DOGMLineOffsets(rows int) ([]byte, error) {
	if rows < 1 || rows > 4 {
		return nil, wrap(fmt.Errorf("no line offsets for %d rows", rows))
	}
	return []byte{0x00, 0x20, 0x40, 0x60}[:rows], nil
}

// Opts configures a Display.
type Opts struct {
	// Rows and Cols are the visible panel dimensions.
	Rows, Cols int
	// ROM is the character table of the chip variant. A00 when nil.
	ROM *ROM
	// LineOffsets overrides the DDRAM base address of each row. When nil the
	// HD44780 layout for Rows is used.
	LineOffsets []byte
}

// Display is a text display backed by a character LCD controller.
type Display struct {
	ctrl    Controller
	rom     *ROM
	rows    int
	cols    int
	offsets []byte

	dir    hd44780.CursorDirection
	shift  bool
	on     bool
	cursor bool
	blink  bool
}

// New returns a Display for the given controller. The panel is untouched
// until Init.
func New(ctrl Controller, opts *Opts) (*Display, error) {
	if ctrl == nil {
		return nil, wrap(errors.New("controller is required"))
	}
	if opts == nil || opts.Rows < 1 || opts.Cols < 1 {
		return nil, wrap(errors.New("opts with rows and cols are required"))
	}
	rom := opts.ROM
	if rom == nil {
		rom = A00
	}
	offsets := opts.LineOffsets
	if offsets == nil {
		var err error
		if offsets, err = HD44780LineOffsets(opts.Rows); err != nil {
			return nil, err
		}
	}
	if len(offsets) != opts.Rows {
		return nil, wrap(fmt.Errorf("%d line offsets for %d rows", len(offsets), opts.Rows))
	}
	return &Display{
		ctrl:    ctrl,
		rom:     rom,
		rows:    opts.Rows,
		cols:    opts.Cols,
		offsets: offsets,
		dir:     hd44780.Right,
	}, nil
}

// Init initializes the controller and puts the display in a known state:
// on, cursor hidden, writing left to right without display shift.
func (d *Display) Init() error {
	if err := d.ctrl.Init(); err != nil {
		return err
	}
	if err := d.SetEntryMode(hd44780.Right, false); err != nil {
		return err
	}
	return d.SetDisplayControl(true, false, false)
}

// Print writes text at the cursor. A line feed, or a carriage return and
// line feed pair, breaks to the start of the next row. Runes without a glyph
// in the ROM table come out as the first user-defined character.
func (d *Display) Print(text string) error {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, ch := range text {
		if ch == '\n' {
			if err := d.BreakLine(); err != nil {
				return err
			}
			continue
		}
		if err := d.ctrl.WriteChar(d.rom.CodeOf(ch)); err != nil {
			return err
		}
	}
	return nil
}

// SetCursor moves the cursor to a zero-based row and column.
func (d *Display) SetCursor(row, col int) error {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return wrap(fmt.Errorf("%w: (%d, %d) on a %dx%d display", ErrOutOfBounds, row, col, d.rows, d.cols))
	}
	return d.ctrl.SetDDRAMAddress(d.offsets[row] + byte(col))
}

// BreakLine moves the cursor to the start of the next row, wrapping from the
// last row to the first. The current row is the one whose base address is
// nearest below the current address; rows are not ordered by address on
// HD44780 panels.
func (d *Display) BreakLine() error {
	addr, err := d.ctrl.Address()
	if err != nil {
		return err
	}
	row := 0
	best := -1
	for i, off := range d.offsets {
		if addr >= off && int(off) > best {
			best = int(off)
			row = i
		}
	}
	return d.ctrl.SetDDRAMAddress(d.offsets[(row+1)%d.rows])
}

// SetEntryMode sets the cursor direction and display shift. Both fields are
// taken at once; the instruction cannot change one without the other.
func (d *Display) SetEntryMode(dir hd44780.CursorDirection, shift bool) error {
	if err := d.ctrl.SetEntryMode(dir, shift); err != nil {
		return err
	}
	d.dir = dir
	d.shift = shift
	return nil
}

// SetDisplayControl turns the display, cursor and blink on or off. All three
// fields are taken at once; the instruction cannot change one without the
// others.
func (d *Display) SetDisplayControl(on, cursor, blink bool) error {
	if err := d.ctrl.SetDisplayControl(on, cursor, blink); err != nil {
		return err
	}
	d.on = on
	d.cursor = cursor
	d.blink = blink
	return nil
}

// ROM returns the active character table.
func (d *Display) ROM() *ROM {
	return d.rom
}

// AutoScroll enables shifting the whole display instead of moving the
// cursor on every write.
func (d *Display) AutoScroll(enabled bool) error {
	return d.SetEntryMode(d.dir, enabled)
}

// Clear clears the screen and moves the cursor to the first position.
func (d *Display) Clear() error {
	return d.ctrl.Clear()
}

// Cols returns the number of columns the display supports.
func (d *Display) Cols() int {
	return d.cols
}

// Cursor sets the cursor mode. Multiple modes can be passed.
func (d *Display) Cursor(modes ...display.CursorMode) error {
	cursor, blink := d.cursor, d.blink
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			cursor, blink = false, false
		case display.CursorUnderline:
			cursor = true
		case display.CursorBlink, display.CursorBlock:
			cursor, blink = true, true
		default:
			return wrap(fmt.Errorf("unexpected cursor mode %d", mode))
		}
	}
	return d.SetDisplayControl(d.on, cursor, blink)
}

// Display turns the display on or off without losing its contents.
func (d *Display) Display(on bool) error {
	return d.SetDisplayControl(on, d.cursor, d.blink)
}

// Home moves the cursor home (MinRow(), MinCol()).
func (d *Display) Home() error {
	return d.ctrl.ReturnHome()
}

// MinCol returns the min column position.
func (d *Display) MinCol() int {
	return 1
}

// MinRow returns the min row position.
func (d *Display) MinRow() int {
	return 1
}

// Move moves the cursor forward or backward.
func (d *Display) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		return d.ctrl.CursorShift(false, hd44780.Right)
	case display.Backward:
		return d.ctrl.CursorShift(false, hd44780.Left)
	case display.Down:
		return d.BreakLine()
	default:
		return wrap(display.ErrNotImplemented)
	}
}

// MoveTo moves the cursor to an arbitrary position, one-based as the
// TextDisplay interface specifies.
func (d *Display) MoveTo(row, col int) error {
	return d.SetCursor(row-1, col-1)
}

// Rows returns the number of rows the display supports.
func (d *Display) Rows() int {
	return d.rows
}

// Write writes raw display codes at the cursor. A line feed byte breaks to
// the next row, everything else goes to the panel unmapped so CGRAM glyphs
// can be displayed.
func (d *Display) Write(p []byte) (int, error) {
	for n, b := range p {
		if b == '\n' {
			if err := d.BreakLine(); err != nil {
				return n, err
			}
			continue
		}
		if err := d.ctrl.WriteChar(b); err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// WriteString writes text at the cursor through the ROM table.
func (d *Display) WriteString(text string) (int, error) {
	if err := d.Print(text); err != nil {
		return 0, err
	}
	return len(text), nil
}

func (d *Display) String() string {
	return fmt.Sprintf("charlcd{%s, %dx%d, ROM %s}", d.ctrl, d.rows, d.cols, d.rom.Name())
}

// Halt clears the display and releases the controller.
func (d *Display) Halt() error {
	return d.ctrl.Halt()
}

var _ display.TextDisplay = &Display{}
