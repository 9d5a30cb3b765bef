// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termlcd implements a character LCD emulator that outputs to
// terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your DOGM204 panel to come by mail: it
// plugs into charlcd as a Controller, so the whole application runs
// unmodified with the panel drawn in a terminal. The backlight is rendered
// as a colored strip above the character cells.
package termlcd

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/TheChilliPL/pilock/charlcd"
	"github.com/TheChilliPL/pilock/hd44780"
)

// Opts represents the options available for this display.
type Opts struct {
	// Rows and Cols are the emulated panel dimensions.
	Rows, Cols int
	// ROM decodes display codes for rendering. A00 when nil.
	ROM *charlcd.ROM
	// LineOffsets is the DDRAM layout. The HD44780 layout for Rows when nil.
	LineOffsets []byte
	// Backlight is the color of the backlight strip.
	Backlight color.NRGBA
	// Palette maps colors to ANSI codes. ansi256.Default when nil.
	Palette *ansi256.Palette
	// W receives the ANSI output. A colorable stdout when nil.
	W io.Writer
}

// Dev is a character LCD emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	rows    int
	cols    int
	rom     *charlcd.ROM
	offsets []byte
	palette ansi256.Palette

	ddram     [128]byte
	cgram     [64]byte
	addr      byte
	inCGRAM   bool
	dir       hd44780.CursorDirection
	on        bool
	cursor    bool
	blink     bool
	backlight color.NRGBA

	painted bool
	buf     bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of display code without hardware.
func New(opts *Opts) (*Dev, error) {
	if opts == nil || opts.Rows < 1 || opts.Cols < 1 {
		return nil, errors.New("termlcd: opts with rows and cols are required")
	}
	rom := opts.ROM
	if rom == nil {
		rom = charlcd.A00
	}
	offsets := opts.LineOffsets
	if offsets == nil {
		var err error
		if offsets, err = charlcd.HD44780LineOffsets(opts.Rows); err != nil {
			return nil, err
		}
	}
	if len(offsets) != opts.Rows {
		return nil, fmt.Errorf("termlcd: %d line offsets for %d rows", len(offsets), opts.Rows)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	bl := opts.Backlight
	if bl == (color.NRGBA{}) {
		bl = color.NRGBA{R: 0x40, G: 0xc0, B: 0x40, A: 0xff}
	}
	d := &Dev{
		w:         w,
		rows:      opts.Rows,
		cols:      opts.Cols,
		rom:       rom,
		offsets:   offsets,
		palette:   *p,
		dir:       hd44780.Right,
		backlight: bl,
	}
	return d, nil
}

func (d *Dev) Init() error {
	d.blank()
	d.dir = hd44780.Right
	d.on = true
	d.cursor = false
	d.blink = false
	return d.render()
}

func (d *Dev) Clear() error {
	d.blank()
	return d.render()
}

func (d *Dev) ReturnHome() error {
	d.addr = 0
	d.inCGRAM = false
	return d.render()
}

func (d *Dev) SetEntryMode(dir hd44780.CursorDirection, shift bool) error {
	d.dir = dir
	return nil
}

func (d *Dev) SetDisplayControl(on, cursor, blink bool) error {
	d.on = on
	d.cursor = cursor
	d.blink = blink
	return d.render()
}

func (d *Dev) CursorShift(displayShift bool, dir hd44780.CursorDirection) error {
	if !displayShift {
		d.step(dir)
	}
	return d.render()
}

func (d *Dev) SetDDRAMAddress(addr byte) error {
	d.addr = addr & 0x7f
	d.inCGRAM = false
	return d.render()
}

func (d *Dev) SetCGRAMAddress(addr byte) error {
	d.addr = addr & 0x3f
	d.inCGRAM = true
	return nil
}

func (d *Dev) WriteChar(code byte) error {
	if d.inCGRAM {
		d.cgram[d.addr] = code
		d.step(d.dir)
		return nil
	}
	d.ddram[d.addr] = code
	d.step(d.dir)
	return d.render()
}

func (d *Dev) ReadChar() (byte, error) {
	var b byte
	if d.inCGRAM {
		b = d.cgram[d.addr]
	} else {
		b = d.ddram[d.addr]
	}
	d.step(d.dir)
	return b, nil
}

func (d *Dev) Address() (byte, error) {
	return d.addr, nil
}

func (d *Dev) CanRead() bool {
	return true
}

// SetBacklight changes the color of the emulated backlight strip.
func (d *Dev) SetBacklight(c color.NRGBA) error {
	d.backlight = c
	return d.render()
}

func (d *Dev) String() string {
	return fmt.Sprintf("termlcd{%dx%d}", d.rows, d.cols)
}

// Halt repaints one last time and resets the terminal attributes so the
// shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

func (d *Dev) blank() {
	for i := range d.ddram {
		d.ddram[i] = ' '
	}
	d.addr = 0
	d.inCGRAM = false
}

func (d *Dev) step(dir hd44780.CursorDirection) {
	size := byte(len(d.ddram))
	if d.inCGRAM {
		size = byte(len(d.cgram))
	}
	if dir == hd44780.Right {
		d.addr = (d.addr + 1) % size
	} else {
		d.addr = (d.addr + size - 1) % size
	}
}

// cursorCell returns the row and column under the address counter, or
// ok=false when the address falls outside the visible cells.
func (d *Dev) cursorCell() (row, col int, ok bool) {
	if d.inCGRAM {
		return 0, 0, false
	}
	best := -1
	for i, off := range d.offsets {
		if d.addr >= off && int(off) > best {
			best = int(off)
			row = i
		}
	}
	col = int(d.addr) - best
	return row, col, col < d.cols
}

// render repaints the whole panel in place. This code is designed to
// minimize the amount of memory allocated per call.
func (d *Dev) render() (err error) {
	d.buf.Reset()
	if d.painted {
		fmt.Fprintf(&d.buf, "\033[%dA\r", d.rows+1)
	}
	d.painted = true

	block := d.palette.Block(d.backlight)
	if !d.on {
		block = d.palette.Block(color.NRGBA{A: 0xff})
	}
	for c := 0; c < d.cols+2; c++ {
		_, _ = io.WriteString(&d.buf, block)
	}
	_, _ = d.buf.WriteString("\033[0m\n")

	curRow, curCol, curOK := d.cursorCell()
	for r := 0; r < d.rows; r++ {
		_, _ = d.buf.WriteString("[")
		for c := 0; c < d.cols; c++ {
			ch := ' '
			if d.on {
				if ch = d.rom.RuneOf(d.ddram[int(d.offsets[r])+c]); ch == 0 {
					ch = '?'
				}
			}
			if d.cursor && curOK && r == curRow && c == curCol {
				fmt.Fprintf(&d.buf, "\033[4m%c\033[24m", ch)
			} else {
				_, _ = d.buf.WriteRune(ch)
			}
		}
		_, _ = d.buf.WriteString("]\n")
	}
	_, err = d.buf.WriteTo(d.w)
	return err
}

var _ charlcd.Controller = &Dev{}
