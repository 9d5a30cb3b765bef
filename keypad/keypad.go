// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package keypad reads a matrix keypad scanned over GPIO.
//
// The keypad is a grid of switches connecting column lines to row lines. The
// columns are outputs and the rows are inputs with pull-downs: driving one
// column high at a time and sampling the rows finds every closed switch.
// Keys are reported as the rune printed on the cap.
package keypad

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Layout4x4 is the common 16-key telephone style pad.
var Layout4x4 = [][]rune{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// Keypad is anything that can report the set of currently pressed keys.
type Keypad interface {
	Read() ([]rune, error)
}

// Dev scans a matrix keypad. It owns its column and row groups exclusively.
type Dev struct {
	cols   gpio.Group
	rows   gpio.Group
	layout [][]rune
}

// New returns a Dev scanning the given lines. layout is indexed by row then
// column and must match the group sizes; Layout4x4 fits a 4x4 pad.
func New(cols, rows gpio.Group, layout [][]rune) (*Dev, error) {
	if cols == nil || rows == nil {
		return nil, errors.New("keypad: column and row groups are required")
	}
	if len(layout) != len(rows.Pins()) {
		return nil, fmt.Errorf("keypad: layout has %d rows for %d row pins", len(layout), len(rows.Pins()))
	}
	for i, row := range layout {
		if len(row) != len(cols.Pins()) {
			return nil, fmt.Errorf("keypad: layout row %d has %d keys for %d column pins", i, len(row), len(cols.Pins()))
		}
	}
	return &Dev{cols: cols, rows: rows, layout: layout}, nil
}

// Read scans the whole matrix once and returns the pressed keys in scan
// order, one column at a time. Multiple simultaneous presses are all reported; ghosting on
// three or more keys is a property of the hardware, not filtered here.
func (d *Dev) Read() ([]rune, error) {
	var pressed []rune
	nCols := len(d.layout[0])
	for col := 0; col < nCols; col++ {
		if err := d.cols.Out(gpio.GPIOValue(1)<<col, 0); err != nil {
			return nil, fmt.Errorf("keypad: %w", err)
		}
		value, err := d.rows.Read(0)
		if err != nil {
			return nil, fmt.Errorf("keypad: %w", err)
		}
		for row := range d.layout {
			if value&(gpio.GPIOValue(1)<<row) != 0 {
				pressed = append(pressed, d.layout[row][col])
			}
		}
	}
	if err := d.cols.Out(0, 0); err != nil {
		return nil, fmt.Errorf("keypad: %w", err)
	}
	return pressed, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("keypad{%dx%d}", len(d.layout), len(d.layout[0]))
}

// Halt releases both pin groups.
func (d *Dev) Halt() error {
	err := d.cols.Halt()
	if err2 := d.rows.Halt(); err == nil {
		err = err2
	}
	return err
}

var _ Keypad = &Dev{}

// Debounced filters mechanical switch noise out of another Keypad. A change
// in the pressed set is only reported once it has stayed stable for the
// debounce window; until then the previous stable set is returned.
type Debounced struct {
	kp     Keypad
	window time.Duration

	now          func() time.Time
	stable       string
	stableKeys   []rune
	pending      string
	pendingSince time.Time
}

// NewDebounced wraps kp with a debounce window. A zero window defaults to
// 50ms, plenty for common tact switches.
func NewDebounced(kp Keypad, window time.Duration) *Debounced {
	if window == 0 {
		window = 50 * time.Millisecond
	}
	return &Debounced{kp: kp, window: window, now: time.Now}
}

// Read returns the debounced set of pressed keys.
func (d *Debounced) Read() ([]rune, error) {
	raw, err := d.kp.Read()
	if err != nil {
		return nil, err
	}
	key := string(raw)
	if key == d.stable {
		d.pending = d.stable
		return d.stableKeys, nil
	}
	if key != d.pending {
		d.pending = key
		d.pendingSince = d.now()
		return d.stableKeys, nil
	}
	if d.now().Sub(d.pendingSince) < d.window {
		return d.stableKeys, nil
	}
	d.stable = key
	d.stableKeys = raw
	return d.stableKeys, nil
}

var _ Keypad = &Debounced{}
