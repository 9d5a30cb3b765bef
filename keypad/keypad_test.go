// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package keypad

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// fakeGroup is a gpio.Group whose read value is a function of the last
// written value, which is how a keypad matrix behaves electrically.
type fakeGroup struct {
	n      int
	value  gpio.GPIOValue
	onRead func(written gpio.GPIOValue) gpio.GPIOValue
	halted bool
}

func (g *fakeGroup) Pins() []pin.Pin {
	return make([]pin.Pin, g.n)
}

func (g *fakeGroup) ByOffset(offset int) pin.Pin { return nil }
func (g *fakeGroup) ByName(name string) pin.Pin  { return nil }
func (g *fakeGroup) ByNumber(number int) pin.Pin { return nil }

func (g *fakeGroup) Out(value, mask gpio.GPIOValue) error {
	g.value = value
	return nil
}

func (g *fakeGroup) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	if g.onRead == nil {
		return 0, nil
	}
	return g.onRead(g.value), nil
}

func (g *fakeGroup) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	return 0, gpio.NoEdge, nil
}

func (g *fakeGroup) Halt() error {
	g.halted = true
	return nil
}

func (g *fakeGroup) String() string { return "fake" }

var _ gpio.Group = &fakeGroup{}

// matrix wires a fakeGroup pair like a pad with the given closed switches.
func matrix(closed map[[2]int]bool) (*fakeGroup, *fakeGroup) {
	cols := &fakeGroup{n: 4}
	rows := &fakeGroup{n: 4}
	rows.onRead = func(_ gpio.GPIOValue) gpio.GPIOValue {
		var v gpio.GPIOValue
		for rc := range closed {
			if !closed[rc] {
				continue
			}
			if cols.value&(gpio.GPIOValue(1)<<rc[1]) != 0 {
				v |= gpio.GPIOValue(1) << rc[0]
			}
		}
		return v
	}
	return cols, rows
}

func TestReadSingleKey(t *testing.T) {
	// Row 3, column 2 is '#'.
	cols, rows := matrix(map[[2]int]bool{{3, 2}: true})
	kp, err := New(cols, rows, Layout4x4)
	if err != nil {
		t.Fatal(err)
	}
	keys, err := kp.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != '#' {
		t.Errorf("Read = %q, want ['#']", string(keys))
	}
	if cols.value != 0 {
		t.Errorf("columns left driven at %#x after scan", cols.value)
	}
}

func TestReadMultipleKeys(t *testing.T) {
	cols, rows := matrix(map[[2]int]bool{{0, 0}: true, {1, 1}: true, {3, 3}: true})
	kp, err := New(cols, rows, Layout4x4)
	if err != nil {
		t.Fatal(err)
	}
	keys, err := kp.Read()
	if err != nil {
		t.Fatal(err)
	}
	if string(keys) != "15D" {
		t.Errorf("Read = %q, want \"15D\"", string(keys))
	}
}

func TestNewValidatesLayout(t *testing.T) {
	cols := &fakeGroup{n: 3}
	rows := &fakeGroup{n: 4}
	if _, err := New(cols, rows, Layout4x4); err == nil {
		t.Error("3 column pins against a 4 column layout should fail")
	}
}

// scriptedKeypad plays back a sequence of scans.
type scriptedKeypad struct {
	scans [][]rune
	i     int
}

func (s *scriptedKeypad) Read() ([]rune, error) {
	if s.i < len(s.scans) {
		s.i++
	}
	return s.scans[s.i-1], nil
}

func TestDebounce(t *testing.T) {
	sk := &scriptedKeypad{scans: [][]rune{
		nil,        // idle
		{'5'},      // contact starts bouncing
		nil,        // bounce
		{'5'},      // pressed again
		{'5'},      // still pressed, window not yet over
		{'5'},      // stable past the window
	}}
	d := NewDebounced(sk, 50*time.Millisecond)
	clock := time.Now()
	d.now = func() time.Time { return clock }

	expect := func(want string) {
		t.Helper()
		keys, err := d.Read()
		if err != nil {
			t.Fatal(err)
		}
		if string(keys) != want {
			t.Errorf("Read = %q, want %q", string(keys), want)
		}
	}

	expect("")
	expect("") // '5' seen but not yet stable
	expect("") // bounce restarts the window
	clock = clock.Add(10 * time.Millisecond)
	expect("") // '5' again, new window
	clock = clock.Add(30 * time.Millisecond)
	expect("") // 30ms < 50ms
	clock = clock.Add(30 * time.Millisecond)
	expect("5") // stable for 60ms
}
