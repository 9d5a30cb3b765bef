// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"errors"
	"testing"
)

// recordBus captures every byte sent over the bus together with the register
// select flag, and plays back scripted reads.
type recordBus struct {
	width   Width
	canRead bool

	writes []busWrite
	reads  []byte
}

type busWrite struct {
	data byte
	rs   bool
}

func (b *recordBus) WriteByte(data byte, rs bool) error {
	b.writes = append(b.writes, busWrite{data, rs})
	return nil
}

func (b *recordBus) ReadByte(rs bool) (byte, error) {
	if !b.canRead {
		return 0, wrap(ErrNotSupported)
	}
	if len(b.reads) == 0 {
		return 0, errors.New("recordBus: no scripted read")
	}
	v := b.reads[0]
	b.reads = b.reads[1:]
	return v, nil
}

func (b *recordBus) CanRead() bool { return b.canRead }
func (b *recordBus) Width() Width  { return b.width }
func (b *recordBus) Halt() error   { return nil }

func (b *recordBus) commands() []byte {
	var cmds []byte
	for _, w := range b.writes {
		if !w.rs {
			cmds = append(cmds, w.data)
		}
	}
	return cmds
}

func newDev(t *testing.T, width Width, opts *Opts) (*Dev, *recordBus) {
	t.Helper()
	bus := &recordBus{width: width}
	dev, err := New(bus, opts)
	if err != nil {
		t.Fatal(err)
	}
	return dev, bus
}

func TestInit4Bit(t *testing.T) {
	dev, bus := newDev(t, Four, &Opts{TwoLine: true})
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x33, 0x32, 0x28, 0x01, 0x0c, 0x06}
	got := bus.commands()
	if len(got) != len(want) {
		t.Fatalf("init sent %d commands, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("init command %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestInit8Bit(t *testing.T) {
	dev, bus := newDev(t, Eight, &Opts{TwoLine: true})
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x30, 0x30, 0x30, 0x38, 0x01, 0x0c, 0x06}
	got := bus.commands()
	if len(got) != len(want) {
		t.Fatalf("init sent %d commands, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("init command %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestInstructionEncoding(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Dev) error
		want byte
	}{
		{"Clear", (*Dev).Clear, 0x01},
		{"ReturnHome", (*Dev).ReturnHome, 0x02},
		{"EntryLeftNoShift", func(d *Dev) error { return d.SetEntryMode(Left, false) }, 0x04},
		{"EntryRightShift", func(d *Dev) error { return d.SetEntryMode(Right, true) }, 0x07},
		{"ControlOff", func(d *Dev) error { return d.SetDisplayControl(false, false, false) }, 0x08},
		{"ControlAll", func(d *Dev) error { return d.SetDisplayControl(true, true, true) }, 0x0f},
		{"CursorShiftLeft", func(d *Dev) error { return d.CursorShift(false, Left) }, 0x10},
		{"DisplayShiftRight", func(d *Dev) error { return d.CursorShift(true, Right) }, 0x1c},
		{"FunctionSet", func(d *Dev) error { return d.FunctionSet(true, true, false) }, 0x38},
		{"CGRAMAddress", func(d *Dev) error { return d.SetCGRAMAddress(0x15) }, 0x55},
		{"DDRAMAddress", func(d *Dev) error { return d.SetDDRAMAddress(0x40) }, 0xc0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, bus := newDev(t, Eight, nil)
			if err := tt.op(dev); err != nil {
				t.Fatal(err)
			}
			if got := bus.writes[0]; got.rs || got.data != tt.want {
				t.Errorf("sent %#02x (rs=%t), want %#02x (rs=false)", got.data, got.rs, tt.want)
			}
		})
	}
}

func TestAddressMasking(t *testing.T) {
	dev, bus := newDev(t, Eight, nil)
	if err := dev.SetDDRAMAddress(0xff); err != nil {
		t.Fatal(err)
	}
	if addr, _ := dev.Address(); addr != 0x7f {
		t.Errorf("address = %#02x, want 0x7f", addr)
	}
	if got := bus.writes[0].data; got != 0xff {
		t.Errorf("command = %#02x, want 0xff", got)
	}
	if err := dev.SetCGRAMAddress(0x7f); err != nil {
		t.Fatal(err)
	}
	if addr, _ := dev.Address(); addr != 0x3f {
		t.Errorf("CGRAM address = %#02x, want 0x3f", addr)
	}
	if !dev.InCGRAM() {
		t.Error("InCGRAM() = false after SetCGRAMAddress")
	}
}

func TestWriteCharAdvances(t *testing.T) {
	dev, bus := newDev(t, Eight, nil)
	if err := dev.WriteChar('H'); err != nil {
		t.Fatal(err)
	}
	if got := bus.writes[0]; !got.rs || got.data != 'H' {
		t.Errorf("sent %#02x (rs=%t), want 'H' (rs=true)", got.data, got.rs)
	}
	if addr, _ := dev.Address(); addr != 1 {
		t.Errorf("address = %d, want 1", addr)
	}

	// Left entry mode wraps modulo the DDRAM size.
	if err := dev.SetEntryMode(Left, false); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetDDRAMAddress(0); err != nil {
		t.Fatal(err)
	}
	if err := dev.WriteChar('i'); err != nil {
		t.Fatal(err)
	}
	if addr, _ := dev.Address(); addr != 0x7f {
		t.Errorf("address = %#02x, want 0x7f", addr)
	}
}

func TestReadRequiresRWPin(t *testing.T) {
	dev, _ := newDev(t, Eight, nil)
	if dev.CanRead() {
		t.Fatal("CanRead() = true on a write-only bus")
	}
	if _, err := dev.ReadChar(); !errors.Is(err, ErrNotSupported) {
		t.Errorf("ReadChar() error = %v, want ErrNotSupported", err)
	}
	if _, _, err := dev.BusyFlagAndAddress(); !errors.Is(err, ErrNotSupported) {
		t.Errorf("BusyFlagAndAddress() error = %v, want ErrNotSupported", err)
	}
}

func TestBusyFlagAndAddress(t *testing.T) {
	bus := &recordBus{width: Eight, canRead: true, reads: []byte{0xc5}}
	dev, err := New(bus, nil)
	if err != nil {
		t.Fatal(err)
	}
	busy, addr, err := dev.BusyFlagAndAddress()
	if err != nil {
		t.Fatal(err)
	}
	if !busy {
		t.Error("busy = false, want true")
	}
	if addr != 0x45 {
		t.Errorf("addr = %#02x, want 0x45", addr)
	}
	if shadow, _ := dev.Address(); shadow != 0x45 {
		t.Errorf("shadow address = %#02x, want 0x45", shadow)
	}
}
