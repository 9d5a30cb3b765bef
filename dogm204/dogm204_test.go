// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dogm204

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/TheChilliPL/pilock/hd44780"
)

func TestInit4Line(t *testing.T) {
	bus := &recordBus{width: hd44780.Four}
	d := newDev(t, bus, &Opts{Lines: 4})
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x33, 0x32, // 4-bit synchronization
		0x2a,       // function set, RE=1
		0x09,       // extended function set, 4 lines
		0x06,       // entry mode, bottom view
		0x1f,       // double height top, 1/6 bias
		0x29,       // function set, RE=0 IS=1
		0x1b,       // oscillator 540 kHz, 1/6 bias
		0x6e,       // follower on, ratio 6
		0x55,       // booster on, contrast high bits
		0x7a,       // contrast low bits
		0x28,       // function set, RE=0 IS=0
		0x0f,       // display on, cursor on, blink on
		0x01,       // clear
	}
	assertCommands(t, bus, want)
	for _, w := range bus.writes {
		if w.rs {
			t.Errorf("unexpected data write %#02x during init", w.data)
		}
	}
}

func TestInitExplicitBias(t *testing.T) {
	// An unset Opts.Bias stays at the panel's 1/6 divider; asking for the
	// controller's 1/5 power-on value clears BS1 and BS0.
	bus := &recordBus{width: hd44780.Four}
	d := newDev(t, bus, &Opts{Lines: 4, Bias: Bias1_5})
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x33, 0x32,
		0x2a,
		0x09,
		0x06,
		0x1d, // double height top, 1/5 bias
		0x29,
		0x13, // oscillator 540 kHz, 1/5 bias
		0x6e,
		0x55,
		0x7a,
		0x28,
		0x0f,
		0x01,
	}
	assertCommands(t, bus, want)
}

func TestBankTransitionIdempotent(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 4})

	// From the default bank, the first IS=1 instruction needs a function
	// set. A second one must not repeat it.
	if err := d.ContrastSet(0x1a); err != nil {
		t.Fatal(err)
	}
	assertCommands(t, bus, []byte{0x39, 0x7a})
	bus.writes = nil
	if err := d.ContrastSet(0x15); err != nil {
		t.Fatal(err)
	}
	assertCommands(t, bus, []byte{0x75})
}

func TestBankTransitionBothBits(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 4})
	if err := d.ContrastSet(0x1a); err != nil {
		t.Fatal(err)
	}
	bus.writes = nil

	// Needs IS=0 and RE=1 starting from IS=1, RE=0: first a function set
	// clearing IS, then one setting RE, then the instruction itself.
	if err := d.DoubleHeightBiasDotShift(DoubleBoth, Bias1_6, false); err != nil {
		t.Fatal(err)
	}
	assertCommands(t, bus, []byte{0x38, 0x3a, 0x1b})
}

func TestLeavingREClearsIt(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 2})
	if err := d.SetScrollQuantity(10); err != nil {
		t.Fatal(err)
	}
	assertCommands(t, bus, []byte{0x3a, 0x8a})
	bus.writes = nil
	if err := d.SetEntryMode(hd44780.Right, false); err != nil {
		t.Fatal(err)
	}
	assertCommands(t, bus, []byte{0x38, 0x06})
}

func TestParameterValidation(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 4})
	for name, f := range map[string]func() error{
		"ratio":    func() error { return d.FollowerControl(true, 8) },
		"scroll":   func() error { return d.SetScrollQuantity(49) },
		"osc":      func() error { return d.OscFrequency(Bias1_5, 550*physic.KiloHertz) },
		"contrast": func() error { return d.ContrastSet(64) },
		"booster":  func() error { return d.IconBoosterContrast(false, true, 64) },
		"coeff":    func() error { return d.SetTempCoefficient(TempCoefficient(0x01)) },
		"rom":      func() error { return d.SelectROM(ROM(0x0c)) },
	} {
		if err := f(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: got %v, want ErrInvalidParameter", name, err)
		}
	}
	if len(bus.writes) != 0 {
		t.Errorf("rejected parameters still reached the bus: %#v", bus.writes)
	}
	if _, err := New(bus, &Opts{Lines: 5}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("New with 5 lines: got %v, want ErrInvalidParameter", err)
	}
	if _, err := New(bus, &Opts{Lines: 2, OscFrequency: physic.MegaHertz}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("New with 1 MHz oscillator: got %v, want ErrInvalidParameter", err)
	}
}

func TestAddressMasking(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 4})
	if err := d.SetDDRAMAddress(0xff); err != nil {
		t.Fatal(err)
	}
	if a, _ := d.Address(); a != 0x7f {
		t.Errorf("DDRAM address = %#02x, want 0x7f", a)
	}
	if err := d.SetCGRAMAddress(0x7f); err != nil {
		t.Fatal(err)
	}
	if a, _ := d.Address(); a != 0x3f {
		t.Errorf("CGRAM address = %#02x, want 0x3f", a)
	}
	if d.Space() != CharacterGenerator {
		t.Errorf("space = %s, want CGRAM", d.Space())
	}
	if err := d.SetSEGRAMAddress(0xff); err != nil {
		t.Fatal(err)
	}
	if a, _ := d.Address(); a != 0x0f {
		t.Errorf("SEGRAM address = %#02x, want 0x0f", a)
	}
	last := bus.writes[len(bus.writes)-1]
	if last.data != 0x4f {
		t.Errorf("SEGRAM set command = %#02x, want 0x4f", last.data)
	}
}

func TestWriteCharAdvancesPerSpace(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 4})
	if err := d.SetSEGRAMAddress(0x0f); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteChar(0xaa); err != nil {
		t.Fatal(err)
	}
	if a, _ := d.Address(); a != 0x00 {
		t.Errorf("SEGRAM address after wrap = %#02x, want 0x00", a)
	}
	if err := d.SetDDRAMAddress(0x00); err != nil {
		t.Fatal(err)
	}
	if err := d.SetEntryMode(hd44780.Left, false); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteChar('A'); err != nil {
		t.Fatal(err)
	}
	if a, _ := d.Address(); a != 0x7f {
		t.Errorf("DDRAM address after left wrap = %#02x, want 0x7f", a)
	}
}

func TestTwoByteCommands(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight}
	d := newDev(t, bus, &Opts{Lines: 4})
	if err := d.SelectROM(ROMB); err != nil {
		t.Fatal(err)
	}
	want := []busWrite{
		{0x3a, false}, // function set, RE=1
		{0x72, false}, // ROM selection
		{0x04, true},  // ROM B
	}
	if len(bus.writes) != len(want) {
		t.Fatalf("writes = %#v, want %#v", bus.writes, want)
	}
	for i, w := range want {
		if bus.writes[i] != w {
			t.Errorf("write %d = %#v, want %#v", i, bus.writes[i], w)
		}
	}
	bus.writes = nil
	if err := d.SetTempCoefficient(Coeff015); err != nil {
		t.Fatal(err)
	}
	if got := bus.writes[len(bus.writes)-1]; got != (busWrite{0x06, true}) {
		t.Errorf("coefficient data write = %#v, want {0x06 true}", got)
	}
}

func TestBusyFlagAndAddress(t *testing.T) {
	bus := &recordBus{width: hd44780.Eight, reads: []byte{0xc5}}
	d := newDev(t, bus, &Opts{Lines: 4})
	busy, addr, err := d.BusyFlagAndAddress()
	if err != nil {
		t.Fatal(err)
	}
	if !busy || addr != 0x45 {
		t.Errorf("busy = %t addr = %#02x, want true 0x45", busy, addr)
	}
	if a, _ := d.Address(); a != 0x45 {
		t.Errorf("shadow address = %#02x, want 0x45", a)
	}
}

//

type busWrite struct {
	data byte
	rs   bool
}

// recordBus records every transfer and plays back scripted reads.
type recordBus struct {
	width  hd44780.Width
	writes []busWrite
	reads  []byte
}

func (b *recordBus) WriteByte(data byte, rs bool) error {
	b.writes = append(b.writes, busWrite{data, rs})
	return nil
}

func (b *recordBus) ReadByte(rs bool) (byte, error) {
	if len(b.reads) == 0 {
		return 0, errors.New("no scripted read")
	}
	r := b.reads[0]
	b.reads = b.reads[1:]
	return r, nil
}

func (b *recordBus) CanRead() bool        { return true }
func (b *recordBus) Width() hd44780.Width { return b.width }
func (b *recordBus) Halt() error          { return nil }

var _ hd44780.Bus = &recordBus{}

func newDev(t *testing.T, bus hd44780.Bus, opts *Opts) *Dev {
	t.Helper()
	d, err := New(bus, opts)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func assertCommands(t *testing.T, bus *recordBus, want []byte) {
	t.Helper()
	var got []byte
	for _, w := range bus.writes {
		if !w.rs {
			got = append(got, w.data)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("commands = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}
