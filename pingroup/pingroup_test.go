// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pingroup

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type fakePin struct {
	name   string
	number int
	level  gpio.Level
	halted bool
}

func (p *fakePin) Name() string                                 { return p.name }
func (p *fakePin) Number() int                                  { return p.number }
func (p *fakePin) String() string                               { return p.name }
func (p *fakePin) Function() string                             { return "In/Out" }
func (p *fakePin) Halt() error                                  { p.halted = true; return nil }
func (p *fakePin) In(pull gpio.Pull, edge gpio.Edge) error      { return nil }
func (p *fakePin) Read() gpio.Level                             { return p.level }
func (p *fakePin) WaitForEdge(timeout time.Duration) bool       { return false }
func (p *fakePin) Pull() gpio.Pull                              { return gpio.Float }
func (p *fakePin) DefaultPull() gpio.Pull                       { return gpio.Float }
func (p *fakePin) Out(l gpio.Level) error                       { p.level = l; return nil }
func (p *fakePin) PWM(duty gpio.Duty, f physic.Frequency) error { return nil }

var _ gpio.PinIO = &fakePin{}

func newGroup(t *testing.T, n int) (*Group, []*fakePin) {
	t.Helper()
	pins := make([]*fakePin, n)
	ios := make([]gpio.PinIO, n)
	for i := range pins {
		pins[i] = &fakePin{name: "GPIO" + string(rune('0'+i)), number: 10 + i}
		ios[i] = pins[i]
	}
	g, err := New(ios...)
	if err != nil {
		t.Fatal(err)
	}
	return g, pins
}

func TestOut(t *testing.T) {
	g, pins := newGroup(t, 4)
	if err := g.Out(0b1010, 0); err != nil {
		t.Fatal(err)
	}
	for i, want := range []gpio.Level{gpio.Low, gpio.High, gpio.Low, gpio.High} {
		if pins[i].level != want {
			t.Errorf("pin %d = %t, want %t", i, pins[i].level, want)
		}
	}
	// A masked write must leave the other pins alone.
	if err := g.Out(0b0001, 0b0011); err != nil {
		t.Fatal(err)
	}
	if pins[0].level != gpio.High || pins[1].level != gpio.Low || pins[3].level != gpio.High {
		t.Errorf("masked write changed unmasked pins: %v", pins)
	}
}

func TestRead(t *testing.T) {
	g, pins := newGroup(t, 4)
	pins[0].level = gpio.High
	pins[2].level = gpio.High
	v, err := g.Read(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0b0101 {
		t.Errorf("Read = %#04b, want 0b0101", v)
	}
	v, err = g.Read(0b0100)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0b0100 {
		t.Errorf("masked Read = %#04b, want 0b0100", v)
	}
}

func TestLookups(t *testing.T) {
	g, _ := newGroup(t, 4)
	if p := g.ByOffset(2); p == nil || p.Name() != "GPIO2" {
		t.Errorf("ByOffset(2) = %v", p)
	}
	if p := g.ByOffset(4); p != nil {
		t.Errorf("ByOffset(4) = %v, want nil", p)
	}
	if p := g.ByName("GPIO1"); p == nil || p.Number() != 11 {
		t.Errorf("ByName(GPIO1) = %v", p)
	}
	if p := g.ByNumber(13); p == nil || p.Name() != "GPIO3" {
		t.Errorf("ByNumber(13) = %v", p)
	}
	if p := g.ByNumber(99); p != nil {
		t.Errorf("ByNumber(99) = %v, want nil", p)
	}
	if len(g.Pins()) != 4 {
		t.Errorf("Pins() = %d entries, want 4", len(g.Pins()))
	}
}

func TestHalt(t *testing.T) {
	g, pins := newGroup(t, 2)
	if err := g.Halt(); err != nil {
		t.Fatal(err)
	}
	for i, p := range pins {
		if !p.halted {
			t.Errorf("pin %d not halted", i)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(); err == nil {
		t.Error("empty group should fail")
	}
	if _, err := New(&fakePin{}, nil); err == nil {
		t.Error("nil pin should fail")
	}
}
