// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buzzer

import (
	"context"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type pwmCall struct {
	duty gpio.Duty
	freq physic.Frequency
}

type fakePin struct {
	pwm    []pwmCall
	lows   int
	halted bool
}

func (p *fakePin) Name() string                            { return "BUZZ" }
func (p *fakePin) Number() int                             { return 18 }
func (p *fakePin) String() string                          { return "BUZZ" }
func (p *fakePin) Function() string                        { return "PWM" }
func (p *fakePin) Halt() error                             { p.halted = true; return nil }
func (p *fakePin) In(pull gpio.Pull, edge gpio.Edge) error { return nil }
func (p *fakePin) Read() gpio.Level                        { return gpio.Low }
func (p *fakePin) WaitForEdge(timeout time.Duration) bool  { return false }
func (p *fakePin) Pull() gpio.Pull                         { return gpio.Float }
func (p *fakePin) DefaultPull() gpio.Pull                  { return gpio.Float }

func (p *fakePin) Out(l gpio.Level) error {
	if l == gpio.Low {
		p.lows++
	}
	return nil
}

func (p *fakePin) PWM(duty gpio.Duty, f physic.Frequency) error {
	p.pwm = append(p.pwm, pwmCall{duty, f})
	return nil
}

var _ gpio.PinIO = &fakePin{}

func TestParseNote(t *testing.T) {
	n, err := ParseNote("C#4")
	if err != nil {
		t.Fatal(err)
	}
	if n != 61 {
		t.Errorf("C#4 = %d, want MIDI 61", n)
	}
	want := physic.Frequency(277.18 * float64(physic.Hertz))
	got := n.Frequency()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > physic.Frequency(0.01*float64(physic.Hertz)) {
		t.Errorf("C#4 frequency = %s, want about 277.18Hz", got)
	}
	if a4 := MustNote("A4").Frequency(); a4 != 440*physic.Hertz {
		t.Errorf("A4 frequency = %s, want 440Hz", a4)
	}
	for _, bad := range []string{"", "H4", "C", "C#", "Cb-1", "C99"} {
		if _, err := ParseNote(bad); err == nil {
			t.Errorf("ParseNote(%q) should fail", bad)
		}
	}
}

func TestMelodyNoteAt(t *testing.T) {
	m := Melody{
		{MustNote("C4"), 500 * time.Millisecond},
		{MustNote("D4"), 500 * time.Millisecond},
		{Rest, 250 * time.Millisecond},
		{MustNote("E4"), 500 * time.Millisecond},
	}
	if m.Duration() != 1750*time.Millisecond {
		t.Errorf("Duration = %s, want 1.75s", m.Duration())
	}
	cases := []struct {
		at   time.Duration
		want Note
	}{
		{-5 * time.Millisecond, Rest},
		{0, MustNote("C4")},
		{250 * time.Millisecond, MustNote("C4")},
		{500 * time.Millisecond, MustNote("D4")},
		{750 * time.Millisecond, MustNote("D4")},
		{1000 * time.Millisecond, Rest},
		{1250 * time.Millisecond, MustNote("E4")},
		{1750 * time.Millisecond, Rest},
	}
	for _, c := range cases {
		if got := m.NoteAt(c.at); got != c.want {
			t.Errorf("NoteAt(%s) = %s, want %s", c.at, got, c.want)
		}
	}
}

func TestPlay(t *testing.T) {
	pin := &fakePin{}
	d, err := New(pin)
	if err != nil {
		t.Fatal(err)
	}
	m := Melody{
		{MustNote("C4"), time.Millisecond},
		{Rest, time.Millisecond},
		{MustNote("E4"), time.Millisecond},
	}
	if err := d.Play(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	if len(pin.pwm) != 2 {
		t.Fatalf("pwm calls = %d, want 2", len(pin.pwm))
	}
	for _, c := range pin.pwm {
		if c.duty != gpio.DutyHalf {
			t.Errorf("duty = %d, want DutyHalf", c.duty)
		}
	}
	if pin.lows == 0 {
		t.Error("buzzer never silenced")
	}
}

func TestPlayCanceled(t *testing.T) {
	pin := &fakePin{}
	d, err := New(pin)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := Melody{{MustNote("C4"), time.Hour}}
	if err := d.Play(ctx, m); err != context.Canceled {
		t.Errorf("Play = %v, want context.Canceled", err)
	}
	if pin.lows == 0 {
		t.Error("buzzer not silenced on cancel")
	}
}
