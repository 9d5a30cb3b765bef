// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rotenc

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
)

type fakePin struct {
	name  string
	level gpio.Level
}

func (p *fakePin) String() string                 { return p.name }
func (p *fakePin) Halt() error                    { return nil }
func (p *fakePin) Name() string                   { return p.name }
func (p *fakePin) Number() int                    { return 0 }
func (p *fakePin) Function() string               { return "In" }
func (p *fakePin) In(gpio.Pull, gpio.Edge) error  { return nil }
func (p *fakePin) Read() gpio.Level               { return p.level }
func (p *fakePin) Pull() gpio.Pull                { return gpio.PullUp }
func (p *fakePin) DefaultPull() gpio.Pull         { return gpio.PullUp }
func (p *fakePin) WaitForEdge(time.Duration) bool { return false }

var _ gpio.PinIn = &fakePin{}

type harness struct {
	a, b *fakePin
	dev  *Dev
}

func newHarness(t *testing.T, opts *Opts) *harness {
	t.Helper()
	h := &harness{a: &fakePin{name: "A"}, b: &fakePin{name: "B"}}
	d, err := New(h.a, h.b, opts)
	if err != nil {
		t.Fatal(err)
	}
	h.dev = d
	return h
}

// set drives the channel levels and polls once.
func (h *harness) set(a, b gpio.Level) Rotation {
	h.a.level = a
	h.b.level = b
	return h.dev.Read()
}

func TestClockwiseDetent(t *testing.T) {
	h := newHarness(t, nil)
	if got := h.set(gpio.High, gpio.Low); got != None {
		t.Fatalf("after first step: %v, want %v", got, None)
	}
	if got := h.set(gpio.High, gpio.High); got != Clockwise {
		t.Fatalf("after second step: %v, want %v", got, Clockwise)
	}
	// The detent is consumed; holding still reports nothing.
	if got := h.set(gpio.High, gpio.High); got != None {
		t.Fatalf("at rest: %v, want %v", got, None)
	}
}

func TestCounterClockwiseDetent(t *testing.T) {
	h := newHarness(t, nil)
	if got := h.set(gpio.Low, gpio.High); got != None {
		t.Fatalf("after first step: %v, want %v", got, None)
	}
	if got := h.set(gpio.High, gpio.High); got != CounterClockwise {
		t.Fatalf("after second step: %v, want %v", got, CounterClockwise)
	}
}

func TestDirectionReversalCancelsOut(t *testing.T) {
	h := newHarness(t, nil)
	if got := h.set(gpio.High, gpio.Low); got != None {
		t.Fatalf("forward step: %v, want %v", got, None)
	}
	// Stepping straight back should leave the accumulator at zero, so a
	// following forward detent still needs both steps.
	if got := h.set(gpio.Low, gpio.Low); got != None {
		t.Fatalf("backward step: %v, want %v", got, None)
	}
	if got := h.set(gpio.High, gpio.Low); got != None {
		t.Fatalf("forward again: %v, want %v", got, None)
	}
	if got := h.set(gpio.High, gpio.High); got != Clockwise {
		t.Fatalf("detent: %v, want %v", got, Clockwise)
	}
}

func TestSkippedStateIgnored(t *testing.T) {
	h := newHarness(t, nil)
	// LL to HH is not adjacent in the gray sequence.
	if got := h.set(gpio.High, gpio.High); got != None {
		t.Fatalf("skipped state: %v, want %v", got, None)
	}
	if h.dev.count != 0 {
		t.Fatalf("count = %d, want 0", h.dev.count)
	}
}

func TestStalePartialDetentExpires(t *testing.T) {
	h := newHarness(t, &Opts{StaleAfter: 5})
	if got := h.set(gpio.High, gpio.Low); got != None {
		t.Fatalf("first step: %v, want %v", got, None)
	}
	for i := 0; i < 5; i++ {
		if got := h.set(gpio.High, gpio.Low); got != None {
			t.Fatalf("idle poll %d: %v, want %v", i, got, None)
		}
	}
	// The stranded half turn was discarded, so the next transition is a
	// fresh first step, not a detent.
	if got := h.set(gpio.High, gpio.High); got != None {
		t.Fatalf("step after expiry: %v, want %v", got, None)
	}
	if got := h.set(gpio.Low, gpio.High); got != Clockwise {
		t.Fatalf("detent: %v, want %v", got, Clockwise)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, &fakePin{}, nil); err == nil {
		t.Error("New(nil, b) = nil, want error")
	}
	if _, err := New(&fakePin{}, &fakePin{}, &Opts{StepsPerDetent: -1}); err == nil {
		t.Error("negative steps: want error")
	}
	if _, err := New(&fakePin{}, &fakePin{}, &Opts{StaleAfter: -1}); err == nil {
		t.Error("negative stale window: want error")
	}
}
