// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rotenc reads a quadrature rotary encoder over two GPIO lines.
//
// The two channels step through the gray sequence LL, HL, HH, LH when the
// shaft turns clockwise and through the reverse when it turns the other
// way. Dev is polled: each Read samples both lines, accumulates valid
// transitions, and reports a rotation once enough of them add up to a
// detent. The encoder has no push button; wire one as a separate input.
package rotenc

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Rotation is the outcome of one poll.
type Rotation int

const (
	// None means the shaft did not complete a detent.
	None Rotation = iota
	Clockwise
	CounterClockwise
)

// String implements fmt.Stringer.
func (r Rotation) String() string {
	switch r {
	case None:
		return "none"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// position maps the sampled pair, encoded as A<<1|B, to its index in the
// clockwise gray sequence.
var position = [4]int{0b00: 0, 0b10: 1, 0b11: 2, 0b01: 3}

// Opts configures a Dev. The zero value picks the defaults.
type Opts struct {
	// StepsPerDetent is how many quadrature transitions make up one
	// reported rotation. 2 when zero.
	StepsPerDetent int
	// StaleAfter is the number of polls after which a partial detent is
	// discarded as contact noise. 200 when zero.
	StaleAfter int
}

// Dev is a polled rotary encoder. It owns its two pins exclusively.
type Dev struct {
	a, b  gpio.PinIn
	steps int
	stale int

	state   byte
	count   int
	age     int
	pending bool
}

// New returns a Dev over the two channel pins, primed with their current
// levels.
func New(a, b gpio.PinIn, opts *Opts) (*Dev, error) {
	if a == nil || b == nil {
		return nil, errors.New("rotenc: both channel pins are required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	steps := opts.StepsPerDetent
	if steps == 0 {
		steps = 2
	}
	if steps < 1 {
		return nil, fmt.Errorf("rotenc: %d steps per detent", steps)
	}
	stale := opts.StaleAfter
	if stale == 0 {
		stale = 200
	}
	if stale < 1 {
		return nil, fmt.Errorf("rotenc: stale after %d polls", stale)
	}
	d := &Dev{a: a, b: b, steps: steps, stale: stale}
	d.state = d.sample()
	return d, nil
}

// Read polls both channels once. Call it at a steady cadence; a detent
// spread over too many polls is treated as noise and dropped.
func (d *Dev) Read() Rotation {
	cur := d.sample()
	prev := d.state
	d.state = cur
	if d.pending {
		d.age++
		if d.age >= d.stale {
			d.pending = false
			d.count = 0
		}
	}
	if cur == prev {
		return None
	}
	p, c := position[prev], position[cur]
	switch {
	case (p+1)%4 == c:
		d.count++
	case (c+1)%4 == p:
		d.count--
	default:
		// Skipped a state; the sample rate is too low to trust it.
		return None
	}
	if !d.pending {
		d.pending = true
		d.age = 0
	}
	if d.count >= d.steps {
		d.reset()
		return Clockwise
	}
	if d.count <= -d.steps {
		d.reset()
		return CounterClockwise
	}
	return None
}

func (d *Dev) reset() {
	d.count = 0
	d.pending = false
}

func (d *Dev) sample() byte {
	var s byte
	if d.a.Read() == gpio.High {
		s |= 0b10
	}
	if d.b.Read() == gpio.High {
		s |= 0b01
	}
	return s
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("rotenc{%s, %s}", d.a, d.b)
}

// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	if err := d.a.Halt(); err != nil {
		return err
	}
	return d.b.Halt()
}
