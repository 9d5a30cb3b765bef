// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pingroup assembles discrete GPIO pins into a gpio.Group.
//
// Expander chips expose their lines as a group natively; host pins picked one
// by one from gpioreg do not. A Group makes a set of independent pins usable
// wherever a gpio.Group is expected, such as the data bus of a display wired
// straight to header pins. Group offsets follow the order the pins were
// given, lowest bit first.
package pingroup

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// Group is a gpio.Group over independent pins. Operations are not atomic:
// Out and Read touch the member pins one at a time, in group order.
type Group struct {
	pins []gpio.PinIO
}

// New returns a Group over the given pins.
func New(pins ...gpio.PinIO) (*Group, error) {
	if len(pins) == 0 {
		return nil, errors.New("pingroup: at least one pin is required")
	}
	for i, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("pingroup: pin %d is nil", i)
		}
	}
	return &Group{pins: append([]gpio.PinIO(nil), pins...)}, nil
}

// Pins returns the pins that make up the group.
func (g *Group) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(g.pins))
	for i := range g.pins {
		pins[i] = g.pins[i]
	}
	return pins
}

// ByOffset returns the pin at the given group offset, or nil.
func (g *Group) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(g.pins) {
		return nil
	}
	return g.pins[offset]
}

// ByName returns the pin with the given name, or nil.
func (g *Group) ByName(name string) pin.Pin {
	for _, p := range g.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ByNumber returns the pin with the given pin number, or nil.
func (g *Group) ByNumber(number int) pin.Pin {
	for _, p := range g.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// Out writes value to the pins selected by mask. A zero mask selects every
// pin.
func (g *Group) Out(value, mask gpio.GPIOValue) error {
	if mask == 0 {
		mask = gpio.GPIOValue(1)<<len(g.pins) - 1
	}
	for i, p := range g.pins {
		bit := gpio.GPIOValue(1) << i
		if mask&bit == 0 {
			continue
		}
		if err := p.Out(value&bit != 0); err != nil {
			return fmt.Errorf("pingroup: %s: %w", p.Name(), err)
		}
	}
	return nil
}

// Read returns the levels of the pins selected by mask. A zero mask selects
// every pin. The pins must already be configured as inputs.
func (g *Group) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	if mask == 0 {
		mask = gpio.GPIOValue(1)<<len(g.pins) - 1
	}
	var value gpio.GPIOValue
	for i, p := range g.pins {
		bit := gpio.GPIOValue(1) << i
		if mask&bit == 0 {
			continue
		}
		if p.Read() {
			value |= bit
		}
	}
	return value, nil
}

// WaitForEdge waits for an edge on any pin in the group. Member pins are
// polled through their own WaitForEdge one at a time, so only single-pin
// groups give usable latency; larger groups should wait on a dedicated
// interrupt pin instead.
func (g *Group) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	if len(g.pins) != 1 {
		return 0, gpio.NoEdge, errors.New("pingroup: edge wait needs a dedicated pin")
	}
	if !g.pins[0].WaitForEdge(timeout) {
		return 0, gpio.NoEdge, errors.New("pingroup: timeout")
	}
	return 0, gpio.BothEdges, nil
}

// Halt releases every pin in the group. The group cannot be used afterwards.
func (g *Group) Halt() error {
	var first error
	for _, p := range g.pins {
		if err := p.Halt(); err != nil && first == nil {
			first = fmt.Errorf("pingroup: %s: %w", p.Name(), err)
		}
	}
	g.pins = nil
	return first
}

func (g *Group) String() string {
	names := make([]string, len(g.pins))
	for i, p := range g.pins {
		names[i] = p.Name()
	}
	return "pingroup[" + strings.Join(names, " ") + "]"
}

var _ gpio.Group = &Group{}
