// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package buzzer drives a piezo buzzer on a PWM capable GPIO pin and plays
// simple melodies on it.
package buzzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Dev is a buzzer on a single pin. The pin is owned exclusively.
type Dev struct {
	pin gpio.PinIO
}

// New returns a Dev on the given pin.
func New(pin gpio.PinIO) (*Dev, error) {
	if pin == nil {
		return nil, errors.New("buzzer: pin is required")
	}
	return &Dev{pin: pin}, nil
}

// Tone sounds the given frequency until Silence or another Tone. A 50% duty
// square wave is the loudest drive for a passive piezo.
func (d *Dev) Tone(f physic.Frequency) error {
	if f == 0 {
		return d.Silence()
	}
	if err := d.pin.PWM(gpio.DutyHalf, f); err != nil {
		return fmt.Errorf("buzzer: %w", err)
	}
	return nil
}

// Silence stops the buzzer.
func (d *Dev) Silence() error {
	if err := d.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("buzzer: %w", err)
	}
	return nil
}

// Beep sounds a note for the given duration and silences the buzzer after.
func (d *Dev) Beep(n Note, dur time.Duration) error {
	return d.Play(context.Background(), Melody{{Note: n, D: dur}})
}

// Play plays a melody from start to finish, blocking until it ends or ctx is
// canceled. The buzzer is silenced on every exit path.
func (d *Dev) Play(ctx context.Context, m Melody) (err error) {
	defer func() {
		if serr := d.Silence(); err == nil {
			err = serr
		}
	}()
	t := time.NewTimer(0)
	defer t.Stop()
	if !t.Stop() {
		<-t.C
	}
	for _, seg := range m {
		if seg.Note == Rest {
			if err = d.Silence(); err != nil {
				return err
			}
		} else if err = d.Tone(seg.Note.Frequency()); err != nil {
			return err
		}
		t.Reset(seg.D)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

func (d *Dev) String() string {
	return "buzzer{" + d.pin.Name() + "}"
}

// Halt silences the buzzer and releases the pin.
func (d *Dev) Halt() error {
	_ = d.Silence()
	return d.pin.Halt()
}
