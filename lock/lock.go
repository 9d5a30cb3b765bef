// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lock implements the PIN-entry door lock application.
//
// The lock is a tick-driven state machine rendered on a character display.
// Digits typed on the keypad build up a PIN, '*' erases the last digit and
// '#' submits. A correct PIN unlocks the door for a configured number of
// seconds, then the lock rearms. In easy-access mode a bare '#' unlocks
// without a PIN. An optional GPIO input forces an unlock regardless of
// state, and an optional sounder plays a short tune on unlock or failure.
//
// Drive it by calling Update with the elapsed time at a steady cadence,
// for example every 10ms.
package lock

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/TheChilliPL/pilock/buzzer"
	"github.com/TheChilliPL/pilock/charlcd"
	"github.com/TheChilliPL/pilock/keypad"
	"github.com/TheChilliPL/pilock/rotenc"
)

// easterEggPIN triggers a much longer tune instead of the failure one.
const easterEggPIN = "0915"

// State is the lock's mode.
type State int

const (
	// Starting is the initial state before the first Update.
	Starting State = iota
	// Locked waits for a PIN.
	Locked
	// EasyAccess waits for a bare '#' press.
	EasyAccess
	// Unlocked counts down to relocking.
	Unlocked
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Locked:
		return "locked"
	case EasyAccess:
		return "easy-access"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sounder emits tones. *buzzer.Dev implements it.
type Sounder interface {
	Tone(physic.Frequency) error
	Silence() error
}

// Rotary is a dial that edits the PIN instead of a keypad's digit keys.
// *rotenc.Dev implements it.
type Rotary interface {
	Read() rotenc.Rotation
}

// Opts holds the optional collaborators and configuration.
type Opts struct {
	// Config is the application configuration. The zero value is replaced
	// with DefaultConfig.
	Config Config
	// Sound plays tunes when set.
	Sound Sounder
	// ForcedUnlock, when set and reading high, unlocks the door
	// unconditionally.
	ForcedUnlock gpio.PinIn
	// Dial, when set, turns rotation into PIN edits: the first turn
	// starts a fresh digit at 0 and later turns step the last digit up
	// or down, wrapping around. Submission still comes from '#'.
	Dial Rotary
}

// App is the lock application.
type App struct {
	disp   *charlcd.Display
	keys   keypad.Keypad
	sound  Sounder
	forced gpio.PinIn
	dial   Rotary
	cfg    Config

	state     State
	input     []rune
	remaining time.Duration
	held      map[rune]bool

	tune        buzzer.Melody
	tuneElapsed time.Duration
	lastTone    physic.Frequency
}

// New returns an App in the Starting state. The first Update transitions
// it to Locked or EasyAccess and paints the screen.
func New(disp *charlcd.Display, keys keypad.Keypad, opts *Opts) (*App, error) {
	if opts == nil {
		opts = &Opts{}
	}
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if disp == nil {
		return nil, fmt.Errorf("lock: display is required")
	}
	if keys == nil {
		return nil, fmt.Errorf("lock: keypad is required")
	}
	return &App{
		disp:   disp,
		keys:   keys,
		sound:  opts.Sound,
		forced: opts.ForcedUnlock,
		dial:   opts.Dial,
		cfg:    cfg,
		held:   map[rune]bool{},
	}, nil
}

// State returns the current mode.
func (a *App) State() State {
	return a.state
}

// Input returns the PIN digits typed so far.
func (a *App) Input() string {
	return string(a.input)
}

// Remaining returns the time left before relocking. It is meaningful only
// in the Unlocked state.
func (a *App) Remaining() time.Duration {
	return a.remaining
}

// Playing reports whether a tune is in progress.
func (a *App) Playing() bool {
	return a.tune != nil
}

// StartMelody begins playback of m on the configured sounder. A tune that
// is already playing is replaced.
func (a *App) StartMelody(m buzzer.Melody) {
	if a.sound == nil {
		return
	}
	a.tune = m
	a.tuneElapsed = 0
}

// Update advances the state machine by elapsed and repaints the display
// when the visible state changed. Call it at a steady cadence.
func (a *App) Update(elapsed time.Duration) error {
	a.updateAudio(elapsed)

	forced := a.forcedUnlock()
	pressed, err := a.newlyPressed()
	if err != nil {
		return err
	}

	switch {
	case a.state == Starting:
		a.state = Locked
		if a.cfg.EasyAccess {
			a.state = EasyAccess
		}
		return a.draw()

	// The mode can be reconfigured while locked; reconcile.
	case a.state == EasyAccess && !a.cfg.EasyAccess:
		a.state = Locked
		a.input = nil
		return a.draw()
	case a.state == Locked && a.cfg.EasyAccess:
		a.state = EasyAccess
		a.input = nil
		return a.draw()
	}

	switch a.state {
	case EasyAccess:
		if forced {
			return a.unlock(UnlockMelody)
		}
		for _, k := range pressed {
			if k == '#' {
				return a.unlock(nil)
			}
		}
	case Locked:
		if forced {
			return a.unlock(UnlockMelody)
		}
		changed := false
		for _, k := range pressed {
			switch {
			case k >= '0' && k <= '9':
				if len(a.input) < len(a.cfg.Password) {
					a.input = append(a.input, k)
					changed = true
				}
			case k == '*':
				if len(a.input) > 0 {
					a.input = a.input[:len(a.input)-1]
					changed = true
				}
			case k == '#':
				return a.submit()
			}
		}
		if a.dial != nil {
			switch a.dial.Read() {
			case rotenc.Clockwise:
				a.turn(1)
				changed = true
			case rotenc.CounterClockwise:
				a.turn(-1)
				changed = true
			}
		}
		if changed {
			return a.draw()
		}
	case Unlocked:
		prev := a.remaining / time.Second
		a.remaining -= elapsed
		if a.remaining < 0 {
			a.state = Locked
			if a.cfg.EasyAccess {
				a.state = EasyAccess
			}
			return a.draw()
		}
		if a.remaining/time.Second != prev {
			return a.draw()
		}
	}
	return nil
}

// SetEasyAccess toggles easy-access mode. The next Update reconciles the
// state and repaints.
func (a *App) SetEasyAccess(enabled bool) {
	a.cfg.EasyAccess = enabled
}

// Halt silences the sounder and drops any queued tune.
func (a *App) Halt() error {
	a.tune = nil
	a.lastTone = 0
	if a.sound != nil {
		return a.sound.Silence()
	}
	return nil
}

func (a *App) unlock(m buzzer.Melody) error {
	a.state = Unlocked
	a.input = nil
	a.remaining = time.Duration(a.cfg.UnlockSeconds) * time.Second
	if m != nil {
		a.StartMelody(m)
	}
	return a.draw()
}

func (a *App) submit() error {
	pin := string(a.input)
	if pin == a.cfg.Password {
		return a.unlock(UnlockMelody)
	}
	a.input = nil
	if pin == easterEggPIN {
		a.StartMelody(Megalovania)
	} else {
		a.StartMelody(FailMelody)
	}
	return a.draw()
}

// turn applies one dial detent to the PIN. The first turn starts a new
// digit at 0, later turns step the last digit modulo 10.
func (a *App) turn(delta int) {
	if len(a.input) == 0 {
		a.input = append(a.input, '0')
		return
	}
	last := &a.input[len(a.input)-1]
	d := (int(*last-'0') + delta + 10) % 10
	*last = rune('0' + d)
}

func (a *App) forcedUnlock() bool {
	return a.forced != nil && a.forced.Read() == gpio.High
}

// newlyPressed returns the keys that went down since the previous call.
// Keys held across ticks do not repeat.
func (a *App) newlyPressed() ([]rune, error) {
	keys, err := a.keys.Read()
	if err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	down := make(map[rune]bool, len(keys))
	var fresh []rune
	for _, k := range keys {
		down[k] = true
		if !a.held[k] {
			fresh = append(fresh, k)
		}
	}
	a.held = down
	return fresh, nil
}

func (a *App) draw() error {
	if err := a.disp.Clear(); err != nil {
		return err
	}
	switch a.state {
	case EasyAccess:
		if err := a.disp.Print("Easy access"); err != nil {
			return err
		}
		if err := a.disp.SetCursor(1, 0); err != nil {
			return err
		}
		return a.disp.Print("Press # to unlock")
	case Locked:
		if err := a.disp.Print("Enter password:"); err != nil {
			return err
		}
		if err := a.disp.SetCursor(1, 0); err != nil {
			return err
		}
		return a.disp.Print(string(a.input))
	case Unlocked:
		if err := a.disp.Print("Unlocked!"); err != nil {
			return err
		}
		if err := a.disp.SetCursor(1, 0); err != nil {
			return err
		}
		return a.disp.Print(fmt.Sprintf("%ds remaining", a.remaining/time.Second))
	}
	return nil
}

// updateAudio steps melody playback. Audio is best effort; a sounder
// failure does not abort the lock logic.
func (a *App) updateAudio(elapsed time.Duration) {
	if a.sound == nil || a.tune == nil {
		return
	}
	if a.tuneElapsed >= a.tune.Duration() {
		_ = a.sound.Silence()
		a.tune = nil
		a.lastTone = 0
		return
	}
	if n := a.tune.NoteAt(a.tuneElapsed); n == buzzer.Rest {
		if a.lastTone != 0 {
			_ = a.sound.Silence()
			a.lastTone = 0
		}
	} else if f := n.Frequency(); f != a.lastTone {
		_ = a.sound.Tone(f)
		a.lastTone = f
	}
	a.tuneElapsed += elapsed
}
