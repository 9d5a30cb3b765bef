// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheChilliPL/pilock/lock"
)

// loop ticks the application until an interrupt arrives.
func loop(app *lock.App) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	t := time.NewTicker(tick)
	defer t.Stop()
	last := time.Now()
	for {
		select {
		case <-sig:
			return app.Halt()
		case now := <-t.C:
			if err := app.Update(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}
	}
}

// stdinKeypad feeds terminal input to the lock. Each typed character
// shows up as a single pressed-then-released key: after a frame with a
// key in it, the next frame is always empty, so back-to-back repeats of
// the same character register as separate presses.
type stdinKeypad struct {
	ch      chan rune
	pressed bool
}

func newStdinKeypad() *stdinKeypad {
	k := &stdinKeypad{ch: make(chan rune, 16)}
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			c, _, err := r.ReadRune()
			if err != nil {
				close(k.ch)
				return
			}
			if c == '\n' || c == '\r' {
				continue
			}
			k.ch <- c
		}
	}()
	return k
}

func (k *stdinKeypad) Read() ([]rune, error) {
	if k.pressed {
		k.pressed = false
		return nil, nil
	}
	select {
	case c, ok := <-k.ch:
		if !ok {
			return nil, io.EOF
		}
		k.pressed = true
		return []rune{c}, nil
	default:
		return nil, nil
	}
}
