// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// pilock runs the PIN-entry door lock.
//
// By default it drives a DOGM204 display, a 4x4 matrix keypad, a piezo
// buzzer and an optional forced-unlock input over the first GPIO
// character device. With -term it renders the display in the terminal
// and takes keys from stdin instead, which is handy on a workstation:
//
//	pilock -term
//	pilock -controller hd44780 -rows 2 -cols 16
//	pilock -serial /dev/ttyUSB0
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/gpioioctl"

	"github.com/TheChilliPL/pilock/buzzer"
	"github.com/TheChilliPL/pilock/charlcd"
	"github.com/TheChilliPL/pilock/dogm204"
	"github.com/TheChilliPL/pilock/hd44780"
	"github.com/TheChilliPL/pilock/keypad"
	"github.com/TheChilliPL/pilock/lock"
	"github.com/TheChilliPL/pilock/pingroup"
	"github.com/TheChilliPL/pilock/rotenc"
	"github.com/TheChilliPL/pilock/serialbus"
	"github.com/TheChilliPL/pilock/termlcd"
)

var (
	termMode   = flag.Bool("term", false, "render the display in the terminal and read keys from stdin")
	configPath = flag.String("config", lock.ConfigPath(), "path to the JSON configuration file")
	easyAccess = flag.Bool("easy-access", false, "unlock on a bare '#' press, without a PIN")
	controller = flag.String("controller", "dogm204", "display controller, dogm204 or hd44780")
	rows       = flag.Int("rows", 4, "display rows")
	cols       = flag.Int("cols", 20, "display columns")

	chipIndex  = flag.Int("chip", 0, "GPIO character device index")
	serialPort = flag.String("serial", "", "drive the display over a serial nibble bridge instead of GPIO")
	dataPins   = flag.String("data-pins", "GPIO27,GPIO22,GPIO23,GPIO24", "display data lines, DB4 first")
	rsPin      = flag.String("rs-pin", "GPIO17", "display register select line")
	ePin       = flag.String("e-pin", "GPIO18", "display enable line")
	resetPin   = flag.String("reset-pin", "GPIO25", "display reset line, dogm204 only")
	colPins    = flag.String("col-pins", "GPIO5,GPIO6,GPIO13,GPIO19", "keypad column drive lines")
	rowPins    = flag.String("row-pins", "GPIO12,GPIO16,GPIO20,GPIO21", "keypad row sense lines")
	rotencPins = flag.String("rotenc-pins", "", "rotary encoder A,B lines for dialing digits, empty to disable")
	buzzerPin  = flag.String("buzzer-pin", "GPIO4", "buzzer PWM line, empty to disable")
	forcedPin  = flag.String("forced-pin", "GPIO26", "forced-unlock input, empty to disable")
	debounce   = flag.Duration("debounce", 50*time.Millisecond, "keypad debounce window")
)

const tick = 10 * time.Millisecond

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := lock.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *easyAccess {
		cfg.EasyAccess = true
	}
	if *termMode {
		return runTerminal(cfg)
	}
	return runHardware(cfg)
}

// runTerminal emulates the panel in the terminal, for development off
// the target hardware.
func runTerminal(cfg lock.Config) error {
	rom, offsets, err := layout()
	if err != nil {
		return err
	}
	ctrl, err := termlcd.New(&termlcd.Opts{Rows: *rows, Cols: *cols, ROM: rom, LineOffsets: offsets})
	if err != nil {
		return err
	}
	disp, err := newDisplay(ctrl, rom, offsets)
	if err != nil {
		return err
	}
	app, err := lock.New(disp, newStdinKeypad(), &lock.Opts{Config: cfg})
	if err != nil {
		return err
	}
	defer disp.Halt()
	return loop(app)
}

func runHardware(cfg lock.Config) error {
	if _, err := host.Init(); err != nil {
		return err
	}
	if *chipIndex < 0 || *chipIndex >= len(gpioioctl.Chips) {
		return fmt.Errorf("pilock: no GPIO chip %d", *chipIndex)
	}
	chip := gpioioctl.Chips[*chipIndex]

	bus, reset, err := openBus(chip)
	if err != nil {
		return err
	}
	rom, offsets, err := layout()
	if err != nil {
		return err
	}
	var ctrl charlcd.Controller
	switch *controller {
	case "dogm204":
		ctrl, err = dogm204.New(bus, &dogm204.Opts{
			Lines:    *rows,
			Contrast: cfg.Contrast,
			Reset:    reset,
		})
	case "hd44780":
		ctrl, err = hd44780.New(bus, nil)
	default:
		err = fmt.Errorf("pilock: unknown controller %q", *controller)
	}
	if err != nil {
		return err
	}
	disp, err := newDisplay(ctrl, rom, offsets)
	if err != nil {
		return err
	}
	defer disp.Halt()

	keys, err := openKeypad(chip)
	if err != nil {
		return err
	}
	defer keys.Halt()

	opts := &lock.Opts{Config: cfg}
	if *rotencPins != "" {
		names := split(*rotencPins)
		if len(names) != 2 {
			return fmt.Errorf("pilock: -rotenc-pins needs exactly two lines, got %q", *rotencPins)
		}
		ls, err := chip.LineSet(gpioioctl.LineInput, gpio.NoEdge, gpio.PullUp, names...)
		if err != nil {
			return err
		}
		pins := ls.Pins()
		enc, err := rotenc.New(pins[0].(gpio.PinIn), pins[1].(gpio.PinIn), nil)
		if err != nil {
			return err
		}
		defer enc.Halt()
		opts.Dial = enc
	}
	if *buzzerPin != "" {
		p := gpioreg.ByName(*buzzerPin)
		if p == nil {
			return fmt.Errorf("pilock: no pin %q", *buzzerPin)
		}
		snd, err := buzzer.New(p)
		if err != nil {
			return err
		}
		defer snd.Halt()
		opts.Sound = snd
	}
	if *forcedPin != "" {
		p := gpioreg.ByName(*forcedPin)
		if p == nil {
			return fmt.Errorf("pilock: no pin %q", *forcedPin)
		}
		if err := p.In(gpio.PullDown, gpio.NoEdge); err != nil {
			return err
		}
		opts.ForcedUnlock = p
	}

	app, err := lock.New(disp, keypad.NewDebounced(keys, *debounce), opts)
	if err != nil {
		return err
	}
	defer app.Halt()
	return loop(app)
}

// openBus returns the display bus and, for GPIO wiring, the reset line.
func openBus(chip *gpioioctl.GPIOChip) (hd44780.Bus, gpio.PinOut, error) {
	if *serialPort != "" {
		bus, err := serialbus.Open(*serialPort, nil)
		return bus, nil, err
	}
	names := append(split(*dataPins), *rsPin, *ePin, *resetPin)
	ls, err := chip.LineSet(gpioioctl.LineOutput, gpio.NoEdge, gpio.PullNoChange, names...)
	if err != nil {
		return nil, nil, err
	}
	pins := ls.Pins()
	n := len(pins)
	var data []gpio.PinIO
	for _, p := range pins[:n-3] {
		data = append(data, p.(gpio.PinIO))
	}
	group, err := pingroup.New(data...)
	if err != nil {
		return nil, nil, err
	}
	rs := pins[n-3].(gpio.PinOut)
	e := pins[n-2].(gpio.PinOut)
	reset := pins[n-1].(gpio.PinOut)
	bus, err := hd44780.NewGPIOBus(group, rs, e, nil)
	return bus, reset, err
}

func openKeypad(chip *gpioioctl.GPIOChip) (*keypad.Dev, error) {
	colLS, err := chip.LineSet(gpioioctl.LineOutput, gpio.NoEdge, gpio.PullNoChange, split(*colPins)...)
	if err != nil {
		return nil, err
	}
	rowLS, err := chip.LineSet(gpioioctl.LineInput, gpio.NoEdge, gpio.PullDown, split(*rowPins)...)
	if err != nil {
		return nil, err
	}
	return keypad.New(colLS, rowLS, keypad.Layout4x4)
}

func newDisplay(ctrl charlcd.Controller, rom *charlcd.ROM, offsets []byte) (*charlcd.Display, error) {
	disp, err := charlcd.New(ctrl, &charlcd.Opts{
		Rows:        *rows,
		Cols:        *cols,
		ROM:         rom,
		LineOffsets: offsets,
	})
	if err != nil {
		return nil, err
	}
	if err := disp.Init(); err != nil {
		return nil, err
	}
	return disp, nil
}

// layout maps the controller choice to its character ROM and DDRAM line
// offsets.
func layout() (*charlcd.ROM, []byte, error) {
	switch *controller {
	case "dogm204":
		offsets, err := charlcd.DOGMLineOffsets(*rows)
		return charlcd.DOGMA, offsets, err
	case "hd44780":
		offsets, err := charlcd.HD44780LineOffsets(*rows)
		return charlcd.A00, offsets, err
	default:
		return nil, nil, fmt.Errorf("pilock: unknown controller %q", *controller)
	}
}

func split(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
