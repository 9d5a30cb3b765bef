// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lock

import (
	"time"

	"github.com/TheChilliPL/pilock/buzzer"
)

// UnlockMelody plays when the door unlocks.
var UnlockMelody = buzzer.Melody{
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("G5"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("E5"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("G5"), 300 * time.Millisecond},
}

// FailMelody plays after a wrong PIN.
var FailMelody = buzzer.Melody{
	{buzzer.MustNote("G4"), 500 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("G4"), 500 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("G4"), 500 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("D#4"), 350 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("A#4"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("G4"), 500 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("D#4"), 350 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("A#4"), 150 * time.Millisecond},
	{buzzer.Rest, 50 * time.Millisecond},
	{buzzer.MustNote("G4"), 1000 * time.Millisecond},
}

// Megalovania is a long test tune, triggered by the PIN "0915". It doubles
// as an audio smoke test since it exercises many pitches back to back.
var Megalovania = buzzer.Melody{
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("B3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("A#3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("B3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("A#3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("B3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("A#3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("B3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("A#3"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 300 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 600 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 300 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 1200 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 300 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 600 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 300 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 2400 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 1200 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("C#5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 1200 * time.Millisecond},
	{buzzer.MustNote("F3"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G3"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A3"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F#4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.MustNote("D#4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("C#4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D#4"), 150 * time.Millisecond},
	{buzzer.Rest, 2250 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 1200 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("C#5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 900 * time.Millisecond},
	{buzzer.MustNote("F3"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G3"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A3"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("F#4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.MustNote("D#4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("C#4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D#4"), 150 * time.Millisecond},
	{buzzer.Rest, 1350 * time.Millisecond},
	{buzzer.MustNote("B3"), 150 * time.Millisecond},
	{buzzer.Rest, 1650 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 4650 * time.Millisecond},
	{buzzer.MustNote("B3"), 150 * time.Millisecond},
	{buzzer.Rest, 1650 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 1650 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 4650 * time.Millisecond},
	{buzzer.MustNote("B3"), 150 * time.Millisecond},
	{buzzer.Rest, 1650 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 4650 * time.Millisecond},
	{buzzer.MustNote("B3"), 150 * time.Millisecond},
	{buzzer.Rest, 1650 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 450 * time.Millisecond},
	{buzzer.MustNote("E4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 1050 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.Rest, 1950 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C#4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C#4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.MustNote("C4"), 300 * time.Millisecond},
	{buzzer.MustNote("D5"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("A4"), 150 * time.Millisecond},
	{buzzer.Rest, 300 * time.Millisecond},
	{buzzer.MustNote("G#4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.Rest, 150 * time.Millisecond},
	{buzzer.MustNote("D4"), 150 * time.Millisecond},
	{buzzer.MustNote("F4"), 150 * time.Millisecond},
	{buzzer.MustNote("G4"), 150 * time.Millisecond},
}
