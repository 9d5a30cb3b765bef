// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buzzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Note is a musical pitch in MIDI numbering: A4 is 69, C4 is 60, one step
// per semitone. The zero value is Rest.
type Note int

// Rest is silence.
const Rest Note = 0

var noteNames = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseNote parses scientific pitch notation such as "C4", "C#4" or "Eb5".
func ParseNote(s string) (Note, error) {
	if len(s) < 2 {
		return Rest, fmt.Errorf("buzzer: invalid note %q", s)
	}
	semitone, ok := noteNames[s[0]]
	if !ok {
		return Rest, fmt.Errorf("buzzer: invalid note %q", s)
	}
	rest := s[1:]
	switch rest[0] {
	case '#':
		semitone++
		rest = rest[1:]
	case 'b':
		semitone--
		rest = rest[1:]
	}
	var octave int
	if _, err := fmt.Sscanf(rest, "%d", &octave); err != nil || octave < 0 || octave > 9 {
		return Rest, fmt.Errorf("buzzer: invalid note %q", s)
	}
	n := Note((octave+1)*12 + semitone)
	if n <= 0 || n > 127 {
		return Rest, fmt.Errorf("buzzer: note %q out of range", s)
	}
	return n, nil
}

// MustNote is ParseNote for melody literals; it panics on a bad name.
func MustNote(s string) Note {
	n, err := ParseNote(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Frequency returns the equal temperament pitch, A4 = 440 Hz. Rest has no
// pitch and returns 0.
func (n Note) Frequency() physic.Frequency {
	if n == Rest {
		return 0
	}
	hz := 440 * math.Pow(2, float64(n-69)/12)
	return physic.Frequency(math.Round(hz * float64(physic.Hertz)))
}

func (n Note) String() string {
	if n == Rest {
		return "rest"
	}
	names := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	return fmt.Sprintf("%s%d", names[int(n)%12], int(n)/12-1)
}

// Segment is one melody step, a note or a rest held for a duration.
type Segment struct {
	Note Note
	D    time.Duration
}

// Melody is a sequence of notes and rests.
type Melody []Segment

// Duration returns the total playing time.
func (m Melody) Duration() time.Duration {
	var total time.Duration
	for _, s := range m {
		total += s.D
	}
	return total
}

// NoteAt returns the note sounding at the given offset from the start.
// Rests and out-of-bounds offsets return Rest.
func (m Melody) NoteAt(offset time.Duration) Note {
	if offset < 0 {
		return Rest
	}
	var elapsed time.Duration
	for _, s := range m {
		if elapsed+s.D > offset {
			return s.Note
		}
		elapsed += s.D
	}
	return Rest
}

func (m Melody) String() string {
	parts := make([]string, len(m))
	for i, s := range m {
		parts[i] = fmt.Sprintf("%s %s", s.Note, s.D)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
