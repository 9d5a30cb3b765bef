// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package charlcd

// ROM is a character generator table mapping 8-bit display codes to runes.
// The mapping is sparse: codes 0 to 7 are the user-defined CGRAM glyphs and
// several regions are unused depending on the ROM variant.
type ROM struct {
	name  string
	runes [256]rune
	codes map[rune]byte
}

// Name returns the ROM variant name as the datasheets call it.
func (r *ROM) Name() string {
	return r.name
}

// RuneOf returns the rune displayed for a code, or NUL when the code has no
// glyph in this table.
func (r *ROM) RuneOf(code byte) rune {
	return r.runes[code]
}

// CodeOf returns the display code for a rune. Runes not present in the table
// map to code 0, the first user-defined glyph. This is a deliberate lossy
// fallback so that printing arbitrary text never fails.
func (r *ROM) CodeOf(ch rune) byte {
	return r.codes[ch]
}

func newROM(name string) *ROM {
	return &ROM{name: name, codes: make(map[rune]byte)}
}

// set maps code to ch, replacing any earlier glyph at that code.
func (r *ROM) set(code byte, ch rune) {
	if old := r.runes[code]; old != 0 {
		delete(r.codes, old)
	}
	r.runes[code] = ch
	if _, taken := r.codes[ch]; !taken {
		r.codes[ch] = code
	}
}

// ROMs built into the supported controllers.
//
// A00 is the HD44780 English/Japanese table: ASCII with a few deviations
// (0x5c is yen, 0x7e and 0x7f are arrows), halfwidth katakana in 0xa1..0xdf,
// and Greek letters and symbols in the top rows. The SSD1803A ROM A table
// shares this layout.
//
// A02 is the HD44780 European table: ASCII plus the Latin-1 upper half.
var (
	A00   = newEnglishJapanese("A00")
	A02   = newEuropean("A02")
	DOGMA = newEnglishJapanese("SSD1803A ROM A")
)

func newEnglishJapanese(name string) *ROM {
	r := newROM(name)
	for c := 0x20; c <= 0x7d; c++ {
		r.set(byte(c), rune(c))
	}
	r.set(0x5c, '¥')
	r.set(0x7e, '→')
	r.set(0x7f, '←')
	for c := 0xa1; c <= 0xdf; c++ {
		// Halfwidth katakana, U+FF61 onwards.
		r.set(byte(c), rune(0xff61+c-0xa1))
	}
	for _, m := range []struct {
		code byte
		ch   rune
	}{
		{0xe0, 'α'}, {0xe1, 'ä'}, {0xe2, 'β'}, {0xe3, 'ε'},
		{0xe4, 'µ'}, {0xe5, 'σ'}, {0xe6, 'ρ'}, {0xe8, '√'},
		{0xec, '¢'}, {0xef, 'ö'}, {0xf2, 'θ'}, {0xf3, '∞'},
		{0xf4, 'Ω'}, {0xf5, 'ü'}, {0xf6, 'Σ'}, {0xf7, 'π'},
		{0xfd, '÷'}, {0xff, '█'},
	} {
		r.set(m.code, m.ch)
	}
	return r
}

func newEuropean(name string) *ROM {
	r := newROM(name)
	for c := 0x20; c <= 0x7e; c++ {
		r.set(byte(c), rune(c))
	}
	for c := 0xa1; c <= 0xff; c++ {
		// The upper half tracks ISO 8859-1.
		r.set(byte(c), rune(c))
	}
	return r
}
