// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdimg renders the visible rows of a character LCD to an image.
//
// It draws the text grid the way the panel shows it, one fixed cell per
// character, and is meant for documentation screenshots and for checking
// screen layouts without hardware. The rows typically come from
// charlcdtest.Mock.Line or any other snapshot of display contents.
package lcdimg

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

// Opts represents the rendering options.
type Opts struct {
	// FontSize is the character height in pixels. 24 when zero.
	FontSize float64
	// Foreground is the segment color. Dark gray when nil.
	Foreground color.Color
	// Background is the backlight color. Yellow green when nil.
	Background color.Color
}

const (
	defaultFontSize = 24.0
	cellWidthRatio  = 0.8
	cellHeightRatio = 1.4
)

// Render draws the given rows as an LCD panel image. Every row is padded to
// the widest one so the cell grid stays rectangular.
func Render(rows []string, opts *Opts) (image.Image, error) {
	if len(rows) == 0 {
		return nil, errors.New("lcdimg: at least one row is required")
	}
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.FontSize == 0 {
		o.FontSize = defaultFontSize
	}
	if o.Foreground == nil {
		o.Foreground = color.NRGBA{R: 0x20, G: 0x30, B: 0x20, A: 0xff}
	}
	if o.Background == nil {
		o.Background = color.NRGBA{R: 0xb0, G: 0xce, B: 0x50, A: 0xff}
	}

	cols := 0
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
		if len(cells[i]) > cols {
			cols = len(cells[i])
		}
	}
	if cols == 0 {
		return nil, errors.New("lcdimg: rows are empty")
	}

	cellW := o.FontSize * cellWidthRatio
	cellH := o.FontSize * cellHeightRatio
	margin := o.FontSize / 2
	w := int(2*margin + float64(cols)*cellW)
	h := int(2*margin + float64(len(rows))*cellH)

	dc := gg.NewContext(w, h)
	dc.SetColor(o.Background)
	dc.Clear()

	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: o.FontSize}))
	dc.SetColor(o.Foreground)
	for r, row := range cells {
		for c, ch := range row {
			if ch == ' ' || ch == 0 {
				continue
			}
			x := margin + (float64(c)+0.5)*cellW
			y := margin + (float64(r)+0.5)*cellH
			dc.DrawStringAnchored(string(ch), x, y, 0.5, 0.5)
		}
	}
	return dc.Image(), nil
}

// SavePNG renders the rows and writes the image to a PNG file.
func SavePNG(path string, rows []string, opts *Opts) error {
	img, err := Render(rows, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
