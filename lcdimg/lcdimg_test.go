// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdimg

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestRender(t *testing.T) {
	img, err := Render([]string{"Enter PIN:", "****"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("empty image %v", b)
	}
	// The corner is bare backlight, and somewhere a glyph must have been
	// drawn in the foreground color.
	bg := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if bg.G < bg.B {
		t.Errorf("corner %v does not look like the default backlight", bg)
	}
	found := false
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) != img.At(0, 0) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no foreground pixels drawn")
	}
}

func TestRenderValidation(t *testing.T) {
	if _, err := Render(nil, nil); err == nil {
		t.Error("no rows should fail")
	}
	if _, err := Render([]string{"", ""}, nil); err == nil {
		t.Error("empty rows should fail")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.png")
	if err := SavePNG(path, []string{"Hi"}, &Opts{FontSize: 16}); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty PNG written")
	}
}
