package crt2png

import (
	"image"
	"strings"
	"testing"
)

func TestAnsiPreview(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.Pix[0] = 255
	img.Pix[5] = 128

	out := AnsiPreview(img, false)

	// Two image rows per terminal row.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, ESC+"[0m") {
			t.Errorf("line %d missing reset", i)
		}
		if strings.Count(line, "▀") != 4 {
			t.Errorf("line %d: %d blocks, want 4", i, strings.Count(line, "▀"))
		}
	}
}

func TestAnsiPreviewOddHeight(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 3))
	out := AnsiPreview(img, false)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("3-row image: %d terminal rows, want 2", got)
	}
}

func TestAnsiColorRamps(t *testing.T) {
	if ansiColor(0, false) != 16 {
		t.Errorf("black = %d, want 16", ansiColor(0, false))
	}
	if ansiColor(255, false) != 231 {
		t.Errorf("white = %d, want 231", ansiColor(255, false))
	}
	if c := ansiColor(128, false); c < 232 || c > 255 {
		t.Errorf("mid gray = %d, want in gray band", c)
	}

	if ansiColor(0, true) != 16 {
		t.Errorf("green ramp black = %d, want 16", ansiColor(0, true))
	}
	for v := 1; v < 256; v++ {
		c := ansiColor(uint8(v), true)
		if (c-16)%6 != 0 || c < 22 || c > 46 {
			t.Fatalf("green ramp %d = %d, want green cube axis", v, c)
		}
	}
}
