package crt2png

import (
	"fmt"
	"image"
	"strings"
)

// ESC is the ANSI escape prefix used by the terminal preview.
const ESC = "\x1b"

// AnsiPreview renders a grayscale image to a 256-color ANSI string
// using upper-half-block characters, packing two image rows into each
// terminal row. It is meant for eyeballing a rendered cell or atlas in
// the terminal without writing a file.
//
// green selects the green phosphor ramp instead of the grayscale ramp.
func AnsiPreview(img *image.Gray, green bool) string {
	var sb strings.Builder
	b := img.Bounds()

	var lastFg, lastBg int
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		lastFg, lastBg = -1, -1
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.GrayAt(x, y).Y
			var bottom uint8
			if y+1 < b.Max.Y {
				bottom = img.GrayAt(x, y+1).Y
			}

			fg := ansiColor(top, green)
			bg := ansiColor(bottom, green)
			// Only emit a color change when one actually happened;
			// runs of equal cells repeat the bare block character.
			if fg != lastFg || bg != lastBg {
				sb.WriteString(fmt.Sprintf("%s[38;5;%d;48;5;%dm", ESC, fg, bg))
				lastFg, lastBg = fg, bg
			}
			sb.WriteRune('▀')
		}
		sb.WriteString(ESC + "[0m\n")
	}
	return sb.String()
}

// ansiColor maps an 8-bit intensity to a 256-color palette index. The
// grayscale ramp uses the 24-entry gray band (232..255) plus black and
// white; the green ramp walks the 6x6x6 color cube's green axis.
func ansiColor(v uint8, green bool) int {
	if green {
		// Cube index 16 + 36r + 6g + b with r=b=0.
		g := int(v) * 6 / 256
		if g == 0 && v > 0 {
			g = 1
		}
		return 16 + 6*g
	}
	if v == 0 {
		return 16
	}
	if v >= 250 {
		return 231
	}
	return 232 + int(v)*24/256
}
