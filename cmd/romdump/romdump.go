package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wbrown/crt2png"
)

// romdump prints the control words and decoded beam positions for
// characters in the vector ROM, for inspecting or debugging glyph
// data without rendering anything.

func dumpChar(code int) {
	words := crt2png.RomAt(code)
	samples, anomalies := crt2png.Decode(words)

	fmt.Printf("code %02d %q, %d rows:\n", code, crt2png.DisplayRune(code), len(words))
	for i, w := range words {
		var flags []string
		if w&crt2png.WordVert1 != 0 {
			flags = append(flags, "V1")
		}
		if w&crt2png.WordVert2 != 0 {
			flags = append(flags, "V2")
		}
		if w&crt2png.WordHoriz1 != 0 {
			flags = append(flags, "H1")
		}
		if w&crt2png.WordHoriz2 != 0 {
			flags = append(flags, "H2")
		}
		if w&crt2png.WordBeam != 0 {
			flags = append(flags, "B")
		}
		var pos string
		if i < len(samples) {
			s := samples[i]
			beam := "off"
			if s.On {
				beam = "on"
			}
			pos = fmt.Sprintf("(%d,%d) beam %s", s.X, s.Y, beam)
		}
		fmt.Printf("  row %2d: %#02x %-12s %s\n", i+1, uint8(w), strings.Join(flags, "+"), pos)
	}
	for _, a := range anomalies {
		fmt.Printf("  anomaly: %v\n", a)
	}
	fmt.Println()
}

func main() {
	chars := flag.String("chars", "",
		"Characters to dump (default: all 64 display codes)")
	flag.Parse()

	if *chars == "" {
		for code := 0; code < len(crt2png.DisplayChars); code++ {
			dumpChar(code)
		}
		return
	}
	for _, r := range *chars {
		code := crt2png.DisplayCode(r)
		if code == crt2png.SpaceCode && r != ' ' {
			fmt.Printf("character %q is not in the display set\n", r)
			os.Exit(1)
		}
		dumpChar(code)
	}
}
