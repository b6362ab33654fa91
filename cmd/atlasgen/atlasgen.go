package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/wbrown/crt2png"
)

func main() {
	outputFile := flag.String("output", "atlas.png",
		"Path to save the atlas PNG")
	mode := flag.String("mode", "gaussian",
		"Renderer: vector, physics, gaussian, or font")
	fontPath := flag.String("font", "",
		"TTF or BDF font for -mode font")
	charScale := flag.Int("charscale", 2,
		"Character grid scale (1, 2, or 4)")
	pixelScale := flag.Int("pixelscale", 4,
		"Output pixels per grid unit")
	subsample := flag.Int("subsample", 16,
		"Filter subsamples per timing row")
	cutoff := flag.Float64("cutoff", 0.04,
		"Deflection filter cutoff for both axes, fraction of sample rate")
	q := flag.Float64("q", 0.75,
		"Deflection filter Q for both axes")
	retention := flag.Float64("retention", 0.82,
		"Beam blanking smoothing coefficient")
	sigma := flag.Float64("sigma", 1.6,
		"Gaussian beam spot width in pixels")
	brightness := flag.Float64("brightness", 1.0,
		"Energy scale before output clamp")
	phosphor := flag.String("phosphor", "",
		"Tint output with a phosphor color: green or white (default: grayscale)")
	workers := flag.Int("workers", 0,
		"Parallel render workers, 0 = all CPUs, 1 = serial")
	preview := flag.Bool("preview", false,
		"Print an ANSI preview of the atlas to stdout")
	flag.Parse()

	cfg := crt2png.DefaultConfig()
	cfg.CharScale = *charScale
	cfg.PixelScale = *pixelScale
	cfg.Subsample = *subsample
	cfg.XCutoff = *cutoff
	cfg.YCutoff = *cutoff
	cfg.XQ = *q
	cfg.YQ = *q
	cfg.Retention = *retention
	cfg.BeamSigma = *sigma
	cfg.Brightness = *brightness

	var renderer crt2png.Renderer
	switch strings.ToLower(*mode) {
	case "vector":
		renderer = crt2png.VectorRenderer{}
	case "physics":
		renderer = crt2png.PhysicsRenderer{}
	case "gaussian":
		renderer = crt2png.NewGaussianRenderer()
	case "font":
		if *fontPath == "" {
			fmt.Println("Please provide a font file with -font for font mode")
			os.Exit(1)
		}
		fr, err := crt2png.LoadFontRenderer(*fontPath, cfg.CellPixels())
		if err != nil {
			fmt.Printf("Error loading font: %v\n", err)
			os.Exit(1)
		}
		renderer = fr
	default:
		fmt.Println("Invalid mode, options are vector, physics, gaussian, or font")
		os.Exit(1)
	}

	start := time.Now()
	atlas, err := crt2png.RenderAtlasParallel(renderer, cfg, *workers)
	if err != nil {
		fmt.Printf("Error rendering atlas: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	f, err := os.Create(*outputFile)
	if err != nil {
		fmt.Printf("Error creating %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	defer f.Close()

	switch strings.ToLower(*phosphor) {
	case "":
		err = png.Encode(f, atlas)
	case "green":
		err = png.Encode(f, crt2png.Tint(atlas, color.RGBA{R: 51, G: 255, B: 102, A: 255}))
	case "white":
		err = png.Encode(f, crt2png.Tint(atlas, color.RGBA{R: 235, G: 235, B: 255, A: 255}))
	default:
		fmt.Println("Invalid phosphor, options are green or white")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error writing PNG: %v\n", err)
		os.Exit(1)
	}

	cell := cfg.CellPixels()
	fmt.Printf("renderer: %s\ncell: %dx%d px, atlas: %dx%d px\n",
		renderer.Name(), cell, cell,
		crt2png.AtlasCols*cell, crt2png.AtlasRows*cell)
	fmt.Printf("Render time: %v\n", elapsed)
	fmt.Printf("Atlas written to %s\n", *outputFile)

	if *preview {
		fmt.Print(crt2png.AnsiPreview(atlas, strings.EqualFold(*phosphor, "green")))
	}
}
