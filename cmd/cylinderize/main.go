package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"cylinderize/internal/codec"
	"cylinderize/internal/cylinder"
	"cylinderize/internal/params"
)

func main() {
	in := flag.String("in", "", "Source image (png, jpg, tga, bmp, tiff)")
	out := flag.String("out", "out.webp", "Output image (.webp, .png, .jpg)")
	bgPath := flag.String("background", "", "Optional background image to composite onto")

	mode := flag.String("mode", "vertical", "Cylinder axis: vertical or horizontal")
	radius := flag.Float64("radius", 0, "Cylinder radius in pixels (default: wrap-axis dimension / 4)")
	length := flag.Float64("length", 0, "Cylinder length in pixels (default: axis dimension, pitch-adjusted)")
	wrap := flag.Float64("wrap", 50, "Percent of circumference covered by the image, 10-100")
	angle := flag.Float64("angle", 0, "Rotation about the cylinder axis in degrees, -360..360")
	pitch := flag.Float64("pitch", 0, "Axis tilt toward the viewer in degrees, exclusive -90..90")
	exaggerate := flag.Float64("exaggerate", 1, "Far-end curvature boost, >= 1")
	narrow := flag.Float64("narrow", 100, "Far-end taper percent; 100 = none")
	resize := flag.Float64("resize", 100, "Face enlargement percent, >= 100")
	offset := flag.String("offset", "", "Composite offset from background center, e.g. +24+10")
	fill := flag.String("fill", "none", "Fill color for uncovered cylinder area")
	boundary := flag.String("boundary", "none", "Out-of-bounds policy: none, black, white, gray, background")
	bgColor := flag.String("bgcolor", "none", "Color used by -boundary background")
	trim := flag.Bool("trim", false, "Crop output to its non-background bounding box")

	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	p := params.Default()
	p.Radius = *radius
	p.Length = *length
	p.Wrap = *wrap
	p.Angle = *angle
	p.Pitch = *pitch
	p.Exaggeration = *exaggerate
	p.Narrow = *narrow
	p.Resize = *resize
	p.Trim = *trim

	var err error
	if p.Axis, err = params.ParseAxis(*mode); err != nil {
		fail(err)
	}
	if p.OffsetX, p.OffsetY, err = params.ParseOffset(*offset); err != nil {
		fail(err)
	}
	if p.FillColor, err = params.ParseColor(*fill); err != nil {
		fail(err)
	}
	bgc, err := params.ParseColor(*bgColor)
	if err != nil {
		fail(err)
	}
	if p.Boundary, err = params.ParseBoundary(*boundary, bgc); err != nil {
		fail(err)
	}

	src, err := codec.Load(*in)
	if err != nil {
		fail(err)
	}

	var background image.Image
	if *bgPath != "" {
		bg, err := codec.Load(*bgPath)
		if err != nil {
			fail(err)
		}
		background = bg
	}

	result, err := cylinder.Warp(src, p, background)
	if err != nil {
		fail(err)
	}

	if err := codec.Save(*out, result); err != nil {
		fail(err)
	}

	b := result.Bounds()
	fmt.Printf("%s: %dx%d %s cylinder -> %s (%dx%d)\n",
		*in, src.Bounds().Dx(), src.Bounds().Dy(), p.Axis, *out, b.Dx(), b.Dy())
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
