package raster

import (
	"image"
	"image/color"
	"math"

	"cylinderize/internal/params"
)

// Bilinear samples src at a fractional position. Texels outside the image
// resolve to the boundary fill color. Accesses src.Pix directly.
func Bilinear(src *image.NRGBA, x, y float64, boundary params.Fill) color.NRGBA {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	fill := boundary.Color()

	if x < -1 || y < -1 || x > float64(w) || y > float64(h) {
		return fill
	}

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	dx := x - float64(x0)
	dy := y - float64(y0)

	c00 := texel(src, x0, y0, w, h, fill)
	c10 := texel(src, x0+1, y0, w, h, fill)
	c01 := texel(src, x0, y0+1, w, h, fill)
	c11 := texel(src, x0+1, y0+1, w, h, fill)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	return color.NRGBA{
		R: round8(float64(c00.R)*w00 + float64(c10.R)*w10 + float64(c01.R)*w01 + float64(c11.R)*w11),
		G: round8(float64(c00.G)*w00 + float64(c10.G)*w10 + float64(c01.G)*w01 + float64(c11.G)*w11),
		B: round8(float64(c00.B)*w00 + float64(c10.B)*w10 + float64(c01.B)*w01 + float64(c11.B)*w11),
		A: round8(float64(c00.A)*w00 + float64(c10.A)*w10 + float64(c01.A)*w01 + float64(c11.A)*w11),
	}
}

func texel(src *image.NRGBA, x, y, w, h int, fill color.NRGBA) color.NRGBA {
	if x < 0 || y < 0 || x >= w || y >= h {
		return fill
	}
	i := y*src.Stride + x*4
	return color.NRGBA{src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]}
}

func round8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
