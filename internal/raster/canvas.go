package raster

import (
	"image"
	"image/color"
)

// Pad embeds img in a w x h canvas flooded with fill. The content is
// centered along X; top anchors it at y=0, otherwise it sits at the bottom.
// Content larger than the canvas is center-cropped along X.
func Pad(img *image.NRGBA, w, h int, fill color.NRGBA, top bool) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	Flood(out, fill)

	b := img.Bounds()
	cw, ch := b.Dx(), b.Dy()

	offX := (w - cw) / 2
	offY := 0
	if !top {
		offY = h - ch
	}

	for y := 0; y < ch; y++ {
		dy := offY + y
		if dy < 0 || dy >= h {
			continue
		}
		for x := 0; x < cw; x++ {
			dx := offX + x
			if dx < 0 || dx >= w {
				continue
			}
			si := img.PixOffset(x, y)
			di := out.PixOffset(dx, dy)
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}

// Flood sets every pixel to c.
func Flood(img *image.NRGBA, c color.NRGBA) {
	if c == (color.NRGBA{}) {
		return // freshly allocated buffers are already transparent
	}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// Roll circularly shifts the image along X by shift pixels. Positive shifts
// move content right; columns leaving one edge re-enter at the other.
func Roll(img *image.NRGBA, shift int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 {
		return img
	}
	shift = ((shift % w) + w) % w
	if shift == 0 {
		return img
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := y * img.Stride
		dstOff := y * out.Stride
		// Row split: [0, w-shift) lands at [shift, w), the rest wraps to 0.
		copy(out.Pix[dstOff+shift*4:dstOff+w*4], img.Pix[srcOff:srcOff+(w-shift)*4])
		copy(out.Pix[dstOff:dstOff+shift*4], img.Pix[srcOff+(w-shift)*4:srcOff+w*4])
	}
	return out
}
