package compose

import (
	"image"
	"image/color"
)

// Trim crops img to the bounding box of pixels that differ from the fill
// color. A transparent fill trims against alpha, matching how uncovered
// cylinder area is produced. Returns img unchanged when nothing survives.
func Trim(img *image.NRGBA, fill color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	transparent := fill.A == 0
	for y := 0; y < h; y++ {
		off := y * img.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			var content bool
			if transparent {
				content = img.Pix[i+3] > 0
			} else {
				content = img.Pix[i] != fill.R || img.Pix[i+1] != fill.G ||
					img.Pix[i+2] != fill.B || img.Pix[i+3] != fill.A
			}
			if content {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX || maxY < minY {
		return img
	}
	return crop(img, minX, minY, maxX-minX+1, maxY-minY+1)
}

// CenterCrop returns the central w x h window of img. Requested dimensions
// larger than the image are clamped.
func CenterCrop(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if w > b.Dx() {
		w = b.Dx()
	}
	if h > b.Dy() {
		h = b.Dy()
	}
	return crop(img, (b.Dx()-w)/2, (b.Dy()-h)/2, w, h)
}

func crop(img *image.NRGBA, x, y, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		srcOff := (y+row)*img.Stride + x*4
		dstOff := row * out.Stride
		copy(out.Pix[dstOff:dstOff+w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return out
}

// Over composites fg onto a copy of bg, centered and then translated by
// (dx, dy), using non-premultiplied alpha-over blending.
func Over(bg, fg *image.NRGBA, dx, dy int) *image.NRGBA {
	bb := bg.Bounds()
	fb := fg.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	copy(out.Pix, bg.Pix)

	offX := (bb.Dx()-fb.Dx())/2 + dx
	offY := (bb.Dy()-fb.Dy())/2 + dy

	for y := 0; y < fb.Dy(); y++ {
		oy := offY + y
		if oy < 0 || oy >= bb.Dy() {
			continue
		}
		for x := 0; x < fb.Dx(); x++ {
			ox := offX + x
			if ox < 0 || ox >= bb.Dx() {
				continue
			}
			si := fg.PixOffset(x, y)
			fa := float64(fg.Pix[si+3]) / 255
			if fa == 0 {
				continue
			}
			di := out.PixOffset(ox, oy)
			if fa == 1 {
				copy(out.Pix[di:di+4], fg.Pix[si:si+4])
				continue
			}
			ba := float64(out.Pix[di+3]) / 255
			oa := fa + ba*(1-fa)
			for c := 0; c < 3; c++ {
				fc := float64(fg.Pix[si+c])
				bc := float64(out.Pix[di+c])
				out.Pix[di+c] = uint8((fc*fa+bc*ba*(1-fa))/oa + 0.5)
			}
			out.Pix[di+3] = uint8(oa*255 + 0.5)
		}
	}
	return out
}
