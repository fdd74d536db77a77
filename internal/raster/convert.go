package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// ToNRGBA converts any image to NRGBA format without aliasing the source.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			so := (b.Min.Y+y)*n.Stride + b.Min.X*4
			do := y * dst.Stride
			copy(dst.Pix[do:do+b.Dx()*4], n.Pix[so:so+b.Dx()*4])
		}
		return dst
	}
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel — draw and force alpha to 255
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}

// Transpose mirrors an image across its main diagonal, swapping axes.
// Applying it twice restores the original.
func Transpose(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		srcOff := y * img.Stride
		for x := 0; x < w; x++ {
			si := srcOff + x*4
			di := out.PixOffset(y, x)
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}
