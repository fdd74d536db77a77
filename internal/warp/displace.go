package warp

import (
	"image"

	"cylinderize/internal/geom"
	"cylinderize/internal/params"
	"cylinderize/internal/raster"
)

// Displace resamples the prepared source through the two lookup maps,
// broadcast over the extended canvas. The wrap-axis offset is scaled by the
// canvas half-width, the axis offset by the exaggerated tilt offset with the
// per-row exaggeration blend applied. Inputs are never mutated; src must
// already be ProjectW x ExtLen.
func Displace(src *image.NRGBA, amap, cmap []float64, g geom.Geometry, boundary params.Fill) *image.NRGBA {
	w := g.ProjectW
	h := g.ExtLen
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		scale := rowScale(g, y, h)
		dstOff := y * out.Stride
		for x := 0; x < w; x++ {
			sx := float64(x) + (amap[x]-0.5)*2*g.Center
			sy := float64(y) + (cmap[x]-0.5)*scale*2*g.ExTilt
			c := raster.Bilinear(src, sx, sy, boundary)
			i := dstOff + x*4
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
		}
	}
	return out
}
