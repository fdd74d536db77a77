package warp

import (
	"image"
	"math"

	"cylinderize/internal/params"
	"cylinderize/internal/raster"
)

type point struct {
	X, Y float64
}

// Taper applies the narrow-ratio perspective: the far-end corners (bottom
// for a vertical cylinder, right for horizontal) are pulled inward by
// (dimension/2) * (1 - narrow/100), and the image is warped so the full
// rectangle maps onto the resulting trapezoid. narrow == 100 is a no-op;
// narrow == 0 collapses the far edge to a point.
func Taper(img *image.NRGBA, narrow float64, axis params.Axis, boundary params.Fill) *image.NRGBA {
	if narrow == 100 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	fw, fh := float64(w-1), float64(h-1)

	rect := [4]point{{0, 0}, {fw, 0}, {fw, fh}, {0, fh}}
	quad := rect
	if axis == params.Vertical {
		inset := taperInset(fw, narrow)
		quad[2] = point{fw - inset, fh}
		quad[3] = point{inset, fh}
	} else {
		inset := taperInset(fh, narrow)
		quad[1] = point{fw, inset}
		quad[2] = point{fw, fh - inset}
	}

	// Inverse mapping: for each output pixel inside the trapezoid, find the
	// rectangle position it came from. Pixels outside map outside the
	// rectangle and resolve to the boundary fill.
	H, ok := homography(quad, rect)
	if !ok {
		return img
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		dstOff := y * out.Stride
		for x := 0; x < w; x++ {
			sx, sy := H.apply(float64(x), float64(y))
			c := raster.Bilinear(img, sx, sy, boundary)
			i := dstOff + x*4
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
		}
	}
	return out
}

// taperInset keeps at least a 1px far edge so the homography stays
// solvable when narrow approaches the collapse-to-point case.
func taperInset(span, narrow float64) float64 {
	inset := span / 2 * (1 - narrow/100)
	if max := (span - 1) / 2; inset > max {
		inset = max
	}
	return inset
}

// homographyMat is a 3x3 projective transform stored row-major.
type homographyMat [9]float64

func (m homographyMat) apply(x, y float64) (float64, float64) {
	d := m[6]*x + m[7]*y + m[8]
	if d == 0 {
		return math.Inf(1), math.Inf(1)
	}
	return (m[0]*x + m[1]*y + m[2]) / d, (m[3]*x + m[4]*y + m[5]) / d
}

// homography solves the projective transform taking the four src points to
// the four dst points: eight unknowns from four correspondences, by
// Gaussian elimination with partial pivoting.
func homography(src, dst [4]point) (homographyMat, bool) {
	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		a[2*i] = [9]float64{x, y, 1, 0, 0, 0, -u * x, -u * y, u}
		a[2*i+1] = [9]float64{0, 0, 0, x, y, 1, -v * x, -v * y, v}
	}

	for col := 0; col < 8; col++ {
		pivot := col
		for r := col + 1; r < 8; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return homographyMat{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv := 1 / a[col][col]
		for c := col; c < 9; c++ {
			a[col][c] *= inv
		}
		for r := 0; r < 8; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			f := a[r][col]
			for c := col; c < 9; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	return homographyMat{
		a[0][8], a[1][8], a[2][8],
		a[3][8], a[4][8], a[5][8],
		a[6][8], a[7][8], 1,
	}, true
}
