// Package cylinder warps a flat image so it appears wrapped around a
// cylinder: an arcsine map bends the wrap axis around the circumference, a
// circle-profile map rounds the ends when the cylinder is pitched, and an
// optional perspective taper narrows the far end. The pipeline is stateless;
// every invocation owns its own buffers and may run concurrently with others.
package cylinder

import (
	"fmt"
	"image"
	"math"
	"sync"

	"cylinderize/internal/compose"
	"cylinderize/internal/geom"
	"cylinderize/internal/params"
	"cylinderize/internal/raster"
	"cylinderize/internal/warp"
)

// Warp runs the full pipeline: validate, resolve geometry, prepare the
// source (resize, pad, roll), displace through the wrap and curvature maps,
// taper, frame, and composite onto the optional background. The result is a
// new image; src and background are never mutated.
func Warp(src image.Image, p params.Parameters, background image.Image) (*image.NRGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", geom.ErrDegenerate)
	}

	// Internal orientation: wrap axis is X. Horizontal mode transposes in
	// and back out, so one code path serves both axes.
	work := raster.ToNRGBA(src)
	if p.Axis == params.Horizontal {
		work = raster.Transpose(work)
	}
	srcW := work.Bounds().Dx()
	srcH := work.Bounds().Dy()

	g, err := geom.Resolve(p, srcW, srcH)
	if err != nil {
		return nil, err
	}

	// Prepare: enlarge the face by the resize percent, fit the axis extent
	// to the final length, then center on the full-circumference canvas.
	faceW := int(math.Round(float64(srcW) * p.Resize / 100))
	if faceW < 1 {
		faceW = 1
	}
	prepared := raster.Resize(work, faceW, g.Length)
	canvas := raster.Pad(prepared, g.ProjectW, g.ExtLen, p.FillColor, p.Pitch >= 0)

	// Rotation about the axis is a circular roll before displacement.
	if shift := int(math.Round(p.Angle * float64(g.ProjectW) / 360)); shift != 0 {
		canvas = raster.Roll(canvas, shift)
	}

	// The two maps are independent of each other.
	var amap, cmap []float64
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		amap = warp.AngleMap(g)
	}()
	go func() {
		defer wg.Done()
		cmap = warp.CurvatureMap(g)
	}()
	wg.Wait()

	warped := warp.Displace(canvas, amap, cmap, g, p.Boundary)

	// Frame before tapering so the taper inset is measured against the
	// final frame, then trim if requested.
	framed := compose.CenterCrop(warped, srcW, g.ExtLen)
	if p.Narrow != 100 {
		framed = warp.Taper(framed, p.Narrow, params.Vertical, p.Boundary)
	}
	if p.Trim {
		framed = compose.Trim(framed, p.FillColor)
	}

	if p.Axis == params.Horizontal {
		framed = raster.Transpose(framed)
	}

	if background != nil {
		framed = compose.Over(raster.ToNRGBA(background), framed, p.OffsetX, p.OffsetY)
	}
	return framed, nil
}
