package geom

import (
	"errors"
	"fmt"
	"math"

	"cylinderize/internal/params"
)

// ErrDegenerate marks geometry that cannot be warped: zero or non-finite
// radius, length, or center. Reported before any resampling runs.
var ErrDegenerate = errors.New("degenerate geometry")

// Geometry is the pixel-space cylinder derived from one Parameters set and
// one source image. Dimensions are in the internal orientation, where the
// wrap axis is X and the cylinder axis is Y; horizontal-mode sources are
// transposed before resolution. Immutable once computed.
type Geometry struct {
	SrcW int // wrap-axis source dimension
	SrcH int // axis source dimension

	ProjectW int     // full-circumference canvas width, SrcW * 100 / wrap
	Center   float64 // ProjectW / 2
	Radius   float64

	Pitch      float64 // degrees, kept for bulge direction
	TiltOffset float64 // radius * sin(pitch)
	ExTilt     float64 // exaggeration * TiltOffset
	InvExPct   float64 // 100 / exaggeration, feeds the curvature blend

	Length int // final cylinder length, pitch-shrunk unless explicit
	ExtLen int // Length + |ExTilt|, the extended canvas along the axis
}

// Resolve derives Geometry from validated parameters and the wrap-axis /
// axis source dimensions.
func Resolve(p params.Parameters, srcW, srcH int) (Geometry, error) {
	if srcW <= 0 || srcH <= 0 {
		return Geometry{}, fmt.Errorf("%w: source is %dx%d", ErrDegenerate, srcW, srcH)
	}

	radius := p.Radius
	if radius == 0 {
		radius = float64(srcW) / 4
	}
	if radius <= 0 || !finite(radius) {
		return Geometry{}, fmt.Errorf("%w: radius resolves to %g", ErrDegenerate, radius)
	}

	pitchRad := p.Pitch * math.Pi / 180
	length := p.Length
	if length == 0 {
		length = float64(srcH)
		if p.Pitch != 0 {
			length *= math.Cos(pitchRad)
		}
	}
	if length <= 0 || !finite(length) {
		return Geometry{}, fmt.Errorf("%w: length resolves to %g", ErrDegenerate, length)
	}

	projectW := int(math.Round(float64(srcW) * 100 / p.Wrap))
	center := float64(projectW) / 2
	if projectW <= 0 || center <= 0 {
		return Geometry{}, fmt.Errorf("%w: project width resolves to %d", ErrDegenerate, projectW)
	}

	tilt := radius * math.Sin(pitchRad)
	exTilt := p.Exaggeration * tilt
	if !finite(exTilt) {
		return Geometry{}, fmt.Errorf("%w: tilt offset resolves to %g", ErrDegenerate, exTilt)
	}

	lengthPx := int(math.Round(length))
	if lengthPx < 1 {
		lengthPx = 1
	}

	return Geometry{
		SrcW:       srcW,
		SrcH:       srcH,
		ProjectW:   projectW,
		Center:     center,
		Radius:     radius,
		Pitch:      p.Pitch,
		TiltOffset: tilt,
		ExTilt:     exTilt,
		InvExPct:   100 / p.Exaggeration,
		Length:     lengthPx,
		ExtLen:     lengthPx + int(math.Round(math.Abs(exTilt))),
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
