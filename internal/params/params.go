package params

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidParameter marks out-of-range or malformed parameters. Wrapped
// errors name the offending field. Matched with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Axis selects the cylinder axis orientation. Vertical wraps the image's
// horizontal extent around the circumference; Horizontal wraps the vertical.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FillPolicy decides the value of a sample that falls outside the image.
type FillPolicy int

const (
	FillTransparent FillPolicy = iota
	FillBlack
	FillWhite
	FillGray
	FillBackground // use the Fill's Background color
)

// Fill bundles a boundary policy with the custom color used by FillBackground.
type Fill struct {
	Policy     FillPolicy
	Background color.NRGBA
}

// Color resolves the policy to a concrete pixel value.
func (f Fill) Color() color.NRGBA {
	switch f.Policy {
	case FillBlack:
		return color.NRGBA{0, 0, 0, 255}
	case FillWhite:
		return color.NRGBA{255, 255, 255, 255}
	case FillGray:
		return color.NRGBA{128, 128, 128, 255}
	case FillBackground:
		return f.Background
	default:
		return color.NRGBA{}
	}
}

// Parameters holds one warp invocation's resolved inputs. Zero Radius and
// Length mean auto-derive from the source dimensions (see geom.Resolve).
type Parameters struct {
	Axis         Axis
	Radius       float64 // cylinder radius in pixels; 0 = wrap-axis dimension / 4
	Length       float64 // cylinder length in pixels; 0 = axis dimension, pitch-shrunk
	Wrap         float64 // percent of circumference covered by the source, 10..100
	Angle        float64 // rotation about the cylinder axis in degrees, -360..360
	Pitch        float64 // axis tilt toward the viewer in degrees, open (-90, 90)
	Exaggeration float64 // far-end curvature boost, >= 1
	Narrow       float64 // far-end taper percent; 100 = no taper, 0 = point
	Resize       float64 // percent enlargement of the non-axis dimension, >= 100
	OffsetX      int     // composite translation from background center
	OffsetY      int
	FillColor    color.NRGBA // uncovered cylinder area; zero value = transparent
	Boundary     Fill        // out-of-bounds sample policy
	Trim         bool        // crop result to its non-background bounding box
}

// Default returns Parameters with the documented defaults applied.
func Default() Parameters {
	return Parameters{
		Axis:         Vertical,
		Wrap:         50,
		Exaggeration: 1,
		Narrow:       100,
		Resize:       100,
	}
}

// Validate checks every field range. The first violation is returned as an
// ErrInvalidParameter naming the field; no image work happens before this.
func (p Parameters) Validate() error {
	switch {
	case p.Radius < 0 || !finite(p.Radius):
		return fmt.Errorf("%w: radius %g must be > 0", ErrInvalidParameter, p.Radius)
	case p.Length < 0 || !finite(p.Length):
		return fmt.Errorf("%w: length %g must be > 0", ErrInvalidParameter, p.Length)
	case p.Wrap < 10 || p.Wrap > 100 || !finite(p.Wrap):
		return fmt.Errorf("%w: wrap %g outside [10,100]", ErrInvalidParameter, p.Wrap)
	case p.Angle < -360 || p.Angle > 360 || !finite(p.Angle):
		return fmt.Errorf("%w: angle %g outside [-360,360]", ErrInvalidParameter, p.Angle)
	case p.Pitch <= -90 || p.Pitch >= 90 || !finite(p.Pitch):
		return fmt.Errorf("%w: pitch %g outside (-90,90)", ErrInvalidParameter, p.Pitch)
	case p.Exaggeration < 1 || !finite(p.Exaggeration):
		return fmt.Errorf("%w: exaggeration %g must be >= 1", ErrInvalidParameter, p.Exaggeration)
	case p.Narrow < 0 || !finite(p.Narrow):
		return fmt.Errorf("%w: narrow %g must be >= 0", ErrInvalidParameter, p.Narrow)
	case p.Resize < 100 || !finite(p.Resize):
		return fmt.Errorf("%w: resize %g must be >= 100", ErrInvalidParameter, p.Resize)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
