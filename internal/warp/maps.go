package warp

import (
	"math"

	"cylinderize/internal/geom"
)

// AngleMap builds the 1-D circumferential-wrap lookup. For each position
// across the wrap axis it gives the fraction of the full canvas width the
// source should be sampled at: arcsine foreshortening near the cylinder
// silhouette, linear near the center. Positions off the cylinder clamp to 1,
// which keeps a wrap of 100 fully covered. Values are clamped to [0,1].
func AngleMap(g geom.Geometry) []float64 {
	m := make([]float64, g.ProjectW)
	for i := range m {
		xd := (float64(i) - g.Center) / g.Radius
		if xd < -1 || xd > 1 {
			m[i] = 1
			continue
		}
		f := 0.5*(math.Asin(xd)/math.Pi+(g.Center-float64(i))/g.Center) + 0.5
		m[i] = clampUnit(f)
	}
	return m
}

// CurvatureMap builds the 1-D end-rise lookup: the upper half of a unit
// circle, inverted, so the cylinder ends round toward the viewer. Positions
// off the cylinder sit on the flat midline.
func CurvatureMap(g geom.Geometry) []float64 {
	m := make([]float64, g.ProjectW)
	for i := range m {
		xd := (float64(i) - g.Center) / g.Radius
		if xd < -1 || xd > 1 {
			m[i] = 0.5
			continue
		}
		m[i] = 0.5*(-math.Sqrt(1-xd*xd)) + 0.5
	}
	return m
}

// rowScale is the exaggeration blend: a linear per-row factor that leaves
// the near-end curvature unmodified and compresses the far end toward the
// midline by 100/exaggeration percent. The near end is the one pitched
// toward the viewer (bottom for positive pitch).
func rowScale(g geom.Geometry, row, rows int) float64 {
	if g.InvExPct >= 100 || rows <= 1 {
		return 1
	}
	far := g.InvExPct / 100
	t := float64(row) / float64(rows-1)
	if g.Pitch < 0 {
		t = 1 - t
	}
	return far + (1-far)*t
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
