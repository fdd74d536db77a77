package warp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cylinderize/internal/geom"
)

func testGeometry() geom.Geometry {
	return geom.Geometry{
		SrcW:     400,
		SrcH:     600,
		ProjectW: 800,
		Center:   400,
		Radius:   100,
		InvExPct: 100,
		Length:   600,
		ExtLen:   600,
	}
}

func TestAngleMapValues(t *testing.T) {
	g := testGeometry()
	m := AngleMap(g)
	require.Len(t, m, g.ProjectW)

	// Center of the cylinder samples linearly.
	require.InDelta(t, 0.5, m[400], 1e-9)

	// Silhouette edges: asin(±1)/pi = ±0.5 plus the linear term.
	require.InDelta(t, 0.625, m[500], 1e-9)
	require.InDelta(t, 0.375, m[300], 1e-9)

	// Off the cylinder the fraction clamps to the boundary value.
	require.Equal(t, 1.0, m[0])
	require.Equal(t, 1.0, m[799])

	for i, v := range m {
		require.GreaterOrEqual(t, v, 0.0, "index %d", i)
		require.LessOrEqual(t, v, 1.0, "index %d", i)
	}
}

func TestCurvatureMapValues(t *testing.T) {
	g := testGeometry()
	m := CurvatureMap(g)
	require.Len(t, m, g.ProjectW)

	// Deepest rise at the center, midline at the silhouette and beyond.
	require.InDelta(t, 0.0, m[400], 1e-9)
	require.InDelta(t, 0.5, m[300], 1e-9)
	require.InDelta(t, 0.5, m[500], 1e-9)
	require.Equal(t, 0.5, m[0])
	require.Equal(t, 0.5, m[799])

	// Halfway out: 0.5*(1 - sqrt(1-0.25))
	require.InDelta(t, 0.5*(1-0.8660254037844386), m[450], 1e-9)
}

func TestRowScaleNoExaggeration(t *testing.T) {
	g := testGeometry()
	for _, row := range []int{0, 300, 599} {
		require.Equal(t, 1.0, rowScale(g, row, 600))
	}
}

func TestRowScaleBlend(t *testing.T) {
	g := testGeometry()
	g.Pitch = 30
	g.InvExPct = 50 // exaggeration = 2

	// Positive pitch: far end is row 0, compressed to 50%; near end untouched.
	require.InDelta(t, 0.5, rowScale(g, 0, 600), 1e-9)
	require.InDelta(t, 1.0, rowScale(g, 599, 600), 1e-9)
	mid := rowScale(g, 300, 600)
	require.Greater(t, mid, 0.5)
	require.Less(t, mid, 1.0)

	// Negative pitch flips the ends.
	g.Pitch = -30
	require.InDelta(t, 1.0, rowScale(g, 0, 600), 1e-9)
	require.InDelta(t, 0.5, rowScale(g, 599, 600), 1e-9)
}
