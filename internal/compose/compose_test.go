package compose_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"cylinderize/internal/compose"
)

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
}

func at(img *image.NRGBA, x, y int) color.NRGBA {
	i := img.PixOffset(x, y)
	return color.NRGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func TestTrimTransparentFill(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	red := color.NRGBA{255, 0, 0, 255}
	fillRect(img, 2, 3, 5, 6, red)

	out := compose.Trim(img, color.NRGBA{})
	require.Equal(t, 3, out.Bounds().Dx())
	require.Equal(t, 3, out.Bounds().Dy())
	require.Equal(t, red, at(out, 0, 0))
	require.Equal(t, red, at(out, 2, 2))
}

func TestTrimSolidFill(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	white := color.NRGBA{255, 255, 255, 255}
	fillRect(img, 0, 0, 10, 10, white)
	blue := color.NRGBA{0, 0, 255, 255}
	fillRect(img, 4, 1, 9, 8, blue)

	out := compose.Trim(img, white)
	require.Equal(t, 5, out.Bounds().Dx())
	require.Equal(t, 7, out.Bounds().Dy())
	require.Equal(t, blue, at(out, 0, 0))
}

func TestTrimEmptyImageUnchanged(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	out := compose.Trim(img, color.NRGBA{})
	require.Same(t, img, out)
}

func TestCenterCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	mark := color.NRGBA{9, 9, 9, 255}
	fillRect(img, 3, 2, 4, 3, mark)

	out := compose.CenterCrop(img, 4, 6)
	require.Equal(t, 4, out.Bounds().Dx())
	require.Equal(t, 6, out.Bounds().Dy())
	// Crop window starts at ((10-4)/2, (10-6)/2) = (3, 2).
	require.Equal(t, mark, at(out, 0, 0))
}

func TestCenterCropClampsOversize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	out := compose.CenterCrop(img, 50, 3)
	require.Equal(t, 5, out.Bounds().Dx())
	require.Equal(t, 3, out.Bounds().Dy())
}

func TestOverOffset(t *testing.T) {
	blue := color.NRGBA{0, 0, 255, 255}
	red := color.NRGBA{255, 0, 0, 255}

	bg := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	fillRect(bg, 0, 0, 100, 50, blue)
	fg := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fillRect(fg, 0, 0, 10, 10, red)

	out := compose.Over(bg, fg, 24, 10)
	require.Equal(t, bg.Bounds(), out.Bounds())

	// Centered at (45, 20), shifted to (69, 30).
	require.Equal(t, red, at(out, 69, 30))
	require.Equal(t, red, at(out, 78, 39))
	require.Equal(t, blue, at(out, 68, 30))
	require.Equal(t, blue, at(out, 79, 40))

	// Background input is untouched.
	require.Equal(t, blue, at(bg, 69, 30))
}

func TestOverAlphaBlend(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fillRect(bg, 0, 0, 4, 4, color.NRGBA{0, 0, 255, 255})
	fg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fillRect(fg, 0, 0, 4, 4, color.NRGBA{255, 0, 0, 128})

	out := compose.Over(bg, fg, 0, 0)
	got := at(out, 2, 2)
	require.InDelta(t, 128, float64(got.R), 1)
	require.InDelta(t, 127, float64(got.B), 1)
	require.Equal(t, uint8(255), got.A)
}

func TestOverOutsideBackgroundIsClipped(t *testing.T) {
	bg := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fillRect(fg, 0, 0, 4, 4, color.NRGBA{255, 0, 0, 255})

	out := compose.Over(bg, fg, 100, 100)
	for i := 3; i < len(out.Pix); i += 4 {
		require.Zero(t, out.Pix[i], "fully off-canvas foreground leaves background")
	}
}
