package codec_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cylinderize/internal/codec"
)

func sample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(x * 30)
			img.Pix[i+1] = uint8(y * 40)
			img.Pix[i+2] = 128
			img.Pix[i+3] = 255
		}
	}
	return img
}

func TestSaveLoadPNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := sample()

	require.NoError(t, codec.Save(path, src))

	got, err := codec.Load(path)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())
	require.Equal(t, src.Pix, got.Pix)
}

func TestSaveLoadWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	require.NoError(t, codec.Save(path, sample()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestSaveUnsupportedExtension(t *testing.T) {
	err := codec.Save(filepath.Join(t.TempDir(), "out.gif"), sample())
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := codec.Load(filepath.Join(t.TempDir(), "absent.png"))
	require.ErrorIs(t, err, codec.ErrUnreadableSource)
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := codec.Load(path)
	require.ErrorIs(t, err, codec.ErrUnreadableSource)
}

func TestLoadConvertsToNRGBA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(2, 2, color.Gray{Y: 99})

	tmp := image.NewNRGBA(gray.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g := gray.GrayAt(x, y).Y
			i := tmp.PixOffset(x, y)
			tmp.Pix[i] = g
			tmp.Pix[i+1] = g
			tmp.Pix[i+2] = g
			tmp.Pix[i+3] = 255
		}
	}
	require.NoError(t, codec.Save(path, tmp))

	got, err := codec.Load(path)
	require.NoError(t, err)
	i := got.PixOffset(2, 2)
	require.Equal(t, uint8(99), got.Pix[i])
	require.Equal(t, uint8(255), got.Pix[i+3])
}
