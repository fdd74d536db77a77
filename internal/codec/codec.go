package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/HugoSmits86/nativewebp"

	"cylinderize/internal/raster"
)

// ErrUnreadableSource marks a source or background image that is missing,
// zero-sized, or undecodable. Matched with errors.Is.
var ErrUnreadableSource = errors.New("unreadable source")

// Load decodes an image file to NRGBA. PNG, JPEG, TGA, BMP, and TIFF are
// recognized by content.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w: %s: %v", ErrUnreadableSource, path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("codec: %w: decode %s: %v", ErrUnreadableSource, path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("codec: %w: %s is zero-sized", ErrUnreadableSource, path)
	}
	return raster.ToNRGBA(img), nil
}

// Save encodes img by output extension (.webp, .png, or .jpg). The file is
// only written after the full encode succeeds, so no partial output is ever
// left behind.
func Save(path string, img *image.NRGBA) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return fmt.Errorf("codec: webp encode %s: %w", path, err)
		}
	case ".png":
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("codec: png encode %s: %w", path, err)
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("codec: jpeg encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("codec: unsupported output extension: %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	return nil
}
