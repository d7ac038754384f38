package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes the image file at path.
//
// Supported formats are whatever image.Decode has registered: JPEG, PNG, GIF,
// BMP and TIFF through the imaging package, plus WebP. When autoOrient is set
// the EXIF orientation tag of a JPEG is applied, so camera photos come out
// upright.
//
// The returned error does not distinguish a missing file from a corrupt one
// beyond what the wrapped cause reports; use errors.Is(err, fs.ErrNotExist)
// to tell them apart.
func Load(path string, autoOrient bool) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}
