package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GrayMode selects how color pixels are reduced to a single luminance channel.
type GrayMode string

const (
	// GrayBT601 uses the ITU-R BT.601 weights 0.299R + 0.587G + 0.114B.
	// These are the weights OpenCV applies for BGR to GRAY conversion.
	GrayBT601 GrayMode = "bt601"

	// GrayLightness uses the CIE L* lightness of each pixel, which tracks
	// perceived brightness more closely than a linear weighted sum.
	GrayLightness GrayMode = "lightness"
)

// ParseGrayMode validates a mode name.
func ParseGrayMode(s string) (GrayMode, error) {
	switch GrayMode(s) {
	case GrayBT601, GrayLightness:
		return GrayMode(s), nil
	}
	return "", fmt.Errorf("unknown gray mode %q (want %q or %q)", s, GrayBT601, GrayLightness)
}

// ToGray converts img to an 8-bit single-channel image whose bounds start at (0,0).
//
// An input that is already *image.Gray is copied as is regardless of mode.
// Unknown modes fall back to GrayBT601.
func ToGray(img image.Image, mode GrayMode) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return copyGray(g)
	}

	switch mode {
	case GrayLightness:
		return lightness(img)
	default:
		return redToGray(effect.GrayscaleWithWeights(img, 0.299, 0.587, 0.114))
	}
}

func lightness(img image.Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c, _ := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			l, _, _ := c.Lab()
			out.Pix[y*out.Stride+x] = uint8(math.Round(clampFloat(l, 0, 1) * 255))
		}
	}
	return out
}

// Blur applies a Gaussian blur of the given radius to a grayscale image.
// A radius of zero or less returns gray unchanged.
func Blur(gray *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		return gray
	}
	return redToGray(blur.Gaussian(gray, radius))
}

// redToGray copies the R channel of a bild result, whose channels are equal
// for gray input, into an origin-at-(0,0) *image.Gray.
func redToGray(src *image.RGBA) *image.Gray {
	bounds := src.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			out.SetGray(x, y, color.Gray{Y: src.RGBAAt(x+bounds.Min.X, y+bounds.Min.Y).R})
		}
	}
	return out
}

func copyGray(g *image.Gray) *image.Gray {
	bounds := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		src := g.Pix[g.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		copy(out.Pix[y*out.Stride:y*out.Stride+bounds.Dx()], src[:bounds.Dx()])
	}
	return out
}

func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
