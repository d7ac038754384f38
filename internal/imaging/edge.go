package imaging

import (
	"image"
	"math"
)

// CannyOptions configures Canny edge detection.
//
// Thresholds apply to the raw Sobel gradient magnitude of 8-bit intensities,
// the same scale OpenCV uses, so the usual pairs (50/150, 100/200) behave the
// way they do there.
type CannyOptions struct {
	// Low is the hysteresis threshold a pixel must exceed to extend an edge.
	Low float64

	// High is the threshold a pixel must exceed to start an edge.
	High float64

	// L2Gradient selects sqrt(Gx² + Gy²) as the magnitude instead of the
	// default |Gx| + |Gy|.
	L2Gradient bool
}

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Canny performs Canny edge detection on a grayscale image.
//
// The result has the same size as gray with its origin at (0,0). Edge pixels
// are 255 and everything else is 0.
//
// # Algorithm
//
//  1. Gradient computation: 3x3 Sobel operators for X and Y, border pixels
//     replicated. Magnitude is |Gx| + |Gy|, or the Euclidean norm when
//     L2Gradient is set. No smoothing happens here; use Blur first if the
//     input is noisy.
//
//  2. Non-maximum suppression: the gradient direction is quantized into four
//     sectors and a pixel survives only if it is a local maximum along it.
//     The comparison is strict on one side so a two-pixel plateau yields a
//     one-pixel edge. Pixels on the image border never survive.
//
//  3. Hysteresis: pixels above High are edges. Pixels above Low become edges
//     when 8-connected, directly or through other such pixels, to an edge.
//
// If Low is greater than High the two are swapped.
func Canny(gray *image.Gray, opts CannyOptions) *image.Gray {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	result := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return result
	}

	low, high := opts.Low, opts.High
	if low > high {
		low, high = high, low
	}

	// Compute gradients using Sobel operator
	gradX := make([]float64, width*height)
	gradY := make([]float64, width*height)
	magnitude := make([]float64, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					v := float64(gray.Pix[gray.PixOffset(px+bounds.Min.X, py+bounds.Min.Y)])
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			i := y*width + x
			gradX[i] = gx
			gradY[i] = gy
			if opts.L2Gradient {
				magnitude[i] = math.Sqrt(gx*gx + gy*gy)
			} else {
				magnitude[i] = math.Abs(gx) + math.Abs(gy)
			}
		}
	}

	// Non-maximum suppression
	suppressed := make([]float64, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			mag := magnitude[i]
			if mag <= low {
				continue
			}

			// Neighbors along the gradient; Y grows downward.
			var n1, n2 float64
			angle := math.Atan2(gradY[i], gradX[i])
			switch sector(angle) {
			case 0:
				n1 = magnitude[i-1]
				n2 = magnitude[i+1]
			case 1:
				n1 = magnitude[i-width-1]
				n2 = magnitude[i+width+1]
			case 2:
				n1 = magnitude[i-width]
				n2 = magnitude[i+width]
			default:
				n1 = magnitude[i-width+1]
				n2 = magnitude[i+width-1]
			}

			if mag > n1 && mag >= n2 {
				suppressed[i] = mag
			}
		}
	}

	// Double threshold and edge tracking by hysteresis
	stack := make([]int, 0, 256)
	for i, v := range suppressed {
		if v > high {
			result.Pix[(i/width)*result.Stride+i%width] = 255
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%width, i/width

		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				nx, ny := x+kx, y+ky
				if nx < 0 || ny < 0 || nx >= width || ny >= height {
					continue
				}
				off := ny*result.Stride + nx
				j := ny*width + nx
				if result.Pix[off] == 0 && suppressed[j] > low {
					result.Pix[off] = 255
					stack = append(stack, j)
				}
			}
		}
	}

	return result
}

// sector quantizes a gradient angle in radians into one of four directions:
// 0 horizontal, 1 the down-right diagonal, 2 vertical, 3 the up-right diagonal.
func sector(angle float64) int {
	if angle < 0 {
		angle += math.Pi
	}
	switch {
	case angle < math.Pi/8 || angle >= 7*math.Pi/8:
		return 0
	case angle < 3*math.Pi/8:
		return 1
	case angle < 5*math.Pi/8:
		return 2
	default:
		return 3
	}
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
