//go:build gocv

package edgedetect

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"

	"github.com/ironsheep/edge-detect/internal/config"
	"github.com/ironsheep/edge-detect/internal/imaging"
)

// openCVBackend runs imread, cvtColor, Canny and imwrite through OpenCV.
//
// BlurRadius is passed to GaussianBlur as sigma, which approximates but does
// not match the bild radius used by the Go backend.
type openCVBackend struct {
	params Params
}

func newOpenCVBackend(p Params) (Backend, error) {
	if p.GrayMode != imaging.GrayBT601 {
		return nil, fmt.Errorf("%w: opencv backend supports only %q grayscale", ErrBackendUnavailable, imaging.GrayBT601)
	}
	if p.Canny.L2Gradient {
		return nil, fmt.Errorf("%w: opencv backend does not support L2 gradient", ErrBackendUnavailable)
	}
	return &openCVBackend{params: p}, nil
}

func (b *openCVBackend) Name() string { return string(config.BackendOpenCV) }

func (b *openCVBackend) Detect(source, output string) error {
	flags := gocv.IMReadColor
	if !b.params.AutoOrient {
		flags |= gocv.IMReadIgnoreOrientation
	}

	src := gocv.IMRead(source, flags)
	defer src.Close()
	if src.Empty() {
		return readError(source, errors.New("imread returned an empty matrix"))
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if err := gocv.CvtColor(src, &gray, gocv.ColorBGRToGray); err != nil {
		return stepError(output, "cvtColor", err)
	}

	work := gray
	if b.params.BlurRadius > 0 {
		blurred := gocv.NewMat()
		defer blurred.Close()
		if err := gocv.GaussianBlur(gray, &blurred, image.Pt(0, 0), b.params.BlurRadius, b.params.BlurRadius, gocv.BorderDefault); err != nil {
			return stepError(output, "GaussianBlur", err)
		}
		work = blurred
	}

	low, high := b.params.Canny.Low, b.params.Canny.High
	if low > high {
		low, high = high, low
	}
	edges := gocv.NewMat()
	defer edges.Close()
	if err := gocv.Canny(work, &edges, float32(low), float32(high)); err != nil {
		return stepError(output, "Canny", err)
	}

	if err := b.write(output, edges); err != nil {
		return writeError(output, err)
	}
	return nil
}

// stepError reports a failed OpenCV step after a successful read. No output
// is produced, so it is classified as a write failure carrying the real cause.
func stepError(output, step string, err error) error {
	return writeError(output, fmt.Errorf("%s: %w", step, err))
}

// write goes through a temp file like imaging.SaveJPEG so the output is
// replaced atomically. The temp name keeps a .jpg extension because imwrite
// picks the codec from it.
func (b *openCVBackend) write(output string, edges gocv.Mat) error {
	tmp, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+".*.tmp.jpg")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	params := []int{int(gocv.IMWriteJpegQuality), b.params.JPEGQuality}
	if !gocv.IMWriteWithParams(tmpName, edges, params) {
		os.Remove(tmpName)
		return errors.New("imwrite failed")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpName, output); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}
