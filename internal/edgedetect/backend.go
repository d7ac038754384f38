package edgedetect

import (
	"fmt"

	"github.com/ironsheep/edge-detect/internal/config"
	"github.com/ironsheep/edge-detect/internal/imaging"
)

// Backend runs the whole pipeline for one file: decode source, reduce to
// grayscale, detect edges, write JPEG to output.
//
// Detect returns an *Error of KindRead or KindWrite on failure. It must not
// create output when the source cannot be read.
type Backend interface {
	Name() string
	Detect(source, output string) error
}

// Params are the pipeline settings a backend is built with.
type Params struct {
	Canny       imaging.CannyOptions
	BlurRadius  float64
	GrayMode    imaging.GrayMode
	AutoOrient  bool
	JPEGQuality int
}

func paramsFromConfig(c config.Config) Params {
	return Params{
		Canny: imaging.CannyOptions{
			Low:        c.LowThreshold,
			High:       c.HighThreshold,
			L2Gradient: c.L2Gradient,
		},
		BlurRadius:  c.BlurRadius,
		GrayMode:    c.GrayMode,
		AutoOrient:  c.AutoOrient,
		JPEGQuality: c.JPEGQuality,
	}
}

func newBackend(c config.Config) (Backend, error) {
	p := paramsFromConfig(c)
	switch c.Backend {
	case config.BackendGo, "":
		return &goBackend{params: p}, nil
	case config.BackendOpenCV:
		return newOpenCVBackend(p)
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// goBackend is the default pipeline built on internal/imaging.
type goBackend struct {
	params Params
}

func (b *goBackend) Name() string { return string(config.BackendGo) }

func (b *goBackend) Detect(source, output string) error {
	img, err := imaging.Load(source, b.params.AutoOrient)
	if err != nil {
		return readError(source, err)
	}

	gray := imaging.ToGray(img, b.params.GrayMode)
	gray = imaging.Blur(gray, b.params.BlurRadius)
	edges := imaging.Canny(gray, b.params.Canny)

	if err := imaging.SaveJPEG(output, edges, b.params.JPEGQuality); err != nil {
		return writeError(output, err)
	}
	return nil
}
