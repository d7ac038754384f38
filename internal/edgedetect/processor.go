// Package edgedetect turns an image file into an edge-detected JPEG next to it.
//
// A Processor takes a source path, decodes the image, converts it to
// grayscale, runs Canny edge detection and writes the edge map to the source
// path plus a fixed suffix ("_processed.jpg" by default). It keeps no state
// between calls and is safe for concurrent use.
//
// Two entry points are offered:
//
//	out, err := p.ProcessFile("/tmp/photo.jpg") // typed error
//	result := p.Process("/tmp/photo.jpg")       // path or "Error: ..." string
//
// There are exactly two failure kinds, read and write. Process reports them
// as ReadFailureMessage and WriteFailureMessage.
package edgedetect

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-detect/internal/config"
)

// Processor runs the edge pipeline with a fixed configuration.
type Processor struct {
	cfg     config.Config
	backend Backend
	log     zerolog.Logger
}

// New validates cfg and builds a Processor with the backend it selects.
// Selecting the opencv backend in a build without the gocv tag returns an
// error wrapping ErrBackendUnavailable.
func New(cfg config.Config, log zerolog.Logger) (*Processor, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, backend: backend, log: log}, nil
}

// Config returns the configuration the processor was built with.
func (p *Processor) Config() config.Config { return p.cfg }

// BackendName reports which pipeline implementation is in use.
func (p *Processor) BackendName() string { return p.backend.Name() }

// WithThresholds returns a copy of p using other Canny thresholds.
func (p *Processor) WithThresholds(low, high float64) (*Processor, error) {
	cfg := p.cfg
	cfg.LowThreshold = low
	cfg.HighThreshold = high
	return New(cfg, p.log)
}

// OutputPath returns source with suffix appended. Nothing is stripped: the
// output of "a.png" with the default suffix is "a.png_processed.jpg".
func OutputPath(source, suffix string) string {
	return source + suffix
}

// OutputPath returns the path ProcessFile writes for source.
func (p *Processor) OutputPath(source string) string {
	return OutputPath(source, p.cfg.Suffix)
}

// ProcessFile runs the pipeline on source and returns the output path.
//
// On failure the error is an *Error; errors.Is matches ErrReadImage or
// ErrWriteImage. A read failure leaves the filesystem untouched. A write
// failure leaves any earlier output in place.
func (p *Processor) ProcessFile(source string) (string, error) {
	log := p.log.With().
		Str("call_id", uuid.NewString()).
		Str("backend", p.backend.Name()).
		Logger()

	log.Debug().Str("path", source).Msg("Processing image")

	output := p.OutputPath(source)
	if err := p.backend.Detect(source, output); err != nil {
		var perr *Error
		if !errors.As(err, &perr) {
			// A backend broke its contract; report it as unreadable input.
			perr = readError(source, err)
		}
		switch perr.Kind {
		case KindWrite:
			log.Error().Err(perr.Err).Str("path", perr.Path).Msg("Failed to write image")
		default:
			log.Error().Err(perr.Err).Str("path", perr.Path).Msg("Failed to read image")
		}
		return "", perr
	}

	log.Debug().Str("path", output).Msg("Successfully saved processed image")
	return output, nil
}

// Process is ProcessFile for string-only callers: it returns the output path
// on success, ReadFailureMessage or WriteFailureMessage otherwise.
func (p *Processor) Process(source string) string {
	output, err := p.ProcessFile(source)
	if err != nil {
		return Message(err)
	}
	return output
}

// String describes the processor for logs.
func (p *Processor) String() string {
	return fmt.Sprintf("edgedetect(%s, canny %g/%g, suffix %q)",
		p.backend.Name(), p.cfg.LowThreshold, p.cfg.HighThreshold, p.cfg.Suffix)
}
