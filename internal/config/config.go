// Package config holds the settings of the edge processor.
//
// All fields have defaults matching the OpenCV native pipeline, so callers
// can start from Default() and override only what they need. FromEnv layers
// EDGE_DETECT_* environment variables on top of the defaults.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-detect/internal/imaging"
)

// Backend selects the implementation of the edge pipeline.
type Backend string

const (
	// BackendGo runs the pure-Go pipeline in internal/imaging.
	BackendGo Backend = "go"

	// BackendOpenCV runs the pipeline through OpenCV. Requires the gocv build tag.
	BackendOpenCV Backend = "opencv"
)

// LogSink selects where diagnostic lines go.
type LogSink string

const (
	// SinkStderr writes human-readable lines to stderr.
	SinkStderr LogSink = "stderr"

	// SinkSyslog sends JSON lines to the local syslog daemon. Unix only.
	SinkSyslog LogSink = "syslog"
)

// EnvPrefix is prepended to every environment variable name read by FromEnv.
const EnvPrefix = "EDGE_DETECT_"

// Config is the top-level configuration struct.
type Config struct {
	// Canny hysteresis thresholds on the 8-bit gradient scale.
	LowThreshold  float64
	HighThreshold float64
	L2Gradient    bool

	// Gaussian pre-blur radius; 0 disables it.
	BlurRadius float64

	GrayMode   imaging.GrayMode
	AutoOrient bool

	// Suffix is appended verbatim to the source path to form the output path.
	// It must end in .jpg or .jpeg since the output is always JPEG.
	Suffix      string
	JPEGQuality int

	Backend Backend

	LogLevel string
	LogSink  LogSink
}

// Default returns the configuration of the native pipeline: Canny 100/200,
// BT.601 grayscale, no blur, "_processed.jpg" suffix.
func Default() Config {
	return Config{
		LowThreshold:  100,
		HighThreshold: 200,
		GrayMode:      imaging.GrayBT601,
		AutoOrient:    true,
		Suffix:        "_processed.jpg",
		JPEGQuality:   95,
		Backend:       BackendGo,
		LogLevel:      "info",
		LogSink:       SinkStderr,
	}
}

// Validate returns an error if the configuration is inconsistent.
func Validate(c Config) error {
	var errs []error
	if c.LowThreshold < 0 || c.HighThreshold < 0 {
		errs = append(errs, errors.New("config: thresholds must be non-negative"))
	}
	if c.BlurRadius < 0 {
		errs = append(errs, errors.New("config: BlurRadius must be non-negative"))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, errors.New("config: JPEGQuality must be between 1 and 100"))
	}
	if !hasJPEGExt(c.Suffix) {
		errs = append(errs, fmt.Errorf("config: Suffix %q must end in .jpg or .jpeg", c.Suffix))
	}
	if _, err := imaging.ParseGrayMode(string(c.GrayMode)); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	switch c.Backend {
	case BackendGo, BackendOpenCV:
	default:
		errs = append(errs, fmt.Errorf("config: unknown backend %q", c.Backend))
	}
	switch c.LogSink {
	case SinkStderr, SinkSyslog:
	default:
		errs = append(errs, fmt.Errorf("config: unknown log sink %q", c.LogSink))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	return errors.Join(errs...)
}

// FromEnv returns Default() overridden by any EDGE_DETECT_* variables that
// getenv reports as non-empty. The result is validated.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	var errs []error

	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *float64) {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = f
	}
	flag := func(name string, dst *bool) {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = b
	}

	num("LOW", &c.LowThreshold)
	num("HIGH", &c.HighThreshold)
	flag("L2_GRADIENT", &c.L2Gradient)
	num("BLUR_RADIUS", &c.BlurRadius)
	flag("AUTO_ORIENT", &c.AutoOrient)
	str("SUFFIX", &c.Suffix)
	str("LOG_LEVEL", &c.LogLevel)

	if v := getenv(EnvPrefix + "GRAY_MODE"); v != "" {
		c.GrayMode = imaging.GrayMode(v)
	}
	if v := getenv(EnvPrefix + "BACKEND"); v != "" {
		c.Backend = Backend(strings.ToLower(v))
	}
	if v := getenv(EnvPrefix + "LOG_SINK"); v != "" {
		c.LogSink = LogSink(strings.ToLower(v))
	}
	if v := getenv(EnvPrefix + "JPEG_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sJPEG_QUALITY: %w", EnvPrefix, err))
		} else {
			c.JPEGQuality = q
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func hasJPEGExt(suffix string) bool {
	s := strings.ToLower(suffix)
	return strings.HasSuffix(s, ".jpg") || strings.HasSuffix(s, ".jpeg")
}
