//go:build !gocv

package edgedetect

import "fmt"

func newOpenCVBackend(Params) (Backend, error) {
	return nil, fmt.Errorf("%w: opencv backend requires building with -tags gocv", ErrBackendUnavailable)
}
