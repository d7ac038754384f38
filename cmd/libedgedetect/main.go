// Command libedgedetect builds the edge processor as a C shared library for
// native hosts (mobile bridges, FFI):
//
//	go build -buildmode=c-shared -o libedgedetect.so ./cmd/libedgedetect
//
// The processor is configured once from EDGE_DETECT_* environment variables.
package main

// #include <stdlib.h>
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"github.com/ironsheep/edge-detect/internal/config"
	"github.com/ironsheep/edge-detect/internal/edgedetect"
	"github.com/ironsheep/edge-detect/internal/logging"
)

var processor = sync.OnceValues(func() (*edgedetect.Processor, error) {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	// The closer is dropped: the sink lives as long as the host process.
	log, _, err := logging.Open(cfg.LogSink, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return edgedetect.New(cfg, log)
})

// processImage is the Go side of EdgeDetectProcessImage.
func processImage(source string) string {
	proc, err := processor()
	if err != nil {
		return edgedetect.Message(err)
	}
	return proc.Process(source)
}

// EdgeDetectProcessImage runs edge detection on the file at sourcePath and
// returns the output path or an "Error: ..." message. The caller owns the
// returned string and must release it with EdgeDetectFreeString.
//
//export EdgeDetectProcessImage
func EdgeDetectProcessImage(sourcePath *C.char) *C.char {
	return C.CString(processImage(C.GoString(sourcePath)))
}

// EdgeDetectFreeString releases a string returned by EdgeDetectProcessImage.
//
//export EdgeDetectFreeString
func EdgeDetectFreeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
