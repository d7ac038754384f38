//go:build cgo

package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

func TestProcessImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	src := filepath.Join(t.TempDir(), "frame.jpg")
	if err := imgio.Save(src, img, imgio.JPEGEncoder(90)); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if got, want := processImage(src), src+"_processed.jpg"; got != want {
		t.Errorf("processImage: got %q, want %q", got, want)
	}
}

func TestProcessImage_Missing(t *testing.T) {
	if got := processImage(filepath.Join(t.TempDir(), "missing.jpg")); got != "Error: Failed to read image" {
		t.Errorf("processImage: got %q", got)
	}
}

func TestProcessImage_EmptyPath(t *testing.T) {
	if got := processImage(""); got != "Error: Failed to read image" {
		t.Errorf("processImage: got %q", got)
	}
}
