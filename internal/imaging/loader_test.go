package imaging

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

// writeTestImage encodes img into dir/name with the given encoder and returns the path.
func writeTestImage(t *testing.T, dir, name string, img image.Image, enc imgio.Encoder) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imgio.Save(path, img, enc); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// createTestImageWithPattern creates a test image with a specific pattern
func createTestImageWithPattern(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Create a pattern: red top-left, green top-right, blue bottom-left, white bottom-right
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else {
				c = color.RGBA{255, 255, 255, 255} // White
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()
	src := createTestImageWithPattern(40, 30)

	tests := []struct {
		name string
		file string
		enc  imgio.Encoder
	}{
		{"jpeg", "pattern.jpg", imgio.JPEGEncoder(90)},
		{"png", "pattern.png", imgio.PNGEncoder()},
		{"bmp", "pattern.bmp", imgio.BMPEncoder()},
		// Decoding sniffs content, not the extension
		{"png with misleading extension", "pattern.dat", imgio.PNGEncoder()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestImage(t, dir, tt.file, src, tt.enc)

			img, err := Load(path, true)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
				t.Errorf("dimensions: got %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), true)
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path, true)
	if err == nil {
		t.Fatal("expected error for invalid image")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("corrupt file reported as missing: %v", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	if _, err := Load(t.TempDir(), true); err == nil {
		t.Fatal("expected error when loading a directory")
	}
}
