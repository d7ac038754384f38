// Package imaging provides the pure-Go image operations behind edge detection.
//
// This package implements the four steps of the edge pipeline as separate
// functions: loading an image file, reducing it to grayscale, running Canny
// edge detection, and writing the result as JPEG. Codecs and color math come
// from the disintegration/imaging, bild and go-colorful libraries; the Canny
// stage itself is implemented here so the default build needs no native
// vision library.
//
// # Coordinate System
//
// Images produced by this package always have their origin at (0,0):
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Inputs with other origins are accepted and normalized.
//
// # Edge Maps
//
// Canny returns an *image.Gray where 255 marks an edge pixel and 0 marks
// background. Written as JPEG the map stays single-channel, though lossy
// compression introduces intermediate values around edges.
//
// # Thread Safety
//
// All functions are stateless and can be called concurrently on different
// images. SaveJPEG replaces its target atomically, so concurrent writers to
// the same path leave exactly one complete file behind.
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O errors during image loading
//   - Undecodable or unsupported image data
//   - File creation, encoding or rename errors during output
//
// Errors wrap their cause with %w so callers can test for fs.ErrNotExist,
// fs.ErrPermission and similar.
package imaging
