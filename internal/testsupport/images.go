package testsupport

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// GradientImage produces a smooth horizontal gradient brightened by seed and
// inverted for odd seeds. Seeds of the same parity yield byte-distinct but
// perceptually identical images; opposite parity maximizes the perceptual
// distance.
func GradientImage(seed int) image.Image {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			shade := x*4 + seed
			if shade > 255 {
				shade = 255
			}
			if seed%2 == 1 {
				shade = 255 - shade
			}
			img.SetGray(x, y, color.Gray{Y: uint8(shade)})
		}
	}
	return img
}

// WritePNG encodes a gradient image to path, creating parents as needed.
func WritePNG(t testing.TB, path string, seed int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create image dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, GradientImage(seed)); err != nil {
		t.Fatalf("encode image %s: %v", path, err)
	}
}

// WriteBytes writes raw content to path, creating parents as needed. Useful
// for corrupt-image and analysis-record fixtures.
func WriteBytes(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
