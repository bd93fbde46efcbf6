package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// EncodePNG encodes the raster to PNG bytes in memory. The raster is never
// modified, so an encode failure leaves the render result intact.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG writes the raster to a PNG file
func WritePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
