package texture

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/softsun/go-pathtracer/pkg/core"
)

// maxTextureSize caps either texture dimension; larger images are
// downscaled at load time
const maxTextureSize = 2048

// errorColor is returned for every lookup when the backing image could not
// be loaded. Cyan stands out in renders without aborting them.
var errorColor = core.NewVec3(0, 1, 1)

// Image samples colors from a decoded bitmap. Pixels are stored in linear
// color space, row-major from the top-left.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates an image texture from already-decoded linear pixel data
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// NewImageFromFile loads an image texture from disk. A file that cannot be
// found or decoded degrades to the diagnostic color rather than failing the
// render; the problem is reported through the logger.
func NewImageFromFile(filename string, logger core.Logger) *Image {
	tex, err := loadImage(filename)
	if err != nil {
		if logger != nil {
			logger.Printf("texture: %v, using error color\n", err)
		}
		return &Image{}
	}
	return tex
}

// Value samples the texture with nearest-pixel filtering. U is clamped to
// [0,1]; V is flipped because image row 0 is the top of the picture while
// texture v=0 is the bottom.
func (t *Image) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Height == 0 || t.Width == 0 {
		return errorColor
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(val float64) float64 {
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}

// loadImage decodes an image file and converts it to linear color space
func loadImage(filename string) (*Image, error) {
	path, ok := findFile(filename)
	if !ok {
		return nil, fmt.Errorf("image file %q not found", filename)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG/BMP/TIFF from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	// Keep texture memory bounded for large source images
	bounds := img.Bounds()
	if bounds.Dx() > maxTextureSize || bounds.Dy() > maxTextureSize {
		img = resize.Thumbnail(maxTextureSize, maxTextureSize, img, resize.Bilinear)
		bounds = img.Bounds()
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint16 range; convert sRGB to linear with gamma 2.2
			pixels[y*width+x] = core.NewVec3(
				math.Pow(float64(r)/65535.0, 2.2),
				math.Pow(float64(g)/65535.0, 2.2),
				math.Pow(float64(b)/65535.0, 2.2),
			)
		}
	}

	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}

// findFile resolves a texture name against the working directory and a few
// conventional texture directories
func findFile(filename string) (string, bool) {
	candidates := []string{
		filename,
		filepath.Join("textures", filename),
		filepath.Join("..", "textures", filename),
		filepath.Join("..", "..", "textures", filename),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
