package renderer

import (
	"math"
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	ImageWidth    int       // Width of the image in pixels (>0)
	AspectRatio   float64   // Width over height (>0)
	VFov          float64   // Vertical field of view in degrees
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Target the camera points at
	VUp           core.Vec3 // Camera-relative up direction
	DefocusAngle  float64   // Lens aperture angle in degrees; <=0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera builds primary rays for pixel coordinates
type Camera struct {
	center        core.Vec3 // Eye position
	imageWidth    int
	imageHeight   int
	pixel00Loc    core.Vec3 // World position of the top-left pixel center
	pixelDeltaU   core.Vec3 // Offset to the next pixel to the right
	pixelDeltaV   core.Vec3 // Offset to the next pixel down
	defocusAngle  float64
	defocusDiskU  core.Vec3 // Defocus disk horizontal basis
	defocusDiskV  core.Vec3 // Defocus disk vertical basis
}

// NewCamera derives the viewport geometry from the configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = 1.0
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(imageHeight)

	// Orthonormal camera basis: w looks backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	center := config.LookFrom
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)

	return &Camera{
		center:       center,
		imageWidth:   config.ImageWidth,
		imageHeight:  imageHeight,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusAngle: config.DefocusAngle,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the derived image height in pixels (always >= 1)
func (c *Camera) ImageHeight() int { return c.imageHeight }

// GetRay builds a ray through pixel (i, j), jittered within the pixel for
// anti-aliasing. With a positive defocus angle the origin is sampled on the
// lens disk for depth of field.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random origin on the camera lens disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
