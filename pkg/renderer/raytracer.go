package renderer

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
	NumWorkers      int // Parallel workers (0 = use CPU count)
	Seed            int64
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer estimates per-pixel radiance by recursively tracing sample rays
// through a read-only scene
type Raytracer struct {
	world      core.Hittable
	camera     *Camera
	background core.Background
	config     SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil background renders as black;
// a nil logger discards progress output.
func NewRaytracer(world core.Hittable, camera *Camera, background core.Background, config SamplingConfig, logger core.Logger) *Raytracer {
	if background == nil {
		background = BlackBackground()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		background: background,
		config:     config,
		logger:     logger,
	}
}

// rayColor returns the radiance carried back along a ray. Depth counts the
// remaining bounces; at zero the path terminates with no contribution.
func (rt *Raytracer) rayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids re-intersecting the surface the ray
	// just left (shadow acne)
	hit, isHit := rt.world.Hit(ray, 0.001, math.Inf(1), random)
	if !isHit {
		return rt.background(ray.Direction)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, random)))
}

// samplePixel averages the configured number of jittered samples for one pixel
func (rt *Raytracer) samplePixel(i, j int, random *rand.Rand) core.Vec3 {
	accum := core.Vec3{}
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		ray := rt.camera.GetRay(i, j, random)
		accum = accum.Add(rt.rayColor(ray, rt.config.MaxDepth, random))
	}
	return accum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// vec3ToColor converts a linear color to a display byte triple: gamma 2.2,
// clamp to [0,1], scale to [0,255]
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	corrected := core.NewVec3(
		core.LinearToGamma(colorVec.X),
		core.LinearToGamma(colorVec.Y),
		core.LinearToGamma(colorVec.Z),
	).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * corrected.X),
		G: uint8(255 * corrected.Y),
		B: uint8(255 * corrected.Z),
		A: 255,
	}
}

// GradientBackground returns a background that blends from bottom to top
// based on the ray direction's vertical component
func GradientBackground(top, bottom core.Vec3) core.Background {
	return func(direction core.Vec3) core.Vec3 {
		t := 0.5 * (direction.Normalize().Y + 1.0)
		return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
	}
}

// SolidBackground returns a background of a single color
func SolidBackground(c core.Vec3) core.Background {
	return func(core.Vec3) core.Vec3 { return c }
}

// BlackBackground returns a background that emits nothing; used for scenes
// lit entirely by emissive surfaces
func BlackBackground() core.Background {
	return SolidBackground(core.Vec3{})
}
