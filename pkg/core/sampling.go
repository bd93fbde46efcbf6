package core

import (
	"math"
	"math/rand"
)

// RandomVec3 generates a vector with each component drawn uniformly from [min, max)
func RandomVec3(minVal, maxVal float64, random *rand.Rand) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}

// RandomUnitVector generates a uniformly distributed point on the unit sphere
// using spherical coordinate sampling
func RandomUnitVector(random *rand.Rand) Vec3 {
	azimuth := 2 * math.Pi * random.Float64()
	// Sample cos(polar) uniformly so the sphere surface is covered evenly
	cosPolar := 2*random.Float64() - 1
	sinPolar := math.Sqrt(1 - cosPolar*cosPolar)

	return Vec3{
		X: sinPolar * math.Cos(azimuth),
		Y: sinPolar * math.Sin(azimuth),
		Z: cosPolar,
	}
}

// RandomInUnitDisk generates a uniformly distributed point in the unit disk
// (for depth of field lens sampling)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	angle := 2 * math.Pi * random.Float64()
	radius := math.Sqrt(random.Float64())
	return Vec3{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}
