package geometry

import (
	"math/rand"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// HittableList is a heterogeneous collection of hittables tested with a
// linear scan; the nearest hit wins
type HittableList []core.Hittable

// Hit tests the ray against every element and returns the minimum-t hit.
// Shrinking tMax as hits are found keeps NaN t values from displacing a
// valid closest hit.
func (l HittableList) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, h := range l {
		if hit, isHit := h.Hit(ray, tMin, closestSoFar, random); isHit {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}
