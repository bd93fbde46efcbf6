package geometry

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/softsun/go-pathtracer/pkg/core"
)

// Translate shifts a hittable by a fixed offset without copying it
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps an object with a translation
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, delegates, and shifts the hit point
// back. Normals are unaffected by translation.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(tr.Offset), ray.Direction)

	hit, isHit := tr.Object.Hit(moved, tMin, tMax, random)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// RotateY rotates a hittable about the Y axis
type RotateY struct {
	Object        core.Hittable
	worldToObject mgl64.Mat3
	objectToWorld mgl64.Mat3
}

// NewRotateY wraps an object with a rotation of angle degrees about Y
func NewRotateY(object core.Hittable, angleDegrees float64) *RotateY {
	radians := mgl64.DegToRad(angleDegrees)
	return &RotateY{
		Object:        object,
		worldToObject: mgl64.Rotate3DY(-radians),
		objectToWorld: mgl64.Rotate3DY(radians),
	}
}

// Hit rotates the ray into object space, delegates, and rotates the hit
// position and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	rotated := core.NewRay(
		rotateVec(r.worldToObject, ray.Origin),
		rotateVec(r.worldToObject, ray.Direction),
	)

	hit, isHit := r.Object.Hit(rotated, tMin, tMax, random)
	if !isHit {
		return nil, false
	}

	hit.Point = rotateVec(r.objectToWorld, hit.Point)
	hit.Normal = rotateVec(r.objectToWorld, hit.Normal)
	return hit, true
}

func rotateVec(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	rotated := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(rotated.X(), rotated.Y(), rotated.Z())
}
