package geometry

import (
	"math"

	"github.com/pixelmoth/pathtracer/pkg/core"
)

// Square represents a finite square plane patch defined by its center,
// unit normal and side length
type Square struct {
	Center   core.Vec3
	Normal   core.Vec3 // Unit normal
	Size     float64   // Side length
	Material core.Material

	// In-plane axes derived once at construction
	uAxis core.Vec3
	vAxis core.Vec3
}

// NewSquare creates a new square from its center, normal and side length
func NewSquare(center, normal core.Vec3, size float64, material core.Material) *Square {
	unitNormal := normal.Normalize()

	// Choose the reference axis least aligned with the normal so the cross
	// product below stays well conditioned
	reference := core.NewVec3(1, 0, 0)
	if math.Abs(unitNormal.X) > 0.9 {
		reference = core.NewVec3(0, 1, 0)
	}

	uAxis := unitNormal.Cross(reference).Normalize()
	vAxis := unitNormal.Cross(uAxis)

	return &Square{
		Center:   center,
		Normal:   unitNormal,
		Size:     size,
		Material: material,
		uAxis:    uAxis,
		vAxis:    vAxis,
	}
}

// NewHorizontalSquare creates a square facing up (+Y)
func NewHorizontalSquare(center core.Vec3, size float64, material core.Material) *Square {
	return NewSquare(center, core.NewVec3(0, 1, 0), size, material)
}

// NewVerticalSquare creates a square facing toward the camera (+Z)
func NewVerticalSquare(center core.Vec3, size float64, material core.Material) *Square {
	return NewSquare(center, core.NewVec3(0, 0, 1), size, material)
}

// Hit tests if a ray intersects with the square
func (s *Square) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Intersect the infinite supporting plane first
	denom := ray.Direction.Dot(s.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false // Ray is parallel to the plane
	}

	t := s.Center.Subtract(ray.Origin).Dot(s.Normal) / denom
	if t <= tMin || t >= tMax {
		return nil, false
	}

	// Project the hit point onto the in-plane axes relative to the center
	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(s.Center)
	uCoord := centerToHit.Dot(s.uAxis)
	vCoord := centerToHit.Dot(s.vAxis)

	halfSize := s.Size / 2
	if math.Abs(uCoord) > halfSize || math.Abs(vCoord) > halfSize {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: s.Material,
	}
	hitRecord.SetFaceNormal(ray, s.Normal)

	return hitRecord, true
}
