package geometry

import (
	"math"

	"github.com/pixelmoth/pathtracer/pkg/core"
)

// Disk represents a flat circular patch defined by its center, unit normal
// and radius
type Disk struct {
	Center   core.Vec3
	Normal   core.Vec3 // Unit normal
	Radius   float64
	Material core.Material
}

// NewDisk creates a new disk
func NewDisk(center, normal core.Vec3, radius float64, material core.Material) *Disk {
	return &Disk{
		Center:   center,
		Normal:   normal.Normalize(),
		Radius:   radius,
		Material: material,
	}
}

// NewHorizontalDisk creates a disk facing up (+Y)
func NewHorizontalDisk(center core.Vec3, radius float64, material core.Material) *Disk {
	return NewDisk(center, core.NewVec3(0, 1, 0), radius, material)
}

// NewVerticalDisk creates a disk facing toward the camera (+Z)
func NewVerticalDisk(center core.Vec3, radius float64, material core.Material) *Disk {
	return NewDisk(center, core.NewVec3(0, 0, 1), radius, material)
}

// Hit tests if a ray intersects with the disk
func (d *Disk) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Plane test, as for the square
	denom := ray.Direction.Dot(d.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false // Ray is parallel to the disk
	}

	t := d.Center.Subtract(ray.Origin).Dot(d.Normal) / denom
	if t <= tMin || t >= tMax {
		return nil, false
	}

	// Bounded by a circular region instead of a square one
	hitPoint := ray.At(t)
	if hitPoint.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: d.Material,
	}
	hitRecord.SetFaceNormal(ray, d.Normal)

	return hitRecord, true
}
