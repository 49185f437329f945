package geometry

import (
	"math"

	"github.com/pixelmoth/pathtracer/pkg/core"
)

// Cylinder represents a finite cylinder with two flat end caps, defined by
// its base cap center, unit axis, radius and height
type Cylinder struct {
	BaseCenter core.Vec3
	Axis       core.Vec3 // Unit vector from base toward top
	Radius     float64
	Height     float64
	Material   core.Material

	// End caps built once at construction, outward normals along the axis
	caps [2]*Disk
}

// NewCylinder creates a new capped cylinder
func NewCylinder(baseCenter, axis core.Vec3, radius, height float64, material core.Material) *Cylinder {
	unitAxis := axis.Normalize()
	bottomCap := NewDisk(baseCenter, unitAxis.Negate(), radius, material)
	topCap := NewDisk(baseCenter.Add(unitAxis.Multiply(height)), unitAxis, radius, material)

	return &Cylinder{
		BaseCenter: baseCenter,
		Axis:       unitAxis,
		Radius:     radius,
		Height:     height,
		Material:   material,
		caps:       [2]*Disk{bottomCap, topCap},
	}
}

// Hit tests the lateral surface and both end caps independently against the
// same shrinking bound and returns the closest candidate that passes its own
// containment test
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	// Decompose the direction and origin offset into components parallel
	// and perpendicular to the axis; the lateral surface reduces to the
	// sphere's half-b quadratic on the perpendicular components
	oc := ray.Origin.Subtract(c.BaseCenter)
	dAxis := ray.Direction.Dot(c.Axis)
	ocAxis := oc.Dot(c.Axis)
	dPerp := ray.Direction.Subtract(c.Axis.Multiply(dAxis))
	ocPerp := oc.Subtract(c.Axis.Multiply(ocAxis))

	a := dPerp.LengthSquared()
	if a > 1e-12 { // A ray parallel to the axis cannot hit the tube
		halfB := dPerp.Dot(ocPerp)
		cc := ocPerp.LengthSquared() - c.Radius*c.Radius

		if discriminant := halfB*halfB - a*cc; discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			for _, sign := range [2]float64{-1, 1} {
				t := (-halfB + sign*sqrtD) / a
				if t <= tMin || t >= closestSoFar {
					continue
				}

				// Reject roots whose axial coordinate is outside the tube
				point := ray.At(t)
				h := point.Subtract(c.BaseCenter).Dot(c.Axis)
				if h < 0 || h > c.Height {
					continue
				}

				hitRecord := &core.HitRecord{
					T:        t,
					Point:    point,
					Material: c.Material,
				}
				// Normal points radially outward from the axis
				axisPoint := c.BaseCenter.Add(c.Axis.Multiply(h))
				hitRecord.SetFaceNormal(ray, point.Subtract(axisPoint).Normalize())

				closestSoFar = t
				closestHit = hitRecord
			}
		}
	}

	for _, endCap := range c.caps {
		if hit, isHit := endCap.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
