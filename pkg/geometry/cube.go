package geometry

import (
	"math"

	"github.com/pixelmoth/pathtracer/pkg/core"
)

// Cube is an axis-aligned box composed of six squares, one per face.
// Intersection delegates entirely to the face aggregate so the hit logic is
// identical to any other hittable list.
type Cube struct {
	Sides *HittableList
}

// NewCube creates a cube spanning the axis-aligned box from pMin to pMax.
// Each face square is sized to the larger of the two relevant dimensions.
func NewCube(pMin, pMax core.Vec3, material core.Material) *Cube {
	width := pMax.X - pMin.X
	height := pMax.Y - pMin.Y
	depth := pMax.Z - pMin.Z

	centerX := (pMin.X + pMax.X) / 2
	centerY := (pMin.Y + pMax.Y) / 2
	centerZ := (pMin.Z + pMax.Z) / 2

	sides := NewHittableList(
		// Front (+Z) and back (-Z) faces
		NewSquare(core.NewVec3(centerX, centerY, pMax.Z), core.NewVec3(0, 0, 1), math.Max(width, height), material),
		NewSquare(core.NewVec3(centerX, centerY, pMin.Z), core.NewVec3(0, 0, -1), math.Max(width, height), material),
		// Top (+Y) and bottom (-Y) faces
		NewSquare(core.NewVec3(centerX, pMax.Y, centerZ), core.NewVec3(0, 1, 0), math.Max(width, depth), material),
		NewSquare(core.NewVec3(centerX, pMin.Y, centerZ), core.NewVec3(0, -1, 0), math.Max(width, depth), material),
		// Right (+X) and left (-X) faces
		NewSquare(core.NewVec3(pMax.X, centerY, centerZ), core.NewVec3(1, 0, 0), math.Max(height, depth), material),
		NewSquare(core.NewVec3(pMin.X, centerY, centerZ), core.NewVec3(-1, 0, 0), math.Max(height, depth), material),
	)

	return &Cube{Sides: sides}
}

// NewCenteredCube creates a cube of the given side length centered at center
func NewCenteredCube(center core.Vec3, size float64, material core.Material) *Cube {
	halfSize := size / 2
	pMin := core.NewVec3(center.X-halfSize, center.Y-halfSize, center.Z-halfSize)
	pMax := core.NewVec3(center.X+halfSize, center.Y+halfSize, center.Z+halfSize)
	return NewCube(pMin, pMax, material)
}

// NewCubeFromSize creates a box with the given dimensions extending from corner
func NewCubeFromSize(corner core.Vec3, width, height, depth float64, material core.Material) *Cube {
	pMax := core.NewVec3(corner.X+width, corner.Y+height, corner.Z+depth)
	return NewCube(corner, pMax, material)
}

// Hit tests if a ray intersects with any face of the cube
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return c.Sides.Hit(ray, tMin, tMax)
}
