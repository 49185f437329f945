package geometry

import "github.com/pixelmoth/pathtracer/pkg/core"

// HittableList is an ordered collection of hittables that is itself a
// hittable. Composite shapes build on it so nearest-hit search never needs
// to special-case them.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit finds the closest intersection among all objects in the list.
// Each candidate is tested against a shrinking upper bound, so exact ties
// resolve to the earlier object in iteration order.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
