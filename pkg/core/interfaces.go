package core

// Hittable is anything a ray can intersect within a parameter interval
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing scattered ray
	Attenuation Vec3 // Color attenuation applied to light carried by the scattered ray
}

// Material scatters incoming rays at an intersection. Implementations are
// immutable and may be shared by many hittables; a false return means the
// ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Logger interface for renderer progress output
type Logger interface {
	Printf(format string, args ...interface{})
}
