package renderer

import (
	"errors"
	"math"

	"github.com/pixelmoth/pathtracer/pkg/core"
)

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Target the camera points at
	Up            core.Vec3 // Up reference vector
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera generates rays for rendering. All derived quantities are computed
// once at construction; ray generation is stateless.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration. It fails fast on
// a degenerate basis (coincident look-from/look-at, or up parallel to the
// view direction) rather than letting NaN propagate through the render.
func NewCamera(config CameraConfig) (*Camera, error) {
	look := config.LookFrom.Subtract(config.LookAt)
	if look.NearZero() {
		return nil, errors.New("camera: look-from and look-at coincide")
	}
	w := look.Normalize()

	upCrossW := config.Up.Cross(w)
	if upCrossW.NearZero() {
		return nil, errors.New("camera: up vector is parallel to the view direction")
	}
	u := upCrossW.Normalize()
	v := w.Cross(u)

	// The viewport lives on the focus plane so points at FocusDistance are
	// always sharp regardless of the lens sample
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight * config.AspectRatio

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for normalized screen coordinates (s, t) in [0, 1].
// With a non-zero aperture the ray origin is offset by a random lens sample,
// producing depth of field.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
