package scene

import (
	"fmt"

	"github.com/pixelmoth/pathtracer/pkg/core"
	"github.com/pixelmoth/pathtracer/pkg/geometry"
	"github.com/pixelmoth/pathtracer/pkg/material"
	"github.com/pixelmoth/pathtracer/pkg/renderer"
)

// Shared camera constants for the built-in scenes
const (
	defaultVFov          = 43.0
	defaultAperture      = 0.05
	defaultFocusDistance = 10.0
	groundSize           = 1000.0
)

// Scene bundles a fully constructed world with its camera and background.
// It satisfies renderer.Scene and is immutable once built.
type Scene struct {
	camera      *renderer.Camera
	world       core.Hittable
	topColor    core.Vec3
	bottomColor core.Vec3
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera { return s.camera }

// GetBackgroundColors returns the top and bottom gradient colors
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

// GetWorld returns the scene's hittable aggregate
func (s *Scene) GetWorld() core.Hittable { return s.world }

// newScene builds a scene with the shared camera settings and the
// white-to-sky-blue background gradient
func newScene(world core.Hittable, lookFrom, lookAt core.Vec3, aspectRatio float64) (*Scene, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          defaultVFov,
		AspectRatio:   aspectRatio,
		Aperture:      defaultAperture,
		FocusDistance: defaultFocusDistance,
	})
	if err != nil {
		return nil, err
	}

	return &Scene{
		camera:      camera,
		world:       world,
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}

// NewSphereScene is a single metal sphere resting on a gray ground square
func NewSphereScene(aspectRatio float64) (*Scene, error) {
	world := geometry.NewHittableList(
		geometry.NewHorizontalSquare(core.NewVec3(0, 0, 0), groundSize,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0,
			material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), 0.1)),
	)
	return newScene(world, core.NewVec3(0, 2, 5), core.NewVec3(0, 1, 0), aspectRatio)
}

// NewPlaneCubeScene is a dim metal cube on a brown ground square
func NewPlaneCubeScene(aspectRatio float64) (*Scene, error) {
	world := geometry.NewHittableList(
		geometry.NewHorizontalSquare(core.NewVec3(0, 0, 0), groundSize,
			material.NewLambertian(core.NewVec3(0.4, 0.15, 0.05))),
		geometry.NewCube(core.NewVec3(-1, 0, -1), core.NewVec3(1, 2, 1),
			material.NewMetal(core.NewVec3(0.1, 0.2, 0.2), 0.2)),
	)
	return newScene(world, core.NewVec3(0, 3, 7), core.NewVec3(0, 1, 0), aspectRatio)
}

// allObjectsWorld holds one of every primitive: sphere, cube and capped
// cylinder on a gray ground square
func allObjectsWorld() *geometry.HittableList {
	metalTeal := material.NewMetal(core.NewVec3(0.2, 0.7, 0.7), 0.1)

	return geometry.NewHittableList(
		geometry.NewHorizontalSquare(core.NewVec3(0, 0, 0), groundSize,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 1, 1), 1.0, metalTeal),
		geometry.NewCube(core.NewVec3(-4.5, 0, 0), core.NewVec3(-2.5, 2, 2), metalTeal),
		geometry.NewCylinder(core.NewVec3(3.5, 0, 1), core.NewVec3(0, 1, 0), 0.8, 2.0,
			material.NewLambertian(core.NewVec3(0.8, 1.0, 0.2))),
	)
}

// NewAllObjectsScene shows every primitive from a front camera
func NewAllObjectsScene(aspectRatio float64) (*Scene, error) {
	return newScene(allObjectsWorld(), core.NewVec3(0, 3, 10), core.NewVec3(0, 1, 1), aspectRatio)
}

// NewAllObjectsAltCameraScene is the all-objects world seen from a raised
// side camera
func NewAllObjectsAltCameraScene(aspectRatio float64) (*Scene, error) {
	return newScene(allObjectsWorld(), core.NewVec3(0, 5, 10), core.NewVec3(0, 1, 1), aspectRatio)
}

// NewGlassScene places a glass sphere between the camera and a metal sphere
// to show refraction and total internal reflection
func NewGlassScene(aspectRatio float64) (*Scene, error) {
	world := geometry.NewHittableList(
		geometry.NewHorizontalSquare(core.NewVec3(0, 0, 0), groundSize,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0,
			material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 1, -3), 1.0,
			material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), 0.05)),
	)
	return newScene(world, core.NewVec3(0, 2, 5), core.NewVec3(0, 1, 0), aspectRatio)
}

// Names lists the built-in scene names accepted by New
func Names() []string {
	return []string{"sphere", "planecube", "allobjects", "allobjects-alt", "glass"}
}

// New builds a built-in scene by name
func New(name string, aspectRatio float64) (*Scene, error) {
	switch name {
	case "sphere":
		return NewSphereScene(aspectRatio)
	case "planecube":
		return NewPlaneCubeScene(aspectRatio)
	case "allobjects":
		return NewAllObjectsScene(aspectRatio)
	case "allobjects-alt":
		return NewAllObjectsAltCameraScene(aspectRatio)
	case "glass":
		return NewGlassScene(aspectRatio)
	default:
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
}
