package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/pixelmoth/pathtracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed; each row derives its own stream
	Workers         int   // Concurrent row workers; <= 0 means NumCPU
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene supplies the renderer with a fully constructed world.
// Defined here to avoid a circular import with the scene package.
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer renders a scene by stochastically sampling light-carrying rays.
// The scene is read-only during rendering, so per-row evaluation is safe to
// run concurrently as long as each row owns its random stream.
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer with default sampling configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger sets an optional logger for progress output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// backgroundGradient blends the scene's bottom and top colors vertically
// by the ray direction, simulating sky
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the color for a given ray, recursing through scattered
// rays until the bounce budget runs out
func (rt *Raytracer) rayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids immediate re-intersection with the
	// originating surface (shadow acne)
	hit, isHit := rt.scene.GetWorld().Hit(r, 0.001, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, sampler))
}

// renderPixel averages SamplesPerPixel jittered rays for pixel (i, j),
// where j counts rows from the bottom of the image
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	camera := rt.scene.GetCamera()
	colorAccum := core.Vec3{}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + sampler.Get1D()) / float64(rt.width-1)
		t := (float64(j) + sampler.Get1D()) / float64(rt.height-1)
		ray := camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth, sampler))
	}

	return colorAccum.Divide(float64(rt.config.SamplesPerPixel))
}

// renderRow renders scanline j into the image using the row's own sampler.
// Rows write to disjoint pixels, so concurrent calls need no locking.
func (rt *Raytracer) renderRow(j int, img *image.RGBA) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.config.Seed + int64(j))))

	for i := 0; i < rt.width; i++ {
		pixelColor := rt.renderPixel(i, j, sampler)
		img.SetRGBA(i, rt.height-1-j, vec3ToRGBA(pixelColor))
	}
}

// vec3ToRGBA converts an averaged linear color to a display pixel: gamma-2
// correction, then a clamp to [0, 0.999] before fixed-point quantization
func vec3ToRGBA(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
