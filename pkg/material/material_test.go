package material

import "github.com/pixelmoth/pathtracer/pkg/core"

// fixedSampler returns canned values, pinning down scatter code paths that
// are otherwise stochastic
type fixedSampler struct {
	value1D float64
	value3D core.Vec3 // Must map inside the unit sphere or rejection loops never end
}

func (f *fixedSampler) Get1D() float64 { return f.value1D }

func (f *fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.value1D, f.value1D) }

func (f *fixedSampler) Get3D() core.Vec3 { return f.value3D }
