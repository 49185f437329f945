package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere_StaysInside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point %v outside unit sphere at iteration %d", p, i)
		}
	}
}

func TestRandomUnitVector_HasUnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Length %v at iteration %d, want 1", v.Length(), i)
		}
	}
}

func TestRandomInUnitDisk_StaysInPlane(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample %v has non-zero z", p)
		}
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point %v outside unit disk at iteration %d", p, i)
		}
	}
}

func TestRandomSampler_DeterministicForFixedSeed(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(7)))
	b := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers diverged at draw %d", i)
		}
	}

	if RandomUnitVector(a) != RandomUnitVector(b) {
		t.Error("Rejection sampling diverged for identical streams")
	}
}
