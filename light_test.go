package raytracer

import (
	"math"
	"testing"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

func TestLightingEyeBetweenLightAndSurface(t *testing.T) {
	m := DefaultMaterial()
	position := prim.NewPoint(0, 0, 0)
	eyev := prim.NewVector(0, 0, -1)
	normalv := prim.NewVector(0, 0, -1)
	light := NewPointLight(prim.NewPoint(0, 0, -10), White())

	got := Lighting(m, NewSphere(), light, position, eyev, normalv, false)
	want := NewColor(1.9, 1.9, 1.9)
	if !got.Equal(&want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingEyeOffset45Degrees(t *testing.T) {
	m := DefaultMaterial()
	position := prim.NewPoint(0, 0, 0)
	eyev := prim.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2)
	normalv := prim.NewVector(0, 0, -1)
	light := NewPointLight(prim.NewPoint(0, 0, -10), White())

	got := Lighting(m, NewSphere(), light, position, eyev, normalv, false)
	want := NewColor(1.0, 1.0, 1.0)
	if !got.Equal(&want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingSurfaceInShadow(t *testing.T) {
	m := DefaultMaterial()
	position := prim.NewPoint(0, 0, 0)
	eyev := prim.NewVector(0, 0, -1)
	normalv := prim.NewVector(0, 0, -1)
	light := NewPointLight(prim.NewPoint(0, 0, -10), White())

	got := Lighting(m, NewSphere(), light, position, eyev, normalv, true)
	want := NewColor(0.1, 0.1, 0.1)
	if !got.Equal(&want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingLightBehindSurface(t *testing.T) {
	m := DefaultMaterial()
	position := prim.NewPoint(0, 0, 0)
	eyev := prim.NewVector(0, 0, -1)
	normalv := prim.NewVector(0, 0, -1)
	light := NewPointLight(prim.NewPoint(0, 0, 10), White())

	got := Lighting(m, NewSphere(), light, position, eyev, normalv, false)
	want := NewColor(0.1, 0.1, 0.1)
	if !got.Equal(&want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}
