package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewPointIsPoint(t *testing.T) {
	p := NewPoint(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("NewPoint(4,-4,3) = %+v, want w=1", p)
	}
}

func TestNewVectorIsVector(t *testing.T) {
	v := NewVector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("NewVector(4,-4,3) = %+v, want w=0", v)
	}
}

func TestAddPointAndVector(t *testing.T) {
	p := NewPoint(3, -2, 5)
	v := NewVector(-2, 3, 1)
	got := p.Add(v)
	want := NewPoint(1, 1, 6)
	if !got.Equal(want) {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestSubtractingTwoPointsGivesVector(t *testing.T) {
	p1 := NewPoint(3, 2, 1)
	p2 := NewPoint(5, 6, 7)
	got := p1.Sub(p2)
	want := NewVector(-2, -4, -6)
	if !got.Equal(want) || !got.IsVector() {
		t.Errorf("Sub() = %+v, want %+v", got, want)
	}
}

func TestNegatingATuple(t *testing.T) {
	a := Tuple{1, -2, 3, -4}
	got := a.Neg()
	want := Tuple{-1, 2, -3, 4}
	if !got.Equal(want) {
		t.Errorf("Neg() = %+v, want %+v", got, want)
	}
}

func TestScalingATuple(t *testing.T) {
	a := Tuple{1, -2, 3, -4}
	got := a.Scale(3.5)
	want := Tuple{3.5, -7, 10.5, -14}
	if !got.Equal(want) {
		t.Errorf("Scale(3.5) = %+v, want %+v", got, want)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		v    Tuple
		want float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tt := range tests {
		if got := tt.v.Magnitude(); !floatEqual(got, tt.want) {
			t.Errorf("Magnitude(%+v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNormalizeIsUnit(t *testing.T) {
	got := NewVector(1, 2, 3).Normalize().Magnitude()
	if diff := cmp.Diff(got, 1.0, cmpopts.EquateApprox(1e-9, 0)); diff != "" {
		t.Errorf("Normalize().Magnitude() mismatch (-got +want):\n%s", diff)
	}
}

func TestDotProduct(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)
	if got, want := a.Dot(b), 20.0; got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestCrossProduct(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)
	if got, want := a.Cross(b), NewVector(-1, 2, -1); !got.Equal(want) {
		t.Errorf("a x b = %+v, want %+v", got, want)
	}
	if got, want := b.Cross(a), NewVector(1, -2, 1); !got.Equal(want) {
		t.Errorf("b x a = %+v, want %+v", got, want)
	}
}

func TestReflectAt45Degrees(t *testing.T) {
	v := NewVector(1, -1, 0)
	n := NewVector(0, 1, 0)
	got := v.Reflect(n)
	want := NewVector(1, 1, 0)
	if !got.Equal(want) {
		t.Errorf("Reflect() = %+v, want %+v", got, want)
	}
}

func TestReflectOffSlantedSurface(t *testing.T) {
	v := NewVector(0, -1, 0)
	n := NewVector(math.Sqrt2/2, math.Sqrt2/2, 0)
	got := v.Reflect(n)
	want := NewVector(1, 0, 0)
	if !got.Equal(want) {
		t.Errorf("Reflect() = %+v, want %+v", got, want)
	}
}
