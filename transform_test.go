package raytracer

import (
	"math"
	"testing"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

func TestTranslatePoint(t *testing.T) {
	tr := Identity().Translate(5, -3, 2)
	p := prim.NewPoint(-3, 4, 5)
	got := tr.TransformPoint(p)
	want := prim.NewPoint(2, 1, 7)
	if !got.Equal(want) {
		t.Errorf("TransformPoint() = %+v, want %+v", got, want)
	}
}

func TestTranslateDoesNotAffectVectors(t *testing.T) {
	tr := Identity().Translate(5, -3, 2)
	v := prim.NewVector(-3, 4, 5)
	got := tr.TransformVector(v)
	if !got.Equal(v) {
		t.Errorf("TransformVector() = %+v, want unchanged %+v", got, v)
	}
}

func TestScalePoint(t *testing.T) {
	tr := Identity().Scale(2, 3, 4)
	p := prim.NewPoint(-4, 6, 8)
	got := tr.TransformPoint(p)
	want := prim.NewPoint(-8, 18, 32)
	if !got.Equal(want) {
		t.Errorf("TransformPoint() = %+v, want %+v", got, want)
	}
}

func TestRotateXHalfQuarter(t *testing.T) {
	tr := Identity().RotateX(math.Pi / 4)
	p := prim.NewPoint(0, 1, 0)
	got := tr.TransformPoint(p)
	want := prim.NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)
	if !got.Equal(want) {
		t.Errorf("RotateX(pi/4) = %+v, want %+v", got, want)
	}
}

func TestChainedTransformsApplyOutermostLast(t *testing.T) {
	p := prim.NewPoint(1, 0, 1)
	tr := Identity().RotateX(math.Pi / 2).Scale(5, 5, 5).Translate(10, 5, 7)
	got := tr.TransformPoint(p)
	want := prim.NewPoint(15, 0, 7)
	if !got.Equal(want) {
		t.Errorf("chained transform = %+v, want %+v", got, want)
	}
}

func TestInverseUndoesTransform(t *testing.T) {
	tr := Identity().Translate(5, -3, 2).Scale(2, 2, 2)
	p := prim.NewPoint(-3, 4, 5)
	got := tr.Inverse().TransformPoint(tr.TransformPoint(p))
	if !got.Equal(p) {
		t.Errorf("Inverse() roundtrip = %+v, want %+v", got, p)
	}
}

func TestViewTransformDefaultOrientationIsIdentity(t *testing.T) {
	from := prim.NewPoint(0, 0, 0)
	to := prim.NewPoint(0, 0, -1)
	up := prim.NewVector(0, 1, 0)
	got := ViewTransform(from, to, up)
	if !got.Matrix().Equal(prim.Identity4()) {
		t.Errorf("ViewTransform(default) = %+v, want identity", got.Matrix())
	}
}

func TestViewTransformMovesWorld(t *testing.T) {
	from := prim.NewPoint(0, 0, 8)
	to := prim.NewPoint(0, 0, 0)
	up := prim.NewVector(0, 1, 0)
	got := ViewTransform(from, to, up)
	want := Identity().Translate(0, 0, -8)
	if !got.Matrix().Equal(want.Matrix()) {
		t.Errorf("ViewTransform(0,0,8) = %+v, want %+v", got.Matrix(), want.Matrix())
	}
}
