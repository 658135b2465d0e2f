package mathutil

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestBarycentric(t *testing.T) {
	a, b, c := Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}
	tests := []struct {
		name string
		p    Vec2
		want Vec3
	}{
		{"vertex a", Vec2{0, 0}, Vec3{1, 0, 0}},
		{"vertex b", Vec2{1, 0}, Vec3{0, 1, 0}},
		{"vertex c", Vec2{0, 1}, Vec3{0, 0, 1}},
		{"centroid", Vec2{1.0 / 3, 1.0 / 3}, Vec3{1.0 / 3, 1.0 / 3, 1.0 / 3}},
		{"edge midpoint", Vec2{0.5, 0.5}, Vec3{0, 0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Barycentric(tt.p, a, b, c)
			if got.Sub(tt.want).Len() > 1e-9 {
				t.Errorf("Barycentric(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if !InsideTriangle(got) {
				t.Errorf("InsideTriangle(%v) = false, want true", got)
			}
		})
	}

	t.Run("outside", func(t *testing.T) {
		got := Barycentric(Vec2{-1, -1}, a, b, c)
		if InsideTriangle(got) {
			t.Errorf("InsideTriangle(%v) = true for a point outside", got)
		}
	})
}

func TestBarycentricInteriorPoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		a := Vec2{rng.Float64() * 100, rng.Float64() * 100}
		b := Vec2{rng.Float64() * 100, rng.Float64() * 100}
		c := Vec2{rng.Float64() * 100, rng.Float64() * 100}
		area := b.Sub(a)[0]*c.Sub(a)[1] - b.Sub(a)[1]*c.Sub(a)[0]
		if math.Abs(area) < 1 {
			continue
		}

		// Random strictly interior point from normalized positive weights.
		w := Vec3{rng.Float64() + 0.01, rng.Float64() + 0.01, rng.Float64() + 0.01}
		s := w[0] + w[1] + w[2]
		w = w.Scale(1 / s)
		p := Vec2{
			w[0]*a[0] + w[1]*b[0] + w[2]*c[0],
			w[0]*a[1] + w[1]*b[1] + w[2]*c[1],
		}

		got := Barycentric(p, a, b, c)
		if got.IsNaN() {
			t.Fatalf("Barycentric(%v, %v, %v, %v) returned NaN for area %v", p, a, b, c, area)
		}
		if sum := got[0] + got[1] + got[2]; math.Abs(sum-1) > 1e-9 {
			t.Errorf("weights sum = %v, want 1", sum)
		}
		for k := 0; k < 3; k++ {
			if got[k] < -1e-9 || got[k] > 1+1e-9 {
				t.Errorf("weight[%d] = %v, want within [0,1]", k, got[k])
			}
		}
		if got.Sub(w).Len() > 1e-6 {
			t.Errorf("Barycentric() = %v, want %v", got, w)
		}
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Vec2
	}{
		{"collinear", Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 2}},
		{"horizontal", Vec2{0, 5}, Vec2{3, 5}, Vec2{7, 5}},
		{"coincident", Vec2{4, 4}, Vec2{4, 4}, Vec2{4, 4}},
		{"two equal", Vec2{1, 2}, Vec2{1, 2}, Vec2{6, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Barycentric(Vec2{0.5, 0.5}, tt.a, tt.b, tt.c)
			if !math.IsNaN(got[0]) {
				t.Errorf("Barycentric() = %v, want NaN sentinel", got)
			}
		})
	}
}

func TestBarycentric3D(t *testing.T) {
	a, b, c := V3(0, 0, 0), V3(2, 0, 0), V3(0, 2, 2)
	p := a.Scale(0.2).Add(b.Scale(0.3)).Add(c.Scale(0.5))
	got := Barycentric(p, a, b, c)
	if want := (Vec3{0.2, 0.3, 0.5}); got.Sub(want).Len() > 1e-9 {
		t.Errorf("Barycentric() = %v, want %v", got, want)
	}
}
