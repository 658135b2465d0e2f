package mathutil

import "math"

// DegenerateEpsilon is the smallest |det| of the barycentric system that is
// still treated as a proper triangle.
const DegenerateEpsilon = 1e-6

// Vector is satisfied by the float vector types of this package.
type Vector[V any] interface {
	Sub(V) V
	Dot(V) float64
}

// Barycentric returns the weights (alpha, beta, gamma) of p with respect to
// the triangle abc, so that p = alpha*a + beta*b + gamma*c.
//
// The 2×2 system built from v0=p-a, v1=b-a, v2=c-a is solved with Cramer's
// rule. For a degenerate triangle (|det| < DegenerateEpsilon) every
// component of the result is NaN; callers check the first one.
func Barycentric[V Vector[V]](p, a, b, c V) Vec3 {
	v0 := p.Sub(a)
	v1 := b.Sub(a)
	v2 := c.Sub(a)

	d11 := v1.Dot(v1)
	d22 := v2.Dot(v2)
	d12 := v1.Dot(v2)
	d01 := v0.Dot(v1)
	d02 := v0.Dot(v2)

	det := d11*d22 - d12*d12
	if math.Abs(det) < DegenerateEpsilon {
		nan := math.NaN()
		return Vec3{nan, nan, nan}
	}

	inv := 1 / det
	beta := (d22*d01 - d12*d02) * inv
	gamma := (d11*d02 - d12*d01) * inv
	return Vec3{1 - beta - gamma, beta, gamma}
}

// InsideTriangle reports whether barycentric weights describe a point inside
// or on the boundary of the triangle.
func InsideTriangle(bc Vec3) bool {
	return bc[1] >= 0 && bc[2] >= 0 && bc[1]+bc[2] <= 1
}
