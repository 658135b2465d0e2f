package mathutil

// Vec2 is a 2-component vector, used for screen-space sample points.
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Vec2i is an integer pixel coordinate.
type Vec2i [2]int

func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a[0] - b[0], a[1] - b[1]}
}

func (a Vec2i) Dot(b Vec2i) int {
	return a[0]*b[0] + a[1]*b[1]
}
