package internal

import (
	"fmt"
	"math"
)

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Z component of the 3D cross product, treating both points as vectors.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Tolerance based equality of both coordinates.
func (p Point) Equals(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Exact lexicographic ordering, X first, then Y. This is the sweep order for
// the hull. It is exact so that it stays a strict weak ordering; near
// duplicates end up adjacent and are merged after sorting.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Translate(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Rotate counterclockwise by angle radians around origin.
func (p Point) Rotate(angle float64, origin Point) Point {
	sin, cos := math.Sincos(angle)
	x := p.X - origin.X
	y := p.Y - origin.Y
	return Point{
		X: x*cos - y*sin + origin.X,
		Y: x*sin + y*cos + origin.Y,
	}
}

// Scale the offset from origin by fx horizontally and fy vertically.
func (p Point) ScaleAround(fx, fy float64, origin Point) Point {
	return Point{
		X: origin.X + (p.X-origin.X)*fx,
		Y: origin.Y + (p.Y-origin.Y)*fy,
	}
}

// Twice the signed area of the triangle o, a, b. Positive when o -> a -> b
// turns left.
func orient(o, a, b Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// Orientation sign with tolerance: 1 for a left turn, -1 for a right turn, 0
// for collinear. The cross product scales with |oa|, so it is divided back out
// to compare b's distance from the line through o and a against Tolerance. A
// base shorter than Tolerance has no direction, and everything is collinear
// with it.
func orientSign(o, a, b Point) int {
	base := o.DistanceTo(a)
	if base <= Tolerance {
		return 0
	}
	distance := orient(o, a, b) / base
	switch {
	case distance > Tolerance:
		return 1
	case distance < -Tolerance:
		return -1
	}
	return 0
}
