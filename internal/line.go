package internal

import (
	"fmt"
	"math"
)

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}

func (l Line) Vector() Point {
	return l.End.Sub(l.Start)
}

func (l Line) IsDegenerate() bool {
	return l.Start.Equals(l.End)
}

// Angle of the direction from Start to End in radians, in (-π, π]. A
// zero-length line has angle 0.
func (l Line) Angle() float64 {
	if l.IsDegenerate() {
		return 0
	}
	v := l.Vector()
	angle := math.Atan2(v.Y, v.X)
	// Atan2 gives -π for a negative zero dy, which is the same direction as π.
	if angle == -math.Pi {
		return math.Pi
	}
	return angle
}

func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

func (l Line) Midpoint() Point {
	return Point{(l.Start.X + l.End.X) / 2, (l.Start.Y + l.End.Y) / 2}
}

// Point at fraction t along the line. t outside of [0, 1] extrapolates.
func (l Line) Interpolate(t float64) Point {
	return l.Start.Add(l.Vector().Scale(t))
}

func (l Line) Reverse() Line {
	return Line{l.End, l.Start}
}

func (l Line) Translate(dx, dy float64) Line {
	return Line{l.Start.Translate(dx, dy), l.End.Translate(dx, dy)}
}

func (l Line) Rotate(angle float64, origin Point) Line {
	return Line{l.Start.Rotate(angle, origin), l.End.Rotate(angle, origin)}
}

// Side tests against the infinite line through the segment. Left is relative
// to travelling from Start to End, so in a y-up frame a counterclockwise
// polygon has its interior on the left of every edge.
func (l Line) PointIsLeft(p Point) bool {
	return orientSign(l.Start, l.End, p) > 0
}

func (l Line) PointIsRight(p Point) bool {
	return orientSign(l.Start, l.End, p) < 0
}

// Is the point on the infinite line through the segment? A degenerate line
// does not define a direction, so only its own endpoint is on it.
func (l Line) PointIsOn(p Point) bool {
	if l.IsDegenerate() {
		return l.Start.Equals(p)
	}
	return orientSign(l.Start, l.End, p) == 0
}

// Is the point on the finite segment, endpoints included?
func (l Line) ContainsPoint(p Point) bool {
	return l.PointIsOn(p) && l.boxContains(p)
}

// Distance from the point to the closest point of the finite segment.
func (l Line) DistanceTo(p Point) float64 {
	v := l.Vector()
	lengthSquared := v.Dot(v)
	if lengthSquared == 0 {
		return l.Start.DistanceTo(p)
	}
	t := p.Sub(l.Start).Dot(v) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return l.Interpolate(t).DistanceTo(p)
}

// Bounding box check, assuming the point is already known to be collinear.
func (l Line) boxContains(p Point) bool {
	return p.X >= math.Min(l.Start.X, l.End.X)-Tolerance &&
		p.X <= math.Max(l.Start.X, l.End.X)+Tolerance &&
		p.Y >= math.Min(l.Start.Y, l.End.Y)-Tolerance &&
		p.Y <= math.Max(l.Start.Y, l.End.Y)+Tolerance
}

// Do the two closed segments share at least one point? Touching endpoints and
// collinear overlap both count.
func (l Line) Intersects(other Line) bool {
	d1 := orientSign(other.Start, other.End, l.Start)
	d2 := orientSign(other.Start, other.End, l.End)
	d3 := orientSign(l.Start, l.End, other.Start)
	d4 := orientSign(l.Start, l.End, other.End)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	// Any endpoint lying on the other segment is an intersection. This also
	// covers collinear overlap, since at least one endpoint of an overlapping
	// pair must lie within the other segment.
	return (d1 == 0 && other.boxContains(l.Start)) ||
		(d2 == 0 && other.boxContains(l.End)) ||
		(d3 == 0 && l.boxContains(other.Start)) ||
		(d4 == 0 && l.boxContains(other.End))
}

// Do the segments cross at a single point interior to both? Touching at an
// endpoint, or lying along one another, is not a crossing.
func (l Line) Crosses(other Line) bool {
	d1 := orientSign(other.Start, other.End, l.Start)
	d2 := orientSign(other.Start, other.End, l.End)
	d3 := orientSign(l.Start, l.End, other.Start)
	d4 := orientSign(l.Start, l.End, other.End)
	return d1*d2 < 0 && d3*d4 < 0
}

// The intersection point of the two segments, if they intersect at exactly one
// point. Collinear segments overlapping along a stretch have no unique
// intersection, so ok is false for them even though Intersects is true.
func (l Line) Intersection(other Line) (p Point, ok bool) {
	if !l.Intersects(other) {
		return Point{}, false
	}

	r := l.Vector()
	s := other.Vector()
	// The cross product is |r||s|sinθ, so the parallel test is on the angle.
	denominator := r.Cross(s)
	if math.Abs(denominator) > Tolerance*r.DistanceTo(Point{})*s.DistanceTo(Point{}) {
		t := other.Start.Sub(l.Start).Cross(s) / denominator
		return l.Interpolate(t), true
	}

	// Parallel and intersecting, so collinear (or degenerate). The shared
	// points are the endpoints that lie on the other segment; it is unique only
	// if they all coincide.
	var shared []Point
	for _, candidate := range []struct {
		point Point
		on    Line
	}{
		{l.Start, other},
		{l.End, other},
		{other.Start, l},
		{other.End, l},
	} {
		if !candidate.on.ContainsPoint(candidate.point) {
			continue
		}
		if len(shared) > 0 && !shared[0].Equals(candidate.point) {
			return Point{}, false
		}
		shared = append(shared, candidate.point)
	}
	if len(shared) == 0 {
		return Point{}, false
	}
	return shared[0], true
}
