package internal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Edge i runs from vertex i to vertex i+1, wrapping around to close the
// polygon.
func (poly Polygon) Edge(i int) Line {
	n := len(poly.Points)
	return Line{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

// All edges, including the closing edge. A polygon with fewer than two points
// has no edges.
func (poly Polygon) Edges() []Line {
	if len(poly.Points) < 2 {
		return nil
	}
	edges := make([]Line, len(poly.Points))
	for i := range poly.Points {
		edges[i] = poly.Edge(i)
	}
	return edges
}

// Perimeter, including the closing edge.
func (poly Polygon) Length() float64 {
	edges := poly.Edges()
	lengths := make([]float64, len(edges))
	for i, edge := range edges {
		lengths[i] = edge.Length()
	}
	return floats.Sum(lengths)
}

// Signed area by the shoelace formula. Counterclockwise polygons are positive.
// Fewer than three points enclose nothing, so the area is 0.
func (poly Polygon) Area() float64 {
	if len(poly.Points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.Cross(next)
	}
	return sum / 2
}

// Does the polygon enclose anything? Area over half the perimeter is roughly
// the polygon's thickness, which must exceed Tolerance. Comparing the area
// directly would make the answer depend on scale.
func (poly Polygon) HasArea() bool {
	if len(poly.Points) < 3 {
		return false
	}
	return math.Abs(poly.Area()) > Tolerance*poly.Length()/2
}

func IsCCW(poly Polygon) bool {
	return poly.HasArea() && poly.Area() > 0
}

func IsCW(poly Polygon) bool {
	return poly.HasArea() && poly.Area() < 0
}

// Area weighted centroid. Panics with ErrDegeneratePolygon if the polygon
// has no area to weight by.
func (poly Polygon) Centroid() Point {
	if len(poly.Points) < 3 {
		fatalf(ErrDegeneratePolygon, "centroid needs at least 3 points, got %d", len(poly.Points))
	}
	if !poly.HasArea() {
		fatalf(ErrDegeneratePolygon, "centroid of polygon with zero area")
	}
	area := poly.Area()

	var cx, cy float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		cross := p.Cross(next)
		cx += (p.X + next.X) * cross
		cy += (p.Y + next.Y) * cross
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// Plain average of the vertices. This is cheaper than the centroid, but is
// biased toward wherever the vertices are densest.
func (poly Polygon) Mean() Point {
	if len(poly.Points) == 0 {
		fatalf(ErrEmptyPolygon, "mean of polygon with no points")
	}
	xs := make([]float64, len(poly.Points))
	ys := make([]float64, len(poly.Points))
	for i, p := range poly.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	n := float64(len(poly.Points))
	return Point{floats.Sum(xs) / n, floats.Sum(ys) / n}
}

func (poly Polygon) Bounds() Bounds {
	if len(poly.Points) == 0 {
		fatalf(ErrEmptyPolygon, "bounds of polygon with no points")
	}
	b := Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range poly.Points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

func (b Bounds) Center() Point {
	return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Apply fn to every vertex, building a new polygon.
func (poly Polygon) mapPoints(fn func(Point) Point) Polygon {
	points := make([]Point, len(poly.Points))
	for i, p := range poly.Points {
		points[i] = fn(p)
	}
	return Polygon{Points: points}
}

func (poly Polygon) Translate(dx, dy float64) Polygon {
	return poly.mapPoints(func(p Point) Point { return p.Translate(dx, dy) })
}

func (poly Polygon) Rotate(angle float64, origin Point) Polygon {
	return poly.mapPoints(func(p Point) Point { return p.Rotate(angle, origin) })
}

func (poly Polygon) Scale(fx, fy float64, origin Point) Polygon {
	return poly.mapPoints(func(p Point) Point { return p.ScaleAround(fx, fy, origin) })
}

// Mirror left to right about the vertical line through the center of the
// bounds. The winding flips, so the result is reversed to keep it.
func (poly Polygon) ReflectX() Polygon {
	if len(poly.Points) == 0 {
		return Polygon{}
	}
	return poly.Scale(-1, 1, poly.Bounds().Center()).Reverse()
}

// Mirror top to bottom about the horizontal line through the center of the
// bounds. As with ReflectX, the mirror flips the winding and the result is
// reversed to restore it.
func (poly Polygon) ReflectY() Polygon {
	if len(poly.Points) == 0 {
		return Polygon{}
	}
	return poly.Scale(1, -1, poly.Bounds().Center()).Reverse()
}

// Polygon with the requested winding. Polygons without area have no winding
// and are returned as is.
func (poly Polygon) Wind(winding Winding) Polygon {
	if (winding == CounterClockwise && IsCW(poly)) || (winding == Clockwise && IsCCW(poly)) {
		return poly.Reverse()
	}
	return poly.mapPoints(func(p Point) Point { return p })
}

// Point at fraction t of the way around the perimeter, starting from the
// first vertex.
func (poly Polygon) Interpolate(t float64) Point {
	if len(poly.Points) == 0 {
		fatalf(ErrEmptyPolygon, "interpolate on polygon with no points")
	}
	if t < 0 || t > 1 {
		fatalf(ErrInvalidArgument, "interpolation fraction %g outside [0, 1]", t)
	}
	perimeter := poly.Length()
	if perimeter == 0 {
		return poly.Points[0]
	}
	remaining := t * perimeter
	for _, edge := range poly.Edges() {
		length := edge.Length()
		if remaining <= length {
			if length == 0 {
				return edge.Start
			}
			return edge.Interpolate(remaining / length)
		}
		remaining -= length
	}
	// Rounding can leave a sliver past the last edge; that is the start again.
	return poly.Points[0]
}

// Convexity check in the style of a cross product scan: every turn must have
// the same sign. Collinear vertices are allowed. Fewer than three points, or a
// polygon with no area, is not convex.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	var positive, negative int
	for i := range poly.Points {
		switch orientSign(poly.Points[i], poly.Points[CircularIndex(i+1, n)], poly.Points[CircularIndex(i+2, n)]) {
		case 1:
			positive++
		case -1:
			negative++
		}
		if positive > 0 && negative > 0 {
			return false
		}
	}
	if positive+negative == 0 {
		return false
	}
	// A star winds more than once while every turn agrees, so also require the
	// edge directions to sweep exactly one full turn.
	var sweep float64
	for i := range poly.Points {
		a := poly.Edge(i).Vector()
		b := poly.Edge(i + 1).Vector()
		sweep += math.Atan2(a.Cross(b), a.Dot(b))
	}
	return math.Abs(math.Abs(sweep)-2*math.Pi) < 1e-3
}

// Regular polygon with the given number of sides and area, centered on center,
// wound counterclockwise with its first vertex directly right of center.
func RegularPolygon(sides int, area float64, center Point) Polygon {
	if sides < 3 {
		fatalf(ErrInvalidArgument, "regular polygon needs at least 3 sides, got %d", sides)
	}
	if area <= 0 {
		fatalf(ErrInvalidArgument, "regular polygon area must be positive, got %g", area)
	}
	n := float64(sides)
	// area = n/2 * r² * sin(2π/n), solved for the circumradius r.
	radius := math.Sqrt(2 * area / (n * math.Sin(2*math.Pi/n)))
	points := make([]Point, sides)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / n
		points[i] = Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return Polygon{Points: points}
}

func (list PolygonList) Bounds() Bounds {
	var all []Point
	for _, poly := range list {
		all = append(all, poly.Points...)
	}
	return Polygon{Points: all}.Bounds()
}
