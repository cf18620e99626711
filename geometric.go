// Planar geometry helpers for Go.
//
// This package works on plain coordinate values: points, directed line
// segments and polygons given as implicitly closed vertex rings in either
// winding. It provides metrics (length, angle, area, centroid, convex hull),
// transforms (rotation, translation, scaling, reflection) and relationship
// predicates (segment intersection, point in polygon, polygon containment and
// intersection).
//
// Every function is pure. Inputs are never modified, and it is safe to call
// anything here from multiple goroutines at once.
//
// Comparisons are made on distances, with an absolute tolerance of Tolerance,
// so a shape behaves the same at any scale until its features approach
// Tolerance itself. A point that is within Tolerance of a polygon's boundary
// is on the boundary, which PointInPolygon treats as not inside.
package geometric

import "github.com/osuushi/geometric/internal"

type Point = internal.Point
type Line = internal.Line
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Bounds = internal.Bounds
type Location = internal.Location
type Winding = internal.Winding

const Tolerance = internal.Tolerance

const (
	Outside    = internal.Outside
	Inside     = internal.Inside
	OnBoundary = internal.OnBoundary
)

const (
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

var (
	ErrDegeneratePolygon = internal.ErrDegeneratePolygon
	ErrEmptyPolygon      = internal.ErrEmptyPolygon
	ErrInvalidArgument   = internal.ErrInvalidArgument
)

// Run fn, converting a geometry panic into an error.
func catch(fn func()) (err error) {
	defer func() {
		recoveredErr := internal.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

// The origin argument is optional everywhere it appears. Leaving it off means
// (0, 0).
func originOrZero(origin []Point) Point {
	if len(origin) > 0 {
		return origin[0]
	}
	return Point{}
}

// Lines

// Angle of the line from start to end, in radians in (-π, π]. A zero-length
// line has angle 0.
func LineAngle(line Line) float64 {
	return line.Angle()
}

func LineLength(line Line) float64 {
	return line.Length()
}

func LineMidpoint(line Line) Point {
	return line.Midpoint()
}

// Point at fraction t along the line, where 0 is the start and 1 is the end.
// Values outside [0, 1] extrapolate along the same direction.
func LineInterpolate(line Line, t float64) Point {
	return line.Interpolate(t)
}

func LineRotate(line Line, angle float64, origin ...Point) Line {
	return line.Rotate(angle, originOrZero(origin))
}

func LineTranslate(line Line, dx, dy float64) Line {
	return line.Translate(dx, dy)
}

func LineReverse(line Line) Line {
	return line.Reverse()
}

// Points

// Rotate counterclockwise by angle radians around origin, which defaults to
// (0, 0).
func PointRotate(point Point, angle float64, origin ...Point) Point {
	return point.Rotate(angle, originOrZero(origin))
}

func PointTranslate(point Point, dx, dy float64) Point {
	return point.Translate(dx, dy)
}

func PointDistance(a, b Point) float64 {
	return a.DistanceTo(b)
}

// Polygons

// Perimeter, including the closing edge from the last point back to the first.
func PolygonLength(polygon Polygon) float64 {
	return polygon.Length()
}

// Signed area. Counterclockwise polygons (in a y-up frame) are positive, and
// clockwise polygons are negative; take the absolute value for plain area.
// Polygons with fewer than 3 points have area 0.
func PolygonArea(polygon Polygon) float64 {
	return polygon.Area()
}

// The area weighted centroid. Fails with ErrDegeneratePolygon when the polygon
// has fewer than 3 points or no area.
func PolygonCentroid(polygon Polygon) (centroid Point, err error) {
	err = catch(func() { centroid = polygon.Centroid() })
	return centroid, err
}

// The average of the vertices. Unlike the centroid, this is defined for any
// non-empty polygon, but it is pulled toward clusters of vertices.
func PolygonMean(polygon Polygon) (mean Point, err error) {
	err = catch(func() { mean = polygon.Mean() })
	return mean, err
}

// Convex hull of the polygon's points, counterclockwise, without collinear
// points. With fewer than 3 distinct points (or all points collinear), the
// result is degenerate: the distinct points, or the two extremes, in
// lexicographic order.
func PolygonHull(polygon Polygon) Polygon {
	return polygon.Hull()
}

func PolygonBounds(polygon Polygon) (bounds Bounds, err error) {
	err = catch(func() { bounds = polygon.Bounds() })
	return bounds, err
}

func PolygonTranslate(polygon Polygon, dx, dy float64) Polygon {
	return polygon.Translate(dx, dy)
}

func PolygonRotate(polygon Polygon, angle float64, origin ...Point) Polygon {
	return polygon.Rotate(angle, originOrZero(origin))
}

func PolygonScale(polygon Polygon, factor float64, origin ...Point) Polygon {
	return polygon.Scale(factor, factor, originOrZero(origin))
}

func PolygonScaleX(polygon Polygon, factor float64, origin ...Point) Polygon {
	return polygon.Scale(factor, 1, originOrZero(origin))
}

func PolygonScaleY(polygon Polygon, factor float64, origin ...Point) Polygon {
	return polygon.Scale(1, factor, originOrZero(origin))
}

// Mirror left to right about the center of the polygon's bounds.
func PolygonReflectX(polygon Polygon) Polygon {
	return polygon.ReflectX()
}

// Mirror top to bottom about the center of the polygon's bounds.
func PolygonReflectY(polygon Polygon) Polygon {
	return polygon.ReflectY()
}

func PolygonReverse(polygon Polygon) Polygon {
	return polygon.Reverse()
}

// The polygon with the given winding, reversing it if necessary.
func PolygonWind(polygon Polygon, winding Winding) Polygon {
	return polygon.Wind(winding)
}

// Does the polygon enclose any area? Polygons thinner than Tolerance do not,
// and have no winding or centroid.
func PolygonHasArea(polygon Polygon) bool {
	return polygon.HasArea()
}

func PolygonIsConvex(polygon Polygon) bool {
	return polygon.IsConvex()
}

// Point at fraction t in [0, 1] of the way around the perimeter.
func PolygonInterpolate(polygon Polygon, t float64) (point Point, err error) {
	err = catch(func() { point = polygon.Interpolate(t) })
	return point, err
}

// A counterclockwise regular polygon with the given number of sides and area.
func PolygonRegular(sides int, area float64, center ...Point) (polygon Polygon, err error) {
	err = catch(func() { polygon = internal.RegularPolygon(sides, area, originOrZero(center)) })
	return polygon, err
}

// Relationships

// Is the point on the infinite line through the segment?
func PointOnLine(point Point, line Line) bool {
	return line.PointIsOn(point)
}

// Is the point strictly left of the line, looking from start to end?
func PointLeftofLine(point Point, line Line) bool {
	return line.PointIsLeft(point)
}

// Is the point strictly right of the line, looking from start to end?
func PointRightofLine(point Point, line Line) bool {
	return line.PointIsRight(point)
}

// Is the point within epsilon of the finite segment?
func PointWithLine(point Point, line Line, epsilon float64) bool {
	return line.DistanceTo(point) <= epsilon
}

// Do the finite segments share any point? Touching at an endpoint, and
// collinear overlap, both count.
func LineIntersectsLine(a, b Line) bool {
	return a.Intersects(b)
}

// Where the segments meet, if they meet at exactly one point.
func LineIntersection(a, b Line) (Point, bool) {
	return a.Intersection(b)
}

// Does the segment meet any edge of the polygon, or lie inside it?
func LineIntersectsPolygon(line Line, polygon Polygon) bool {
	return polygon.IntersectsLine(line)
}

// Even-odd point in polygon. Points on the boundary are not inside.
func PointInPolygon(point Point, polygon Polygon) bool {
	return polygon.ContainsPointByEvenOdd(point)
}

// Is the point on the polygon's boundary?
func PointOnPolygon(point Point, polygon Polygon) bool {
	return polygon.OnBoundary(point)
}

func PointLocation(point Point, polygon Polygon) Location {
	return polygon.Locate(point)
}

// Is inner entirely within outer? Sharing boundary is allowed, but crossing
// it is not.
func PolygonInPolygon(inner, outer Polygon) bool {
	return outer.ContainsPolygon(inner)
}

// Do the polygons share any point, including one containing the other?
func PolygonIntersectsPolygon(a, b Polygon) bool {
	return a.IntersectsPolygon(b)
}

// Angles

func DegreesToRadians(degrees float64) float64 {
	return internal.DegreesToRadians(degrees)
}

func RadiansToDegrees(radians float64) float64 {
	return internal.RadiansToDegrees(radians)
}

// Direction of a ray after reflecting off a surface, in radians in [0, 2π).
func AngleReflect(incidence, surface float64) float64 {
	return internal.AngleReflect(incidence, surface)
}
