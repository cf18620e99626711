package internal

type Point struct {
	X float64
	Y float64
}

// A directed segment. Direction only matters for the angle and for the side
// tests, where "left" is relative to travelling from Start to End.
type Line struct {
	Start Point
	End   Point
}

// Polygons are implicitly closed: the last point connects back to the first,
// and the first point should not be repeated at the end. Either winding is
// accepted everywhere. Nothing in this package modifies Points in place;
// transforms always build a new slice.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

type Bounds struct {
	Min, Max Point
}

// Where a point sits relative to a polygon.
type Location int

const (
	Outside Location = iota
	Inside
	OnBoundary
)

type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

type PointStack []Point
