package geometric

import "github.com/ctessum/geom"

// Conversions to and from github.com/ctessum/geom, for handing shapes to code
// that does clipping, projection or spatial indexing.

// The ring is closed by repeating the first point, as geom expects.
func ToGeom(polygon Polygon) geom.Polygon {
	if len(polygon.Points) == 0 {
		return geom.Polygon{}
	}
	ring := make([]geom.Point, len(polygon.Points)+1)
	for i, p := range polygon.Points {
		ring[i] = geom.Point{X: p.X, Y: p.Y}
	}
	ring[len(polygon.Points)] = ring[0]
	return geom.Polygon{ring}
}

// Convert a list to a single geom polygon, one ring per entry. geom decides
// which rings are holes by nesting.
func ListToGeom(polygons PolygonList) geom.Polygon {
	result := make(geom.Polygon, 0, len(polygons))
	for _, poly := range polygons {
		result = append(result, ToGeom(poly)...)
	}
	return result
}

// Each ring becomes its own polygon. Holes are not marked; use
// PolygonList.ContainsPointByEvenOdd to treat nested rings as holes. A closing
// point that repeats the first is dropped.
func FromGeom(polygon geom.Polygon) PolygonList {
	result := make(PolygonList, 0, len(polygon))
	for _, ring := range polygon {
		points := make([]Point, 0, len(ring))
		for _, p := range ring {
			points = append(points, Point{X: p.X, Y: p.Y})
		}
		if len(points) > 1 && points[0].Equals(points[len(points)-1]) {
			points = points[:len(points)-1]
		}
		result = append(result, Polygon{Points: points})
	}
	return result
}

func LineToGeom(line Line) geom.LineString {
	return geom.LineString{
		{X: line.Start.X, Y: line.Start.Y},
		{X: line.End.X, Y: line.End.Y},
	}
}
