package internal

// Boundary policy: a point within Tolerance of an edge is on the boundary,
// which is neither inside nor outside. ContainsPointByEvenOdd is strict, so
// boundary points are not contained; callers who want closed containment use
// Locate.

// Crossing count helper for even odd rule. Each edge is treated as half-open
// in y, so a ray passing exactly through a vertex is counted once for the pair
// of edges that meet there, or not at all if both edges are on the same side.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// x of the edge at the ray's height. The division is safe because the
		// edge straddles p.Y, so it can't be horizontal.
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) OnBoundary(p Point) bool {
	for _, edge := range poly.Edges() {
		if edge.ContainsPoint(p) {
			return true
		}
	}
	// A single point polygon has no edges, but the point is still its boundary.
	return len(poly.Points) == 1 && poly.Points[0].Equals(p)
}

func (poly Polygon) Locate(p Point) Location {
	if poly.OnBoundary(p) {
		return OnBoundary
	}
	if len(poly.Points) >= 3 && poly.CrossingCount(p)%2 == 1 {
		return Inside
	}
	return Outside
}

// Even-odd point in polygon test, excluding the boundary.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.Locate(p) == Inside
}

// Does the segment touch the polygon at all? Either it meets an edge, or it
// has no contact with the boundary and sits entirely inside.
func (poly Polygon) IntersectsLine(l Line) bool {
	for _, edge := range poly.Edges() {
		if edge.Intersects(l) {
			return true
		}
	}
	return poly.Locate(l.Start) == Inside
}

// Is inner contained by poly, boundary included? Every vertex of inner must be
// inside or on the boundary, no edge of inner may cross an edge of poly, and
// the midpoint of every edge of inner must not be outside. The midpoint check
// catches an edge that leaves through one reflex vertex of poly and comes back
// through another without ever properly crossing an edge.
func (poly Polygon) ContainsPolygon(inner Polygon) bool {
	if len(poly.Points) < 3 || len(inner.Points) < 3 {
		return false
	}
	for _, p := range inner.Points {
		if poly.Locate(p) == Outside {
			return false
		}
	}
	innerEdges := inner.Edges()
	outerEdges := poly.Edges()
	for _, innerEdge := range innerEdges {
		for _, outerEdge := range outerEdges {
			if innerEdge.Crosses(outerEdge) {
				return false
			}
		}
		if poly.Locate(innerEdge.Midpoint()) == Outside {
			return false
		}
	}
	return true
}

// Do the polygons share any point? Edges meeting covers every case except
// one polygon sitting entirely inside the other, which is caught by checking
// a single vertex of each.
func (poly Polygon) IntersectsPolygon(other Polygon) bool {
	if len(poly.Points) == 0 || len(other.Points) == 0 {
		return false
	}
	for _, edge := range poly.Edges() {
		for _, otherEdge := range other.Edges() {
			if edge.Intersects(otherEdge) {
				return true
			}
		}
	}
	return other.Locate(poly.Points[0]) != Outside || poly.Locate(other.Points[0]) != Outside
}

// Even-odd containment across the whole list, so a polygon inside another
// acts as a hole.
func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, poly := range list {
		if poly.OnBoundary(p) {
			return false
		}
		if len(poly.Points) >= 3 {
			count += poly.CrossingCount(p)
		}
	}
	return count%2 == 1
}
