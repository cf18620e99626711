package internal

import "sort"

// Convex hull by Andrew's monotone chain. Points are swept in lexicographic
// order to build the lower chain, then in reverse to build the upper chain.
// Any point that fails to make a strict left turn is popped, so collinear
// points never survive.
//
// The result is counterclockwise, starts from the lexicographically lowest
// point and contains no duplicates. If there are fewer than three distinct
// points there is no hull interior, and the distinct points are returned in
// sorted order instead. Likewise, if every point is collinear, only the two
// extremes are left.
func ConvexHull(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	sorted = dedupeSorted(sorted)

	if len(sorted) < 3 {
		return sorted
	}

	lower := buildChain(sorted)
	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	upper := buildChain(reversed)

	// Each chain ends where the other begins, so drop the last point of both.
	hull := make([]Point, 0, lower.Len()+upper.Len()-2)
	hull = append(hull, lower[:lower.Len()-1]...)
	hull = append(hull, upper[:upper.Len()-1]...)
	return hull
}

func buildChain(points []Point) PointStack {
	chain := make(PointStack, 0, len(points))
	for _, p := range points {
		for chain.Len() >= 2 && orientSign(chain.PeekSecond(), chain.Peek(), p) <= 0 {
			chain.Pop()
		}
		chain.Push(p)
	}
	return chain
}

// Drop points equal (within tolerance) to one already kept, keeping the first.
// The sort is exact, so a near duplicate can be separated from its twin by
// points with a slightly smaller X. Every such twin lies within Tolerance in X,
// so only that window of kept points is searched.
func dedupeSorted(points []Point) []Point {
	result := points[:0]
	for _, p := range points {
		duplicate := false
		for j := len(result) - 1; j >= 0 && p.X-result[j].X <= Tolerance; j-- {
			if result[j].Equals(p) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, p)
		}
	}
	return result
}

func (poly Polygon) Hull() Polygon {
	return Polygon{Points: ConvexHull(poly.Points)}
}
