package geometric

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cShape = Polygon{[]Point{{0, 0}, {6, 0}, {6, 2}, {2, 2}, {2, 4}, {6, 4}, {6, 6}, {0, 6}}}

func TestToGeom(t *testing.T) {
	g := ToGeom(cShape)
	require.Len(t, g, 1)
	assert.Len(t, g[0], len(cShape.Points)+1)
	assert.Equal(t, g[0][0], g[0][len(g[0])-1])

	for _, poly := range []Polygon{cShape, cShape.Reverse(), triangle} {
		assert.InDelta(t, math.Abs(PolygonArea(poly)), ToGeom(poly).Area(), Tolerance)
	}

	c := ToGeom(cShape).Centroid()
	centroid, err := PolygonCentroid(cShape)
	require.NoError(t, err)
	assert.InDelta(t, centroid.X, c.X, Tolerance)
	assert.InDelta(t, centroid.Y, c.Y, Tolerance)

	assert.Empty(t, ToGeom(Polygon{}))
}

func TestToGeomAgreesOnLocation(t *testing.T) {
	g := ToGeom(cShape)
	for _, p := range []Point{{1, 1}, {4, 3}, {5, 5}, {7, 1}, {1, 5}} {
		var want geom.WithinStatus
		switch PointLocation(p, cShape) {
		case Inside:
			want = geom.Inside
		case Outside:
			want = geom.Outside
		}
		assert.Equal(t, want, geom.Point{X: p.X, Y: p.Y}.Within(g), "point %s", p)
	}
}

func TestListToGeom(t *testing.T) {
	outer := Polygon{[]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	hole := Polygon{[]Point{{3, 3}, {3, 7}, {7, 7}, {7, 3}}}
	g := ListToGeom(PolygonList{outer, hole})
	require.Len(t, g, 2)
	// The nested ring counts as a hole
	assert.InDelta(t, 84, g.Area(), Tolerance)
}

func TestFromGeom(t *testing.T) {
	g := geom.Polygon{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
		{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	}
	list := FromGeom(g)
	require.Len(t, list, 2)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, list[0].Points)
	assert.Equal(t, []Point{{1, 1}, {1, 2}, {2, 2}}, list[1].Points)

	roundTrip := FromGeom(ToGeom(cShape))
	require.Len(t, roundTrip, 1)
	assert.Equal(t, cShape, roundTrip[0])
}

func TestLineToGeom(t *testing.T) {
	line := Line{Point{1, 1}, Point{4, 5}}
	assert.Equal(t, LineLength(line), LineToGeom(line).Length())
}
