package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointStack(t *testing.T) {
	var stack PointStack
	assert.True(t, stack.Empty())
	assert.Equal(t, Point{}, stack.Peek(), "peek on empty stack")
	assert.Equal(t, Point{}, stack.Pop(), "pop on empty stack")

	for i := 0; i < 4; i++ {
		stack.Push(Point{float64(i), -float64(i)})
	}
	assert.Equal(t, 4, stack.Len())
	assert.Equal(t, Point{3, -3}, stack.Peek())
	assert.Equal(t, Point{2, -2}, stack.PeekSecond())

	// Last in, first out
	for i := 3; i >= 0; i-- {
		require.False(t, stack.Empty())
		assert.Equal(t, Point{float64(i), -float64(i)}, stack.Pop())
	}
	assert.True(t, stack.Empty())
	assert.Equal(t, Point{}, stack.PeekSecond())
}

func TestCircularIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{7, 3, 1},
		{-1, 3, 2},
		{-3, 3, 0},
		{-7, 3, 2},
		{5, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CircularIndex(tt.i, tt.n), "CircularIndex(%d, %d)", tt.i, tt.n)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.True(t, Equal(0.1+0.2, 0.3))
	assert.False(t, Equal(1, 1+Tolerance*2))
}

func TestPolygonSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Polygon{[]Point{{0, -1}, {1, 0}, {0, 1}}}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.Area(), Tolerance)
			}
			if cwI == 1 {
				tri = tri.Reverse()
			}
			assertArea(1)
			// Stretch the triangle out
			tri = tri.Scale(1, 2, Point{})
			assertArea(2)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				tri = tri.Rotate(angle, Point{})
				assertArea(2)
			}

			// Translate the triangle and do the whole rotation thing again, this
			// time around a point that isn't the origin
			tri = tri.Translate(5, 3)
			for i := 0; i < 14; i++ {
				tri = tri.Rotate(angle, Point{-2, 7})
				assertArea(2)
			}
		})
	}
}
