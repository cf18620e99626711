package internal

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This
// applies to coordinates as well as to cross products, so a point that is
// within rounding error of a line counts as being on it.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return fmt.Sprintf("Winding(%d)", int(w))
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop removes the top point. Popping an empty stack gives the zero point, so
// check Empty first when that matters.
func (s *PointStack) Pop() Point {
	if len(*s) == 0 {
		return Point{}
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	if len(*s) == 0 {
		return Point{}
	}
	return (*s)[len(*s)-1]
}

// The point just below the top. Only meaningful when Len() >= 2.
func (s *PointStack) PeekSecond() Point {
	if len(*s) < 2 {
		return Point{}
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
