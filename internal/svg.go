package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It finds every <polygon>
// element and reads its points attribute, which is all that is needed to get
// shapes out of a drawing program. Transforms and every other element are
// ignored.
func ParseSVGPolygons(r io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var result PolygonList
	for i, polygonEl := range rootEl.FindAll("polygon") {
		poly, err := ParsePointList(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		result = append(result, poly)
	}
	return result, nil
}

// Parse an svg points attribute. Coordinates may be separated by commas,
// whitespace, or both, so "1,2 3,4" and "1 2 3 4" are the same polygon.
func ParsePointList(pointString string) (Polygon, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return Polygon{}, errors.Errorf("odd number of coordinates in %q", pointString)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return Polygon{Points: points}, nil
}
