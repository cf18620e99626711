package main

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/geometric"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatSVG  = "svg"
)

//go:embed schema.json
var polygonSchema string

type polygonReader func(io.Reader) (geometric.PolygonList, error)

func readerFor(format string) (polygonReader, error) {
	switch format {
	case formatText:
		return readText, nil
	case formatJSON:
		return readJSON, nil
	case formatSVG:
		return geometric.ParseSVGPolygons, nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// Read every path in turn, or stdin if there are none.
func readInputs(paths []string, format string, log logrus.FieldLogger) (geometric.PolygonList, error) {
	read, err := readerFor(format)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		log.WithField("format", format).Debug("Reading stdin")
		return read(os.Stdin)
	}

	var result geometric.PolygonList
	for _, path := range paths {
		polygons, err := readFile(path, read)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"path":     path,
			"format":   format,
			"polygons": len(polygons),
		}).Debug("Read file")
		result = append(result, polygons...)
	}
	return result, nil
}

func readFile(path string, read polygonReader) (geometric.PolygonList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	polygons, err := read(f)
	return polygons, errors.Wrap(err, path)
}

// One "x y" point per line. A blank line ends the current polygon.
func readText(in io.Reader) (geometric.PolygonList, error) {
	var polygons geometric.PolygonList
	scanner := bufio.NewScanner(in)
	var points []geometric.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, geometric.Polygon{Points: points})
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, geometric.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (geometric.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geometric.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geometric.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geometric.Point{}, errors.Wrap(err, "y")
	}
	return geometric.Point{X: x, Y: y}, nil
}

type jsonPolygons struct {
	Polygons [][][2]float64 `json:"polygons"`
}

// {"polygons": [[[x, y], ...], ...]}, checked against schema.json before it
// is decoded.
func readJSON(in io.Reader) (geometric.PolygonList, error) {
	sch, err := jsonschema.CompileString("schema.json", polygonSchema)
	if err != nil {
		return nil, errors.Wrap(err, "compiling schema")
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, errors.Wrap(err, "decoding json")
	}
	if err := sch.Validate(v); err != nil {
		return nil, errors.Wrap(err, "validating json")
	}

	var doc jsonPolygons
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding json")
	}
	polygons := make(geometric.PolygonList, len(doc.Polygons))
	for i, coordinates := range doc.Polygons {
		points := make([]geometric.Point, len(coordinates))
		for j, c := range coordinates {
			points[j] = geometric.Point{X: c[0], Y: c[1]}
		}
		polygons[i] = geometric.Polygon{Points: points}
	}
	return polygons, nil
}
