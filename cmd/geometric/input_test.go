package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/geometric"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareAndTriangleText = `
0 0
4 0
4 4
0 4

1 1
  2 1
1 2
`

var squareAndTriangle = geometric.PolygonList{
	{Points: []geometric.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}},
	{Points: []geometric.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}},
}

func TestReadText(t *testing.T) {
	polygons, err := readText(strings.NewReader(squareAndTriangleText))
	require.NoError(t, err)
	assert.Equal(t, squareAndTriangle, polygons)

	_, err = readText(strings.NewReader("0 0\n1 1\n\n2 x\n"))
	assert.EqualError(t, err, `line 4: y: strconv.ParseFloat: parsing "x": invalid syntax`)

	_, err = readText(strings.NewReader("0 0 0\n"))
	assert.Error(t, err)

	polygons, err = readText(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, polygons)
}

func TestReadJSON(t *testing.T) {
	polygons, err := readJSON(strings.NewReader(`{"polygons": [
		[[0, 0], [4, 0], [4, 4], [0, 4]],
		[[1, 1], [2, 1], [1, 2]]
	]}`))
	require.NoError(t, err)
	assert.Equal(t, squareAndTriangle, polygons)

	invalid := map[string]string{
		"not json":         `{"polygons": `,
		"missing polygons": `{}`,
		"extra field":      `{"polygons": [], "color": "red"}`,
		"short point":      `{"polygons": [[[0, 0], [1]]]}`,
		"long point":       `{"polygons": [[[0, 0, 0]]]}`,
		"string coord":     `{"polygons": [[["0", 0]]]}`,
		"empty polygon":    `{"polygons": [[]]}`,
	}
	for name, doc := range invalid {
		_, err := readJSON(strings.NewReader(doc))
		assert.Error(t, err, name)
	}
}

func TestReaderFor(t *testing.T) {
	for _, format := range []string{formatText, formatJSON, formatSVG} {
		read, err := readerFor(format)
		assert.NoError(t, err)
		assert.NotNil(t, read)
	}
	_, err := readerFor("wkt")
	assert.Error(t, err)
}

func TestReadInputs(t *testing.T) {
	dir, err := ioutil.TempDir("", "geometric")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.svg")
	second := filepath.Join(dir, "second.svg")
	require.NoError(t, ioutil.WriteFile(first, []byte(`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 4,0 4,4 0,4"/></svg>`), 0644))
	require.NoError(t, ioutil.WriteFile(second, []byte(`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="1,1 2,1 1,2"/></svg>`), 0644))

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	polygons, err := readInputs([]string{first, second}, formatSVG, log)
	require.NoError(t, err)
	assert.Equal(t, squareAndTriangle, polygons)
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, second, hook.LastEntry().Data["path"])
	assert.Equal(t, 1, hook.LastEntry().Data["polygons"])

	_, err = readInputs([]string{filepath.Join(dir, "missing.svg")}, formatSVG, log)
	assert.Error(t, err)

	_, err = readInputs([]string{first}, formatText, log)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), first)
}
