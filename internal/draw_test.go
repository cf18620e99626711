package internal

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	list := PolygonList{LoadFixture("c_shape"), LoadFixture("star").Translate(20, 0)}

	var buf bytes.Buffer
	err := list.Draw(&buf, DrawOptions{Scale: 10, Hulls: true, Centroids: true})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	bounds := list.Bounds()
	assert.Equal(t, int(math.Ceil(bounds.Width()*10))+drawPadding*2, img.Bounds().Dx())
	assert.Equal(t, int(math.Ceil(bounds.Height()*10))+drawPadding*2, img.Bounds().Dy())
}

func TestDrawDegenerate(t *testing.T) {
	var buf bytes.Buffer
	// Zero area polygons are drawn as lines, and have no centroid to mark
	err := PolygonList{{[]Point{{0, 0}, {5, 5}}}}.Draw(&buf, DrawOptions{Centroids: true})
	assert.NoError(t, err)

	err = PolygonList{}.Draw(&buf, DrawOptions{})
	assert.True(t, errors.Is(err, ErrEmptyPolygon))
}
