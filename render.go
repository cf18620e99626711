package geometric

import (
	"io"

	"github.com/osuushi/geometric/internal"
)

type RenderOptions = internal.DrawOptions

// Draw the polygons as a png. This is meant for eyeballing results, not for
// production graphics.
func RenderPNG(w io.Writer, polygons PolygonList, opts RenderOptions) error {
	return polygons.Draw(w, opts)
}

// Every <polygon> element in an svg document.
func ParseSVGPolygons(r io.Reader) (PolygonList, error) {
	return internal.ParseSVGPolygons(r)
}
