package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the shapes, in output pixels
const drawPadding = 20

type DrawOptions struct {
	// Output pixels per unit of polygon coordinates.
	Scale float64
	// Outline each polygon's convex hull.
	Hulls bool
	// Mark each polygon's centroid. Polygons without area are skipped.
	Centroids bool
}

// Render the list as a png, y up. Overlapping polygons are filled by the even
// odd rule, so a polygon inside another shows as a hole.
func (pl PolygonList) Draw(w io.Writer, opts DrawOptions) error {
	if len(pl) == 0 {
		return errors.Wrap(ErrEmptyPolygon, "nothing to draw")
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bounds := pl.Bounds()

	// Set up the context
	width := int(math.Ceil(scale*bounds.Width())) + drawPadding*2
	height := int(math.Ceil(scale*bounds.Height())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	// Line widths are in user space, so undo the scale to keep them in pixels
	c.SetLineWidth(2 / scale)
	for _, poly := range pl {
		tracePolygon(c, poly)
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if opts.Hulls {
		c.SetDash(6/scale, 4/scale)
		c.SetRGB(1, 0.6, 0)
		for _, poly := range pl {
			tracePolygon(c, poly.Hull())
			c.Stroke()
		}
		c.SetDash()
	}

	if opts.Centroids {
		c.SetRGB(1, 0, 0)
		for _, poly := range pl {
			if !poly.HasArea() {
				continue
			}
			centroid := poly.Centroid()
			c.DrawCircle(centroid.X, centroid.Y, 3/scale)
			c.Fill()
		}
	}

	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func tracePolygon(c *gg.Context, poly Polygon) {
	if len(poly.Points) == 0 {
		return
	}
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
