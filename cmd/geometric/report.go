package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometric"
	"github.com/osuushi/geometric/dbg"
)

type reporter struct {
	out io.Writer
	au  aurora.Aurora
}

// Print each polygon's metrics, then how every pair relates.
func (r *reporter) report(polygons geometric.PolygonList) {
	for i, poly := range polygons {
		r.reportPolygon(dbg.Name(i), poly)
	}
	if len(polygons) < 2 {
		return
	}
	fmt.Fprintln(r.out, r.au.Bold("Relationships"))
	for i := range polygons {
		for j := i + 1; j < len(polygons); j++ {
			r.reportPair(dbg.Name(i), polygons[i], dbg.Name(j), polygons[j])
		}
	}
}

func (r *reporter) reportPolygon(name string, poly geometric.Polygon) {
	area := geometric.PolygonArea(poly)
	winding := "no winding"
	if geometric.PolygonHasArea(poly) {
		winding = geometric.CounterClockwise.String()
		if area < 0 {
			winding = geometric.Clockwise.String()
		}
	}
	fmt.Fprintf(r.out, "%s (%d points, %s)\n", r.au.Cyan(name), len(poly.Points), winding)

	r.field("area", fmt.Sprintf("%g", area))
	r.field("perimeter", fmt.Sprintf("%g", geometric.PolygonLength(poly)))
	if centroid, err := geometric.PolygonCentroid(poly); err != nil {
		r.field("centroid", r.au.Red(err.Error()).String())
	} else {
		r.field("centroid", centroid.String())
	}
	if mean, err := geometric.PolygonMean(poly); err != nil {
		r.field("mean", r.au.Red(err.Error()).String())
	} else {
		r.field("mean", mean.String())
	}
	if bounds, err := geometric.PolygonBounds(poly); err == nil {
		r.field("bounds", fmt.Sprintf("%s - %s", bounds.Min, bounds.Max))
	}
	hull := geometric.PolygonHull(poly)
	r.field("hull", fmt.Sprintf("%d points", len(hull.Points)))
	r.field("convex", r.yesNo(geometric.PolygonIsConvex(poly)))
}

func (r *reporter) reportPair(aName string, a geometric.Polygon, bName string, b geometric.Polygon) {
	fmt.Fprintf(r.out, "%s × %s\n", r.au.Cyan(aName), r.au.Cyan(bName))
	r.field("intersect", r.yesNo(geometric.PolygonIntersectsPolygon(a, b)))
	r.field(fmt.Sprintf("%s in %s", aName, bName), r.yesNo(geometric.PolygonInPolygon(a, b)))
	r.field(fmt.Sprintf("%s in %s", bName, aName), r.yesNo(geometric.PolygonInPolygon(b, a)))
}

func (r *reporter) field(label, value string) {
	fmt.Fprintf(r.out, "  %-12s %s\n", label, value)
}

func (r *reporter) yesNo(b bool) string {
	if b {
		return r.au.Green("yes").String()
	}
	return r.au.Red("no").String()
}
