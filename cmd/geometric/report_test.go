package main

import (
	"bytes"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometric"
	"github.com/osuushi/geometric/dbg"
	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	var out bytes.Buffer
	r := &reporter{out: &out, au: aurora.NewAurora(false)}
	r.report(squareAndTriangle)
	report := out.String()

	square, triangle := dbg.Name(0), dbg.Name(1)
	assert.Contains(t, report, square+" (4 points, counterclockwise)")
	assert.Contains(t, report, triangle+" (3 points, counterclockwise)")
	assert.Contains(t, report, "area         16\n")
	assert.Contains(t, report, "centroid     (2, 2)\n")
	assert.Contains(t, report, "Relationships")
	assert.Contains(t, report, "intersect    yes\n")
	assert.Contains(t, report, triangle+" in "+square+" yes\n")
	assert.Contains(t, report, square+" in "+triangle+" no\n")
}

func TestReportDegenerate(t *testing.T) {
	var out bytes.Buffer
	r := &reporter{out: &out, au: aurora.NewAurora(false)}
	r.report(geometric.PolygonList{{Points: []geometric.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}})
	report := out.String()

	assert.Contains(t, report, "no winding")
	assert.Contains(t, report, "degenerate polygon")
	assert.NotContains(t, report, "Relationships")
}
