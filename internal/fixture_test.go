package internal

import (
	"embed"
	"log"
)

// Fixtures are svg drawings available by name in the fixtures/ directory, sans
// extension. LoadFixture gives the first polygon in a fixture, wound
// counterclockwise; LoadFixtureList gives all of them, as drawn. If anything
// goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"square",
	"right_triangle",
	"c_shape",
	"star",
}

func LoadFixtureList(name string) PolygonList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := ParseSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	return polygons
}

func LoadFixture(name string) Polygon {
	return LoadFixtureList(name)[0].Wind(CounterClockwise)
}
