package main

import (
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geometric"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the geometry helpers. Reads a set of polygons, prints a report of
// each polygon's metrics and how every pair relates, and optionally renders
// them to a png.
//
// Text input on stdin (or in files) should be newline separated points in the
// form "x y", with each polygon separated by an extra newline. JSON and SVG
// input are also accepted; see input.go.

var (
	app       = kingpin.New("geometric", "Report metrics and relationships for a set of polygons.")
	format    = app.Flag("format", "Input format.").Short('f').Default(formatText).Enum(formatText, formatJSON, formatSVG)
	pngPath   = app.Flag("png", "Render the polygons to this png file.").PlaceHolder("FILE").String()
	scale     = app.Flag("scale", "Rendering scale, in pixels per unit.").Default("1").Float64()
	hulls     = app.Flag("hulls", "Outline convex hulls in the rendering.").Bool()
	showImage = app.Flag("imgcat", "Print the rendering inline in the terminal (iTerm only).").Bool()
	noColor   = app.Flag("no-color", "Disable colored output.").Bool()
	logLevel  = app.Flag("log-level", "Logging level.").Default("info").Enum("debug", "info", "warn", "error")
	files     = app.Arg("files", "Input files. Reads stdin when none are given.").ExistingFiles()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log := newLogger(*logLevel)

	polygons, err := readInputs(*files, *format, log)
	if err != nil {
		log.WithError(err).Fatal("Could not read polygons")
	}
	if len(polygons) == 0 {
		log.Warn("No polygons read")
		return
	}
	log.WithField("count", len(polygons)).Debug("Read polygons")

	r := &reporter{out: os.Stdout, au: aurora.NewAurora(!*noColor)}
	r.report(polygons)

	if *pngPath == "" {
		if *showImage {
			log.Warn("--imgcat needs --png")
		}
		return
	}
	if err := renderFile(*pngPath, polygons); err != nil {
		log.WithError(err).WithField("path", *pngPath).Fatal("Could not render polygons")
	}
	log.WithField("path", *pngPath).Info("Rendered polygons")
	if *showImage {
		imgcat.CatFile(*pngPath, os.Stdout)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if parsed, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(parsed)
	}
	return log
}

func renderFile(path string, polygons geometric.PolygonList) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return geometric.RenderPNG(f, polygons, geometric.RenderOptions{
		Scale:     *scale,
		Hulls:     *hulls,
		Centroids: true,
	})
}
