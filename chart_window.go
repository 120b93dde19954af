package main

import (
	"image"
	"image/color"

	"github.com/AllenDang/giu"
	"github.com/samber/lo"
)

var (
	frameColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	lineColor  = color.RGBA{R: 58, G: 140, B: 200, A: 255}
	pointColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

type chartWindow struct {
	session *session
	title   string
	padding float64
}

func (w *chartWindow) draw(m *giu.MasterWindow) {
	// create window
	win := newWindow(m, w.title).Flags(giu.WindowFlagsMenuBar)

	win.Layout(
		// add menu bar
		giu.MenuBar().Layout(
			giu.Menu("Chart").Layout(
				giu.MenuItem("Clear").OnClick(w.session.clear),
			),
		),

		// add statistics
		giu.Label(w.session.summary()),

		// add chart
		giu.Custom(func() {
			// get region
			width, height := giu.GetAvailableRegion()
			origin := giu.GetCursorScreenPos()

			// draw
			w.plot(giu.GetCanvas(), origin, float64(width), float64(height))
		}),
	)
}

func (w *chartWindow) plot(canvas *giu.Canvas, origin image.Point, width, height float64) {
	// draw frame
	corners := frame(width, height, w.padding)
	for i := range corners {
		canvas.AddLine(origin.Add(corners[i]), origin.Add(corners[(i+1)%len(corners)]), frameColor, 1)
	}

	// get points
	points := screenPoints(w.session.model, width, height, w.padding)
	if len(points) == 0 {
		return
	}

	// draw line
	for i := 1; i < len(points); i++ {
		canvas.AddLine(origin.Add(points[i-1]), origin.Add(points[i]), lineColor, 1)
	}

	// draw points
	for _, pt := range points {
		canvas.AddCircleFilled(origin.Add(pt), 3, pointColor)
	}
}

// frame returns the corners of the padded chart area in drawing order.
func frame(width, height, padding float64) [4]image.Point {
	minX, minY := int(padding), int(padding)
	maxX, maxY := int(width-padding), int(height-padding)

	return [4]image.Point{
		image.Pt(minX, minY),
		image.Pt(maxX, minY),
		image.Pt(maxX, maxY),
		image.Pt(minX, maxY),
	}
}

// screenPoints projects the retained samples into a width by height area
// relative to its top left corner.
func screenPoints(mdl *model, width, height, padding float64) []image.Point {
	// get bounds
	xb, yb, ok := mdl.bounds()
	if !ok {
		return nil
	}

	// project points
	proj := newProjection(xb, yb, width, height, padding)
	return lo.Map(mdl.points(), func(p point, _ int) image.Point {
		x, y := proj.apply(p.x, p.y)
		return image.Pt(int(x), int(y))
	})
}
