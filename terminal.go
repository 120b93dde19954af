package main

import (
	"context"
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/samber/lo"
)

type terminalView struct {
	*ui.Grid
	session *session
	title   string
	plot    *widgets.Plot
	stats   *widgets.Paragraph
}

func newTerminalView(s *session, title string) *terminalView {
	// init terminal
	if err := ui.Init(); err != nil {
		panic(err)
	}

	// create widgets
	view := &terminalView{
		Grid:    ui.NewGrid(),
		session: s,
		title:   title,
		plot:    widgets.NewPlot(),
		stats:   widgets.NewParagraph(),
	}
	view.plot.AxesColor = ui.ColorWhite
	view.plot.LineColors = []ui.Color{ui.ColorCyan}
	view.stats.Title = " Statistics "

	// full screen
	termWidth, termHeight := ui.TerminalDimensions()
	view.SetRect(0, 0, termWidth, termHeight)

	// layout
	view.Set(
		ui.NewRow(4.0/5,
			ui.NewCol(1.0/1, view.plot),
		),
		ui.NewRow(1.0/5,
			ui.NewCol(1.0/1, view.stats),
		),
	)

	return view
}

// update copies the model into the widgets.
func (v *terminalView) update() {
	v.stats.Text = v.session.summary()
	v.plot.Title = " " + v.title + " "
	v.plot.Data, v.plot.MaxVal = plotData(v.session.model)

	// show range
	_, yb, ok := v.session.model.bounds()
	if ok {
		v.plot.Title = fmt.Sprintf(" %s [%s, %s] ", v.title, si(yb.min.value), si(yb.max.value))
	}
}

// plotData returns the y values shifted to start at zero and the maximum of
// the plot. Values without range are centered.
func plotData(mdl *model) ([][]float64, float64) {
	// check bounds
	_, yb, ok := mdl.bounds()
	if !ok {
		return [][]float64{{0, 0}}, 1
	}

	// center values without range
	values := mdl.ys.values()
	r := span(yb)
	if r == 0 {
		values = lo.Map(values, func(float64, int) float64 { return 0.5 })
		r = 1
	} else {
		values = lo.Map(values, func(value float64, _ int) float64 { return value - yb.min.value })
	}

	// lines need two points
	if len(values) == 1 {
		values = append(values, values[0])
	}

	return [][]float64{values}, r
}

// run renders the view and ingests samples until the user quits or ctx is
// cancelled.
func (v *terminalView) run(ctx context.Context, samples <-chan sample) {
	// ensure close
	defer ui.Close()

	// render initial state
	uiEvents := ui.PollEvents()
	v.update()
	ui.Render(v)

	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				return
			case "c":
				v.session.clear()
			case "<Resize>":
				payload := e.Payload.(ui.Resize)
				v.SetRect(0, 0, payload.Width, payload.Height)
				ui.Clear()
			}
		case smp, ok := <-samples:
			if !ok {
				samples = nil
				break
			}
			v.session.ingest(smp)
			if _, open := v.session.drain(samples); !open {
				samples = nil
			}
		case <-ctx.Done():
			return
		}

		// render
		v.update()
		ui.Render(v)
	}
}
