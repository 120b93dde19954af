package main

// projection maps data coordinates to screen coordinates of a padded
// rectangle. Larger y values are placed higher on screen.
type projection struct {
	dx float64
	dy float64
	x0 float64
	y0 float64
}

func newProjection(xb, yb bounds[float64], width, height, padding float64) projection {
	// get drawable area
	width -= 2 * padding
	height -= 2 * padding

	// get scales, zero if the axis has no range
	var p projection
	if r := span(xb); r != 0 {
		p.dx = width / r
	}
	if r := span(yb); r != 0 {
		p.dy = -height / r
	}

	// get offsets, center on axes without range
	if p.dx == 0 {
		p.x0 = padding + width/2
	} else {
		p.x0 = padding - xb.min.value*p.dx
	}
	if p.dy == 0 {
		p.y0 = padding + height/2
	} else {
		p.y0 = padding - yb.max.value*p.dy
	}

	return p
}

func (p projection) apply(x, y float64) (float64, float64) {
	return x*p.dx + p.x0, y*p.dy + p.y0
}
