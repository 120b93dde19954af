package main

type point struct {
	x float64
	y float64
}

// model holds the retained samples of one chart and the statistics of their
// y values.
type model struct {
	xs    *series[float64]
	ys    *series[float64]
	stats *runningStats
}

func newModel(capacity int, unbounded bool) *model {
	// create series
	var xs, ys *series[float64]
	if unbounded {
		xs = newUnboundedSeries[float64]()
		ys = newUnboundedSeries[float64]()
	} else {
		xs = newSeries[float64](capacity)
		ys = newSeries[float64](capacity)
	}

	return &model{
		xs:    xs,
		ys:    ys,
		stats: newRunningStats(ys),
	}
}

// push adds a sample and reports whether the oldest sample was evicted.
func (m *model) push(x, y float64) bool {
	m.xs.push(x)
	evicted, ok := m.ys.push(y)
	m.stats.record(y, evicted, ok)
	return ok
}

func (m *model) clear() {
	m.xs.clear()
	m.ys.clear()
	m.stats.clear()
}

func (m *model) len() int {
	return m.ys.len()
}

// bounds returns the bounds of both axes, or false if the model is empty.
func (m *model) bounds() (bounds[float64], bounds[float64], bool) {
	xb, ok := m.xs.bounds()
	if !ok {
		return bounds[float64]{}, bounds[float64]{}, false
	}
	yb, ok := m.ys.bounds()
	if !ok {
		return bounds[float64]{}, bounds[float64]{}, false
	}

	return xb, yb, true
}

// points returns the retained samples, oldest first.
func (m *model) points() []point {
	list := make([]point, 0, m.len())
	m.ys.enumerate(func(i int, y float64) {
		x, _ := m.xs.get(i)
		list = append(list, point{x: x, y: y})
	})

	return list
}

func (m *model) mean() float64 {
	return m.stats.mean()
}

func (m *model) variance() float64 {
	return m.stats.variance()
}

func (m *model) std() float64 {
	return m.stats.std()
}

func span(b bounds[float64]) float64 {
	return b.max.value - b.min.value
}
