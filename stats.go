package main

import "math"

// runningStats keeps the sum and the sum of squares of the values retained by
// a paired series.
type runningStats struct {
	series *series[float64]
	sum    float64
	sqsum  float64
}

func newRunningStats(s *series[float64]) *runningStats {
	return &runningStats{
		series: s,
	}
}

// record must be called once for every push on the paired series with the
// value pushed and the eviction reported by it.
func (r *runningStats) record(value, evicted float64, ok bool) {
	// remove evicted value
	if ok {
		r.sum -= evicted
		r.sqsum -= evicted * evicted
	}

	// add value
	r.sum += value
	r.sqsum += value * value
}

func (r *runningStats) clear() {
	r.sum = 0
	r.sqsum = 0
}

// mean is NaN if the paired series is empty.
func (r *runningStats) mean() float64 {
	return r.sum / float64(r.series.len())
}

// variance is clamped at zero to absorb cancellation errors on near constant
// data. It is NaN if the paired series is empty.
func (r *runningStats) variance() float64 {
	n := float64(r.series.len())
	mean := r.sum / n
	variance := r.sqsum/n - mean*mean
	if variance < 0 {
		variance = 0
	}

	return variance
}

func (r *runningStats) std() float64 {
	return math.Sqrt(r.variance())
}
