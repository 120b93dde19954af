package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// session is the single consumer of samples. It owns the model and keeps the
// metrics in sync with it.
type session struct {
	model   *model
	metrics *metrics
	total   int64
}

func newSession(mdl *model, mtr *metrics) *session {
	return &session{
		model:   mdl,
		metrics: mtr,
	}
}

func (s *session) ingest(smp sample) {
	// push sample
	evicted := s.model.push(smp.x, smp.y)
	s.total++

	// count
	s.metrics.samples.Inc()
	if evicted {
		s.metrics.evictions.Inc()
	}
}

// drain ingests all samples currently buffered in ch without blocking. It
// returns the number of ingested samples and whether ch is still open.
func (s *session) drain(ch <-chan sample) (int, bool) {
	// ingest buffered samples
	n := 0
	open := true
loop:
	for {
		select {
		case smp, ok := <-ch:
			if !ok {
				open = false
				break loop
			}
			s.ingest(smp)
			n++
		default:
			break loop
		}
	}

	// update gauges
	s.metrics.observe(s.model)

	return n, open
}

// consume ingests samples from ch until it is closed or ctx is cancelled.
func (s *session) consume(ctx context.Context, ch <-chan sample) {
	// ensure gauges
	defer s.metrics.observe(s.model)

	for {
		select {
		case smp, ok := <-ch:
			if !ok {
				return
			}
			s.ingest(smp)
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) clear() {
	s.model.clear()
	s.metrics.observe(s.model)
}

// summary describes the retained samples in a single line.
func (s *session) summary() string {
	// check length
	_, yb, ok := s.model.bounds()
	if !ok {
		return fmt.Sprintf("no samples (%s total)", humanize.Comma(s.total))
	}

	return fmt.Sprintf("n=%s mean=%s std=%s min=%s max=%s (%s total)",
		humanize.Comma(int64(s.model.len())),
		si(s.model.mean()),
		si(s.model.std()),
		si(yb.min.value),
		si(yb.max.value),
		humanize.Comma(s.total),
	)
}

// si formats a value with an SI prefix and at most two decimals.
func si(value float64) string {
	return strings.TrimSpace(humanize.SIWithDigits(value, 2, ""))
}
