package main

import "golang.org/x/exp/constraints"

// extremum is a tracked maximum or minimum and the logical index of the
// earliest retained element attaining it.
type extremum[T constraints.Ordered] struct {
	value T
	index int
}

type bounds[T constraints.Ordered] struct {
	max extremum[T]
	min extremum[T]
}

// series is an append-only sequence that retains at most cap values. Values
// are addressed by their logical index, the number of values pushed before
// them. A negative cap means the series is unbounded.
type series[T constraints.Ordered] struct {
	data   []T
	cap    int
	start  int
	length int
	limits bounds[T]
	seeded bool
}

func newSeries[T constraints.Ordered](cap int) *series[T] {
	if cap < 0 {
		cap = 0
	}

	return &series[T]{
		data: make([]T, 0, cap),
		cap:  cap,
	}
}

func newUnboundedSeries[T constraints.Ordered]() *series[T] {
	return &series[T]{
		cap: -1,
	}
}

// push appends the value and returns the value evicted to make room, if any.
func (s *series[T]) push(value T) (T, bool) {
	var zero T

	// handle unbounded and not yet full series
	if s.cap < 0 || s.length-s.start < s.cap {
		s.data = append(s.data, value)
		s.track(s.length, value)
		s.length++
		return zero, false
	}

	// ignore degenerate series
	if s.cap == 0 {
		return zero, false
	}

	// replace oldest value
	slot := s.start % s.cap
	evicted := s.data[slot]
	s.data[slot] = value

	// advance window
	oldest := s.start
	index := s.length
	s.start++
	s.length++

	// update maximum, rescan if the evicted value was the maximum
	if value > s.limits.max.value {
		s.limits.max = extremum[T]{value: value, index: index}
	} else if s.limits.max.index == oldest {
		s.limits.max = s.scan(func(a, b T) bool { return a > b })
	}

	// update minimum, rescan if the evicted value was the minimum
	if value < s.limits.min.value {
		s.limits.min = extremum[T]{value: value, index: index}
	} else if s.limits.min.index == oldest {
		s.limits.min = s.scan(func(a, b T) bool { return a < b })
	}

	return evicted, true
}

func (s *series[T]) track(index int, value T) {
	// seed with first value
	if !s.seeded {
		s.limits = bounds[T]{
			max: extremum[T]{value: value, index: index},
			min: extremum[T]{value: value, index: index},
		}
		s.seeded = true
		return
	}

	// only strict improvements replace the earlier extremum
	if value > s.limits.max.value {
		s.limits.max = extremum[T]{value: value, index: index}
	}
	if value < s.limits.min.value {
		s.limits.min = extremum[T]{value: value, index: index}
	}
}

// scan returns the earliest retained value that no other retained value beats.
func (s *series[T]) scan(better func(a, b T) bool) extremum[T] {
	ext := extremum[T]{value: s.slot(s.start), index: s.start}
	for i := s.start + 1; i < s.length; i++ {
		if value := s.slot(i); better(value, ext.value) {
			ext = extremum[T]{value: value, index: i}
		}
	}

	return ext
}

// slot maps a retained logical index to its storage.
func (s *series[T]) slot(index int) T {
	if s.cap < 0 {
		return s.data[index]
	}

	return s.data[index%s.cap]
}

func (s *series[T]) get(index int) (T, bool) {
	if index < s.start || index >= s.length {
		var zero T
		return zero, false
	}

	return s.slot(index), true
}

func (s *series[T]) each(fn func(T)) {
	for i := s.start; i < s.length; i++ {
		fn(s.slot(i))
	}
}

func (s *series[T]) enumerate(fn func(int, T)) {
	for i := s.start; i < s.length; i++ {
		fn(i, s.slot(i))
	}
}

// values returns a copy of the retained values, oldest first.
func (s *series[T]) values() []T {
	list := make([]T, 0, s.len())
	s.each(func(value T) {
		list = append(list, value)
	})

	return list
}

// clear drops all values. Logical indices restart at zero.
func (s *series[T]) clear() {
	s.data = s.data[:0]
	s.start = 0
	s.length = 0
	s.limits = bounds[T]{}
	s.seeded = false
}

func (s *series[T]) len() int {
	return s.length - s.start
}

func (s *series[T]) bounds() (bounds[T], bool) {
	if s.len() == 0 {
		return bounds[T]{}, false
	}

	return s.limits, true
}
