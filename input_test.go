package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	table := []struct {
		line string
		smp  sample
		ok   bool
	}{
		{line: "1 2", smp: sample{x: 1, y: 2}, ok: true},
		{line: "  -1.5\t2e3  ", smp: sample{x: -1.5, y: 2000}, ok: true},
		{line: "1 2 3", smp: sample{x: 1, y: 2}, ok: true},
		{line: "", ok: false},
		{line: "1", ok: false},
		{line: "a 2", ok: false},
		{line: "1 b", ok: false},
		{line: "NaN 1", ok: false},
		{line: "1 +Inf", ok: false},
	}

	for _, item := range table {
		smp, ok := parseSample(item.line)
		assert.Equal(t, item.ok, ok, item.line)
		assert.Equal(t, item.smp, smp, item.line)
	}
}

func TestReadSamples(t *testing.T) {
	input := "1 2\nfoo\n3 4\n\n5 6\n"
	out := make(chan sample, 10)

	var parsed, skipped int
	err := readSamples(context.Background(), strings.NewReader(input), out, func(ok bool) {
		if ok {
			parsed++
		} else {
			skipped++
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 3, parsed)
	assert.Equal(t, 2, skipped)

	var samples []sample
	for smp := range out {
		samples = append(samples, smp)
	}
	assert.Equal(t, []sample{{1, 2}, {3, 4}, {5, 6}}, samples)
}

func TestReadSamplesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the unbuffered channel is never read
	out := make(chan sample)
	err := readSamples(ctx, strings.NewReader("1 2\n3 4\n"), out, nil)
	require.NoError(t, err)

	_, ok := <-out
	assert.False(t, ok)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestReadSamplesError(t *testing.T) {
	out := make(chan sample, 1)
	err := readSamples(context.Background(), io.MultiReader(strings.NewReader("1 2\n"), failingReader{}), out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	smp, ok := <-out
	assert.True(t, ok)
	assert.Equal(t, sample{1, 2}, smp)
	_, ok = <-out
	assert.False(t, ok)
}
