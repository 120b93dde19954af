package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type sample struct {
	x float64
	y float64
}

// parseSample reads the first two fields of a line as a sample. Lines without
// two finite numbers are rejected.
func parseSample(line string) (sample, bool) {
	// split line
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return sample{}, false
	}

	// parse fields
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return sample{}, false
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return sample{}, false
	}

	return sample{x: x, y: y}, true
}

// readSamples scans lines from r and sends the parsed samples to out until r
// is exhausted or ctx is cancelled. The notify function, if set, is called for
// every line with whether it yielded a sample. The out channel is closed on
// return.
func readSamples(ctx context.Context, r io.Reader, out chan<- sample, notify func(parsed bool)) error {
	// ensure close
	defer close(out)

	// scan stream
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		// parse line
		smp, ok := parseSample(scanner.Text())
		if !ok {
			log.Debug("Skipping line %q", scanner.Text())
			if notify != nil {
				notify(false)
			}
			continue
		}

		// hand over sample
		select {
		case out <- smp:
		case <-ctx.Done():
			return nil
		}

		// notify
		if notify != nil {
			notify(true)
		}
	}

	// check error
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read samples: %w", err)
	}

	return nil
}
