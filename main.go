package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/AllenDang/giu"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/mason-leap-lab/go-utils/logger"
)

const (
	modeGUI      = "gui"
	modeTerminal = "terminal"
	modeHeadless = "headless"
)

var capacity = flag.Int("capacity", 120, "the number of most recent samples to retain")
var unbounded = flag.Bool("unbounded", false, "retain all samples")
var mode = flag.String("mode", modeGUI, "the display mode: gui, terminal or headless")
var title = flag.String("title", "stdin", "the chart title")
var padding = flag.Float64("padding", 5, "the chart padding in pixels")
var metricsAddr = flag.String("metrics-addr", "", "the metrics and profile addr, disabled if empty")
var dumpMetrics = flag.Bool("dump", false, "write the final metrics to stdout on exit")
var logLevel = flag.String("log-level", "info", "the log level: all, info, warn or none")
var noColor = flag.Bool("no-color", false, "disable colored logs")

func main() {
	// parse flags
	flag.Parse()

	// validate flags
	err := validateFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	// configure logger
	log.Level, _ = parseLogLevel(*logLevel)
	log.Color = !*noColor
	if *mode == modeTerminal {
		log.Level = logger.LOG_LEVEL_NONE
	}

	// prepare session
	mtr := newMetrics()
	sess := newSession(newModel(*capacity, *unbounded), mtr)

	// run prometheus and pprof profile endpoint
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, mtr)
	}

	// run mode
	switch *mode {
	case modeGUI:
		runWindow(sess, mtr)
	case modeTerminal:
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		samples := startReader(ctx, os.Stdin, mtr, nil)
		newTerminalView(sess, *title).run(ctx, samples)
		cancel()
	case modeHeadless:
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		samples := startReader(ctx, os.Stdin, mtr, nil)
		sess.consume(ctx, samples)
		cancel()
		fmt.Println(sess.summary())
	}

	// dump metrics
	if *dumpMetrics {
		err = mtr.dump(os.Stdout)
		if err != nil {
			log.Error("Failed to dump metrics: %v", err)
		}
	}
}

func validateFlags() error {
	// check capacity
	if *capacity < 0 {
		return fmt.Errorf("invalid capacity %d", *capacity)
	} else if *capacity == 0 && !*unbounded {
		log.Warn("A capacity of zero retains no samples")
	}

	// check mode
	switch *mode {
	case modeGUI, modeTerminal, modeHeadless:
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	// check padding
	if *padding < 0 {
		return fmt.Errorf("invalid padding %v", *padding)
	}

	// check log level
	_, err := parseLogLevel(*logLevel)
	if err != nil {
		return err
	}

	return nil
}

func serveMetrics(addr string, mtr *metrics) {
	// prepare mux
	mux := http.NewServeMux()
	mux.Handle("/metrics", mtr.handler())
	mux.HandleFunc("/profile", pprof.Profile)

	// serve
	log.Info("Serving metrics on %s", addr)
	err := http.ListenAndServe(addr, mux)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Metrics server failed: %v", err)
	}
}

// startReader reads samples from r in the background. The refresh function,
// if set, is called after every handled line.
func startReader(ctx context.Context, r io.Reader, mtr *metrics, refresh func()) <-chan sample {
	// prepare channel
	samples := make(chan sample, 64)

	// run reader
	go func() {
		err := readSamples(ctx, r, samples, func(parsed bool) {
			if !parsed {
				mtr.skipped.Inc()
			}
			if refresh != nil {
				refresh()
			}
		})
		if err != nil {
			log.Error("Input failed: %v", err)
			return
		}
		log.Info("Input closed")
	}()

	return samples
}

func runWindow(sess *session, mtr *metrics) {
	// create window
	mw := giu.NewMasterWindow("streamplot: "+*title, 1000, 700, 0)
	chart := &chartWindow{
		session: sess,
		title:   *title,
		padding: *padding,
	}

	// run reader
	samples := startReader(context.Background(), os.Stdin, mtr, giu.Update)

	// run ui code
	mw.Run(func() {
		// background
		gl.ClearColor(40.0/255.0, 45.0/255.0, 50.0/255.0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		// ingest buffered samples
		if samples != nil {
			if _, open := sess.drain(samples); !open {
				samples = nil
			}
		}

		// draw chart
		chart.draw(mw)
	})
}
