// Command mozlz4-bench runs concurrent encode/decode round-trips over a
// corpus file and reports throughput.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/mozlz4"
)

func run(ctx context.Context) error {
	var arg struct {
		Jobs     int
		Duration time.Duration
		Input    string
		Backend  string
	}
	flag.IntVar(&arg.Jobs, "j", 4, "jobs")
	flag.DurationVar(&arg.Duration, "d", 5*time.Second, "duration")
	flag.StringVar(&arg.Input, "i", "testdata/sessionstore.json", "corpus file")
	flag.StringVar(&arg.Backend, "backend", mozlz4.LibraryPierrec.String(), "decode backend")
	flag.Parse()

	src, err := os.ReadFile(arg.Input)
	if err != nil {
		return errors.Wrap(err, "read corpus")
	}
	l, err := mozlz4.LibraryString(arg.Backend)
	if err != nil {
		return errors.Wrap(err, "backend")
	}
	want := city.CH128(src)

	var (
		rounds   atomic.Uint64
		rawBytes atomic.Uint64
		encBytes atomic.Uint64
	)
	ctx, cancel := context.WithTimeout(ctx, arg.Duration)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for i := 0; i < arg.Jobs; i++ {
		g.Go(func() error {
			// Compressor and decompressor state is not shared between jobs.
			enc := mozlz4.NewPierrec()
			dec := l.Backend()
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				e, err := mozlz4.Encode(src, enc)
				if err != nil {
					return errors.Wrap(err, "encode")
				}
				out, err := mozlz4.Decode(e.Bytes(), dec)
				if err != nil {
					return errors.Wrap(err, "decode")
				}
				if city.CH128(out) != want {
					return errors.New("round-trip hash mismatch")
				}
				rounds.Inc()
				rawBytes.Add(uint64(len(src)))
				encBytes.Add(uint64(e.Len()))
			}
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "wait")
	}
	duration := time.Since(start)
	fmt.Println(duration.Round(time.Millisecond), rounds.Load(), "rounds",
		humanize.Bytes(rawBytes.Load()),
		humanize.Bytes(uint64(float64(rawBytes.Load())/duration.Seconds()))+"/s",
		"ratio", fmt.Sprintf("%.2f", float64(encBytes.Load())/float64(rawBytes.Load())),
		arg.Jobs, "jobs",
	)
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
