// Command mozlz4-dump decompresses a mozLz4 file to stdout or a file,
// or compresses one with -compress.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/go-faster/mozlz4"
	"github.com/go-faster/mozlz4/internal/cmd/app"
	"github.com/go-faster/mozlz4/profile"
)

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) (re error) {
		var arg struct {
			Input    string
			Output   string
			Backend  string
			Compress bool
			Profile  string
		}
		flag.StringVar(&arg.Input, "i", "", "input file (default: the profile's session store)")
		flag.StringVar(&arg.Output, "o", "", "output file (default: stdout)")
		flag.StringVar(&arg.Backend, "backend", mozlz4.LibraryPierrec.String(), "lz4 block backend")
		flag.BoolVar(&arg.Compress, "compress", false, "compress input instead of decompressing")
		flag.StringVar(&arg.Profile, "profile", "", "firefox profile name to resolve input from")
		flag.Parse()

		l, err := mozlz4.LibraryString(arg.Backend)
		if err != nil {
			return errors.Wrap(err, "backend")
		}
		b := l.Backend()

		input := arg.Input
		if input == "" {
			if arg.Profile == "" {
				return errors.New("either -i or -profile is required")
			}
			root, err := profile.Dir()
			if err != nil {
				return errors.Wrap(err, "profiles dir")
			}
			p, err := profile.Find(root, arg.Profile)
			if err != nil {
				return errors.Wrap(err, "find profile")
			}
			if input, err = p.SessionFile(); err != nil {
				return errors.Wrap(err, "session file")
			}
			lg.Info("Resolved session store",
				zap.String("profile", p.Name()),
				zap.String("file", input),
			)
		}

		data, err := os.ReadFile(input)
		if err != nil {
			return errors.Wrap(err, "read input")
		}

		var out io.Writer = os.Stdout
		if arg.Output != "" {
			f, err := os.Create(arg.Output)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			defer func() {
				if err := f.Close(); err != nil {
					re = multierr.Append(re, err)
				}
			}()
			out = f
		}

		if arg.Compress {
			e, err := mozlz4.Encode(data, b)
			if err != nil {
				return errors.Wrap(err, "encode")
			}
			if _, err := e.WriteTo(out); err != nil {
				return errors.Wrap(err, "write")
			}
			lg.Info("Compressed",
				zap.String("backend", l.String()),
				zap.String("in", humanize.Bytes(uint64(len(data)))),
				zap.String("out", humanize.Bytes(uint64(e.Len()))),
			)
			return nil
		}

		raw, err := mozlz4.Decode(data, b)
		if err != nil {
			return errors.Wrap(err, "decode")
		}
		if _, err := out.Write(raw); err != nil {
			return errors.Wrap(err, "write")
		}
		lg.Info("Decompressed",
			zap.String("backend", l.String()),
			zap.String("in", humanize.Bytes(uint64(len(data)))),
			zap.String("out", humanize.Bytes(uint64(len(raw)))),
		)
		return nil
	})
}
