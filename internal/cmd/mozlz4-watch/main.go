// Command mozlz4-watch polls a Firefox session store file and logs a
// summary whenever the session changes.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/go-faster/mozlz4"
	"github.com/go-faster/mozlz4/internal/cmd/app"
	"github.com/go-faster/mozlz4/profile"
	"github.com/go-faster/mozlz4/sessionstore"
)

func resolve(input, profileName string, lg *zap.Logger) (string, error) {
	if input != "" {
		return input, nil
	}
	root, err := profile.Dir()
	if err != nil {
		return "", errors.Wrap(err, "profiles dir")
	}
	var p profile.Profile
	if profileName == "" {
		profiles, err := profile.List(root)
		if err != nil {
			return "", errors.Wrap(err, "list profiles")
		}
		if len(profiles) == 0 {
			return "", errors.New("no firefox profiles found")
		}
		// Newest profile is the most likely active one.
		p = profiles[0]
	} else {
		if p, err = profile.Find(root, profileName); err != nil {
			return "", errors.Wrap(err, "find profile")
		}
	}
	target, err := p.SessionFile()
	if err != nil {
		return "", errors.Wrap(err, "session file")
	}
	lg.Info("Watching session store",
		zap.String("profile", p.Name()),
		zap.String("file", target),
	)
	return target, nil
}

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		var arg struct {
			Profile, Input string
			Interval       time.Duration
		}
		flag.StringVar(&arg.Profile, "profile", "", "firefox profile name")
		flag.StringVar(&arg.Input, "i", "", "session store file (overrides -profile)")
		flag.DurationVar(&arg.Interval, "interval", 5*time.Second, "poll interval")
		flag.Parse()

		target, err := resolve(arg.Input, arg.Profile, lg)
		if err != nil {
			return err
		}

		b := mozlz4.LibraryPierrec.Backend()
		load := func() (*sessionstore.Store, error) {
			var st *sessionstore.Store
			// Firefox replaces the store on save, so a read can race a
			// write and see a partial or missing file.
			bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
			if err := backoff.Retry(func() error {
				data, err := os.ReadFile(target)
				if err != nil {
					return err
				}
				st, err = sessionstore.Decode(data, b)
				return err
			}, bo); err != nil {
				return nil, err
			}
			return st, nil
		}

		last := int64(-1)
		tick := time.NewTicker(arg.Interval)
		defer tick.Stop()
		for {
			st, err := load()
			if err != nil {
				return errors.Wrap(err, "load")
			}
			var update int64
			if st.Session != nil {
				update = st.Session.LastUpdate
			}
			if update != last {
				last = update
				var tabs int
				for _, w := range st.Windows {
					tabs += len(w.Tabs)
				}
				lg.Info("Session changed",
					zap.Int("windows", len(st.Windows)),
					zap.Int("closed_windows", len(st.ClosedWindows)),
					zap.Int("tabs", tabs),
					zap.Time("updated", time.UnixMilli(update)),
				)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-tick.C:
			}
		}
	})
}
