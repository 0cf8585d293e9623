// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/go-faster/mozlz4/internal/version"
)

// Run executes f with a development logger and a context that is
// cancelled on interrupt.
func Run(f func(ctx context.Context, lg *zap.Logger) error) {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lg.Debug("Starting", zap.String("version", version.Get().Raw))
	if err := f(ctx, lg); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
