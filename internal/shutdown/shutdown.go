// Package shutdown coordinates stopping a blocking component when the
// process receives SIGINT or SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Graceful runs serve on its own goroutine and blocks until it returns or a
// termination signal arrives. On a signal, stop is invoked with a
// timeout-bounded context, and Graceful waits for serve to wind down before
// returning.
func Graceful(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	serve func(ctx context.Context) error,
	stop func(ctx context.Context) error,
) error {
	serveCtx, cancelServe := context.WithCancel(ctx)
	defer cancelServe()

	served := make(chan error, 1)
	go func() { served <- serve(serveCtx) }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-served:
		return err
	case sig := <-signals:
		logger.Info("signal received, stopping", "signal", sig.String())
	}

	cancelServe()
	stopCtx, cancelStop := context.WithTimeout(context.Background(), timeout)
	defer cancelStop()

	if err := stop(stopCtx); err != nil {
		logger.Error("stop failed", "error", err)
	}

	select {
	case err := <-served:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case <-stopCtx.Done():
		logger.Warn("component did not stop before deadline")
	}

	logger.Info("stopped")
	return nil
}
