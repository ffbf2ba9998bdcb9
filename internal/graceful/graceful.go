// Package graceful coordinates shutdown of long-running services on
// SIGINT/SIGTERM.
package graceful

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

// Operation is one service's cleanup function.
type Operation func(ctx context.Context) error

// GracefulShutdown waits for a termination signal, then runs every
// operation concurrently under the given timeout. The returned channel
// closes once all operations finished; the process is killed if the
// timeout elapses first.
func GracefulShutdown(
	ctx context.Context,
	timeout time.Duration,
	operations map[string]Operation,
	log *slog.Logger,
) <-chan struct{} {
	wait := make(chan struct{})

	go func() {
		s := make(chan os.Signal, 1)
		signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
		<-s

		log.Info("shutting down services")

		timeoutFunc := time.AfterFunc(timeout, func() {
			log.Error("shutdown timeout elapsed, forcing exit",
				slog.Duration("timeout", timeout))
			os.Exit(1)
		})
		defer timeoutFunc.Stop()

		var wg sync.WaitGroup
		for key, op := range operations {
			wg.Add(1)
			go func(key string, op Operation) {
				defer wg.Done()

				log.Info("cleaning up", slog.String("service", key))
				if err := op(ctx); err != nil {
					log.Error("clean up failed",
						slog.String("service", key), sl.Err(err))
					return
				}
				log.Info("shut down gracefully", slog.String("service", key))
			}(key, op)
		}
		wg.Wait()

		close(wait)
	}()

	return wait
}
