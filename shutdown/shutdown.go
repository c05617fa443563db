// Package shutdown turns SIGINT and SIGTERM into context cancellation, so a
// long-running command can stop between units of work.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amp-labs/amp-validator/logger"
)

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	trigger chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers h to run when shutdown starts, before the
// handler's context is canceled. Hooks run once, in registration order.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// SetupHandler returns a child of parent that is canceled on SIGINT or
// SIGTERM, after the BeforeShutdown hooks have run. stop uninstalls the
// handler and cancels the context without running hooks; it is safe to call
// more than once.
//
// Only the first signal is handled. A second one arriving while hooks run
// is left to the channel buffer, and after stop the default signal behaviour
// applies again.
//
// Example:
//
//	func main() {
//	    ctx, stop := shutdown.SetupHandler(context.Background())
//	    shutdown.BeforeShutdown(flushTraces)
//
//	    code := run(ctx)
//
//	    stop()
//	    os.Exit(code)
//	}
func SetupHandler(parent context.Context) (ctx context.Context, stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	trigger = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-ch:
			logger.Get(ctx).Warn("Received " + sig.String() + ", shutting down...")
			runHooks()
			cancel()
		case <-done:
		}
	}()

	var once sync.Once

	return ctx, func() {
		once.Do(func() {
			signal.Stop(ch)

			mut.Lock()
			if trigger == ch {
				trigger = nil
			}
			mut.Unlock()

			close(done)
			cancel()
		})
	}
}

func runHooks() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
