// internal/bot/runner.go
package bot

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner owns the bot's main loop: it pulls messages from the
// transport and feeds them to the dispatcher one at a time. Commands
// are handled strictly sequentially; a swap in flight blocks the next
// command, which keeps the shared rate settings stable mid-swap.
type Runner struct {
	logger     *zap.Logger
	messenger  Messenger
	dispatcher *Dispatcher
	shutdown   *ShutdownHandler
	shutdownCh chan os.Signal
}

func NewRunner(messenger Messenger, dispatcher *Dispatcher, logger *zap.Logger) *Runner {
	shutdown := NewShutdownHandler(logger, 30*time.Second)
	shutdown.Add("messenger", messenger)

	return &Runner{
		logger:     logger,
		messenger:  messenger,
		dispatcher: dispatcher,
		shutdown:   shutdown,
		shutdownCh: make(chan os.Signal, 1),
	}
}

// Run polls for messages until ctx is cancelled or a termination
// signal arrives, then closes the transport.
func (r *Runner) Run(ctx context.Context) error {
	signal.Notify(r.shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case sig := <-r.shutdownCh:
			r.logger.Info("📡 Signal received: " + sig.String())
			cancel()
		case <-runCtx.Done():
		}
	}()

	updates := r.messenger.Updates(runCtx)
	r.logger.Info("🚀 Bot is polling for commands")

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		for msg := range updates {
			reply := r.dispatcher.Handle(gctx, msg.SenderID, msg.Text)
			if err := r.messenger.Send(msg.ChatID, reply); err != nil {
				r.logger.Error("Failed to send reply",
					zap.Int64("chat_id", msg.ChatID),
					zap.Error(err))
			}
		}
		return nil
	})

	err := g.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	r.shutdown.Shutdown(shutdownCtx)

	r.logger.Info("👋 Bot stopped")
	return err
}
