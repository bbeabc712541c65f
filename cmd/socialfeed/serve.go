package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emmaderbe/SocialApp/internal/handler"
	gh "github.com/emmaderbe/SocialApp/internal/http"
	"github.com/emmaderbe/SocialApp/internal/scheduler"
	"github.com/emmaderbe/SocialApp/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the feed engine behind the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		posts, closeStore, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeStoreLogged(closeStore)

		eng, err := newEngine(cfg, posts)
		if err != nil {
			return err
		}
		eng.start()
		eng.feed.ViewReady()

		sched := scheduler.New(eng.feed, cfg.RefreshInterval)
		sched.Start()

		e := gh.NewRouter(handler.NewFeedHandler(eng.feed, eng.view, eng.cache))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "module", "app", "action", "serve", "addr", cfg.Addr, "store", cfg.Store)
			if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		var serveErr error
		select {
		case <-ctx.Done():
		case serveErr = <-errCh:
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", "module", "app", "action", "stop", "result", "failed", "error", err)
		}
		sched.Stop()
		eng.stop()
		logger.Info("server stopped", "module", "app", "action", "stop", "result", "ok")
		return serveErr
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address; overrides SOCIALFEED_ADDR")
}
