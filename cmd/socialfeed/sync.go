package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/internal/presenter"
	"github.com/emmaderbe/SocialApp/internal/service"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch feed pages into the local store and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, _ := cmd.Flags().GetInt("pages")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		if pages < 1 {
			return errors.New("--pages must be at least 1")
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
		defer eng.stop()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		events, unsubscribe := eng.view.Subscribe(64 + 4*cfg.PageSize)
		defer unsubscribe()

		status, err := syncPages(ctx, eng.feed, events, pages)
		if err != nil {
			return err
		}

		if snap := eng.view.Snapshot(); snap.LastError != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "last fetch failed: %v\n", snap.LastError)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "synced %d posts (page %d, exhausted=%t)\n", status.Count, status.Page, status.Exhausted)
		return nil
	},
}

// syncPages drives the engine through up to pages load cycles, stopping early
// when the feed is exhausted or a fetch fails.
func syncPages(ctx context.Context, feed service.FeedSyncService, events <-chan presenter.Event, pages int) (service.FeedStatus, error) {
	feed.ViewReady()
	for i := 0; ; i++ {
		failed, err := waitIdle(ctx, events)
		if err != nil {
			return feed.Status(), err
		}
		status := feed.Status()
		if failed || i+1 >= pages || !status.CanLoadMore {
			return status, nil
		}
		feed.ScrollReachedEnd()
	}
}

// waitIdle blocks until the loading state returns to idle and reports whether
// an error event was seen on the way.
func waitIdle(ctx context.Context, events <-chan presenter.Event) (bool, error) {
	failed := false
	for {
		select {
		case <-ctx.Done():
			return failed, fmt.Errorf("wait for feed: %w", ctx.Err())
		case ev, ok := <-events:
			if !ok {
				return failed, errors.New("feed events closed")
			}
			if ev.Type == presenter.EventError {
				failed = true
			}
			if ev.Type == presenter.EventLoading && ev.LoadingState == model.LoadingIdle {
				return failed, nil
			}
		}
	}
}

func init() {
	syncCmd.Flags().Int("pages", 1, "number of pages to fetch")
	syncCmd.Flags().Duration("timeout", 2*time.Minute, "overall timeout")
}
