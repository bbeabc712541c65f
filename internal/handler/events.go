package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emmaderbe/SocialApp/internal/presenter"
	"github.com/emmaderbe/SocialApp/pkg/logger"
)

const (
	eventBuffer       = 32
	keepAliveInterval = 15 * time.Second
)

// Events streams presenter changes as server-sent events until the client disconnects.
func (h *FeedHandler) Events(c echo.Context) error {
	events, cancel := h.view.Subscribe(eventBuffer)
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	// the first frame lets clients render without waiting for a change
	snap := h.view.Snapshot()
	initial := presenter.Event{Type: presenter.EventPosts, Version: snap.Version, Count: len(snap.Posts), LoadingState: snap.LoadingState}
	if err := writeEvent(res, initial); err != nil {
		return nil
	}

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, ev); err != nil {
				logger.Debug("event stream closed", "module", "handler", "action", "stream", "resource", "events", "result", "failed", "error", err)
				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, ev presenter.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
