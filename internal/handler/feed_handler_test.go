package handler_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emmaderbe/SocialApp/internal/handler"
	"github.com/emmaderbe/SocialApp/internal/hashutil"
	"github.com/emmaderbe/SocialApp/internal/imagecache"
	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/internal/presenter"
	"github.com/emmaderbe/SocialApp/internal/service"
	"github.com/emmaderbe/SocialApp/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type stubStats struct {
	stats imagecache.Stats
}

func (s stubStats) Stats() imagecache.Stats { return s.stats }

func newFeedHandler(t *testing.T) (*handler.FeedHandler, *mock.MockFeedSyncService, *presenter.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockFeedSyncService(ctrl)
	view := presenter.NewStore()
	return handler.NewFeedHandler(svc, view, stubStats{stats: imagecache.Stats{Hits: 3, Keys: 2}}), svc, view
}

func TestFeedHandler_List(t *testing.T) {
	h, svc, view := newFeedHandler(t)
	posts := []model.Post{
		{ID: 1, Title: "a", Body: "b", Liked: true},
		{ID: 2, Title: "c", Body: "d", ImageData: pngHeader},
	}
	view.OnLoadingStateChanged(model.LoadingRefreshing)
	view.OnPostsUpdated(posts)
	view.OnError(errors.New("offline"))
	svc.EXPECT().Posts().Return(posts)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts", nil))

	require.NoError(t, h.List(c))

	var resp handler.PostListResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, []handler.PostResponse{
		{ID: 1, Title: "a", Body: "b", Liked: true},
		{ID: 2, Title: "c", Body: "d", HasImage: true},
	}, resp.Posts)
	require.Equal(t, uint64(3), resp.Version)
	require.NotNil(t, resp.LastError)
	require.Equal(t, "offline", *resp.LastError)
	require.Contains(t, rec.Body.String(), `"loadingState":"refreshing"`)
}

func TestFeedHandler_List_Empty(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().Posts().Return(nil)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts", nil))
	require.NoError(t, h.List(c))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"posts":[]`)
	require.NotContains(t, rec.Body.String(), "lastError")
}

func TestFeedHandler_Get(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().Post(int64(5)).Return(model.Post{ID: 5, Title: "t", Body: "b"}, nil)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts/5", nil))
	setPathParams(c, map[string]string{"id": "5"})

	require.NoError(t, h.Get(c))

	var resp handler.PostResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, handler.PostResponse{ID: 5, Title: "t", Body: "b"}, resp)
}

func TestFeedHandler_Get_NotFound(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().Post(int64(5)).Return(model.Post{}, service.ErrNotFound)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts/5", nil))
	setPathParams(c, map[string]string{"id": "5"})

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedHandler_Get_InvalidID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", ""} {
		t.Run(raw, func(t *testing.T) {
			h, _, _ := newFeedHandler(t)

			e := newTestEcho()
			c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts/x", nil))
			setPathParams(c, map[string]string{"id": raw})

			require.NoError(t, h.Get(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "invalid request")
		})
	}
}

func TestParsePostID(t *testing.T) {
	e := newTestEcho()
	c, _ := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts/42", nil))
	setPathParams(c, map[string]string{"id": "42"})

	id, err := handler.ParsePostID(c)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	setPathParams(c, map[string]string{"id": "0"})
	_, err = handler.ParsePostID(c)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestFeedHandler_Image(t *testing.T) {
	h, _, view := newFeedHandler(t)
	view.OnPostsUpdated([]model.Post{{ID: 1}})
	view.OnImageLoaded(1, pngHeader)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts/1/image", nil))
	setPathParams(c, map[string]string{"id": "1"})

	require.NoError(t, h.Image(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Equal(t, hashutil.ShortETag(pngHeader), rec.Header().Get("ETag"))
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, pngHeader, rec.Body.Bytes())
}

func TestFeedHandler_Image_NotModified(t *testing.T) {
	h, _, view := newFeedHandler(t)
	view.OnPostsUpdated([]model.Post{{ID: 1, ImageData: pngHeader}})

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/posts/1/image", nil)
	req.Header.Set("If-None-Match", hashutil.ShortETag(pngHeader))
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "1"})

	require.NoError(t, h.Image(c))
	require.Equal(t, http.StatusNotModified, rec.Code)
	require.Empty(t, rec.Body.Bytes())
}

func TestFeedHandler_Image_Missing(t *testing.T) {
	h, _, view := newFeedHandler(t)
	view.OnPostsUpdated([]model.Post{{ID: 1}})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/posts/1/image", nil))
	setPathParams(c, map[string]string{"id": "1"})

	require.NoError(t, h.Image(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedHandler_Like(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	gomock.InOrder(
		svc.EXPECT().Post(int64(3)).Return(model.Post{ID: 3}, nil),
		svc.EXPECT().LikeToggled(int64(3), true),
	)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPut, "/api/posts/3/like", `{"liked":true}`))
	setPathParams(c, map[string]string{"id": "3"})

	require.NoError(t, h.Like(c))

	var resp handler.LikeResponse
	assertJSONResponse(t, rec, http.StatusAccepted, &resp)
	require.Equal(t, handler.LikeResponse{ID: 3, Liked: true}, resp)
}

func TestFeedHandler_Like_Unlike(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().Post(int64(3)).Return(model.Post{ID: 3, Liked: true}, nil)
	svc.EXPECT().LikeToggled(int64(3), false)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPut, "/api/posts/3/like", `{"liked":false}`))
	setPathParams(c, map[string]string{"id": "3"})

	require.NoError(t, h.Like(c))
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestFeedHandler_Like_InvalidBody(t *testing.T) {
	for name, body := range map[string]string{
		"missing field": `{}`,
		"malformed":     `{"liked":`,
		"wrong type":    `{"liked":"yes"}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _, _ := newFeedHandler(t)

			e := newTestEcho()
			c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPut, "/api/posts/3/like", body))
			setPathParams(c, map[string]string{"id": "3"})

			require.NoError(t, h.Like(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFeedHandler_Like_UnknownPost(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().Post(int64(404)).Return(model.Post{}, service.ErrNotFound)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPut, "/api/posts/404/like", `{"liked":true}`))
	setPathParams(c, map[string]string{"id": "404"})

	require.NoError(t, h.Like(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedHandler_LoadAndRefresh(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().ViewReady()
	svc.EXPECT().RefreshRequested()

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/api/feed/load", nil))
	require.NoError(t, h.Load(c))
	var resp handler.AcceptedResponse
	assertJSONResponse(t, rec, http.StatusAccepted, &resp)
	require.Equal(t, "loading", resp.Status)

	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/api/feed/refresh", nil))
	require.NoError(t, h.Refresh(c))
	assertJSONResponse(t, rec, http.StatusAccepted, &resp)
	require.Equal(t, "refreshing", resp.Status)
}

func TestFeedHandler_Next(t *testing.T) {
	tests := []struct {
		name     string
		status   service.FeedStatus
		scroll   bool
		code     int
		expected string
	}{
		{name: "can load", status: service.FeedStatus{CanLoadMore: true}, scroll: true, code: http.StatusAccepted, expected: "paginating"},
		{name: "exhausted", status: service.FeedStatus{Exhausted: true}, code: http.StatusOK, expected: "exhausted"},
		{name: "busy", status: service.FeedStatus{Loading: true}, code: http.StatusOK, expected: "busy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, svc, _ := newFeedHandler(t)
			svc.EXPECT().Status().Return(tc.status)
			if tc.scroll {
				svc.EXPECT().ScrollReachedEnd()
			}

			e := newTestEcho()
			c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/api/feed/next", nil))
			require.NoError(t, h.Next(c))

			var resp handler.AcceptedResponse
			assertJSONResponse(t, rec, tc.code, &resp)
			require.Equal(t, tc.expected, resp.Status)
		})
	}
}

func TestFeedHandler_Status(t *testing.T) {
	h, svc, _ := newFeedHandler(t)
	svc.EXPECT().Status().Return(service.FeedStatus{
		Page: 2, PageSize: 5, CanLoadMore: true, LoadingState: model.LoadingIdle, Count: 10,
	})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/api/feed/status", nil))
	require.NoError(t, h.Status(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(2), resp["page"])
	require.Equal(t, float64(5), resp["pageSize"])
	require.Equal(t, true, resp["canLoadMore"])
	require.Equal(t, "idle", resp["loadingState"])
	require.Equal(t, float64(10), resp["count"])
	images := resp["images"].(map[string]interface{})
	require.Equal(t, float64(3), images["hits"])
	require.Equal(t, float64(2), images["keys"])
}

func TestFeedHandler_Events(t *testing.T) {
	h, _, view := newFeedHandler(t)
	e := newTestEcho()
	h.RegisterRoutes(e.Group("/api"))
	server := httptest.NewServer(e)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readFrame := func() (string, presenter.Event) {
		var name string
		var ev presenter.Event
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
			case line == "" && name != "":
				return name, ev
			}
		}
	}

	name, ev := readFrame()
	require.Equal(t, "posts", name)
	require.Equal(t, uint64(0), ev.Version)

	view.OnPostsUpdated([]model.Post{{ID: 1}, {ID: 2}})
	name, ev = readFrame()
	require.Equal(t, "posts", name)
	require.Equal(t, 2, ev.Count)
	require.Equal(t, uint64(1), ev.Version)

	view.OnImageLoaded(2, pngHeader)
	name, ev = readFrame()
	require.Equal(t, "image", name)
	require.Equal(t, int64(2), ev.PostID)
}
