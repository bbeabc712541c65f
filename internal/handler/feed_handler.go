package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emmaderbe/SocialApp/internal/hashutil"
	"github.com/emmaderbe/SocialApp/internal/imagecache"
	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/internal/presenter"
	"github.com/emmaderbe/SocialApp/internal/service"
)

// FeedView is the display-side state the handler reads from.
type FeedView interface {
	Snapshot() presenter.Snapshot
	Image(id int64) ([]byte, bool)
	Subscribe(buffer int) (<-chan presenter.Event, func())
}

// ImageStats reports image cache activity.
type ImageStats interface {
	Stats() imagecache.Stats
}

type FeedHandler struct {
	service service.FeedSyncService
	view    FeedView
	images  ImageStats
}

type likeRequest struct {
	Liked *bool `json:"liked"`
}

type likeResponse struct {
	ID    int64 `json:"id"`
	Liked bool  `json:"liked"`
}

type postResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Liked    bool   `json:"liked"`
	HasImage bool   `json:"hasImage"`
}

type postListResponse struct {
	Posts        []postResponse     `json:"posts"`
	LoadingState model.LoadingState `json:"loadingState"`
	Version      uint64             `json:"version"`
	LastError    *string            `json:"lastError,omitempty"`
}

type acceptedResponse struct {
	Status string `json:"status"`
}

type statusResponse struct {
	service.FeedStatus
	Images *imagecache.Stats `json:"images,omitempty"`
}

// NewFeedHandler wires the feed API. images may be nil.
func NewFeedHandler(svc service.FeedSyncService, view FeedView, images ImageStats) *FeedHandler {
	return &FeedHandler{service: svc, view: view, images: images}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/posts", h.List)
	g.GET("/posts/:id", h.Get)
	g.GET("/posts/:id/image", h.Image)
	g.PUT("/posts/:id/like", h.Like)
	g.POST("/feed/load", h.Load)
	g.POST("/feed/refresh", h.Refresh)
	g.POST("/feed/next", h.Next)
	g.GET("/feed/status", h.Status)
	g.GET("/events", h.Events)
}

// List reads posts from the engine, which already holds local likes, and
// the loading state, version and last error from the view.
func (h *FeedHandler) List(c echo.Context) error {
	posts := h.service.Posts()
	snap := h.view.Snapshot()

	resp := postListResponse{
		Posts:        make([]postResponse, 0, len(posts)),
		LoadingState: snap.LoadingState,
		Version:      snap.Version,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	if snap.LastError != nil {
		msg := snap.LastError.Error()
		resp.LastError = &msg
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FeedHandler) Get(c echo.Context) error {
	id, err := parsePostID(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	post, err := h.service.Post(id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

func (h *FeedHandler) Image(c echo.Context) error {
	id, err := parsePostID(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	data, ok := h.view.Image(id)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	etag := hashutil.ShortETag(data)
	c.Response().Header().Set("ETag", etag)
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

func (h *FeedHandler) Like(c echo.Context) error {
	id, err := parsePostID(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	var req likeRequest
	if err := c.Bind(&req); err != nil || req.Liked == nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	if _, err := h.service.Post(id); err != nil {
		return writeServiceError(c, err)
	}
	h.service.LikeToggled(id, *req.Liked)
	return c.JSON(http.StatusAccepted, likeResponse{ID: id, Liked: *req.Liked})
}

func (h *FeedHandler) Load(c echo.Context) error {
	h.service.ViewReady()
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "loading"})
}

func (h *FeedHandler) Refresh(c echo.Context) error {
	h.service.RefreshRequested()
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "refreshing"})
}

func (h *FeedHandler) Next(c echo.Context) error {
	status := h.service.Status()
	if !status.CanLoadMore {
		if status.Exhausted {
			return c.JSON(http.StatusOK, acceptedResponse{Status: "exhausted"})
		}
		return c.JSON(http.StatusOK, acceptedResponse{Status: "busy"})
	}
	h.service.ScrollReachedEnd()
	return c.JSON(http.StatusAccepted, acceptedResponse{Status: "paginating"})
}

func (h *FeedHandler) Status(c echo.Context) error {
	resp := statusResponse{FeedStatus: h.service.Status()}
	if h.images != nil {
		stats := h.images.Stats()
		resp.Images = &stats
	}
	return c.JSON(http.StatusOK, resp)
}

func toPostResponse(p model.Post) postResponse {
	return postResponse{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		Liked:    p.Liked,
		HasImage: p.HasImage(),
	}
}
