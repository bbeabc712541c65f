//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sort"
	"sync"
	"time"

	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/internal/pagination"
	"github.com/emmaderbe/SocialApp/internal/repository"
	"github.com/emmaderbe/SocialApp/pkg/logger"
	"github.com/emmaderbe/SocialApp/pkg/snowflake"
)

const storeTimeout = 5 * time.Second

// FeedListener receives feed changes. Every method is called on the engine's queue.
type FeedListener interface {
	OnPostsUpdated(posts []model.Post)
	OnImageLoaded(id int64, data []byte)
	OnError(err error)
	OnLoadingStateChanged(state model.LoadingState)
}

// ImageLoader resolves image content for a locator. onResult is delivered on the engine's queue.
type ImageLoader interface {
	Request(key string, onResult func(data []byte, ok bool))
}

// Queue is the serial executor owning all engine state.
type Queue interface {
	Start()
	Post(fn func()) bool
	Sync(fn func()) bool
	Stop()
}

// FeedStatus is a snapshot of pagination and loading progress.
type FeedStatus struct {
	Page         int                `json:"page"`
	PageSize     int                `json:"pageSize"`
	Loading      bool               `json:"loading"`
	Exhausted    bool               `json:"exhausted"`
	CanLoadMore  bool               `json:"canLoadMore"`
	LoadingState model.LoadingState `json:"loadingState"`
	Count        int                `json:"count"`
}

// FeedSyncService keeps the ordered post list in sync with the remote feed and the local store.
// Inbound calls may come from any goroutine; they are serialized on the engine's queue.
type FeedSyncService interface {
	ViewReady()
	RefreshRequested()
	ScrollReachedEnd()
	LikeToggled(id int64, liked bool)
	Posts() []model.Post
	Post(id int64) (model.Post, error)
	Status() FeedStatus
	Start()
	Stop()
}

// FeedSyncDeps groups the collaborators of the engine.
type FeedSyncDeps struct {
	Source   FeedSource
	Posts    repository.PostRepository
	Images   ImageLoader
	URLs     ImageURLBuilder
	Queue    Queue
	Listener FeedListener
	PageSize int
}

type cycleResult struct {
	trigger    loadTrigger
	generation uint64
	token      int64
	items      []model.FeedResponse
	err        error
}

type feedSyncService struct {
	source   FeedSource
	posts    repository.PostRepository
	images   ImageLoader
	urls     ImageURLBuilder
	queue    Queue
	listener FeedListener

	// confined to queue
	pager      *pagination.Manager
	loading    *loadingStateMachine
	items      []model.Post
	index      map[int64]int
	generation uint64
	token      int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewFeedSyncService(deps FeedSyncDeps) FeedSyncService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &feedSyncService{
		source:   deps.Source,
		posts:    deps.Posts,
		images:   deps.Images,
		urls:     deps.URLs,
		queue:    deps.Queue,
		listener: deps.Listener,
		pager:    pagination.New(deps.PageSize),
		index:    make(map[int64]int),
		ctx:      ctx,
		cancel:   cancel,
	}
	if s.listener == nil {
		s.listener = noopListener{}
	}
	s.loading = newLoadingStateMachine(s.listener.OnLoadingStateChanged)
	return s
}

func (s *feedSyncService) Start() {
	s.queue.Start()
}

// Stop cancels outstanding fetches, drains the queue and waits for workers to exit.
func (s *feedSyncService) Stop() {
	s.cancel()
	s.queue.Stop()
	s.wg.Wait()
}

func (s *feedSyncService) ViewReady() {
	s.post("view_ready", s.viewReady)
}

func (s *feedSyncService) RefreshRequested() {
	s.post("refresh", func() { s.load(triggerRefresh) })
}

func (s *feedSyncService) ScrollReachedEnd() {
	s.post("scroll_end", func() { s.load(triggerScrollEnd) })
}

func (s *feedSyncService) LikeToggled(id int64, liked bool) {
	s.post("like", func() {
		if err := s.toggleLike(id, liked); err != nil {
			logger.Debug("like ignored", "module", "service", "action", "like", "resource", "post", "result", "skipped", "post_id", id, "error", err)
		}
	})
}

func (s *feedSyncService) Posts() []model.Post {
	var posts []model.Post
	s.queue.Sync(func() {
		posts = model.ClonePosts(s.items)
	})
	return posts
}

func (s *feedSyncService) Post(id int64) (model.Post, error) {
	var (
		post  model.Post
		found bool
	)
	if !s.queue.Sync(func() {
		if idx, ok := s.index[id]; ok {
			post = s.items[idx].Clone()
			found = true
		}
	}) {
		return model.Post{}, ErrStopped
	}
	if !found {
		return model.Post{}, ErrNotFound
	}
	return post, nil
}

func (s *feedSyncService) Status() FeedStatus {
	var status FeedStatus
	s.queue.Sync(func() {
		snap := s.pager.Snapshot()
		status = FeedStatus{
			Page:         snap.Page,
			PageSize:     snap.PageSize,
			Loading:      snap.Loading,
			Exhausted:    snap.Exhausted,
			CanLoadMore:  s.pager.CanLoadNextPage(),
			LoadingState: s.loading.current(),
			Count:        len(s.items),
		}
	})
	return status
}

func (s *feedSyncService) post(action string, fn func()) {
	if !s.queue.Post(fn) {
		logger.Warn("feed engine stopped", "module", "service", "action", action, "resource", "feed", "result", "skipped")
	}
}

func (s *feedSyncService) viewReady() {
	s.generation++
	s.pager.Reset()
	s.loading.begin(triggerViewReady)

	stored := s.fetchStored()
	sort.Slice(stored, func(i, j int) bool { return stored[i].ID < stored[j].ID })
	s.replace(stored)
	logger.Info("feed rehydrated", "module", "service", "action", "view_ready", "resource", "feed", "result", "ok", "count", len(stored))
	s.listener.OnPostsUpdated(model.ClonePosts(s.items))

	s.startCycle(triggerViewReady)
}

func (s *feedSyncService) load(trigger loadTrigger) {
	if trigger.resets() {
		s.generation++
		s.pager.Reset()
	} else if !s.pager.CanLoadNextPage() {
		return
	}

	s.loading.begin(trigger)
	s.startCycle(trigger)
}

func (s *feedSyncService) startCycle(trigger loadTrigger) {
	s.pager.BeginLoading()
	start, limit := s.pager.RequestParams()

	res := cycleResult{
		trigger:    trigger,
		generation: s.generation,
		token:      snowflake.NextID(),
	}
	s.token = res.token
	logger.Debug("feed cycle started", "module", "service", "action", trigger.String(), "resource", "feed", "result", "ok", "cycle", res.token, "start", start, "limit", limit)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		res.items, res.err = s.source.FetchPosts(s.ctx, start, limit)
		if !s.queue.Post(func() { s.finishCycle(res) }) {
			logger.Debug("feed cycle dropped", "module", "service", "action", trigger.String(), "resource", "feed", "result", "skipped", "cycle", res.token)
		}
	}()
}

func (s *feedSyncService) finishCycle(res cycleResult) {
	if res.generation != s.generation || res.token != s.token {
		logger.Info("stale feed result discarded", "module", "service", "action", res.trigger.String(), "resource", "feed", "result", "skipped", "cycle", res.token)
		return
	}

	if res.err != nil {
		s.pager.Reset()
		err := res.err
		if !errors.Is(err, ErrTransport) {
			err = fmt.Errorf("%w: %v", ErrTransport, err)
		}
		logger.Warn("feed cycle failed", "module", "service", "action", res.trigger.String(), "resource", "feed", "result", "failed", "cycle", res.token, "error", err)
		s.listener.OnError(err)
		s.loading.finish()
		return
	}

	s.pager.EndLoading(len(res.items))
	fetched := mapFeedResponses(res.items)
	s.reconcile(fetched)

	if res.trigger.resets() {
		s.replace(fetched)
	} else {
		s.merge(fetched)
	}
	s.persist(fetched)

	logger.Info("feed cycle completed", "module", "service", "action", res.trigger.String(), "resource", "feed", "result", "ok", "cycle", res.token, "received", len(res.items), "count", len(s.items), "exhausted", s.pager.Snapshot().Exhausted)
	s.listener.OnPostsUpdated(model.ClonePosts(s.items))
	s.loading.finish()

	for _, p := range fetched {
		if !p.HasImage() {
			s.requestImage(p.ID)
		}
	}
}

// reconcile carries local state (likes and downloaded images) onto freshly fetched posts.
// The in-memory list takes precedence over the store.
func (s *feedSyncService) reconcile(fetched []model.Post) {
	if len(fetched) == 0 {
		return
	}

	known := make(map[int64]model.Post, len(fetched))
	var missing []int64
	for _, p := range fetched {
		if idx, ok := s.index[p.ID]; ok {
			known[p.ID] = s.items[idx]
			continue
		}
		missing = append(missing, p.ID)
	}
	for _, p := range s.fetchStoredByIDs(missing) {
		known[p.ID] = p
	}

	for i := range fetched {
		prev, ok := known[fetched[i].ID]
		if !ok {
			continue
		}
		fetched[i].Liked = prev.Liked
		if prev.HasImage() {
			fetched[i].ImageData = prev.ImageData
		}
	}
}

func (s *feedSyncService) replace(posts []model.Post) {
	s.items = make([]model.Post, 0, len(posts))
	s.index = make(map[int64]int, len(posts))
	s.merge(posts)
}

// merge appends new posts and updates existing ids in place.
func (s *feedSyncService) merge(posts []model.Post) {
	for _, p := range posts {
		if idx, ok := s.index[p.ID]; ok {
			s.items[idx] = p
			continue
		}
		s.index[p.ID] = len(s.items)
		s.items = append(s.items, p)
	}
}

func (s *feedSyncService) toggleLike(id int64, liked bool) error {
	idx, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPost, id)
	}
	s.items[idx].Liked = liked

	ctx, cancel := context.WithTimeout(s.ctx, storeTimeout)
	defer cancel()
	if err := s.posts.UpdateLike(ctx, id, liked); err != nil {
		logger.Warn("store like failed", "module", "service", "action", "like", "resource", "post", "result", "failed", "post_id", id, "error", err)
	}
	return nil
}

func (s *feedSyncService) requestImage(id int64) {
	if s.images == nil {
		return
	}
	s.images.Request(s.urls.URL(id), func(data []byte, ok bool) {
		s.applyImage(id, data, ok)
	})
}

func (s *feedSyncService) applyImage(id int64, data []byte, ok bool) {
	if !ok {
		return
	}
	if !isImage(data) {
		logger.Warn("image content rejected", "module", "service", "action", "image", "resource", "post", "result", "failed", "post_id", id, "size", len(data))
		return
	}
	idx, found := s.index[id]
	if !found {
		return
	}

	s.items[idx].ImageData = append([]byte(nil), data...)
	s.listener.OnImageLoaded(id, append([]byte(nil), data...))
	s.persist([]model.Post{s.items[idx]})
}

func (s *feedSyncService) fetchStored() []model.Post {
	ctx, cancel := context.WithTimeout(s.ctx, storeTimeout)
	defer cancel()

	stored, err := s.posts.FetchAll(ctx)
	if err != nil {
		logger.Warn("store fetch failed", "module", "service", "action", "fetch", "resource", "post", "result", "failed", "error", err)
		return nil
	}
	return stored
}

// fetchStoredByIDs looks up only the given ids so a fetch cycle never reads the whole store.
func (s *feedSyncService) fetchStoredByIDs(ids []int64) []model.Post {
	if len(ids) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(s.ctx, storeTimeout)
	defer cancel()

	stored, err := s.posts.FetchByIDs(ctx, ids)
	if err != nil {
		logger.Warn("store lookup failed", "module", "service", "action", "fetch", "resource", "post", "result", "failed", "count", len(ids), "error", err)
		return nil
	}
	return stored
}

func (s *feedSyncService) persist(posts []model.Post) {
	if len(posts) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(s.ctx, storeTimeout)
	defer cancel()

	if err := s.posts.UpsertAll(ctx, model.ClonePosts(posts)); err != nil {
		logger.Warn("store upsert failed", "module", "service", "action", "save", "resource", "post", "result", "failed", "count", len(posts), "error", err)
	}
}

// isImage reports whether data decodes as a supported image format.
func isImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

type noopListener struct{}

func (noopListener) OnPostsUpdated([]model.Post) {}
func (noopListener) OnImageLoaded(int64, []byte) {}
func (noopListener) OnError(error) {}
func (noopListener) OnLoadingStateChanged(model.LoadingState) {}
