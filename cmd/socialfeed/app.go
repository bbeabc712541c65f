package main

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/emmaderbe/SocialApp/internal/config"
	"github.com/emmaderbe/SocialApp/internal/db"
	"github.com/emmaderbe/SocialApp/internal/dispatch"
	"github.com/emmaderbe/SocialApp/internal/imagecache"
	"github.com/emmaderbe/SocialApp/internal/presenter"
	"github.com/emmaderbe/SocialApp/internal/repository"
	"github.com/emmaderbe/SocialApp/internal/service"
	"github.com/emmaderbe/SocialApp/pkg/logger"
	"github.com/emmaderbe/SocialApp/pkg/network"
)

// openStore opens the record store selected by cfg.Store.
func openStore(cfg config.Config) (repository.PostRepository, func() error, error) {
	switch cfg.Store {
	case config.StoreBolt:
		bdb, err := db.OpenBolt(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewBoltPostRepository(bdb), bdb.Close, nil
	default:
		sqlDB, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostRepository(sqlDB), sqlDB.Close, nil
	}
}

// closeStoreLogged closes the store and logs a failure instead of returning it.
func closeStoreLogged(closeStore func() error) {
	if err := closeStore(); err != nil {
		logger.Warn("close store", "module", "app", "action", "stop", "resource", "store", "result", "failed", "error", err)
	}
}

// engine bundles the running feed components.
type engine struct {
	queue *dispatch.Queue
	cache *imagecache.Cache
	view  *presenter.Store
	feed  service.FeedSyncService
}

func newEngine(cfg config.Config, posts repository.PostRepository) (*engine, error) {
	clientFactory := network.NewClientFactory(network.StaticProxy(cfg.ProxyURL))

	var limiter *rate.Limiter
	if cfg.ImageRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.ImageRate), 1)
	}
	imageService := service.NewImageService(clientFactory, limiter)

	queue := dispatch.NewQueue()
	cache, err := imagecache.New(imagecache.FetcherFunc(imageService.FetchImage), queue, imagecache.Options{
		MaxKeys:       cfg.ImageCacheKeys,
		MaxConcurrent: int64(cfg.ImageConcurrency),
	})
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}

	view := presenter.NewStore()
	feed := service.NewFeedSyncService(service.FeedSyncDeps{
		Source:   service.NewNetworkService(clientFactory, cfg.APIBaseURL),
		Posts:    posts,
		Images:   cache,
		URLs:     service.NewImageURLBuilder(cfg.ImageURLTemplate),
		Queue:    queue,
		Listener: view,
		PageSize: cfg.PageSize,
	})

	return &engine{queue: queue, cache: cache, view: view, feed: feed}, nil
}

func (e *engine) start() {
	e.feed.Start()
}

func (e *engine) stop() {
	e.feed.Stop()
	if err := e.cache.Close(); err != nil {
		logger.Warn("close image cache", "module", "app", "action", "stop", "resource", "images", "result", "failed", "error", err)
	}
}
