//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/emmaderbe/SocialApp/internal/config"
	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/pkg/logger"
	"github.com/emmaderbe/SocialApp/pkg/network"
)

const feedTimeout = 30 * time.Second

// maxFeedBody caps the decoded page size.
const maxFeedBody = 8 << 20

// FeedSource returns one page of the remote feed.
type FeedSource interface {
	FetchPosts(ctx context.Context, start, limit int) ([]model.FeedResponse, error)
}

type networkService struct {
	clientFactory *network.ClientFactory
	baseURL       string
}

// NewNetworkService returns a FeedSource reading {baseURL}/posts?_start=&_limit=.
func NewNetworkService(clientFactory *network.ClientFactory, baseURL string) FeedSource {
	return &networkService{
		clientFactory: clientFactory,
		baseURL:       strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

func (s *networkService) FetchPosts(ctx context.Context, start, limit int) ([]model.FeedResponse, error) {
	pageURL, err := s.pageURL(start, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("User-Agent", config.DefaultUserAgent)
	req.Header.Set("Accept", "application/json")

	httpClient := s.clientFactory.NewHTTPClient(ctx, feedTimeout)
	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Warn("feed request failed", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "host", network.ExtractHost(pageURL), "start", start, "limit", limit, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Error("feed http error", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "host", network.ExtractHost(pageURL), "start", start, "limit", limit, "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
	}

	var items []model.FeedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedBody)).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrTransport, err)
	}

	logger.Debug("feed page fetched", "module", "service", "action", "fetch", "resource", "feed", "result", "ok", "start", start, "limit", limit, "count", len(items))
	return items, nil
}

func (s *networkService) pageURL(start, limit int) (string, error) {
	u, err := url.Parse(s.baseURL + "/posts")
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	q := u.Query()
	q.Set("_start", strconv.Itoa(start))
	q.Set("_limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
