//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Noooste/azuretls-client"
	"golang.org/x/time/rate"

	"github.com/emmaderbe/SocialApp/internal/config"
	"github.com/emmaderbe/SocialApp/pkg/logger"
	"github.com/emmaderbe/SocialApp/pkg/network"
)

const imageTimeout = 30 * time.Second

// ImageSource downloads raw image content.
type ImageSource interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

type imageService struct {
	clientFactory *network.ClientFactory
	limiter       *rate.Limiter
}

// NewImageService returns an ImageSource. A nil limiter disables pacing.
func NewImageService(clientFactory *network.ClientFactory, limiter *rate.Limiter) ImageSource {
	return &imageService{
		clientFactory: clientFactory,
		limiter:       limiter,
	}
}

func (s *imageService) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url", ErrImageFetch)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: invalid protocol", ErrImageFetch)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageFetch, err)
		}
	}

	session := s.clientFactory.NewAzureSession(ctx, imageTimeout)
	defer session.Close()

	headers := azuretls.OrderedHeaders{
		{"accept", "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8"},
		{"accept-language", "en-US,en;q=0.9"},
		{"referer", parsedURL.Scheme + "://" + parsedURL.Host + "/"},
		{"sec-ch-ua", config.ChromeSecChUa},
		{"sec-ch-ua-mobile", "?0"},
		{"sec-ch-ua-platform", `"Windows"`},
		{"sec-fetch-dest", "image"},
		{"sec-fetch-mode", "no-cors"},
		{"sec-fetch-site", "cross-site"},
		{"user-agent", config.ChromeUserAgent},
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            imageURL,
		OrderedHeaders: headers,
	})
	if err != nil {
		logger.Warn("image fetch failed", "module", "service", "action", "fetch", "resource", "image", "result", "failed", "host", parsedURL.Host, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrImageFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("image http error", "module", "service", "action", "fetch", "resource", "image", "result", "failed", "host", parsedURL.Host, "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", ErrImageFetch, resp.StatusCode)
	}
	if len(resp.Body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrImageFetch)
	}

	return resp.Body, nil
}
