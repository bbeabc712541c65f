package service

import (
	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/pkg/sanitizer"
)

// mapFeedResponses converts a remote page into posts, dropping repeated ids.
func mapFeedResponses(items []model.FeedResponse) []model.Post {
	posts := make([]model.Post, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		posts = append(posts, mapFeedResponse(item))
	}
	return posts
}

func mapFeedResponse(item model.FeedResponse) model.Post {
	return model.Post{
		ID:    item.ID,
		Title: sanitizer.CleanText(item.Title),
		Body:  sanitizer.CleanText(item.Body),
		Liked: false,
	}
}
