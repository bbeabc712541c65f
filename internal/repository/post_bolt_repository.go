package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/pkg/logger"
)

const bucketPosts = "posts"

type boltPost struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Liked     bool   `json:"liked"`
	ImageData []byte `json:"image_data,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

type boltPostRepository struct {
	db *bolt.DB
}

// NewBoltPostRepository returns a PostRepository stored in a single bolt bucket.
func NewBoltPostRepository(db *bolt.DB) PostRepository {
	return &boltPostRepository{db: db}
}

func postKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}

func (r *boltPostRepository) UpsertAll(ctx context.Context, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := formatTime(time.Now())
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketPosts))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		for _, p := range posts {
			rec := boltPost{ID: p.ID, Title: p.Title, Body: p.Body, Liked: p.Liked, ImageData: p.ImageData, UpdatedAt: now}
			key := postKey(p.ID)
			if len(rec.ImageData) == 0 {
				if existing := bucket.Get(key); existing != nil {
					var prev boltPost
					if err := json.Unmarshal(existing, &prev); err == nil {
						rec.ImageData = prev.ImageData
					}
				}
			}

			data, err := json.Marshal(&rec)
			if err != nil {
				return fmt.Errorf("marshal post %d: %w", p.ID, err)
			}
			if err := bucket.Put(key, data); err != nil {
				return fmt.Errorf("put post %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

func (r *boltPostRepository) FetchAll(ctx context.Context) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var posts []model.Post
	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketPosts))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			if p, ok := decodeBoltPost(v); ok {
				posts = append(posts, p)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *boltPostRepository) FetchByIDs(ctx context.Context, ids []int64) ([]model.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var posts []model.Post
	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketPosts))
		if bucket == nil {
			return nil
		}
		for _, id := range ids {
			v := bucket.Get(postKey(id))
			if v == nil {
				continue
			}
			if p, ok := decodeBoltPost(v); ok {
				posts = append(posts, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// decodeBoltPost copies the record out of the bolt page; values are only valid inside the transaction.
func decodeBoltPost(v []byte) (model.Post, bool) {
	var rec boltPost
	if err := json.Unmarshal(v, &rec); err != nil {
		logger.Warn("skip undecodable post record",
			"module", "repository", "action", "fetch", "resource", "post", "result", "failed", "error", err)
		return model.Post{}, false
	}
	return model.Post{
		ID:        rec.ID,
		Title:     rec.Title,
		Body:      rec.Body,
		Liked:     rec.Liked,
		ImageData: rec.ImageData,
	}, true
}

func (r *boltPostRepository) UpdateLike(ctx context.Context, id int64, liked bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketPosts))
		if bucket == nil {
			return nil
		}
		key := postKey(id)
		existing := bucket.Get(key)
		if existing == nil {
			return nil
		}

		var rec boltPost
		if err := json.Unmarshal(existing, &rec); err != nil {
			return fmt.Errorf("decode post %d: %w", id, err)
		}
		rec.Liked = liked
		rec.UpdatedAt = formatTime(time.Now())

		data, err := json.Marshal(&rec)
		if err != nil {
			return fmt.Errorf("marshal post %d: %w", id, err)
		}
		return bucket.Put(key, data)
	})
}
