//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/emmaderbe/SocialApp/internal/model"
)

// PostRepository is the durable record store for feed posts.
type PostRepository interface {
	// UpsertAll inserts or overwrites every post in one batch. A failed batch writes nothing.
	UpsertAll(ctx context.Context, posts []model.Post) error
	// FetchAll returns every stored post in no particular order.
	FetchAll(ctx context.Context) ([]model.Post, error)
	// FetchByIDs returns the stored posts among ids. Missing ids are skipped.
	FetchByIDs(ctx context.Context, ids []int64) ([]model.Post, error)
	// UpdateLike patches the liked flag only. Unknown ids are ignored.
	UpdateLike(ctx context.Context, id int64, liked bool) error
}

type postRepository struct {
	db *sql.DB
}

// NewPostRepository returns a SQLite backed PostRepository. The schema must already be migrated.
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const upsertPostSQL = `
	INSERT INTO posts (id, title, body, liked, image_data, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		body = excluded.body,
		liked = excluded.liked,
		image_data = COALESCE(excluded.image_data, posts.image_data),
		updated_at = excluded.updated_at
`

func (r *postRepository) UpsertAll(ctx context.Context, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := formatTime(time.Now())
	for _, p := range posts {
		if err := upsertPost(ctx, tx, p, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func upsertPost(ctx context.Context, q dbtx, p model.Post, now string) error {
	_, err := q.ExecContext(ctx, upsertPostSQL,
		p.ID, p.Title, p.Body, boolToInt(p.Liked), nullableBytes(p.ImageData), now, now)
	if err != nil {
		return fmt.Errorf("upsert post %d: %w", p.ID, err)
	}
	return nil
}

func (r *postRepository) FetchAll(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, body, liked, image_data FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepository) FetchByIDs(ctx context.Context, ids []int64) ([]model.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, body, liked, image_data FROM posts WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts by id: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		var p model.Post
		var liked int
		var image []byte
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &liked, &image); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.Liked = liked != 0
		if len(image) > 0 {
			p.ImageData = image
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepository) UpdateLike(ctx context.Context, id int64, liked bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE posts SET liked = ?, updated_at = ? WHERE id = ?`,
		boolToInt(liked), formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update like %d: %w", id, err)
	}
	return nil
}
