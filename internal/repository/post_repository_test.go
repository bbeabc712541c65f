package repository_test

import (
	"context"
	"sort"
	"testing"

	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/internal/repository"
	"github.com/emmaderbe/SocialApp/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func repositories(t *testing.T) map[string]func(t *testing.T) repository.PostRepository {
	return map[string]func(t *testing.T) repository.PostRepository{
		"sqlite": func(t *testing.T) repository.PostRepository {
			return repository.NewPostRepository(testutil.NewTestDB(t))
		},
		"bolt": func(t *testing.T) repository.PostRepository {
			return repository.NewBoltPostRepository(testutil.NewTestBolt(t))
		},
	}
}

func fetchSorted(t *testing.T, repo repository.PostRepository) []model.Post {
	t.Helper()
	posts, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts
}

func TestPostRepository_FetchAllEmpty(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			posts, err := repo.FetchAll(context.Background())
			require.NoError(t, err)
			require.Empty(t, posts)
		})
	}
}

func TestPostRepository_UpsertAllInsertsAndOverwrites(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			require.NoError(t, repo.UpsertAll(ctx, []model.Post{
				{ID: 2, Title: "two", Body: "b2"},
				{ID: 1, Title: "one", Body: "b1", Liked: true},
			}))
			require.NoError(t, repo.UpsertAll(ctx, []model.Post{
				{ID: 2, Title: "two v2", Body: "b2 v2", Liked: true},
			}))

			posts := fetchSorted(t, repo)
			require.Equal(t, []model.Post{
				{ID: 1, Title: "one", Body: "b1", Liked: true},
				{ID: 2, Title: "two v2", Body: "b2 v2", Liked: true},
			}, posts)
		})
	}
}

func TestPostRepository_UpsertAllKeepsStoredImage(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			require.NoError(t, repo.UpsertAll(ctx, []model.Post{{ID: 1, Title: "t", ImageData: []byte{0x89, 'P'}}}))
			require.NoError(t, repo.UpsertAll(ctx, []model.Post{{ID: 1, Title: "t2"}}))

			posts := fetchSorted(t, repo)
			require.Len(t, posts, 1)
			require.Equal(t, "t2", posts[0].Title)
			require.Equal(t, []byte{0x89, 'P'}, posts[0].ImageData)
		})
	}
}

func TestPostRepository_UpsertAllEmptyBatch(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.UpsertAll(context.Background(), nil))
			require.Empty(t, fetchSorted(t, repo))
		})
	}
}

func TestPostRepository_UpdateLike(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			require.NoError(t, repo.UpsertAll(ctx, []model.Post{{ID: 3, Title: "t", Body: "b"}}))

			require.NoError(t, repo.UpdateLike(ctx, 3, true))
			require.NoError(t, repo.UpdateLike(ctx, 3, false))

			posts := fetchSorted(t, repo)
			require.Len(t, posts, 1)
			require.False(t, posts[0].Liked)
			require.Equal(t, "t", posts[0].Title)

			require.NoError(t, repo.UpdateLike(ctx, 3, true))
			require.True(t, fetchSorted(t, repo)[0].Liked)
		})
	}
}

func TestPostRepository_UpdateLikeUnknownIDIsNoop(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.UpdateLike(context.Background(), 404, true))
			require.Empty(t, fetchSorted(t, repo))
		})
	}
}

func TestPostRepository_SeededRowsAreRehydrated(t *testing.T) {
	database := testutil.NewTestDB(t)
	testutil.SeedPost(t, database, model.Post{ID: 9, Title: "seed", Body: "body", Liked: true})

	repo := repository.NewPostRepository(database)
	posts := fetchSorted(t, repo)
	require.Equal(t, []model.Post{{ID: 9, Title: "seed", Body: "body", Liked: true}}, posts)
}

func TestPostRepository_UpsertAllCanceledContext(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := repo.UpsertAll(ctx, []model.Post{{ID: 1, Title: "t"}})
			require.Error(t, err)
			require.Empty(t, fetchSorted(t, repo))
		})
	}
}

func TestPostRepository_FetchByIDs(t *testing.T) {
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			empty, err := repo.FetchByIDs(ctx, []int64{1, 2})
			require.NoError(t, err)
			require.Empty(t, empty)

			require.NoError(t, repo.UpsertAll(ctx, []model.Post{
				{ID: 1, Title: "one"},
				{ID: 2, Title: "two", Liked: true, ImageData: []byte{1, 2}},
				{ID: 3, Title: "three"},
			}))

			posts, err := repo.FetchByIDs(ctx, []int64{2, 3, 404})
			require.NoError(t, err)
			sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
			require.Equal(t, []model.Post{
				{ID: 2, Title: "two", Liked: true, ImageData: []byte{1, 2}},
				{ID: 3, Title: "three"},
			}, posts)

			none, err := repo.FetchByIDs(ctx, nil)
			require.NoError(t, err)
			require.Empty(t, none)
		})
	}
}
