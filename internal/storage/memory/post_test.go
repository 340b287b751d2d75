package memory

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/Sushanth145/graphql-intro/graph/model"
	"github.com/Sushanth145/graphql-intro/internal/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMemoryStorage_Seed(t *testing.T) {
	storage := NewPostMemoryStorage(SeedPosts()...)

	t.Run("Seed post is available", func(t *testing.T) {
		p, err := storage.GetPostById("1")
		require.NoError(t, err)
		assert.Equal(t, "GraphQL vs REST", p.Title)
		assert.Equal(t, "Sushanth", p.Author)
		require.Len(t, p.Comments, 2)
		assert.Equal(t, &model.Comment{Text: "Great post!", User: "User A"}, p.Comments[0])
		assert.Equal(t, &model.Comment{Text: "Very helpful", User: "User B"}, p.Comments[1])
	})

	t.Run("Seed slice is copied", func(t *testing.T) {
		seed := SeedPosts()
		s := NewPostMemoryStorage(seed...)
		seed[0].Title = "changed"

		p, err := s.GetPostById("1")
		require.NoError(t, err)
		assert.Equal(t, "GraphQL vs REST", p.Title)
	})

	t.Run("Empty storage", func(t *testing.T) {
		s := NewPostMemoryStorage()
		posts, err := s.GetAllPosts()
		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.Equal(t, 0, s.Len())
	})
}

func TestPostMemoryStorage_CreatePost(t *testing.T) {
	storage := NewPostMemoryStorage(SeedPosts()...)
	ctx := context.Background()

	t.Run("Success post creation", func(t *testing.T) {
		p, err := storage.CreatePost(ctx, "X", "Y")
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.NotEqual(t, "1", p.ID)
		assert.Equal(t, "X", p.Title)
		assert.Equal(t, "Y", p.Author)
		assert.NotNil(t, p.Comments)
		assert.Empty(t, p.Comments)
		assert.Equal(t, 2, storage.Len())

		fromStorage, err := storage.GetPostById(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, fromStorage)
	})

	t.Run("Empty title and author are accepted", func(t *testing.T) {
		p, err := storage.CreatePost(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, p.Title)
		assert.Empty(t, p.Author)
	})

	t.Run("Generated ids are unique", func(t *testing.T) {
		s := NewPostMemoryStorage()
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			p, err := s.CreatePost(ctx, "t", "a")
			require.NoError(t, err)
			_, dup := seen[p.ID]
			require.False(t, dup, "duplicate id %s", p.ID)
			seen[p.ID] = struct{}{}
		}
	})
}

func TestPostMemoryStorage_GetPostById(t *testing.T) {
	storage := NewPostMemoryStorage(SeedPosts()...)

	t.Run("Trying to get not exist post", func(t *testing.T) {
		p, err := storage.GetPostById("2")
		assert.Nil(t, p)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Returned post is a snapshot", func(t *testing.T) {
		p, err := storage.GetPostById("1")
		require.NoError(t, err)
		p.Title = "changed"
		p.Comments[0].Text = "changed"
		p.Comments = append(p.Comments, &model.Comment{Text: "x", User: "y"})

		again, err := storage.GetPostById("1")
		require.NoError(t, err)
		assert.Equal(t, "GraphQL vs REST", again.Title)
		assert.Equal(t, "Great post!", again.Comments[0].Text)
		assert.Len(t, again.Comments, 2)
	})

	t.Run("Duplicate ids resolve to the first post", func(t *testing.T) {
		s := NewPostMemoryStorage(
			&model.Post{ID: "dup", Title: "first"},
			&model.Post{ID: "dup", Title: "second"},
		)

		p, err := s.GetPostById("dup")
		require.NoError(t, err)
		assert.Equal(t, "first", p.Title)

		posts, err := s.GetAllPosts()
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})
}

func TestPostMemoryStorage_GetAllPosts(t *testing.T) {
	storage := NewPostMemoryStorage(SeedPosts()...)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		p, err := storage.CreatePost(ctx, "post "+strconv.Itoa(i), "author")
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	t.Run("Posts are returned in insertion order", func(t *testing.T) {
		posts, err := storage.GetAllPosts()
		require.NoError(t, err)
		require.Len(t, posts, 4)

		assert.Equal(t, "1", posts[0].ID)
		for i, id := range ids {
			assert.Equal(t, id, posts[i+1].ID)
			assert.Equal(t, "post "+strconv.Itoa(i), posts[i+1].Title)
		}
	})
}

func TestPostMemoryStorage_Concurrent(t *testing.T) {
	t.Run("Concurrent post creation and reads", func(t *testing.T) {
		storage := NewPostMemoryStorage(SeedPosts()...)
		ctx := context.Background()

		numWriters := 50
		var wg sync.WaitGroup

		for i := 0; i < numWriters; i++ {
			wg.Add(2)
			go func(idx int) {
				defer wg.Done()
				_, err := storage.CreatePost(ctx, "Post "+strconv.Itoa(idx), "author")
				assert.NoError(t, err)
			}(i)
			go func() {
				defer wg.Done()
				posts, err := storage.GetAllPosts()
				assert.NoError(t, err)
				assert.NotEmpty(t, posts)
				assert.Equal(t, "1", posts[0].ID)
			}()
		}

		wg.Wait()

		assert.Equal(t, numWriters+1, storage.Len())
	})
}
