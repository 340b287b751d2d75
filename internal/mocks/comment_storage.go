package mocks

import (
	"context"
	"sync"

	"github.com/Sushanth145/graphql-intro/graph/model"
	"github.com/Sushanth145/graphql-intro/internal/post"
)

// MockCommentStorage пишет комментарии в посты MockPostStorage
type MockCommentStorage struct {
	mu    sync.Mutex
	posts *MockPostStorage
	Err   error
}

func NewMockCommentStorage(posts *MockPostStorage) *MockCommentStorage {
	return &MockCommentStorage{
		posts: posts,
	}
}

func (m *MockCommentStorage) CreateComment(ctx context.Context, postID, text, user string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	m.posts.mu.Lock()
	defer m.posts.mu.Unlock()

	p, ok := m.posts.posts[postID]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	p.Comments = append(p.Comments, &model.Comment{Text: text, User: user})
	return p, nil
}
