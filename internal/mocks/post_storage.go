package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/Sushanth145/graphql-intro/graph/model"
	"github.com/Sushanth145/graphql-intro/internal/post"
)

// MockPostStorage - простое хранилище для тестов резолверов.
// Если Err задан, все методы возвращают его.
type MockPostStorage struct {
	mu    sync.Mutex
	posts map[string]*model.Post
	order []string
	Err   error
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		posts: make(map[string]*model.Post),
	}
}

func (m *MockPostStorage) CreatePost(ctx context.Context, title, author string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	id := strconv.Itoa(len(m.posts) + 1)
	p := &model.Post{
		ID:       id,
		Title:    title,
		Author:   author,
		Comments: []*model.Comment{},
	}
	m.posts[id] = p
	m.order = append(m.order, id)
	return p, nil
}

func (m *MockPostStorage) GetPostById(id string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (m *MockPostStorage) GetAllPosts() ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	posts := make([]*model.Post, 0, len(m.order))
	for _, id := range m.order {
		posts = append(posts, m.posts[id])
	}
	return posts, nil
}
