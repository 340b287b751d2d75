package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Sushanth145/graphql-intro/graph/model"
	"github.com/Sushanth145/graphql-intro/internal/post"
)

// PostMemoryStorage хранит посты в памяти процесса в порядке добавления.
// Реализует post.PostStorage и comment.CommentStorage.
type PostMemoryStorage struct {
	mu    sync.RWMutex
	posts []*model.Post
	index map[string]int // id -> позиция первого поста с таким id
}

func NewPostMemoryStorage(seed ...*model.Post) *PostMemoryStorage {
	s := &PostMemoryStorage{
		posts: make([]*model.Post, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		if p == nil {
			continue
		}
		s.appendLocked(p.Clone())
	}
	return s
}

// SeedPosts возвращает стартовые данные сервера
func SeedPosts() []*model.Post {
	return []*model.Post{
		{
			ID:     "1",
			Title:  "GraphQL vs REST",
			Author: "Sushanth",
			Comments: []*model.Comment{
				{Text: "Great post!", User: "User A"},
				{Text: "Very helpful", User: "User B"},
			},
		},
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, title, author string) (*model.Post, error) {
	p := &model.Post{
		ID:       uuid.NewString(),
		Title:    title,
		Author:   author,
		Comments: []*model.Comment{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendLocked(p)
	return p.Clone(), nil
}

func (s *PostMemoryStorage) GetPostById(id string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, exists := s.index[id]
	if !exists {
		return nil, post.ErrPostNotFound
	}

	return s.posts[i].Clone(), nil
}

func (s *PostMemoryStorage) GetAllPosts() ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p.Clone())
	}

	return posts, nil
}

func (s *PostMemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.posts)
}

// дубликаты id не отклоняются, индекс указывает на первый пост
func (s *PostMemoryStorage) appendLocked(p *model.Post) {
	if p.Comments == nil {
		p.Comments = []*model.Comment{}
	}
	if _, exists := s.index[p.ID]; !exists {
		s.index[p.ID] = len(s.posts)
	}
	s.posts = append(s.posts, p)
}
