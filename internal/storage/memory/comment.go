package memory

import (
	"context"
	"fmt"

	"github.com/Sushanth145/graphql-intro/graph/model"
	"github.com/Sushanth145/graphql-intro/internal/post"
)

func (s *PostMemoryStorage) CreateComment(ctx context.Context, postID, text, user string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, exists := s.index[postID]
	if !exists {
		return nil, fmt.Errorf("add comment to %q: %w", postID, post.ErrPostNotFound)
	}

	curPost := s.posts[i]
	curPost.Comments = append(curPost.Comments, &model.Comment{
		Text: text,
		User: user,
	})

	return curPost.Clone(), nil
}
