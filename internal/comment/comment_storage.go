package comment

import (
	"context"

	"github.com/Sushanth145/graphql-intro/graph/model"
)

// CommentStorage добавляет комментарии к существующим постам.
// CreateComment возвращает обновленный пост или post.ErrPostNotFound.
type CommentStorage interface {
	CreateComment(ctx context.Context, postID, text, user string) (*model.Post, error)
}
