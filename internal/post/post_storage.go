package post

import (
	"context"
	"errors"

	"github.com/Sushanth145/graphql-intro/graph/model"
)

// ErrPostNotFound возвращается хранилищем, если поста с таким ID нет
var ErrPostNotFound = errors.New("post not found")

type PostStorage interface {
	CreatePost(ctx context.Context, title, author string) (*model.Post, error)
	GetPostById(id string) (*model.Post, error)
	GetAllPosts() ([]*model.Post, error)
}
