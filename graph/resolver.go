package graph

import (
	"github.com/Sushanth145/graphql-intro/internal/comment"
	"github.com/Sushanth145/graphql-intro/internal/post"
)

// Resolver служит корневой точкой для всех резолверов.
// Хранилище внедряется снаружи, глобального состояния нет.
type Resolver struct {
	PostStore    post.PostStorage
	CommentStore comment.CommentStorage
}

func (r *Resolver) Query() *queryResolver {
	return &queryResolver{r}
}

func (r *Resolver) Mutation() *mutationResolver {
	return &mutationResolver{r}
}

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }
