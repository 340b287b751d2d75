package graph

import (
	"context"
	"errors"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/Sushanth145/graphql-intro/graph/model"
	"github.com/Sushanth145/graphql-intro/internal/post"
)

// Post - отсутствующий пост это null, а не ошибка
func (r *queryResolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*postResolver, error) {
	p, err := r.PostStore.GetPostById(string(args.ID))
	if errors.Is(err, post.ErrPostNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &postResolver{p}, nil
}

func (r *queryResolver) Posts(ctx context.Context) (*[]*postResolver, error) {
	posts, err := r.PostStore.GetAllPosts()
	if err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}

	res := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		res = append(res, &postResolver{p})
	}
	return &res, nil
}

func (r *mutationResolver) AddPost(ctx context.Context, args struct {
	Title  string
	Author string
}) (*postResolver, error) {
	p, err := r.PostStore.CreatePost(ctx, args.Title, args.Author)
	if err != nil {
		return nil, fmt.Errorf("add post: %w", err)
	}
	return &postResolver{p}, nil
}

func (r *mutationResolver) AddComment(ctx context.Context, args struct {
	PostID graphql.ID
	Text   string
	User   string
}) (*postResolver, error) {
	postID := string(args.PostID)

	p, err := r.CommentStore.CreateComment(ctx, postID, args.Text, args.User)
	if errors.Is(err, post.ErrPostNotFound) {
		return nil, &NotFoundError{PostID: postID}
	}
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return &postResolver{p}, nil
}

type postResolver struct {
	p *model.Post
}

func (r *postResolver) ID() graphql.ID {
	return graphql.ID(r.p.ID)
}

func (r *postResolver) Title() *string {
	return &r.p.Title
}

func (r *postResolver) Author() *string {
	return &r.p.Author
}

func (r *postResolver) Comments() *[]*commentResolver {
	res := make([]*commentResolver, 0, len(r.p.Comments))
	for _, c := range r.p.Comments {
		if c == nil {
			res = append(res, nil)
			continue
		}
		res = append(res, &commentResolver{c})
	}
	return &res
}

type commentResolver struct {
	c *model.Comment
}

func (r *commentResolver) Text() *string {
	return &r.c.Text
}

func (r *commentResolver) User() *string {
	return &r.c.User
}
