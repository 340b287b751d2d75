package model

type Comment struct {
	Text string `json:"text"`
	User string `json:"user"`
}

type Post struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Author   string     `json:"author"`
	Comments []*Comment `json:"comments"`
}

// Clone возвращает глубокую копию поста вместе с комментариями
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}

	comments := make([]*Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		if c == nil {
			continue
		}
		comment := *c
		comments = append(comments, &comment)
	}

	return &Post{
		ID:       p.ID,
		Title:    p.Title,
		Author:   p.Author,
		Comments: comments,
	}
}
