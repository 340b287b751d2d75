package graph

// NotFoundError отдается клиенту в errors[], код попадает в extensions
type NotFoundError struct {
	PostID string
}

func (e *NotFoundError) Error() string {
	return "Post not found"
}

func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":   "NOT_FOUND",
		"postId": e.PostID,
	}
}
