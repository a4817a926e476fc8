package request

// Post creation arrives as multipart form data (content + optional image),
// so only the JSON-body mutations get binding structs.

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}
