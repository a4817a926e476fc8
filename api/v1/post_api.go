package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"linkup/api/v1/request"
	"linkup/api/v1/response"
	"linkup/dao"
	"linkup/internal/metrics"
	"linkup/internal/upload"
	"linkup/middleware"
	"linkup/service"
)

// PostAPI exposes the feed: post CRUD, likes and comments.
type PostAPI struct {
	service *service.PostService
	saver   *upload.Saver
}

func NewPostAPI(s *service.PostService, saver *upload.Saver) *PostAPI {
	return &PostAPI{service: s, saver: saver}
}

// Create publishes a post from multipart form data with an optional image.
func (p *PostAPI) Create(c *gin.Context) {
	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		metrics.IncPostOp("create", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "post content is required"})
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := p.saver.SaveImage(file)
		if err != nil {
			if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrNotAnImage) {
				metrics.IncUploadReject(err.Error())
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			metrics.IncPostOp("create", "internal_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		imagePath = path
	}

	post, err := p.service.Create(middleware.UserID(c), content, imagePath)
	if err != nil {
		p.writeError(c, "create", err)
		return
	}
	metrics.IncPostOp("create", "success")
	c.JSON(http.StatusCreated, response.NewPost(post))
}

// List returns the whole feed, newest first.
func (p *PostAPI) List(c *gin.Context) {
	posts, err := p.service.Feed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, response.NewPostList(posts))
}

// Update rewrites a post's content; author only.
func (p *PostAPI) Update(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncPostOp("update", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "post content is required"})
		return
	}
	post, err := p.service.UpdateContent(postID, middleware.UserID(c), req.Content)
	if err != nil {
		p.writeError(c, "update", err)
		return
	}
	metrics.IncPostOp("update", "success")
	c.JSON(http.StatusOK, response.NewPost(post))
}

// Delete removes a post; author only.
func (p *PostAPI) Delete(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := p.service.Delete(postID, middleware.UserID(c)); err != nil {
		p.writeError(c, "delete", err)
		return
	}
	metrics.IncPostOp("delete", "success")
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// Like toggles the caller's like on a post. Each call flips the state.
func (p *PostAPI) Like(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := p.service.ToggleLike(postID, middleware.UserID(c))
	if err != nil {
		p.writeError(c, "like", err)
		return
	}
	metrics.IncPostOp("like", "success")
	c.JSON(http.StatusOK, response.NewPost(post))
}

// Comment appends a comment to a post.
func (p *PostAPI) Comment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncPostOp("comment", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text is required"})
		return
	}
	post, err := p.service.AddComment(postID, middleware.UserID(c), req.Text)
	if err != nil {
		p.writeError(c, "comment", err)
		return
	}
	metrics.IncPostOp("comment", "success")
	c.JSON(http.StatusOK, response.NewPost(post))
}

// DeleteComment removes a comment; comment author only.
func (p *PostAPI) DeleteComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	post, err := p.service.DeleteComment(postID, commentID, middleware.UserID(c))
	if err != nil {
		p.writeError(c, "delete_comment", err)
		return
	}
	metrics.IncPostOp("delete_comment", "success")
	c.JSON(http.StatusOK, response.NewPost(post))
}

// Profile returns a user together with their posts.
func (p *PostAPI) Profile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, posts, err := p.service.Profile(userID)
	if err != nil {
		p.writeError(c, "profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "posts": response.NewPostList(posts)})
}

// writeError maps service/dao sentinels onto the HTTP taxonomy. Ownership
// failures on posts deliberately read as not-found.
func (p *PostAPI) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, dao.ErrPostNotFound):
		metrics.IncPostOp(op, "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found or unauthorized"})
	case errors.Is(err, dao.ErrCommentNotFound):
		metrics.IncPostOp(op, "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
	case errors.Is(err, dao.ErrNotCommentAuthor):
		metrics.IncPostOp(op, "forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		metrics.IncPostOp(op, "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		metrics.IncPostOp(op, "internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
