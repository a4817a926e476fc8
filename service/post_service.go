package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"linkup/dao"
	"linkup/model"
)

// PostService coordinates the post store with the credential store for
// author-name snapshots.
type PostService struct {
	posts *dao.PostDAO
	users *dao.UserDAO
}

func NewPostService(posts *dao.PostDAO, users *dao.UserDAO) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create publishes a post under the author's current display name. The name
// is copied onto the post and never updated afterwards.
func (s *PostService) Create(authorID uint64, content, imagePath string) (*model.Post, error) {
	author, err := s.users.FindByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	post := &model.Post{
		UserID:   authorID,
		UserName: author.Name,
		Content:  strings.TrimSpace(content),
		Image:    imagePath,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return s.posts.FindByID(post.ID)
}

// Feed returns every post, newest first.
func (s *PostService) Feed() ([]model.Post, error) {
	return s.posts.ListAll()
}

// Profile returns a user together with their posts, newest first.
func (s *PostService) Profile(userID uint64) (*model.User, []model.Post, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	posts, err := s.posts.ListByAuthor(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}

// UpdateContent edits a post's body; only the author succeeds.
func (s *PostService) UpdateContent(postID, authorID uint64, content string) (*model.Post, error) {
	return s.posts.UpdateContent(postID, authorID, strings.TrimSpace(content))
}

// Delete removes a post; only the author succeeds.
func (s *PostService) Delete(postID, authorID uint64) error {
	return s.posts.Delete(postID, authorID)
}

// ToggleLike flips the caller's like on a post.
func (s *PostService) ToggleLike(postID, userID uint64) (*model.Post, error) {
	return s.posts.ToggleLike(postID, userID)
}

// AddComment appends a comment carrying the commenter's name snapshot.
func (s *PostService) AddComment(postID, authorID uint64, text string) (*model.Post, error) {
	author, err := s.users.FindByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	comment := &model.Comment{
		PostID:   postID,
		UserID:   authorID,
		UserName: author.Name,
		Text:     strings.TrimSpace(text),
	}
	return s.posts.AddComment(comment)
}

// DeleteComment removes a comment; only its author succeeds.
func (s *PostService) DeleteComment(postID, commentID, requesterID uint64) (*model.Post, error) {
	return s.posts.DeleteComment(postID, commentID, requesterID)
}
