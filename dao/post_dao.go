package dao

import (
	"errors"

	"gorm.io/gorm"

	"linkup/model"
)

var (
	// ErrPostNotFound covers both a missing post and an ownership mismatch,
	// so non-owners cannot probe for a post's existence.
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("not authorized to delete this comment")
)

type PostDAO struct {
	db *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

func (dao *PostDAO) Create(post *model.Post) error {
	return dao.db.Create(post).Error
}

// FindByID loads a post with its likes and comments.
func (dao *PostDAO) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := dao.db.Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListAll returns every post, newest first. No pagination; the whole feed is
// in scope at this scale.
func (dao *PostDAO) ListAll() ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// ListByAuthor returns one user's posts, newest first.
func (dao *PostDAO) ListByAuthor(authorID uint64) ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.id ASC") }).
		Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// UpdateContent rewrites the post body in a single ownership-gated UPDATE.
// A zero row count means the post is absent or owned by someone else; both
// read as not-found.
func (dao *PostDAO) UpdateContent(postID, authorID uint64, content string) (*model.Post, error) {
	res := dao.db.Model(&model.Post{}).
		Where("id = ? AND user_id = ?", postID, authorID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrPostNotFound
	}
	return dao.FindByID(postID)
}

// Delete removes the post and its like/comment rows, gated on ownership the
// same way UpdateContent is.
func (dao *PostDAO) Delete(postID, authorID uint64) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", postID, authorID).Delete(&model.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error
	})
}

// ToggleLike flips the caller's membership in the post's like set. The
// delete and insert are each a single statement, and the unique
// (post_id, user_id) index absorbs concurrent double-likes.
func (dao *PostDAO) ToggleLike(postID, userID uint64) (*model.Post, error) {
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Post{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil // was liked, now unliked
		}
		return tx.Create(&model.PostLike{PostID: postID, UserID: userID}).Error
	})
	if err != nil {
		return nil, err
	}
	return dao.FindByID(postID)
}

// AddComment appends a comment and returns the refreshed post.
func (dao *PostDAO) AddComment(comment *model.Comment) (*model.Post, error) {
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Post{}, comment.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return dao.FindByID(comment.PostID)
}

// DeleteComment removes a comment if the requester authored it. The delete
// statement itself carries the author check.
func (dao *PostDAO) DeleteComment(postID, commentID, requesterID uint64) (*model.Post, error) {
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Post{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		res := tx.Where("id = ? AND post_id = ? AND user_id = ?", commentID, postID, requesterID).
			Delete(&model.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Distinguish a missing comment from someone else's comment.
			var count int64
			if err := tx.Model(&model.Comment{}).
				Where("id = ? AND post_id = ?", commentID, postID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrNotCommentAuthor
			}
			return ErrCommentNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dao.FindByID(postID)
}
