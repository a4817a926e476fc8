package model

import "time"

// Post is a feed entry. UserName is a snapshot of the author's name at
// creation time and is intentionally not kept in sync with later renames.
type Post struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	UserID    uint64     `gorm:"not null;index" json:"user_id"`
	UserName  string     `gorm:"not null;size:100" json:"user_name"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Image     string     `gorm:"size:255" json:"image"`
	Likes     []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time  `json:"created_at"`
}

// PostLike is one row per (post, user) pair; the unique index makes a
// duplicate like a constraint violation instead of a lost update.
type PostLike struct {
	ID     uint64 `gorm:"primarykey" json:"-"`
	PostID uint64 `gorm:"not null;uniqueIndex:idx_post_user" json:"-"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
}

// Comment belongs to a post. UserName follows the same snapshot rule as Post.
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"-"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	UserName  string    `gorm:"not null;size:100" json:"user_name"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeUserIDs flattens the like rows into the wire shape clients expect.
func (p *Post) LikeUserIDs() []uint64 {
	ids := make([]uint64, 0, len(p.Likes))
	for _, l := range p.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}
