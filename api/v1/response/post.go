package response

import (
	"time"

	"linkup/model"
)

// Post is the wire shape of a feed entry: likes flattened to the user ids
// holding them, comments embedded in insertion order.
type Post struct {
	ID        uint64          `json:"id"`
	UserID    uint64          `json:"user_id"`
	UserName  string          `json:"user_name"`
	Content   string          `json:"content"`
	Image     string          `json:"image"`
	Likes     []uint64        `json:"likes"`
	Comments  []model.Comment `json:"comments"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewPost(p *model.Post) Post {
	comments := p.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	return Post{
		ID:        p.ID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Content:   p.Content,
		Image:     p.Image,
		Likes:     p.LikeUserIDs(),
		Comments:  comments,
		CreatedAt: p.CreatedAt,
	}
}

func NewPostList(posts []model.Post) []Post {
	out := make([]Post, 0, len(posts))
	for i := range posts {
		out = append(out, NewPost(&posts[i]))
	}
	return out
}
