package model

import "time"

// User is a registered account. Email doubles as the login key.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Email     string    `gorm:"unique;not null;size:255" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"` // bcrypt hash, never serialized
	Bio       string    `gorm:"type:text" json:"bio"`
	AvatarURL string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
