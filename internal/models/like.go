package models

import (
	"time"

	"gorm.io/gorm"
)

// Like represents a user's like on a video post.
// The combination of UserID and ContentID must be unique, so repeated like
// actions by the same user are idempotent.
type Like struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_user_content" json:"user_id"`
	ContentID uint           `gorm:"not null;uniqueIndex:idx_user_content" json:"content_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Content Content `gorm:"foreignKey:ContentID" json:"content"`
}
