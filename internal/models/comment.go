package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a content item. ParentCommentID is set for
// replies; threading is exactly two levels deep (a reply's parent is always a
// top-level comment) and replies exist on the article vertical only.
type Comment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Body            string         `gorm:"type:text;not null" json:"body"`
	ContentID       uint           `gorm:"not null;index" json:"content_id"`
	AuthorID        uint           `gorm:"not null;index" json:"author_id"`
	ParentCommentID *uint          `gorm:"index" json:"parent_comment_id,omitempty"`
	Author          User           `gorm:"foreignKey:AuthorID" json:"author"`
	Content         Content        `gorm:"foreignKey:ContentID" json:"content,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
