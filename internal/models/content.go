package models

import (
	"time"

	"gorm.io/gorm"
)

// ContentKind distinguishes the two publishable verticals.
type ContentKind string

const (
	// KindArticle is a text article with threaded comments.
	KindArticle ContentKind = "article"
	// KindVideo is a video post with flat comments and likes.
	KindVideo ContentKind = "video"
)

// Valid reports whether k is one of the supported verticals.
func (k ContentKind) Valid() bool {
	return k == KindArticle || k == KindVideo
}

// Content represents a publishable item: an article or a video post.
// Body holds the article text or the video description. MediaRef is an
// opaque reference to an externally managed blob and is set for videos only.
type Content struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	Kind     ContentKind `gorm:"type:varchar(16);not null;index" json:"kind"`
	Title    string      `gorm:"not null" json:"title"`
	Body     string      `gorm:"type:text;not null" json:"body"`
	MediaRef *string     `json:"media_ref,omitempty"`
	OwnerID  uint        `gorm:"not null;index" json:"owner_id"`
	Owner    User        `gorm:"foreignKey:OwnerID" json:"owner"`
	// LikesCount is not persisted; computed at query time.
	LikesCount int            `gorm:"->" json:"likes_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM.
func (Content) TableName() string {
	return "contents"
}
