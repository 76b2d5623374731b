package repository

import (
	"context"

	"atrium/internal/cache"
	"atrium/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for video likes.
type LikeRepository interface {
	// Add records a like. The (user, content) pair is unique, so a repeated
	// like by the same user is an idempotent success, not an error.
	Add(ctx context.Context, like *models.Like) error
	// CountByContent returns the number of distinct users who liked the content.
	CountByContent(ctx context.Context, contentID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Add(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Already liked; the count stays at one per user.
			return nil
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateLikeCount(ctx, like.ContentID)
	return nil
}

func (r *likeRepository) CountByContent(ctx context.Context, contentID uint) (int64, error) {
	var count int64
	key := cache.LikeCountKey(contentID)

	err := cache.Aside(ctx, key, &count, cache.LikeCountTTL, func() error {
		return r.db.WithContext(ctx).Model(&models.Like{}).
			Where("content_id = ?", contentID).
			Count(&count).Error
	})
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
