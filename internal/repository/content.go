// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"atrium/internal/cache"
	"atrium/internal/models"
	"atrium/internal/observability"

	"gorm.io/gorm"
)

// ContentRepository defines persistence operations for content items.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	GetByID(ctx context.Context, id uint) (*models.Content, error)
	// ListAll returns every content item in creation order. An empty kind
	// returns both verticals.
	ListAll(ctx context.Context, kind models.ContentKind) ([]models.Content, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Content, error)
	// DeleteCascade removes the content item together with its comments and
	// likes in a single transaction. Deleting an absent id is a no-op.
	DeleteCascade(ctx context.Context, id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository returns a new ContentRepository implementation.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// applyContentDetails adds a subquery to fetch the like count in a single query.
func applyContentDetails(db *gorm.DB) *gorm.DB {
	return db.Select("contents.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.content_id = contents.id AND likes.deleted_at IS NULL) as likes_count")
}

func (r *contentRepository) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	var content models.Content
	if err := applyContentDetails(r.db.WithContext(ctx)).Preload("Owner").First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Content", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &content, nil
}

func (r *contentRepository) ListAll(ctx context.Context, kind models.ContentKind) ([]models.Content, error) {
	defer observability.TrackQuery("select", "contents")()

	var contents []models.Content
	// Creation order must be explicit; never rely on storage default order.
	q := applyContentDetails(r.db.WithContext(ctx)).Preload("Owner").Order("id ASC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Find(&contents).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return contents, nil
}

func (r *contentRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Content, error) {
	var contents []models.Content
	if err := applyContentDetails(r.db.WithContext(ctx)).
		Where("owner_id = ?", ownerID).Order("id ASC").Find(&contents).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return contents, nil
}

func (r *contentRepository) DeleteCascade(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "contents")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		// Zero rows affected on an already-removed id is a no-op by design of
		// the concurrency model.
		return tx.Delete(&models.Content{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	observability.CascadeDeletes.WithLabelValues("content").Inc()
	cache.InvalidateLikeCount(ctx, id)
	return nil
}
