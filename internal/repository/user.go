// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"atrium/internal/cache"
	"atrium/internal/models"
	"atrium/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// DeleteCascade removes the user together with all content they own, that
	// content's comments and likes, and every comment and like the user
	// authored elsewhere, in a single transaction.
	DeleteCascade(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// userRecord is the cache shape of a user row. models.User hides the
// password hash from JSON, so caching it directly would strip the hash on
// every round trip and a later Save of a cache hit would persist an empty
// hash.
type userRecord struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserRecord(u *models.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (rec userRecord) toUser() *models.User {
	return &models.User{
		ID:        rec.ID,
		Username:  rec.Username,
		Password:  rec.Password,
		IsAdmin:   rec.IsAdmin,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var rec userRecord
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &rec, cache.UserTTL, func() error {
		var user models.User
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		rec = newUserRecord(&user)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateUsernameError(user.Username)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports
	// "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateUsernameError(user.Username)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "users")()

	// Collected before the transaction so like-count cache keys can be
	// invalidated afterwards.
	var ownedIDs []uint
	if err := r.db.WithContext(ctx).Model(&models.Content{}).
		Where("owner_id = ?", id).Pluck("id", &ownedIDs).Error; err != nil {
		return models.NewInternalError(err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Comments under the user's content, then comments the user wrote anywhere.
		if err := tx.Where("content_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Content{}).Select("id").Where("owner_id = ?", id),
		).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		// Likes on the user's content, then likes the user placed anywhere.
		if err := tx.Where("content_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Content{}).Select("id").Where("owner_id = ?", id),
		).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}

		if err := tx.Where("owner_id = ?", id).Delete(&models.Content{}).Error; err != nil {
			return err
		}

		// The user row is removed for real, not soft-deleted: a soft-deleted
		// row would keep occupying the username unique index and block the
		// name from ever being registered again. Deleting an already-removed
		// row affects zero rows; that is a no-op, not an error, so overlapping
		// cascades cannot fail each other.
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	observability.CascadeDeletes.WithLabelValues("user").Inc()
	cache.InvalidateUser(ctx, id)
	for _, contentID := range ownedIDs {
		cache.InvalidateLikeCount(ctx, contentID)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
