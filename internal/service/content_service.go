// Package service implements the business rules of the platform on top of the
// repository layer: ownership, admin bypass, comment threading and like policy.
package service

import (
	"context"

	"atrium/internal/models"
	"atrium/internal/repository"
)

type ContentService struct {
	contentRepo repository.ContentRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateContentInput struct {
	OwnerID  uint
	Kind     models.ContentKind
	Title    string
	Body     string
	MediaRef *string
}

type DeleteContentInput struct {
	UserID    uint
	ContentID uint
}

func NewContentService(
	contentRepo repository.ContentRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ContentService {
	return &ContentService{contentRepo: contentRepo, isAdmin: isAdmin}
}

const (
	maxTitleLen = 200
	maxBodyLen  = 50000
)

func (s *ContentService) CreateContent(ctx context.Context, in CreateContentInput) (*models.Content, error) {
	if !in.Kind.Valid() {
		return nil, models.NewValidationError("Kind must be \"article\" or \"video\"")
	}
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxBodyLen {
		return nil, models.NewValidationError("Body too long (max 50000 characters)")
	}
	if in.MediaRef != nil && in.Kind != models.KindVideo {
		return nil, models.NewValidationError("media_ref is only valid for videos")
	}

	content := &models.Content{
		Kind:     in.Kind,
		Title:    in.Title,
		Body:     in.Body,
		MediaRef: in.MediaRef,
		OwnerID:  in.OwnerID,
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return s.contentRepo.GetByID(ctx, content.ID)
}

func (s *ContentService) GetContent(ctx context.Context, id uint) (*models.Content, error) {
	return s.contentRepo.GetByID(ctx, id)
}

func (s *ContentService) ListAll(ctx context.Context, kind models.ContentKind) ([]models.Content, error) {
	if kind != "" && !kind.Valid() {
		return nil, models.NewValidationError("Kind must be \"article\" or \"video\"")
	}
	return s.contentRepo.ListAll(ctx, kind)
}

func (s *ContentService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Content, error) {
	return s.contentRepo.ListByOwner(ctx, ownerID)
}

// DeleteContent removes a content item with its comments and likes. Owners may
// delete their own items; admins may delete any. Everyone else gets an
// explicit unauthorized error rather than a silent no-op.
func (s *ContentService) DeleteContent(ctx context.Context, in DeleteContentInput) (*models.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, in.ContentID)
	if err != nil {
		return nil, err
	}

	if content.OwnerID != in.UserID {
		if s.isAdmin == nil {
			return nil, models.NewUnauthorizedError("You can only delete your own content")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, models.NewUnauthorizedError("You can only delete your own content")
		}
	}

	if err := s.contentRepo.DeleteCascade(ctx, in.ContentID); err != nil {
		return nil, err
	}

	return content, nil
}
