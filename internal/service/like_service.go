package service

import (
	"context"

	"atrium/internal/models"
	"atrium/internal/repository"
)

type LikeService struct {
	likeRepo    repository.LikeRepository
	contentRepo repository.ContentRepository
}

type AddLikeInput struct {
	UserID    uint
	ContentID uint
}

func NewLikeService(likeRepo repository.LikeRepository, contentRepo repository.ContentRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, contentRepo: contentRepo}
}

// AddLike records a like on a video. Likes are deduplicated per (user,
// content): liking twice leaves the count unchanged.
func (s *LikeService) AddLike(ctx context.Context, in AddLikeInput) error {
	content, err := s.contentRepo.GetByID(ctx, in.ContentID)
	if err != nil {
		return err
	}
	if content.Kind != models.KindVideo {
		return models.NewValidationError("Likes are only supported on videos")
	}

	return s.likeRepo.Add(ctx, &models.Like{
		UserID:    in.UserID,
		ContentID: in.ContentID,
	})
}

// CountLikes returns the number of distinct users who liked the content.
func (s *LikeService) CountLikes(ctx context.Context, contentID uint) (int64, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountByContent(ctx, contentID)
}
