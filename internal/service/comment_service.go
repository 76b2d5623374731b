package service

import (
	"context"

	"atrium/internal/models"
	"atrium/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	contentRepo repository.ContentRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateCommentInput struct {
	AuthorID        uint
	ContentID       uint
	Body            string
	ParentCommentID *uint
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	contentRepo repository.ContentRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		isAdmin:     isAdmin,
	}
}

const maxCommentLen = 10000

// CreateComment adds a comment or, when ParentCommentID is set, a reply.
// Replies exist on the article vertical only, must point at a top-level
// comment, and that comment must belong to the same content item. Threading
// is therefore exactly two levels deep.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content, err := s.contentRepo.GetByID(ctx, in.ContentID)
	if err != nil {
		return nil, err
	}

	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if in.ParentCommentID != nil {
		if content.Kind != models.KindArticle {
			return nil, models.NewValidationError("Replies are only supported on articles")
		}
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.ContentID != in.ContentID {
			return nil, models.NewValidationError("Parent comment belongs to a different content item")
		}
		if parent.ParentCommentID != nil {
			return nil, models.NewValidationError("Replies to replies are not supported")
		}
	}

	comment := &models.Comment{
		Body:            in.Body,
		ContentID:       in.ContentID,
		AuthorID:        in.AuthorID,
		ParentCommentID: in.ParentCommentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListTopLevel(ctx context.Context, contentID uint) ([]*models.Comment, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListTopLevel(ctx, contentID)
}

func (s *CommentService) ListReplies(ctx context.Context, commentID uint) ([]*models.Comment, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListReplies(ctx, commentID)
}

// DeleteComment removes a single comment (and its direct replies). Authors may
// delete their own comments; admins may delete any.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != in.UserID {
		if s.isAdmin == nil {
			return nil, models.NewUnauthorizedError("You can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, models.NewUnauthorizedError("You can only delete your own comments")
		}
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return comment, nil
}
