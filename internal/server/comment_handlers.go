package server

import (
	"atrium/internal/models"
	"atrium/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment adds a comment, or a reply when parent_comment_id is set (protected)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body            string `json:"body"`
		ParentCommentID *uint  `json:"parent_comment_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		AuthorID:        userID,
		ContentID:       contentID,
		Body:            req.Body,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetComments returns the top-level comments of a content item (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListTopLevel(ctx, contentID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(comments)
}

// GetReplies returns the direct replies to a comment (public)
func (s *Server) GetReplies(c *fiber.Ctx) error {
	ctx := c.UserContext()

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.commentService.ListReplies(ctx, commentID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(replies)
}

// DeleteComment deletes a comment and its replies (author or admin)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	deleted, err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		UserID:    userID,
		CommentID: commentID,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted",
		"id":      deleted.ID,
	})
}
