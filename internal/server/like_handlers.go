package server

import (
	"atrium/internal/models"
	"atrium/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LikeContent records a like on a video post (protected). Likes are
// deduplicated per user, so repeating the action is harmless.
func (s *Server) LikeContent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.likeService.AddLike(ctx, service.AddLikeInput{
		UserID:    userID,
		ContentID: contentID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	count, err := s.likeService.CountLikes(ctx, contentID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"content_id":  contentID,
		"likes_count": count,
	})
}

// GetLikeCount returns the number of likes on a video post (public)
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.likeService.CountLikes(ctx, contentID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"content_id":  contentID,
		"likes_count": count,
	})
}
