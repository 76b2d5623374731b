package server

import (
	"atrium/internal/models"
	"atrium/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateContent publishes an article or a video post (protected)
// @Summary Create content
// @Tags contents
// @Accept json
// @Produce json
// @Param request body object{kind=string,title=string,body=string,media_ref=string} true "Content"
// @Success 201 {object} models.Content
// @Router /contents [post]
func (s *Server) CreateContent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Kind     string  `json:"kind"`
		Title    string  `json:"title"`
		Body     string  `json:"body"`
		MediaRef *string `json:"media_ref"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.contentService.CreateContent(ctx, service.CreateContentInput{
		OwnerID:  userID,
		Kind:     models.ContentKind(req.Kind),
		Title:    req.Title,
		Body:     req.Body,
		MediaRef: req.MediaRef,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetContents returns every content item with its author, in creation order (public).
// An optional ?kind=article|video query filters one vertical.
func (s *Server) GetContents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	kind := models.ContentKind(c.Query("kind"))
	contents, err := s.contentService.ListAll(ctx, kind)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(contents)
}

// GetContent returns a single content item (public)
func (s *Server) GetContent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	content, err := s.contentService.GetContent(ctx, contentID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(content)
}

// GetMyContents returns the caller's own content, in creation order (protected)
func (s *Server) GetMyContents(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	contents, err := s.contentService.ListByOwner(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(contents)
}

// GetUserContents returns the content published by one user (public)
func (s *Server) GetUserContents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	ownerID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.userService.GetUserByID(ctx, ownerID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	contents, err := s.contentService.ListByOwner(ctx, ownerID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(contents)
}

// DeleteContent deletes a content item with its comments and likes (owner or admin)
func (s *Server) DeleteContent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	deleted, err := s.contentService.DeleteContent(ctx, service.DeleteContentInput{
		UserID:    userID,
		ContentID: contentID,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Content deleted",
		"id":      deleted.ID,
	})
}
