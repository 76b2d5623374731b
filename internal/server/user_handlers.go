package server

import (
	"atrium/internal/models"
	"atrium/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile returns the authenticated user's account (protected)
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(user)
}

// DeleteMyAccount removes the caller's account and cascades to everything
// they own or authored (protected). The bearer token dies with the subject.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	if err := s.userService.DeleteUser(ctx, service.DeleteUserInput{
		CallerID: userID,
		TargetID: userID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Account deleted",
	})
}

// DeleteUser removes an arbitrary account with full cascade (admin)
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	callerID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(ctx, service.DeleteUserInput{
		CallerID: callerID,
		TargetID: targetID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "User deleted",
		"id":      targetID,
	})
}

// PromoteToAdmin grants the admin capability flag (admin)
func (s *Server) PromoteToAdmin(c *fiber.Ctx) error {
	return s.setAdmin(c, true)
}

// DemoteFromAdmin revokes the admin capability flag (admin)
func (s *Server) DemoteFromAdmin(c *fiber.Ctx) error {
	return s.setAdmin(c, false)
}

func (s *Server) setAdmin(c *fiber.Ctx, isAdmin bool) error {
	ctx := c.UserContext()

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, svcErr := s.userService.SetAdmin(ctx, targetID, isAdmin)
	if svcErr != nil {
		return models.RespondWithError(c, statusForError(svcErr), svcErr)
	}

	return c.JSON(user)
}

// GetAllUsers lists every account for the admin view (admin). The password
// hash is never serialized; the model keeps it out of JSON.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userService.ListUsers(ctx, limit, offset)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(users)
}
