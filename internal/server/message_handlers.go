package server

import (
	"fmt"

	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Home handles GET /. Logged-in users see their timeline; anonymous visitors
// see the newest messages across the site.
func (s *Server) Home(c *fiber.Ctx) error {
	page := parsePagination(c, 100)

	userID, ok := s.sessionUserID(c)
	if !ok {
		messages, err := s.messageService.GetRecentMessages(c.UserContext(), page.Limit, page.Offset)
		if err != nil {
			return models.RespondWithError(c, mapServiceError(err), err)
		}
		return c.JSON(fiber.Map{"messages": messages})
	}

	// The global_feed flag switches the home page from the follow-scoped
	// timeline to the site-wide firehose.
	var (
		messages []*models.Message
		err      error
	)
	if s.featureFlags.Enabled("global_feed", userID) {
		messages, err = s.messageService.GetRecentMessages(c.UserContext(), page.Limit, page.Offset)
	} else {
		messages, err = s.messageService.GetTimeline(c.UserContext(), userID, page.Limit, page.Offset)
	}
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"messages": messages})
}

// CreateMessage handles POST /messages/new
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	userID := s.currentUserID(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.PostMessage(c.UserContext(), userID, req.Text)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessage handles GET /messages/:id
func (s *Server) GetMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	message, err := s.messageService.GetMessage(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	resp := fiber.Map{"message": message}
	if userID, ok := s.sessionUserID(c); ok {
		like, err := s.messageService.IsLikedBy(c.UserContext(), userID, id)
		if err != nil {
			return models.RespondWithError(c, mapServiceError(err), err)
		}
		resp["liked"] = like != nil
	}

	return c.JSON(resp)
}

// DeleteMessage handles POST /messages/:id/delete
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.DeleteMessage(c.UserContext(), userID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Redirect(fmt.Sprintf("/users/%d", userID), fiber.StatusFound)
}

// LikeMessage handles POST /messages/:id/like
func (s *Server) LikeMessage(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.LikeMessage(c.UserContext(), userID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Liked", "message_id": id})
}

// UnlikeMessage handles POST /messages/:id/unlike
func (s *Server) UnlikeMessage(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.UnlikeMessage(c.UserContext(), userID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Unliked", "message_id": id})
}
