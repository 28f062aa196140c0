package server

import (
	"fmt"

	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /users/follow/:id
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.FollowUser(c.UserContext(), userID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Redirect(fmt.Sprintf("/users/%d/following", userID), fiber.StatusFound)
}

// StopFollowing handles POST /users/stop-following/:id
func (s *Server) StopFollowing(c *fiber.Ctx) error {
	userID := s.currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.UnfollowUser(c.UserContext(), userID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Redirect(fmt.Sprintf("/users/%d/following", userID), fiber.StatusFound)
}

// GetFollowing handles GET /users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.socialService.GetFollowing(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}

// GetFollowers handles GET /users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.socialService.GetFollowers(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}
