package server

import (
	"strings"

	"warbler/internal/models"
	"warbler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /users?q=...
func (s *Server) ListUsers(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	page := parsePagination(c, 100)

	users, err := s.userService.ListUsers(c.UserContext(), q, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}

// GetUserProfile handles GET /users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	page := parsePagination(c, 100)
	messages, err := s.messageService.GetUserMessages(c.UserContext(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	stats, err := s.userService.GetProfileStats(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	resp := fiber.Map{
		"user":     user,
		"messages": messages,
		"stats":    stats,
	}

	if viewerID, ok := s.sessionUserID(c); ok && viewerID != id {
		following, err := s.socialService.IsFollowing(c.UserContext(), viewerID, id)
		if err != nil {
			return models.RespondWithError(c, mapServiceError(err), err)
		}
		followedBy, err := s.socialService.IsFollowedBy(c.UserContext(), viewerID, id)
		if err != nil {
			return models.RespondWithError(c, mapServiceError(err), err)
		}
		resp["is_following"] = following
		resp["is_followed_by"] = followedBy
	}

	return c.JSON(resp)
}

// GetMyProfile handles GET /users/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := s.currentUserID(c)

	user, err := s.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles POST /users/profile
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := s.currentUserID(c)

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		Password       string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:         userID,
		Username:       req.Username,
		Email:          req.Email,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Bio:            req.Bio,
		Location:       req.Location,
		Password:       req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// DeleteAccount handles POST /users/delete
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := s.currentUserID(c)

	if err := s.userService.DeleteAccount(c.UserContext(), userID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	if sess, err := s.sessions.Get(c); err == nil {
		_ = sess.Destroy()
	}

	return c.Redirect("/signup", fiber.StatusFound)
}

// GetUserLikes handles GET /users/:id/likes
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 100)
	messages, err := s.messageService.GetLikedMessages(c.UserContext(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(messages)
}
