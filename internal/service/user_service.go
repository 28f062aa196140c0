package service

import (
	"context"
	"strings"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides profile and account business logic.
type UserService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	followRepo  repository.FollowRepository
}

// UpdateProfileInput carries profile fields to change. Password is the
// current password, required to confirm the update.
type UpdateProfileInput struct {
	UserID         uint
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Location       string
	Password       string
}

// ProfileStats aggregates the counters shown on a profile page.
type ProfileStats struct {
	Messages  int64 `json:"messages"`
	Following int64 `json:"following"`
	Followers int64 `json:"followers"`
	Likes     int64 `json:"likes"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, messageRepo repository.MessageRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		followRepo:  followRepo,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns all users, or those whose username matches query when it
// is non-empty.
func (s *UserService) ListUsers(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	if strings.TrimSpace(query) != "" {
		return s.userRepo.Search(ctx, strings.TrimSpace(query), limit, offset)
	}
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the given changes after confirming the caller's
// current password.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, models.NewUnauthorizedError("Incorrect password")
	}

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}
	if in.HeaderImageURL != "" {
		user.HeaderImageURL = in.HeaderImageURL
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Location != "" {
		user.Location = in.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and all dependent rows.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// GetProfileStats returns the counters for the user's profile page.
func (s *UserService) GetProfileStats(ctx context.Context, userID uint) (*ProfileStats, error) {
	messages, err := s.messageRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.messageRepo.CountLikesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileStats{
		Messages:  messages,
		Following: following,
		Followers: followers,
		Likes:     likes,
	}, nil
}
