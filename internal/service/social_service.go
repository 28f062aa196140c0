package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// SocialService provides follow-graph business logic.
type SocialService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewSocialService returns a new SocialService.
func NewSocialService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// FollowUser creates a follow edge from userID to targetID. Following a user
// twice is a no-op; following yourself is rejected.
func (s *SocialService) FollowUser(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.followRepo.Follow(ctx, userID, targetID)
}

// UnfollowUser removes the follow edge from userID to targetID. Removing an
// absent edge is a no-op.
func (s *SocialService) UnfollowUser(ctx context.Context, userID, targetID uint) error {
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.followRepo.Unfollow(ctx, userID, targetID)
}

// IsFollowing reports whether userID follows otherID.
func (s *SocialService) IsFollowing(ctx context.Context, userID, otherID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, userID, otherID)
}

// IsFollowedBy reports whether otherID follows userID.
func (s *SocialService) IsFollowedBy(ctx context.Context, userID, otherID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, otherID, userID)
}

// GetFollowing returns the users that userID follows.
func (s *SocialService) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID)
}

// GetFollowers returns the users that follow userID.
func (s *SocialService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID)
}
