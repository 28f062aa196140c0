package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// MessageService provides message and like business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// PostMessage creates a message owned by userID.
func (s *MessageService) PostMessage(ctx context.Context, userID uint, text string) (*models.Message, error) {
	if err := validation.ValidateMessageText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{
		Text:   text,
		UserID: userID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, message.ID)
}

// GetMessage returns the message with the given id.
func (s *MessageService) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id)
}

// GetUserMessages returns messages authored by userID, newest first.
func (s *MessageService) GetUserMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByUserID(ctx, userID, limit, offset)
}

// DeleteMessage removes the message if userID owns it.
func (s *MessageService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own messages")
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// LikeMessage adds a like edge for (userID, messageID). Liking twice is a
// no-op.
func (s *MessageService) LikeMessage(ctx context.Context, userID, messageID uint) error {
	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return err
	}
	return s.messageRepo.Like(ctx, userID, messageID)
}

// UnlikeMessage removes the like edge for (userID, messageID). Removing an
// absent edge is a no-op.
func (s *MessageService) UnlikeMessage(ctx context.Context, userID, messageID uint) error {
	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return err
	}
	return s.messageRepo.Unlike(ctx, userID, messageID)
}

// IsLikedBy returns the like edge for (userID, messageID), or nil when the
// user has not liked the message.
func (s *MessageService) IsLikedBy(ctx context.Context, userID, messageID uint) (*models.Like, error) {
	return s.messageRepo.GetLike(ctx, userID, messageID)
}

// GetTimeline returns messages from userID and everyone they follow.
func (s *MessageService) GetTimeline(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.messageRepo.Timeline(ctx, userID, limit, offset)
}

// GetRecentMessages returns the newest messages across all users.
func (s *MessageService) GetRecentMessages(ctx context.Context, limit, offset int) ([]*models.Message, error) {
	return s.messageRepo.ListRecent(ctx, limit, offset)
}

// GetLikedMessages returns the messages userID has liked, newest like first.
func (s *MessageService) GetLikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.messageRepo.GetLikedMessages(ctx, userID, limit, offset)
}
