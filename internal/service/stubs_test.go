package service

import (
	"context"

	"warbler/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	searchFn        func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		searchFn:        func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type followRepoStub struct {
	followFn         func(context.Context, uint, uint) error
	unfollowFn       func(context.Context, uint, uint) error
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	getFollowingFn   func(context.Context, uint) ([]models.User, error)
	getFollowersFn   func(context.Context, uint) ([]models.User, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	countFollowersFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:         func(context.Context, uint, uint) error { return nil },
		unfollowFn:       func(context.Context, uint, uint) error { return nil },
		isFollowingFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		getFollowingFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFollowersFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type messageRepoStub struct {
	createFn             func(context.Context, *models.Message) error
	getByIDFn            func(context.Context, uint) (*models.Message, error)
	getByUserIDFn        func(context.Context, uint, int, int) ([]*models.Message, error)
	deleteFn             func(context.Context, uint) error
	timelineFn           func(context.Context, uint, int, int) ([]*models.Message, error)
	listRecentFn         func(context.Context, int, int) ([]*models.Message, error)
	isLikedFn            func(context.Context, uint, uint) (bool, error)
	getLikeFn            func(context.Context, uint, uint) (*models.Like, error)
	likeFn               func(context.Context, uint, uint) error
	unlikeFn             func(context.Context, uint, uint) error
	getLikedMessagesFn   func(context.Context, uint, int, int) ([]*models.Message, error)
	countByUserIDFn      func(context.Context, uint) (int64, error)
	countLikesByUserIDFn func(context.Context, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *messageRepoStub) Timeline(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.timelineFn(ctx, userID, limit, offset)
}
func (s *messageRepoStub) ListRecent(ctx context.Context, limit, offset int) ([]*models.Message, error) {
	return s.listRecentFn(ctx, limit, offset)
}
func (s *messageRepoStub) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, messageID)
}
func (s *messageRepoStub) GetLike(ctx context.Context, userID, messageID uint) (*models.Like, error) {
	return s.getLikeFn(ctx, userID, messageID)
}
func (s *messageRepoStub) Like(ctx context.Context, userID, messageID uint) error {
	return s.likeFn(ctx, userID, messageID)
}
func (s *messageRepoStub) Unlike(ctx context.Context, userID, messageID uint) error {
	return s.unlikeFn(ctx, userID, messageID)
}
func (s *messageRepoStub) GetLikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.getLikedMessagesFn(ctx, userID, limit, offset)
}
func (s *messageRepoStub) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserIDFn(ctx, userID)
}
func (s *messageRepoStub) CountLikesByUserID(ctx context.Context, userID uint) (int64, error) {
	return s.countLikesByUserIDFn(ctx, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:             func(context.Context, *models.Message) error { return nil },
		getByIDFn:            func(context.Context, uint) (*models.Message, error) { return &models.Message{}, nil },
		getByUserIDFn:        func(context.Context, uint, int, int) ([]*models.Message, error) { return nil, nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		timelineFn:           func(context.Context, uint, int, int) ([]*models.Message, error) { return nil, nil },
		listRecentFn:         func(context.Context, int, int) ([]*models.Message, error) { return nil, nil },
		isLikedFn:            func(context.Context, uint, uint) (bool, error) { return false, nil },
		getLikeFn:            func(context.Context, uint, uint) (*models.Like, error) { return nil, nil },
		likeFn:               func(context.Context, uint, uint) error { return nil },
		unlikeFn:             func(context.Context, uint, uint) error { return nil },
		getLikedMessagesFn:   func(context.Context, uint, int, int) ([]*models.Message, error) { return nil, nil },
		countByUserIDFn:      func(context.Context, uint) (int64, error) { return 0, nil },
		countLikesByUserIDFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
