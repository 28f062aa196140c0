// Package service contains the business logic layer of the application.
package service

import (
	"context"
	"strings"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username is unknown so that
// lookups for missing and existing users take comparable time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("warbler-dummy-password"), bcrypt.DefaultCost)

// AuthService provides signup and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// SignupInput carries the fields needed to register a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
	ImageURL string
}

// AuthResult is the outcome of a credential check. A failed login is a value,
// not an error; the error return is reserved for repository failures.
type AuthResult struct {
	Authenticated bool
	User          *models.User
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup validates the input, hashes the password, and creates the user.
// Uniqueness of username and email is left to the database constraint, which
// surfaces as a CONFLICT error.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		ImageURL: in.ImageURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the username and password pair. Unknown usernames and
// wrong passwords both come back as the same unauthenticated result.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, err
	}
	if user == nil {
		// Burn a comparison anyway so the miss is not observably faster.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return AuthResult{}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResult{}, nil
	}
	return AuthResult{Authenticated: true, User: user}, nil
}

// VerifyPassword reports whether the plaintext password matches the user's
// stored hash.
func (s *AuthService) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
