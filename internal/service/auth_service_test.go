package service

import (
	"context"
	"errors"
	"testing"

	"warbler/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceSignupHashesPassword(t *testing.T) {
	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		created = u
		return nil
	}

	svc := NewAuthService(repo)
	user, err := svc.Signup(context.Background(), SignupInput{
		Username: "testuser",
		Email:    "test@test.com",
		Password: "HASHED_PASSWORD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected user to be created")
	}
	if user.Password == "HASHED_PASSWORD" {
		t.Fatal("stored password must not equal the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("HASHED_PASSWORD")); err != nil {
		t.Fatalf("stored hash does not verify against the plaintext: %v", err)
	}
}

func TestAuthServiceSignupRejectsInvalidInput(t *testing.T) {
	svc := NewAuthService(noopUserRepo())

	tests := []struct {
		name  string
		input SignupInput
	}{
		{"empty username", SignupInput{Username: "", Email: "a@b.com", Password: "secret1"}},
		{"bad email", SignupInput{Username: "someone", Email: "not-an-email", Password: "secret1"}},
		{"short password", SignupInput{Username: "someone", Email: "a@b.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.input)
			var appErr *models.AppError
			if !errors.As(err, &appErr) || appErr.Code != models.ErrCodeValidation {
				t.Fatalf("expected validation error, got %#v", err)
			}
		})
	}
}

func TestAuthServiceSignupDuplicateSurfacesConflict(t *testing.T) {
	repo := noopUserRepo()
	repo.createFn = func(context.Context, *models.User) error {
		return models.NewConflictError("Username or email already taken")
	}

	svc := NewAuthService(repo)
	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "testuser",
		Email:    "test@test.com",
		Password: "password",
	})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.ErrCodeConflict {
		t.Fatalf("expected conflict error, got %#v", err)
	}
}

func TestAuthServiceAuthenticate(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "testuser" {
			return &models.User{ID: 1, Username: "testuser", Password: string(hashed)}, nil
		}
		return nil, nil
	}

	svc := NewAuthService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Authenticate(context.Background(), "testuser", "password")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Authenticated {
			t.Fatal("expected an authenticated result")
		}
		if result.User.ID != 1 {
			t.Fatalf("expected user 1, got %d", result.User.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		result, err := svc.Authenticate(context.Background(), "testuser", "wrongpassword")
		if err != nil {
			t.Fatalf("a failed login is a result, not an error: %v", err)
		}
		if result.Authenticated || result.User != nil {
			t.Fatalf("expected the failure sentinel, got %#v", result)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		result, err := svc.Authenticate(context.Background(), "nobody", "password")
		if err != nil {
			t.Fatalf("a failed login is a result, not an error: %v", err)
		}
		if result.Authenticated || result.User != nil {
			t.Fatalf("expected the failure sentinel, got %#v", result)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		broken := noopUserRepo()
		broken.getByUsernameFn = func(context.Context, string) (*models.User, error) {
			return nil, models.NewInternalError(errors.New("connection refused"))
		}

		_, err := NewAuthService(broken).Authenticate(context.Background(), "testuser", "password")
		if err == nil {
			t.Fatal("expected the repository error to propagate")
		}
	})
}

func TestAuthServiceVerifyPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("test12"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user := &models.User{Password: string(hashed)}

	svc := NewAuthService(noopUserRepo())
	if !svc.VerifyPassword(user, "test12") {
		t.Fatal("expected matching password to verify")
	}
	if svc.VerifyPassword(user, "test13") {
		t.Fatal("expected mismatched password to fail")
	}
}
