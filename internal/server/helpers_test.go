package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warbler/internal/config"
	"warbler/internal/featureflags"
	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for unit tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// newTestServer wires a Server with mocked persistence and no Redis or
// Prometheus middleware, so route behavior can be tested in isolation.
func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock, *fiber.App) {
	t.Helper()
	gormDB, mock := setupMockDB(t)

	userRepo := repository.NewUserRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)

	s := &Server{
		config: &config.Config{Port: "5000", Env: "test"},
		db:     gormDB,
		sessions: session.New(session.Config{
			Expiration:     time.Hour,
			KeyLookup:      "cookie:warbler_session",
			CookieHTTPOnly: true,
			KeyGenerator:   uuid.NewString,
		}),
		featureFlags:   featureflags.NewManager(""),
		userRepo:       userRepo,
		messageRepo:    messageRepo,
		followRepo:     followRepo,
		authService:    service.NewAuthService(userRepo),
		socialService:  service.NewSocialService(followRepo, userRepo),
		messageService: service.NewMessageService(messageRepo, userRepo),
	}
	s.userService = service.NewUserService(userRepo, messageRepo, followRepo)

	app := fiber.New()
	s.SetupRoutes(app)

	// Backdoor login for tests that need an authenticated session without
	// touching the database.
	app.Post("/__test/login/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return err
		}
		sess, err := s.sessions.Get(c)
		if err != nil {
			return err
		}
		sess.Set(CurrUserKey, uint(id))
		return sess.Save()
	})

	return s, mock, app
}

// sessionCookie fabricates a logged-in session for the given user and returns
// the cookie to replay on subsequent requests.
func sessionCookie(t *testing.T, app *fiber.App, userID uint) *http.Cookie {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, fmt.Sprintf("/__test/login/%d", userID), nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "warbler_session" {
			return cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p := parsePagination(c, 25)
		return c.JSON(fiber.Map{"limit": p.Limit, "offset": p.Offset})
	})

	t.Run("Defaults", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		var body map[string]float64
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(25), body["limit"])
		assert.Equal(t, float64(0), body["offset"])
	})

	t.Run("Clamped To Max", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items?limit=9999&offset=-5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		var body map[string]float64
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(maxPaginationLimit), body["limit"])
		assert.Equal(t, float64(0), body["offset"])
	})
}

func TestParseID_Invalid(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		_, _ = s.parseID(c, "id")
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", models.NewNotFoundError("User", 1), http.StatusNotFound},
		{"validation", models.NewValidationError("bad"), http.StatusBadRequest},
		{"unauthorized", models.NewUnauthorizedError("no"), http.StatusUnauthorized},
		{"conflict", models.NewConflictError("taken"), http.StatusConflict},
		{"internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapServiceError(tt.err))
		})
	}
}
